package qrencode

import (
	"errors"

	"github.com/ericlevine/qrencode/bitutil"
	"github.com/ericlevine/qrencode/charset"
	"github.com/ericlevine/qrencode/reedsolomon"
)

var (
	// ErrInvalidInput is returned when the contents cannot be encoded with
	// the requested options, for example when they exceed the capacity of a
	// version 40 symbol.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal is returned when a post-condition of the encoding pipeline
	// does not hold. It always indicates a bug and is never retried.
	ErrInternal = errors.New("internal consistency error")

	// ErrArgument reports a violated precondition of the field or
	// Reed-Solomon arithmetic.
	ErrArgument = reedsolomon.ErrArgument

	// ErrUnaligned is returned when a bit sequence that is not a whole
	// number of bytes is converted to bytes.
	ErrUnaligned = bitutil.ErrUnaligned

	// ErrUnsupported reports an unknown character set name or text the
	// chosen character set cannot represent.
	ErrUnsupported = charset.ErrUnsupported
)
