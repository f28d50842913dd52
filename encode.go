// Package qrencode encodes text into QR Code symbols as defined by
// ISO/IEC 18004.
//
// The encoding pipeline lives in the qrcode packages; this package holds the
// types shared by all of them.
package qrencode

import "github.com/ericlevine/qrencode/bitutil"

// EncodeOptions configures QR Code encoding behavior.
type EncodeOptions struct {
	// ErrorCorrection specifies the error correction level: "L", "M", "Q"
	// or "H". Empty selects L.
	ErrorCorrection string

	// CharacterSet forces the character set used when the contents need
	// byte mode, e.g. "UTF-8" or "Shift_JIS".
	CharacterSet string

	// Margin specifies the margin (quiet zone) in modules around the symbol.
	Margin *int

	// QRVersion forces the symbol to be at least this version (1-40).
	QRVersion int

	// QRMaskPattern forces a specific mask pattern (0-7) instead of
	// penalty-based selection.
	QRMaskPattern *int
}

// Writer encodes data into a rendered QR Code matrix.
type Writer interface {
	// Encode encodes the given contents into a matrix at least width by
	// height modules large.
	Encode(contents string, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
