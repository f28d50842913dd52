// Package reedsolomon implements Reed-Solomon error correction coding over
// GF(256) as used by QR Code.
package reedsolomon

import (
	"errors"
	"fmt"
)

// ErrArgument reports a violated precondition of the field or encoder
// arithmetic: Log(0), division by zero, empty data or a non-positive number
// of error correction codewords.
var ErrArgument = errors.New("argument out of domain")

// ArgumentError is the panic value of field operations called outside their
// domain. It wraps ErrArgument.
type ArgumentError struct {
	Op string
}

func (e *ArgumentError) Error() string {
	return "reedsolomon: " + e.Op + ": " + ErrArgument.Error()
}

func (e *ArgumentError) Unwrap() error { return ErrArgument }

// GenericGF represents a Galois Field for Reed-Solomon coding.
// It holds no mutable state after construction and is safe for concurrent use.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *Poly
	one           *Poly
	size          int
	primitive     int
	generatorBase int
}

// QRCodeField256 is GF(256) with primitive x^8 + x^4 + x^3 + x^2 + 1.
var QRCodeField256 = NewGenericGF(0x011D, 256, 0)

// NewGenericGF creates a GF(size) using the given primitive polynomial.
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	gf.zero = NewPoly(gf, []int{0})
	gf.one = NewPoly(gf, []int{1})

	return gf
}

// Zero returns the zero polynomial.
func (gf *GenericGF) Zero() *Poly { return gf.zero }

// One returns the one polynomial.
func (gf *GenericGF) One() *Poly { return gf.one }

// AddOrSubtract computes a XOR b (addition and subtraction are the same in GF(2^n)).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns 2^power in this field. The power is reduced modulo size-1.
func (gf *GenericGF) Exp(power int) int {
	return gf.expTable[power%(gf.size-1)]
}

// Log returns log2(a) in this field. It panics with an *ArgumentError if a is 0.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic(&ArgumentError{Op: "log(0)"})
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic(&ArgumentError{Op: "inverse(0)"})
	}
	return gf.expTable[gf.size-gf.logTable[a]-1]
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Divide returns a / b in this field. It panics with an *ArgumentError if b is 0.
func (gf *GenericGF) Divide(a, b int) int {
	if b == 0 {
		panic(&ArgumentError{Op: "divide by zero"})
	}
	if a == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]-gf.logTable[b]+gf.size-1)%(gf.size-1)]
}

// Size returns the size of the field.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the generator base.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// String returns a string representation.
func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
