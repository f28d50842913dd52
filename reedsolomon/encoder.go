package reedsolomon

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Encoder performs systematic Reed-Solomon encoding.
//
// Generator polynomials are memoized by degree. Reads of degrees already
// built take no lock; growing the cache is serialized so concurrent callers
// racing for the same missing degree never corrupt it.
type Encoder struct {
	field      *GenericGF
	mu         sync.Mutex                       // serializes cache growth
	generators atomic.Pointer[[]*Poly] // immutable snapshot, index = degree
}

// QRCodeEncoder is the process-wide encoder shared by all QR Code encodes.
var QRCodeEncoder = NewEncoder(QRCodeField256)

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GenericGF) *Encoder {
	e := &Encoder{field: field}
	generators := []*Poly{field.One()}
	e.generators.Store(&generators)
	return e
}

// Generator returns the generator polynomial of the given degree, the
// product of (x - a^i) for i in [base, base+degree).
func (e *Encoder) Generator(degree int) *Poly {
	if degree < 0 {
		panic(&ArgumentError{Op: "negative generator degree"})
	}
	if generators := *e.generators.Load(); degree < len(generators) {
		return generators[degree]
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	generators := *e.generators.Load()
	if degree < len(generators) {
		return generators[degree]
	}
	grown := make([]*Poly, len(generators), degree+1)
	copy(grown, generators)
	lastGenerator := grown[len(grown)-1]
	for d := len(grown); d <= degree; d++ {
		lastGenerator = lastGenerator.Multiply(
			NewPoly(e.field, []int{1, e.field.Exp(d - 1 + e.field.GeneratorBase())}))
		grown = append(grown, lastGenerator)
	}
	e.generators.Store(&grown)
	return grown[degree]
}

// CachedDegrees returns the number of generator polynomials built so far.
func (e *Encoder) CachedDegrees() int {
	return len(*e.generators.Load())
}

// Encode returns the numECBytes error-correction codewords for data: the
// remainder of data * x^numECBytes divided by the generator, left-padded
// with zeros.
func (e *Encoder) Encode(data []byte, numECBytes int) ([]byte, error) {
	if numECBytes <= 0 {
		return nil, fmt.Errorf("reedsolomon: %d error correction bytes: %w", numECBytes, ErrArgument)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("reedsolomon: no data bytes provided: %w", ErrArgument)
	}
	generator := e.Generator(numECBytes)
	infoCoefficients := make([]int, len(data))
	for i, b := range data {
		infoCoefficients[i] = int(b)
	}
	info := NewPoly(e.field, infoCoefficients).Shift(numECBytes)
	_, remainder := info.Divide(generator)

	ecBytes := make([]byte, numECBytes)
	coefficients := remainder.coefficients
	numZero := numECBytes - len(coefficients)
	for i, c := range coefficients {
		ecBytes[numZero+i] = byte(c)
	}
	return ecBytes, nil
}
