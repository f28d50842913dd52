package reedsolomon

// Poly is an immutable polynomial over a GenericGF. Coefficients are stored
// highest degree first with no leading zeros; the zero polynomial is {0}.
type Poly struct {
	field        *GenericGF
	coefficients []int
}

// NewPoly copies coefficients, highest degree first, into a polynomial.
func NewPoly(field *GenericGF, coefficients []int) *Poly {
	if len(coefficients) == 0 {
		panic(&ArgumentError{Op: "empty coefficients"})
	}
	lead := 0
	for lead < len(coefficients)-1 && coefficients[lead] == 0 {
		lead++
	}
	c := make([]int, len(coefficients)-lead)
	copy(c, coefficients[lead:])
	return &Poly{field: field, coefficients: c}
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Poly) Coefficients() []int {
	return append([]int(nil), p.coefficients...)
}

// Degree returns the degree; the zero polynomial has degree 0.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// EvaluateAt returns p(a).
func (p *Poly) EvaluateAt(a int) int {
	result := 0
	for _, c := range p.coefficients {
		result = p.field.Multiply(result, a) ^ c
	}
	return result
}

// Add returns p + other, which in characteristic 2 is also p - other.
func (p *Poly) Add(other *Poly) *Poly {
	long, short := p.coefficients, other.coefficients
	if len(long) < len(short) {
		long, short = short, long
	}
	sum := append([]int(nil), long...)
	offset := len(long) - len(short)
	for i, c := range short {
		sum[offset+i] = AddOrSubtract(sum[offset+i], c)
	}
	return NewPoly(p.field, sum)
}

// Multiply returns p * other.
func (p *Poly) Multiply(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(a, b))
		}
	}
	return NewPoly(p.field, product)
}

// Shift returns p * x^degree.
func (p *Poly) Shift(degree int) *Poly {
	if degree < 0 {
		panic(&ArgumentError{Op: "negative degree"})
	}
	if p.IsZero() {
		return p
	}
	shifted := make([]int, len(p.coefficients)+degree)
	copy(shifted, p.coefficients)
	return &Poly{field: p.field, coefficients: shifted}
}

// Divide returns the quotient and remainder of p / divisor using synthetic
// long division.
func (p *Poly) Divide(divisor *Poly) (quotient, remainder *Poly) {
	if divisor.IsZero() {
		panic(&ArgumentError{Op: "divide by zero polynomial"})
	}
	steps := len(p.coefficients) - len(divisor.coefficients) + 1
	if steps <= 0 {
		return p.field.Zero(), p
	}
	f := p.field
	work := append([]int(nil), p.coefficients...)
	q := make([]int, steps)
	inverseLead := f.Inverse(divisor.coefficients[0])
	for i := 0; i < steps; i++ {
		factor := f.Multiply(work[i], inverseLead)
		q[i] = factor
		if factor == 0 {
			continue
		}
		for j, c := range divisor.coefficients {
			work[i+j] ^= f.Multiply(c, factor)
		}
	}
	return NewPoly(f, q), NewPoly(f, work[steps:])
}
