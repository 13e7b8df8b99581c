package reedsolomon

// Poly is a polynomial over GF(2^8). Coefficients are ordered from the
// highest-degree term to the lowest. Instances are immutable.
type Poly struct {
	coefficients []int
}

// NewPoly creates a polynomial from the given coefficients, multiplied by
// x^shift. Leading zero coefficients are dropped.
func NewPoly(coefficients []int, shift int) *Poly {
	offset := 0
	for offset < len(coefficients) && coefficients[offset] == 0 {
		offset++
	}
	c := make([]int, len(coefficients)-offset+shift)
	copy(c, coefficients[offset:])
	return &Poly{coefficients: c}
}

// Len returns the number of coefficients.
func (p *Poly) Len() int {
	return len(p.coefficients)
}

// At returns the i-th coefficient, counting from the highest-degree term.
func (p *Poly) At(i int) int {
	return p.coefficients[i]
}

// Multiply returns the product of p and other.
func (p *Poly) Multiply(other *Poly) *Poly {
	product := make([]int, p.Len()+other.Len()-1)
	for i := 0; i < p.Len(); i++ {
		for j := 0; j < other.Len(); j++ {
			product[i+j] ^= Multiply(p.At(i), other.At(j))
		}
	}
	return NewPoly(product, 0)
}

// Mod returns the remainder of p divided by other, computed by repeatedly
// cancelling the leading term.
func (p *Poly) Mod(other *Poly) *Poly {
	if p.Len()-other.Len() < 0 {
		return p
	}
	ratio := Log(p.At(0)) - Log(other.At(0))
	num := make([]int, p.Len())
	copy(num, p.coefficients)
	for i := 0; i < other.Len(); i++ {
		num[i] ^= Exp(Log(other.At(i)) + ratio)
	}
	return NewPoly(num, 0).Mod(other)
}
