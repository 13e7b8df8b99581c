package reedsolomon

// Encoder computes error correction codewords for data blocks. Generator
// polynomials are cached as they are built, so reusing one Encoder across
// blocks of the same degree is cheap. An Encoder is not safe for concurrent
// use.
type Encoder struct {
	cachedGenerators []*Poly
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{cachedGenerators: []*Poly{NewPoly([]int{1}, 0)}}
}

// Generator returns the degree-th generator polynomial
// (x - 2^0)(x - 2^1)...(x - 2^(degree-1)).
func (e *Encoder) Generator(degree int) *Poly {
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	lastGenerator := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		nextGenerator := lastGenerator.Multiply(NewPoly([]int{1, Exp(d - 1)}, 0))
		e.cachedGenerators = append(e.cachedGenerators, nextGenerator)
		lastGenerator = nextGenerator
	}
	return e.cachedGenerators[degree]
}

// EncodeBlock returns the ecCount error correction codewords for data.
func (e *Encoder) EncodeBlock(data []byte, ecCount int) []byte {
	if ecCount < 1 {
		panic("reedsolomon: no error correction bytes")
	}
	coefficients := make([]int, len(data))
	for i, b := range data {
		coefficients[i] = int(b)
	}
	mod := NewPoly(coefficients, ecCount).Mod(e.Generator(ecCount))
	ec := make([]byte, ecCount)
	for i := range ec {
		modIndex := i + mod.Len() - ecCount
		if modIndex >= 0 {
			ec[i] = byte(mod.At(modIndex))
		}
	}
	return ec
}
