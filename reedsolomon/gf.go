// Package reedsolomon implements Reed-Solomon error correction encoding
// over the GF(2^8) field used by QR codes.
package reedsolomon

var (
	expTable [256]int
	logTable [256]int
)

func init() {
	for i := 0; i < 8; i++ {
		expTable[i] = 1 << uint(i)
	}
	// x^8 = x^4 + x^3 + x^2 + 1 (primitive polynomial 0x11d)
	for i := 8; i < 256; i++ {
		expTable[i] = expTable[i-4] ^ expTable[i-5] ^ expTable[i-6] ^ expTable[i-8]
	}
	for i := 0; i < 255; i++ {
		logTable[expTable[i]] = i
	}
}

// Exp returns 2^n in the field. Exponents are reduced modulo 255, so any
// integer is accepted.
func Exp(n int) int {
	for n < 0 {
		n += 255
	}
	for n >= 256 {
		n -= 255
	}
	return expTable[n]
}

// Log returns log2(n) in the field. It panics if n is not positive.
func Log(n int) int {
	if n < 1 {
		panic("reedsolomon: log of non-positive value")
	}
	return logTable[n]
}

// Multiply returns a * b in the field.
func Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[a]+logTable[b])%255]
}
