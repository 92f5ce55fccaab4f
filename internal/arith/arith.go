// Package arith implements the word-vector kernels underneath the mpint
// types: add with carry, subtract with borrow, shifts, single-word
// multiply-accumulate and single-word division over little-endian []Word
// slices.
//
// Every kernel exists twice: a portable implementation built on the
// standard carry/borrow primitives in math/bits, and an accelerated
// implementation with unrolled carry chains and reciprocal-based division
// that is enabled on amd64 CPUs reporting ADX and BMI2. The two are
// bit-for-bit interchangeable; which one is active is decided exactly once
// at package init and never re-evaluated per call.
package arith

import "math/bits"

// A Word is a single digit of a multi-precision unsigned integer.
type Word uint

const (
	// WordBits is the size of a Word in bits.
	WordBits = bits.UintSize

	_B = 1 << WordBits // digit base
	_M = _B - 1        // digit mask
)

// mulWW returns the double-width product x*y.
func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	return Word(h), Word(l)
}

// mulAddWWW returns the double-width result of x*y + c.
func mulAddWWW(x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	l, cc := bits.Add(l, uint(c), 0)
	return Word(h + cc), Word(l)
}

// nlz returns the number of leading zeros in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Portable kernels
// ─────────────────────────────────────────────────────────────────────────────
//
// These rely only on math/bits carry propagation and compile to sound code
// on every architecture Go supports. The contracts match the accelerated
// set exactly: z receives the result, x and y must be at least len(z)
// words long, and the returned word is the outgoing carry or borrow.

func addVVGeneric(z, x, y []Word) (c Word) {
	for i := range z {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

func subVVGeneric(z, x, y []Word) (c Word) {
	for i := range z {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

func addVWGeneric(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

func subVWGeneric(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// shlVUGeneric shifts x left by s bits (0 <= s < WordBits) into z and
// returns the bits shifted out of the top word.
func shlVUGeneric(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	inv := (WordBits - s) & (WordBits - 1)
	c = x[len(z)-1] >> inv
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>inv
	}
	z[0] = x[0] << s
	return
}

// shrVUGeneric shifts x right by s bits (0 <= s < WordBits) into z and
// returns the bits shifted out of the bottom word.
func shrVUGeneric(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	inv := (WordBits - s) & (WordBits - 1)
	c = x[0] << inv
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<inv
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

func mulAddVWWGeneric(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

func addMulVVWGeneric(z, x []Word, y Word) (c Word) {
	for i := range z {
		hi, lo := mulAddWWW(x[i], y, z[i])
		l, cc := bits.Add(uint(lo), uint(c), 0)
		z[i] = Word(l)
		c = Word(cc) + hi
	}
	return
}

// divWVWGeneric divides the double-length value xn:x by the single word y,
// storing the quotient in z and returning the remainder. Requires y != 0
// and xn < y.
func divWVWGeneric(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		q, rr := bits.Div(uint(r), uint(x[i]), uint(y))
		z[i] = Word(q)
		r = Word(rr)
	}
	return
}
