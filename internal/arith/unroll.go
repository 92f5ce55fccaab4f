// Accelerated kernel implementations. The carry chains are unrolled four
// words at a time so the compiler can keep the chain in flag registers;
// single-word division goes through a precomputed reciprocal instead of a
// hardware divide per word. Selected on amd64 when ADX and BMI2 are
// available (see select_amd64.go); always reachable for equivalence tests.

package arith

import "math/bits"

func addVVUnrolled(z, x, y []Word) Word {
	var zi uint
	cc := uint(0)
	i, n := 0, len(z)
	for ; i <= n-4; i += 4 {
		zi, cc = bits.Add(uint(x[i]), uint(y[i]), cc)
		z[i] = Word(zi)
		zi, cc = bits.Add(uint(x[i+1]), uint(y[i+1]), cc)
		z[i+1] = Word(zi)
		zi, cc = bits.Add(uint(x[i+2]), uint(y[i+2]), cc)
		z[i+2] = Word(zi)
		zi, cc = bits.Add(uint(x[i+3]), uint(y[i+3]), cc)
		z[i+3] = Word(zi)
	}
	for ; i < n; i++ {
		zi, cc = bits.Add(uint(x[i]), uint(y[i]), cc)
		z[i] = Word(zi)
	}
	return Word(cc)
}

func subVVUnrolled(z, x, y []Word) Word {
	var zi uint
	bb := uint(0)
	i, n := 0, len(z)
	for ; i <= n-4; i += 4 {
		zi, bb = bits.Sub(uint(x[i]), uint(y[i]), bb)
		z[i] = Word(zi)
		zi, bb = bits.Sub(uint(x[i+1]), uint(y[i+1]), bb)
		z[i+1] = Word(zi)
		zi, bb = bits.Sub(uint(x[i+2]), uint(y[i+2]), bb)
		z[i+2] = Word(zi)
		zi, bb = bits.Sub(uint(x[i+3]), uint(y[i+3]), bb)
		z[i+3] = Word(zi)
	}
	for ; i < n; i++ {
		zi, bb = bits.Sub(uint(x[i]), uint(y[i]), bb)
		z[i] = Word(zi)
	}
	return Word(bb)
}

func addVWUnrolled(z, x []Word, y Word) Word {
	var zi uint
	cc := uint(y)
	i, n := 0, len(z)
	for ; i <= n-4; i += 4 {
		zi, cc = bits.Add(uint(x[i]), cc, 0)
		z[i] = Word(zi)
		zi, cc = bits.Add(uint(x[i+1]), cc, 0)
		z[i+1] = Word(zi)
		zi, cc = bits.Add(uint(x[i+2]), cc, 0)
		z[i+2] = Word(zi)
		zi, cc = bits.Add(uint(x[i+3]), cc, 0)
		z[i+3] = Word(zi)
	}
	for ; i < n; i++ {
		zi, cc = bits.Add(uint(x[i]), cc, 0)
		z[i] = Word(zi)
	}
	return Word(cc)
}

func subVWUnrolled(z, x []Word, y Word) Word {
	var zi uint
	bb := uint(y)
	i, n := 0, len(z)
	for ; i <= n-4; i += 4 {
		zi, bb = bits.Sub(uint(x[i]), bb, 0)
		z[i] = Word(zi)
		zi, bb = bits.Sub(uint(x[i+1]), bb, 0)
		z[i+1] = Word(zi)
		zi, bb = bits.Sub(uint(x[i+2]), bb, 0)
		z[i+2] = Word(zi)
		zi, bb = bits.Sub(uint(x[i+3]), bb, 0)
		z[i+3] = Word(zi)
	}
	for ; i < n; i++ {
		zi, bb = bits.Sub(uint(x[i]), bb, 0)
		z[i] = Word(zi)
	}
	return Word(bb)
}

func mulAddVWWUnrolled(z, x []Word, y, r Word) Word {
	c := r
	i, n := 0, len(z)
	for ; i <= n-4; i += 4 {
		c, z[i] = mulAddWWW(x[i], y, c)
		c, z[i+1] = mulAddWWW(x[i+1], y, c)
		c, z[i+2] = mulAddWWW(x[i+2], y, c)
		c, z[i+3] = mulAddWWW(x[i+3], y, c)
	}
	for ; i < n; i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulStep computes z + x*y + c as a double-width value.
func addMulStep(z, x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	l, cc := bits.Add(l, uint(z), 0)
	h += cc
	l, cc = bits.Add(l, uint(c), 0)
	h += cc
	return Word(h), Word(l)
}

func addMulVVWUnrolled(z, x []Word, y Word) Word {
	var c Word
	i, n := 0, len(z)
	for ; i <= n-4; i += 4 {
		c, z[i] = addMulStep(z[i], x[i], y, c)
		c, z[i+1] = addMulStep(z[i+1], x[i+1], y, c)
		c, z[i+2] = addMulStep(z[i+2], x[i+2], y, c)
		c, z[i+3] = addMulStep(z[i+3], x[i+3], y, c)
	}
	for ; i < n; i++ {
		c, z[i] = addMulStep(z[i], x[i], y, c)
	}
	return c
}

// reciprocal returns floor((_B^2 - 1) / u - _B) for u = d << nlz(d), the
// fixed-point inverse used by divWWRecip. Requires d != 0. Computed with
// half-word arithmetic so no double-width divide is needed.
// reciprocal returns ⎣(B²-1)/u⎦ - B for u = d normalized (top bit set),
// with B the word base. The double-word numerator's high half is ^u < u,
// so the hardware division cannot trap.
func reciprocal(d Word) uint {
	u := uint(d) << nlz(d)
	rec, _ := bits.Div(^u, ^uint(0), u)
	return rec
}

// divWWRecip divides the double word x1:x0 (x1 < y) by y using the
// precomputed inv = reciprocal(y), returning quotient and remainder. The
// initial estimate is t1+1 and can be off by one in either direction;
// both corrections are checked.
func divWWRecip(x1, x0, y Word, inv uint) (q, r Word) {
	shift := nlz(y)
	if shift != 0 {
		x1 = x1<<shift | x0>>(WordBits-shift)
		x0 <<= shift
		y <<= shift
	}
	d := uint(y)

	qq, q0 := bits.Mul(uint(x1), inv)
	q0, cc := bits.Add(q0, uint(x0), 0)
	qq, _ = bits.Add(qq, uint(x1), cc)
	qq++

	rr := uint(x0) - d*qq
	if rr >= q0 {
		qq--
		rr += d
	}
	if rr >= d {
		qq++
		rr -= d
	}
	return Word(qq), Word(rr >> shift)
}

func divWVWRecip(z []Word, xn Word, x []Word, y Word) Word {
	r := xn
	if len(z) == 1 {
		q, rr := bits.Div(uint(r), uint(x[0]), uint(y))
		z[0] = Word(q)
		return Word(rr)
	}
	inv := reciprocal(y)
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWWRecip(r, x[i], y, inv)
	}
	return r
}
