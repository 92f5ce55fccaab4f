package mpint

import (
	"math/bits"

	"github.com/agbru/mpint/internal/arith"
)

// A Word is a single digit of a multi-precision integer, re-exported from
// the kernel layer.
type Word = arith.Word

// wordBits is the size of a Word in bits.
const wordBits = arith.WordBits

// nat is a magnitude: a little-endian word sequence with no high zero
// words. The canonical zero is the empty (nil) slice. Operations are
// written in the math/big receiver style (z is reused as the destination
// when its capacity allows) but no nat is ever shared between two Ints.
type nat []Word

// norm strips high zero words, restoring the canonical form. Every
// producing operation ends with norm; callers may assume it everywhere.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// make returns a nat of length n, reusing z's storage when possible.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 4 // room to grow without another allocation
	return make(nat, n, n+extra)
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	// Word is 32 bits wide and x needs two of them.
	z = z.make(2)
	z[0] = Word(x)
	z[1] = Word(x >> 32)
	return z
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (x nat) isZero() bool {
	return len(x) == 0
}

// cmp compares magnitudes: -1 if x < y, 0 if equal, +1 if x > y.
func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// add computes z = x + y.
func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return z.add(y, x)
	}
	if n == 0 {
		return z.set(x)
	}

	z = z.make(m + 1)
	c := arith.AddVV(z[:n], x, y)
	if m > n {
		c = arith.AddVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub computes z = x - y; x >= y is the caller's responsibility and is
// checked, since a violated borrow would silently corrupt the magnitude.
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("mpint: magnitude underflow")
	case n == 0:
		return z.set(x)
	}

	z = z.make(m)
	b := arith.SubVV(z[:n], x, y)
	if m > n {
		b = arith.SubVW(z[n:], x[n:], b)
	}
	if b != 0 {
		panic("mpint: magnitude underflow")
	}
	return z.norm()
}

// lsh computes z = x << s for arbitrary s.
func (z nat) lsh(x nat, s uint) nat {
	if len(x) == 0 {
		return z[:0]
	}
	nw, nb := s/wordBits, s%wordBits
	m := len(x)
	n := m + int(nw)

	z = z.make(n + 1)
	z[n] = arith.ShlVU(z[nw:n], x, nb)
	for i := uint(0); i < nw; i++ {
		z[i] = 0
	}
	return z.norm()
}

// rsh computes z = x >> s for arbitrary s.
func (z nat) rsh(x nat, s uint) nat {
	nw, nb := s/wordBits, s%wordBits
	if int(nw) >= len(x) {
		return z[:0]
	}
	n := len(x) - int(nw)

	z = z.make(n)
	arith.ShrVU(z, x[nw:], nb)
	return z.norm()
}

// bitLen returns the length of x in bits; the bit length of zero is 0.
func (x nat) bitLen() int {
	if n := len(x); n > 0 {
		return (n-1)*wordBits + bits.Len(uint(x[n-1]))
	}
	return 0
}

// mulAddWW computes z = x*y + r for single words y and r. This is the
// scaling step of radix parsing.
func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}

	z = z.make(m + 1)
	z[m] = arith.MulAddVWW(z[:m], x, y, r)
	return z.norm()
}

// divW computes x / y and x % y for a single non-zero word y.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("mpint: division by zero word")
	case y == 1:
		return z.set(x), 0
	case m == 0:
		return z[:0], 0
	}
	z = z.make(m)
	r = arith.DivWVW(z, 0, x, y)
	return z.norm(), r
}

// modW returns x % y for a single non-zero word y without forming the
// quotient.
func (x nat) modW(y Word) (r Word) {
	var rr uint
	for i := len(x) - 1; i >= 0; i-- {
		_, rr = bits.Div(rr, uint(x[i]), uint(y))
	}
	return Word(rr)
}

// setWords installs an externally supplied word sequence, normalizing it.
func (z nat) setWords(ws []Word) nat {
	z = z.make(len(ws))
	copy(z, ws)
	return z.norm()
}
