package mpint

// An Int is an arbitrary-precision signed integer in sign-magnitude form.
// The zero value is 0 and ready to use. Ints are value types: every
// operation returns a new value and never writes through an operand, so
// concurrent reads of the same Int are always safe. The explicitly named
// *InPlace variants on *Int are the only mutating operations.
//
// The magnitude invariant (no high zero words, zero magnitude paired
// with a non-negative sign) is re-established by every constructor and
// operation; callers can rely on exactly one representation per value.
type Int struct {
	neg bool
	abs nat
}

// makeInt pairs a sign with a magnitude, canonicalizing negative zero.
func makeInt(neg bool, abs nat) Int {
	if len(abs) == 0 {
		neg = false
	}
	return Int{neg: neg, abs: abs}
}

// FromInt64 returns the Int with value v.
func FromInt64(v int64) Int {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	// Negating v directly overflows at MinInt64; go through the
	// complement instead.
	return makeInt(true, nat(nil).setUint64(uint64(-(v+1))+1))
}

// FromUint64 returns the Int with value v.
func FromUint64(v uint64) Int {
	return Int{abs: nat(nil).setUint64(v)}
}

// FromWords builds a non-negative Int from a little-endian word sequence.
// The slice is copied and high zero words are stripped; this is the
// advanced construction path for callers that already hold limbs.
func FromWords(ws []Word) Int {
	return Int{abs: nat(nil).setWords(ws)}
}

// Words returns a copy of x's magnitude as a little-endian word sequence.
// The limb layout is diagnostic; it is not part of the value's identity.
func (x Int) Words() []Word {
	ws := make([]Word, len(x.abs))
	copy(ws, x.abs)
	return ws
}

// WordCount returns the number of words in x's magnitude; zero has none.
func (x Int) WordCount() int { return len(x.abs) }

// BitLen returns the length of x's magnitude in bits; BitLen(0) == 0.
func (x Int) BitLen() int { return x.abs.bitLen() }

// Sign returns -1, 0, or +1 depending on whether x < 0, x == 0, x > 0.
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return len(x.abs) == 0 }

// Neg returns -x.
func (x Int) Neg() Int {
	return makeInt(!x.neg, nat(nil).set(x.abs))
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{abs: nat(nil).set(x.abs)}
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, nat(nil).add(x.abs, y.abs))
	}
	// Opposite signs: the result takes the sign of the larger magnitude.
	switch x.abs.cmp(y.abs) {
	case 1:
		return makeInt(x.neg, nat(nil).sub(x.abs, y.abs))
	case -1:
		return makeInt(y.neg, nat(nil).sub(y.abs, x.abs))
	}
	return Int{}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(makeInt(!y.neg, y.abs))
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, nat(nil).mul(x.abs, y.abs))
}

// QuoRem returns the quotient and remainder of x by y under truncating
// (round toward zero) semantics: x == y*q + r, |r| < |y|, and r takes x's
// sign. It fails with ErrDivisionByZero when y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if len(y.abs) == 0 {
		return Int{}, Int{}, ErrDivisionByZero
	}
	qa, ra := natDiv(x.abs, y.abs)
	return makeInt(x.neg != y.neg, qa), makeInt(x.neg, ra), nil
}

// Quo returns the truncated quotient x / y.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the truncated remainder x % y; its sign follows x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Cmp compares x and y and returns -1, 0, or +1. The ordering is checked
// against subtraction's sign as a tested property: x.Cmp(y) < 0 exactly
// when x.Sub(y) is negative.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		// Both negative: the larger magnitude is the smaller value.
		return y.abs.cmp(x.abs)
	}
	return x.abs.cmp(y.abs)
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Pow returns x**n computed by repeated squaring. Pow(x, 0) is 1 for
// every x, including zero.
func (x Int) Pow(n uint64) Int {
	z := FromInt64(1)
	base := x
	for n > 0 {
		if n&1 == 1 {
			z = z.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return z
}

// ExpMod returns x**y mod m, reducing after every squaring so
// intermediates stay below m². The remainder semantics match Rem: the
// result's sign follows the sign of x**y. It fails with ErrDivisionByZero
// when m is zero and with ErrNegativeExponent when y is negative.
func (x Int) ExpMod(y, m Int) (Int, error) {
	switch {
	case len(m.abs) == 0:
		return Int{}, ErrDivisionByZero
	case y.neg:
		return Int{}, ErrNegativeExponent
	}

	base, err := x.Rem(m)
	if err != nil {
		return Int{}, err
	}
	if len(m.abs) == 1 && m.abs[0] == 1 {
		return Int{}, nil // mod ±1 is always 0
	}
	z := FromInt64(1)

	// Scan the exponent's magnitude bit by bit, least significant first.
	for i, w := range y.abs {
		bitsLeft := wordBits
		if i == len(y.abs)-1 {
			bitsLeft = y.abs.bitLen() - i*wordBits
		}
		for b := 0; b < bitsLeft; b++ {
			if w&1 == 1 {
				z = z.Mul(base)
				if z, err = z.Rem(m); err != nil {
					return Int{}, err
				}
			}
			w >>= 1
			base = base.Mul(base)
			if base, err = base.Rem(m); err != nil {
				return Int{}, err
			}
		}
	}
	return z, nil
}

// AddInPlace sets z = z + y, reusing z's magnitude storage when the
// capacity allows. Only z is mutated; y is never written.
func (z *Int) AddInPlace(y Int) {
	// A copied Int shares magnitude storage with its original; move z to
	// private storage before writing so the original keeps its value.
	if len(z.abs) > 0 && len(y.abs) > 0 && &z.abs[0] == &y.abs[0] {
		z.abs = nat(nil).set(z.abs)
	}
	if z.neg == y.neg {
		z.abs = z.abs.add(z.abs, y.abs)
		return
	}
	switch z.abs.cmp(y.abs) {
	case 1:
		z.abs = z.abs.sub(z.abs, y.abs)
	case -1:
		z.abs = nat(nil).sub(y.abs, z.abs)
		z.neg = y.neg
	default:
		*z = Int{}
	}
	if len(z.abs) == 0 {
		z.neg = false
	}
}

// MulInPlace sets z = z * y. The product cannot reuse z's storage; the
// name marks the mutation of the receiver, matching AddInPlace.
func (z *Int) MulInPlace(y Int) {
	z.abs = nat(nil).mul(z.abs, y.abs)
	z.neg = z.neg != y.neg
	if len(z.abs) == 0 {
		z.neg = false
	}
}
