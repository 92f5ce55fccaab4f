// Radix conversion between Int values and digit strings in bases 2
// through 36. Parsing accumulates whole chunks of base^k per word so the
// quadratic rescaling runs once per chunk instead of once per character;
// formatting divides out the same chunks.

package mpint

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MinBase and MaxBase bound the radix accepted by Parse and Text.
const (
	MinBase = 2
	MaxBase = 36
)

// maxPow returns bn and n such that bn = b^n is the largest power of b
// that fits in a Word.
func maxPow(b Word) (bn Word, n int) {
	bn, n = b, 1
	for bn <= ^Word(0)/b {
		bn *= b
		n++
	}
	return
}

// Parse converts a digit string in the given base (2 to 36) into an Int.
// An optional leading '+' or '-' is honored; letter digits are accepted in
// either case. It fails with ErrEmptyInput when no digits follow the sign,
// and with *InvalidDigitError, carrying the offending character and its
// position, on the first character outside the base's alphabet. A base
// outside [2, 36] is reported as an *InvalidDigitError as well.
func Parse(s string, base int) (Int, error) {
	if base < MinBase || base > MaxBase {
		return Int{}, &InvalidDigitError{Base: base, Pos: -1}
	}

	i := 0
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i++
	}
	if i == len(s) {
		return Int{}, ErrEmptyInput
	}

	b := Word(base)
	bn, dn := maxPow(b)

	var z nat
	var chunk Word
	pending := 0
	for ; i < len(s); i++ {
		c := s[i]
		var d Word
		switch {
		case '0' <= c && c <= '9':
			d = Word(c - '0')
		case 'a' <= c && c <= 'z':
			d = Word(c-'a') + 10
		case 'A' <= c && c <= 'Z':
			d = Word(c-'A') + 10
		default:
			d = ^Word(0)
		}
		if d >= b {
			return Int{}, &InvalidDigitError{Char: rune(c), Pos: i, Base: base}
		}
		chunk = chunk*b + d
		pending++
		if pending == dn {
			z = z.mulAddWW(z, bn, chunk)
			chunk, pending = 0, 0
		}
	}
	if pending > 0 {
		pow := Word(1)
		for k := 0; k < pending; k++ {
			pow *= b
		}
		z = z.mulAddWW(z, pow, chunk)
	}
	return makeInt(neg, z), nil
}

// Text formats x in the given base (2 to 36), using lower-case letter
// digits, with a leading '-' only for negative values. Zero formats as
// "0" in every base. Text panics on a base outside [2, 36]; an illegal
// base at a format site is a programming error, not input.
func (x Int) Text(base int) string {
	if base < MinBase || base > MaxBase {
		panic("mpint: illegal base")
	}
	if len(x.abs) == 0 {
		return "0"
	}

	b := Word(base)
	bn, dn := maxPow(b)

	// Base 2 needs one byte per bit; every other base needs fewer. One
	// extra byte covers the sign.
	buf := make([]byte, x.abs.bitLen()+1)
	idx := len(buf)

	q := nat(nil).set(x.abs)
	for len(q) > 0 {
		var r Word
		q, r = q.divW(q, bn)
		if len(q) > 0 {
			// Interior chunk: exactly dn digits, zero-padded.
			for k := 0; k < dn; k++ {
				idx--
				buf[idx] = digitAlphabet[r%b]
				r /= b
			}
		} else {
			// Top chunk: no leading zeros.
			for r > 0 {
				idx--
				buf[idx] = digitAlphabet[r%b]
				r /= b
			}
		}
	}
	if x.neg {
		idx--
		buf[idx] = '-'
	}
	return string(buf[idx:])
}

// String formats x in base 10.
func (x Int) String() string {
	return x.Text(10)
}
