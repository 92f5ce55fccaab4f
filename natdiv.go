// Division engine: single-word fast path, and classical normalized long
// division (quotient-digit estimation with correction) for longer
// divisors. This is the most failure-prone routine in the module; the
// invariant u == q·v + r, 0 <= r < v is exercised by property tests.

package mpint

import (
	"math/bits"

	"github.com/agbru/mpint/internal/arith"
	"github.com/agbru/mpint/internal/metrics"
)

// natDiv computes the magnitude quotient and remainder of u by v.
// v must be non-zero; the Int layer surfaces ErrDivisionByZero before
// magnitudes are reached.
func natDiv(u, v nat) (q, r nat) {
	switch {
	case len(v) == 0:
		panic("mpint: magnitude division by zero")
	case u.cmp(v) < 0:
		return nil, nat(nil).set(u)
	case len(v) == 1:
		metrics.DivOps.WithLabelValues("single_word").Inc()
		q, r1 := nat(nil).divW(u, v[0])
		return q, nat(nil).setWord(r1)
	}
	metrics.DivOps.WithLabelValues("knuth").Inc()
	return divLarge(u, v)
}

// divLarge implements Knuth's Algorithm D for len(v) >= 2 and u >= v.
//
// D1 normalizes both operands left until the divisor's top bit is set,
// which bounds the quotient-digit estimate error. D3 estimates each digit
// from the top two dividend words over the divisor's top word and corrects
// downward in a loop: the estimate can be high by more than one, so the
// loop runs until the two-word trial product stops exceeding the running
// remainder, and the multiply-subtract step still keeps an add-back path
// for the final off-by-one. The remainder is shifted back at the end.
func divLarge(uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	// D1: normalize.
	shift := uint(bits.LeadingZeros(uint(vIn[n-1])))
	v := make(nat, n)
	arith.ShlVU(v, vIn, shift)
	u := make(nat, len(uIn)+1)
	u[len(uIn)] = arith.ShlVU(u[:len(uIn)], uIn, shift)

	q = make(nat, m+1)
	qhatv := make(nat, n+1)
	vn1, vn2 := v[n-1], v[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit.
		qhat := ^Word(0)
		if ujn := u[j+n]; ujn != vn1 {
			qh, rh := bits.Div(uint(ujn), uint(u[j+n-1]), uint(vn1))
			qhat = Word(qh)
			rhat := Word(rh)
			for {
				hi, lo := bits.Mul(uint(qhat), uint(vn2))
				if hi < uint(rhat) || (hi == uint(rhat) && lo <= uint(u[j+n-2])) {
					break
				}
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					// rhat overflowed past the word base; the trial
					// product can no longer exceed it.
					break
				}
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = arith.MulAddVWW(qhatv[:n], v, qhat, 0)
		if arith.SubVV(u[j:j+n+1], u[j:], qhatv) != 0 {
			// D6: qhat was still one too large; add the divisor back.
			c := arith.AddVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: the remainder sits in the low n words, still normalized.
	r = make(nat, n)
	arith.ShrVU(r, u[:n], shift)
	return q.norm(), r.norm()
}
