// Narrowing conversions to native fixed-width integers. The policy is
// fail-don't-saturate: a magnitude that does not fit yields a
// *RangeOverflowError and the zero result. Callers that want clamping can
// compare against the bound first.

package mpint

import "math"

// low64 returns the low 64 bits of x's magnitude.
func (x nat) low64() uint64 {
	if len(x) == 0 {
		return 0
	}
	v := uint64(x[0])
	if wordBits == 32 && len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

// Int64 returns x as an int64, or a *RangeOverflowError if x is outside
// [math.MinInt64, math.MaxInt64].
func (x Int) Int64() (int64, error) {
	if x.abs.bitLen() > 64 {
		return 0, &RangeOverflowError{Target: "int64"}
	}
	v := x.abs.low64()
	if x.neg {
		if v > 1<<63 {
			return 0, &RangeOverflowError{Target: "int64"}
		}
		if v == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(v), nil
	}
	if v > math.MaxInt64 {
		return 0, &RangeOverflowError{Target: "int64"}
	}
	return int64(v), nil
}

// Uint64 returns x as a uint64, or a *RangeOverflowError if x is negative
// or exceeds math.MaxUint64.
func (x Int) Uint64() (uint64, error) {
	if x.neg || x.abs.bitLen() > 64 {
		return 0, &RangeOverflowError{Target: "uint64"}
	}
	return x.abs.low64(), nil
}
