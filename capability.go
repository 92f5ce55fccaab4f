package mpint

// The interfaces below describe the capability sets generic numeric code
// relies on, so Int can stand in for a native integer type in generic
// algorithms without this module depending on any trait-definition
// library. They are satisfied by Int's value-returning method set; the
// assertions at the bottom keep that contract checked at compile time.

// AdditiveGroup is the additive capability set: closure under addition
// and subtraction, a negation, and an identity test.
type AdditiveGroup[T any] interface {
	Add(T) T
	Sub(T) T
	Neg() T
	IsZero() bool
}

// MultiplicativeMonoid is the multiplicative capability set.
type MultiplicativeMonoid[T any] interface {
	Mul(T) T
}

// TotalOrder is the ordering capability set. Cmp returns -1, 0 or +1 and
// must be a strict total order consistent with subtraction's sign.
type TotalOrder[T any] interface {
	Cmp(T) int
	Equal(T) bool
}

// Converting is the narrowing capability set; both conversions fail when
// the value does not fit the native width.
type Converting interface {
	Int64() (int64, error)
	Uint64() (uint64, error)
}

var (
	_ AdditiveGroup[Int]        = Int{}
	_ MultiplicativeMonoid[Int] = Int{}
	_ TotalOrder[Int]           = Int{}
	_ Converting                = Int{}
)
