package mpint

import (
	"errors"
	"fmt"
)

// The error taxonomy is small and closed: division-family operations fail
// only with ErrDivisionByZero, parsing with ErrEmptyInput or
// *InvalidDigitError, narrowing conversions with *RangeOverflowError, and
// ExpMod additionally with ErrNegativeExponent. Nothing is retried or
// recovered internally; an invariant violation inside the engine is a
// defect, not an error value.
var (
	// ErrDivisionByZero is returned by QuoRem, Quo, Rem and ExpMod when
	// the divisor or modulus is zero.
	ErrDivisionByZero = errors.New("mpint: division by zero")

	// ErrEmptyInput is returned by Parse when no digits follow the
	// optional sign, or the input is empty.
	ErrEmptyInput = errors.New("mpint: empty digit string")

	// ErrNegativeExponent is returned by ExpMod for a negative exponent.
	ErrNegativeExponent = errors.New("mpint: negative exponent")
)

// An InvalidDigitError reports a character outside the digit alphabet of
// the requested base, with enough context to point at it, or a base
// outside the supported range.
type InvalidDigitError struct {
	Char rune // the offending character; zero for a bad base
	Pos  int  // byte offset of Char in the input; -1 for a bad base
	Base int  // the base Parse was called with
}

func (e *InvalidDigitError) Error() string {
	if e.Base < MinBase || e.Base > MaxBase {
		return fmt.Sprintf("mpint: base %d out of range [%d, %d]", e.Base, MinBase, MaxBase)
	}
	return fmt.Sprintf("mpint: invalid digit %q at position %d in base %d", e.Char, e.Pos, e.Base)
}

// A RangeOverflowError reports a narrowing conversion whose target type
// cannot hold the value.
type RangeOverflowError struct {
	Target string // the native type name, e.g. "int64"
}

func (e *RangeOverflowError) Error() string {
	return fmt.Sprintf("mpint: value out of range for %s", e.Target)
}
