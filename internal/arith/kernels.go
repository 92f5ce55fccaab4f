package arith

import (
	"os"

	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/logging"
	"github.com/agbru/mpint/internal/metrics"
)

// Impl is a complete, interchangeable set of word-vector kernels. The
// portable and accelerated sets must produce identical output words and
// identical carry/borrow results for every input; that equivalence is a
// tested property, not an assumption.
type Impl struct {
	Name string

	AddVV     func(z, x, y []Word) (c Word)
	SubVV     func(z, x, y []Word) (c Word)
	AddVW     func(z, x []Word, y Word) (c Word)
	SubVW     func(z, x []Word, y Word) (c Word)
	ShlVU     func(z, x []Word, s uint) (c Word)
	ShrVU     func(z, x []Word, s uint) (c Word)
	MulAddVWW func(z, x []Word, y, r Word) (c Word)
	AddMulVVW func(z, x []Word, y Word) (c Word)
	DivWVW    func(z []Word, xn Word, x []Word, y Word) (r Word)
}

var portable = Impl{
	Name:      "portable",
	AddVV:     addVVGeneric,
	SubVV:     subVVGeneric,
	AddVW:     addVWGeneric,
	SubVW:     subVWGeneric,
	ShlVU:     shlVUGeneric,
	ShrVU:     shrVUGeneric,
	MulAddVWW: mulAddVWWGeneric,
	AddMulVVW: addMulVVWGeneric,
	DivWVW:    divWVWGeneric,
}

// The accelerated set shares the shift kernels with the portable set;
// shifting carries no chain to fuse.
var accelerated = Impl{
	Name:      "unrolled",
	AddVV:     addVVUnrolled,
	SubVV:     subVVUnrolled,
	AddVW:     addVWUnrolled,
	SubVW:     subVWUnrolled,
	ShlVU:     shlVUGeneric,
	ShrVU:     shrVUGeneric,
	MulAddVWW: mulAddVWWUnrolled,
	AddMulVVW: addMulVVWUnrolled,
	DivWVW:    divWVWRecip,
}

// active is assigned exactly once, from the per-architecture init in
// select_*.go, and is read-only afterwards.
var active = &portable

func install(impl *Impl) {
	active = impl
	metrics.KernelImpl.WithLabelValues(impl.Name).Set(1)
	if config.Verbose() {
		logging.New(os.Stderr).Debug("kernel implementation selected",
			logging.String("impl", impl.Name))
	}
}

// Active returns the kernel set selected at init.
func Active() *Impl { return active }

// Portable returns the portable kernel set regardless of what is active.
func Portable() *Impl { return &portable }

// Accelerated returns the accelerated kernel set regardless of what is
// active. It is valid on every architecture; selection, not availability,
// is architecture-specific.
func Accelerated() *Impl { return &accelerated }

// ImplName reports which kernel set is active, for diagnostics.
func ImplName() string { return active.Name }

// The exported kernels below dispatch through the active set. They are the
// only entry points the rest of the module uses.

// AddVV computes z = x + y and returns the outgoing carry.
func AddVV(z, x, y []Word) (c Word) { return active.AddVV(z, x, y) }

// SubVV computes z = x - y and returns the outgoing borrow.
func SubVV(z, x, y []Word) (c Word) { return active.SubVV(z, x, y) }

// AddVW computes z = x + y for a single word y and returns the carry.
func AddVW(z, x []Word, y Word) (c Word) { return active.AddVW(z, x, y) }

// SubVW computes z = x - y for a single word y and returns the borrow.
func SubVW(z, x []Word, y Word) (c Word) { return active.SubVW(z, x, y) }

// ShlVU computes z = x << s (0 <= s < WordBits) and returns the shifted-out
// high bits.
func ShlVU(z, x []Word, s uint) (c Word) { return active.ShlVU(z, x, s) }

// ShrVU computes z = x >> s (0 <= s < WordBits) and returns the shifted-out
// low bits.
func ShrVU(z, x []Word, s uint) (c Word) { return active.ShrVU(z, x, s) }

// MulAddVWW computes z = x*y + r for single words y, r and returns the
// outgoing carry word.
func MulAddVWW(z, x []Word, y, r Word) (c Word) { return active.MulAddVWW(z, x, y, r) }

// AddMulVVW computes z += x*y for a single word y and returns the outgoing
// carry word. This is the inner loop of schoolbook multiplication.
func AddMulVVW(z, x []Word, y Word) (c Word) { return active.AddMulVVW(z, x, y) }

// DivWVW divides the double-length value xn:x by the single word y,
// storing the quotient in z and returning the remainder. Requires y != 0
// and xn < y.
func DivWVW(z []Word, xn Word, x []Word, y Word) (r Word) { return active.DivWVW(z, xn, x, y) }
