//go:build !amd64

package arith

// Non-amd64 architectures stay on the portable set. The accelerated set
// still compiles and is exercised by the equivalence tests; it just is not
// selected.
func init() {
	install(&portable)
}
