//go:build amd64

package arith

import "golang.org/x/sys/cpu"

// Kernel selection happens once, here, at process start. The unrolled
// carry chains only pay off when the compiler can lower them onto the
// ADX/BMI2 carry instructions; older amd64 parts stay on the portable set.
func init() {
	if cpu.X86.HasADX && cpu.X86.HasBMI2 {
		install(&accelerated)
	} else {
		install(&portable)
	}
}
