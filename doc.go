// Package mpint implements arbitrary-precision signed integer arithmetic
// on machine-word limbs.
//
// The public type is Int, an immutable sign-magnitude value; magnitudes
// are little-endian word vectors handled by carry-propagating kernels in
// internal/arith. Two kernel implementations exist, a portable one and an
// unrolled one using reciprocal-based division; the faster one is picked
// once at startup from CPU features and the two are kept bit-for-bit
// equivalent by the test suite.
//
// Multiplication switches from schoolbook to Karatsuba above a threshold
// resolved from, in priority order, environment variables (MPINT_ prefix),
// a cached calibration profile (see Calibrate), and a hardware estimate.
// Division uses a single-word fast path and Knuth's Algorithm D for longer
// divisors. Parse and Text convert to and from digit strings in bases 2
// through 36.
package mpint
