// Package config resolves the engine's tuning thresholds. The resolution
// chain, highest priority first:
//
//  1. Environment variables (MPINT_KARATSUBA_THRESHOLD, MPINT_PARALLEL_THRESHOLD)
//  2. Cached calibration profile (loaded by the caller, see internal/calibration)
//  3. Adaptive hardware estimation (this package)
//
// A zero field means "not yet resolved"; each stage only fills fields the
// previous stages left at zero, so explicit settings always win.
package config

import "runtime"

// EnvPrefix is prepended to every environment variable this module reads.
const EnvPrefix = "MPINT_"

// MinKaratsubaWords is the smallest usable Karatsuba threshold. Below
// four words the half-sums of a split can be as long as the operands
// themselves and the recursion would not shrink.
const MinKaratsubaWords = 4

// Static schoolbook-to-Karatsuba crossovers, in words. Empirically the
// divide-and-conquer bookkeeping costs more than it saves below a few
// dozen words on 64-bit hardware; 32-bit words halve per-word throughput,
// pushing the crossover higher.
const (
	DefaultKaratsubaWords64 = 40
	DefaultKaratsubaWords32 = 64
)

// Thresholds carries the resolved tuning parameters for the engine.
type Thresholds struct {
	// KaratsubaWords is the operand length, in words, at which
	// multiplication switches from schoolbook to Karatsuba.
	KaratsubaWords int

	// ParallelWords is the operand length at which Karatsuba runs its
	// sub-products concurrently. Negative disables parallelism.
	ParallelWords int

	// ProfilePath overrides the calibration profile location; empty
	// selects the default path in the user's home directory.
	ProfilePath string
}

// FromEnv reads the environment stage of the chain. Unset or malformed
// variables leave the corresponding field at zero for later stages.
func FromEnv() Thresholds {
	return Thresholds{
		KaratsubaWords: getEnvInt("KARATSUBA_THRESHOLD", 0),
		ParallelWords:  getEnvInt("PARALLEL_THRESHOLD", 0),
		ProfilePath:    getEnvString("CALIBRATION_PROFILE", ""),
	}
}

// ApplyAdaptive fills every threshold still at zero with a hardware
// estimate and clamps the Karatsuba threshold to its usable minimum. It
// is the final stage of the chain.
func ApplyAdaptive(t Thresholds) Thresholds {
	if t.KaratsubaWords == 0 {
		t.KaratsubaWords = EstimateKaratsubaWords()
	}
	if t.KaratsubaWords < MinKaratsubaWords {
		t.KaratsubaWords = MinKaratsubaWords
	}
	if t.ParallelWords == 0 {
		t.ParallelWords = EstimateParallelWords()
	}
	return t
}

// Verbose reports whether MPINT_VERBOSE asks for diagnostic logging.
func Verbose() bool {
	return getEnvBool("VERBOSE", false)
}

// EstimateKaratsubaWords returns a word-size-based estimate of the
// Karatsuba crossover without running benchmarks.
func EstimateKaratsubaWords() int {
	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 64 {
		return DefaultKaratsubaWords64
	}
	return DefaultKaratsubaWords32
}

// EstimateParallelWords returns a core-count-based estimate of the
// parallel recursion threshold without running benchmarks. Spawning
// goroutines below these sizes costs more than the concurrency returns.
func EstimateParallelWords() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return -1 // no parallelism
	case numCPU <= 4:
		return 1 << 15
	case numCPU <= 8:
		return 1 << 14
	default:
		return 1 << 13
	}
}
