// Multiplication engine: schoolbook below the Karatsuba threshold, a
// three-product divide-and-conquer split above it, and concurrent
// sub-products for very large operands.

package mpint

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/mpint/internal/arith"
	"github.com/agbru/mpint/internal/calibration"
	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/metrics"
)

// Threshold resolution chain (highest priority first):
//  1. Environment variables (MPINT_KARATSUBA_THRESHOLD, MPINT_PARALLEL_THRESHOLD)
//  2. Cached calibration profile (~/.mpint_calibration.json, see Calibrate)
//  3. Adaptive hardware estimation (internal/config)
//
// Resolved once, on first use, and read-only afterwards.
var (
	thresholdsOnce sync.Once
	resolved       config.Thresholds
)

func thresholds() config.Thresholds {
	thresholdsOnce.Do(func() {
		cfg := config.FromEnv()
		if p, ok := calibration.LoadCached(cfg.ProfilePath); ok {
			cfg = p.Fill(cfg)
		}
		resolved = config.ApplyAdaptive(cfg)
	})
	return resolved
}

// mul computes z = x * y using the configured thresholds. z must not
// alias x or y.
func (z nat) mul(x, y nat) nat {
	t := thresholds()
	return z.mulWith(x, y, t.KaratsubaWords, t.ParallelWords)
}

// mulWith is mul with explicit thresholds, in words. It is the entry point
// for calibration and for tests that pin the algorithm choice.
func (z nat) mulWith(x, y nat, karatsubaWords, parallelWords int) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}

	switch {
	case n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}

	if karatsubaWords < config.MinKaratsubaWords {
		karatsubaWords = config.MinKaratsubaWords
	}
	if n < karatsubaWords {
		metrics.MulOps.WithLabelValues("basic").Inc()
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}

	algo := "karatsuba"
	if parallelWords > 0 && n >= parallelWords {
		algo = "karatsuba_parallel"
	}
	metrics.MulOps.WithLabelValues(algo).Inc()
	return karatsubaMul(x, y, karatsubaWords, parallelWords).norm()
}

// basicMul computes the full schoolbook product x*y into z, which must be
// len(x)+len(y) words long.
func basicMul(z, x, y nat) {
	for i := range z {
		z[i] = 0
	}
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = arith.AddMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsubaMul computes x*y by splitting both operands at half the longer
// length: x = x1·B^k + x0, y = y1·B^k + y0, then
//
//	x*y = p2·B^2k + (p1-p0-p2)·B^k + p0
//
// with p0 = x0·y0, p2 = x1·y1 and p1 = (x0+x1)·(y0+y1). When the shorter
// operand fits entirely below the split, y1 is empty and the same combine
// still holds with p2 = 0. Recursion bottoms out in basicMul below
// karatsubaWords; every sub-operand has at most k+1 < max(m,n) words, so
// the recursion terminates for any threshold >= config.MinKaratsubaWords.
func karatsubaMul(x, y nat, karatsubaWords, parallelWords int) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	if n == 0 {
		return nil
	}
	if n < karatsubaWords || n == 1 {
		z := make(nat, m+n)
		basicMul(z, x, y)
		return z.norm()
	}

	k := (m + 1) / 2
	x0, x1 := x[:k].norm(), x[k:].norm()
	y0, y1 := y, nat(nil)
	if n > k {
		y0, y1 = y[:k].norm(), y[k:].norm()
	}

	s1 := nat(nil).add(x0, x1)
	s2 := nat(nil).add(y0, y1)

	var p0, p1, p2 nat
	if parallelWords > 0 && n >= parallelWords {
		// The three sub-products are independent pure computations; fan
		// them out. Deeper levels fall below the threshold and stay
		// sequential.
		g := new(errgroup.Group)
		g.Go(func() error { p0 = karatsubaMul(x0, y0, karatsubaWords, parallelWords); return nil })
		g.Go(func() error { p2 = karatsubaMul(x1, y1, karatsubaWords, parallelWords); return nil })
		g.Go(func() error { p1 = karatsubaMul(s1, s2, karatsubaWords, parallelWords); return nil })
		g.Wait() //nolint:errcheck // the goroutines cannot fail
	} else {
		p0 = karatsubaMul(x0, y0, karatsubaWords, parallelWords)
		p2 = karatsubaMul(x1, y1, karatsubaWords, parallelWords)
		p1 = karatsubaMul(s1, s2, karatsubaWords, parallelWords)
	}

	// p1 >= p0 + p2 always, so the middle term never underflows.
	p1 = p1.sub(p1, p0)
	p1 = p1.sub(p1, p2)

	z := make(nat, m+n+1)
	copy(z, p0)
	addAt(z, p1, k)
	addAt(z, p2, 2*k)
	return z.norm()
}

// addAt computes z += x << (i*wordBits). z must be long enough to absorb
// the carry.
func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		c := arith.AddVV(z[i:i+n], z[i:], x)
		if c != 0 {
			arith.AddVW(z[i+n:], z[i+n:], c)
		}
	}
}
