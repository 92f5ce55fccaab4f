package mpint

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/agbru/mpint/internal/calibration"
	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/logging"
)

// calibrationWords is the operand size used to time candidate thresholds:
// large enough that the Karatsuba recursion runs several levels deep,
// small enough that a full calibration pass stays well under a second on
// current hardware.
const calibrationWords = 512

// calibrationRounds is how many multiplications are timed per candidate.
const calibrationRounds = 8

// Calibrate measures the schoolbook-to-Karatsuba crossover on this
// machine and caches the result in the calibration profile
// (~/.mpint_calibration.json, or $MPINT_CALIBRATION_PROFILE). The profile
// feeds the threshold resolution chain of future processes; the current
// process keeps the thresholds it resolved at first use. Returns the
// selected threshold in words.
//
// Set MPINT_VERBOSE=1 to log per-candidate timings to stderr.
func Calibrate(ctx context.Context) (int, error) {
	log := logging.Nop()
	if config.Verbose() {
		log = logging.New(os.Stderr)
	}

	p, err := calibration.Run(ctx, newMulBencher(), log)
	if err != nil {
		return 0, err
	}
	if err := calibration.Save(config.FromEnv().ProfilePath, p); err != nil {
		return 0, err
	}
	return p.KaratsubaWords, nil
}

// mulBencher times the engine's own multiplication on fixed pseudo-random
// operands. The seed is fixed so every candidate threshold multiplies the
// same numbers.
type mulBencher struct {
	x, y nat
}

func newMulBencher() *mulBencher {
	rnd := rand.New(rand.NewSource(42))
	x := make(nat, calibrationWords)
	y := make(nat, calibrationWords)
	for i := range x {
		x[i] = Word(rnd.Uint64())
		y[i] = Word(rnd.Uint64())
	}
	return &mulBencher{x: x.norm(), y: y.norm()}
}

func (b *mulBencher) Measure(ctx context.Context, thresholdWords int) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < calibrationRounds; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		// Sequential only: the parallel threshold is estimated, not
		// measured, so goroutine scheduling noise stays out of the timing.
		_ = nat(nil).mulWith(b.x, b.y, thresholdWords, -1)
	}
	return time.Since(start), nil
}
