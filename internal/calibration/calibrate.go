package calibration

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/logging"
)

// tracerName identifies this package's spans to whatever otel tracer
// provider the embedding program has installed; with none installed the
// spans are no-ops.
const tracerName = "github.com/agbru/mpint/internal/calibration"

// A Bencher times one representative multiplication with the given
// Karatsuba threshold. The engine supplies the real implementation;
// tests substitute a mock.
type Bencher interface {
	Measure(ctx context.Context, thresholdWords int) (time.Duration, error)
}

// Candidates returns the Karatsuba thresholds worth measuring on this
// machine. The range brackets the static defaults; more cores justify
// probing lower crossovers because the parallel recursion starts paying
// earlier.
func Candidates() []int {
	base := []int{16, 24, 32, 40, 48, 64, 96}
	if runtime.NumCPU() >= 8 {
		return append([]int{8, 12}, base...)
	}
	return base
}

// Run measures every candidate threshold through b and returns the
// profile describing the fastest one. The parallel threshold is filled
// from the hardware estimate; measuring it would need long-running
// operands and is not worth the calibration time.
func Run(ctx context.Context, b Bencher, log logging.Logger) (Profile, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "calibration.run")
	defer span.End()

	best := 0
	bestTime := time.Duration(0)
	for _, threshold := range Candidates() {
		if err := ctx.Err(); err != nil {
			return Profile{}, err
		}

		_, tSpan := tracer.Start(ctx, "calibration.measure")
		tSpan.SetAttributes(attribute.Int("threshold_words", threshold))
		elapsed, err := b.Measure(ctx, threshold)
		tSpan.End()
		if err != nil {
			return Profile{}, err
		}

		log.Debug("measured candidate threshold",
			logging.Int("threshold_words", threshold),
			logging.Dur("elapsed", elapsed),
		)
		if best == 0 || elapsed < bestTime {
			best, bestTime = threshold, elapsed
		}
	}

	span.SetAttributes(attribute.Int("selected_threshold_words", best))
	log.Info("calibration selected threshold",
		logging.Int("threshold_words", best),
		logging.Dur("elapsed", bestTime),
	)

	return Profile{
		Version:        ProfileVersion,
		KaratsubaWords: best,
		ParallelWords:  config.EstimateParallelWords(),
		NumCPU:         runtime.NumCPU(),
		CreatedAt:      time.Now().UTC(),
	}, nil
}
