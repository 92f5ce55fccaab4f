// Package metrics exposes Prometheus instrumentation for the arithmetic
// engine: which multiplication and division paths run, and which kernel
// implementation was selected at startup. The collectors live on a private
// registry so embedding programs opt in by mounting Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	// MulOps counts magnitude multiplications by algorithm path
	// ("basic", "karatsuba" or "karatsuba_parallel").
	MulOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mpint",
		Name:      "multiplications_total",
		Help:      "Magnitude multiplications by algorithm path.",
	}, []string{"algorithm"})

	// DivOps counts magnitude divisions by path ("single_word" or "knuth").
	DivOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mpint",
		Name:      "divisions_total",
		Help:      "Magnitude divisions by algorithm path.",
	}, []string{"path"})

	// KernelImpl records the word-vector kernel implementation selected at
	// init; the gauge for the active implementation is set to 1.
	KernelImpl = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mpint",
		Name:      "kernel_implementation",
		Help:      "Active word-vector kernel implementation (1 = selected).",
	}, []string{"impl"})
)

func init() {
	registry.MustRegister(MulOps, DivOps, KernelImpl)
}

// Handler returns an HTTP handler serving the engine's metric registry in
// the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Registry returns the engine's registry as a Gatherer, for tests and
// embedding programs that scrape in-process.
func Registry() prometheus.Gatherer { return registry }
