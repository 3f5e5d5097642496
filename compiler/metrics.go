package compiler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the optional Prometheus collectors a compile driver
// reports against. A nil *Metrics is valid everywhere it is accepted: all
// methods on it are no-ops, so embedders that do not want metrics simply
// pass nil.
type Metrics struct {
	compileTotal    prometheus.Counter
	compileErrors   prometheus.Counter
	compileDuration prometheus.Histogram
	evaluateErrors  prometheus.Counter
}

// NewMetrics builds an unregistered Metrics; call Register to expose it on
// a Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		compileTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "celc_compile_total",
			Help: "Number of Compile calls.",
		}),
		compileErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "celc_compile_errors_total",
			Help: "Number of Compile calls that returned a parse or transform error.",
		}),
		compileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "celc_compile_duration_seconds",
			Help:    "Time spent in Compile.",
			Buckets: prometheus.DefBuckets,
		}),
		evaluateErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "celc_evaluate_errors_total",
			Help: "Number of Evaluate calls that returned a CelError.",
		}),
	}
}

// Register exposes m's collectors on reg. Unlike the registry-at-init
// pattern, registration here is explicit and owned by the embedder: a
// compiler package has no business reaching for a global registry, and a
// process compiling many independent CEL programs may want its own
// registry per tenant.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if m == nil {
		return nil
	}
	collectors := []prometheus.Collector{m.compileTotal, m.compileErrors, m.compileDuration, m.evaluateErrors}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) observeCompile(start time.Time, err error) {
	if m == nil {
		return
	}
	m.compileTotal.Inc()
	m.compileDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.compileErrors.Inc()
	}
}

func (m *Metrics) observeEvaluateError() {
	if m == nil {
		return
	}
	m.evaluateErrors.Inc()
}
