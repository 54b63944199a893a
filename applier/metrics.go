package applier

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/erraggy/treepatch/patcherrors"
)

const metricsNamespace = "treepatch"

// Metrics records replay activity as Prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	patchesApplied *prometheus.CounterVec
	patchesPruned  prometheus.Counter
	patchesSkipped prometheus.Counter
	failures       *prometheus.CounterVec
	warnings       *prometheus.CounterVec
	duration       prometheus.Histogram
}

// NewMetrics creates the replay metrics and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		patchesApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "patches_applied_total",
				Help:      "Number of patches applied, by operation",
			},
			[]string{"op"},
		),
		patchesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patches_pruned_total",
			Help:      "Number of patches skipped because a later patch replaced the whole state",
		}),
		patchesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patches_skipped_total",
			Help:      "Number of patches skipped with a warning",
		}),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "apply_failures_total",
				Help:      "Number of failed apply calls, by error kind",
			},
			[]string{"kind"},
		),
		warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "apply_warnings_total",
				Help:      "Number of replay warnings, by category",
			},
			[]string{"category"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "apply_duration_seconds",
			Help:      "Duration of apply calls",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{
		m.patchesApplied, m.patchesPruned, m.patchesSkipped, m.failures, m.warnings, m.duration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, &patcherrors.ConfigError{Option: "WithMetrics", Message: "failed to register metrics", Cause: err}
		}
	}

	return m, nil
}

func (m *Metrics) observeApplied(op string) {
	if m == nil {
		return
	}
	m.patchesApplied.WithLabelValues(op).Inc()
}

func (m *Metrics) observePruned(n int) {
	if m == nil || n == 0 {
		return
	}
	m.patchesPruned.Add(float64(n))
}

func (m *Metrics) observeWarning(w *ApplyWarning) {
	if m == nil {
		return
	}
	m.patchesSkipped.Inc()
	m.warnings.WithLabelValues(string(w.Category)).Inc()
}

func (m *Metrics) observeFailure(err error) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(failureKind(err)).Inc()
}

func (m *Metrics) observeDuration(start time.Time) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
}

// failureKind maps an error to a low-cardinality label.
func failureKind(err error) string {
	switch {
	case errors.Is(err, patcherrors.ErrSecurity):
		return "security"
	case errors.Is(err, patcherrors.ErrPathResolution):
		return "path"
	case errors.Is(err, patcherrors.ErrUnknownOperation):
		return "unknown_op"
	case errors.Is(err, patcherrors.ErrUnsupportedOperation):
		return "unsupported_op"
	case errors.Is(err, patcherrors.ErrValidation):
		return "validation"
	case errors.Is(err, patcherrors.ErrConfig):
		return "config"
	case errors.Is(err, patcherrors.ErrParse):
		return "parse"
	default:
		return "other"
	}
}
