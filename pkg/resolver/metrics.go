package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of the resolutions counter.
const (
	OutcomeResolved     = "resolved"
	OutcomeAmbiguous    = "ambiguous"
	OutcomeInaccessible = "inaccessible"
	OutcomeNotFound     = "not_found"
	OutcomeCanceled     = "canceled"
)

// Metrics collects resolver statistics.
type Metrics struct {
	resolutions   *prometheus.CounterVec
	bucketsWalked prometheus.Histogram
	candidates    prometheus.Counter
}

// NewMetrics constructs Metrics registered on reg.  A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scoperank",
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Total name resolutions by outcome.",
		}, []string{"outcome"}),
		bucketsWalked: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scoperank",
			Subsystem: "resolver",
			Name:      "buckets_walked",
			Help:      "Number of tower levels visited per resolution.",
			Buckets:   prometheus.LinearBuckets(1, 1, 8),
		}),
		candidates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "scoperank",
			Subsystem: "resolver",
			Name:      "candidates_total",
			Help:      "Total candidates considered.",
		}),
	}
}

func (m *Metrics) observe(outcome string, walked, candidates int) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(outcome).Inc()
	m.bucketsWalked.Observe(float64(walked))
	m.candidates.Add(float64(candidates))
}
