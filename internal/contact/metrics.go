package contact

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the submissions counter.
const (
	outcomeSent     = "sent"
	outcomeDryRun   = "dry_run"
	outcomeInvalid  = "invalid"
	outcomeBusy     = "busy"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Metrics holds the contact form collectors.
type Metrics struct {
	Submissions  *prometheus.CounterVec
	RelayLatency prometheus.Histogram
	InFlight     prometheus.Gauge
}

// NewMetrics registers the contact collectors on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "webgro",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),
		RelayLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "webgro",
			Subsystem: "contact",
			Name:      "relay_duration_seconds",
			Help:      "Latency of form relay calls",
			Buckets:   prometheus.DefBuckets,
		}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "webgro",
			Subsystem: "contact",
			Name:      "in_flight",
			Help:      "Contact submissions currently being relayed",
		}),
	}
}

func (m *Metrics) record(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}
