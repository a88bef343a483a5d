package feature

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts flag evaluations for observability dashboards.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	UnknownFlag *prometheus.CounterVec
}

// NewMetrics registers evaluation counters on the given registerer.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Evaluations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "flagkit_evaluations_total",
			Help: "Total number of feature flag evaluations by flag, reason and result",
		}, []string{"flag", "reason", "result"}),
		UnknownFlag: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "flagkit_unknown_flag_lookups_total",
			Help: "Total number of evaluations against flags that were never defined",
		}, []string{"flag"}),
	}
}

func (m *Metrics) observe(flagName string, d Decision) {
	m.Evaluations.WithLabelValues(flagName, d.Reason, strconv.FormatBool(d.Enabled)).Inc()
}

func (m *Metrics) observeUnknown(flagName string) {
	m.UnknownFlag.WithLabelValues(flagName).Inc()
}
