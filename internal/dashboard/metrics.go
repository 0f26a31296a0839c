package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ortelius/railwatch-board/model"
)

// Metrics are the Prometheus collectors updated by the controller
type Metrics struct {
	Loads         *prometheus.CounterVec
	Checks        *prometheus.CounterVec
	Incidents     *prometheus.GaugeVec
	Filtered      prometheus.Gauge
	LastLoadEpoch prometheus.Gauge
}

// NewMetrics registers the dashboard collectors on reg. A nil reg uses a
// private registry so tests can build many controllers.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		Loads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "railwatch_feed_loads_total",
			Help: "Full feed loads by result",
		}, []string{"result"}),
		Checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "railwatch_freshness_checks_total",
			Help: "Freshness checks by result",
		}, []string{"result"}),
		Incidents: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "railwatch_incidents",
			Help: "Incidents in the loaded feed by status",
		}, []string{"status"}),
		Filtered: factory.NewGauge(prometheus.GaugeOpts{
			Name: "railwatch_incidents_filtered",
			Help: "Incidents in the current filtered view",
		}),
		LastLoadEpoch: factory.NewGauge(prometheus.GaugeOpts{
			Name: "railwatch_feed_last_load_timestamp_seconds",
			Help: "Unix time of the last successful load",
		}),
	}
}

func (m *Metrics) observeDataset(incidents []model.Incident) {
	m.Incidents.Reset()
	for _, s := range model.Statuses {
		m.Incidents.WithLabelValues(string(s)).Set(0)
	}
	for i := range incidents {
		m.Incidents.WithLabelValues(string(incidents[i].Status)).Inc()
	}
}
