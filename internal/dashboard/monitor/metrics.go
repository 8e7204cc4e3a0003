package monitor

import (
	"VCS_Sandbox_Dashboard/pkg/access"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	checkDuration *prometheus.HistogramVec
	serviceUp     *prometheus.GaugeVec
	health        prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "service_check_duration_seconds",
			Help:      "Duration of backend service checks.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"service", "status"}),
		serviceUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "service_up",
			Help:      "1 if the last check of the service succeeded, 0 otherwise.",
		}, []string{"service"}),
		health: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "health_percentage",
			Help:      "Share of online services in the last check cycle.",
		}),
	}
	reg.MustRegister(m.checkDuration, m.serviceUp, m.health)
	return m
}

func (m *Metrics) ObserveCheck(service string, status access.Status, elapsed time.Duration) {
	m.checkDuration.WithLabelValues(service, string(status)).Observe(elapsed.Seconds())
	up := 0.0
	if status == access.StatusOnline {
		up = 1
	}
	m.serviceUp.WithLabelValues(service).Set(up)
}

func (m *Metrics) SetHealth(stats access.AggregateStatus) {
	m.health.Set(float64(stats.HealthPercentage))
}
