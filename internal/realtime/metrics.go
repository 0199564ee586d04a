package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/binharademo/trelloclone/internal/domain"
)

// Delivery outcomes recorded in realtime_deliveries_total.
const (
	resultDelivered = "delivered"
	resultDropped   = "dropped"
)

// Metrics holds the bus collectors.
type Metrics struct {
	published   *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	connections prometheus.Gauge
	relayErrors prometheus.Counter
}

// NewMetrics registers the bus collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	m := &Metrics{
		published: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realtime",
			Name:      "events_published_total",
			Help:      "Board events published, by kind.",
		}, []string{"kind"}),
		deliveries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realtime",
			Name:      "deliveries_total",
			Help:      "Per-connection delivery attempts, by result.",
		}, []string{"result"}),
		connections: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "realtime",
			Name:      "connections",
			Help:      "Connections currently attached to the bus.",
		}),
		relayErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: "realtime",
			Name:      "relay_errors_total",
			Help:      "Events the relay failed to forward.",
		}),
	}

	for _, k := range domain.AllEventKinds() {
		m.published.WithLabelValues(k.String())
	}
	m.deliveries.WithLabelValues(resultDelivered)
	m.deliveries.WithLabelValues(resultDropped)

	return m
}
