package metrics

import (
	"time"

	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "airport_registry"

// StatsSource is polled on every scrape for the registry size gauges.
type StatsSource interface {
	Stats() repository.Stats
}

type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New registers the request collectors and, when stats is non-nil, gauges
// reporting registry sizes.
func New(reg prometheus.Registerer, stats StatsSource) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Requests handled, by transport, operation and result.",
			},
			[]string{"transport", "operation", "result"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request handling latency, by transport and operation.",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"transport", "operation"},
		),
	}

	collectors := []prometheus.Collector{m.requests, m.latency}
	if stats != nil {
		collectors = append(collectors,
			sizeGauge("airports", "Airports currently registered.", stats, func(s repository.Stats) int { return s.Airports }),
			sizeGauge("flights", "Flights currently registered.", stats, func(s repository.Stats) int { return s.Flights }),
			sizeGauge("passengers", "Passengers currently registered.", stats, func(s repository.Stats) int { return s.Passengers }),
			sizeGauge("bookings", "Bookings currently held across all flights.", stats, func(s repository.Stats) int { return s.Bookings }),
		)
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func sizeGauge(name, help string, src StatsSource, pick func(repository.Stats) int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help},
		func() float64 { return float64(pick(src.Stats())) },
	)
}

// Observe records one handled request. A nil receiver is a no-op.
func (m *Metrics) Observe(transport, operation, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(transport, operation, result).Inc()
	m.latency.WithLabelValues(transport, operation).Observe(elapsed.Seconds())
}
