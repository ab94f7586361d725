package statebox

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by the Instrument
// Middleware. The collectors are safe for concurrent use, so one Metrics
// value may back several Stores
type Metrics struct {
	dispatches *prometheus.CounterVec
	panics     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

const actionLabel = "action"

// NewMetrics creates unregistered collectors under the given namespace
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatches_total",
				Help:      "Completed dispatch cycles by action type.",
			},
			[]string{actionLabel},
		),
		panics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_panics_total",
				Help:      "Dispatch cycles aborted by a panic.",
			},
			[]string{actionLabel},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Time spent in the dispatch chain.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{actionLabel},
		),
	}
}

// Register adds all collectors to the Registerer
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors returns the collectors managed by Metrics
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.dispatches, m.panics, m.duration}
}

// Instrument returns a Middleware that records every dispatch cycle in m
func Instrument[S, A any](m *Metrics) Middleware[S, A] {
	return MiddlewareFunc[S, A](
		func(_ Store[S, A], next Dispatch[A]) Dispatch[A] {
			return func(action A) {
				typ := TypeOf(action)
				start := time.Now()
				done := false
				defer func() {
					m.duration.WithLabelValues(typ).Observe(
						time.Since(start).Seconds(),
					)
					if done {
						m.dispatches.WithLabelValues(typ).Inc()
						return
					}
					m.panics.WithLabelValues(typ).Inc()
				}()

				next(action)
				done = true
			}
		},
	)
}
