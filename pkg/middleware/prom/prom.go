// Package prom provides a middleware that instruments dispatches with
// Prometheus metrics.
package prom

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/stratum"
	"github.com/aretw0/stratum/pkg/domain"
	"github.com/aretw0/stratum/pkg/ports"
)

// Metrics holds the dispatch instruments. One Metrics value can serve several
// stores; the action type label keeps series apart.
type Metrics struct {
	dispatches *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the dispatch metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stratum_dispatches_total",
				Help: "Total dispatched actions by type and outcome.",
			},
			[]string{"action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "stratum_dispatch_duration_seconds",
				Help: "Dispatch latency, including reducer and listener time.",
			},
			[]string{"action"},
		),
	}

	for _, collector := range []prometheus.Collector{m.dispatches, m.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("register dispatch metrics: %w", err)
		}
	}
	return m, nil
}

// Middleware returns the instrumentation middleware recording into m.
func Middleware[S any](m *Metrics) stratum.Middleware[S] {
	return func(api ports.API[S]) func(stratum.Dispatch) stratum.Dispatch {
		return func(next stratum.Dispatch) stratum.Dispatch {
			return func(a domain.Action) (domain.Action, error) {
				start := time.Now()
				result, err := next(a)

				outcome := "ok"
				if err != nil {
					outcome = "error"
				}
				m.dispatches.WithLabelValues(a.Type, outcome).Inc()
				m.duration.WithLabelValues(a.Type).Observe(time.Since(start).Seconds())
				return result, err
			}
		}
	}
}
