package appkit

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics counts lifecycle traffic through an Application.
// A nil *metrics is valid and records nothing.
type metrics struct {
	selections *prometheus.CounterVec
	events     prometheus.Counter
	runs       prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	m := &metrics{
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appkit",
			Name:      "backend_selections_total",
			Help:      "Backend selection attempts by requested backend and result.",
		}, []string{"backend", "result"}),
		events: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appkit",
			Name:      "events_processed_total",
			Help:      "Native events dispatched through ProcessEvents.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appkit",
			Name:      "loop_runs_total",
			Help:      "Times the native main loop was entered.",
		}),
	}
	m.selections = register(reg, m.selections)
	m.events = register(reg, m.events)
	m.runs = register(reg, m.runs)
	return m
}

// register adds c to reg, reusing the collector already registered under
// the same descriptor so that several Applications can share a registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		Logger().Warn("appkit: metrics registration failed", "error", err)
	}
	return c
}

func (m *metrics) selected(name, result string) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(name, result).Inc()
}

func (m *metrics) processed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.events.Add(float64(n))
}

func (m *metrics) ran() {
	if m == nil {
		return
	}
	m.runs.Inc()
}
