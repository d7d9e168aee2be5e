// Package noticemetrics exports Prometheus metrics for a notice scheduler.
package noticemetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

// Metrics groups the collectors fed by Observer.
type Metrics struct {
	// Spawned counts records that entered the collection.
	Spawned prometheus.Counter
	// Closed counts records removed by an explicit close.
	Closed prometheus.Counter
	// Expired counts records dropped by a tick after running out of lifetime.
	Expired prometheus.Counter
	// Ticks counts applied ticks.
	Ticks prometheus.Counter
	// Actions counts non-tick actions by kind.
	Actions *prometheus.CounterVec
	// Active is the current collection size.
	Active prometheus.Gauge
	// Paused is the number of paused records.
	Paused prometheus.Gauge
}

// New creates the collectors under namespace and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Spawned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notices_spawned_total",
			Help:      "Total number of notifications spawned",
		}),
		Closed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notices_closed_total",
			Help:      "Total number of notifications closed explicitly",
		}),
		Expired: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notices_expired_total",
			Help:      "Total number of notifications removed after their lifetime ran out",
		}),
		Ticks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notice_ticks_total",
			Help:      "Total number of timer ticks applied",
		}),
		Actions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notice_actions_total",
			Help:      "Total number of dispatched actions by kind",
		}, []string{"action"}),
		Active: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "notices_active",
			Help:      "Number of notifications currently displayed",
		}),
		Paused: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "notices_paused",
			Help:      "Number of notifications currently paused",
		}),
	}
}

// Observer returns a notice.Observer that records every transition in m.
// Register it with Scheduler.Observe or Store.Subscribe.
func Observer[T notice.Record[T]](m *Metrics) notice.Observer[T] {
	return func(tr notice.Transition[T]) {
		if tr.Action.Kind == notice.ActionTick {
			m.Ticks.Inc()
		} else {
			m.Actions.WithLabelValues(tr.Action.Kind.String()).Inc()
		}

		m.Spawned.Add(float64(len(tr.Added())))

		if removed := len(tr.Removed()); removed > 0 {
			switch tr.Action.Kind {
			case notice.ActionTick:
				m.Expired.Add(float64(removed))
			case notice.ActionClose:
				m.Closed.Add(float64(removed))
			}
		}

		paused := 0
		for _, r := range tr.Next.Items() {
			if r.Paused() {
				paused++
			}
		}
		m.Active.Set(float64(tr.Next.Len()))
		m.Paused.Set(float64(paused))
	}
}
