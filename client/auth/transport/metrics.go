package transport

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Refresh outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeShared  = "shared"
	OutcomeSkipped = "skipped"
)

// Metrics holds refresh coordinator counters
type Metrics struct {
	Refresh *prometheus.CounterVec
	Replay  prometheus.Counter
}

// NewMetrics creates counters and registers them with registerer when not nil.
// Counters already registered by another RoundTripper are reused.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	ret := &Metrics{
		Refresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taskmgr",
			Subsystem: "client",
			Name:      "refresh_total",
			Help:      "Token refresh attempts by outcome.",
		}, []string{"outcome"}),
		Replay: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "taskmgr",
			Subsystem: "client",
			Name:      "replay_total",
			Help:      "Requests replayed after a refresh.",
		}),
	}
	if registerer == nil {
		return ret, nil
	}
	if err := registerer.Register(ret.Refresh); err != nil {
		var existing prometheus.AlreadyRegisteredError
		if !errors.As(err, &existing) {
			return nil, err
		}
		ret.Refresh = existing.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := registerer.Register(ret.Replay); err != nil {
		var existing prometheus.AlreadyRegisteredError
		if !errors.As(err, &existing) {
			return nil, err
		}
		ret.Replay = existing.ExistingCollector.(prometheus.Counter)
	}
	return ret, nil
}

func (m *Metrics) refreshed(outcome string) {
	m.Refresh.WithLabelValues(outcome).Inc()
}

func (m *Metrics) replayed() {
	m.Replay.Inc()
}
