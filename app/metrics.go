package app

import (
	"strconv"

	"github.com/iov-one/pausegov"
	"github.com/iov-one/pausegov/errors"
	"github.com/iov-one/pausegov/x/pause"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	pathLabel   = "path"
	codeLabel   = "code"
	actionLabel = "action"
)

// Metrics counts the messages processed by a ledger.
type Metrics struct {
	delivered *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	actions   *prometheus.CounterVec
	height    prometheus.Gauge
}

// NewMetrics creates the ledger collectors and registers them with given
// registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		delivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_delivered_total",
				Help:      "number of messages delivered and committed",
			},
			[]string{pathLabel},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_rejected_total",
				Help:      "number of messages rejected with an error",
			},
			[]string{pathLabel, codeLabel},
		),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "number of state transitions by action tag",
			},
			[]string{actionLabel},
		),
		height: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "height",
				Help:      "version of the last commit",
			},
		),
	}
	for _, c := range []prometheus.Collector{m.delivered, m.rejected, m.actions, m.height} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "register collector: %s", err)
		}
	}
	return m, nil
}

func (m *Metrics) observeDeliver(path string, res *pausegov.DeliverResult, height int64) {
	if m == nil {
		return
	}
	m.delivered.WithLabelValues(path).Inc()
	for _, t := range res.Tags {
		if string(t.Key) == pause.TagAction {
			m.actions.WithLabelValues(string(t.Value)).Inc()
		}
	}
	m.height.Set(float64(height))
}

func (m *Metrics) observeReject(path string, err error) {
	if m == nil {
		return
	}
	code := strconv.FormatUint(uint64(errors.Code(err)), 10)
	m.rejected.WithLabelValues(path, code).Inc()
}
