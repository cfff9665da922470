package listmetrics

import (
	"iter"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/forward-list/pkg/forwardlist"
)

const (
	namespace = "forward_list"
	opLabel   = "op"
	listLabel = "list"

	opPushBack = "push_back"
	opPopFront = "pop_front"
	opReverse  = "reverse"
	opClear    = "clear"
)

type Metrics struct {
	operations *prometheus.CounterVec
	size       *prometheus.GaugeVec
	reverse    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "list",
			Name:      "operations_total",
			Help:      "Mutating list operations",
		}, []string{listLabel, opLabel}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "list",
			Name:      "size",
			Help:      "Current number of elements",
		}, []string{listLabel}),
		reverse: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "list",
			Name:      "reverse_seconds",
			Help:      "Reverse duration histogram in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12), //nolint:gomnd
		}, []string{listLabel}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.size, m.reverse} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

type metricMiddleware[T any] struct {
	name string
	next forwardlist.ForwardList[T]

	metrics *Metrics
}

func (m *metricMiddleware[T]) PushBack(v T) {
	m.next.PushBack(v)
	m.observe(opPushBack)
}

func (m *metricMiddleware[T]) PopFront() {
	m.next.PopFront()
	m.observe(opPopFront)
}

func (m *metricMiddleware[T]) Size() int {
	return m.next.Size()
}

func (m *metricMiddleware[T]) Reverse() {
	st := time.Now()

	m.next.Reverse()

	m.metrics.reverse.WithLabelValues(m.name).Observe(time.Since(st).Seconds())
	m.observe(opReverse)
}

func (m *metricMiddleware[T]) Clear() {
	m.next.Clear()
	m.observe(opClear)
}

func (m *metricMiddleware[T]) Begin() forwardlist.Iterator[T] {
	return m.next.Begin()
}

func (m *metricMiddleware[T]) End() forwardlist.Iterator[T] {
	return m.next.End()
}

func (m *metricMiddleware[T]) All() iter.Seq[T] {
	return m.next.All()
}

func (m *metricMiddleware[T]) observe(op string) {
	m.metrics.operations.WithLabelValues(m.name, op).Inc()
	m.metrics.size.WithLabelValues(m.name).Set(float64(m.next.Size()))
}

// NewMetricMiddleware wraps next so every mutation is counted under name.
func NewMetricMiddleware[T any](name string, next forwardlist.ForwardList[T], metrics *Metrics) forwardlist.ForwardList[T] {
	metrics.size.WithLabelValues(name).Set(float64(next.Size()))

	return &metricMiddleware[T]{name: name, next: next, metrics: metrics}
}
