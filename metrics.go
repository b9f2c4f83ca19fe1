package stl

import "github.com/prometheus/client_golang/prometheus"

// MetricsMemory wraps a Memory and exports what it admits as prometheus
// metrics. It implements prometheus.Collector.
type MetricsMemory struct {
	upstream Memory

	allocateBytesCounter   prometheus.Counter
	allocateObjectsCounter prometheus.Counter
	failuresCounter        prometheus.Counter
	inuseBytesGauge        prometheus.Gauge
}

// NewMetricsMemory wraps upstream (HeapMemory when nil). Metric names are
// prefixed with namespace and the "memory" subsystem.
func NewMetricsMemory(upstream Memory, namespace string) *MetricsMemory {
	if upstream == nil {
		upstream = HeapMemory()
	}
	return &MetricsMemory{
		upstream: upstream,
		allocateBytesCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "memory",
			Name:      "allocate_bytes_total",
			Help:      "Bytes of element blocks admitted.",
		}),
		allocateObjectsCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "memory",
			Name:      "allocate_blocks_total",
			Help:      "Element blocks admitted.",
		}),
		failuresCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "memory",
			Name:      "allocate_failures_total",
			Help:      "Element blocks refused.",
		}),
		inuseBytesGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "memory",
			Name:      "inuse_bytes",
			Help:      "Bytes of element blocks currently held.",
		}),
	}
}

var (
	_ Memory               = new(MetricsMemory)
	_ prometheus.Collector = new(MetricsMemory)
)

// Alloc admits size bytes through the upstream Memory and records the outcome.
func (m *MetricsMemory) Alloc(size uintptr) error {
	if err := m.upstream.Alloc(size); err != nil {
		m.failuresCounter.Inc()
		return err
	}
	m.allocateBytesCounter.Add(float64(size))
	m.allocateObjectsCounter.Inc()
	m.inuseBytesGauge.Add(float64(size))
	return nil
}

// Free returns size bytes to the upstream Memory.
func (m *MetricsMemory) Free(size uintptr) {
	m.upstream.Free(size)
	m.inuseBytesGauge.Sub(float64(size))
}

// Describe implements prometheus.Collector.
func (m *MetricsMemory) Describe(ch chan<- *prometheus.Desc) {
	m.allocateBytesCounter.Describe(ch)
	m.allocateObjectsCounter.Describe(ch)
	m.failuresCounter.Describe(ch)
	m.inuseBytesGauge.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *MetricsMemory) Collect(ch chan<- prometheus.Metric) {
	m.allocateBytesCounter.Collect(ch)
	m.allocateObjectsCounter.Collect(ch)
	m.failuresCounter.Collect(ch)
	m.inuseBytesGauge.Collect(ch)
}
