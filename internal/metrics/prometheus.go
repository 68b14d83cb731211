// Package metrics provides MetricsCollector implementations for the PeNeLoop
// library.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Callidon/peneloop-fedx/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	partitionsTotal   *prometheus.CounterVec
	partitionDuration *prometheus.HistogramVec
	partitionErrors   *prometheus.CounterVec
	binWeightMin      *prometheus.GaugeVec
	binWeightMax      *prometheus.GaugeVec
	binWeightSpread   *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Metric registration is deferred to the first recorded sample, so creating
// a collector never panics on duplicate registration at construction time.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "peneloop" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "peneloop"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.partitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "partitions_total",
			Help:      "Total partitions computed by algorithm.",
		}, []string{"algorithm"})

		p.partitionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "partition_duration_seconds",
			Help:      "Partition computation time in seconds by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}, []string{"algorithm"})

		p.partitionErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "partition_errors_total",
			Help:      "Total failed partition requests by algorithm selector.",
		}, []string{"algorithm"})

		p.binWeightMin = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "bin_weight_min",
			Help:      "Smallest bin weight of the last partition by algorithm.",
		}, []string{"algorithm"})

		p.binWeightMax = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "bin_weight_max",
			Help:      "Largest bin weight of the last partition by algorithm.",
		}, []string{"algorithm"})

		p.binWeightSpread = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "bin_weight_spread",
			Help:      "Difference between largest and smallest bin weight of the last partition by algorithm.",
		}, []string{"algorithm"})

		p.reg.MustRegister(p.partitionsTotal)
		p.reg.MustRegister(p.partitionDuration)
		p.reg.MustRegister(p.partitionErrors)
		p.reg.MustRegister(p.binWeightMin)
		p.reg.MustRegister(p.binWeightMax)
		p.reg.MustRegister(p.binWeightSpread)
	})
}

// RecordPartition records a successful partition computation.
func (p *PrometheusCollector) RecordPartition(algorithm string, _ /* sources */, _ /* pages */ int, duration float64) {
	p.ensureRegistered()
	p.partitionsTotal.WithLabelValues(algorithm).Inc()
	p.partitionDuration.WithLabelValues(algorithm).Observe(duration)
}

// RecordImbalance records the bin weight spread of a computed partition.
func (p *PrometheusCollector) RecordImbalance(algorithm string, minWeight, maxWeight int) {
	p.ensureRegistered()
	p.binWeightMin.WithLabelValues(algorithm).Set(float64(minWeight))
	p.binWeightMax.WithLabelValues(algorithm).Set(float64(maxWeight))
	p.binWeightSpread.WithLabelValues(algorithm).Set(float64(maxWeight - minWeight))
}

// RecordPartitionError records a failed partition request.
func (p *PrometheusCollector) RecordPartitionError(algorithm string) {
	p.ensureRegistered()
	p.partitionErrors.WithLabelValues(algorithm).Inc()
}
