// File: control/metrics.go

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tessellata/geomem/pool"
)

// PoolCollector exports shared pool accounting as Prometheus metrics,
// one series per element type.
type PoolCollector struct {
	rented      *prometheus.Desc
	returned    *prometheus.Desc
	outstanding *prometheus.Desc
}

// NewPoolCollector builds a collector over every shared pool. Register
// it with a prometheus.Registerer to expose the series.
func NewPoolCollector() *PoolCollector {
	return &PoolCollector{
		rented: prometheus.NewDesc(
			"geomem_pool_rented_total",
			"Buffers rented from the shared pool",
			[]string{"elem_type"}, nil),
		returned: prometheus.NewDesc(
			"geomem_pool_returned_total",
			"Buffers returned to the shared pool",
			[]string{"elem_type"}, nil),
		outstanding: prometheus.NewDesc(
			"geomem_pool_outstanding",
			"Buffers currently rented out",
			[]string{"elem_type"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rented
	ch <- c.returned
	ch <- c.outstanding
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	for elem, st := range pool.SnapshotAll() {
		ch <- prometheus.MustNewConstMetric(c.rented, prometheus.CounterValue, float64(st.TotalRented), elem)
		ch <- prometheus.MustNewConstMetric(c.returned, prometheus.CounterValue, float64(st.TotalReturned), elem)
		ch <- prometheus.MustNewConstMetric(c.outstanding, prometheus.GaugeValue, float64(st.Outstanding), elem)
	}
}

var _ prometheus.Collector = (*PoolCollector)(nil)
