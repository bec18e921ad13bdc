package instrumentation

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSpace              = "inventory_search"
	HttpStatusHistogram    = "http_status_histogram"
	InventoryRequestsTotal = "inventory_requests_total"
	SearchMenuViewsTotal   = "search_menu_views_total"
	WorkloadProbeLatency   = "workload_probe_latency"
)

type Metrics struct {
	HttpStatusHistogram prometheus.HistogramVec

	// Custom metrics
	InventoryRequestsTotal prometheus.CounterVec
	SearchMenuViewsTotal   prometheus.CounterVec
	WorkloadProbeLatency   prometheus.Histogram

	reg *prometheus.Registry
}

// See: https://prometheus.io/docs/tutorials/understanding_metric_types/#types-of-metrics
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		panic("reg cannot be nil")
	}
	metrics := &Metrics{
		reg: reg,
		HttpStatusHistogram: *promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      HttpStatusHistogram,
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status", "method", "path"}),

		InventoryRequestsTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      InventoryRequestsTotal,
			Help:      "Outbound host-inventory requests by operation and status",
		}, []string{"operation", "status"}),
		SearchMenuViewsTotal: *promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: NameSpace,
			Name:      SearchMenuViewsTotal,
			Help:      "Resolved search menu views by type",
		}, []string{"type"}),
		WorkloadProbeLatency: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: NameSpace,
			Name:      WorkloadProbeLatency,
			Help:      "Time to settle all three workload existence probes",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(collectors.NewBuildInfoCollector())

	return metrics
}

func (m *Metrics) RecordInventoryRequest(operation string, statusCode int) {
	if m != nil {
		m.InventoryRequestsTotal.With(prometheus.Labels{
			"operation": operation,
			"status":    strconv.Itoa(statusCode),
		}).Inc()
	}
}

func (m *Metrics) RecordSearchMenuView(viewType string) {
	if m != nil {
		m.SearchMenuViewsTotal.With(prometheus.Labels{"type": viewType}).Inc()
	}
}

func (m Metrics) Registry() *prometheus.Registry {
	return m.reg
}
