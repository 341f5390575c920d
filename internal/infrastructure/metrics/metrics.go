package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Report metrics
	ReportsComputed *prometheus.CounterVec
	ReportDuration  *prometheus.HistogramVec
	RowsSkipped     *prometheus.CounterVec
	ReportCacheHits *prometheus.CounterVec

	// Sankey metrics
	SankeySessions prometheus.Gauge
	SankeyClicks   *prometheus.CounterVec

	// Sync metrics
	AccountsSynced prometheus.Counter
	SyncDuration   prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ReportsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerlens_reports_computed_total",
				Help: "Total number of reports computed, by report type",
			},
			[]string{"report"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerlens_report_duration_seconds",
				Help:    "Duration of report computations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),
		RowsSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerlens_rows_skipped_total",
				Help: "Rows excluded from aggregation, by diagnostic reason",
			},
			[]string{"report", "reason"},
		),
		ReportCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerlens_report_cache_hits_total",
				Help: "Report snapshot cache hits and misses",
			},
			[]string{"report", "result"},
		),
		SankeySessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerlens_sankey_sessions",
			Help: "Number of live sankey drill-down sessions",
		}),
		SankeyClicks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerlens_sankey_clicks_total",
				Help: "Sankey click events, by outcome",
			},
			[]string{"outcome"},
		),
		AccountsSynced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerlens_accounts_synced_total",
			Help: "Total number of accounts written to the analytics mirror",
		}),
		SyncDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerlens_sync_duration_seconds",
			Help:    "Duration of account sync runs",
			Buckets: prometheus.DefBuckets,
		}),
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerlens_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerlens_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
