package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ReportsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReportsRendered,
			Help: HelpTextReportsRendered,
		},
		[]string{LabelMode},
	)

	ReportsDownloaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReportsDownloaded,
			Help: HelpTextReportsDownloaded,
		},
	)

	FreeCodesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFreeCodesGenerated,
			Help: HelpTextFreeCodesGenerated,
		},
	)

	CodeRedemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCodeRedemptions,
			Help: HelpTextCodeRedemptions,
		},
		[]string{LabelResult},
	)

	CheckoutSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheckoutSessions,
			Help: HelpTextCheckoutSessions,
		},
		[]string{LabelResult},
	)
)
