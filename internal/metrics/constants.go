package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameReportsRendered    = "reports_rendered_total"
	MetricNameReportsDownloaded  = "reports_downloaded_total"
	MetricNameFreeCodesGenerated = "free_codes_generated_total"
	MetricNameCodeRedemptions    = "code_redemptions_total"
	MetricNameCheckoutSessions   = "checkout_sessions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextReportsRendered    = "Total number of reports rendered, by mode (full or locked)"
	HelpTextReportsDownloaded  = "Total number of report documents downloaded"
	HelpTextFreeCodesGenerated = "Total number of free access codes generated"
	HelpTextCodeRedemptions    = "Total number of access code redemption attempts, by result"
	HelpTextCheckoutSessions   = "Total number of checkout session creation attempts, by result"
)

// ============================================================================
// Label Names and Values
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelMode   = "mode"
	LabelResult = "result"
)

// Render modes
const (
	ModeFull   = "full"
	ModeLocked = "locked"
)

// Redemption and checkout results
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultCreated  = "created"
	ResultError    = "error"
)

// HTTPLatencyBuckets are the histogram buckets for request duration.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
