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

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Plan metric names
const (
	MetricNamePlanTierMembers      = "plan_tier_members"
	MetricNamePlanTotalSales       = "plan_total_sales"
	MetricNamePlanTotalBonuses     = "plan_total_bonuses"
	MetricNamePlanCompanyProfit    = "plan_company_profit"
	MetricNamePlanBonusRatio       = "plan_bonus_ratio"
	MetricNamePlanRiskLevel        = "plan_risk_level"
	MetricNamePlanInputsClamped    = "plan_inputs_clamped_total"
	MetricNamePlanWarnings         = "plan_warnings_total"
	MetricNamePlanRequalifications = "plan_requalification_flags_total"
	MetricNamePlanRecommendedDaily = "plan_recommended_daily_recruitment"
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

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Plan metric help text
const (
	HelpTextPlanTierMembers      = "Current member count per tier"
	HelpTextPlanTotalSales       = "Total sales across all tiers"
	HelpTextPlanTotalBonuses     = "Total bonuses across all tiers"
	HelpTextPlanCompanyProfit    = "Sales minus bonuses"
	HelpTextPlanBonusRatio       = "Total bonuses divided by total sales, 0 without sales"
	HelpTextPlanRiskLevel        = "1 for the current risk level, 0 otherwise"
	HelpTextPlanInputsClamped    = "Total number of negative member counts clamped to zero"
	HelpTextPlanWarnings         = "Total number of messages written to the warning channel"
	HelpTextPlanRequalifications = "Total number of tiers flagged by requalification polls"
	HelpTextPlanRecommendedDaily = "Recommended daily recruitment for the current risk level"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelLevel  = "level"
	LabelRisk   = "risk"
	LabelKind   = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that no route pattern matched
const UnmatchedRoute = "unmatched"
