package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgInvalidLevelParam = "Invalid tier level '%s'"
	ErrMsgInvalidDaysParam  = "Invalid days parameter '%s'"

	// Plan operation error messages
	ErrMsgSetTableFailed   = "Failed to update member counts"
	ErrMsgSetTierFailed    = "Failed to update tier"
	ErrMsgGetTierFailed    = "Failed to get tier"
	ErrMsgCashFlowFailed   = "Failed to project cash flow"
	ErrMsgRenderReportFail = "Failed to render report"
)

// Log messages
const (
	LogMsgPlanUpdated       = "Plan updated"
	LogMsgPlanReset         = "Plan reset"
	LogMsgInputsClamped     = "Negative member counts clamped"
	LogMsgRequalChecked     = "Requalification checked"
	LogMsgServiceError      = "Service error"
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgInvalidParam      = "Invalid parameter"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgReportWriteFailed = "Failed to write report"
	LogMsgOddLogFields      = "LogRequestFields called with odd number of arguments"
	LogMsgRequestDetails    = "Request details"
	LogMsgNotReady          = "Readiness check failed"
)

// Query parameters and defaults
const (
	QueryParamDays  = "days"
	URLParamLevel   = "level"
	DefaultDays     = 30
	ContentTypeText = "text/plain; charset=utf-8"
)
