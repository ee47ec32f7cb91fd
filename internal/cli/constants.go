package cli

// AppName is the binary name shown in usage
const AppName = "tiercalc"

// Flag names and defaults
const (
	FlagRates    = "rates"
	FlagLogLevel = "log-level"
	FlagFile     = "file"
	FlagJSON     = "json"
	FlagDays     = "days"

	DefaultLevel = "warn"
	DefaultDays  = 30
	JSONIndent   = "  "
)

// Output messages
const (
	MsgNoRequalification = "No tier requires requalification."
	MsgRecommendation    = "Recommended recruitment: %s\n"
	MsgWarningLine       = "Warning: %s\n"
)

// Error messages
const (
	ErrMsgLoadRatesFailed  = "load rates: %w"
	ErrMsgReadPlanFailed   = "read plan file %s: %w"
	ErrMsgUnknownPlanKeys  = "%w: plan file %s has unknown keys %v"
	ErrMsgParseCountFailed = "%w: member count %q is not an integer"
	ErrMsgParseLevelFailed = "%w: tier level %q is not an integer"
	ErrMsgCountsAndFile    = "%w: pass member counts or --file, not both"
	ErrMsgWrongCountArgs   = "%w: expected %d member counts, got %d"
	ErrMsgEncodeJSONFailed = "encode evaluation: %w"
)
