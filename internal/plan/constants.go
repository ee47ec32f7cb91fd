package plan

import "time"

// ============================================================================
// Projection Cache
// ============================================================================

// CacheSchemaVersion is the current version of the cached projection layout.
// Increment when domain.CashFlow changes so stale entries are dropped.
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultProjectionCacheSize = 64
	DefaultProjectionCacheTTL  = 10 * time.Minute
)

// ============================================================================
// Event Sources
// ============================================================================

// Sources recorded in event metadata
const (
	SourceAPI = "api"
	SourceCLI = "cli"
)

// ============================================================================
// Notices
// ============================================================================

// Notice message formats
const (
	MsgNegativeMembers = "member count cannot be negative (tier %d)"
	MsgRequalification = "tier %d members must requalify: earnings reached %gx the join fee"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgTableUpdated        = "Plan table updated"
	LogMsgTableReset          = "Plan table reset"
	LogMsgMembersClamped      = "Negative member count clamped to zero"
	LogMsgRequalificationHit  = "Tiers require requalification"
	LogMsgPublishFailed       = "Failed to publish plan event"
	LogMsgProjectionCacheHit  = "Cash flow projection served from cache"
	LogMsgProjectionCacheMiss = "Cash flow projection computed"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgLevelFormat       = "%w: %d (expected %d-%d)"
	ErrMsgTableSizeFormat   = "%w: got %d counts, expected %d"
	ErrMsgHorizonFormat     = "%w: %d (expected 0-%d)"
	ErrMsgMemberLimitFormat = "%w: %d at tier %d (max %d)"
)
