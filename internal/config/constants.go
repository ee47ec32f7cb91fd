package config

import "time"

// Environment variable names
const (
	EnvPort                        = "PORT"
	EnvLogLevel                    = "LOG_LEVEL"
	EnvLogFormat                   = "LOG_FORMAT"
	EnvEnvironment                 = "ENVIRONMENT"
	EnvServiceName                 = "SERVICE_NAME"
	EnvVersion                     = "VERSION"
	EnvSchemaVersion               = "ENV_SCHEMA_VERSION"
	EnvPlanRatesFile               = "PLAN_RATES_FILE"
	EnvRequalificationPollInterval = "REQUALIFICATION_POLL_INTERVAL"
	EnvVisibilityGate              = "VISIBILITY_GATE"
	EnvProjectionCacheSize         = "PROJECTION_CACHE_SIZE"
	EnvProjectionCacheTTL          = "PROJECTION_CACHE_TTL"
	EnvRateLimitRPS                = "RATE_LIMIT_RPS"
	EnvRateLimitBurst              = "RATE_LIMIT_BURST"
	EnvTrustedProxies              = "TRUSTED_PROXIES"
	EnvWorkerCount                 = "WORKER_COUNT"
	EnvWorkerQueueSize             = "WORKER_QUEUE_SIZE"
	EnvShutdownTimeout             = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort                        = 8080
	DefaultLogLevel                    = "info"
	DefaultLogFormat                   = "text"
	DefaultEnvironment                 = "dev"
	DefaultServiceName                 = "tierplan"
	DefaultVersion                     = "dev"
	DefaultRequalificationPollInterval = 5 * time.Second
	DefaultVisibilityGate              = true
	DefaultProjectionCacheSize         = 64
	DefaultProjectionCacheTTL          = 10 * time.Minute
	DefaultRateLimitRPS                = 20.0
	DefaultRateLimitBurst              = 40
	DefaultWorkerCount                 = 2
	DefaultWorkerQueueSize             = 16
	DefaultShutdownTimeout             = 10 * time.Second
)

// Limits
const (
	MinPort = 1
	MaxPort = 65535
)

// Error messages
const (
	ErrMsgInvalidPort        = "invalid PORT value: %w"
	ErrMsgPortOutOfRange     = "PORT must be between %d and %d, got %d"
	ErrMsgNonPositiveSetting = "%s must be positive, got %v"
	ErrMsgSchemaMismatch     = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgRatesFileMissing   = "PLAN_RATES_FILE %s is not readable: %w"
	ErrMsgLoadRatesFailed    = "failed to load plan rates: %w"
	WarnMsgSchemaUnset       = "ENV_SCHEMA_VERSION is not set (expected %s)"
	WarnMsgVisibilityGateOff = "VISIBILITY_GATE is disabled in production: requalification polls run with no listeners"
	WarnMsgNoTrustedProxies  = "TRUSTED_PROXIES is empty: forwarding headers are ignored when rate limiting"
)
