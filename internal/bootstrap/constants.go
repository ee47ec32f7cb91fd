package bootstrap

// =============================================================================
// Event System
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingMonitor      = "Stopping requalification monitor..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgComponentStopped     = "Component stopped"
	LogMsgStopTimedOut         = "Component did not stop before shutdown deadline"
)

// Component names for shutdown logging
const (
	FieldComponent          = "component"
	ComponentNameScheduler  = "scheduler"
	ComponentNameWorkerPool = "worker pool"
	ComponentNameSSEHub     = "sse hub"
)
