package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStarted     = "Worker pool started"
	LogMsgPoolStopped     = "Worker pool stopped"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Requalification Worker
// ============================================================================

// Log messages for requalification monitor polls
const (
	LogMsgRequalificationSkipped = "Requalification poll skipped, nobody is watching"
	LogMsgRequalificationPolled  = "Requalification poll completed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
