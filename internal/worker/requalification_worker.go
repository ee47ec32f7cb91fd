package worker

import (
	"context"

	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/logger"
)

// RequalificationChecker runs one requalification poll over the live table
type RequalificationChecker interface {
	CheckRequalification(ctx context.Context) []domain.Notice
}

// Gate reports whether anyone is currently attending the warning channel
type Gate interface {
	Attended() bool
}

// GateFunc adapts a function to the Gate interface
type GateFunc func() bool

// Attended calls f
func (f GateFunc) Attended() bool {
	return f()
}

// AlwaysAttended is a gate that never skips a poll
var AlwaysAttended Gate = GateFunc(func() bool { return true })

// RequalificationWorker is the periodic requalification monitor. Each Process
// call is one poll: skipped when the gate says nobody is watching, otherwise
// every flagged tier raises a notice again.
type RequalificationWorker struct {
	checker RequalificationChecker
	gate    Gate
}

// NewRequalificationWorker creates the monitor job. A nil gate polls unconditionally.
func NewRequalificationWorker(checker RequalificationChecker, gate Gate) *RequalificationWorker {
	if gate == nil {
		gate = AlwaysAttended
	}
	return &RequalificationWorker{
		checker: checker,
		gate:    gate,
	}
}

// Process runs a single poll
func (w *RequalificationWorker) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if !w.gate.Attended() {
		log.Debug(LogMsgRequalificationSkipped)
		return nil
	}

	notices := w.checker.CheckRequalification(ctx)
	log.Debug(LogMsgRequalificationPolled, "notices", len(notices))
	return nil
}
