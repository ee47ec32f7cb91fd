package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/TierPlan_Go/internal/scheduler"
	"github.com/osse101/TierPlan_Go/internal/server"
	"github.com/osse101/TierPlan_Go/internal/sse"
	"github.com/osse101/TierPlan_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	SSEHub     *sse.Hub
}

// GracefulShutdown stops components in dependency order:
// 1. SSE hub (closes every event stream so its handler returns)
// 2. HTTP server (stop accepting new requests, drain the rest)
// 3. Scheduler (no new polls)
// 4. Worker pool (finish the poll in flight)
//
// Event streams never finish on their own, so the server cannot drain
// while the hub still holds them open.
// Errors and timeouts are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.SSEHub != nil {
		stopWithDeadline(ctx, ComponentNameSSEHub, components.SSEHub.Stop)
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingMonitor)
	if components.Scheduler != nil {
		stopWithDeadline(ctx, ComponentNameScheduler, components.Scheduler.Stop)
	}
	if components.WorkerPool != nil {
		stopWithDeadline(ctx, ComponentNameWorkerPool, components.WorkerPool.Stop)
	}

	slog.Info(LogMsgServerStopped)
}

// stopWithDeadline runs a blocking stop function, giving up when ctx expires
func stopWithDeadline(ctx context.Context, name string, stop func()) {
	done := make(chan struct{})
	go func() {
		stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Debug(LogMsgComponentStopped, FieldComponent, name)
	case <-ctx.Done():
		slog.Warn(LogMsgStopTimedOut, FieldComponent, name, "error", ctx.Err())
	}
}
