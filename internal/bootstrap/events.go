package bootstrap

import (
	"log/slog"

	"github.com/osse101/TierPlan_Go/internal/event"
	"github.com/osse101/TierPlan_Go/internal/metrics"
	"github.com/osse101/TierPlan_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches its subscribers:
// the Prometheus collector always, and the SSE bridge when a hub is given.
func InitializeEventSystem(hub *sse.Hub) event.Bus {
	eventBus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, eventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
