package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/TierPlan_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all plan event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PlanUpdated, s.handlePlan(EventTypePlanUpdated))
	s.bus.Subscribe(event.PlanReset, s.handlePlan(EventTypePlanReset))
	s.bus.Subscribe(event.WarningRaised, s.handleWarning)
	s.bus.Subscribe(event.RequalificationRequired, s.handleRequalification)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{
			EventTypePlanUpdated,
			EventTypePlanReset,
			EventTypeWarning,
			EventTypeRequalification,
		})
}

func (s *Subscriber) handlePlan(sseType string) event.Handler {
	return func(_ context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.PlanUpdatedPayloadV1](evt.Payload)
		if err != nil {
			slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
			return nil
		}

		s.hub.Broadcast(sseType, PlanPayload{
			Members:        payload.Members,
			TotalMembers:   payload.Totals.Members,
			TotalSales:     payload.Totals.Sales,
			TotalBonuses:   payload.Totals.Bonuses,
			CompanyProfit:  payload.Totals.CompanyProfit,
			RiskLevel:      payload.Risk.Level,
			Sustainability: payload.Risk.SustainabilityLabel,
			Recommendation: payload.Recommendation,
			Clamped:        payload.Clamped,
		})

		slog.Debug(LogMsgEventBroadcast, "event_type", sseType, "total_members", payload.Totals.Members)
		return nil
	}
}

func (s *Subscriber) handleWarning(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.WarningPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeWarning, WarningPayload{
		Kind:    payload.Kind,
		Level:   payload.Level,
		Message: payload.Message,
	})

	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeWarning, "kind", payload.Kind)
	return nil
}

func (s *Subscriber) handleRequalification(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RequalificationPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRequalification, RequalificationPayload{Levels: payload.Levels})

	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeRequalification, "levels", payload.Levels)
	return nil
}
