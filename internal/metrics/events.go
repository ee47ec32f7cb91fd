package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/event"
	"github.com/osse101/TierPlan_Go/internal/logger"
)

// EventMetricsCollector subscribes to plan events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all plan events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.PlanUpdated,
		event.PlanReset,
		event.WarningRaised,
		event.RequalificationRequired,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PlanUpdated, event.PlanReset:
		var payload event.PlanUpdatedPayloadV1
		if payload, err = event.DecodePayload[event.PlanUpdatedPayloadV1](evt.Payload); err == nil {
			recordPlan(payload)
		}

	case event.WarningRaised:
		var payload event.WarningPayloadV1
		if payload, err = event.DecodePayload[event.WarningPayloadV1](evt.Payload); err == nil {
			PlanWarnings.WithLabelValues(string(payload.Kind)).Inc()
		}

	case event.RequalificationRequired:
		var payload event.RequalificationPayloadV1
		if payload, err = event.DecodePayload[event.RequalificationPayloadV1](evt.Payload); err == nil {
			for _, level := range payload.Levels {
				PlanRequalifications.WithLabelValues(strconv.Itoa(level)).Inc()
			}
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordPlan(payload event.PlanUpdatedPayloadV1) {
	for i, members := range payload.Members {
		PlanTierMembers.WithLabelValues(strconv.Itoa(i + 1)).Set(float64(members))
	}

	PlanTotalSales.Set(payload.Totals.Sales)
	PlanTotalBonuses.Set(payload.Totals.Bonuses)
	PlanCompanyProfit.Set(payload.Totals.CompanyProfit)
	PlanBonusRatio.Set(payload.Risk.Ratio)
	PlanRecommendedDaily.Set(float64(payload.Recommendation.Daily))

	for _, risk := range []domain.RiskLevel{domain.RiskLow, domain.RiskMedium, domain.RiskHigh} {
		value := 0.0
		if risk == payload.Risk.Level {
			value = 1
		}
		PlanRiskLevel.WithLabelValues(string(risk)).Set(value)
	}

	PlanInputsClamped.Add(float64(len(payload.Clamped)))
}
