package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Plan event types
const (
	PlanUpdated             Type = Type(domain.EventTypePlanUpdated)
	PlanReset               Type = Type(domain.EventTypePlanReset)
	WarningRaised           Type = Type(domain.EventTypeWarningRaised)
	RequalificationRequired Type = Type(domain.EventTypeRequalificationRequired)
)

// PlanUpdatedPayloadV1 summarizes the plan after a recompute.
// Clamped lists the levels whose input was negative and was clamped to zero.
type PlanUpdatedPayloadV1 struct {
	Members        []int                 `json:"members"`
	Totals         domain.Totals         `json:"totals"`
	Risk           domain.RiskAssessment `json:"risk"`
	Recommendation domain.Recommendation `json:"recommendation"`
	Clamped        []int                 `json:"clamped,omitempty"`
	Timestamp      int64                 `json:"timestamp"`
}

// WarningPayloadV1 is the typed payload for warning events
type WarningPayloadV1 struct {
	Kind      domain.NoticeKind `json:"kind"`
	Level     int               `json:"level,omitempty"`
	Message   string            `json:"message"`
	Timestamp int64             `json:"timestamp"`
}

// RequalificationPayloadV1 is the typed payload for requalification poll results
type RequalificationPayloadV1 struct {
	Levels    []int `json:"levels"`
	Timestamp int64 `json:"timestamp"`
}

// Type-safe event constructors

func newPlanEvent(eventType Type, eval domain.Evaluation, members, clamped []int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: PlanUpdatedPayloadV1{
			Members:        members,
			Totals:         eval.Totals,
			Risk:           eval.Risk,
			Recommendation: eval.Recommendation,
			Clamped:        clamped,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewPlanUpdatedEvent creates a plan updated event
func NewPlanUpdatedEvent(eval domain.Evaluation, members, clamped []int, source string) Event {
	return newPlanEvent(PlanUpdated, eval, members, clamped, source)
}

// NewPlanResetEvent creates a plan reset event
func NewPlanResetEvent(eval domain.Evaluation, members []int, source string) Event {
	return newPlanEvent(PlanReset, eval, members, nil, source)
}

// NewWarningEvent creates a warning event from a notice
func NewWarningEvent(notice domain.Notice) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WarningRaised,
		Payload: WarningPayloadV1{
			Kind:      notice.Kind,
			Level:     notice.Level,
			Message:   notice.Message,
			Timestamp: notice.RaisedAt.Unix(),
		},
		Metadata: nil,
	}
}

// NewRequalificationEvent creates a requalification event for the levels that tripped the check
func NewRequalificationEvent(levels []int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RequalificationRequired,
		Payload: RequalificationPayloadV1{
			Levels:    levels,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
