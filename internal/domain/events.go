package domain

// Event type constants used across the application for event bus subscriptions
// and SSE fan-out.
//
// Event types follow the pattern: <entity>.<action> (e.g., "plan.updated")
const (
	// EventTypePlanUpdated is published after every full recomputation of the table
	EventTypePlanUpdated = "plan.updated"

	// EventTypePlanReset is published when every member count is cleared
	EventTypePlanReset = "plan.reset"

	// EventTypeWarningRaised is published when a message is written to the warning channel
	EventTypeWarningRaised = "plan.warning"

	// EventTypeRequalificationRequired is published when a monitor poll flags one or more tiers
	EventTypeRequalificationRequired = "plan.requalification"
)
