package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// ReconnectDelay is the retry hint sent to browsers before the first event
	ReconnectDelay = 3 * time.Second

	// ContentTypeEventStream is the response media type
	ContentTypeEventStream = "text/event-stream"

	// ErrMsgStreamingUnsupported is returned when the writer cannot flush
	ErrMsgStreamingUnsupported = "SSE not supported"
)

// Event types for SSE
const (
	// EventTypePlanUpdated is sent after every recompute of the table
	EventTypePlanUpdated = "plan.updated"

	// EventTypePlanReset is sent when the table is cleared
	EventTypePlanReset = "plan.reset"

	// EventTypeWarning is sent whenever the warning channel changes
	EventTypeWarning = "plan.warning"

	// EventTypeRequalification is sent when a monitor poll flags tiers
	EventTypeRequalification = "plan.requalification"

	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Retention slots for replay to newly connected clients
const (
	RetainSlotPlan    = "plan"
	RetainSlotWarning = "warning"
)

// Query parameters
const (
	QueryParamTypes = "types"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid plan event payload"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
