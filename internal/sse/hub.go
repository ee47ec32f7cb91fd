package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events

	replayed bool // guarded by Hub.mu, set by run
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans plan events out to connected clients. It keeps the latest plan
// snapshot and the current warning so a client that connects mid-session
// starts from the same state as everyone else.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	stopped    bool
	wg         sync.WaitGroup

	// owned by run; keyed by retention slot
	retained map[string]Event
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		retained:   make(map[string]Event),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts down the loop and closes every client channel, which ends the
// stream handlers. Clients registering afterwards get a closed channel.
// Stop is safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			// skip clients that unregistered before their replay ran
			h.mu.Lock()
			_, ok := h.clients[client.ID]
			client.replayed = ok
			h.mu.Unlock()
			if ok {
				h.replay(client)
			}

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.retain(event)

			h.mu.RLock()
			for _, client := range h.clients {
				if client.replayed && client.wants(event.Type) {
					deliver(client, event)
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// retain records the event in its slot. A reset also drops the warning,
// matching the cleared notice board.
func (h *Hub) retain(event Event) {
	switch event.Type {
	case EventTypePlanUpdated:
		h.retained[RetainSlotPlan] = event
	case EventTypePlanReset:
		h.retained[RetainSlotPlan] = event
		delete(h.retained, RetainSlotWarning)
	case EventTypeWarning:
		h.retained[RetainSlotWarning] = event
	}
}

// replay sends the retained snapshot first, then the warning
func (h *Hub) replay(client *Client) {
	for _, slot := range []string{RetainSlotPlan, RetainSlotWarning} {
		if event, ok := h.retained[slot]; ok && client.wants(event.Type) {
			deliver(client, event)
		}
	}
}

// deliver never blocks: a slow client misses events rather than stalling the rest
func deliver(client *Client, event Event) {
	select {
	case client.EventChannel <- event:
	default:
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	h.mu.Unlock()

	select {
	case h.register <- client:
	case <-h.shutdown:
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients that have received
// their replay and now get live events
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, client := range h.clients {
		if client.replayed {
			n++
		}
	}
	return n
}

// Attended reports whether at least one client is listening. The hub is the
// visibility gate for the requalification monitor.
func (h *Hub) Attended() bool {
	return h.ClientCount() > 0
}

// FormatSSEMessage encodes an event in the text/event-stream wire format
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if event.ID != "" {
		fmt.Fprintf(&buf, "id: %s\n", event.ID)
	}
	fmt.Fprintf(&buf, "event: %s\ndata: %s\n\n", event.Type, data)
	return buf.Bytes(), nil
}
