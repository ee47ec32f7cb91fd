package sse

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// stream writes events to one client connection and flushes after each
type stream struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// send reports false once the connection is unusable
func (s stream) send(event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		// skip this event, keep the connection
		slog.Error(LogMsgWriteError, "event_type", event.Type, "error", err)
		return true
	}
	if _, err := s.w.Write(msg); err != nil {
		slog.Warn(LogMsgWriteError, "event_type", event.Type, "error", err)
		return false
	}
	s.flusher.Flush()
	return true
}

// Handler streams plan events to a client. The optional "types" query
// parameter restricts the stream to a comma separated list of event types.
// The first events after "connected" are the retained plan snapshot and warning.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("Content-Type", ContentTypeEventStream)
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("Access-Control-Allow-Origin", "*")

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			for _, t := range strings.Split(filterParam, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}

		client := hub.Register(eventTypes)
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		s := stream{w: w, flusher: flusher}

		if _, err := fmt.Fprintf(w, "retry: %d\n\n", ReconnectDelay.Milliseconds()); err != nil {
			return
		}
		if !s.send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !s.send(event) {
					return
				}

			case <-ticker.C:
				if !s.send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
