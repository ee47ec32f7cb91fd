package domain

import "time"

// NoticeKind tells the reader where a warning came from.
type NoticeKind string

const (
	NoticeInvalidInput    NoticeKind = "invalid_input"
	NoticeRequalification NoticeKind = "requalification"
)

// Notice is a free-text message for the warning channel.
// Level is 0 when the notice is not tied to a tier.
type Notice struct {
	Kind     NoticeKind `json:"kind"`
	Level    int        `json:"level,omitempty"`
	Message  string     `json:"message"`
	RaisedAt time.Time  `json:"raised_at"`
}
