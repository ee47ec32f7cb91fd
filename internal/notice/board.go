// Package notice is the warning channel: a single message slot where the most
// recent write replaces whatever was there.
package notice

import (
	"sync"
	"time"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// Board holds at most one notice. There is no queue; Post overwrites.
type Board struct {
	mu      sync.RWMutex
	current *domain.Notice
	now     func() time.Time
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{now: time.Now}
}

// Post replaces the current notice and returns it with its timestamp set.
func (b *Board) Post(kind domain.NoticeKind, level int, message string) domain.Notice {
	n := domain.Notice{
		Kind:     kind,
		Level:    level,
		Message:  message,
		RaisedAt: b.now(),
	}

	b.mu.Lock()
	b.current = &n
	b.mu.Unlock()

	return n
}

// Current returns the notice on display, if any.
func (b *Board) Current() (domain.Notice, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.current == nil {
		return domain.Notice{}, false
	}
	return *b.current, true
}

// Clear empties the board
func (b *Board) Clear() {
	b.mu.Lock()
	b.current = nil
	b.mu.Unlock()
}
