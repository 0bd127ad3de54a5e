// Package notify is the console's transient notification center — the
// snackbar analogue. Notices are dismissible, auto-expire after a few
// seconds, and are the single surface through which API failures reach the
// operator.
//
// The center is deliberately process-wide rather than per-session: the
// console fronts one shared restaurant state, so a stock warning or a failed
// charge concerns whoever is behind the counter, and a dismissal by one
// operator clears it for all.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Level classifies a notice for the UI.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is one transient message.
type Notice struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Center holds the live notices. All methods are safe for concurrent use.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []Notice
}

// NewCenter creates a center whose notices expire after ttl.
func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl}
}

// Push records a notice and logs it. Errors log at error level so the console
// log carries every failure the operator saw.
func (c *Center) Push(level Level, message string) Notice {
	n := Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	}

	evt := log.Info()
	if level == LevelError {
		evt = log.Error()
	}
	evt.Str("notice_id", n.ID).Msg(message)

	c.mu.Lock()
	c.notices = append(c.notices, n)
	c.mu.Unlock()
	return n
}

func (c *Center) Info(message string) Notice  { return c.Push(LevelInfo, message) }
func (c *Center) Error(message string) Notice { return c.Push(LevelError, message) }

// Active returns the notices that have not yet expired, pruning the rest.
func (c *Center) Active() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-c.ttl)
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	c.notices = kept

	out := make([]Notice, len(kept))
	copy(out, kept)
	return out
}

// Dismiss removes a notice before its TTL runs out. Returns false when the id
// is unknown (already expired or dismissed).
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.notices {
		if n.ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			return true
		}
	}
	return false
}
