// Package history holds the append-only conversation log and the bounded
// context window derived from it for intent routing.
package history

import (
	"strings"
	"time"
)

// Role identifies the author of a conversation entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultWindow is the number of entries (5 exchanges) rendered into the
// routing context when no explicit window is given.
const DefaultWindow = 10

// Entry is a single conversation message. Entries are immutable once
// appended.
type Entry struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// History is an append-only conversation log.
type History struct {
	entries []Entry
}

// New creates an empty History.
func New() *History {
	return &History{}
}

// Append records a message, timestamped at call time.
func (h *History) Append(role Role, content string) {
	h.entries = append(h.entries, Entry{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// Len returns the number of entries recorded so far.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded entries.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Window renders the last n entries as "role: content" lines joined by
// newlines. n <= 0 means DefaultWindow. Returns "" when the history is
// empty. Entry content is never truncated.
func (h *History) Window(n int) string {
	if len(h.entries) == 0 {
		return ""
	}
	if n <= 0 {
		n = DefaultWindow
	}

	start := len(h.entries) - n
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, len(h.entries)-start)
	for _, e := range h.entries[start:] {
		lines = append(lines, string(e.Role)+": "+e.Content)
	}
	return strings.Join(lines, "\n")
}
