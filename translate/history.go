package translate

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one completed translation shown in the history panel.
type Entry struct {
	ID         string    `json:"id"`
	Input      string    `json:"input"`
	Output     string    `json:"output"`
	TargetLang string    `json:"target_lang"`
	Timestamp  time.Time `json:"timestamp"`
}

// History is an in-memory, newest-first log of translations. It lives only
// for the lifetime of the process.
type History struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Add prepends a translation result so the newest entry renders first.
func (h *History) Add(result *Result) Entry {
	entry := Entry{
		ID:         uuid.New().String(),
		Input:      result.Input,
		Output:     result.Output,
		TargetLang: result.TargetLang,
		Timestamp:  time.Now(),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]Entry{entry}, h.entries...)
	return entry
}

// Entries returns a snapshot of the history, newest first.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
