package logring

import (
	"strings"
	"sync"
	"time"

	"pipeline_dashboard/internal/models"

	"github.com/google/uuid"
)

// DefaultCapacity matches the dashboard's log panel height.
const DefaultCapacity = 30

// maxCapacity keeps a misconfigured ring from growing without bound.
const maxCapacity = 500

// Ring is a fixed-capacity, newest-first buffer of diagnostic entries.
// It is safe for concurrent use.
type Ring struct {
	mu      sync.Mutex
	entries []models.LogEntry // entries[0] is the newest
	cap     int
	now     func() time.Time
}

// New returns an empty ring. Capacities outside 1..500 are clamped.
func New(capacity int) *Ring {
	switch {
	case capacity <= 0:
		capacity = DefaultCapacity
	case capacity > maxCapacity:
		capacity = maxCapacity
	}
	return &Ring{
		entries: make([]models.LogEntry, 0, capacity),
		cap:     capacity,
		now:     time.Now,
	}
}

// normalizeSeverity folds unknown severities to info.
func normalizeSeverity(s string) string {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case models.SeverityWarn, models.SeverityError:
		return s
	default:
		return models.SeverityInfo
	}
}

// Push inserts an entry at the front and evicts the oldest once the ring is full.
func (r *Ring) Push(message, severity string) models.LogEntry {
	e := models.LogEntry{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  normalizeSeverity(severity),
		Timestamp: r.now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) < r.cap {
		r.entries = append(r.entries, models.LogEntry{})
	}
	// shift right by one, dropping the last element when full
	copy(r.entries[1:], r.entries[:len(r.entries)-1])
	r.entries[0] = e
	return e
}

// Info is shorthand for Push(msg, info).
func (r *Ring) Info(message string) { r.Push(message, models.SeverityInfo) }

// Warn is shorthand for Push(msg, warn).
func (r *Ring) Warn(message string) { r.Push(message, models.SeverityWarn) }

// Error is shorthand for Push(msg, error).
func (r *Ring) Error(message string) { r.Push(message, models.SeverityError) }

// ReadAll returns a copy of the buffer, newest first.
func (r *Ring) ReadAll() []models.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of buffered entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Cap returns the configured capacity.
func (r *Ring) Cap() int { return r.cap }
