package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority is a display/sort hint on a task. It has no scheduling effect.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "low"
	}
}

// ParsePriority resolves a case-insensitive priority name.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return PriorityLow, fmt.Errorf("unknown priority: %q", s)
}

// Cycle steps low -> medium -> high and wraps around.
func (p Priority) Cycle() Priority {
	if p >= PriorityHigh {
		return PriorityLow
	}
	return p + 1
}

// Task is the domain model for a todo entry.
// ID and CreatedAt are millisecond timestamps; ID doubles as the sole
// lookup key and never repeats within a process.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	CreatedAt   int64    `json:"created_at"`
}

// CreatedTime returns CreatedAt as a time.Time for display formatting.
func (t Task) CreatedTime() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// ParseTags splits a comma-separated user string into tags. Entries are
// trimmed and empties dropped; order and duplicates are preserved.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders tags back into the editable comma form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
