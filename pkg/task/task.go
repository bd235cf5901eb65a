package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a task for display and scheduling conventions.
type Kind string

const (
	// KindTask is an ordinary unit of work with a duration.
	KindTask Kind = "task"
	// KindMilestone marks a point in time. By convention Start == End,
	// but this is not enforced.
	KindMilestone Kind = "milestone"
	// KindProject groups child tasks through their ParentID.
	KindProject Kind = "project"
)

// Kinds lists every task kind in display order.
var Kinds = []Kind{KindTask, KindMilestone, KindProject}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindTask, KindMilestone, KindProject:
		return true
	}
	return false
}

// ParseKind parses a kind name case-insensitively. The empty string parses
// as [KindTask].
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindTask, nil
	}
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown task kind %q (want task, milestone or project)", s)
	}
	return k, nil
}

// Metadata is an open string-to-string map attached to a task.
type Metadata map[string]string

// Task is a single bar (or diamond, for milestones) on the timeline.
//
// Start and End are instants in UTC. Progress is a completion fraction in
// [0, 1]; use [ClampProgress] when accepting external values. ReadOnly is a
// per-task hard override that callers combine with a policy, see
// readonly.Permit.
type Task struct {
	ID        string    `json:"id" toml:"id" bson:"id"`
	Name      string    `json:"name" toml:"name" bson:"name"`
	Start     time.Time `json:"start" toml:"start" bson:"start"`
	End       time.Time `json:"end" toml:"end" bson:"end"`
	Progress  float64   `json:"progress" toml:"progress" bson:"progress"`
	Kind      Kind      `json:"kind,omitempty" toml:"kind,omitempty" bson:"kind,omitempty"`
	ParentID  string    `json:"parent_id,omitempty" toml:"parent_id,omitempty" bson:"parent_id,omitempty"`
	Assignees []string  `json:"assignees,omitempty" toml:"assignees,omitempty" bson:"assignees,omitempty"`
	Color     string    `json:"color,omitempty" toml:"color,omitempty" bson:"color,omitempty"`
	ReadOnly  bool      `json:"read_only,omitempty" toml:"read_only,omitempty" bson:"read_only,omitempty"`
	Meta      Metadata  `json:"meta,omitempty" toml:"meta,omitempty" bson:"meta,omitempty"`
}

// New creates a task of kind [KindTask] with a fresh UUID. Times are
// converted to UTC.
func New(name string, start, end time.Time) Task {
	return Task{
		ID:    NewID(),
		Name:  name,
		Start: start.UTC(),
		End:   end.UTC(),
		Kind:  KindTask,
	}
}

// NewMilestone creates a milestone at the given instant.
func NewMilestone(name string, at time.Time) Task {
	t := New(name, at, at)
	t.Kind = KindMilestone
	return t
}

// NewID returns a new random task identifier.
func NewID() string { return uuid.NewString() }

// ClampProgress limits p to [0, 1]. NaN is treated as zero.
func ClampProgress(p float64) float64 {
	switch {
	case p != p:
		return 0
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Normalize returns a copy of t with UTC times, clamped progress and a
// defaulted kind. It never changes the ID.
func (t Task) Normalize() Task {
	t.Start = t.Start.UTC()
	t.End = t.End.UTC()
	t.Progress = ClampProgress(t.Progress)
	if t.Kind == "" {
		t.Kind = KindTask
	}
	return t
}

// Duration returns End - Start. It is negative for inverted tasks.
func (t Task) Duration() time.Duration { return t.End.Sub(t.Start) }

// IsMilestone reports whether t is a milestone.
func (t Task) IsMilestone() bool { return t.Kind == KindMilestone }

// IsInverted reports whether End lies before Start.
func (t Task) IsInverted() bool { return t.End.Before(t.Start) }

// Clone returns a deep copy of t, so that the copy's slices and maps can be
// modified without affecting the original.
func (t Task) Clone() Task {
	if t.Assignees != nil {
		t.Assignees = append([]string(nil), t.Assignees...)
	}
	if t.Meta != nil {
		m := make(Metadata, len(t.Meta))
		for k, v := range t.Meta {
			m[k] = v
		}
		t.Meta = m
	}
	return t
}

// Index builds an id lookup over tasks. Later duplicates win.
func Index(tasks []Task) map[string]*Task {
	m := make(map[string]*Task, len(tasks))
	for i := range tasks {
		m[tasks[i].ID] = &tasks[i]
	}
	return m
}
