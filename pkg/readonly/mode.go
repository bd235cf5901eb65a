package readonly

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ganttline/pkg/task"
)

// Predicate decides a custom policy.
type Predicate interface {
	Allowed(ctx EditContext) bool
}

// PredicateFunc adapts a function to [Predicate].
type PredicateFunc func(ctx EditContext) bool

// Allowed calls f(ctx).
func (f PredicateFunc) Allowed(ctx EditContext) bool { return f(ctx) }

// Kind names a policy variant.
type Kind string

const (
	KindEditable     Kind = "editable"
	KindFull         Kind = "full"
	KindTimelineOnly Kind = "timeline-only"
	KindGridOnly     Kind = "grid-only"
	KindCustom       Kind = "custom"
)

// Mode is an edit policy. The zero value is [Editable].
type Mode struct {
	kind Kind
	pred Predicate
}

// Editable allows every edit.
func Editable() Mode { return Mode{kind: KindEditable} }

// Full denies every edit.
func Full() Mode { return Mode{kind: KindFull} }

// TimelineOnly allows only [EditTimeline].
func TimelineOnly() Mode { return Mode{kind: KindTimelineOnly} }

// GridOnly allows [EditTaskProperties], [EditProgress] and [EditMetadata].
func GridOnly() Mode { return Mode{kind: KindGridOnly} }

// Custom delegates every decision to p. A nil p denies everything.
func Custom(p Predicate) Mode { return Mode{kind: KindCustom, pred: p} }

// Kind returns the policy variant.
func (m Mode) Kind() Kind {
	if m.kind == "" {
		return KindEditable
	}
	return m.kind
}

func (m Mode) String() string { return string(m.Kind()) }

// IsEditAllowed reports whether the policy allows the edit described by ctx.
func (m Mode) IsEditAllowed(ctx EditContext) bool {
	switch m.Kind() {
	case KindEditable:
		return true
	case KindFull:
		return false
	case KindTimelineOnly:
		return ctx.Type == EditTimeline
	case KindGridOnly:
		switch ctx.Type {
		case EditTaskProperties, EditProgress, EditMetadata:
			return true
		}
		return false
	case KindCustom:
		return m.pred != nil && m.pred.Allowed(ctx)
	}
	return false
}

// IsReadOnly reports whether the policy denies every edit.
func (m Mode) IsReadOnly() bool { return m.Kind() == KindFull }

// Permit reports whether ctx may be applied to t: the task must not be
// read-only and m must allow the edit.
func Permit(t task.Task, m Mode, ctx EditContext) bool {
	return !t.ReadOnly && m.IsEditAllowed(ctx)
}

// ParseMode reads a fixed policy by name. Custom policies cannot be parsed;
// build them with [Builder].
func ParseMode(s string) (Mode, error) {
	switch Kind(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))) {
	case "", KindEditable:
		return Editable(), nil
	case KindFull, "readonly", "read-only":
		return Full(), nil
	case KindTimelineOnly:
		return TimelineOnly(), nil
	case KindGridOnly:
		return GridOnly(), nil
	}
	return Mode{}, fmt.Errorf("unknown policy mode %q (want editable, full, timeline-only or grid-only)", s)
}
