package task

import (
	"fmt"
	"strings"
)

// DependencyType is the scheduling relationship between two tasks.
type DependencyType string

const (
	// FinishToStart: the target cannot start before the source finishes.
	FinishToStart DependencyType = "FS"
	// StartToStart: the target cannot start before the source starts.
	StartToStart DependencyType = "SS"
	// FinishToFinish: the target cannot finish before the source finishes.
	FinishToFinish DependencyType = "FF"
	// StartToFinish: the target cannot finish before the source starts.
	StartToFinish DependencyType = "SF"
)

// DependencyTypes lists every dependency type, most common first.
var DependencyTypes = []DependencyType{FinishToStart, StartToStart, FinishToFinish, StartToFinish}

var longDependencyNames = map[string]DependencyType{
	"finish_to_start":  FinishToStart,
	"start_to_start":   StartToStart,
	"finish_to_finish": FinishToFinish,
	"start_to_finish":  StartToFinish,
}

// IsValid reports whether d is one of the four known types.
func (d DependencyType) IsValid() bool {
	switch d {
	case FinishToStart, StartToStart, FinishToFinish, StartToFinish:
		return true
	}
	return false
}

// Name returns the long, human-readable form ("Finish-to-Start").
func (d DependencyType) Name() string {
	switch d {
	case FinishToStart:
		return "Finish-to-Start"
	case StartToStart:
		return "Start-to-Start"
	case FinishToFinish:
		return "Finish-to-Finish"
	case StartToFinish:
		return "Start-to-Finish"
	}
	return string(d)
}

// SourceAnchor reports whether the edge leaves the source at its end (true)
// or its start (false).
func (d DependencyType) SourceAnchor() bool {
	return d == FinishToStart || d == FinishToFinish
}

// TargetAnchor reports whether the edge enters the target at its end (true)
// or its start (false).
func (d DependencyType) TargetAnchor() bool {
	return d == FinishToFinish || d == StartToFinish
}

// ParseDependencyType accepts the short code ("fs", "FS") or the long name
// ("finish_to_start", "finish-to-start"). The empty string parses as
// [FinishToStart].
func ParseDependencyType(s string) (DependencyType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FinishToStart, nil
	}
	if d := DependencyType(strings.ToUpper(s)); d.IsValid() {
		return d, nil
	}
	norm := strings.ReplaceAll(strings.ToLower(s), "-", "_")
	if d, ok := longDependencyNames[norm]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown dependency type %q (want FS, SS, FF or SF)", s)
}

// Dependency is a directed edge from a source task to a target task.
// LagDays is a signed offset: positive values delay the target, negative
// values (leads) allow overlap.
type Dependency struct {
	From    string         `json:"from" toml:"from" bson:"from"`
	To      string         `json:"to" toml:"to" bson:"to"`
	Type    DependencyType `json:"type" toml:"type" bson:"type"`
	LagDays int            `json:"lag_days,omitempty" toml:"lag_days,omitempty" bson:"lag_days,omitempty"`
}

// Key identifies a dependency for duplicate detection. Two edges with the
// same endpoints but different types have different keys.
type Key struct {
	From, To string
	Type     DependencyType
}

// Key returns the (From, To, Type) triple of d. An empty Type keys as
// [FinishToStart], so {a, b, ""} and {a, b, FS} collide.
func (d Dependency) Key() Key {
	n := d.Normalize()
	return Key{From: n.From, To: n.To, Type: n.Type}
}

// Normalize returns d with an empty Type set to [FinishToStart].
func (d Dependency) Normalize() Dependency {
	if d.Type == "" {
		d.Type = FinishToStart
	}
	return d
}

// IsSelf reports whether d points from a task to itself.
func (d Dependency) IsSelf() bool { return d.From == d.To }

// String renders d as "from -FS-> to", with the lag if set.
func (d Dependency) String() string {
	if d.LagDays != 0 {
		return fmt.Sprintf("%s -%s%+dd-> %s", d.From, d.Type, d.LagDays, d.To)
	}
	return fmt.Sprintf("%s -%s-> %s", d.From, d.Type, d.To)
}
