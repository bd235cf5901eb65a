package task

import (
	"cmp"
	"slices"
	"time"
)

// Schedule is the envelope for a set of tasks and the dependencies between
// them. It is the unit of import and export.
type Schedule struct {
	Tasks        []Task       `json:"tasks" toml:"tasks" bson:"tasks"`
	Dependencies []Dependency `json:"dependencies" toml:"dependencies" bson:"dependencies"`
}

// Sorted returns a deep copy of s in canonical order: tasks by ID and
// dependencies by (From, To, Type). Two schedules holding the same tasks and
// edges in different orders produce identical Sorted results.
func (s Schedule) Sorted() Schedule {
	out := Schedule{
		Tasks:        make([]Task, len(s.Tasks)),
		Dependencies: slices.Clone(s.Dependencies),
	}
	for i, t := range s.Tasks {
		out.Tasks[i] = t.Clone()
	}
	slices.SortStableFunc(out.Tasks, func(a, b Task) int {
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortStableFunc(out.Dependencies, CompareDependencies)
	if out.Dependencies == nil {
		out.Dependencies = []Dependency{}
	}
	return out
}

// CompareDependencies orders dependencies by From, then To, then Type,
// then LagDays.
func CompareDependencies(a, b Dependency) int {
	return cmp.Or(
		cmp.Compare(a.From, b.From),
		cmp.Compare(a.To, b.To),
		cmp.Compare(a.Type, b.Type),
		cmp.Compare(a.LagDays, b.LagDays),
	)
}

// Normalize returns a copy of s with every task normalized (UTC times,
// clamped progress, defaulted kind) and every dependency type defaulted to
// [FinishToStart].
func (s Schedule) Normalize() Schedule {
	out := Schedule{
		Tasks:        make([]Task, len(s.Tasks)),
		Dependencies: make([]Dependency, len(s.Dependencies)),
	}
	for i, t := range s.Tasks {
		out.Tasks[i] = t.Clone().Normalize()
	}
	for i, d := range s.Dependencies {
		out.Dependencies[i] = d.Normalize()
	}
	return out
}

// Span returns the earliest start and latest end over all tasks. ok is false
// for an empty schedule.
func (s Schedule) Span() (start, end time.Time, ok bool) {
	for i, t := range s.Tasks {
		if i == 0 || t.Start.Before(start) {
			start = t.Start
		}
		if i == 0 || t.End.After(end) {
			end = t.End
		}
	}
	return start, end, len(s.Tasks) > 0
}

// Task returns the task with the given id.
func (s Schedule) Task(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
