package timeline

import (
	"time"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
)

// Range is a visible date range. Both ends are included.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewRange returns the range [start, end] in UTC. It fails if end is before
// start.
func NewRange(start, end time.Time) (Range, error) {
	if end.Before(start) {
		return Range{}, gerrors.New(gerrors.ErrCodeInvalidRange,
			"range ends before it starts: %s > %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Range{Start: start.UTC(), End: end.UTC()}, nil
}

// IsZero reports whether r is unset.
func (r Range) IsZero() bool { return r.Start.IsZero() && r.End.IsZero() }

// Contains reports whether t lies within r.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the length of r in days.
func (r Range) Days() float64 { return daysBetween(r.Start, r.End) }

func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}
