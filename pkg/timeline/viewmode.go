package timeline

import (
	"strings"
	"time"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
)

// ViewMode is the timeline zoom level. Modes are ordered from finest to
// coarsest.
type ViewMode int

const (
	Hour ViewMode = iota
	Day
	Week
	Month
	Quarter
	Year
)

// ViewModes lists every mode from finest to coarsest.
var ViewModes = []ViewMode{Hour, Day, Week, Month, Quarter, Year}

var viewModeNames = [...]string{
	Hour:    "hour",
	Day:     "day",
	Week:    "week",
	Month:   "month",
	Quarter: "quarter",
	Year:    "year",
}

// IsValid reports whether m is a known mode.
func (m ViewMode) IsValid() bool { return m >= Hour && m <= Year }

func (m ViewMode) String() string {
	if m.IsValid() {
		return viewModeNames[m]
	}
	return "unknown"
}

// ParseViewMode parses a mode name, case-insensitively.
func ParseViewMode(s string) (ViewMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range viewModeNames {
		if n == name {
			return ViewMode(m), nil
		}
	}
	return Day, gerrors.New(gerrors.ErrCodeInvalidViewMode,
		"unknown view mode %q (want hour, day, week, month, quarter or year)", s)
}

// MarshalText encodes the mode by name.
func (m ViewMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText decodes a mode name.
func (m *ViewMode) UnmarshalText(text []byte) error {
	v, err := ParseViewMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnitDays returns the nominal length of one column in days. Month and
// Year use 30 and 365; the grid itself steps by calendar months.
func (m ViewMode) UnitDays() float64 {
	switch m {
	case Hour:
		return 1.0 / 24
	case Day:
		return 1
	case Week:
		return 7
	case Month:
		return 30
	case Quarter:
		return 90
	case Year:
		return 365
	}
	return 1
}

// CanZoomIn reports whether a finer mode exists.
func (m ViewMode) CanZoomIn() bool { return m > Hour }

// CanZoomOut reports whether a coarser mode exists.
func (m ViewMode) CanZoomOut() bool { return m < Year }

// ZoomIn returns the next finer mode, or m itself at [Hour].
func (m ViewMode) ZoomIn() ViewMode {
	if m.CanZoomIn() {
		return m - 1
	}
	return m
}

// ZoomOut returns the next coarser mode, or m itself at [Year].
func (m ViewMode) ZoomOut() ViewMode {
	if m.CanZoomOut() {
		return m + 1
	}
	return m
}

// Step returns the start of column i for a timeline starting at anchor.
// i may be negative.
func (m ViewMode) Step(anchor time.Time, i int) time.Time {
	switch m {
	case Hour:
		return anchor.Add(time.Duration(i) * time.Hour)
	case Day:
		return anchor.AddDate(0, 0, i)
	case Week:
		return anchor.AddDate(0, 0, 7*i)
	case Month:
		return addMonths(anchor, i)
	case Quarter:
		return anchor.AddDate(0, 0, 90*i)
	case Year:
		return addMonths(anchor, 12*i)
	}
	return anchor.AddDate(0, 0, i)
}

// Next returns t advanced by one unit of m.
func (m ViewMode) Next(t time.Time) time.Time { return m.Step(t, 1) }

// Align returns the start of the period of m that contains t: the hour, the
// day, the ISO week (Monday), the month, the calendar quarter or the year.
func (m ViewMode) Align(t time.Time) time.Time {
	y, mo, d := t.Date()
	loc := t.Location()
	switch m {
	case Hour:
		return time.Date(y, mo, d, t.Hour(), 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Week:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, mo, d-offset, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	case Quarter:
		return time.Date(y, mo-(mo-1)%3, 1, 0, 0, 0, 0, loc)
	case Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// IsMajor reports whether a column starting at t begins a larger period:
// midnight for Hour, the first of the month for Day and Week, January for
// Month and Year, and the first month of a quarter for Quarter. Week columns
// step seven days from the range start, so only those landing exactly on the
// first are major.
func (m ViewMode) IsMajor(t time.Time) bool {
	switch m {
	case Hour:
		return t.Hour() == 0
	case Day, Week:
		return t.Day() == 1
	case Month, Year:
		return t.Month() == time.January
	case Quarter:
		return (t.Month()-1)%3 == 0
	}
	return false
}

// addMonths adds n calendar months to t, clamping the day to the length of
// the target month.
func addMonths(t time.Time, n int) time.Time {
	y, mo, d := t.Date()
	hh, mm, ss := t.Clock()
	target := time.Date(y, mo+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func quarterOf(t time.Time) int { return (int(t.Month())-1)/3 + 1 }
