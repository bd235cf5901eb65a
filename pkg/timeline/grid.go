package timeline

import "time"

// GridLine is a vertical line at a column boundary.
type GridLine struct {
	X       float64   `json:"x"`
	IsMajor bool      `json:"is_major"`
	Time    time.Time `json:"time"`
}

// WeekendShade is a shaded column for a Saturday or Sunday.
type WeekendShade struct {
	X     float64   `json:"x"`
	Width float64   `json:"width"`
	Date  time.Time `json:"date"`
}

// GridLines returns one line per column boundary from start to end, both
// included. Line i sits at i*columnWidth.
func GridLines(start, end time.Time, mode ViewMode, columnWidth float64) []GridLine {
	var lines []GridLine
	for i := 0; ; i++ {
		cursor := mode.Step(start, i)
		if cursor.After(end) {
			break
		}
		lines = append(lines, GridLine{
			X:       float64(i) * columnWidth,
			IsMajor: mode.IsMajor(cursor),
			Time:    cursor,
		})
	}
	return lines
}

// Columns returns the start of every column that begins before end.
func Columns(start, end time.Time, mode ViewMode) []time.Time {
	var cols []time.Time
	for i := 0; ; i++ {
		cursor := mode.Step(start, i)
		if !cursor.Before(end) {
			break
		}
		cols = append(cols, cursor)
	}
	return cols
}

// WeekendShading returns a shade for every Saturday and Sunday that starts
// before end. Day i of the range is placed at i*columnWidth regardless of
// the view mode.
func WeekendShading(start, end time.Time, columnWidth float64) []WeekendShade {
	var shades []WeekendShade
	for i := 0; ; i++ {
		day := start.AddDate(0, 0, i)
		if !day.Before(end) {
			break
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			shades = append(shades, WeekendShade{
				X:     float64(i) * columnWidth,
				Width: columnWidth,
				Date:  day,
			})
		}
	}
	return shades
}

// TimeToX returns the horizontal position of t on a timeline starting at
// start. Positions inside a column are interpolated linearly, so calendar
// months of different lengths all get one column.
func TimeToX(start, t time.Time, mode ViewMode, columnWidth float64) float64 {
	if mode != Month && mode != Year {
		return daysBetween(start, t) / mode.UnitDays() * columnWidth
	}

	i := int(daysBetween(start, t) / mode.UnitDays())
	for mode.Step(start, i).After(t) {
		i--
	}
	for !mode.Step(start, i+1).After(t) {
		i++
	}
	lo, hi := mode.Step(start, i), mode.Step(start, i+1)
	frac := float64(t.Sub(lo)) / float64(hi.Sub(lo))
	return (float64(i) + frac) * columnWidth
}
