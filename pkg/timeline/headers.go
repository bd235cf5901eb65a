package timeline

import (
	"fmt"
	"strconv"
	"time"
)

// Header is one cell of the timeline scale.
type Header struct {
	Label string    `json:"label"`
	X     float64   `json:"x"`
	Width float64   `json:"width"`
	Start time.Time `json:"start"`
}

// MinorHeaders returns one header per column.
func MinorHeaders(start, end time.Time, mode ViewMode, columnWidth float64) []Header {
	cols := Columns(start, end, mode)
	headers := make([]Header, len(cols))
	for i, c := range cols {
		headers[i] = Header{
			Label: minorLabel(c, mode),
			X:     float64(i) * columnWidth,
			Width: columnWidth,
			Start: c,
		}
	}
	return headers
}

// MajorHeaders groups consecutive columns that belong to the same larger
// period into one header.
func MajorHeaders(start, end time.Time, mode ViewMode, columnWidth float64) []Header {
	var headers []Header
	prev := ""
	for i, c := range Columns(start, end, mode) {
		key := majorKey(c, mode)
		if len(headers) > 0 && key == prev {
			headers[len(headers)-1].Width += columnWidth
			continue
		}
		prev = key
		headers = append(headers, Header{
			Label: majorLabel(c, mode),
			X:     float64(i) * columnWidth,
			Width: columnWidth,
			Start: c,
		})
	}
	return headers
}

func minorLabel(t time.Time, mode ViewMode) string {
	switch mode {
	case Hour:
		return t.Format("15:04")
	case Day:
		return strconv.Itoa(t.Day())
	case Week:
		_, w := t.ISOWeek()
		return fmt.Sprintf("W%02d", w)
	case Month:
		return t.Format("Jan")
	case Quarter:
		return fmt.Sprintf("Q%d", quarterOf(t))
	case Year:
		return strconv.Itoa(t.Year())
	}
	return t.Format(time.DateOnly)
}

func majorLabel(t time.Time, mode ViewMode) string {
	switch mode {
	case Hour:
		return t.Format("Mon, Jan 2")
	case Day:
		return t.Format("January 2006")
	case Week:
		return fmt.Sprintf("Q%d %d", quarterOf(t), t.Year())
	case Month, Quarter:
		return strconv.Itoa(t.Year())
	case Year:
		return fmt.Sprintf("%ds", t.Year()/10*10)
	}
	return t.Format(time.DateOnly)
}

func majorKey(t time.Time, mode ViewMode) string {
	switch mode {
	case Hour:
		return t.Format(time.DateOnly)
	case Day:
		return t.Format("2006-01")
	case Week:
		return fmt.Sprintf("%d-Q%d", t.Year(), quarterOf(t))
	case Month, Quarter:
		return strconv.Itoa(t.Year())
	case Year:
		return strconv.Itoa(t.Year() / 10)
	}
	return ""
}
