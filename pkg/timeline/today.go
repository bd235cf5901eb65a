package timeline

import "time"

// IsTodayVisible reports whether today falls within r.
func IsTodayVisible(r Range, today time.Time) bool { return r.Contains(today) }

// TodayOffset returns the horizontal offset of today from start, where one
// column of columnWidth covers unitDays days. The offset is exact, not
// rounded to whole columns, and negative when today is before start.
func TodayOffset(start time.Time, columnWidth float64, today time.Time, unitDays float64) float64 {
	if unitDays <= 0 {
		return 0
	}
	return daysBetween(start, today) / unitDays * columnWidth
}

// ScrollToCenter returns the scroll position that centers offset in a
// viewport of the given width, never scrolling past the left edge.
func ScrollToCenter(offset, viewportWidth float64) float64 {
	return max(0, offset-viewportWidth/2)
}
