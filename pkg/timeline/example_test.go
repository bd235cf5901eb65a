package timeline_test

import (
	"fmt"
	"time"

	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/timeline"
)

func ExampleDependencyPath() {
	p := timeline.DependencyPath(task.FinishToStart, 0, 0, 100, 150, 50, 100, 40)
	fmt.Println(p.D)
	// Output:
	// M 100 20 Q 125 20 150 70
}

func ExampleMajorHeaders() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	for _, h := range timeline.MajorHeaders(start, end, timeline.Day, 10) {
		fmt.Printf("%s: x=%g width=%g\n", h.Label, h.X, h.Width)
	}
	// Output:
	// January 2024: x=0 width=310
	// February 2024: x=310 width=290
	// March 2024: x=600 width=310
}

func ExampleTodayOffset() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	today := start.AddDate(0, 0, 14)

	offset := timeline.TodayOffset(start, 60, today, timeline.Day.UnitDays())
	fmt.Println(offset, timeline.ScrollToCenter(offset, 800))
	// Output:
	// 840 440
}
