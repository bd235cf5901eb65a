package pipeline

import (
	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/timeline"
)

// ComputeLayout lays out s for the view in opts. Options must have been
// validated with ValidateForLayout.
func ComputeLayout(s task.Schedule, opts Options) (*timeline.Layout, error) {
	return timeline.Compute(s, opts.TimelineOptions())
}
