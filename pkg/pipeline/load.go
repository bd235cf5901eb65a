package pipeline

import (
	gio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/task"
)

// Load returns the schedule named by opts: the in-memory Schedule when set,
// otherwise the file at Path. In-memory schedules are normalized the same way
// files are.
func Load(opts Options) (task.Schedule, error) {
	if opts.Schedule != nil {
		return opts.Schedule.Normalize(), nil
	}
	return gio.Import(opts.Path)
}
