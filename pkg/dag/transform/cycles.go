package transform

import (
	"github.com/matzehuels/ganttline/pkg/dag"
	"github.com/matzehuels/ganttline/pkg/task"
)

// BreakCycles splits deps into the dependencies to keep and the ones that
// close a cycle. Every dependency between the endpoints of a back-edge is
// removed, whatever its type, since the graph treats them as one edge.
// Dependencies with unknown endpoints are kept; they do not take part in the
// graph and cannot form cycles.
func BreakCycles(tasks []task.Task, deps []task.Dependency) (kept, removed []task.Dependency) {
	type edgeKey struct{ from, to string }

	back := make(map[edgeKey]struct{})
	for _, w := range dag.New(tasks, deps).FindCycles() {
		back[edgeKey{w[0], w[1]}] = struct{}{}
	}

	kept = make([]task.Dependency, 0, len(deps))
	for _, d := range deps {
		if _, ok := back[edgeKey{d.From, d.To}]; ok {
			removed = append(removed, d)
			continue
		}
		kept = append(kept, d)
	}
	return kept, removed
}
