package transform

import (
	"github.com/matzehuels/ganttline/pkg/dag"
	"github.com/matzehuels/ganttline/pkg/task"
)

// AssignLevels assigns every task a level based on its depth in the
// dependency graph.
//
// AssignLevels uses a longest-path algorithm over a topological traversal
// (Kahn's algorithm). Each task is placed at one plus the maximum level of
// any of its dependencies, ensuring that:
//   - Tasks with no dependencies are at level 0
//   - Every dependency sits strictly above its dependents
//
// # Cycles
//
// AssignLevels assumes the graph is acyclic. Tasks on a cycle never reach
// zero in-degree and keep level 0. Run [BreakCycles] first on untrusted
// input.
//
// # Performance
//
// Time complexity is O(V + E), where V is tasks and E is edges.
func AssignLevels(tasks []task.Task, deps []task.Dependency) map[string]int {
	g := dag.New(tasks, deps)
	ids := g.IDs()

	inDegree := make(map[string]int, len(ids))
	levels := make(map[string]int, len(ids))
	queue := make([]string, 0, len(ids))

	for _, id := range ids {
		parents, _ := g.Dependencies(id)
		inDegree[id] = len(parents)
		levels[id] = 0
		if len(parents) == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		children, _ := g.Dependents(curr)
		for _, child := range children {
			if level := levels[curr] + 1; level > levels[child] {
				levels[child] = level
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return levels
}

// MaxLevel returns the deepest level in levels, or 0 if levels is empty.
func MaxLevel(levels map[string]int) int {
	max := 0
	for _, l := range levels {
		if l > max {
			max = l
		}
	}
	return max
}
