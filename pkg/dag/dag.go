package dag

import (
	"slices"

	"github.com/matzehuels/ganttline/pkg/task"
)

// Graph is the dependency graph of a schedule snapshot.
//
// The zero value is an empty graph. Use [New] to build one from tasks and
// dependencies. Graph has no mutating methods; it is safe to share.
type Graph struct {
	ids      []string       // index -> task id, in input order
	index    map[string]int // task id -> index
	outgoing [][]int        // index -> successor indices (dependents)
	incoming [][]int        // index -> predecessor indices (dependencies)
	edges    int
	dropped  []task.Dependency
}

type pair struct{ from, to int }

// New builds a graph with one node per distinct task id and one directed
// edge per distinct (source, target) pair among deps.
//
// A dependency whose source or target is not among tasks is omitted and
// recorded in [Graph.Dropped]. Several dependencies between the same two
// tasks (for example FS and SS) produce a single graph edge, since
// reachability does not depend on the dependency type. If tasks contains a
// duplicate id, the first occurrence defines the node.
//
// New does not modify its arguments.
func New(tasks []task.Task, deps []task.Dependency) *Graph {
	g := &Graph{
		ids:      make([]string, 0, len(tasks)),
		index:    make(map[string]int, len(tasks)),
		outgoing: make([][]int, 0, len(tasks)),
		incoming: make([][]int, 0, len(tasks)),
	}
	for _, t := range tasks {
		if _, exists := g.index[t.ID]; exists {
			continue
		}
		g.index[t.ID] = len(g.ids)
		g.ids = append(g.ids, t.ID)
		g.outgoing = append(g.outgoing, nil)
		g.incoming = append(g.incoming, nil)
	}

	seen := make(map[pair]struct{}, len(deps))
	for _, d := range deps {
		from, okF := g.index[d.From]
		to, okT := g.index[d.To]
		if !okF || !okT {
			g.dropped = append(g.dropped, d)
			continue
		}
		p := pair{from, to}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		g.addEdge(from, to)
	}
	return g
}

func (g *Graph) addEdge(from, to int) {
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
	g.edges++
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		ids:      slices.Clone(g.ids),
		index:    make(map[string]int, len(g.index)),
		outgoing: make([][]int, len(g.outgoing)),
		incoming: make([][]int, len(g.incoming)),
		edges:    g.edges,
		dropped:  slices.Clone(g.dropped),
	}
	for id, i := range g.index {
		c.index[id] = i
	}
	for i := range g.outgoing {
		c.outgoing[i] = slices.Clone(g.outgoing[i])
		c.incoming[i] = slices.Clone(g.incoming[i])
	}
	return c
}

// NodeCount returns the number of tasks in the graph.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of distinct (source, target) edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Has reports whether the graph contains a task with the given id.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// IDs returns the task ids in input order.
func (g *Graph) IDs() []string { return slices.Clone(g.ids) }

// Dropped returns the dependencies that New left out because an endpoint
// was not among the tasks.
func (g *Graph) Dropped() []task.Dependency { return slices.Clone(g.dropped) }

// Dependencies returns the direct predecessors of id: the tasks id depends on.
func (g *Graph) Dependencies(id string) ([]string, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return g.names(g.incoming[i]), nil
}

// Dependents returns the direct successors of id: the tasks that depend on id.
func (g *Graph) Dependents(id string) ([]string, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return g.names(g.outgoing[i]), nil
}

// Sources returns the tasks with no dependencies, in input order.
func (g *Graph) Sources() []string {
	var out []string
	for i, id := range g.ids {
		if len(g.incoming[i]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns the tasks nothing depends on, in input order.
func (g *Graph) Sinks() []string {
	var out []string
	for i, id := range g.ids {
		if len(g.outgoing[i]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// HasCycles reports whether the graph contains any directed cycle.
func (g *Graph) HasCycles() bool {
	return len(g.backEdges(true)) > 0
}

// FindCycles returns one witness per back-edge found by a depth-first search
// that starts from each unvisited task in input order. A witness is the
// [from, to] pair of the back-edge, which is one edge of the cycle rather
// than the complete cycle. Returns nil for an acyclic graph.
func (g *Graph) FindCycles() [][]string {
	back := g.backEdges(false)
	if len(back) == 0 {
		return nil
	}
	out := make([][]string, len(back))
	for i, e := range back {
		out[i] = []string{g.ids[e.from], g.ids[e.to]}
	}
	return out
}

func (g *Graph) backEdges(stopAtFirst bool) []pair {
	const (
		white = iota
		gray
		black
	)

	color := make([]int, len(g.ids))
	var back []pair

	var dfs func(n int) bool
	dfs = func(n int) bool {
		color[n] = gray
		for _, child := range g.outgoing[n] {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				back = append(back, pair{n, child})
				if stopAtFirst {
					return true
				}
			}
		}
		color[n] = black
		return false
	}

	for n := range g.ids {
		if color[n] == white && dfs(n) {
			break
		}
	}
	return back
}

// TopologicalSort returns the task ids ordered so that every edge points from
// an earlier to a later task. Among tasks whose dependencies are satisfied,
// input order is kept. If the graph is cyclic, it returns a [*CycleError]
// holding the first witness found by FindCycles.
func (g *Graph) TopologicalSort() ([]string, error) {
	if cycles := g.FindCycles(); len(cycles) > 0 {
		return nil, &CycleError{Cycle: cycles[0]}
	}

	inDegree := make([]int, len(g.ids))
	queue := make([]int, 0, len(g.ids))
	for n := range g.ids {
		inDegree[n] = len(g.incoming[n])
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]string, 0, len(g.ids))
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, g.ids[curr])

		for _, child := range g.outgoing[curr] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	return order, nil
}

// ValidateDependency reports whether an edge from -> to may be added.
//
// It returns an [*InvalidDependencyError] if from == to, a [*NotFoundError]
// if either task is missing (source checked first), and a [*CycleError] if
// adding the edge to a temporary copy of the graph makes it cyclic. The
// CycleError holds the full cycle the edge would close, starting and ending
// at from. g is never modified.
func (g *Graph) ValidateDependency(from, to string) error {
	if from == to {
		return &InvalidDependencyError{From: from, To: to}
	}
	fi, ok := g.index[from]
	if !ok {
		return &NotFoundError{ID: from}
	}
	ti, ok := g.index[to]
	if !ok {
		return &NotFoundError{ID: to}
	}

	tmp := g.Clone()
	if !slices.Contains(tmp.outgoing[fi], ti) {
		tmp.addEdge(fi, ti)
	}
	if !tmp.HasCycles() {
		return nil
	}

	if back := g.DependencyChain(to, from); len(back) > 0 {
		return &CycleError{Cycle: append([]string{from}, back...)}
	}
	// The copy was already cyclic without the new edge.
	return &CycleError{Cycle: tmp.FindCycles()[0]}
}

// DependencyChain returns the shortest path of task ids from start to end,
// both included. It returns nil if end is not reachable from start or if
// either id is unknown. A task reaches itself with a one-element chain.
func (g *Graph) DependencyChain(start, end string) []string {
	si, ok := g.index[start]
	if !ok {
		return nil
	}
	ei, ok := g.index[end]
	if !ok {
		return nil
	}
	if si == ei {
		return []string{start}
	}

	prev := make([]int, len(g.ids))
	for i := range prev {
		prev[i] = -1
	}
	prev[si] = si
	queue := []int{si}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range g.outgoing[curr] {
			if prev[child] != -1 {
				continue
			}
			prev[child] = curr
			if child == ei {
				return g.path(prev, si, ei)
			}
			queue = append(queue, child)
		}
	}
	return nil
}

// Reachable reports whether end can be reached from start by following
// dependency edges.
func (g *Graph) Reachable(start, end string) bool {
	return g.DependencyChain(start, end) != nil
}

func (g *Graph) path(prev []int, start, end int) []string {
	var rev []int
	for n := end; n != start; n = prev[n] {
		rev = append(rev, n)
	}
	rev = append(rev, start)
	slices.Reverse(rev)
	return g.names(rev)
}

func (g *Graph) names(idx []int) []string {
	out := make([]string, len(idx))
	for i, n := range idx {
		out[i] = g.ids[n]
	}
	return out
}
