// Package dag provides the dependency graph behind a schedule: one node per
// task, one directed edge per dependency, and the queries a timeline editor
// needs before it accepts an edit.
//
// # Overview
//
// A [Graph] is built once from a snapshot of tasks and dependencies with
// [New] and is read-only afterwards. Internally it is an adjacency-list graph
// keyed by a stable id-to-index mapping: node indices follow the order tasks
// were given in, which makes every traversal (and therefore every result)
// deterministic for a given input.
//
// Edges whose endpoints are not both present among the tasks are left out of
// the graph. They are not an error at construction time; [Graph.Dropped]
// reports them so callers can surface the problem themselves.
//
// # Queries
//
//   - [Graph.HasCycles] and [Graph.FindCycles] detect directed cycles using
//     depth-first search with white/gray/black coloring.
//   - [Graph.TopologicalSort] orders tasks so every edge points forward
//     (Kahn's algorithm, ties broken by input order).
//   - [Graph.Dependencies] and [Graph.Dependents] list direct predecessors
//     and successors.
//   - [Graph.DependencyChain] returns the shortest path between two tasks.
//   - [Graph.ValidateDependency] checks whether adding an edge would be
//     legal, testing it on a temporary copy so the graph itself never changes.
//
// # Cycle Witnesses
//
// FindCycles reports one witness per DFS back-edge: the pair [from, to] of the
// edge that closes the cycle, not the full cycle path. TopologicalSort fails
// with the first such witness. ValidateDependency, which knows the edge being
// added, reports the complete cycle that edge would close.
//
// # Errors
//
// Failures are [*CycleError], [*NotFoundError] and [*InvalidDependencyError].
// Each matches a sentinel through errors.Is ([ErrCircularDependency],
// [ErrTaskNotFound], [ErrInvalidDependency]) and reports a machine-readable
// code from package errors.
//
// # Caching
//
// Graphs are cheap to rebuild, but a rendering layer may ask the same
// questions of the same snapshot many times per frame. [Memo] caches built
// graphs keyed by a hash of the input; any change to tasks or edges changes
// the key.
//
// # Concurrency
//
// A Graph is immutable after New returns and may be shared between
// goroutines. Memo is safe for concurrent use.
//
// # Related Packages
//
// The [transform] subpackage provides schedule-level transformations built on
// this graph: cycle repair for imported data and depth levels for rendering.
//
// [transform]: github.com/matzehuels/ganttline/pkg/dag/transform
package dag
