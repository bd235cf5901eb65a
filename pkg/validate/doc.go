// Package validate decides whether a dependency may be added to a schedule
// and audits whole schedules for structural problems.
//
// # Edge Validation
//
// [Validate] checks a proposed edge in a fixed order, so the same input
// always reports the same problem:
//
//  1. the type is not FS, SS, FF or SF ([InvalidDependencyType])
//  2. the edge points from a task to itself ([SelfDependency])
//  3. either endpoint is missing ([TaskNotFound], source first)
//  4. an edge with the same source, target and type exists ([DuplicateDependency])
//  5. the edge would close a cycle ([CircularDependency])
//
// An empty type means FS, for the proposed edge and for existing ones. An
// edge with the same endpoints as an existing one but a different type is
// not a duplicate. The cycle check runs on a temporary graph; neither the
// inputs nor any cached graph are modified.
//
// [Create] runs the same checks and, when they pass, returns the new
// [task.Dependency]. Inserting it is up to the caller.
//
// # Schedule Audit
//
// [Check] reports every structural problem in an imported schedule: duplicate
// task ids, dangling or self-referencing edges, duplicate edges, cycles and
// tasks that end before they start. Dangling edges and inverted tasks are
// warnings, since the graph and the layout tolerate them; everything else is
// an error.
//
// # Caching
//
// The package-level functions build a fresh graph per call. A [Validator]
// with a [dag.Memo] reuses graphs across calls on the same snapshot, which
// is what an editor validating many candidate edges wants.
package validate
