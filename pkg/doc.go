// Package pkg provides the core libraries for Ganttline schedule timelines.
//
// # Overview
//
// Ganttline reads project schedules (tasks with start and end dates plus the
// dependencies between them), keeps their dependency graph free of cycles,
// decides which edits a read-only policy allows, and lays the schedule out as
// a Gantt timeline. The pkg directory is organized into four areas:
//
//  1. Domain model: [task], [dag], [validate], [readonly]
//  2. Layout and rendering: [timeline], [render]
//  3. Orchestration: [pipeline]
//  4. Infrastructure: [cache], [config], [io], [observability], [errors]
//
// # Architecture
//
// The typical data flow through Ganttline:
//
//	Schedule file (JSON, TOML, BSON)
//	         ↓
//	    [io] package (decode + normalize)
//	         ↓
//	    [validate] package (audit the graph built by [dag])
//	         ↓
//	    [timeline] package (geometry)
//	         ↓
//	    [render] packages (SVG/PDF/PNG/JSON/DOT)
//
// # Quick Start
//
// Load a schedule, check a new link, and render a weekly timeline:
//
//	import (
//	    gio "github.com/matzehuels/ganttline/pkg/io"
//	    "github.com/matzehuels/ganttline/pkg/render/timeline"
//	    "github.com/matzehuels/ganttline/pkg/task"
//	    tl "github.com/matzehuels/ganttline/pkg/timeline"
//	    "github.com/matzehuels/ganttline/pkg/validate"
//	)
//
//	// 1. Load
//	s, _ := gio.Import("plan.json")
//
//	// 2. Validate a proposed dependency
//	dep, res := validate.Create(s.Tasks, s.Dependencies, "design", "build", task.FinishToStart, 0)
//	if res.OK() {
//	    s.Dependencies = append(s.Dependencies, dep)
//	}
//
//	// 3. Compute layout
//	l, _ := tl.Compute(s, tl.Options{Mode: tl.Week})
//
//	// 4. Render to SVG
//	svg := timeline.RenderSVG(l, timeline.WithTitle("Q3"))
//
// # Main Packages
//
// ## Domain Model
//
// [task] - Tasks, milestones, dependency types (FS, SS, FF, SF) and the
// Schedule snapshot that is the unit of import and export.
//
// [dag] - Read-only dependency graph with cycle detection, topological
// sort, shortest dependency chains and edge validation on a temporary copy.
//
// [dag/transform] - Cycle repair for imported data and depth levels.
//
// [validate] - Dependency validation with typed outcomes, and full-schedule
// audits that report duplicates, dangling links and cycles.
//
// [readonly] - Read-only policies: fixed modes, role-gated custom policies
// and the per-task read-only override.
//
// ## Layout and Rendering
//
// [timeline] - View modes from hour to year, calendar math, header and grid
// generation, bar geometry and connector routing.
//
// [render/timeline] - SVG rendering of a computed layout.
//
// [render/nodelink] - Dependency graph diagrams using Graphviz.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// ## Orchestration
//
// [pipeline] - Load → check → layout → render, with caching at the layout
// and artifact stages. Used by the CLI.
//
// ## Infrastructure
//
// [cache] - Cache interface with file, Redis and no-op backends, plus the
// key derivation used by the pipeline.
//
// [config] - TOML configuration for layout defaults, edit policy and cache.
//
// [io] - Schedule files in JSON, TOML and BSON.
//
// [observability] - Hooks for pipeline stages, cache access and edit checks.
//
// [errors] - Machine-readable error codes shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dag/...      # Specific package
//	go test -run Example       # Examples only
//
// [task]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/task
// [dag]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/dag/transform
// [validate]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/validate
// [readonly]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/readonly
// [timeline]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/timeline
// [render]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/render
// [render/timeline]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/render/timeline
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/ganttline/pkg/errors
package pkg
