// Package nodelink renders a schedule's dependency graph as a node-link
// diagram.
//
// # Overview
//
// The timeline view shows dependencies as curves between bars, which gets
// hard to follow on large schedules. This package draws the same graph as a
// traditional diagram using Graphviz: tasks are boxes, milestones are
// diamonds and every dependency is an arrow labelled with its type.
//
// # Usage
//
// Convert tasks and dependencies to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(s.Tasks, s.Dependencies, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include dates, progress and metadata
//   - Ranked: tasks at the same dependency depth share a rank, computed by
//     transform.AssignLevels
//
// # DOT Format
//
// The generated DOT uses left-to-right layout (rankdir=LR), matching the
// direction of time on the timeline. Edges whose endpoints are not among the
// tasks are left out, as in the dependency graph itself.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
