// Package render turns computed schedules into drawable output.
//
// # Overview
//
// Rendering is split by visualization:
//
//   - [timeline]: the Gantt chart itself, drawn as SVG from a
//     timeline.Layout (grid, headers, weekend shading, bars, dependency
//     curves and the today marker)
//   - [nodelink]: the dependency graph as a node-link diagram, produced as
//     Graphviz DOT and rendered to SVG in-process
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg). Both renderers use them.
//
//	svg := timeline.RenderSVG(layout)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [timeline]: github.com/matzehuels/ganttline/pkg/render/timeline
// [nodelink]: github.com/matzehuels/ganttline/pkg/render/nodelink
package render
