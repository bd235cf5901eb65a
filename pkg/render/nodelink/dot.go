package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ganttline/pkg/dag/transform"
	"github.com/matzehuels/ganttline/pkg/render"
	"github.com/matzehuels/ganttline/pkg/task"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes dates, progress and metadata in node labels.
	// When false, only the task name (or ID) is shown.
	Detailed bool
	// Ranked groups tasks of equal dependency depth into one rank.
	Ranked bool
}

// ToDOT converts tasks and dependencies to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Milestones are drawn as diamonds and read-only tasks with dashed outlines.
// Edges carry their dependency type as label, plus the lag when non-zero.
func ToDOT(tasks []task.Task, deps []task.Dependency, opts Options) string {
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10, color=\"#7a8391\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		fmt.Fprintf(&buf, "  %q [%s];\n", t.ID, strings.Join(fmtAttrs(t, fmtLabel(t, opts.Detailed)), ", "))
	}

	if opts.Ranked {
		levels := transform.AssignLevels(tasks, deps)
		byLevel := make(map[int][]string)
		for id, l := range levels {
			byLevel[l] = append(byLevel[l], id)
		}
		buf.WriteString("\n")
		for _, l := range slices.Sorted(maps.Keys(byLevel)) {
			ids := byLevel[l]
			slices.Sort(ids)
			quoted := make([]string, len(ids))
			for i, id := range ids {
				quoted[i] = strconv.Quote(id)
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
		}
	}

	buf.WriteString("\n")
	for _, d := range deps {
		if !known[d.From] || !known[d.To] {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", d.From, d.To, edgeLabel(d))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(t task.Task, detailed bool) string {
	name := t.Name
	if name == "" {
		name = t.ID
	}
	if !detailed {
		return name
	}

	parts := []string{fmt.Sprintf("%s .. %s", t.Start.Format(time.DateOnly), t.End.Format(time.DateOnly))}
	if !t.IsMilestone() {
		parts = append(parts, fmt.Sprintf("progress: %.0f%%", task.ClampProgress(t.Progress)*100))
	}
	if len(t.Assignees) > 0 {
		parts = append(parts, "assignees: "+strings.Join(t.Assignees, ", "))
	}
	for _, k := range slices.Sorted(maps.Keys(t.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, t.Meta[k]))
	}

	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(t task.Task, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	style := "rounded,filled"
	switch t.Kind {
	case task.KindMilestone:
		attrs = append(attrs, "shape=diamond")
		style = "filled"
	case task.KindProject:
		attrs = append(attrs, "penwidth=2")
	}
	if t.ReadOnly {
		style += ",dashed"
	}
	if style != "rounded,filled" {
		attrs = append(attrs, fmt.Sprintf("style=%q", style))
	}
	if t.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", t.Color))
	}
	return attrs
}

func edgeLabel(d task.Dependency) string {
	if d.LagDays != 0 {
		return fmt.Sprintf("%s %+dd", d.Type, d.LagDays)
	}
	return string(d.Type)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
