package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/ganttline/pkg/render"
	"github.com/matzehuels/ganttline/pkg/render/nodelink"
	rtimeline "github.com/matzehuels/ganttline/pkg/render/timeline"
	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/timeline"
)

// Render generates output artifacts in the requested formats. l may be nil
// when only graph formats are requested.
func Render(ctx context.Context, l *timeline.Layout, s task.Schedule, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	timelineSVG := func() []byte {
		if svg == nil {
			svg = rtimeline.RenderSVG(l, svgOptions(opts)...)
		}
		return svg
	}

	var dot string
	graphDOT := func() string {
		if dot == "" {
			dot = nodelink.ToDOT(s.Tasks, s.Dependencies, nodelink.Options{Detailed: opts.Detailed, Ranked: true})
		}
		return dot
	}

	for _, format := range opts.Formats {
		if l == nil && format != FormatDOT && format != FormatGraphSVG {
			return nil, fmt.Errorf("render %s: no layout", format)
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = timelineSVG()
		case FormatPNG:
			data, err = render.ToPNG(ctx, timelineSVG(), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, timelineSVG())
		case FormatJSON:
			data, err = json.MarshalIndent(l, "", "  ")
		case FormatDOT:
			data = []byte(graphDOT())
		case FormatGraphSVG:
			data, err = nodelink.RenderSVG(ctx, graphDOT())
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// svgOptions maps pipeline options to timeline SVG options.
func svgOptions(opts Options) []rtimeline.SVGOption {
	var out []rtimeline.SVGOption
	if opts.Title != "" {
		out = append(out, rtimeline.WithTitle(opts.Title))
	}
	if opts.HideWeekends {
		out = append(out, rtimeline.WithoutWeekends())
	}
	if opts.HideToday {
		out = append(out, rtimeline.WithoutToday())
	}
	return out
}
