package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	timelineFlags

	output       string  // output file (single format) or base path
	formats      string  // comma-separated output formats
	title        string  // chart title
	detailed     bool    // detailed node labels in graph formats
	noWeekends   bool    // omit weekend shading
	noToday      bool    // omit the today marker
	scale        float64 // PNG scale factor
	refresh      bool    // bypass cache reads
}

// slowFormats are the formats that shell out or call Graphviz.
var slowFormats = []string{pipeline.FormatPDF, pipeline.FormatPNG, pipeline.FormatGraphSVG}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	ro := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a schedule as a Gantt chart or dependency graph",
		Long: `Render lays out a schedule and writes one file per requested format.

Formats:
  svg        timeline chart (default)
  png, pdf   timeline chart, converted with rsvg-convert
  json       computed layout
  dot        dependency graph in Graphviz DOT
  graph-svg  dependency graph drawn by Graphviz

With a single format, -o names the output file. With several, -o is a base
path and each file gets its format's extension. Without -o, files are written
next to the input.`,
		Example: `  ganttline render plan.json
  ganttline render plan.json -f svg,pdf --view week --title "Q3 plan"
  ganttline render plan.json -f graph-svg --detailed -o deps.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(ro.formats)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			opts := pipeline.Options{
				Path:         args[0],
				Formats:      formats,
				Title:        ro.title,
				Detailed:     ro.detailed,
				HideWeekends: ro.noWeekends,
				HideToday:    ro.noToday,
				Scale:        ro.scale,
				Refresh:      ro.refresh,
			}
			if err := ro.apply(c, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg, png, pdf, json, dot, graph-svg (comma-separated)")
	cmd.Flags().StringVar(&ro.title, "title", "", "chart title")
	cmd.Flags().BoolVar(&ro.detailed, "detailed", false, "show dates and progress in graph nodes")
	cmd.Flags().BoolVar(&ro.noWeekends, "no-weekends", false, "do not shade weekends")
	cmd.Flags().BoolVar(&ro.noToday, "no-today", false, "do not draw the today marker")
	cmd.Flags().Float64Var(&ro.scale, "scale", ro.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&ro.refresh, "refresh", false, "recompute even if cached")
	ro.register(cmd)

	return cmd
}

// runRender executes the pipeline and writes every artifact to disk.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, ro renderOpts) error {
	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var spinner *Spinner
	if slices.ContainsFunc(opts.Formats, func(f string) bool { return slices.Contains(slowFormats, f) }) {
		spinner = newSpinner(ctx, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		var cerr *pipeline.CheckError
		if errors.As(err, &cerr) {
			for _, p := range cerr.Problems {
				printProblem(p)
			}
		}
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		path := outputPath(ro.output, opts.Path, format, len(opts.Formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		c.Logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(result.Artifacts[format]))
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", opts.Path)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.TaskCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	return nil
}

// outputPath returns where the artifact of format goes. A single format with
// an explicit output uses it as is.
func outputPath(output, input, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output, input) + pipeline.FormatExt[format]
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output ends in
// a format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	if trimmed, ok := strings.CutSuffix(output, pipeline.FormatExt[pipeline.FormatGraphSVG]); ok {
		return trimmed
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
