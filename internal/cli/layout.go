package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/pipeline"
)

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags timelineFlags

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute the timeline layout and print it as JSON",
		Long: `Layout computes where every task bar, header cell, grid line and weekend
band of the timeline goes, and prints the result as JSON on stdout.

The output is the same document 'render -f json' writes. Results are cached
and reused while the schedule and options stay the same.`,
		Example: `  ganttline layout plan.json --view week
  ganttline layout plan.toml --from 2025-01-01 --to 2025-03-31 > layout.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Path: args[0], Formats: []string{pipeline.FormatJSON}}
			if err := flags.apply(c, &opts); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts, flags.noCache)
		},
	}

	flags.register(cmd)
	return cmd
}

// runLayout runs the pipeline up to the JSON artifact and writes it to w.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	c.Logger.Debug("layout ready",
		"grid_lines", len(result.Layout.GridLines),
		"bars", len(result.Layout.Bars),
		"cached", result.CacheInfo.LayoutHit)

	if _, err := w.Write(result.Artifacts[pipeline.FormatJSON]); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
