package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/dag/transform"
	gio "github.com/matzehuels/ganttline/pkg/io"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a schedule between JSON, TOML and BSON",
		Long: `Convert reads a schedule and writes it in the format given by the output
file's extension (.json, .toml, .bson). Output is in canonical order.

With --repair, dependencies that close a cycle are removed first. Each removed
dependency is listed.`,
		Example: `  ganttline convert plan.json plan.toml
  ganttline convert imported.json fixed.json --repair`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			prog := newProgress(c.Logger)
			s, err := gio.Import(in)
			if err != nil {
				return err
			}

			if repair {
				kept, removed := transform.BreakCycles(s.Tasks, s.Dependencies)
				s.Dependencies = kept
				for _, d := range removed {
					printWarning("removed %s", d)
				}
				c.Logger.Debug("repaired cycles", "removed", len(removed))
			}

			if err := gio.Export(s, out); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			prog.done("converted schedule", "tasks", len(s.Tasks), "to", out)
			printSuccess("Converted %d tasks", len(s.Tasks))
			printFile(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "remove dependencies that close a cycle")
	return cmd
}
