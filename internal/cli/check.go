package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/dag"
	gio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/pipeline"
	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/validate"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check a schedule for cycles, dangling links and duplicates",
		Long: `Check audits a schedule file and reports every structural problem.

Errors (self links, duplicate ids, duplicate links, cycles) make the command
fail. Warnings (links to unknown tasks, tasks that end before they start) are
reported but do not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			s, err := gio.Import(args[0])
			if err != nil {
				return err
			}

			problems := validate.Check(s)
			c.Logger.Debug("checked schedule", "problems", len(problems))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if problems == nil {
					problems = []validate.Problem{}
				}
				if err := enc.Encode(problems); err != nil {
					return err
				}
			} else {
				reportProblems(s, problems)
			}

			if validate.HasErrors(problems) {
				return &pipeline.CheckError{Problems: problems}
			}
			prog.done("checked schedule", "tasks", len(s.Tasks), "problems", len(problems))
			if !asJSON {
				printNextStep("Render it", "ganttline render "+args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print problems as JSON")
	return cmd
}

// reportProblems prints the outcome of an audit.
func reportProblems(s task.Schedule, problems []validate.Problem) {
	g := dag.New(s.Tasks, s.Dependencies)
	if len(problems) == 0 {
		printSuccess("No problems found")
	}
	for _, p := range problems {
		printProblem(p)
	}
	printStats(g.NodeCount(), g.EdgeCount(), false)
}

// sortCommand creates the sort command.
func (c *CLI) sortCommand() *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Print tasks in dependency order",
		Long: `Sort prints the task ids so that every task comes after the tasks it
depends on. Among tasks whose dependencies are done, file order is kept.
A schedule with a cycle cannot be sorted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := gio.Import(args[0])
			if err != nil {
				return err
			}

			g := dag.New(s.Tasks, s.Dependencies)
			order, err := g.TopologicalSort()
			if err != nil {
				return err
			}
			if dropped := g.Dropped(); len(dropped) > 0 {
				c.Logger.Warn("ignored links to unknown tasks", "count", len(dropped))
			}

			out := cmd.OutOrStdout()
			if !asTable {
				fmt.Fprintln(out, strings.Join(order, "\n"))
				return nil
			}

			index := task.Index(s.Tasks)
			sorted := make([]task.Task, 0, len(order))
			for _, id := range order {
				sorted = append(sorted, *index[id])
			}
			fmt.Fprintln(out, taskTable(sorted))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "print a table with names and dates")
	return cmd
}
