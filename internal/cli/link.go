package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttline/pkg/dag"
	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	gio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/observability"
	"github.com/matzehuels/ganttline/pkg/readonly"
	"github.com/matzehuels/ganttline/pkg/task"
	"github.com/matzehuels/ganttline/pkg/validate"
)

// linkOptions holds the flags of the link command.
type linkOptions struct {
	depType string
	lag     int
	write   bool
	role    string
	actor   string
}

// linkCommand creates the link command.
func (c *CLI) linkCommand() *cobra.Command {
	opts := linkOptions{depType: string(task.FinishToStart)}

	cmd := &cobra.Command{
		Use:   "link [file] [from] [to]",
		Short: "Validate a new dependency and optionally add it",
		Long: `Link checks whether the dependency FROM -> TO may be added to a schedule.

The target task must be editable under the configured read-only policy, and the
new edge must not duplicate an existing one or close a cycle. With --write the
dependency is appended and the file is saved.

Missing task arguments are picked interactively when a terminal is attached.
Targets that cannot be linked are shown dimmed.`,
		Example: `  ganttline link plan.json design build
  ganttline link plan.json design build --type SS --lag 2 --write`,
		Args:              cobra.RangeArgs(1, 3),
		ValidArgsFunction: linkArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLink(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.depType, "type", "t", opts.depType, "dependency type: FS, SS, FF, SF")
	cmd.Flags().IntVar(&opts.lag, "lag", 0, "lag in days (negative for lead)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "add the dependency and save the file")
	cmd.Flags().StringVar(&opts.role, "role", "", "role of the acting user")
	cmd.Flags().StringVar(&opts.actor, "actor", "", "id of the acting user")
	return cmd
}

func (c *CLI) runLink(ctx context.Context, cmd *cobra.Command, args []string, opts linkOptions) error {
	path := args[0]
	typ, err := task.ParseDependencyType(opts.depType)
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInvalidDependency, err, "type")
	}
	policy, err := c.cfg.EditPolicy()
	if err != nil {
		return err
	}

	s, err := gio.Import(path)
	if err != nil {
		return err
	}
	memo := dag.NewMemo(0)
	editCtx := func(id string) readonly.EditContext {
		ec := readonly.EditContext{TaskID: id, Type: readonly.EditDependencies, Role: opts.role, ActorID: opts.actor}
		if t, ok := s.Task(id); ok {
			ec.Meta = t.Meta
		}
		return ec
	}

	from, to := "", ""
	if len(args) > 1 {
		from = args[1]
	}
	if len(args) > 2 {
		to = args[2]
	}

	if from == "" {
		t, err := pickTask(ctx, NewTaskListModel("Link from", s.Tasks))
		if err != nil {
			return err
		}
		from = t.ID
	}
	if to == "" {
		g := memo.Graph(s.Tasks, s.Dependencies)
		m := NewTaskListModel("Link "+from+" to", s.Tasks)
		m.Disabled = func(t task.Task) bool {
			return t.ID == from ||
				!readonly.Permit(t, policy, editCtx(t.ID)) ||
				g.Reachable(t.ID, from)
		}
		t, err := pickTask(ctx, m)
		if err != nil {
			return err
		}
		to = t.ID
	}

	target, ok := s.Task(to)
	if !ok {
		return gerrors.New(gerrors.ErrCodeTaskNotFound, "task not found: %s", to)
	}
	allowed := readonly.Permit(target, policy, editCtx(to))
	observability.Edit().OnPermissionChecked(ctx, to, string(readonly.EditDependencies), allowed)
	if !allowed {
		return gerrors.New(gerrors.ErrCodeEditNotPermitted, "dependencies of %s are read-only under policy %s", to, policy)
	}

	v := validate.Validator{Memo: memo}
	dep, res := v.Create(s.Tasks, s.Dependencies, from, to, typ, opts.lag)
	observability.Edit().OnDependencyValidated(ctx, from, to, res.Outcome.String())
	c.Logger.Debug("validated dependency", "from", from, "to", to, "outcome", res.Outcome)
	if !res.OK() {
		return res.Err()
	}

	out := cmd.OutOrStdout()
	if !opts.write {
		fmt.Fprintf(out, "ok: %s\n", dep)
		return nil
	}

	s.Dependencies = append(s.Dependencies, dep)
	if err := gio.Export(s, path); err != nil {
		return err
	}
	fmt.Fprintf(out, "added: %s\n", dep)
	printFile(path)
	return nil
}

// canEditCommand creates the can-edit command.
func (c *CLI) canEditCommand() *cobra.Command {
	var (
		role  string
		actor string
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "can-edit [file] [task] [edit-type]",
		Short: "Evaluate the read-only policy for one edit",
		Long: `Can-edit reports whether an edit of the given type is allowed on a task.

Edit types: task_properties, timeline, progress, dependencies, metadata,
create_task, delete_task, move_task. Task-less edits such as create_task may
omit the task argument. A task marked read_only is never editable.

The policy comes from the config file unless --mode names a fixed one.`,
		Example: `  ganttline can-edit plan.json build timeline
  ganttline can-edit plan.json create_task --mode grid-only`,
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: canEditArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, id, typeName := args[0], "", args[1]
			if len(args) == 3 {
				id, typeName = args[1], args[2]
			}
			editType, err := readonly.ParseEditType(typeName)
			if err != nil {
				return gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "edit type")
			}

			policy, err := c.cfg.EditPolicy()
			if mode != "" {
				policy, err = readonly.ParseMode(mode)
				if err != nil {
					err = gerrors.Wrap(gerrors.ErrCodeInvalidPolicy, err, "mode")
				}
			}
			if err != nil {
				return err
			}

			s, err := gio.Import(path)
			if err != nil {
				return err
			}
			var t task.Task
			if id != "" {
				found, ok := s.Task(id)
				if !ok {
					return gerrors.New(gerrors.ErrCodeTaskNotFound, "task not found: %s", id)
				}
				t = found
			}

			ec := readonly.EditContext{TaskID: id, Type: editType, Role: role, ActorID: actor, Meta: t.Meta}
			allowed := readonly.Permit(t, policy, ec)
			observability.Edit().OnPermissionChecked(cmd.Context(), id, string(editType), allowed)

			printKeyValue("Policy", policy.String())
			if role != "" {
				printKeyValue("Role", role)
			}

			subject := string(editType)
			if id != "" {
				subject = fmt.Sprintf("%s on %s", editType, id)
			}
			if !allowed {
				return gerrors.New(gerrors.ErrCodeEditNotPermitted, "%s is not permitted under policy %s", subject, policy)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "allowed: %s\n", subject)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "role of the acting user")
	cmd.Flags().StringVar(&actor, "actor", "", "id of the acting user")
	cmd.Flags().StringVar(&mode, "mode", "", "fixed policy: editable, full, timeline-only, grid-only")
	return cmd
}
