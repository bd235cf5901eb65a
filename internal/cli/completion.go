package cli

import (
	"strings"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/readonly"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ganttline.

Besides commands and flags, the scripts complete task ids for 'link' and
'can-edit' by reading the schedule named on the command line.

Bash:
  $ source <(ganttline completion bash)

Zsh:
  $ ganttline completion zsh > "${fpath[1]}/_ganttline"

Fish:
  $ ganttline completion fish > ~/.config/fish/completions/ganttline.fish

PowerShell:
  PS> ganttline completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// scheduleFileExts lists the extensions offered for the schedule argument.
var scheduleFileExts = []string{"json", "toml", "bson"}

// completeTaskIDs returns task ids from the schedule in args[0] that start
// with prefix, skipping ids already given.
func completeTaskIDs(args []string, prefix string) []string {
	if len(args) == 0 {
		return nil
	}
	s, err := gio.Import(args[0])
	if err != nil {
		return nil
	}
	used := make(map[string]bool, len(args))
	for _, a := range args[1:] {
		used[a] = true
	}
	var out []string
	for _, t := range s.Tasks {
		if !used[t.ID] && strings.HasPrefix(t.ID, prefix) {
			out = append(out, t.ID+"\t"+t.Name)
		}
	}
	return out
}

// completeEditTypes returns the edit types that start with prefix.
func completeEditTypes(prefix string) []string {
	var out []string
	for _, e := range readonly.EditTypes {
		if strings.HasPrefix(string(e), prefix) {
			out = append(out, string(e))
		}
	}
	return out
}

// linkArgs completes `link FILE FROM TO`.
func linkArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return scheduleFileExts, cobra.ShellCompDirectiveFilterFileExt
	}
	if len(args) > 2 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeTaskIDs(args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// canEditArgs completes `can-edit FILE [TASK] EDIT_TYPE`.
func canEditArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return scheduleFileExts, cobra.ShellCompDirectiveFilterFileExt
	case 1:
		return append(completeTaskIDs(args, toComplete), completeEditTypes(toComplete)...), cobra.ShellCompDirectiveNoFileComp
	case 2:
		return completeEditTypes(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
