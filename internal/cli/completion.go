package cli

import (
	"github.com/spf13/cobra"

	"github.com/George-Ogden/dbg/pkg/errors"
	"github.com/George-Ogden/dbg/pkg/highlight"
)

// completionCommand prints a shell completion script.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for dbg.

  $ source <(dbg completion bash)
  $ dbg completion zsh > "${fpath[1]}/_dbg"
  $ dbg completion fish | source
  PS> dbg completion powershell | Out-String | Invoke-Expression

Style names, formats and color modes complete as well.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeFrom completes a flag from a fixed list of values.
func completeFrom(values []string) cobra.CompletionFunc {
	return cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp)
}

// registerValueCompletions completes whichever of the format, style and
// color flags cmd defines.
func registerValueCompletions(cmd *cobra.Command) {
	complete := map[string][]string{
		"format": errors.Formats,
		"style":  highlight.Styles(),
		"color":  errors.ColorModes[:3],
	}
	for name, values := range complete {
		if cmd.Flags().Lookup(name) != nil {
			_ = cmd.RegisterFlagCompletionFunc(name, completeFrom(values))
		}
	}
}
