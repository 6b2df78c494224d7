package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/George-Ogden/dbg/pkg/buildinfo"
	"github.com/George-Ogden/dbg/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands
// registered. Commands write results to the command's output and log to
// the CLI logger, which is attached to the command context before any
// command runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "dbg pretty-prints Go values and data files",
		Long:         `dbg lays out nested values so they fit the terminal, one element per line only where a line would overflow. The same printer backs the dbg Go package.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
				observability.SetFormatHooks(observability.LogFormatHooks{Logger: c.Logger})
				observability.SetCacheHooks(observability.LogCacheHooks{Logger: c.Logger})
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log cache and timing details")

	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// versionCommand prints the full build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
