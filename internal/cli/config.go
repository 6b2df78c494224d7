package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/George-Ogden/dbg/pkg/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create dbg.toml configuration",
		Long: `Show or create dbg.toml configuration.

Settings are read from the user file and then from dbg.toml in the working
directory, whose values take precedence.`,
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configPathCommand prints both configuration paths.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			user, err := config.UserPath()
			if err != nil {
				return fmt.Errorf("user config: %w", err)
			}
			local, err := config.LocalPath()
			if err != nil {
				return fmt.Errorf("local config: %w", err)
			}
			printKeyValue(out, "user", user)
			if _, err := os.Stat(local); err == nil {
				printKeyValue(out, "local", local)
			} else {
				printKeyValue(out, "local", local+" (missing)")
			}
			return nil
		},
	}
}

// configShowCommand prints the resolved settings as TOML.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(loggerFromContext(cmd.Context()))
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}

// configInitCommand writes a default dbg.toml.
func (c *CLI) configInitCommand() *cobra.Command {
	var user bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented dbg.toml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var (
				path string
				err  error
			)
			if user {
				path, err = config.UserPath()
			} else {
				path, err = config.LocalPath()
			}
			if err != nil {
				return err
			}
			if user {
				// UserPath creates the file on first use.
				printSuccess(out, "User configuration ready")
				printDetail(out, "Path: %s", path)
				return nil
			}

			if err := config.WriteDefault(path); err != nil {
				if os.IsExist(err) {
					printWarning(out, "%s already exists", config.FileName)
					printDetail(out, "Path: %s", path)
					return nil
				}
				return fmt.Errorf("write %s: %w", path, err)
			}
			printSuccess(out, "Created %s", config.FileName)
			printDetail(out, "Path: %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&user, "user", false, "create the user file instead of ./dbg.toml")

	return cmd
}
