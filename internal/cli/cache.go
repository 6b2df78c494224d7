package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/George-Ogden/dbg/pkg/cache"
)

// cacheCommand groups the commands for the dbg fmt output cache.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the output cache of dbg fmt",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cacheDir())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every cached document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return clearCache(cmd, cacheDir())
		},
	})

	return cmd
}

// clearCache empties dir without creating it when it does not exist yet.
func clearCache(cmd *cobra.Command, dir string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printInfo(out, "Cache is empty")
		return nil
	}

	store, err := cache.NewFileCache(dir)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	n, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}
	loggerFromContext(cmd.Context()).Debug("Cleared cache", "dir", store.Dir(), "entries", n)

	printSuccess(out, "Cleared %d cached entries", n)
	printDetail(out, "Directory: %s", store.Dir())
	return nil
}
