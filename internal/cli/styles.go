package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/George-Ogden/dbg/pkg/config"
	"github.com/George-Ogden/dbg/pkg/highlight"
	"github.com/George-Ogden/dbg/pkg/pretty"
)

// styleSample is printed in each style when the output supports color.
var styleSample = map[string]any{
	"name":  "dbg",
	"count": 42,
	"ratio": 0.5,
	"tags":  []string{"debug"},
	"next":  nil,
	"ok":    true,
}

// stylesCommand lists the highlight styles.
func (c *CLI) stylesCommand() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available highlight styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			mode := config.ColorAuto
			if color != "" {
				var err error
				if mode, err = config.ParseColor(color); err != nil {
					return err
				}
			}
			samples := colorEnabled(mode, out)

			current := config.Load(loggerFromContext(cmd.Context())).Style
			for _, name := range highlight.Styles() {
				label := name
				if name == current {
					label += " (current)"
				}
				if !samples {
					fmt.Fprintln(out, label)
					continue
				}
				printTitle(out, label)
				sample, err := pretty.Format(styleSample, pretty.WithStyle(name), pretty.WithUnboundedWidth())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "  "+sample)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "show samples: auto, always, never")
	registerValueCompletions(cmd)

	return cmd
}
