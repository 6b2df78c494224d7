package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/George-Ogden/dbg/pkg/buildinfo"
	"github.com/George-Ogden/dbg/pkg/cache"
	"github.com/George-Ogden/dbg/pkg/config"
	"github.com/George-Ogden/dbg/pkg/errors"
	dbgio "github.com/George-Ogden/dbg/pkg/io"
	"github.com/George-Ogden/dbg/pkg/pretty"
	"github.com/George-Ogden/dbg/pkg/terminal"
)

// unboundedWidth is the --width value that disables wrapping.
const unboundedWidth = "none"

// fmtOpts holds the command-line flags for the fmt command. Empty values
// fall back to the configuration files.
type fmtOpts struct {
	format  string // input format: json, yaml or toml (default: from the extension)
	width   string // line width, "auto" or "none"
	indent  int    // spaces per level, negative for the configured value
	style   string // highlight style
	color   string // auto, always or never
	prefix  string // text printed before the document
	noCache bool   // bypass the output cache
}

// fmtCommand creates the fmt command for pretty-printing data files.
func (c *CLI) fmtCommand() *cobra.Command {
	opts := fmtOpts{indent: -1}

	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Pretty-print a JSON, YAML or TOML document",
		Long: `Pretty-print a JSON, YAML or TOML document with the dbg layout.

The document is read from the file, or from standard input when the file is
"-" or missing; --format is required for standard input. Settings not given
as flags come from dbg.toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runFmt(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: json, yaml, toml (default: from the file extension)")
	cmd.Flags().StringVarP(&opts.width, "width", "w", "", `line width, "auto" for the terminal width or "none" to never wrap`)
	cmd.Flags().IntVarP(&opts.indent, "indent", "i", opts.indent, "spaces per nesting level (default: from dbg.toml)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "highlight style (see dbg styles)")
	cmd.Flags().StringVar(&opts.color, "color", "", "color output: auto, always, never")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "text printed before the document")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the output cache")
	registerValueCompletions(cmd)

	return cmd
}

// fmtSettings are the resolved options of one fmt run.
type fmtSettings struct {
	format    string
	width     int
	unbounded bool
	indent    int
	style     string
	prefix    string
}

// resolve merges the flags over cfg for output written to out.
func (o fmtOpts) resolve(cfg config.Config, path string, out io.Writer) (fmtSettings, error) {
	s := fmtSettings{
		format: o.format,
		indent: cfg.Indent,
		style:  cfg.Style,
		prefix: o.prefix,
	}

	if s.format == "" {
		if path == "-" {
			return s, errors.New(errors.ErrCodeInvalidFormat, "--format is required when reading from standard input")
		}
		format, err := dbgio.FormatFromPath(path)
		if err != nil {
			return s, err
		}
		s.format = format
	}
	if err := errors.ValidateFormat(s.format); err != nil {
		return s, err
	}

	if o.indent >= 0 {
		s.indent = o.indent
	}
	if err := errors.ValidateIndent(s.indent); err != nil {
		return s, err
	}

	width := cfg.Width
	switch o.width {
	case "":
	case unboundedWidth:
		s.unbounded = true
	default:
		w, err := config.ParseWidth(o.width)
		if err != nil {
			return s, err
		}
		width = w
	}
	if width == 0 {
		width = terminal.Width(out)
	}
	s.width = width

	if o.style != "" {
		s.style = o.style
	}
	color := cfg.Color
	if o.color != "" {
		c, err := config.ParseColor(o.color)
		if err != nil {
			return s, err
		}
		color = c
	}
	if !colorEnabled(color, out) {
		s.style = ""
	}

	if err := errors.ValidatePrefix(s.prefix); err != nil {
		return s, err
	}
	return s, nil
}

func colorEnabled(c config.Color, out io.Writer) bool {
	switch c {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return terminal.SupportsColor(out)
}

// keyOpts returns the cache key options for s.
func (s fmtSettings) keyOpts() cache.FormatKeyOpts {
	width := s.width
	if s.unbounded {
		width = -1
	}
	return cache.FormatKeyOpts{
		Format: s.format,
		Width:  width,
		Indent: s.indent,
		Style:  s.style,
		Prefix: s.prefix,
	}
}

func (s fmtSettings) options() []pretty.Option {
	opts := []pretty.Option{
		pretty.WithWidth(s.width),
		pretty.WithIndent(s.indent),
		pretty.WithStyle(s.style),
		pretty.WithPrefix(s.prefix),
	}
	if s.unbounded {
		opts = append(opts, pretty.WithUnboundedWidth())
	}
	return opts
}

// runFmt reads the document at path, or from in for "-", and writes it
// formatted to out.
func (c *CLI) runFmt(ctx context.Context, in io.Reader, out io.Writer, path string, opts fmtOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	settings, err := opts.resolve(config.Load(logger), path, out)
	if err != nil {
		return err
	}

	data, err := readInput(in, path)
	if err != nil {
		return err
	}

	store := c.newCache(opts.noCache)
	defer store.Close()
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	key := keyer.FormatKey(data, settings.keyOpts())

	text, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Debug("Cache read failed", "err", err)
	}
	if !cached {
		v, err := dbgio.Decode(bytes.NewReader(data), settings.format)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(path), err)
		}
		formatted, err := pretty.FormatContext(ctx, v, settings.options()...)
		if err != nil {
			return err
		}
		text = []byte(formatted)
		if err := store.Set(ctx, key, text, 0); err != nil {
			logger.Debug("Cache write failed", "err", err)
		}
	}

	if _, err := fmt.Fprintf(out, "%s\n", text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	prog.done("Formatted", "input", displayName(path), "cached", cached)
	return nil
}

func readInput(in io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func displayName(path string) string {
	if path == "-" {
		return "standard input"
	}
	return path
}
