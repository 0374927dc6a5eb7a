package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/internal/figspec"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/svgout"
)

var errTerminal = errors.New("refusing to write binary output to a terminal, use -o")

// options are the resolved settings of one invocation.
type options struct {
	configPath  string
	format      string
	formatSet   bool
	output      string
	noTight     bool
	watch       bool
	verbosity   int
	inputFormat string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ggshow [file|-]",
		Short: "Render a figure description",
		Long: `ggshow builds a figure from a JSON, YAML or TOML description and shows it.

Without -o the figure is printed to standard output as a single SVG document
followed by a newline, so it can be captured by notebooks, pipes and other
hosts that read text. With -o it is written to a file in the format given by
-f or the file extension.

Settings are read from the built-in defaults, then
$XDG_CONFIG_HOME/ggshow/config.toml, then GGSHOW_* environment variables,
then flags.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(cmd.ErrOrStderr(), opts.verbosity)
			ggplot.Logger().Debug("command started", "command", cmd.Name())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.merge(cmd, cfg)

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			if opts.watch {
				if input == "-" {
					return errors.New("--watch needs a file argument")
				}
				return runWatch(cmd.Context(), cmd, input, opts, cfg)
			}
			return run(cmd, input, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ggshow/config.toml)")

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format ("+strings.Join(recording.Backends(), ", ")+")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of standard output")
	cmd.Flags().BoolVar(&opts.noTight, "no-tight", false, "skip the tight layout pass")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "render again whenever the input file changes")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", "", "input format ("+strings.Join(figspec.Formats, ", ")+"), default from the extension")

	cmd.AddCommand(newFormatsCmd(), newVersionCmd())
	return cmd
}

// merge fills the settings not given as flags from the config.
func (o *options) merge(cmd *cobra.Command, cfg config) {
	o.formatSet = cmd.Flags().Changed("format")
	if !o.formatSet {
		o.format = cfg.Format
	}
	if !cmd.Flags().Changed("no-tight") {
		o.noTight = !cfg.Tight
	}
	if !cmd.Flags().Changed("input-format") {
		o.inputFormat = cfg.InputFormat
	}
}

// run renders the description in input once.
func run(cmd *cobra.Command, input string, opts options) error {
	spec, err := readSpec(cmd.InOrStdin(), input, opts.inputFormat)
	if err != nil {
		return err
	}
	fig, err := spec.Build()
	if err != nil {
		return err
	}
	return show(cmd.OutOrStdout(), fig, opts)
}

func readSpec(stdin io.Reader, input, format string) (*figspec.Spec, error) {
	if input == "-" {
		if format == "" {
			format = "json"
		}
		return figspec.Decode(stdin, format)
	}
	if format == "" {
		return figspec.Load(input)
	}
	// #nosec G304 -- input path is provided by the user
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return figspec.Decode(f, format)
}

// show prints SVG through the installed display or writes the figure to a
// file or, for other formats, to out.
func show(out io.Writer, fig *ggplot.Figure, opts options) error {
	format := opts.format
	if format == "" {
		format = "svg"
	}

	if opts.output == "" && format == "svg" {
		var dopts []svgout.Option
		if opts.noTight {
			dopts = append(dopts, svgout.WithoutTightLayout())
		}
		ggplot.SetDisplay(svgout.New(out, dopts...))
		return fig.Show()
	}

	if !opts.noTight {
		if err := fig.TightLayout(); err != nil {
			return err
		}
	}

	if opts.output == "" {
		if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return errTerminal
		}
		return fig.Render(out, format)
	}

	if !opts.formatSet {
		return fig.SaveFile(opts.output)
	}
	return fig.SaveFileAs(opts.output, format)
}

// runWatch renders input now and after every change until the context is
// canceled. Render errors while watching are logged, not returned.
func runWatch(ctx context.Context, cmd *cobra.Command, input string, opts options, cfg config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	render := func() {
		if err := run(cmd, input, opts); err != nil {
			ggplot.Logger().Error("render failed", "input", input, "err", err)
		}
	}
	render()
	ggplot.Logger().Info("watching", "input", input, "debounce", cfg.Debounce)
	return watch(ctx, input, cfg.Debounce, render)
}

// setupLogger routes library logs to w: warnings by default, info with
// -v and debug with -vv.
func setupLogger(w io.Writer, verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	ggplot.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range recording.Backends() {
				f, err := recording.Lookup(name)
				if err != nil {
					return err
				}
				kind := "raster"
				if f.Vector {
					kind = "vector"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-6s %-14s %s\n", f.Name, kind, f.MediaType, strings.Join(f.Extensions, " "))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ggshow version %s\n", ggplot.Version)
		},
	}
}
