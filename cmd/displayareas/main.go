package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Fast-IQ/displayarea"
	"github.com/Fast-IQ/displayarea/internal/version"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newEnumerator is replaced in tests.
var newEnumerator = func(logger *slog.Logger) *displayarea.Enumerator {
	return displayarea.New(displayarea.WithLogger(logger))
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "displayareas",
		Short:        "List physical monitors with their virtual desktop bounds and monitor ids",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runList,
	}
	root.PersistentFlags().String("format", formatText, "Output format: text, json or yaml")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List display areas",
			Args:  cobra.NoArgs,
			RunE:  runList,
		},
		&cobra.Command{
			Use:   "match <monitor-id>",
			Short: "Show the display area an eye tracker reports it is mounted on",
			Args:  cobra.ExactArgs(1),
			RunE:  runMatch,
		},
		&cobra.Command{
			Use:   "modes",
			Short: "Show the current display mode of every display area",
			Args:  cobra.NoArgs,
			RunE:  runModes,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			},
		},
	)
	return root
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func setup(cmd *cobra.Command) (*displayarea.Enumerator, *outputFormatter, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := parseLogLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	format, _ := cmd.Flags().GetString("format")
	out, err := newOutputFormatter(cmd.OutOrStdout(), format)
	if err != nil {
		return nil, nil, err
	}
	return newEnumerator(logger), out, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	e, out, err := setup(cmd)
	if err != nil {
		return err
	}
	return out.areas(e.EnumerateDisplayAreas())
}

func runMatch(cmd *cobra.Command, args []string) error {
	e, out, err := setup(cmd)
	if err != nil {
		return err
	}
	area, ok := displayarea.FindByMonitorID(e.EnumerateDisplayAreas(), args[0])
	if !ok {
		return fmt.Errorf("no display area with monitor id %q", displayarea.NormalizeMonitorID(args[0]))
	}
	return out.areas([]displayarea.DisplayArea{area})
}

func runModes(cmd *cobra.Command, _ []string) error {
	e, out, err := setup(cmd)
	if err != nil {
		return err
	}
	return out.modes(e.CurrentModes(e.EnumerateDisplayAreas()))
}

type outputFormatter struct {
	w      io.Writer
	format string
}

func newOutputFormatter(w io.Writer, format string) (*outputFormatter, error) {
	format = strings.ToLower(format)
	switch format {
	case formatText, formatJSON, formatYAML:
		return &outputFormatter{w: w, format: format}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// encode handles the structured formats and reports whether it did.
func (f *outputFormatter) encode(data any) (bool, error) {
	switch f.format {
	case formatJSON:
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return true, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return true, nil
	case formatYAML:
		enc := yaml.NewEncoder(f.w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return true, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return true, enc.Close()
	}
	return false, nil
}

func (f *outputFormatter) areas(areas []displayarea.DisplayArea) error {
	if done, err := f.encode(areas); done {
		return err
	}
	if len(areas) == 0 {
		_, err := fmt.Fprintln(f.w, "No display areas found.")
		return err
	}

	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICE\tMONITOR ID\tX\tY\tWIDTH\tHEIGHT\tPRIMARY")
	for _, a := range areas {
		primary := ""
		if a.Primary {
			primary = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%g\t%s\n",
			a.DeviceName, a.MonitorID, a.XVirtual, a.YVirtual, a.WVirtual, a.HVirtual, primary)
	}
	return tw.Flush()
}

func (f *outputFormatter) modes(modes []displayarea.DisplayMode) error {
	if done, err := f.encode(modes); done {
		return err
	}
	if len(modes) == 0 {
		_, err := fmt.Fprintln(f.w, "No display modes found.")
		return err
	}

	tw := tabwriter.NewWriter(f.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICE\tPOSITION\tRESOLUTION\tBPP\tHZ")
	for _, m := range modes {
		fmt.Fprintf(tw, "%s\t%d,%d\t%dx%d\t%d\t%d\n",
			m.DeviceName, m.X, m.Y, m.Width, m.Height, m.BitsPerPel, m.RefreshRate)
	}
	return tw.Flush()
}
