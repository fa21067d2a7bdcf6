// Package cli implements the pipeloop command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/internal/logging"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type rootFlags struct {
	format    string
	logLevel  string
	logFormat string
}

// NewRootCmd builds the pipeloop command.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "pipeloop [file]",
		Short: "Find the farthest tile of the pipe loop through S",
		Long: `pipeloop reads a map of pipe tiles (. | - L J 7 F S), follows the single
closed loop through the Start tile and prints the largest number of steps
from Start to any tile on that loop.

The map is read from the given file, or from standard input when no file
(or "-") is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("pipeloop version {{.Version}}\n")

	cmd.Flags().StringVarP(&f.format, "format", "f", FormatText, "output format: text, json or yaml")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", string(logging.FormatText), "log format: text or json")

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func run(cmd *cobra.Command, args []string, f *rootFlags) error {
	format, err := parseOutputFormat(f.format)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return err
	}
	logFormat, err := logging.ParseFormat(f.logFormat)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), level, logFormat)

	in, name, closeFn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeFn()

	g, err := pipegrid.ParseReader(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	rows, cols := g.Dimensions()
	logger.Info("map parsed", "input", name, "rows", rows, "cols", cols, "start", g.StartPosition().String())

	rep, err := loop.Analyze(g, loop.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("analyze %s: %w", name, err)
	}

	return writeReport(cmd.OutOrStdout(), format, rep)
}

// parseOutputFormat validates --format, case-insensitively like --log-format.
func parseOutputFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	fh, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("open input: %w", err)
	}
	return fh, args[0], func() { _ = fh.Close() }, nil
}

func writeReport(w io.Writer, format string, rep *loop.Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, rep.Farthest)
		return err
	}
}
