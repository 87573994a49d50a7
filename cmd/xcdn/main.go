// Command xcdn is a CLI front end over the xcdn package: it parses and
// re-serializes xCDN documents and reports diagnostics on malformed
// input, in the pretty/compact forms described in SPEC_FULL.md §A.3.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	xcdn "github.com/gslf/xcdn-go"
	"github.com/gslf/xcdn-go/internal/serializer"
	"github.com/gslf/xcdn-go/internal/xlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := NewConfig()

	root := &cobra.Command{
		Use:           "xcdn",
		Short:         "Format and validate xCDN configuration/data documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newFmtCmd(cfg), newCheckCmd(cfg))
	return root
}

func newFmtCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse an xCDN document and re-serialize it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, cfg, args)
		},
	}
}

func newCheckCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Parse an xCDN document and report diagnostics without printing output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, cfg, args)
		},
	}
}

func runFmt(cmd *cobra.Command, cfg *Config, args []string) error {
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	src, err := readInput(args)
	if err != nil {
		return err
	}

	doc, err := xcdn.Parse(string(src))
	if err != nil {
		reportDiagnostic(cmd, cfg, err)
		return err
	}

	opts := serializer.Options{
		Pretty:         cfg.Format != "compact",
		Indent:         cfg.Indent,
		TrailingCommas: cfg.TrailingCommas,
	}
	out := xcdn.Format(doc, opts)
	fmt.Fprint(cmd.OutOrStdout(), out)
	logger.Debug("formatted document", "bytes", len(src), "format", cfg.Format)
	return nil
}

func runCheck(cmd *cobra.Command, cfg *Config, args []string) error {
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	src, err := readInput(args)
	if err != nil {
		return err
	}

	if _, err := xcdn.Parse(string(src)); err != nil {
		reportDiagnostic(cmd, cfg, err)
		return err
	}

	logger.Info("document is valid", "bytes", len(src))
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func newLogger(cmd *cobra.Command, cfg *Config) (*slog.Logger, error) {
	handler, err := xlog.NewHandler(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

// reportDiagnostic prints a parse/lex error to stderr, colorized when
// stderr is a terminal and --color allows it.
func reportDiagnostic(cmd *cobra.Command, cfg *Config, err error) {
	stderr := colorable.NewColorableStderr()
	red := color.New(color.FgRed, color.Bold)
	switch cfg.Color {
	case "never":
		red.DisableColor()
	case "always":
		red.EnableColor()
	}

	kind, ok := xcdn.ErrorKindOf(err)
	if !ok {
		fmt.Fprintf(stderr, "%s: %v\n", red.Sprint("error"), err)
		return
	}
	fmt.Fprintf(stderr, "%s [%s]: %v\n", red.Sprint("error"), kind, err)
}
