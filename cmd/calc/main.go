package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vito/calc/pkg/calc"
	"github.com/vito/calc/pkg/ioctx"
)

// Config holds the application configuration
type Config struct {
	Debug      bool
	ConfigFile string
	NoHistory  bool
	LogFile    string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "calc [flags]",
		Short: "Keypad calculator",
		Long: `calc is a four-function calculator with memory, percent, unary
operations and a short history of completed calculations.

Without a subcommand it opens an interactive keypad.`,
		Example: `  # Open the keypad
  calc

  # Evaluate a tape of button presses
  calc run -e "7 + 3 ="

  # Serve JSON-RPC on stdio
  calc rpc --log-file /tmp/calc.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Path to calc.toml (discovered from the working directory if not specified)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoHistory, "no-history", false, "Do not record completed calculations")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", "", "Path to log file")

	rootCmd.AddCommand(runCmd(&cfg), rpcCmd(&cfg))

	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs the default logger. Logs go to --log-file when
// given, otherwise to fallback. The returned func closes the log file.
func setupLogging(ctx context.Context, cfg Config, fallback io.Writer) (context.Context, func(), error) {
	dest := fallback
	closer := func() {}
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		dest = logFile
		closer = func() { _ = logFile.Close() }
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(dest, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return ioctx.LoggerToContext(ctx, logger), closer, nil
}

// loadConfig resolves calc.toml and applies flag overrides.
func loadConfig(cfg Config) (string, *calc.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", nil, err
	}
	path, config, err := calc.ResolveConfig(cfg.ConfigFile, cwd)
	if err != nil {
		return "", nil, err
	}
	applyFlags(cfg, config)
	return path, config, nil
}

func applyFlags(cfg Config, config *calc.Config) {
	if cfg.NoHistory {
		disabled := false
		config.History = &disabled
	}
}

// newSession builds a session for the resolved config.
func newSession(ctx context.Context, config *calc.Config) *calc.Session {
	return calc.NewSession(calc.NewMachine(*config), ioctx.LoggerFromContext(ctx))
}
