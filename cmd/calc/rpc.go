package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vito/calc/pkg/ioctx"
	"github.com/vito/calc/pkg/rpc"
)

func rpcCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rpc",
		Short: "Serve a calculator session as JSON-RPC 2.0 on stdio",
		Long: `Serve a single calculator session over newline-delimited JSON-RPC 2.0
on stdin and stdout.

Methods: calc.press, calc.state, calc.history, calc.reset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRPC(cmd.Context(), *cfg)
		},
	}
}

func runRPC(ctx context.Context, cfg Config) error {
	// stdout carries the protocol
	ctx, closeLog, err := setupLogging(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	path, config, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	logger := ioctx.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "starting rpc server", "config", path, "history", config.HistoryEnabled())

	svc := rpc.NewService(newSession(ctx, config))
	return rpc.Serve(ctx, svc, os.Stdin, stdwc{})
}

type stdwc struct{}

func (stdwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdwc) Close() error {
	return os.Stdout.Close()
}

var _ io.WriteCloser = stdwc{}
