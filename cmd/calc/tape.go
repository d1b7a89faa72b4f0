package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/vito/calc/pkg/calc"
	"github.com/vito/calc/pkg/ioctx"
)

func runCmd(cfg *Config) *cobra.Command {
	var expr string

	cmd := &cobra.Command{
		Use:   "run [flags] [file]",
		Short: "Press the buttons on a tape and print each display",
		Long: `Run a tape of whitespace-separated button tokens, printing the
display after every press. Rejected presses print their notice on a line
starting with "!".

Tapes are read from -e, a file, or stdin. Text after "#" on a line is a
comment.`,
		Example: `  # Repeat-equals
  calc run -e "3 + 2 = = ="

  # Run a tape file with state dumps
  calc run --debug sums.tape`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tape, err := readTape(expr, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runTape(cmd.Context(), *cfg, tape)
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "Tape to run instead of reading a file")

	return cmd
}

func readTape(expr string, args []string, stdin io.Reader) (string, error) {
	switch {
	case expr != "" && len(args) > 0:
		return "", fmt.Errorf("cannot combine -e with a tape file")
	case expr != "":
		return expr, nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read tape: %w", err)
		}
		return string(content), nil
	default:
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read tape: %w", err)
		}
		return string(content), nil
	}
}

func runTape(ctx context.Context, cfg Config, tape string) error {
	ctx, closeLog, err := setupLogging(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	_, config, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	return playTape(ctx, newSession(ctx, config), tape, cfg.Debug)
}

// playTape presses every button on the tape, writing one line per press
// to the context's stdout.
func playTape(ctx context.Context, session *calc.Session, tape string, debug bool) error {
	buttons, err := parseTape(tape)
	if err != nil {
		return err
	}

	out := ioctx.StdoutFromContext(ctx)
	for _, b := range buttons {
		state := session.Press(b)
		fmt.Fprintf(out, "%-3s  %s\n", b.Label(), state.Display)
		if state.Notice != "" {
			fmt.Fprintf(out, "!    %s\n", state.Notice)
		}
		if debug {
			fmt.Fprintf(out, "%# v\n", pretty.Formatter(state))
		}
	}
	return nil
}

// parseTape parses a tape line by line so errors can point at the line.
func parseTape(tape string) ([]calc.Button, error) {
	var buttons []calc.Button
	for i, line := range strings.Split(tape, "\n") {
		line, _, _ = strings.Cut(line, "#")
		parsed, err := calc.ParseTape(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		buttons = append(buttons, parsed...)
	}
	return buttons, nil
}
