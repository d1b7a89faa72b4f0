package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/vito/calc/pkg/calc"
	"github.com/vito/calc/pkg/ioctx"
)

func testSession() *calc.Session {
	n := 0
	machine := &calc.Machine{
		History: true,
		NewID: func() string {
			n++
			return "entry-" + strconv.Itoa(n)
		},
	}
	return calc.NewSession(machine, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTapes(t *testing.T) {
	tapes, err := filepath.Glob(filepath.Join("testdata", "*.tape"))
	require.NoError(t, err)
	require.NotEmpty(t, tapes)

	for _, path := range tapes {
		name := strings.TrimSuffix(filepath.Base(path), ".tape")
		t.Run(name, func(t *testing.T) {
			tape, err := os.ReadFile(path)
			require.NoError(t, err)

			var out bytes.Buffer
			ctx := ioctx.StdoutToContext(context.Background(), &out)
			require.NoError(t, playTape(ctx, testSession(), string(tape), false))

			golden.Assert(t, out.String(), name+".golden")
		})
	}
}

func TestPlayTapeDebug(t *testing.T) {
	var out bytes.Buffer
	ctx := ioctx.StdoutToContext(context.Background(), &out)
	require.NoError(t, playTape(ctx, testSession(), "4 + 4 =", true))

	assert.Contains(t, out.String(), "=    8\n")
	assert.Contains(t, out.String(), `Display:`)
	assert.Contains(t, out.String(), `"8"`)
	assert.Contains(t, out.String(), `Calculation:"4 + 4 ="`)
}

func TestParseTapeErrors(t *testing.T) {
	_, err := parseTape("1 + 2\n3 sin 4\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), `"sin"`)

	buttons, err := parseTape("# nothing but comments\n\n1 # one\n")
	require.NoError(t, err)
	assert.Equal(t, []calc.Button{calc.Key1}, buttons)
}

func TestReadTape(t *testing.T) {
	tape, err := readTape("1 + 1", nil, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "1 + 1", tape)

	tape, err = readTape("", nil, strings.NewReader("2 × 2"))
	require.NoError(t, err)
	assert.Equal(t, "2 × 2", tape)

	path := filepath.Join(t.TempDir(), "sum.tape")
	require.NoError(t, os.WriteFile(path, []byte("3 + 3 ="), 0644))
	tape, err = readTape("", []string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, "3 + 3 =", tape)

	_, err = readTape("1", []string{path}, nil)
	assert.Error(t, err)
}
