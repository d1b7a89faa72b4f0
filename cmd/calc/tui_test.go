package main

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/calc/pkg/calc"
)

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"esc":       tea.KeyEscape,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+l":    tea.KeyCtrlL,
	"ctrl+p":    tea.KeyCtrlP,
	"ctrl+q":    tea.KeyCtrlQ,
	"ctrl+r":    tea.KeyCtrlR,
}

func keyMsg(k string) tea.KeyMsg {
	if typ, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: typ}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T) model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newModel(testSession(), &calc.Config{}, "/home/user/calc.toml", logger)
}

func typeKeys(t *testing.T, m model, keys ...string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(model)
	}
	return m, cmd
}

func TestKeyMap(t *testing.T) {
	keys := defaultKeyMap()

	for k, want := range map[string]calc.Button{
		"7":         calc.Key7,
		".":         calc.KeyDecimal,
		"*":         calc.KeyMultiply,
		"/":         calc.KeyDivide,
		"enter":     calc.KeyEquals,
		"=":         calc.KeyEquals,
		"backspace": calc.KeyBackspace,
		"delete":    calc.KeyClearEntry,
		"esc":       calc.KeyClear,
		"c":         calc.KeyClear,
		"%":         calc.KeyPercent,
		"r":         calc.KeyReciprocal,
		"s":         calc.KeySquare,
		"v":         calc.KeySquareRoot,
		"n":         calc.KeyNegate,
		"ctrl+l":    calc.KeyMemoryClear,
		"ctrl+r":    calc.KeyMemoryRecall,
		"ctrl+p":    calc.KeyMemoryAdd,
		"ctrl+q":    calc.KeyMemorySubtract,
		"m":         calc.KeyMemoryStore,
		"H":         calc.KeyClearHistory,
	} {
		b, ok := keys.Button(keyMsg(k))
		if assert.True(t, ok, "key %q", k) {
			assert.Equal(t, want, b, "key %q", k)
		}
	}

	_, ok := keys.Button(keyMsg("z"))
	assert.False(t, ok)
	_, ok = keys.Button(keyMsg("h"))
	assert.False(t, ok, "h toggles the history panel, it is not a button")
}

func TestKeypadCalculation(t *testing.T) {
	m := newTestModel(t)
	m, _ = typeKeys(t, m, "1", "2", "+", "3", "enter")

	state := m.session.State()
	assert.Equal(t, "15", state.Display)
	assert.Equal(t, "12 + 3 =", state.Expression)
	assert.Equal(t, calc.KeyEquals, m.lastPressed)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "12 + 3 =")
	assert.Contains(t, view, "15")
	assert.NotContains(t, view, "History")
}

func TestKeypadNotice(t *testing.T) {
	m := newTestModel(t)
	m, _ = typeKeys(t, m, "5", "/", "0", "enter")
	assert.Contains(t, ansi.Strip(m.View()), "Cannot divide by zero")

	m, _ = typeKeys(t, m, "esc")
	assert.NotContains(t, ansi.Strip(m.View()), "Cannot divide by zero")
}

func TestKeypadMemoryIndicator(t *testing.T) {
	m := newTestModel(t)
	m, _ = typeKeys(t, m, "4", "2", "m")
	assert.Contains(t, ansi.Strip(m.View()), "M 42")

	m, _ = typeKeys(t, m, "ctrl+l")
	assert.NotContains(t, ansi.Strip(m.View()), "M 42")
}

func TestHistoryPanel(t *testing.T) {
	m := newTestModel(t)
	m, _ = typeKeys(t, m, "h")
	require.True(t, m.showHistory)
	assert.Contains(t, ansi.Strip(m.View()), "No history yet")

	m, _ = typeKeys(t, m, "2", "*", "3", "=")
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "2 × 3 =")
	assert.NotContains(t, view, "No history yet")

	m, _ = typeKeys(t, m, "H")
	assert.Empty(t, m.session.State().History)
	assert.Contains(t, ansi.Strip(m.View()), "No history yet")

	m, _ = typeKeys(t, m, "h")
	assert.False(t, m.showHistory)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.help.ShowAll)
	assert.Contains(t, ansi.Strip(m.View()), "quit")

	m, _ = typeKeys(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, ansi.Strip(m.View()), "clear history")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := typeKeys(t, m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestConfigReload(t *testing.T) {
	m := newTestModel(t)
	m, _ = typeKeys(t, m, "1", "+", "1", "=")
	require.Len(t, m.session.State().History, 1)

	disabled := false
	next, _ := m.Update(configReloadedMsg{config: &calc.Config{
		History:     &disabled,
		ShowHistory: true,
	}})
	m = next.(model)
	assert.True(t, m.showHistory)
	assert.Empty(t, m.session.State().History)
	assert.Equal(t, "calc.toml reloaded", m.status)
	assert.Contains(t, ansi.Strip(m.View()), "calc.toml reloaded")

	next, _ = m.Update(configReloadedMsg{err: errors.New("unknown keys: colour")})
	m = next.(model)
	assert.Equal(t, "calc.toml: unknown keys: colour", m.status)

	// the next key press clears the status line
	m, _ = typeKeys(t, m, "1")
	assert.Empty(t, m.status)
}
