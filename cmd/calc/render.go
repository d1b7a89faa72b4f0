package main

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/vito/calc/pkg/calc"
)

// screenWidth is the inner width of the keypad frame.
const screenWidth = 30

var memoryRow = []calc.Button{
	calc.KeyMemoryClear, calc.KeyMemoryRecall, calc.KeyMemoryAdd, calc.KeyMemorySubtract, calc.KeyMemoryStore,
}

var keypadRows = [][]calc.Button{
	{calc.KeyPercent, calc.KeyClearEntry, calc.KeyClear, calc.KeyBackspace},
	{calc.KeyReciprocal, calc.KeySquare, calc.KeySquareRoot, calc.KeyDivide},
	{calc.Key7, calc.Key8, calc.Key9, calc.KeyMultiply},
	{calc.Key4, calc.Key5, calc.Key6, calc.KeySubtract},
	{calc.Key1, calc.Key2, calc.Key3, calc.KeyAdd},
	{calc.KeyNegate, calc.Key0, calc.KeyDecimal, calc.KeyEquals},
}

// alignRight pads s on the left to width cells, cutting from the left
// when it does not fit so the least significant digits stay visible.
func alignRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.TruncateLeft(s, w-width+1, "…")
	}
	return strings.Repeat(" ", width-w) + s
}

func (m model) renderScreen() string {
	state := m.session.State()

	status := ""
	switch {
	case state.Notice != "":
		status = m.styles.notice.Render(ansi.Truncate(state.Notice, screenWidth, "…"))
	case state.Memory != 0:
		status = m.styles.memory.Render(ansi.Truncate("M "+calc.FormatNumber(state.Memory), screenWidth, "…"))
	}

	lines := []string{
		m.styles.expression.Render(alignRight(state.Expression, screenWidth)),
		m.styles.display.Render(alignRight(state.Display, screenWidth)),
		status,
	}
	return strings.Join(lines, "\n")
}

func (m model) renderKey(b calc.Button, width int) string {
	style := m.styles.key
	switch {
	case m.pressed && m.lastPressed == b:
		style = m.styles.pressedKey
	case b.Operator() != calc.None, b == calc.KeyEquals:
		style = m.styles.operatorKey
	}
	return style.Width(width).Render(b.Label())
}

func (m model) renderRow(buttons []calc.Button) string {
	width := screenWidth / len(buttons)
	cells := make([]string, len(buttons))
	for i, b := range buttons {
		if i == len(buttons)-1 {
			// last key takes up the slack
			width += screenWidth % len(buttons)
		}
		cells[i] = m.renderKey(b, width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m model) renderKeypad() string {
	rows := []string{m.renderRow(memoryRow)}
	for _, row := range keypadRows {
		rows = append(rows, m.renderRow(row))
	}
	return strings.Join(rows, "\n")
}

func (m model) renderHistory() string {
	history := m.session.State().History

	lines := []string{m.styles.title.Render("History")}
	if len(history) == 0 {
		lines = append(lines, m.styles.dim.Render("No history yet"))
	}
	for _, entry := range history {
		lines = append(lines,
			m.styles.dim.Render(ansi.Truncate(entry.Calculation, screenWidth, "…")),
			m.styles.result.Render(alignRight(entry.Result, screenWidth)),
		)
	}
	return m.styles.panel.Render(strings.Join(lines, "\n"))
}

func (m model) View() string {
	calculator := m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderScreen(),
		"",
		m.renderKeypad(),
	))

	body := calculator
	if m.showHistory {
		body = lipgloss.JoinHorizontal(lipgloss.Top, calculator, " ", m.renderHistory())
	}

	var footer []string
	if m.status != "" {
		footer = append(footer, m.styles.dim.Render(m.status))
	}
	footer = append(footer, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{body}, footer...)...) + "\n"
}
