package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vito/calc/pkg/calc"
)

// buttonKey binds terminal keys to a calculator button.
type buttonKey struct {
	key.Binding
	Button calc.Button
}

type keyMap struct {
	// Digits is matched by character; the binding exists for help.
	Digits  key.Binding
	Buttons []buttonKey

	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func bind(b calc.Button, help string, keys ...string) buttonKey {
	return buttonKey{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		Button:  b,
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Buttons: []buttonKey{
			bind(calc.KeyDecimal, "decimal", "."),
			bind(calc.KeyAdd, "add", "+"),
			bind(calc.KeySubtract, "subtract", "-"),
			bind(calc.KeyMultiply, "multiply", "*"),
			bind(calc.KeyDivide, "divide", "/"),
			bind(calc.KeyEquals, "equals", "enter", "="),
			bind(calc.KeyBackspace, "backspace", "backspace"),
			bind(calc.KeyClearEntry, "clear entry", "delete"),
			bind(calc.KeyClear, "clear", "esc", "c"),
			bind(calc.KeyPercent, "percent", "%"),
			bind(calc.KeyReciprocal, "1/x", "r"),
			bind(calc.KeySquare, "x²", "s"),
			bind(calc.KeySquareRoot, "√x", "v"),
			bind(calc.KeyNegate, "±", "n"),
			bind(calc.KeyMemoryClear, "MC", "ctrl+l"),
			bind(calc.KeyMemoryRecall, "MR", "ctrl+r"),
			bind(calc.KeyMemoryAdd, "M+", "ctrl+p"),
			bind(calc.KeyMemorySubtract, "M-", "ctrl+q"),
			bind(calc.KeyMemoryStore, "MS", "m"),
			bind(calc.KeyClearHistory, "clear history", "H"),
		},
		History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Button resolves a key press to the calculator button it presses.
func (k keyMap) Button(msg tea.KeyMsg) (calc.Button, bool) {
	if key.Matches(msg, k.Digits) {
		b, err := calc.ParseButton(msg.String())
		return b, err == nil
	}
	for _, bk := range k.Buttons {
		if key.Matches(msg, bk.Binding) {
			return bk.Button, true
		}
	}
	return 0, false
}

func (k keyMap) binding(b calc.Button) key.Binding {
	for _, bk := range k.Buttons {
		if bk.Button == b {
			return bk.Binding
		}
	}
	return key.Binding{}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.binding(calc.KeyEquals),
		k.binding(calc.KeyClear),
		k.History,
		k.Help,
		k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	group := func(buttons ...calc.Button) []key.Binding {
		bindings := make([]key.Binding, len(buttons))
		for i, b := range buttons {
			bindings[i] = k.binding(b)
		}
		return bindings
	}
	return [][]key.Binding{
		append([]key.Binding{k.Digits}, group(calc.KeyDecimal, calc.KeyBackspace, calc.KeyClearEntry, calc.KeyClear)...),
		group(calc.KeyAdd, calc.KeySubtract, calc.KeyMultiply, calc.KeyDivide, calc.KeyEquals),
		group(calc.KeyPercent, calc.KeyReciprocal, calc.KeySquare, calc.KeySquareRoot, calc.KeyNegate),
		group(calc.KeyMemoryClear, calc.KeyMemoryRecall, calc.KeyMemoryAdd, calc.KeyMemorySubtract, calc.KeyMemoryStore),
		{k.History, k.binding(calc.KeyClearHistory), k.Help, k.Quit},
	}
}
