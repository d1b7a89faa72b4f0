package main

import (
	"charm.land/lipgloss/v2"

	"github.com/vito/calc/pkg/calc"
)

const (
	defaultAccent = "63"
	defaultDim    = "241"
	defaultError  = "196"
)

type styles struct {
	frame       lipgloss.Style
	expression  lipgloss.Style
	display     lipgloss.Style
	notice      lipgloss.Style
	memory      lipgloss.Style
	key         lipgloss.Style
	operatorKey lipgloss.Style
	pressedKey  lipgloss.Style
	panel       lipgloss.Style
	title       lipgloss.Style
	result      lipgloss.Style
	dim         lipgloss.Style
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// newStyles builds the keypad palette, with any colours set in the
// theme taking precedence.
func newStyles(theme calc.Theme) styles {
	accent := lipgloss.Color(orDefault(theme.Accent, defaultAccent))
	dim := lipgloss.Color(orDefault(theme.Dim, defaultDim))
	errColor := lipgloss.Color(orDefault(theme.Error, defaultError))

	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		expression: lipgloss.NewStyle().Foreground(dim),
		display:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		notice:     lipgloss.NewStyle().Foreground(errColor),
		memory:     lipgloss.NewStyle().Foreground(accent),
		key:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Center),
		operatorKey: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Align(lipgloss.Center),
		pressedKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(accent).
			Bold(true).
			Align(lipgloss.Center),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1),
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		result: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		dim:    lipgloss.NewStyle().Foreground(dim),
	}
}
