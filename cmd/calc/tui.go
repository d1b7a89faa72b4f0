package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vito/calc/pkg/calc"
	"github.com/vito/calc/pkg/ioctx"
)

// configReloadedMsg carries a freshly loaded calc.toml, or the error that
// prevented loading it.
type configReloadedMsg struct {
	config *calc.Config
	err    error
}

type model struct {
	session *calc.Session
	logger  *slog.Logger

	keys   keyMap
	help   help.Model
	styles styles

	configName  string
	showHistory bool

	// last key pressed on the keypad, highlighted until the next press
	lastPressed calc.Button
	pressed     bool

	// status is a transient line under the keypad
	status string
}

func newModel(session *calc.Session, config *calc.Config, configPath string, logger *slog.Logger) model {
	m := model{
		session:     session,
		logger:      logger,
		keys:        defaultKeyMap(),
		help:        help.New(),
		styles:      newStyles(config.Theme),
		showHistory: config.ShowHistory,
	}
	if configPath != "" {
		m.configName = filepath.Base(configPath)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case configReloadedMsg:
		if msg.err != nil {
			m.logger.Warn("config reload failed", "error", msg.err)
			m.status = fmt.Sprintf("%s: %v", m.configName, msg.err)
			return m, nil
		}
		m.styles = newStyles(msg.config.Theme)
		m.showHistory = msg.config.ShowHistory
		m.session.SetHistory(msg.config.HistoryEnabled())
		m.status = m.configName + " reloaded"
		m.logger.Info("config reloaded", "history", msg.config.HistoryEnabled())

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.History):
			m.showHistory = !m.showHistory
		default:
			if b, ok := m.keys.Button(msg); ok {
				m.session.Press(b)
				m.lastPressed, m.pressed = b, true
			}
		}
	}
	return m, nil
}

func runTUI(ctx context.Context, cfg Config) error {
	// the terminal belongs to the keypad; log only when asked to
	ctx, closeLog, err := setupLogging(ctx, cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	path, config, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	logger := ioctx.LoggerFromContext(ctx)
	session := newSession(ctx, config)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	program := tea.NewProgram(
		newModel(session, config, path, logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	eg.Go(func() error {
		// quitting the keypad stops the watcher
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	if path != "" {
		eg.Go(func() error {
			return watchConfig(ctx, path, func(config *calc.Config, err error) {
				if err == nil {
					applyFlags(cfg, config)
				}
				program.Send(configReloadedMsg{config: config, err: err})
			})
		})
	}
	return eg.Wait()
}
