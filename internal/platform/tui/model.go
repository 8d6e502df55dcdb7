package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
)

// maxPending bounds the number of key presses queued between ticks.
const maxPending = 16

// Model is the Bubble Tea model for one snake game. Key presses are queued
// and consumed one per tick; after a loss the model waits for enter.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	styles   map[core.Color]lipgloss.Style
	recorder *Recorder
	runtime  core.RuntimeConfig
	logger   *log.Logger

	pending  []core.Action
	quitting bool
}

// NewModel creates a model and starts a game sized to rc.
// A zero seed is replaced with the current time.
func NewModel(cfg config.Config, rc core.RuntimeConfig, rec *Recorder, logger *log.Logger) Model {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rec == nil {
		rec = NewRecorder(nil, nil, "", logger)
	}

	game := snake.NewGame(cfg, rec.HighScore())
	game.Reset(rc)
	rec.Update(game.Snapshot())

	return Model{
		game:     game,
		screen:   core.NewScreen(rc.ScreenW, rc.ScreenH),
		keys:     DefaultKeyMap(),
		styles:   colorStyles,
		recorder: rec,
		runtime:  rc,
		logger:   logger,
	}
}

// withRenderer binds the color styles to r.
func (m Model) withRenderer(r *lipgloss.Renderer) Model {
	m.styles = stylesFor(r)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions and handles leaving the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.logger.Info("interrupted", "score", m.game.Score())
		return m.finish()
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionConfirm:
		if m.game.State().Lost {
			return m.finish()
		}
		return m, nil
	}

	if !m.game.State().Lost && len(m.pending) < maxPending {
		m.pending = append(m.pending, action)
	}
	return m, nil
}

// handleResize follows the terminal size. The board is only rebuilt
// before the first move; after that it stays fixed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	if m.game.Ticks() == 0 && !m.game.State().Lost {
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.game.Reset(m.runtime)
		m.recorder.Update(m.game.Snapshot())
	}
	return m, nil
}

// handleTick consumes one queued action and advances the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.game.State().Lost {
		return m, nil
	}

	frame := core.NewInputFrame()
	if len(m.pending) > 0 {
		frame.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	result := m.game.Step(frame)
	m.recorder.Update(m.game.Snapshot())

	if result.Ate {
		m.logger.Debug("food eaten", "score", result.State.Score, "delay", m.game.TickDelay())
	}
	if result.State.Lost {
		m.pending = nil
		m.logger.Info("game lost", "score", result.State.Score, "hiscore", result.State.HighScore, "ticks", m.game.Ticks())
		return m, nil
	}

	return m, tickCmd(m.game.TickDelay())
}

// finish saves the outcome and stops the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.recorder.Save()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderScreen(m.screen, m.styles)
}

// Game returns the running session.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player leaves or
// ctx is cancelled. Cancellation is not an error.
func Run(ctx context.Context, model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
