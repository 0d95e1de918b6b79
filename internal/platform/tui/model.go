package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacehub/space-arcade/internal/config"
	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/frame"
	"github.com/spacehub/space-arcade/internal/registry"
	"github.com/spacehub/space-arcade/internal/storage"
)

// KeyHold is how long a terminal key press counts as held. Auto-repeat
// refreshes it well within this window while a key stays down.
const KeyHold = 150 * time.Millisecond

// GameModel runs one game inside Bubble Tea. Frames come from a
// frame.Scheduler; every frame samples the key state, steps the loop and
// redraws the screen buffer that View hands to the terminal.
type GameModel struct {
	loop    *frame.Loop
	sched   *frame.Scheduler
	ticks   <-chan time.Time
	keys    *core.KeyState
	pending core.InputFrame // one-shot actions for the next frame

	screen    *core.Screen
	canvas    *core.WorldCanvas
	keyMapper *KeyMapper
	theme     Theme

	recorder *frame.Recorder

	state      core.GameState
	standalone bool // quit the program on Back instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The game is reset immediately; frames
// start once Init runs.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, theme Theme) *GameModel {
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m := &GameModel{
		loop:      frame.NewLoop(game, cfg),
		sched:     frame.NewScheduler(cfg.TickRate),
		keys:      core.NewKeyState(KeyHold),
		pending:   core.NewInputFrame(time.Time{}),
		screen:    screen,
		canvas:    core.NewWorldCanvas(screen, game.World()),
		keyMapper: NewKeyMapper(),
		theme:     theme,
		recorder:  frame.NewRecorder(store, player),
	}
	m.state = game.State()
	m.loop.Render(m.canvas)
	return m
}

// Init starts the frame scheduler.
func (m *GameModel) Init() tea.Cmd {
	m.ticks = m.sched.Ticks()
	return waitForFrame(m.ticks)
}

// Update handles messages and updates the model state.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.loop.Render(m.canvas)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	now := time.Now()
	for _, a := range m.keyMapper.MapKey(msg) {
		switch {
		case a == core.ActionQuit:
			m.quitting = true
			m.teardown()
			return m, tea.Quit

		case a == core.ActionBack:
			if !m.state.GameOver && !m.state.Paused {
				continue
			}
			m.backToMenu = true
			m.teardown()
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case a == core.ActionTheme:
			m.theme = m.theme.Toggled()

		case IsHeld(a):
			m.keys.Press(a, now)

		default:
			m.pending.Set(a)
		}
	}
	return m, nil
}

// handleFrame runs one frame: sample input, update, draw.
func (m *GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.loop.Stopped() {
		return m, nil
	}

	in := m.keys.Frame(now)
	in.Merge(m.pending)
	m.pending.Clear()

	if in.Has(core.ActionRestart) {
		m.recorder.Rearm()
		m.keys.Reset()
	}
	m.state = m.loop.Frame(in, m.canvas)
	m.recorder.Observe(m.loop.Game(), m.state)

	return m, waitForFrame(m.ticks)
}

// teardown stops the scheduler and the loop. No frame is processed or
// drawn afterwards.
func (m *GameModel) teardown() {
	m.loop.Stop()
	m.sched.Stop()
	m.keys.Reset()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() error {
	dir := filepath.Join(config.GetEnv("HOME", "."), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.loop.Game().ID(), timestamp)
	return os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, m.theme)
}

// State returns the game state after the latest frame.
func (m *GameModel) State() core.GameState {
	return m.state
}

// Theme returns the active theme.
func (m *GameModel) Theme() Theme {
	return m.theme
}

// IsQuitting returns true if user requested to quit entirely.
func (m *GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m *GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a single game in its own Bubble Tea program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, theme Theme) error {
	model := NewGameModel(game, store, cfg, player, theme)
	model.standalone = true
	defer model.teardown()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
