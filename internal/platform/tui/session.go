package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/registry"
	"github.com/spacehub/space-arcade/internal/storage"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full arcade session flow:
// menu -> game or scoreboard -> menu. Local menu mode and every SSH
// connection run one of these.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	theme      Theme
	screen     screenKind
	menu       MenuModel
	scoreboard ScoreboardModel
	quitting   bool

	// mu guards game and closed: Close may run on another goroutine.
	mu     sync.Mutex
	game   *GameModel
	closed bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, player string, theme Theme) *SessionModel {
	cfg.ScreenW, cfg.ScreenH = screenSize(cfg)
	return &SessionModel{
		store:  store,
		config: cfg,
		player: player,
		theme:  theme,
		menu:   NewMenuModel(store, cfg.ScreenW, cfg.ScreenH, theme),
	}
}

// Init initializes the session.
func (m *SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m *SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}
	m.theme = m.menu.Theme()

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.theme)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH, m.theme)
			return m, nil
		}
		gm := NewGameModel(game, m.store, m.config, m.player, m.theme)
		if !m.setGame(gm) {
			m.quitting = true
			return m, tea.Quit
		}
		m.screen = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m *SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.game.Update(msg)
	m.theme = m.game.Theme()

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.setGame(nil)
		return m, m.toMenu()
	}
	return m, cmd
}

// updateScoreboard handles updates when showing the scoreboard.
func (m *SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m, m.toMenu()
	}
	return m, cmd
}

func (m *SessionModel) toMenu() tea.Cmd {
	m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH, m.theme)
	m.screen = screenMenu
	return m.menu.Init()
}

// View renders the current view.
func (m *SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// setGame swaps the running game. It refuses a new game once the session
// is closed.
func (m *SessionModel) setGame(g *GameModel) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed && g != nil {
		return false
	}
	m.game = g
	return true
}

// Close stops a running game and keeps new ones from starting. It is safe
// to call from any goroutine, more than once.
func (m *SessionModel) Close() {
	m.mu.Lock()
	m.closed = true
	g := m.game
	m.mu.Unlock()

	if g != nil {
		g.teardown()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, player string, theme Theme) error {
	model := NewSessionModel(store, cfg, player, theme)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
