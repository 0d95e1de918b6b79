package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/registry"
	"github.com/spacehub/space-arcade/internal/storage"
)

var sessionGame = &scriptedGame{}

func init() {
	registry.Register("scripted", func() registry.Game { return sessionGame })
}

func newSession(t *testing.T) (*SessionModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	s := NewSessionModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}, "tester", DarkTheme())
	t.Cleanup(func() {
		s.Close()
		store.Close()
	})
	return s, store
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s, store := newSession(t)

	if !strings.Contains(s.View(), "Scripted") {
		t.Fatal("menu should list registered games")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil {
		t.Fatal("enter should start the selected game")
	}

	sessionGame.state = core.GameState{Score: 30, GameOver: true}
	s.Update(FrameMsg(time.Now()))
	s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if s.screen != screenMenu {
		t.Fatal("back after game over should return to the menu")
	}
	if high, _ := store.HighScore("scripted"); high != 30 {
		t.Errorf("HighScore() = %d, expected the finished game's 30", high)
	}
	if !strings.Contains(s.View(), "best 30") {
		t.Error("menu should show the session best")
	}
}

func TestSessionScoreboard(t *testing.T) {
	s, store := newSession(t)
	store.SaveScore("scripted", "ada", 55)

	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScoreboard {
		t.Fatal("tab should open the scoreboard")
	}

	for i := 0; i < len(registry.List()); i++ {
		if s.scoreboard.currentGame() == "scripted" {
			break
		}
		s.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if !strings.Contains(s.View(), "ada") {
		t.Error("scoreboard should list the saved score")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Error("back should return to the menu")
	}
}

func TestSessionThemeCarriesAcrossScreens(t *testing.T) {
	s, _ := newSession(t)

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if s.game.Theme().Name != "light" {
		t.Errorf("game theme = %s, expected the menu's light theme", s.game.Theme().Name)
	}
}

func TestSessionQuit(t *testing.T) {
	s, _ := newSession(t)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || s.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionCloseFromAnotherGoroutine(t *testing.T) {
	s, _ := newSession(t)

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	<-done

	s.mu.Lock()
	g := s.game
	s.mu.Unlock()
	if g != nil && g.sched.Running() {
		t.Error("a game started around Close should not keep its scheduler running")
	}
}

func TestSessionClosedStartsNoGame(t *testing.T) {
	s, _ := newSession(t)
	s.Close()

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if s.game != nil || s.screen == screenGame {
		t.Error("a closed session should not start a game")
	}
	if cmd == nil {
		t.Fatal("a closed session should quit when a game is selected")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit from a closed session")
	}
}
