package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/registry"
	"github.com/spacehub/space-arcade/internal/storage"
)

// scriptedGame records the input of every step and ends when told to.
type scriptedGame struct {
	inputs  []core.InputFrame
	resets  int
	state   core.GameState
	outcome *registry.Outcome
}

func (g *scriptedGame) ID() string       { return "scripted" }
func (g *scriptedGame) Title() string    { return "Scripted" }
func (g *scriptedGame) World() core.Size { return core.Size{W: 80, H: 24} }
func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}
func (g *scriptedGame) Render(dst core.Canvas) {
	dst.Text(0, 0, "scripted", core.ColorWhite)
}
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Outcome() (registry.Outcome, bool) {
	if g.outcome == nil || !g.state.GameOver {
		return registry.Outcome{}, false
	}
	return *g.outcome, true
}

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store) *GameModel {
	t.Helper()
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, "tester", DarkTheme())
	t.Cleanup(m.teardown)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameModelOneShotActionsLastOneFrame(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m.Update(keyMsg("p"))
	now := time.Now()
	m.Update(FrameMsg(now))
	m.Update(FrameMsg(now.Add(time.Second / 60)))

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("first frame should carry the pause")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause should not repeat on the next frame")
	}
}

func TestGameModelHeldKeysDecay(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m.Update(keyMsg("left"))
	now := time.Now()
	m.Update(FrameMsg(now))
	m.Update(FrameMsg(now.Add(KeyHold * 3)))

	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("left should be held right after the press")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("left should be released once the hold window passed")
	}
	if !g.inputs[1].Time.Equal(now.Add(KeyHold * 3)) {
		t.Error("frame time should come from the scheduler tick")
	}
}

func TestGameModelThemeToggle(t *testing.T) {
	m := newTestModel(t, &scriptedGame{}, nil)

	m.Update(keyMsg("t"))
	if m.Theme().Name != "light" {
		t.Errorf("Theme() = %s, expected light", m.Theme().Name)
	}
	m.Update(keyMsg("t"))
	if m.Theme().Name != "dark" {
		t.Errorf("Theme() = %s, expected dark", m.Theme().Name)
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m.Update(keyMsg("esc"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state.GameOver = true
	m.Update(FrameMsg(time.Now()))
	m.Update(keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("back should return to the menu after game over")
	}
	if !m.loop.Stopped() {
		t.Error("leaving the game should stop its loop")
	}
}

func TestGameModelQuitStopsFrames(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("ctrl+c should quit")
	}

	m.Update(FrameMsg(time.Now()))
	if len(g.inputs) != 0 {
		t.Error("no frame should run after quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelRecordsResultOnce(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{outcome: &registry.Outcome{Winner: "tester", Placement: 1, Duration: time.Minute}}
	m := newTestModel(t, g, store)

	g.state = core.GameState{Score: 100, GameOver: true}
	now := time.Now()
	m.Update(FrameMsg(now))
	m.Update(FrameMsg(now.Add(time.Second)))

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 1 || scores[0].Score != 100 || scores[0].Player != "tester" {
		t.Errorf("scores = %+v, expected one entry of 100 by tester", scores)
	}
	races, _ := store.RecentRaces(10)
	if len(races) != 1 || races[0].Placement != 1 {
		t.Errorf("races = %+v, expected one first-place result", races)
	}

	m.Update(keyMsg("r"))
	m.Update(FrameMsg(now.Add(2 * time.Second)))
	if g.resets != 2 {
		t.Errorf("resets = %d, expected restart to reset the game", g.resets)
	}
	g.state = core.GameState{Score: 40, GameOver: true}
	m.Update(FrameMsg(now.Add(3 * time.Second)))

	scores, _ = store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("scores = %d after a second game, expected 2", len(scores))
	}
}
