package frame

import (
	"testing"
	"time"

	"github.com/spacehub/space-arcade/internal/core"
)

type countingGame struct {
	steps   int
	renders int
	resets  int
	over    bool
}

func (g *countingGame) ID() string { return "counting" }
func (g *countingGame) Title() string { return "Counting" }
func (g *countingGame) World() core.Size { return core.Size{W: 100, H: 100} }

func (g *countingGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
}

func (g *countingGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *countingGame) Render(dst core.Canvas) {
	g.renders++
	dst.Text(0, 0, "x", core.ColorDefault)
}

func (g *countingGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.over}
}

func newTestCanvas() *core.WorldCanvas {
	return core.NewWorldCanvas(core.NewScreen(10, 10), core.Size{W: 100, H: 100})
}

func TestLoopStepsAndRenders(t *testing.T) {
	g := &countingGame{}
	l := NewLoop(g, core.DefaultConfig())
	c := newTestCanvas()

	for i := 0; i < 5; i++ {
		l.Frame(core.NewInputFrame(time.Now()), c)
	}

	if g.steps != 5 || g.renders != 5 {
		t.Errorf("steps=%d renders=%d, expected 5 and 5", g.steps, g.renders)
	}
}

func TestLoopGameOverStillRenders(t *testing.T) {
	g := &countingGame{}
	l := NewLoop(g, core.DefaultConfig())
	c := newTestCanvas()

	g.over = true
	for i := 0; i < 3; i++ {
		l.Frame(core.NewInputFrame(time.Now()), c)
	}

	if g.steps != 0 {
		t.Errorf("steps = %d, expected no updates after game over", g.steps)
	}
	if g.renders != 3 {
		t.Errorf("renders = %d, expected 3", g.renders)
	}
}

func TestLoopRestart(t *testing.T) {
	g := &countingGame{}
	l := NewLoop(g, core.DefaultConfig())
	g.over = true

	in := core.NewInputFrame(time.Now())
	in.Set(core.ActionRestart)
	state := l.Update(in)

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 (initial + restart)", g.resets)
	}
	if state.GameOver {
		t.Error("restart should clear game over")
	}
}

func TestLoopStopHaltsEverything(t *testing.T) {
	g := &countingGame{}
	l := NewLoop(g, core.DefaultConfig())
	c := newTestCanvas()

	l.Frame(core.NewInputFrame(time.Now()), c)
	l.Stop()
	l.Stop()

	c.Clear()
	l.Frame(core.NewInputFrame(time.Now()), c)
	if l.Render(c) {
		t.Error("Render() after Stop should report false")
	}

	if g.steps != 1 || g.renders != 1 {
		t.Errorf("steps=%d renders=%d, expected 1 and 1", g.steps, g.renders)
	}
	if c.Screen().Get(0, 0) != ' ' {
		t.Error("nothing should be drawn after Stop")
	}
	if !l.Stopped() {
		t.Error("Stopped() = false, expected true")
	}
}
