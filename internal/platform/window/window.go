package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spacehub/space-arcade/internal/core"
	"github.com/spacehub/space-arcade/internal/frame"
	"github.com/spacehub/space-arcade/internal/registry"
	"github.com/spacehub/space-arcade/internal/storage"
)

// binding ties physical keys to one action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
	held   bool // sampled every frame instead of on the press edge
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, true},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, true},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, true},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, true},
	{core.ActionBoost, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}, true},
	{core.ActionStart, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, false},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, false},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}, false},
	{core.ActionTheme, []ebiten.Key{ebiten.KeyT}, false},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, false},
}

// keySource reports keyboard state. The real one reads Ebitengine.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Window implements ebiten.Game for one arcade game. Ebitengine calls
// Update at the tick rate and Draw once per screen refresh.
type Window struct {
	loop     *frame.Loop
	keys     *core.KeyState
	input    keySource
	canvas   *imageCanvas
	recorder *frame.Recorder
	world    core.Size
	state    core.GameState
	now      func() time.Time
}

// New creates a window frontend for game.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, palette Palette) *Window {
	world := game.World()
	w := &Window{
		loop:     frame.NewLoop(game, cfg),
		keys:     core.NewKeyState(0), // real key-up events, no decay
		input:    ebitenKeys{},
		canvas:   &imageCanvas{world: world, palette: palette},
		recorder: frame.NewRecorder(store, player),
		world:    world,
		now:      time.Now,
	}
	w.state = game.State()
	return w
}

// Update samples the keyboard and advances the game by one frame.
func (w *Window) Update() error {
	if w.loop.Stopped() {
		return ebiten.Termination
	}

	now := w.now()
	in := w.sample(now)

	if in.Has(core.ActionQuit) {
		w.loop.Stop()
		return ebiten.Termination
	}
	if in.Has(core.ActionTheme) {
		w.canvas.palette = w.canvas.palette.Toggled()
	}
	if in.Has(core.ActionRestart) {
		w.recorder.Rearm()
	}

	w.state = w.loop.Update(in)
	w.recorder.Observe(w.loop.Game(), w.state)
	return nil
}

// sample builds the frame input: held keys through the key state, one-shot
// actions on their press edge only.
func (w *Window) sample(now time.Time) core.InputFrame {
	held := make(map[core.Action]bool)
	oneShot := core.NewInputFrame(now)

	for _, b := range bindings {
		for _, k := range b.keys {
			if b.held && w.input.Pressed(k) {
				held[b.action] = true
			}
			if !b.held && w.input.JustPressed(k) {
				oneShot.Set(b.action)
			}
		}
	}

	for _, b := range bindings {
		if !b.held {
			continue
		}
		if held[b.action] {
			w.keys.Press(b.action, now)
		} else {
			w.keys.Release(b.action)
		}
	}

	in := w.keys.Frame(now)
	in.Merge(oneShot)
	return in
}

// Draw renders the latest state onto the screen image.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.loop.Render(w.canvas)
}

// Layout fixes the logical screen to the game's world size.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.world.W), int(w.world.H)
}

// State returns the game state after the latest update.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens a window and plays game until it is closed or Q is pressed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, palette Palette) error {
	w := New(game, store, cfg, player, palette)
	defer w.loop.Stop()

	ebiten.SetWindowSize(int(w.world.W), int(w.world.H))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	return ebiten.RunGame(w)
}
