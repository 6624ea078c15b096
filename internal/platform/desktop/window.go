// Package desktop runs a game in a native window with ebiten.
package desktop

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/game"
	"github.com/vovakirdan/tui-rhythm/internal/platform/desktop/scene"
	"github.com/vovakirdan/tui-rhythm/internal/platform/record"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

var (
	backgroundColor = color.White
	tileColor       = color.RGBA{230, 41, 55, 255}
	activeTileColor = color.RGBA{190, 33, 55, 255}
	terminalColor   = color.RGBA{200, 200, 200, 255}
	discColor       = color.Black
	textColor       = color.RGBA{40, 40, 40, 255}
)

const lineHeight = 16

// Options configures the window.
type Options struct {
	Width      int
	Height     int
	TickRate   int
	StartLevel int
	Title      string
}

// DefaultOptions returns an 800×600 window at 60 ticks per second.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, TickRate: 60, Title: "Rhythm"}
}

// Window adapts a game to ebiten.Game.
type Window struct {
	game     *game.Game
	opts     Options
	recorder *record.Recorder
	face     font.Face
	logger   *log.Logger
}

// NewWindow creates a window for g. store may be nil.
func NewWindow(g *game.Game, store *storage.Store, opts Options) *Window {
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	return &Window{
		game:     g,
		opts:     opts,
		recorder: record.New(store),
		face:     basicfont.Face7x13,
		logger:   log.Default().WithPrefix("desktop"),
	}
}

// SetLogger replaces the window's logger.
func (w *Window) SetLogger(l *log.Logger) {
	if l != nil {
		w.logger = l
		w.recorder.SetLogger(l)
	}
}

func (w *Window) runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    w.opts.Width,
		ScreenH:    w.opts.Height,
		TickRate:   w.opts.TickRate,
		StartLevel: w.opts.StartLevel,
	}
}

// input collects this tick's actions. Space, Enter and a left click are
// the same trigger.
func input() core.InputFrame {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionHit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}
	return in
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	in := input()

	if in.Has(core.ActionQuit) {
		w.recorder.Save(w.game, record.Outcome(w.game.State(), storage.OutcomeQuit))
		return ebiten.Termination
	}
	if in.Has(core.ActionRestart) {
		w.recorder.Save(w.game, record.Outcome(w.game.State(), storage.OutcomeRestarted))
		w.game.Reset(w.runtimeConfig())
		w.recorder.Restart()
		return nil
	}

	w.game.Step(in)
	if st := w.game.State(); st.GameOver {
		w.recorder.Save(w.game, storage.OutcomeCompleted)
	}
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	f := w.game.Frame()
	s := scene.Build(f, w.opts.Width, w.opts.Height)
	for _, r := range s.Tiles {
		clr := color.Color(tileColor)
		switch {
		case r.Terminal:
			clr = terminalColor
		case r.Active:
			clr = activeTileColor
		}
		vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, r.Stroke, clr, true)
	}
	vector.DrawFilledCircle(screen, s.Hub.X, s.Hub.Y, s.Hub.R, discColor, true)
	vector.DrawFilledCircle(screen, s.Ball.X, s.Ball.Y, s.Ball.R, discColor, true)

	for i, line := range scene.HUD(f, w.game.State(), w.game.Multiplier()) {
		text.Draw(screen, line, w.face, 10, 20+i*lineHeight, textColor)
	}
}

// Layout keeps a fixed logical resolution.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width, w.opts.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game, store *storage.Store, opts Options, logger *log.Logger) error {
	w := NewWindow(g, store, opts)
	w.SetLogger(logger)
	g.Reset(w.runtimeConfig())

	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetTPS(w.opts.TickRate)

	err := ebiten.RunGame(w)
	// Closing the window skips Update, so save here as well.
	w.recorder.Save(g, record.Outcome(g.State(), storage.OutcomeQuit))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
