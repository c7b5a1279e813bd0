// Package ebitenhost runs a pge.Game in a desktop window using Ebitengine.
//
// The host owns the window: it polls the mouse, measures frame time, hands
// both to a pge.Engine and presents the engine's screen sprite after every
// frame. Pressing Escape or closing the window ends the loop.
package ebitenhost

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pge"
)

// Run opens a window for game and blocks until it closes. Configuration
// errors and Game.OnCreate / Game.OnUpdate failures are returned;
// Game.OnDestroy failures are only logged.
func Run(game pge.Game, cfg pge.Config) error {
	return RunWithScript(game, cfg, nil)
}

// RunWithScript is Run with an input script replayed over the first frames.
func RunWithScript(game pge.Game, cfg pge.Config, script *pge.InputScript) error {
	e, err := pge.NewEngine(game, cfg)
	if err != nil {
		return err
	}
	e.SetInputScript(script)

	w, h := cfg.WindowSize()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(cfg.FullScreen)

	if err := e.Start(); err != nil {
		return err
	}
	defer e.Stop()

	g := newHostGame(e, ebitenInput{})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	pge.Logger().Debug("window closed", "title", cfg.Title, "fps", e.FPS())
	return nil
}

type hostGame struct {
	engine *pge.Engine
	input  inputSource

	last   time.Time
	title  string
	events []pge.MouseEvent

	mouseSeen     bool
	lastX, lastY  int
	lastHeld      pge.ButtonMask
	frame         *ebiten.Image
	premultiplied []byte
}

func newHostGame(e *pge.Engine, in inputSource) *hostGame {
	return &hostGame{
		engine: e,
		input:  in,
		last:   time.Now(),
		title:  e.Config().Title,
	}
}

func (g *hostGame) Update() error {
	if g.input.quitRequested() {
		return ebiten.Termination
	}

	now := time.Now()
	elapsed := float32(now.Sub(g.last).Seconds())
	g.last = now

	g.events = g.pollMouse(g.events[:0])
	if err := g.engine.Frame(elapsed, g.events); err != nil {
		return err
	}

	if t := g.engine.WindowTitle(); t != g.title {
		g.title = t
		ebiten.SetWindowTitle(t)
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	s := g.engine.Context().Screen()
	if g.frame == nil {
		g.frame = ebiten.NewImage(s.Width(), s.Height())
		g.premultiplied = make([]byte, len(s.Pix()))
	}
	premultiply(g.premultiplied, s.Pix())
	g.frame.WritePixels(g.premultiplied)
	screen.DrawImage(g.frame, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.engine.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}

// pollMouse appends this frame's events: a motion event when the cursor or
// the held buttons changed, then one event per button edge. Motion comes
// first because it clears the button flags.
func (g *hostGame) pollMouse(buf []pge.MouseEvent) []pge.MouseEvent {
	x, y := g.input.cursorPosition()
	var held pge.ButtonMask
	for b := pge.MouseLeft; b <= pge.MouseX2; b++ {
		if g.input.isPressed(b) {
			held |= pge.MaskOf(b)
		}
	}

	if !g.mouseSeen || x != g.lastX || y != g.lastY || held != g.lastHeld {
		buf = append(buf, pge.MouseEvent{Type: pge.MouseMotion, X: x, Y: y, Buttons: held})
		g.mouseSeen = true
		g.lastX, g.lastY, g.lastHeld = x, y, held
	}

	for b := pge.MouseLeft; b <= pge.MouseX2; b++ {
		if g.input.justPressed(b) {
			buf = append(buf, pge.MouseEvent{Type: pge.MouseButtonDown, X: x, Y: y, Button: b})
		}
		if g.input.justReleased(b) {
			buf = append(buf, pge.MouseEvent{Type: pge.MouseButtonUp, X: x, Y: y, Button: b})
		}
	}
	return buf
}

// premultiply converts straight-alpha RGBA into the premultiplied form
// WritePixels expects.
func premultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := uint16(src[i+3])
		switch a {
		case 255:
			copy(dst[i:i+4], src[i:i+4])
		case 0:
			dst[i], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
		default:
			dst[i] = uint8(uint16(src[i]) * a / 255)
			dst[i+1] = uint8(uint16(src[i+1]) * a / 255)
			dst[i+2] = uint8(uint16(src[i+2]) * a / 255)
			dst[i+3] = uint8(a)
		}
	}
}
