package pge

import (
	"fmt"
	"strconv"
)

// Game is implemented by applications driven by an Engine.
type Game interface {
	// OnCreate runs once before the first frame. An error aborts startup.
	OnCreate() error
	// OnUpdate runs once per frame with the seconds elapsed since the
	// previous frame. An error aborts the loop.
	OnUpdate(ctx *Context, elapsed float32) error
	// OnDestroy runs once after the loop ends. Errors are logged only.
	OnDestroy() error
}

// Engine drives a Game frame by frame. It holds everything a host loop needs
// except the window: hosts feed it elapsed time and mouse events, then present
// Context().Screen() after each Frame.
type Engine struct {
	cfg  Config
	game Game
	ctx  *Context

	fps   fpsCounter
	stats frameStats

	injectQueue []MouseEvent
	script      *InputScript

	started bool
	stopped bool
}

// NewEngine validates cfg and creates the engine and its Context.
func NewEngine(game Game, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, err := NewContext(cfg.ScreenWidth, cfg.ScreenHeight)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, game: game, ctx: ctx}, nil
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() Config { return e.cfg }

// Context returns the render context passed to Game.OnUpdate.
func (e *Engine) Context() *Context { return e.ctx }

// Start calls Game.OnCreate. Stop only calls Game.OnDestroy after a
// successful Start.
func (e *Engine) Start() error {
	if e.started {
		return nil
	}
	Logger().Debug("engine start", "title", e.cfg.Title,
		"screen_w", e.cfg.ScreenWidth, "screen_h", e.cfg.ScreenHeight)
	if err := e.game.OnCreate(); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	e.started = true
	return nil
}

// Frame runs one frame: the mouse flags are reset, input is folded in and
// Game.OnUpdate is called. When an injected event is pending it replaces the
// host events for this frame.
func (e *Engine) Frame(elapsed float32, events []MouseEvent) error {
	mouse := e.ctx.Mouse()
	mouse.Reset()

	if e.script != nil {
		e.script.step(e)
	}
	if !e.processInjectedInput() {
		for _, ev := range events {
			mouse.Update(ev)
		}
		e.stats.hostEvents += len(events)
	}

	if err := e.game.OnUpdate(e.ctx, elapsed); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	if e.fps.tick(elapsed) {
		e.stats.fps = e.fps.fps
		e.logFrameStats()
	}
	return nil
}

// Stop calls Game.OnDestroy once. A failure is logged and otherwise ignored.
func (e *Engine) Stop() {
	if !e.started || e.stopped {
		return
	}
	e.stopped = true
	if err := e.game.OnDestroy(); err != nil {
		Logger().Warn("game destroy failed", "title", e.cfg.Title, "err", err)
		return
	}
	Logger().Debug("engine stop", "title", e.cfg.Title)
}

// FPS returns the frame count of the last completed second, or 0 before the
// first second has elapsed.
func (e *Engine) FPS() int { return e.fps.fps }

// WindowTitle returns the configured title with the current FPS appended once
// it is known.
func (e *Engine) WindowTitle() string {
	if !e.fps.ready {
		return e.cfg.Title
	}
	return e.cfg.Title + " - FPS: " + strconv.Itoa(e.fps.fps)
}
