package pge

// InjectPress queues a button-down event at (x, y). Injected events are
// consumed one per frame and replace host input for that frame.
func (e *Engine) InjectPress(x, y int, b MouseButton) {
	e.injectQueue = append(e.injectQueue,
		MouseEvent{Type: MouseMotion, X: x, Y: y, Buttons: MaskOf(b)},
		MouseEvent{Type: MouseButtonDown, X: x, Y: y, Button: b},
	)
}

// InjectMove queues a motion event to (x, y) with held buttons.
func (e *Engine) InjectMove(x, y int, held ButtonMask) {
	e.injectQueue = append(e.injectQueue, MouseEvent{Type: MouseMotion, X: x, Y: y, Buttons: held})
}

// InjectRelease queues a button-up event at (x, y).
func (e *Engine) InjectRelease(x, y int, b MouseButton) {
	e.injectQueue = append(e.injectQueue,
		MouseEvent{Type: MouseMotion, X: x, Y: y},
		MouseEvent{Type: MouseButtonUp, X: x, Y: y, Button: b},
	)
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (e *Engine) InjectClick(x, y int, b MouseButton) {
	e.InjectPress(x, y, b)
	e.InjectRelease(x, y, b)
}

// processInjectedInput folds the next injected frame into the mouse state.
// A frame is a motion event plus the button event that follows it, if any.
// Returns true if anything was consumed.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	n := 1
	if len(e.injectQueue) > 1 && e.injectQueue[0].Type == MouseMotion &&
		e.injectQueue[1].Type != MouseMotion {
		n = 2
	}
	mouse := e.ctx.Mouse()
	for _, ev := range e.injectQueue[:n] {
		mouse.Update(ev)
	}
	copy(e.injectQueue, e.injectQueue[n:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-n]
	e.stats.injected += n
	Logger().Debug("injected input", "events", n, "pending", len(e.injectQueue))
	return true
}
