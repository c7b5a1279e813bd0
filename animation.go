package pge

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BlendTween animates the blend factor of a Context, for fades drawn in
// PixelAlpha mode. Call Update with the frame's elapsed time.
type BlendTween struct {
	tween  *gween.Tween
	target *Context
	Done   bool
}

// TweenBlend creates a tween from the context's current blend factor to the
// given value over duration seconds.
func TweenBlend(ctx *Context, to float32, duration float32, fn ease.TweenFunc) *BlendTween {
	return &BlendTween{
		tween:  gween.New(ctx.PixelBlend(), to, duration, fn),
		target: ctx,
	}
}

// Update advances the tween by dt seconds and applies the value through
// SetPixelBlend, so overshooting easings are clamped to [0, 1].
func (t *BlendTween) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.target.SetPixelBlend(val)
	t.Done = finished
}

// Reset rewinds the tween to its start value.
func (t *BlendTween) Reset() {
	t.tween.Reset()
	t.Done = false
}
