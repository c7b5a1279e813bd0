package pge

import (
	"math"
	"math/bits"
)

// SolidPattern is the stipple pattern that draws every pixel of a line.
const SolidPattern uint32 = 0xFFFFFFFF

// Context owns the draw target and drawing state for one screen. All drawing
// operations go through Draw, so the active PixelMode applies to every
// primitive.
type Context struct {
	screenWidth  int
	screenHeight int

	screen  *Sprite // sprite presented by the host
	current *Sprite // active draw target
	font    *Sprite

	pixelMode   PixelMode
	blendFactor float32
	mouse       MouseState
}

// NewContext creates a context with a width x height screen sprite.
func NewContext(width, height int) (*Context, error) {
	screen, err := NewSprite(width, height)
	if err != nil {
		return nil, err
	}
	return &Context{
		screenWidth:  width,
		screenHeight: height,
		screen:       screen,
		current:      screen,
		font:         newFontSprite(),
		pixelMode:    PixelNormal,
		blendFactor:  1,
	}, nil
}

// ScreenWidth returns the screen width in pixels.
func (c *Context) ScreenWidth() int { return c.screenWidth }

// ScreenHeight returns the screen height in pixels.
func (c *Context) ScreenHeight() int { return c.screenHeight }

// Screen returns the sprite the host presents each frame.
func (c *Context) Screen() *Sprite { return c.screen }

// DrawTarget returns the sprite drawing operations currently write to.
func (c *Context) DrawTarget() *Sprite { return c.current }

// SetDrawTarget redirects drawing to s. A nil sprite restores the screen.
func (c *Context) SetDrawTarget(s *Sprite) {
	if s == nil {
		s = c.screen
	}
	c.current = s
}

// PixelMode returns the active pixel mode.
func (c *Context) PixelMode() PixelMode { return c.pixelMode }

// SetPixelMode changes how Draw combines pixels with the target.
func (c *Context) SetPixelMode(mode PixelMode) { c.pixelMode = mode }

// PixelBlend returns the blend factor used by PixelAlpha.
func (c *Context) PixelBlend() float32 { return c.blendFactor }

// SetPixelBlend sets the blend factor, clamped to [0, 1].
func (c *Context) SetPixelBlend(blend float32) {
	switch {
	case blend < 0 || math.IsNaN(float64(blend)):
		blend = 0
	case blend > 1:
		blend = 1
	}
	c.blendFactor = blend
}

// Mouse returns the mouse state for the current frame.
func (c *Context) Mouse() *MouseState { return &c.mouse }

// Clear fills the draw target with p, bypassing the pixel mode.
func (c *Context) Clear(p Pixel) {
	pix := c.current.pix
	r, g, b, a := p.R(), p.G(), p.B(), p.A()
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
}

// Draw plots p at (x, y) according to the active pixel mode.
func (c *Context) Draw(x, y int, p Pixel) error {
	switch c.pixelMode {
	case PixelMask:
		if p.A() != 255 {
			// Still report out-of-range coordinates.
			_, err := c.current.offset(x, y)
			return err
		}
		return c.current.SetPixel(x, y, p)
	case PixelAlpha:
		d, err := c.current.GetPixel(x, y)
		if err != nil {
			return err
		}
		a := float32(p.A()) / 255 * c.blendFactor
		ic := 1 - a
		r := a*float32(p.R()) + ic*float32(d.R())
		g := a*float32(p.G()) + ic*float32(d.G())
		b := a*float32(p.B()) + ic*float32(d.B())
		return c.current.SetPixel(x, y, RGBA(uint8(r), uint8(g), uint8(b), uint8(math.Round(float64(a*255)))))
	default:
		return c.current.SetPixel(x, y, p)
	}
}

// DrawLine draws a line from (x1, y1) to (x2, y2) with a stipple pattern.
// Before each candidate pixel the pattern is rotated left one bit and the
// pixel is drawn only when the new low bit is set.
//
// Vertical and horizontal lines cover [min, max) and leave out the far
// endpoint; other lines include both endpoints.
func (c *Context) DrawLine(x1, y1, x2, y2 int, p Pixel, pattern uint32) error {
	rol := func() bool {
		pattern = bits.RotateLeft32(pattern, 1)
		return pattern&1 != 0
	}

	dx := x2 - x1
	dy := y2 - y1

	if dx == 0 {
		for y := min(y1, y2); y < max(y1, y2); y++ {
			if rol() {
				if err := c.Draw(x1, y, p); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if dy == 0 {
		for x := min(x1, x2); x < max(x1, x2); x++ {
			if rol() {
				if err := c.Draw(x, y1, p); err != nil {
					return err
				}
			}
		}
		return nil
	}

	dx1 := abs(dx)
	dy1 := abs(dy)
	px := 2*dy1 - dx1
	py := 2*dx1 - dy1
	// Minor-axis step is positive when both deltas share a sign.
	step := -1
	if (dx < 0) == (dy < 0) {
		step = 1
	}

	var x, y int
	if dy1 <= dx1 {
		var xe int
		if dx >= 0 {
			x, y, xe = x1, y1, x2
		} else {
			x, y, xe = x2, y2, x1
		}
		if rol() {
			if err := c.Draw(x, y, p); err != nil {
				return err
			}
		}
		for x < xe {
			x++
			if px < 0 {
				px += 2 * dy1
			} else {
				y += step
				px += 2 * (dy1 - dx1)
			}
			if rol() {
				if err := c.Draw(x, y, p); err != nil {
					return err
				}
			}
		}
		return nil
	}

	var ye int
	if dy >= 0 {
		x, y, ye = x1, y1, y2
	} else {
		x, y, ye = x2, y2, y1
	}
	if rol() {
		if err := c.Draw(x, y, p); err != nil {
			return err
		}
	}
	for y < ye {
		y++
		if py <= 0 {
			py += 2 * dx1
		} else {
			x += step
			py += 2 * (dx1 - dy1)
		}
		if rol() {
			if err := c.Draw(x, y, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawSolidLine draws a line with every pixel set.
func (c *Context) DrawSolidLine(x1, y1, x2, y2 int, p Pixel) error {
	return c.DrawLine(x1, y1, x2, y2, p, SolidPattern)
}

// DrawRect outlines the rectangle with corners (x, y) and (x+w, y+h). The
// four edges are solid lines; the corner (x+w, y+h), which both half-open
// edges leave out, is plotted last to close the outline.
func (c *Context) DrawRect(x, y, w, h int, p Pixel) error {
	if err := c.DrawSolidLine(x, y, x+w, y, p); err != nil {
		return err
	}
	if err := c.DrawSolidLine(x+w, y, x+w, y+h, p); err != nil {
		return err
	}
	if err := c.DrawSolidLine(x+w, y+h, x, y+h, p); err != nil {
		return err
	}
	if err := c.DrawSolidLine(x, y+h, x, y, p); err != nil {
		return err
	}
	return c.Draw(x+w, y+h, p)
}

// FillRect fills [x, x+w) x [y, y+h).
func (c *Context) FillRect(x, y, w, h int, p Pixel) error {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if err := c.Draw(i, j, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawString renders text with the built-in 8x8 font, each font pixel
// magnified to a scale x scale block. '\n' starts a new line. Opaque colours
// draw in PixelMask mode and translucent ones in PixelAlpha; the previous
// mode is restored afterwards.
func (c *Context) DrawString(x, y int, text string, col Pixel, scale int) error {
	prev := c.pixelMode
	defer c.SetPixelMode(prev)

	if col.A() != 255 {
		c.SetPixelMode(PixelAlpha)
	} else {
		c.SetPixelMode(PixelMask)
	}

	sx, sy := 0, 0
	for _, r := range text {
		if r == '\n' {
			sx = 0
			sy += glyphSize * scale
			continue
		}

		ox, oy, err := glyphOrigin(r)
		if err != nil {
			return err
		}
		for i := 0; i < glyphSize; i++ {
			for j := 0; j < glyphSize; j++ {
				fp, err := c.font.GetPixel(ox+i, oy+j)
				if err != nil {
					return err
				}
				if fp.R() == 0 {
					continue
				}
				for is := 0; is < scale; is++ {
					for js := 0; js < scale; js++ {
						if err := c.Draw(x+sx+i*scale+is, y+sy+j*scale+js, col); err != nil {
							return err
						}
					}
				}
			}
		}
		sx += glyphSize * scale
	}
	return nil
}

// DrawPartialSprite copies the w x h region of s at (ox, oy) to (x, y),
// magnifying each source pixel to a scale x scale block. Flipping reverses
// the order the source is read along that axis; the destination size is
// unchanged.
func (c *Context) DrawPartialSprite(x, y int, s *Sprite, ox, oy, w, h, scale int, flip Flip) error {
	fxs, fxm := 0, 1
	if flip&FlipHorizontal != 0 {
		fxs, fxm = w-1, -1
	}
	fys, fym := 0, 1
	if flip&FlipVertical != 0 {
		fys, fym = h-1, -1
	}

	fx := fxs
	for i := 0; i < w; i++ {
		fy := fys
		for j := 0; j < h; j++ {
			sp, err := s.GetPixel(fx+ox, fy+oy)
			if err != nil {
				return err
			}
			for is := 0; is < scale; is++ {
				for js := 0; js < scale; js++ {
					if err := c.Draw(x+i*scale+is, y+j*scale+js, sp); err != nil {
						return err
					}
				}
			}
			fy += fym
		}
		fx += fxm
	}
	return nil
}

// DrawSprite copies all of s to (x, y).
func (c *Context) DrawSprite(x, y int, s *Sprite, scale int, flip Flip) error {
	return c.DrawPartialSprite(x, y, s, 0, 0, s.width, s.height, scale, flip)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
