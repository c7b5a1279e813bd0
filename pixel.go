package pge

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an RGBA colour packed as 0xRRGGBBAA. Alpha 0 is fully transparent,
// 255 fully opaque. Pixels are plain values and compare with ==.
type Pixel uint32

// RGBA builds a pixel from its four channels.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB builds a fully opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return RGBA(r, g, b, 255)
}

func (p Pixel) R() uint8 { return uint8(p >> 24) }
func (p Pixel) G() uint8 { return uint8(p >> 16) }
func (p Pixel) B() uint8 { return uint8(p >> 8) }
func (p Pixel) A() uint8 { return uint8(p) }

// RGBA implements color.Color. Pixel channels are straight (non-premultiplied)
// alpha, so the result is premultiplied the same way color.NRGBA does it.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}.RGBA()
}

func (p Pixel) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", p.R(), p.G(), p.B(), p.A())
}

// Palette.
const (
	Grey            Pixel = 0xC0C0C0FF
	DarkGrey        Pixel = 0x808080FF
	VeryDarkGrey    Pixel = 0x404040FF
	Red             Pixel = 0xFF0000FF
	DarkRed         Pixel = 0x800000FF
	VeryDarkRed     Pixel = 0x400000FF
	Yellow          Pixel = 0xFFFF00FF
	DarkYellow      Pixel = 0x808000FF
	VeryDarkYellow  Pixel = 0x404000FF
	Green           Pixel = 0x00FF00FF
	DarkGreen       Pixel = 0x008000FF
	VeryDarkGreen   Pixel = 0x004000FF
	Cyan            Pixel = 0x00FFFFFF
	DarkCyan        Pixel = 0x008080FF
	VeryDarkCyan    Pixel = 0x004040FF
	Blue            Pixel = 0x0000FFFF
	DarkBlue        Pixel = 0x000080FF
	VeryDarkBlue    Pixel = 0x000040FF
	Magenta         Pixel = 0xFF00FFFF
	DarkMagenta     Pixel = 0x800080FF
	VeryDarkMagenta Pixel = 0x400040FF
	White           Pixel = 0xFFFFFFFF
	Black           Pixel = 0x000000FF
	Blank           Pixel = 0x00000000
)

// PixelMode selects how Context.Draw combines a source pixel with the draw
// target.
type PixelMode uint8

const (
	PixelNormal PixelMode = iota // overwrite
	PixelMask                    // overwrite only fully opaque source pixels
	PixelAlpha                   // source-over scaled by the blend factor
)

func (m PixelMode) String() string {
	switch m {
	case PixelNormal:
		return "normal"
	case PixelMask:
		return "mask"
	case PixelAlpha:
		return "alpha"
	default:
		return fmt.Sprintf("PixelMode(%d)", uint8(m))
	}
}

// --- colour helpers ---

// ParseHex parses "#rrggbb" into an opaque pixel.
func ParseHex(s string) (Pixel, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Blank, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Mix blends p towards q by t in [0, 1]. Greys mix in RGB, everything else in
// Lab. The alpha of p is kept.
func (p Pixel) Mix(q Pixel, t float64) Pixel {
	c1 := p.colorful()
	c2 := q.colorful()
	var out colorful.Color
	if p.isGrey() || q.isGrey() {
		out = c1.BlendRgb(c2, t).Clamped()
	} else {
		out = c1.BlendLab(c2, t).Clamped()
	}
	return p.withRGB(out)
}

// Lighten raises the HCL luminance of p by amount (0..1).
func (p Pixel) Lighten(amount float64) Pixel {
	h, c, l := p.colorful().Hcl()
	return p.withRGB(colorful.Hcl(h, c, l+amount).Clamped())
}

// Darken lowers the HCL luminance of p by amount (0..1).
func (p Pixel) Darken(amount float64) Pixel {
	h, c, l := p.colorful().Hcl()
	return p.withRGB(colorful.Hcl(h, c, l-amount).Clamped())
}

func (p Pixel) colorful() colorful.Color {
	return colorful.Color{
		R: float64(p.R()) / 255,
		G: float64(p.G()) / 255,
		B: float64(p.B()) / 255,
	}
}

func (p Pixel) withRGB(c colorful.Color) Pixel {
	r, g, b := c.RGB255()
	return RGBA(r, g, b, p.A())
}

func (p Pixel) isGrey() bool {
	return p.R() == p.G() && p.G() == p.B()
}
