package pge

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// SampleMode selects how out-of-range coordinates are treated by a Sprite.
type SampleMode uint8

const (
	SampleNormal   SampleMode = iota // out-of-range access is an error
	SamplePeriodic                   // coordinates wrap around width and height
)

// Flip selects which axes a sprite blit traverses in reverse. Values combine
// with bitwise OR.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)

// PixelLayout identifies the byte order of raw pixels handed to
// NewSpriteFromPixels by an image decoder.
type PixelLayout uint8

const (
	LayoutRGBA8888 PixelLayout = iota // 4 bytes: red, green, blue, alpha
	LayoutABGR8888                    // 4 bytes: alpha, blue, green, red
	LayoutRGB24                       // 3 bytes: red, green, blue
	LayoutBGRA8888                    // 4 bytes: blue, green, red, alpha (unsupported)
	LayoutRGB565                      // 2 bytes packed (unsupported)
)

func (l PixelLayout) String() string {
	switch l {
	case LayoutRGBA8888:
		return "RGBA8888"
	case LayoutABGR8888:
		return "ABGR8888"
	case LayoutRGB24:
		return "RGB24"
	case LayoutBGRA8888:
		return "BGRA8888"
	case LayoutRGB565:
		return "RGB565"
	default:
		return fmt.Sprintf("PixelLayout(%d)", uint8(l))
	}
}

// Sprite is an in-memory frame buffer of RGBA pixels. Pixels are stored
// row-major, 4 bytes each in R, G, B, A order; the pitch is always width*4.
type Sprite struct {
	width  int
	height int
	mode   SampleMode
	pix    []byte
}

// NewSprite allocates a width x height sprite with every byte set to 255
// (opaque white).
func NewSprite(width, height int) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, errorf("Invalid sprite size: (%d, %d)", width, height)
	}
	pix := make([]byte, width*height*4)
	for i := range pix {
		pix[i] = 255
	}
	return &Sprite{width: width, height: height, pix: pix}, nil
}

// NewSpriteFromPixels normalizes decoded image bytes into a sprite. pitch is
// the number of bytes per source row. RGB24 input has no alpha channel; the
// resulting pixels carry alpha 0.
func NewSpriteFromPixels(src []byte, layout PixelLayout, width, height, pitch int) (*Sprite, error) {
	var bpp int
	switch layout {
	case LayoutRGBA8888, LayoutABGR8888:
		bpp = 4
	case LayoutRGB24:
		bpp = 3
	default:
		return nil, errorf("%v is unsupported", layout)
	}
	if width <= 0 || height <= 0 {
		return nil, errorf("Invalid sprite size: (%d, %d)", width, height)
	}
	if pitch < width*bpp || len(src) < pitch*(height-1)+width*bpp {
		return nil, errorf("Short %v buffer: %d bytes for (%d, %d) with pitch %d",
			layout, len(src), width, height, pitch)
	}

	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		srcOff := y * pitch
		dstOff := y * width * 4
		switch layout {
		case LayoutRGBA8888:
			copy(pix[dstOff:dstOff+width*4], src[srcOff:srcOff+width*4])
		case LayoutABGR8888:
			for x := 0; x < width; x++ {
				pix[dstOff] = src[srcOff+3]   // red
				pix[dstOff+1] = src[srcOff+2] // green
				pix[dstOff+2] = src[srcOff+1] // blue
				pix[dstOff+3] = src[srcOff]   // alpha
				srcOff += 4
				dstOff += 4
			}
		case LayoutRGB24:
			for x := 0; x < width; x++ {
				pix[dstOff] = src[srcOff]
				pix[dstOff+1] = src[srcOff+1]
				pix[dstOff+2] = src[srcOff+2]
				pix[dstOff+3] = 0
				srcOff += 3
				dstOff += 4
			}
		}
	}
	return &Sprite{width: width, height: height, pix: pix}, nil
}

// NewSpriteFromImage converts any image.Image into a sprite. *image.NRGBA is
// already in RGBA8888 order and is copied directly; other images are first
// converted to straight-alpha NRGBA.
func NewSpriteFromImage(img image.Image) (*Sprite, error) {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
	}
	return NewSpriteFromPixels(nrgba.Pix, LayoutRGBA8888, b.Dx(), b.Dy(), nrgba.Stride)
}

// DecodeSprite decodes a PNG or BMP stream into a sprite.
func DecodeSprite(r io.Reader) (*Sprite, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode sprite: %w", err)
	}
	return NewSpriteFromImage(img)
}

// LoadSprite loads a PNG or BMP file from disk.
func LoadSprite(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite: %w", err)
	}
	defer f.Close()
	return DecodeSprite(f)
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.width }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.height }

// Pitch returns the number of bytes per row.
func (s *Sprite) Pitch() int { return s.width * 4 }

// Mode returns the sample mode.
func (s *Sprite) Mode() SampleMode { return s.mode }

// SetSampleMode changes how out-of-range coordinates are treated.
func (s *Sprite) SetSampleMode(mode SampleMode) { s.mode = mode }

// Pix returns the raw RGBA bytes. Hosts read this after a frame to present it.
func (s *Sprite) Pix() []byte { return s.pix }

// offset resolves (x, y) to a byte offset, wrapping first in periodic mode.
func (s *Sprite) offset(x, y int) (int, error) {
	if s.mode == SamplePeriodic {
		x = wrap(x, s.width)
		y = wrap(y, s.height)
	}
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, errorf("Out of bound: (%d, %d)", x, y)
	}
	return (y*s.width + x) * 4, nil
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// GetPixel returns the pixel at (x, y).
func (s *Sprite) GetPixel(x, y int) (Pixel, error) {
	i, err := s.offset(x, y)
	if err != nil {
		return Blank, err
	}
	return RGBA(s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]), nil
}

// SetPixel stores p at (x, y).
func (s *Sprite) SetPixel(x, y int, p Pixel) error {
	i, err := s.offset(x, y)
	if err != nil {
		return err
	}
	s.pix[i] = p.R()
	s.pix[i+1] = p.G()
	s.pix[i+2] = p.B()
	s.pix[i+3] = p.A()
	return nil
}

// Sample returns the nearest pixel to the normalized coordinate (u, v), with
// both axes clamped to the sprite.
func (s *Sprite) Sample(u, v float32) (Pixel, error) {
	sx := clampInt(int(math.Floor(float64(u)*float64(s.width))), 0, s.width-1)
	sy := clampInt(int(math.Floor(float64(v)*float64(s.height))), 0, s.height-1)
	return s.GetPixel(sx, sy)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- image.Image ---

// ColorModel implements image.Image.
func (s *Sprite) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (s *Sprite) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// At implements image.Image. Out-of-range points in normal mode are Blank.
func (s *Sprite) At(x, y int) color.Color {
	p, err := s.GetPixel(x, y)
	if err != nil {
		return Blank
	}
	return p
}
