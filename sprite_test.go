package pge

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func mustSprite(t *testing.T, w, h int) *Sprite {
	t.Helper()
	s, err := NewSprite(w, h)
	if err != nil {
		t.Fatalf("NewSprite(%d, %d): %v", w, h, err)
	}
	return s
}

func wantPixel(t *testing.T, s *Sprite, x, y int, want Pixel) {
	t.Helper()
	got, err := s.GetPixel(x, y)
	if err != nil {
		t.Fatalf("GetPixel(%d, %d): %v", x, y, err)
	}
	if got != want {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

func TestNewSpriteFilledWhite(t *testing.T) {
	s := mustSprite(t, 3, 2)
	if s.Width() != 3 || s.Height() != 2 || s.Pitch() != 12 {
		t.Fatalf("size = %dx%d pitch %d", s.Width(), s.Height(), s.Pitch())
	}
	if len(s.Pix()) != 3*2*4 {
		t.Fatalf("len(Pix) = %d, want 24", len(s.Pix()))
	}
	for i, b := range s.Pix() {
		if b != 255 {
			t.Fatalf("Pix[%d] = %d, want 255", i, b)
		}
	}
	if s.Mode() != SampleNormal {
		t.Error("new sprite should use SampleNormal")
	}
}

func TestNewSpriteInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-1, 4}} {
		if _, err := NewSprite(sz[0], sz[1]); err == nil {
			t.Errorf("NewSprite(%d, %d): expected error", sz[0], sz[1])
		}
	}
}

func TestSpriteSetGetRoundTrip(t *testing.T) {
	s := mustSprite(t, 4, 3)
	p := RGBA(1, 2, 3, 4)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if err := s.SetPixel(x, y, p); err != nil {
				t.Fatalf("SetPixel(%d, %d): %v", x, y, err)
			}
			wantPixel(t, s, x, y, p)
		}
	}
}

func TestSpriteOutOfBounds(t *testing.T) {
	s := mustSprite(t, 4, 3)
	tests := []struct {
		name string
		x, y int
	}{
		{"x == width", 4, 0},
		{"y == height", 0, 3},
		{"both past", 10, 10},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.GetPixel(tt.x, tt.y)
			var pgeErr *Error
			if !errors.As(err, &pgeErr) {
				t.Fatalf("GetPixel err = %v, want *Error", err)
			}
			if !strings.Contains(pgeErr.Msg, "Out of bound") {
				t.Errorf("message = %q", pgeErr.Msg)
			}
			if err := s.SetPixel(tt.x, tt.y, Red); err == nil {
				t.Error("SetPixel: expected error")
			}
		})
	}
}

func TestSpritePeriodic(t *testing.T) {
	s := mustSprite(t, 4, 3)
	s.SetSampleMode(SamplePeriodic)
	if err := s.SetPixel(1, 2, Red); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"in range", 1, 2},
		{"wrap x", 5, 2},
		{"wrap y", 1, 5},
		{"wrap both", 9, 8},
		{"negative", -3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantPixel(t, s, tt.x, tt.y, Red)
		})
	}

	// Writes wrap as well.
	if err := s.SetPixel(4, 0, Blue); err != nil {
		t.Fatalf("periodic SetPixel: %v", err)
	}
	wantPixel(t, s, 0, 0, Blue)

	for _, pt := range [][2]int{{4, 0}, {0, 3}} {
		got, err := s.GetPixel(pt[0], pt[1])
		if err != nil {
			t.Fatal(err)
		}
		want, _ := s.GetPixel(pt[0]%4, pt[1]%3)
		if got != want {
			t.Errorf("GetPixel%v = %v, want %v", pt, got, want)
		}
	}
}

func TestNewSpriteFromPixels(t *testing.T) {
	t.Run("RGB24 synthesizes zero alpha", func(t *testing.T) {
		s, err := NewSpriteFromPixels([]byte{10, 20, 30}, LayoutRGB24, 1, 1, 3)
		if err != nil {
			t.Fatal(err)
		}
		wantPixel(t, s, 0, 0, RGBA(10, 20, 30, 0))
	})

	t.Run("ABGR8888 reorders", func(t *testing.T) {
		s, err := NewSpriteFromPixels([]byte{40, 30, 20, 10}, LayoutABGR8888, 1, 1, 4)
		if err != nil {
			t.Fatal(err)
		}
		wantPixel(t, s, 0, 0, RGBA(10, 20, 30, 40))
	})

	t.Run("RGBA8888 honours pitch", func(t *testing.T) {
		src := []byte{
			1, 2, 3, 4, 99, 99, 99, 99,
			5, 6, 7, 8, 99, 99, 99, 99,
		}
		s, err := NewSpriteFromPixels(src, LayoutRGBA8888, 1, 2, 8)
		if err != nil {
			t.Fatal(err)
		}
		wantPixel(t, s, 0, 0, RGBA(1, 2, 3, 4))
		wantPixel(t, s, 0, 1, RGBA(5, 6, 7, 8))
	})

	t.Run("RGB24 row padding", func(t *testing.T) {
		src := []byte{
			1, 2, 3, 4, 5, 6, 0, 0,
			7, 8, 9, 10, 11, 12,
		}
		s, err := NewSpriteFromPixels(src, LayoutRGB24, 2, 2, 8)
		if err != nil {
			t.Fatal(err)
		}
		wantPixel(t, s, 1, 0, RGBA(4, 5, 6, 0))
		wantPixel(t, s, 0, 1, RGBA(7, 8, 9, 0))
		wantPixel(t, s, 1, 1, RGBA(10, 11, 12, 0))
	})

	t.Run("unsupported layout", func(t *testing.T) {
		_, err := NewSpriteFromPixels(make([]byte, 8), LayoutRGB565, 2, 2, 4)
		var pgeErr *Error
		if !errors.As(err, &pgeErr) {
			t.Fatalf("err = %v, want *Error", err)
		}
		if pgeErr.Msg != "RGB565 is unsupported" {
			t.Errorf("message = %q", pgeErr.Msg)
		}
	})

	t.Run("short buffer", func(t *testing.T) {
		if _, err := NewSpriteFromPixels(make([]byte, 7), LayoutRGBA8888, 2, 1, 8); err == nil {
			t.Error("expected error for short buffer")
		}
	})
}

func TestSpriteSample(t *testing.T) {
	s := mustSprite(t, 4, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			_ = s.SetPixel(x, y, RGB(uint8(x), uint8(y), 0))
		}
	}

	tests := []struct {
		name string
		u, v float32
		want Pixel
	}{
		{"origin", 0, 0, RGB(0, 0, 0)},
		{"middle", 0.5, 0.5, RGB(2, 1, 0)},
		{"just below one", 0.99, 0.99, RGB(3, 1, 0)},
		{"one clamps", 1, 1, RGB(3, 1, 0)},
		{"past one clamps", 3, 7, RGB(3, 1, 0)},
		{"negative clamps", -0.5, -2, RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Sample(tt.u, tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Sample(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestDecodeSpritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 128})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 255, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	s, err := DecodeSprite(&buf)
	if err != nil {
		t.Fatalf("DecodeSprite: %v", err)
	}
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", s.Width(), s.Height())
	}
	wantPixel(t, s, 0, 0, RGBA(255, 0, 0, 255))
	wantPixel(t, s, 1, 0, RGBA(0, 255, 0, 128))
	wantPixel(t, s, 0, 1, RGBA(0, 0, 0, 0))
	wantPixel(t, s, 1, 1, RGBA(0, 0, 255, 255))
}

func TestDecodeSpriteInvalid(t *testing.T) {
	if _, err := DecodeSprite(strings.NewReader("not an image")); err == nil {
		t.Error("expected decode error")
	}
	if _, err := LoadSprite("testdata/does-not-exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewSpriteFromImageConverts(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 10})
	img.SetGray(1, 0, color.Gray{Y: 200})

	s, err := NewSpriteFromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	wantPixel(t, s, 0, 0, RGB(10, 10, 10))
	wantPixel(t, s, 1, 0, RGB(200, 200, 200))
}

func TestSpriteImageInterface(t *testing.T) {
	s := mustSprite(t, 3, 2)
	_ = s.SetPixel(2, 1, Magenta)

	var img image.Image = s
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds = %v", img.Bounds())
	}
	if img.At(2, 1) != Magenta {
		t.Errorf("At(2, 1) = %v, want Magenta", img.At(2, 1))
	}
	if img.At(5, 5) != Blank {
		t.Errorf("At out of range = %v, want Blank", img.At(5, 5))
	}
}
