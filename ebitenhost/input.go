package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pge"
)

// inputSource is the slice of Ebitengine input the host reads each frame.
type inputSource interface {
	cursorPosition() (int, int)
	isPressed(b pge.MouseButton) bool
	justPressed(b pge.MouseButton) bool
	justReleased(b pge.MouseButton) bool
	quitRequested() bool
}

type ebitenInput struct{}

// Cursor positions are reported in Layout coordinates, so the window
// magnification is already divided out.
func (ebitenInput) cursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) isPressed(b pge.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(ebitenButton(b))
}

func (ebitenInput) justPressed(b pge.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(ebitenButton(b))
}

func (ebitenInput) justReleased(b pge.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(ebitenButton(b))
}

func (ebitenInput) quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func ebitenButton(b pge.MouseButton) ebiten.MouseButton {
	switch b {
	case pge.MouseMiddle:
		return ebiten.MouseButtonMiddle
	case pge.MouseRight:
		return ebiten.MouseButtonRight
	case pge.MouseX1:
		return ebiten.MouseButton3
	case pge.MouseX2:
		return ebiten.MouseButton4
	default:
		return ebiten.MouseButtonLeft
	}
}
