package pge

import "fmt"

// MouseButton identifies one of the five tracked mouse buttons.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2

	mouseButtonCount = 5
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	case MouseX1:
		return "x1"
	case MouseX2:
		return "x2"
	default:
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
}

// ButtonMask is a set of held mouse buttons, one bit per MouseButton.
type ButtonMask uint8

// MaskOf returns the mask with only b set.
func MaskOf(b MouseButton) ButtonMask { return 1 << b }

// Has reports whether b is held in m.
func (m ButtonMask) Has(b MouseButton) bool { return m&MaskOf(b) != 0 }

// ButtonState holds the edge flags of one button for the current frame.
type ButtonState struct {
	Pressed  bool
	Released bool
}

// MouseEventType identifies the kind of a MouseEvent.
type MouseEventType uint8

const (
	MouseMotion     MouseEventType = iota // cursor moved; Buttons holds the held buttons
	MouseButtonDown                       // Button went down
	MouseButtonUp                         // Button went up
)

// MouseEvent is a host input event. Positions are in screen pixels with any
// window magnification already divided out.
type MouseEvent struct {
	Type    MouseEventType
	X, Y    int
	Buttons ButtonMask
	Button  MouseButton
}

// MouseState tracks the cursor position and per-frame button flags. The host
// calls Reset at the start of every frame and then Update for each event.
type MouseState struct {
	x, y   int
	states [mouseButtonCount]ButtonState
}

// X returns the cursor column.
func (m *MouseState) X() int { return m.x }

// Y returns the cursor row.
func (m *MouseState) Y() int { return m.y }

// Button returns the state of b. Unknown buttons report the zero state.
func (m *MouseState) Button(b MouseButton) ButtonState {
	if b >= mouseButtonCount {
		return ButtonState{}
	}
	return m.states[b]
}

// Reset clears every button flag. The cursor position is kept.
func (m *MouseState) Reset() {
	for i := range m.states {
		m.states[i] = ButtonState{}
	}
}

// Update folds one event into the state. A motion event moves the cursor,
// clears all flags and then marks every held button as pressed.
func (m *MouseState) Update(ev MouseEvent) {
	switch ev.Type {
	case MouseMotion:
		m.x = max(ev.X, 0)
		m.y = max(ev.Y, 0)
		m.Reset()
		for b := MouseButton(0); b < mouseButtonCount; b++ {
			if ev.Buttons.Has(b) {
				m.states[b].Pressed = true
			}
		}
	case MouseButtonDown:
		if ev.Button < mouseButtonCount {
			m.states[ev.Button] = ButtonState{Pressed: true}
		}
	case MouseButtonUp:
		if ev.Button < mouseButtonCount {
			m.states[ev.Button] = ButtonState{Released: true}
		}
	}
}
