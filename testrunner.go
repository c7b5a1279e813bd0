package pge

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Button string `json:"button,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type inputScriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// InputScript replays mouse input across frames, for automated runs of a
// Game. Attach one to an Engine with SetInputScript.
//
// Supported actions: "press", "release", "click" (x, y, button), "move"
// (x, y, button held, optional) and "wait" (frames).
type InputScript struct {
	steps     []scriptStep
	buttons   []MouseButton
	cursor    int
	waitCount int
	done      bool
}

var buttonNames = map[string]MouseButton{
	"":       MouseLeft,
	"left":   MouseLeft,
	"middle": MouseMiddle,
	"right":  MouseRight,
	"x1":     MouseX1,
	"x2":     MouseX2,
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var file inputScriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	s := &InputScript{steps: file.Steps, buttons: make([]MouseButton, len(file.Steps))}
	for i, st := range file.Steps {
		switch st.Action {
		case "press", "release", "click", "move", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		b, ok := buttonNames[st.Button]
		if !ok {
			return nil, fmt.Errorf("parse input script: step %d: unknown button %q", i, st.Button)
		}
		s.buttons[i] = b
	}
	return s, nil
}

// SetInputScript attaches a script. It advances once per Frame, before input
// is processed. Pass nil to detach.
func (e *Engine) SetInputScript(s *InputScript) {
	e.script = s
}

// Done reports whether every step has run and all injected input drained.
func (s *InputScript) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *InputScript) step(e *Engine) {
	if s.done {
		return
	}
	// Injected events from the previous step drain first.
	if len(e.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	b := s.buttons[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		e.InjectPress(st.X, st.Y, b)
	case "release":
		e.InjectRelease(st.X, st.Y, b)
	case "click":
		e.InjectClick(st.X, st.Y, b)
	case "move":
		var held ButtonMask
		if st.Button != "" {
			held = MaskOf(b)
		}
		e.InjectMove(st.X, st.Y, held)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
