package pge

import "fmt"

// Error is the single error kind reported by the engine. It covers
// out-of-bounds pixel access, unsupported source pixel layouts, unknown
// glyphs and invalid screen or sprite configuration.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "pge: " + e.Msg
}

func errorf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}
