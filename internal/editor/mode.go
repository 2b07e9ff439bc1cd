package editor

import (
	"fmt"
	"image"
	"strings"
)

// Mode identifies the interaction state of a session.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCropping
	ModeDrawing
	ModeTextSelecting
	ModeDefiningTextBounds
)

var modeNames = [...]string{
	ModeIdle:               "idle",
	ModeCropping:           "crop",
	ModeDrawing:            "draw",
	ModeTextSelecting:      "text",
	ModeDefiningTextBounds: "text-bounds",
}

func (m Mode) String() string {
	if m < ModeIdle || m > ModeDefiningTextBounds {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a mode name ("idle", "crop", "draw", "text") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "idle", "none", "":
		return ModeIdle, nil
	case "crop", "cropping":
		return ModeCropping, nil
	case "draw", "drawing":
		return ModeDrawing, nil
	case "text", "text-selecting":
		return ModeTextSelecting, nil
	}
	return ModeIdle, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// state is the tagged interaction state. Each implementation owns the scratch
// data of its mode.
type state interface {
	mode() Mode
}

type idleState struct{}

func (*idleState) mode() Mode { return ModeIdle }

// cropState tracks a crop selection between press and release.
type cropState struct {
	pressed bool
	anchor  image.Point
	sel     image.Rectangle
}

func (*cropState) mode() Mode { return ModeCropping }

// drawState tracks the last sampled point of the stroke in progress.
type drawState struct {
	stroking bool
	last     image.Point
}

func (*drawState) mode() Mode { return ModeDrawing }

// textState covers both text phases: waiting for a press, and defining the
// bounds once the press happened.
type textState struct {
	defining bool
	anchor   image.Point
	sel      image.Rectangle
}

func (s *textState) mode() Mode {
	if s.defining {
		return ModeDefiningTextBounds
	}
	return ModeTextSelecting
}

// newState returns a fresh state with empty scratch for a selectable mode.
func newState(m Mode) (state, error) {
	switch m {
	case ModeIdle:
		return &idleState{}, nil
	case ModeCropping:
		return &cropState{}, nil
	case ModeDrawing:
		return &drawState{}, nil
	case ModeTextSelecting:
		return &textState{}, nil
	}
	return nil, fmt.Errorf("%w: %s cannot be selected", ErrInvalidMode, m)
}
