// Package history implements the linear undo history of full-buffer snapshots.
package history

import (
	"errors"
	"fmt"

	"github.com/ironsheep/miniphoto/internal/imaging"
)

// ErrNothingToUndo is returned when there is no earlier state to restore.
var ErrNothingToUndo = errors.New("history: nothing to undo")

// Stack is an ordered sequence of buffer snapshots, oldest first.
//
// The oldest entry is the floor: the image as it was right after it was
// opened. Editing operations push the pre-edit state before mutating the
// current image, so the current image itself is never on the stack. Every
// entry is a private deep copy.
//
// A Stack is not safe for concurrent use.
type Stack struct {
	entries []*imaging.Buffer
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push appends a deep copy of b.
//
// If b cannot be copied (nil or zero-sized) nothing is pushed and the copy
// error is returned; the stack never holds an invalid entry.
func (s *Stack) Push(b *imaging.Buffer) error {
	snap, err := imaging.Copy(b)
	if err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}
	s.entries = append(s.entries, snap)
	return nil
}

// Undo returns the state to restore in place of current.
//
//   - Depth 0: ErrNothingToUndo.
//   - Depth 1: a copy of the floor. When current already equals the floor
//     there is nothing left to rewind and ErrNothingToUndo is returned.
//   - Depth > 1: the most recent snapshot is popped and a copy of it is
//     returned. The floor is never popped.
//
// The returned buffer is independent of every stack entry.
func (s *Stack) Undo(current *imaging.Buffer) (*imaging.Buffer, error) {
	switch n := len(s.entries); {
	case n == 0:
		return nil, ErrNothingToUndo
	case n == 1:
		floor := s.entries[0]
		if imaging.Equal(floor, current) {
			return nil, ErrNothingToUndo
		}
		return imaging.Copy(floor)
	default:
		top := s.entries[n-1]
		restored, err := imaging.Copy(top)
		if err != nil {
			return nil, err
		}
		s.entries[n-1] = nil
		s.entries = s.entries[:n-1]
		return restored, nil
	}
}

// Drop removes the most recent entry without restoring it. It rolls back a
// push made for an edit that then failed.
func (s *Stack) Drop() {
	if n := len(s.entries); n > 0 {
		s.entries[n-1] = nil
		s.entries = s.entries[:n-1]
	}
}

// Clear removes every entry.
func (s *Stack) Clear() {
	s.entries = nil
}

// Depth returns the number of snapshots on the stack.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Floor returns a copy of the oldest snapshot, or nil when the stack is empty.
func (s *Stack) Floor() *imaging.Buffer {
	if len(s.entries) == 0 {
		return nil
	}
	b, _ := imaging.Copy(s.entries[0])
	return b
}
