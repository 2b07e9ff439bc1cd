// Package editor implements the editing session: the mode state machine that
// turns pointer, slider and mode events into committed edits, together with
// the current image, the brightness base, the grayscale backup and the undo
// history.
//
// # Modes
//
// A session is always in exactly one state:
//
//   - ModeIdle: pointer events are ignored
//   - ModeCropping: press, drag and release select a rectangle; release crops
//   - ModeDrawing: each press-drag-release is one freehand stroke; the mode
//     persists across strokes until another mode is selected
//   - ModeTextSelecting: press enters ModeDefiningTextBounds, drag sizes the
//     text bounds, release prompts for text and inserts it
//
// Each state carries its own scratch data (anchor, selection, last stroke
// point). Switching state discards the previous state's scratch.
//
// # Undo Model
//
// Every committed edit pushes the pre-edit image onto the history before the
// current image changes. A drawing stroke is one entry no matter how many
// segments it contains. Live brightness previews are never committed.
//
// # Failure Policy
//
// Every operation either completes or leaves the session exactly as it was,
// including rolling back a speculative history push. Failures are returned as
// errors and summarized in Status.
//
// # Thread Safety
//
// A Session is not safe for concurrent use. All events must be delivered from
// one goroutine, one at a time.
package editor
