package editor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/ironsheep/miniphoto/internal/history"
	"github.com/ironsheep/miniphoto/internal/imaging"
)

var (
	// ErrNoImage is returned by operations that need a loaded image.
	ErrNoImage = errors.New("editor: no image loaded")

	// ErrNoBackup is returned when grayscale cannot be toggled back to color
	// because no color version was ever recorded.
	ErrNoBackup = errors.New("editor: no color backup to restore")

	// ErrInvalidMode is returned for unknown or non-selectable modes.
	ErrInvalidMode = errors.New("editor: invalid mode")
)

// Default drawing settings.
const (
	DefaultStrokeWidth = 3
	DefaultFontSize    = imaging.DefaultFontSize
)

// DefaultStrokeColor is the freehand drawing color.
var DefaultStrokeColor = color.NRGBA{R: 255, A: 255}

// Option configures a Session.
type Option func(*Session)

// WithStrokeColor sets the freehand drawing color.
func WithStrokeColor(c color.Color) Option { return func(s *Session) { s.strokeColor = c } }

// WithStrokeWidth sets the freehand stroke width in pixels.
func WithStrokeWidth(w float64) Option {
	return func(s *Session) {
		if w > 0 {
			s.strokeWidth = w
		}
	}
}

// WithFontSize sets the text overlay size in points.
func WithFontSize(size float64) Option {
	return func(s *Session) {
		if size > 0 {
			s.fontSize = size
		}
	}
}

// WithResizer overrides how opened images are fitted to the viewport.
func WithResizer(r Resizer) Option { return func(s *Session) { s.resizer = r } }

// Session is a single-document editing session.
type Session struct {
	display Display
	files   FileService
	resizer Resizer
	prompt  Prompter

	strokeColor color.Color
	strokeWidth float64
	fontSize    float64

	current    *imaging.Buffer
	base       *imaging.Buffer // multiplicative base for brightness
	grayBackup *imaging.Buffer // last color version, for toggling grayscale off
	shown      *imaging.Buffer // what the display shows: current or a preview
	history    *history.Stack

	state      state
	brightness int // slider value, including a live preview
	committed  int // slider value of the last committed adjustment
	status     string
}

// New creates a session with no image loaded. If files also implements
// Resizer it is used to fit opened images unless WithResizer is given.
func New(display Display, files FileService, prompt Prompter, opts ...Option) *Session {
	s := &Session{
		display:     display,
		files:       files,
		prompt:      prompt,
		strokeColor: DefaultStrokeColor,
		strokeWidth: DefaultStrokeWidth,
		fontSize:    DefaultFontSize,
		history:     history.New(),
		state:       &idleState{},
		status:      "Ready",
	}
	if r, ok := files.(Resizer); ok {
		s.resizer = r
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the image at path, fits it to the viewport and makes it the new
// baseline: history is replaced and the fitted image becomes its floor. On
// failure the previous image and history are left untouched.
func (s *Session) Open(path string) error {
	if s.files == nil {
		return s.fail(fmt.Errorf("open: %w", imaging.ErrUnreadableFile), "Failed to open image: no file service")
	}
	decoded, err := s.files.Decode(path)
	if err != nil {
		return s.fail(err, "Failed to open image: not a readable image file")
	}

	fitted := decoded
	if s.resizer != nil {
		fitted, err = s.resizer.Fit(decoded, s.viewport())
		if err != nil {
			return s.fail(err, "Failed to open image: invalid image size")
		}
	}

	base, err := imaging.Copy(fitted)
	if err != nil {
		return s.fail(err, "Failed to open image: invalid image size")
	}
	backup, err := imaging.Copy(fitted)
	if err != nil {
		return s.fail(err, "Failed to open image: invalid image size")
	}

	h := history.New()
	if err := h.Push(fitted); err != nil {
		return s.fail(err, "Failed to open image: invalid image size")
	}
	s.history = h
	s.current = fitted
	s.base = base
	s.grayBackup = backup
	s.resetBrightness()
	s.state = &idleState{}
	s.show(s.current)

	Logger().Debug("image opened", "path", path,
		"width", fitted.Width(), "height", fitted.Height(),
		"decoded_width", decoded.Width(), "decoded_height", decoded.Height())
	s.setStatus(fmt.Sprintf("Opened %s (%dx%d)", filepath.Base(path), fitted.Width(), fitted.Height()))
	return nil
}

// Save encodes the current image to path in the given format.
func (s *Session) Save(path string, format imaging.Format) error {
	if s.current == nil {
		return s.fail(ErrNoImage, "No image to save")
	}
	if s.files == nil {
		return s.fail(fmt.Errorf("save: %w", imaging.ErrWriteError), "Failed to save image: no file service")
	}
	if err := s.files.Encode(s.current, path, format); err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return s.fail(err, fmt.Sprintf("Failed to save image: unsupported format %q", format))
		}
		return s.fail(err, "Failed to save image: write error")
	}
	s.setStatus(fmt.Sprintf("Saved %s", filepath.Base(path)))
	return nil
}

// SelectMode switches the interaction mode, discarding the scratch state of
// the previous mode. Editing modes require a loaded image; ModeIdle is always
// allowed and is how drawing mode is turned off.
func (s *Session) SelectMode(m Mode) error {
	next, err := newState(m)
	if err != nil {
		return s.fail(err, "Unknown mode")
	}
	if m != ModeIdle && s.current == nil {
		return s.fail(ErrNoImage, fmt.Sprintf("No image to %s", m))
	}

	s.finishStroke()
	s.state = next
	Logger().Debug("mode selected", "mode", m)

	switch m {
	case ModeCropping:
		s.setStatus("Crop mode: drag to select an area, release to crop")
	case ModeDrawing:
		s.setStatus("Draw mode enabled: drag over the image to draw")
	case ModeTextSelecting:
		s.setStatus("Text mode: click or drag to place the text")
	default:
		s.setStatus("Ready")
	}
	return nil
}

// PointerDown handles a press at a view-space position.
func (s *Session) PointerDown(view image.Point) error {
	if s.current == nil {
		return ErrNoImage
	}
	p := s.toImage(view)

	switch st := s.state.(type) {
	case *cropState:
		st.pressed = true
		st.anchor = p
		st.sel = image.Rectangle{Min: p, Max: p}
	case *drawState:
		// A press without a release continues the stroke already recorded.
		if !st.stroking {
			if err := s.history.Push(s.current); err != nil {
				return s.fail(err, "Drawing failed: cannot record undo state")
			}
		}
		st.stroking = true
		st.last = p
	case *textState:
		st.defining = true
		st.anchor = p
		st.sel = image.Rectangle{Min: p, Max: p}
	}
	return nil
}

// PointerDrag handles pointer motion with the button held.
func (s *Session) PointerDrag(view image.Point) error {
	if s.current == nil {
		return ErrNoImage
	}
	p := s.toImage(view)

	switch st := s.state.(type) {
	case *cropState:
		if st.pressed {
			st.sel = imaging.SelectionRect(st.anchor, p)
		}
	case *drawState:
		if st.stroking {
			imaging.DrawLine(s.current, st.last, p, s.strokeColor, s.strokeWidth)
			st.last = p
			s.show(s.current)
		}
	case *textState:
		if st.defining {
			st.sel = imaging.SelectionRect(st.anchor, p)
		}
	}
	return nil
}

// PointerUp handles a release at a view-space position.
func (s *Session) PointerUp(view image.Point) error {
	if s.current == nil {
		return ErrNoImage
	}
	p := s.toImage(view)

	switch st := s.state.(type) {
	case *cropState:
		if !st.pressed {
			return nil
		}
		rect := imaging.SelectionRect(st.anchor, p)
		s.state = &idleState{}
		return s.applyCrop(rect)
	case *drawState:
		if st.stroking {
			s.finishStroke()
			s.setStatus("Drawing finished")
		}
	case *textState:
		if !st.defining {
			return nil
		}
		rect := imaging.SelectionRect(st.anchor, p)
		at := st.anchor
		if rect.Dx() > 0 && rect.Dy() > 0 {
			at = rect.Min
		}
		s.state = &idleState{}
		return s.insertText(at)
	}
	return nil
}

// BrightnessChanged handles the brightness slider. value is clamped to
// [-100, 100] and applied as a factor of value/100 to the brightness base.
//
// While live the adjusted image is only previewed. When the interaction ends
// the pre-change image is pushed, the adjusted image becomes current, and the
// base moves to the result.
func (s *Session) BrightnessChanged(value int, live bool) error {
	if s.current == nil || s.base == nil {
		return ErrNoImage
	}
	value = max(-100, min(100, value))
	factor := float64(value) / 100

	next, err := imaging.Copy(s.base)
	if err != nil {
		return s.fail(err, "Brightness failed: invalid image")
	}
	imaging.Brightness(next, factor)
	s.brightness = value

	if live {
		s.show(next)
		return nil
	}

	if err := s.history.Push(s.current); err != nil {
		return s.fail(err, "Brightness failed: cannot record undo state")
	}
	base, err := imaging.Copy(next)
	if err != nil {
		s.history.Drop()
		return s.fail(err, "Brightness failed: invalid image")
	}
	s.current = next
	s.base = base
	s.committed = value
	s.show(s.current)

	Logger().Debug("brightness committed", "value", value, "undo_depth", s.history.Depth())
	s.setStatus(fmt.Sprintf("Brightness adjusted: %d", value))
	return nil
}

// ToggleGrayscale converts the current image to grayscale, or restores the
// last color version if the image already looks grayscale.
func (s *Session) ToggleGrayscale() error {
	if s.current == nil {
		return s.fail(ErrNoImage, "No image loaded")
	}
	if err := s.history.Push(s.current); err != nil {
		return s.fail(err, "Grayscale failed: cannot record undo state")
	}

	var next, backup *imaging.Buffer
	var msg string
	if imaging.IsEffectivelyGrayscale(s.current) {
		if s.grayBackup == nil {
			s.history.Drop()
			Logger().Warn("grayscale toggle rolled back", "reason", "no color backup")
			return s.fail(ErrNoBackup, "Cannot toggle: no color version available")
		}
		restored, err := imaging.Copy(s.grayBackup)
		if err != nil {
			s.history.Drop()
			return s.fail(err, "Cannot toggle: color version is invalid")
		}
		next, backup, msg = restored, s.grayBackup, "Restored color image"
	} else {
		saved, err := imaging.Copy(s.current)
		if err != nil {
			s.history.Drop()
			return s.fail(err, "Grayscale failed: invalid image")
		}
		gray, err := imaging.Grayscale(s.current)
		if err != nil {
			s.history.Drop()
			return s.fail(err, "Grayscale failed: invalid image")
		}
		next, backup, msg = gray, saved, "Grayscale filter applied"
	}

	base, err := imaging.Copy(next)
	if err != nil {
		s.history.Drop()
		return s.fail(err, "Grayscale failed: invalid image")
	}
	s.current = next
	s.grayBackup = backup
	s.base = base
	s.resetBrightness()
	s.show(s.current)
	s.setStatus(msg)
	return nil
}

// Undo restores the previous state from the history. The restored image also
// becomes the brightness base and the color backup. Any pending interaction is
// discarded and the session returns to idle. When there is nothing to undo, a
// live brightness preview is discarded as well.
func (s *Session) Undo() error {
	restored, err := s.history.Undo(s.current)
	if err != nil {
		s.discardPreview()
		return s.fail(err, "Nothing to undo")
	}
	base, err := imaging.Copy(restored)
	if err != nil {
		return s.fail(err, "Undo failed: invalid snapshot")
	}
	backup, err := imaging.Copy(restored)
	if err != nil {
		return s.fail(err, "Undo failed: invalid snapshot")
	}
	s.current = restored
	s.base = base
	s.grayBackup = backup
	s.resetBrightness()
	s.state = &idleState{}
	s.show(s.current)

	Logger().Debug("undo", "undo_depth", s.history.Depth())
	s.setStatus("Undo performed")
	return nil
}

// Current returns the editable image, or nil when nothing is loaded. The
// buffer is owned by the session.
func (s *Session) Current() *imaging.Buffer { return s.current }

// Displayed returns the buffer last handed to the display: the current image
// or a live brightness preview.
func (s *Session) Displayed() *imaging.Buffer { return s.shown }

// BrightnessBase returns the base the brightness slider applies to.
func (s *Session) BrightnessBase() *imaging.Buffer { return s.base }

// GrayBackup returns the color version used to toggle grayscale off.
func (s *Session) GrayBackup() *imaging.Buffer { return s.grayBackup }

// UndoDepth returns the number of snapshots in the history.
func (s *Session) UndoDepth() int { return s.history.Depth() }

// Brightness returns the brightness control value the display should show.
func (s *Session) Brightness() int { return s.brightness }

// Mode returns the active interaction mode.
func (s *Session) Mode() Mode { return s.state.mode() }

// Status returns the message describing the outcome of the last operation.
func (s *Session) Status() string { return s.status }

// Selection returns the crop or text rectangle being dragged, if any.
func (s *Session) Selection() (image.Rectangle, bool) {
	switch st := s.state.(type) {
	case *cropState:
		return st.sel, st.pressed
	case *textState:
		return st.sel, st.defining
	}
	return image.Rectangle{}, false
}

func (s *Session) applyCrop(rect image.Rectangle) error {
	region := imaging.ClampCrop(rect, s.current.Size())
	if region.Empty() {
		return s.fail(imaging.ErrDegenerateSelection, "Crop cancelled: invalid selection")
	}

	if err := s.history.Push(s.current); err != nil {
		return s.fail(err, "Crop failed: cannot record undo state")
	}
	cropped, err := imaging.Crop(s.current, region)
	if err != nil {
		s.history.Drop()
		Logger().Warn("crop rolled back", "error", err)
		return s.fail(err, "Crop failed")
	}
	base, err := imaging.Copy(cropped)
	if err != nil {
		s.history.Drop()
		return s.fail(err, "Crop failed")
	}
	backup, err := imaging.Copy(cropped)
	if err != nil {
		s.history.Drop()
		return s.fail(err, "Crop failed")
	}

	s.current = cropped
	s.base = base
	s.grayBackup = backup
	s.resetBrightness()
	s.show(s.current)

	Logger().Debug("crop committed", "region", region, "undo_depth", s.history.Depth())
	s.setStatus(fmt.Sprintf("Cropped to %dx%d", cropped.Width(), cropped.Height()))
	return nil
}

func (s *Session) insertText(at image.Point) error {
	if s.prompt == nil {
		s.setStatus("Text insertion cancelled")
		return nil
	}
	text, pc, ok := s.prompt.PromptTextAndColor()
	if !ok {
		s.setStatus("Text insertion cancelled")
		return nil
	}

	next, err := imaging.Copy(s.current)
	if err != nil {
		return s.fail(err, "Text insertion failed: invalid image")
	}
	if err := imaging.DrawText(next, at, text, pc.NRGBA(), s.fontSize); err != nil {
		if errors.Is(err, imaging.ErrEmptyText) {
			s.setStatus("Text insertion cancelled: no text entered")
			return nil
		}
		return s.fail(err, "Text insertion failed")
	}

	base, err := imaging.Copy(next)
	if err != nil {
		return s.fail(err, "Text insertion failed: invalid image")
	}
	if err := s.history.Push(s.current); err != nil {
		return s.fail(err, "Text insertion failed: cannot record undo state")
	}
	s.current = next
	s.base = base
	s.resetBrightness()
	s.show(s.current)

	Logger().Debug("text inserted", "at", at, "color", pc, "undo_depth", s.history.Depth())
	s.setStatus("Text inserted")
	return nil
}

// finishStroke ends a stroke in progress, moving the brightness base to the
// drawn result.
func (s *Session) finishStroke() {
	st, ok := s.state.(*drawState)
	if !ok || !st.stroking {
		return
	}
	st.stroking = false
	if base, err := imaging.Copy(s.current); err == nil {
		s.base = base
	}
	Logger().Debug("stroke finished", "undo_depth", s.history.Depth())
}

func (s *Session) resetBrightness() {
	s.brightness = 0
	s.committed = 0
}

// discardPreview puts the current image back on the display if a live
// brightness preview replaced it.
func (s *Session) discardPreview() {
	if s.current == nil || s.shown == s.current {
		return
	}
	s.brightness = s.committed
	s.show(s.current)
}

func (s *Session) toImage(view image.Point) image.Point {
	return imaging.ToImageSpace(view, s.shown, s.viewport())
}

func (s *Session) viewport() image.Point {
	if s.display == nil {
		return image.Point{}
	}
	return s.display.ViewportSize()
}

func (s *Session) show(b *imaging.Buffer) {
	s.shown = b
	if s.display != nil {
		s.display.Show(b)
	}
}

func (s *Session) setStatus(msg string) {
	s.status = msg
}

// fail records a status message for a failed operation and returns err.
func (s *Session) fail(err error, msg string) error {
	s.status = msg
	Logger().Debug("operation failed", "status", msg, "error", err)
	return err
}
