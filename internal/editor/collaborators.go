package editor

import (
	"image"

	"github.com/ironsheep/miniphoto/internal/imaging"
)

// Display shows buffers to the user and reports the viewport size used to map
// pointer positions into image space.
type Display interface {
	// Show presents b. The display must treat b as read-only; the session may
	// keep mutating it and will call Show again afterwards.
	Show(b *imaging.Buffer)

	// ViewportSize returns the size of the area the image is centered in.
	ViewportSize() image.Point
}

// FileService decodes image files into buffers and encodes buffers to files.
type FileService interface {
	Decode(path string) (*imaging.Buffer, error)
	Encode(b *imaging.Buffer, path string, format imaging.Format) error
}

// Resizer fits a freshly opened image to the viewport. Implementations only
// scale down and preserve the aspect ratio.
type Resizer interface {
	Fit(b *imaging.Buffer, viewport image.Point) (*imaging.Buffer, error)
}

// Prompter synchronously asks the user for a text string and a color.
// ok is false when the user cancelled.
type Prompter interface {
	PromptTextAndColor() (text string, c imaging.PaletteColor, ok bool)
}
