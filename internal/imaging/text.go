package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultFontSize is the text overlay size in points at 72 DPI.
const DefaultFontSize = 24

var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

// boldFace returns a bold font face of the given size.
func boldFace(size float64) (font.Face, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	if boldErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", boldErr)
	}
	return truetype.NewFace(boldFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// DrawText composites antialiased bold text onto b with its baseline starting
// at the given point.
//
// ErrEmptyText is returned, and b left untouched, when text is empty or only
// whitespace. Glyphs falling outside the buffer are clipped.
func DrawText(b *Buffer, at image.Point, text string, c color.Color, size float64) error {
	if !b.Valid() {
		return fmt.Errorf("text: %w", ErrInvalidBuffer)
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if size <= 0 {
		size = DefaultFontSize
	}

	face, err := boldFace(size)
	if err != nil {
		return err
	}
	defer face.Close()

	dc := gg.NewContext(b.Width(), b.Height())
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(text, float64(at.X), float64(at.Y))

	draw.Draw(b.img, b.Bounds(), dc.Image(), image.Point{}, draw.Over)
	return nil
}
