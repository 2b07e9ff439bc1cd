package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// Selection overlay colors used by the display surface.
var (
	// CropFill is the translucent fill drawn over a crop selection.
	CropFill = color.NRGBA{R: 0, G: 0, B: 255, A: 100}

	// TextOutline is the outline drawn around text bounds being defined.
	TextOutline = color.NRGBA{R: 0, G: 160, B: 0, A: 255}
)

// RenderSelection returns a display copy of b with a selection rectangle drawn
// on top. When fill is true the rectangle is filled with c, otherwise only a
// one-pixel outline is stroked. The buffer itself is not modified.
//
// Empty selections return a plain copy.
func RenderSelection(b *Buffer, sel image.Rectangle, c color.Color, fill bool) *image.NRGBA {
	if !b.Valid() {
		return nil
	}
	bounds := b.Bounds()
	result := image.NewNRGBA(bounds)
	draw.Draw(result, bounds, b.img, bounds.Min, draw.Src)

	sel = sel.Intersect(bounds)
	if sel.Empty() {
		return result
	}

	if fill {
		draw.Draw(result, sel, image.NewUniform(c), image.Point{}, draw.Over)
		return result
	}

	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.SetColor(c)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(sel.Min.X)+0.5, float64(sel.Min.Y)+0.5,
		float64(sel.Dx()-1), float64(sel.Dy()-1))
	dc.Stroke()
	draw.Draw(result, bounds, dc.Image(), image.Point{}, draw.Over)
	return result
}
