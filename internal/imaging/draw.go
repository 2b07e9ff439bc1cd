package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
)

// DrawLine composites an antialiased straight segment from one image-space
// point to another directly onto b.
//
// Freehand strokes are built by calling DrawLine once per pointer sample, from
// the previous sample to the current one. The segment is rendered with round
// caps so consecutive segments join without gaps.
func DrawLine(b *Buffer, from, to image.Point, c color.Color, width float64) {
	if !b.Valid() || width <= 0 {
		return
	}

	// Render into an overlay covering only the segment plus the stroke radius.
	pad := int(math.Ceil(width/2)) + 1
	area := image.Rectangle{Min: from, Max: to}.Canon()
	area.Max = area.Max.Add(image.Pt(1, 1))
	area = area.Inset(-pad).Intersect(b.Bounds())
	if area.Empty() {
		return
	}

	dc := gg.NewContext(area.Dx(), area.Dy())
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.SetLineCapRound()
	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	dc.DrawLine(
		float64(from.X)-ox+0.5, float64(from.Y)-oy+0.5,
		float64(to.X)-ox+0.5, float64(to.Y)-oy+0.5,
	)
	dc.Stroke()

	draw.Draw(b.img, area, dc.Image(), image.Point{}, draw.Over)
}
