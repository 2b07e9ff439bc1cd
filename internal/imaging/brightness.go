package imaging

import (
	"github.com/anthonynsimon/bild/math/f64"
	"github.com/anthonynsimon/bild/parallel"
)

// Brightness rescales the color channels of b in place.
//
// The factor is clamped to [-1, 1]. Each of R, G and B becomes
//
//	v' = clamp(v*(1+factor) + offset, 0, 255)
//
// where offset is factor*25 when brightening and factor*50 when darkening, so
// a unit of darkening moves further than a unit of brightening. Alpha is never
// scaled or shifted. A factor of 0 leaves every pixel unchanged.
func Brightness(b *Buffer, factor float64) {
	if !b.Valid() {
		return
	}
	factor = f64.Clamp(factor, -1, 1)
	if factor == 0 {
		return
	}

	scale := 1 + factor
	offset := factor * 50
	if factor > 0 {
		offset = factor * 25
	}

	var lut [256]uint8
	for v := range lut {
		lut[v] = uint8(f64.Clamp(float64(v)*scale+offset, 0, 255))
	}

	img := b.img
	w := b.Width() * 4
	parallel.Line(b.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			row := img.Pix[y*img.Stride : y*img.Stride+w]
			for i := 0; i < len(row); i += 4 {
				row[i+0] = lut[row[i+0]]
				row[i+1] = lut[row[i+1]]
				row[i+2] = lut[row[i+2]]
			}
		}
	})
}
