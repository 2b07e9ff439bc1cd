package imaging

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// grayscaleSample is the edge length of the top-left block inspected by
// IsEffectivelyGrayscale.
const grayscaleSample = 10

// Grayscale returns a luminance-encoded copy of b. Every pixel of the result
// has R = G = B; alpha is carried over. The source buffer is not modified.
func Grayscale(b *Buffer) (*Buffer, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("grayscale: %w", ErrInvalidBuffer)
	}
	return &Buffer{img: imaging.Grayscale(b.img)}, nil
}

// IsEffectivelyGrayscale reports whether the top-left 10x10 block of b (or the
// whole buffer when smaller) contains only pixels with R = G = B.
//
// Only that corner is sampled. A buffer whose color lies entirely outside it
// is reported as grayscale.
func IsEffectivelyGrayscale(b *Buffer) bool {
	if !b.Valid() {
		return false
	}
	w := min(grayscaleSample, b.Width())
	h := min(grayscaleSample, b.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := b.img.NRGBAAt(x, y)
			if c.R != c.G || c.G != c.B {
				return false
			}
		}
	}
	return true
}
