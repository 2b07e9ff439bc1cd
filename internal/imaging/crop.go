package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ClampCrop fits a requested crop rectangle to a buffer of the given size.
//
// The top-left corner is raised to zero on each axis and the width and height
// are shrunk so the rectangle ends inside the buffer. The result may be empty.
func ClampCrop(r image.Rectangle, size image.Point) image.Rectangle {
	x := max(0, r.Min.X)
	y := max(0, r.Min.Y)
	w := r.Dx()
	h := r.Dy()
	if x+w > size.X {
		w = size.X - x
	}
	if y+h > size.Y {
		h = size.Y - y
	}
	if w <= 0 || h <= 0 {
		return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x, y)}
	}
	return image.Rect(x, y, x+w, y+h)
}

// Crop extracts a rectangular region of b into a new buffer.
//
// The rectangle is clamped with ClampCrop. Cropping a W x H buffer with a
// rectangle that runs past the right or bottom edge yields the available part
// only. ErrDegenerateSelection is returned when nothing is left. The result
// shares no storage with b.
func Crop(b *Buffer, r image.Rectangle) (*Buffer, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("crop: %w", ErrInvalidBuffer)
	}
	region := ClampCrop(r, b.Size())
	if region.Empty() {
		return nil, fmt.Errorf("crop region %v on %dx%d: %w",
			r, b.Width(), b.Height(), ErrDegenerateSelection)
	}
	return &Buffer{img: imaging.Crop(b.img, region)}, nil
}
