package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Buffer is an owned 2D raster of 8-bit RGBA pixels.
//
// The zero value is not valid; construct buffers with New, FromImage or Copy.
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	img *image.NRGBA
}

// New creates a fully transparent buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBuffer, width, height)
	}
	return &Buffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// FromImage converts any decoded image into a Buffer.
//
// Paletted, YCbCr, grayscale and 16-bit sources are normalized to 8-bit
// non-premultiplied RGBA with the origin moved to (0,0). The source image is
// not retained.
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidBuffer)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBuffer, b.Dx(), b.Dy())
	}
	return &Buffer{img: imaging.Clone(img)}, nil
}

// Copy returns an independent deep copy of b.
//
// The copy has its own pixel storage: mutating either buffer is never
// observable through the other.
func Copy(b *Buffer) (*Buffer, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("copy: %w", ErrInvalidBuffer)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	w := b.Width() * 4
	for y := 0; y < b.Height(); y++ {
		src := b.img.Pix[y*b.img.Stride : y*b.img.Stride+w]
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], src)
	}
	return &Buffer{img: dst}, nil
}

// Equal reports whether a and b have the same size and identical pixels.
func Equal(a, b *Buffer) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	if a.Size() != b.Size() {
		return false
	}
	w := a.Width() * 4
	for y := 0; y < a.Height(); y++ {
		ra := a.img.Pix[y*a.img.Stride : y*a.img.Stride+w]
		rb := b.img.Pix[y*b.img.Stride : y*b.img.Stride+w]
		if !bytes.Equal(ra, rb) {
			return false
		}
	}
	return true
}

// Valid reports whether b is non-nil and has positive dimensions.
func (b *Buffer) Valid() bool {
	return b != nil && b.img != nil && b.img.Rect.Dx() > 0 && b.img.Rect.Dy() > 0
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Size returns the buffer dimensions as a point (X = width, Y = height).
func (b *Buffer) Size() image.Point { return b.img.Rect.Size() }

// Bounds returns the buffer rectangle, always anchored at (0,0).
func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }

// NRGBAAt returns the pixel at (x, y). Out-of-range coordinates yield a
// transparent black pixel.
func (b *Buffer) NRGBAAt(x, y int) color.NRGBA { return b.img.NRGBAAt(x, y) }

// SetNRGBA sets the pixel at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) SetNRGBA(x, y int, c color.NRGBA) { b.img.SetNRGBA(x, y, c) }

// Image exposes the backing image for read-only use by encoders and displays.
// Callers that need to keep the pixels must Copy the buffer instead.
func (b *Buffer) Image() *image.NRGBA { return b.img }
