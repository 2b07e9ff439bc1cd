package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// mustBuffer converts an image to a Buffer or fails the test.
func mustBuffer(t *testing.T, img image.Image) *Buffer {
	t.Helper()
	b, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	return b
}

func TestNew(t *testing.T) {
	b, err := New(4, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", b.Width(), b.Height())
	}
	if got := b.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("new buffer should be transparent, got %v", got)
	}
}

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidBuffer) {
				t.Errorf("expected ErrInvalidBuffer, got %v", err)
			}
		})
	}
}

func TestFromImage_NormalizesFormat(t *testing.T) {
	gray := image.NewGray(image.Rect(5, 5, 15, 13))
	for y := 5; y < 13; y++ {
		for x := 5; x < 15; x++ {
			gray.SetGray(x, y, color.Gray{Y: 77})
		}
	}

	b := mustBuffer(t, gray)
	if b.Bounds() != image.Rect(0, 0, 10, 8) {
		t.Errorf("bounds: got %v, want origin-anchored 10x8", b.Bounds())
	}
	got := b.NRGBAAt(0, 0)
	want := color.NRGBA{77, 77, 77, 255}
	if got != want {
		t.Errorf("pixel: got %v, want %v", got, want)
	}
}

func TestFromImage_Empty(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 10)))
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("expected ErrInvalidBuffer, got %v", err)
	}
	_, err = FromImage(nil)
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("expected ErrInvalidBuffer for nil, got %v", err)
	}
}

func TestCopy_Isolation(t *testing.T) {
	src := mustBuffer(t, createPatternImage(20, 20))
	dup, err := Copy(src)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if !Equal(src, dup) {
		t.Fatal("copy should be pixel-identical to source")
	}

	// Mutating the copy must not leak into the source
	dup.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 4})
	if got := src.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("source changed after mutating copy: %v", got)
	}

	// And vice versa
	src.SetNRGBA(19, 19, color.NRGBA{9, 9, 9, 9})
	if got := dup.NRGBAAt(19, 19); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("copy changed after mutating source: %v", got)
	}
}

func TestCopy_Invalid(t *testing.T) {
	if _, err := Copy(nil); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("Copy(nil): expected ErrInvalidBuffer, got %v", err)
	}
	if _, err := Copy(&Buffer{}); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("Copy(zero): expected ErrInvalidBuffer, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := mustBuffer(t, createInMemoryImage(10, 10, color.White))
	b := mustBuffer(t, createInMemoryImage(10, 10, color.White))
	c := mustBuffer(t, createInMemoryImage(10, 11, color.White))

	if !Equal(a, b) {
		t.Error("identical buffers should be equal")
	}
	if Equal(a, c) {
		t.Error("buffers of different size should not be equal")
	}
	b.SetNRGBA(3, 3, color.NRGBA{0, 0, 0, 255})
	if Equal(a, b) {
		t.Error("buffers with a differing pixel should not be equal")
	}
	if Equal(a, nil) || Equal(nil, nil) {
		t.Error("nil buffers are never equal")
	}
}
