package imaging

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"jpg", JPG, false},
		{"jpeg", JPG, false},
		{".JPEG", JPG, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("/tmp/out.jpeg"); err != nil || f != JPG {
		t.Errorf("got %q, %v; want jpg", f, err)
	}
	if _, err := FormatFromPath("/tmp/out"); err == nil {
		t.Error("path without extension should fail")
	}
}

func TestFiles_EncodeDecodePNG(t *testing.T) {
	files := NewFiles(0)
	src := mustBuffer(t, createPatternImage(40, 30))
	src.SetNRGBA(1, 1, color.NRGBA{10, 20, 30, 128})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := files.Encode(src, path, PNG); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := files.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !Equal(src, got) {
		t.Error("PNG round trip should be lossless")
	}
}

func TestFiles_EncodeJPGFlattensAlpha(t *testing.T) {
	files := NewFiles(90)
	src, _ := New(16, 16) // fully transparent

	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := files.Encode(src, path, JPG); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := files.Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	c := got.NRGBAAt(8, 8)
	if c.R < 250 || c.G < 250 || c.B < 250 || c.A != 255 {
		t.Errorf("transparent pixels should flatten to opaque white, got %v", c)
	}
}

func TestFiles_EncodeErrors(t *testing.T) {
	files := NewFiles(0)
	src := mustBuffer(t, createInMemoryImage(4, 4, color.White))

	err := files.Encode(src, filepath.Join(t.TempDir(), "out.gif"), Format("gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}

	err = files.Encode(src, filepath.Join(t.TempDir(), "missing", "dir", "out.png"), PNG)
	if !errors.Is(err, ErrWriteError) {
		t.Errorf("expected ErrWriteError, got %v", err)
	}

	err = files.Encode(nil, filepath.Join(t.TempDir(), "out.png"), PNG)
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("expected ErrInvalidBuffer, got %v", err)
	}
}

func TestFiles_DecodeErrors(t *testing.T) {
	files := NewFiles(0)

	_, err := files.Decode("/nonexistent/path/to/image.png")
	if !errors.Is(err, ErrUnreadableFile) {
		t.Errorf("expected ErrUnreadableFile for missing file, got %v", err)
	}

	// Create a file with invalid image data
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_, err = files.Decode(path)
	if !errors.Is(err, ErrUnreadableFile) {
		t.Errorf("expected ErrUnreadableFile for invalid data, got %v", err)
	}
}

func TestFiles_Fit(t *testing.T) {
	files := NewFiles(0)

	tests := []struct {
		name         string
		w, h         int
		viewport     image.Point
		wantW, wantH int
	}{
		{"scale down wide", 200, 100, image.Pt(100, 100), 100, 50},
		{"scale down tall", 100, 400, image.Pt(100, 100), 25, 100},
		{"never upscale", 50, 40, image.Pt(100, 100), 50, 40},
		{"no viewport", 300, 300, image.Pt(0, 0), 300, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := mustBuffer(t, createInMemoryImage(tt.w, tt.h, color.White))
			got, err := files.Fit(src, tt.viewport)
			if err != nil {
				t.Fatalf("Fit failed: %v", err)
			}
			if got.Width() != tt.wantW || got.Height() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					got.Width(), got.Height(), tt.wantW, tt.wantH)
			}
			if got == src {
				t.Error("Fit must return a new buffer")
			}
		})
	}
}

func TestFlattenOnWhite(t *testing.T) {
	b, _ := New(2, 1)
	b.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})
	flat := FlattenOnWhite(b)
	if got := flat.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("transparent pixel: got %v, want white", got)
	}
	if got := flat.NRGBAAt(1, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("opaque pixel: got %v, want black", got)
	}
}
