package imaging

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Format is an output encoding supported by Files.Encode.
type Format string

const (
	PNG Format = "png"
	JPG Format = "jpg"
)

// ParseFormat maps a format name or file extension ("png", ".jpeg", "JPG") to
// a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath derives the output format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// DefaultJPEGQuality is the JPEG quality used when none is configured.
const DefaultJPEGQuality = 95

// Files decodes image files into buffers, encodes buffers to PNG or JPEG, and
// fits freshly opened images to the viewport.
//
// Decoding accepts every format registered with the image package: PNG, JPEG,
// GIF, BMP and TIFF through the imaging library, plus WebP.
type Files struct {
	// JPEGQuality is the quality (1-100) used for JPEG output. Zero means
	// DefaultJPEGQuality.
	JPEGQuality int
}

// NewFiles creates a file service with the given JPEG quality.
func NewFiles(jpegQuality int) *Files {
	return &Files{JPEGQuality: jpegQuality}
}

// Decode reads and decodes the image at path.
//
// EXIF orientation is applied, and the result is normalized to RGBA.
//
// # Errors
//
//   - ErrUnreadableFile if the file does not exist, cannot be read, or is not
//     a decodable image
//   - ErrInvalidBuffer if the decoded image is empty
func (f *Files) Decode(path string) (*Buffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, filepath.Base(path), err)
	}
	return FromImage(img)
}

// Encode writes b to path in the given format.
//
// JPEG has no transparency, so the buffer is first flattened onto an opaque
// white background. The file is created or truncated.
//
// # Errors
//
//   - ErrUnsupportedFormat for formats other than PNG and JPG
//   - ErrInvalidBuffer for an invalid buffer
//   - ErrWriteError if the file cannot be created or written
func (f *Files) Encode(b *Buffer, path string, format Format) error {
	if format != PNG && format != JPG {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if !b.Valid() {
		return fmt.Errorf("encode: %w", ErrInvalidBuffer)
	}

	var out image.Image = b.img
	var opts []imaging.EncodeOption
	target := imaging.PNG
	if format == JPG {
		out = FlattenOnWhite(b)
		target = imaging.JPEG
		opts = append(opts, imaging.JPEGQuality(f.jpegQuality()))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	if err := imaging.Encode(file, out, target, opts...); err != nil {
		file.Close()
		return fmt.Errorf("%w: failed to encode %s: %v", ErrWriteError, format, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	return nil
}

// Fit scales b down, preserving aspect ratio, so it fits inside viewport.
//
// Images that already fit are copied unchanged; images are never upscaled. A
// viewport with a non-positive dimension disables fitting.
func (f *Files) Fit(b *Buffer, viewport image.Point) (*Buffer, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("fit: %w", ErrInvalidBuffer)
	}
	if viewport.X <= 0 || viewport.Y <= 0 {
		return Copy(b)
	}
	if b.Width() <= viewport.X && b.Height() <= viewport.Y {
		return Copy(b)
	}
	fitted := imaging.Fit(b.img, viewport.X, viewport.Y, imaging.Lanczos)
	if fitted.Rect.Empty() {
		// Extreme aspect ratios can round a side to zero; keep the original.
		return Copy(b)
	}
	return &Buffer{img: fitted}, nil
}

func (f *Files) jpegQuality() int {
	if f == nil || f.JPEGQuality < 1 || f.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return f.JPEGQuality
}

// FlattenOnWhite composites b over an opaque white background.
func FlattenOnWhite(b *Buffer) *image.NRGBA {
	bg := imaging.New(b.Width(), b.Height(), color.White)
	return imaging.Overlay(bg, b.img, image.Point{}, 1.0)
}
