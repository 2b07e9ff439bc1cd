package imaging

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PaletteColor is one of the fixed text colors offered by the prompt.
type PaletteColor int

const (
	Black PaletteColor = iota
	Red
	Green
	Blue
	White
)

var paletteHex = [...]string{
	Black: "#000000",
	Red:   "#FF0000",
	Green: "#00FF00",
	Blue:  "#0000FF",
	White: "#FFFFFF",
}

var paletteNames = [...]string{
	Black: "black",
	Red:   "red",
	Green: "green",
	Blue:  "blue",
	White: "white",
}

// String returns the lowercase palette name.
func (p PaletteColor) String() string {
	if p < Black || p > White {
		return fmt.Sprintf("PaletteColor(%d)", int(p))
	}
	return paletteNames[p]
}

// NRGBA returns the opaque color for the palette entry. Unknown entries map to
// black.
func (p PaletteColor) NRGBA() color.NRGBA {
	if p < Black || p > White {
		p = Black
	}
	c, _ := colorful.Hex(paletteHex[p])
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ParsePaletteColor maps a palette name (case-insensitive) to its entry.
func ParsePaletteColor(name string) (PaletteColor, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, pn := range paletteNames {
		if pn == n {
			return PaletteColor(i), nil
		}
	}
	return Black, fmt.Errorf("unknown palette color: %q", name)
}

// ParseColor parses either a palette name or a hex color like "#FF8800".
// Hex colors are always opaque.
func ParseColor(s string) (color.NRGBA, error) {
	if p, err := ParsePaletteColor(s); err == nil {
		return p.NRGBA(), nil
	}
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex       string    `json:"hex"` // Hex format "#RRGGBB" (no alpha)
	RGB       RGBColor  `json:"rgb"`
	RGBA      RGBAColor `json:"rgba"`
	HSL       HSLColor  `json:"hsl"`
	Grayscale bool      `json:"grayscale"` // R = G = B
}

// SampleColor returns the color of the pixel at (x, y) in b.
//
// Coordinates are 0-based with origin at top-left. The Hex and HSL forms
// ignore alpha; use RGBA.A to read transparency.
func SampleColor(b *Buffer, x, y int) (*ColorResult, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("sample: %w", ErrInvalidBuffer)
	}
	if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := b.NRGBAAt(x, y)
	c := colorful.Color{R: float64(px.R) / 255, G: float64(px.G) / 255, B: float64(px.B) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return &ColorResult{
		Hex:       fmt.Sprintf("#%02X%02X%02X", px.R, px.G, px.B),
		RGB:       RGBColor{R: px.R, G: px.G, B: px.B},
		RGBA:      RGBAColor{R: px.R, G: px.G, B: px.B, A: px.A},
		HSL:       HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Grayscale: px.R == px.G && px.G == px.B,
	}, nil
}
