// Package config loads user preferences for the editor from ~/.miniphotorc
// and the environment.
//
// The rc file holds one "key = value" pair per line; blank lines and lines
// starting with # are ignored, as are unknown keys and values that do not
// parse. Recognized keys:
//
//	stroke_color   palette name (red, black, ...) or hex (#ff8800)
//	stroke_width   freehand stroke width in pixels
//	font_size      text size in points
//	jpeg_quality   1-100
//	viewport       display area as WxH, e.g. 800x600
//
// MINIPHOTO_VIEWPORT and MINIPHOTO_JPEG_QUALITY override the file.
package config

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ironsheep/miniphoto/internal/imaging"
)

// FileName is the rc file looked up in the home directory.
const FileName = ".miniphotorc"

// Environment variables that override the rc file.
const (
	EnvViewport    = "MINIPHOTO_VIEWPORT"
	EnvJPEGQuality = "MINIPHOTO_JPEG_QUALITY"
)

// DefaultViewport is the display area used until a client reports its own.
var DefaultViewport = image.Pt(800, 600)

type Config struct {
	StrokeColor color.NRGBA
	StrokeWidth float64
	FontSize    float64
	JPEGQuality int
	Viewport    image.Point
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		StrokeColor: imaging.Red.NRGBA(),
		StrokeWidth: 3,
		FontSize:    imaging.DefaultFontSize,
		JPEGQuality: imaging.DefaultJPEGQuality,
		Viewport:    DefaultViewport,
	}
}

// Load reads ~/.miniphotorc when present and applies environment overrides.
// It never fails; anything missing or malformed keeps its default.
func Load() *Config {
	config := Default()

	if homeDir, err := os.UserHomeDir(); err == nil {
		if file, err := os.Open(filepath.Join(homeDir, FileName)); err == nil {
			config.parse(file)
			file.Close()
		}
	}

	config.applyEnv(os.LookupEnv)
	return config
}

// LoadFile is Load with an explicit rc file path.
func LoadFile(path string) (*Config, error) {
	config := Default()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	config.parse(file)
	config.applyEnv(os.LookupEnv)
	return config, nil
}

func (c *Config) parse(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "stroke_color", "strokecolor", "color":
			if col, err := imaging.ParseColor(value); err == nil {
				c.StrokeColor = col
			}
		case "stroke_width", "strokewidth", "width":
			if w, err := strconv.ParseFloat(value, 64); err == nil && w > 0 {
				c.StrokeWidth = w
			}
		case "font_size", "fontsize":
			if size, err := strconv.ParseFloat(value, 64); err == nil && size > 0 {
				c.FontSize = size
			}
		case "jpeg_quality", "quality":
			c.setQuality(value)
		case "viewport":
			c.setViewport(value)
		}
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvViewport); ok {
		c.setViewport(v)
	}
	if v, ok := lookup(EnvJPEGQuality); ok {
		c.setQuality(v)
	}
}

func (c *Config) setQuality(value string) {
	if q, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && q >= 1 && q <= 100 {
		c.JPEGQuality = q
	}
}

func (c *Config) setViewport(value string) {
	if p, err := ParseViewport(value); err == nil {
		c.Viewport = p
	}
}

// ParseViewport parses a "WxH" size with positive dimensions.
func ParseViewport(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid viewport %q: want WxH", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid viewport width %q: %w", w, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid viewport height %q: %w", h, err)
	}
	if width <= 0 || height <= 0 {
		return image.Point{}, fmt.Errorf("invalid viewport %q: dimensions must be positive", s)
	}
	return image.Pt(width, height), nil
}
