package imaging

import (
	"image/color"
	"testing"
)

func TestSampleColor(t *testing.T) {
	b := mustBuffer(t, createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255}))

	result, err := SampleColor(b, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.RGBA.A != 255 {
		t.Errorf("RGBA.A: got %d, want 255", result.RGBA.A)
	}
	if result.HSL.H < 15 || result.HSL.H > 25 {
		t.Errorf("HSL.H: got %d, want about 20", result.HSL.H)
	}
	if result.Grayscale {
		t.Error("orange should not be reported as grayscale")
	}
}

func TestSampleColor_White(t *testing.T) {
	b := mustBuffer(t, createInMemoryImage(10, 10, color.White))
	result, err := SampleColor(b, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.HSL.S != 0 || result.HSL.L != 100 {
		t.Errorf("HSL: got %+v, want S=0 L=100", result.HSL)
	}
	if !result.Grayscale {
		t.Error("white should be reported as grayscale")
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	b := mustBuffer(t, createInMemoryImage(100, 100, color.White))

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(b, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestPaletteColor(t *testing.T) {
	tests := []struct {
		name string
		want color.NRGBA
	}{
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"Red", color.NRGBA{255, 0, 0, 255}},
		{"GREEN", color.NRGBA{0, 255, 0, 255}},
		{" blue ", color.NRGBA{0, 0, 255, 255}},
		{"white", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePaletteColor(tt.name)
			if err != nil {
				t.Fatalf("ParsePaletteColor failed: %v", err)
			}
			if got := p.NRGBA(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ParsePaletteColor("purple"); err == nil {
		t.Error("unknown palette name should fail")
	}
	if Red.String() != "red" {
		t.Errorf("String: got %q, want red", Red.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"red", color.NRGBA{255, 0, 0, 255}, false},
		{"#FF8040", color.NRGBA{255, 128, 64, 255}, false},
		{"00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"purple", color.NRGBA{}, true},
		{"#12", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
