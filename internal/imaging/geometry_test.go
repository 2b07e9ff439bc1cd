package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestToImageSpace(t *testing.T) {
	buf := mustBuffer(t, createInMemoryImage(100, 80, color.White))

	tests := []struct {
		name     string
		view     image.Point
		viewport image.Point
		want     image.Point
	}{
		{"centered inside", image.Pt(60, 70), image.Pt(200, 180), image.Pt(10, 20)},
		{"clamped top-left", image.Pt(0, 0), image.Pt(200, 180), image.Pt(0, 0)},
		{"clamped bottom-right", image.Pt(500, 500), image.Pt(200, 180), image.Pt(99, 79)},
		{"exact fit", image.Pt(42, 17), image.Pt(100, 80), image.Pt(42, 17)},
		{"viewport smaller than image", image.Pt(0, 0), image.Pt(50, 40), image.Pt(25, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToImageSpace(tt.view, buf, tt.viewport)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToImageSpace_NoBuffer(t *testing.T) {
	p := image.Pt(-7, 300)
	if got := ToImageSpace(p, nil, image.Pt(100, 100)); got != p {
		t.Errorf("expected passthrough %v, got %v", p, got)
	}
}

func TestSelectionRect(t *testing.T) {
	tests := []struct {
		name      string
		anchor, p image.Point
		want      image.Rectangle
	}{
		{"down-right", image.Pt(10, 10), image.Pt(30, 25), image.Rect(10, 10, 30, 25)},
		{"up-left", image.Pt(30, 25), image.Pt(10, 10), image.Rect(10, 10, 30, 25)},
		{"mixed", image.Pt(10, 10), image.Pt(5, 20), image.Rect(5, 10, 10, 20)},
		{"click", image.Pt(4, 4), image.Pt(4, 4), image.Rect(4, 4, 4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectionRect(tt.anchor, tt.p)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.Dx() < 0 || got.Dy() < 0 {
				t.Errorf("negative extent: %v", got)
			}
		})
	}
}
