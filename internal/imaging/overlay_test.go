package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestRenderSelection_Fill(t *testing.T) {
	b := mustBuffer(t, createInMemoryImage(40, 40, color.White))
	before, _ := Copy(b)

	out := RenderSelection(b, image.Rect(10, 10, 20, 20), CropFill, true)
	if out == nil {
		t.Fatal("RenderSelection returned nil")
	}
	if !Equal(b, before) {
		t.Error("RenderSelection must not modify the buffer")
	}

	inside := out.NRGBAAt(15, 15)
	if inside.B < 250 || inside.R == 255 {
		t.Errorf("selection should be tinted blue, got %v", inside)
	}
	if outside := out.NRGBAAt(30, 30); outside != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("pixel outside selection changed: %v", outside)
	}
}

func TestRenderSelection_Outline(t *testing.T) {
	b := mustBuffer(t, createInMemoryImage(40, 40, color.White))

	out := RenderSelection(b, image.Rect(10, 10, 30, 30), TextOutline, false)
	if edge := out.NRGBAAt(10, 20); edge.R > 100 {
		t.Errorf("outline pixel should be green, got %v", edge)
	}
	if center := out.NRGBAAt(20, 20); center != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("outline should not fill the interior, got %v", center)
	}
}

func TestRenderSelection_Empty(t *testing.T) {
	b := mustBuffer(t, createInMemoryImage(10, 10, color.White))
	out := RenderSelection(b, image.Rectangle{}, CropFill, true)
	if out.Bounds() != b.Bounds() {
		t.Errorf("bounds: got %v, want %v", out.Bounds(), b.Bounds())
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("empty selection should return a plain copy, got %v", got)
	}
}
