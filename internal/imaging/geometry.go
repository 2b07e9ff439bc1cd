package imaging

import "image"

// ToImageSpace converts a point in view coordinates to image coordinates.
//
// The displayed buffer is assumed to be centered in a viewport of the given
// size, so its top-left corner sits at (viewport - size) / 2 on each axis. The
// offset is subtracted and each axis is clamped into [0, dimension-1].
//
// When displayed is nil or invalid the view point is returned unchanged;
// callers must check for an image before using the result as a pixel index.
func ToImageSpace(view image.Point, displayed *Buffer, viewport image.Point) image.Point {
	if !displayed.Valid() {
		return view
	}
	size := displayed.Size()
	offset := viewport.Sub(size).Div(2)
	p := view.Sub(offset)
	return image.Point{
		X: clamp(p.X, 0, size.X-1),
		Y: clamp(p.Y, 0, size.Y-1),
	}
}

// SelectionRect returns the rectangle spanned by an anchor and the current
// pointer position. Dragging up or left is normalized so Min is always the
// top-left corner and the width and height are non-negative.
func SelectionRect(anchor, p image.Point) image.Rectangle {
	return image.Rectangle{Min: anchor, Max: p}.Canon()
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
