// Package geometry provides basic geometric types used throughout the application.
package geometry

import "image"

// Box is an axis-aligned rectangle in source-image pixel coordinates,
// stored as half-open corner pairs: x1 <= x < x2, y1 <= y < y2.
type Box struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewBox creates a Box from two corner points.
func NewBox(x1, y1, x2, y2 int) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// FromRect converts an image.Rectangle to a Box.
func FromRect(r image.Rectangle) Box {
	return Box{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// ToRect converts the box to an image.Rectangle.
func (b Box) ToRect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Width returns the box width in pixels.
func (b Box) Width() int {
	return b.X2 - b.X1
}

// Height returns the box height in pixels.
func (b Box) Height() int {
	return b.Y2 - b.Y1
}

// Area returns the box area in pixels.
func (b Box) Area() int {
	if b.X2 <= b.X1 || b.Y2 <= b.Y1 {
		return 0
	}
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// AspectRatio returns width/height, or 0 for a degenerate box.
func (b Box) AspectRatio() float64 {
	h := b.Height()
	if h <= 0 {
		return 0
	}
	return float64(b.Width()) / float64(h)
}

// Empty returns true if the box has no area.
func (b Box) Empty() bool {
	return b.X2 <= b.X1 || b.Y2 <= b.Y1
}

// IntersectionArea returns the area of overlap with another box.
func (b Box) IntersectionArea(other Box) int {
	ix1 := max(b.X1, other.X1)
	iy1 := max(b.Y1, other.Y1)
	ix2 := min(b.X2, other.X2)
	iy2 := min(b.Y2, other.Y2)

	if ix2 <= ix1 || iy2 <= iy1 {
		return 0
	}
	return (ix2 - ix1) * (iy2 - iy1)
}

// IoU returns the intersection-over-union overlap ratio with another box,
// in [0, 1]. Degenerate boxes yield 0.
func (b Box) IoU(other Box) float64 {
	inter := b.IntersectionArea(other)
	if inter <= 0 {
		return 0
	}
	union := b.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Pad expands the box by n pixels on every side, clamped to
// [0, width] x [0, height].
func (b Box) Pad(n, width, height int) Box {
	return Box{
		X1: max(0, b.X1-n),
		Y1: max(0, b.Y1-n),
		X2: min(width, b.X2+n),
		Y2: min(height, b.Y2+n),
	}
}

// Clamp restricts the box to [0, width] x [0, height].
func (b Box) Clamp(width, height int) Box {
	return b.Pad(0, width, height)
}

// ReadingOrderLess reports whether b precedes other in reading order:
// top-to-bottom first, left-to-right among boxes on the same row. Two
// boxes whose top edges differ by no more than rowTolerance pixels are
// treated as the same row.
func (b Box) ReadingOrderLess(other Box, rowTolerance int) bool {
	dy := b.Y1 - other.Y1
	if dy < -rowTolerance || dy > rowTolerance {
		return dy < 0
	}
	return b.X1 < other.X1
}
