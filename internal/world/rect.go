package world

// Rect is an axis-aligned rectangle in tile coordinates. X1 < X2 and Y1 < Y2
// for any rect produced by NewRect with positive dimensions. Rects exist only
// during generation and are discarded once a level is built.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rect from a top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the rect's center tile.
func (r Rect) Center() Position {
	return Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns the rect's horizontal extent.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the rect's vertical extent.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Intersects reports whether r and other overlap when each is grown by
// border tiles on every side. A border of 0 tests exact overlap.
func (r Rect) Intersects(other Rect, border int) bool {
	return r.X1-border <= other.X2+border &&
		r.X2+border >= other.X1-border &&
		r.Y1-border <= other.Y2+border &&
		r.Y2+border >= other.Y1-border
}
