package domain

// Rect is a half-open cell rectangle [X, X+Width) x [Y, Y+Height).
//
// Coordinates come from clients and stored layouts, so no predicate below
// adds them: X+Width may not fit in an int.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right and Bottom are only meaningful for rectangles that are Within a grid.
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// spanContains reports whether v lies in [start, start+length).
// length must be positive.
func spanContains(start, length, v int) bool {
	if v < start {
		return false
	}
	// v-start computed in unsigned space is exact for v >= start
	return uint(v)-uint(start) < uint(length)
}

// spansOverlap reports whether [a, a+al) and [b, b+bl) share a value.
// al and bl must be positive.
func spansOverlap(a, al, b, bl int) bool {
	if a <= b {
		return spanContains(a, al, b)
	}
	return spanContains(b, bl, a)
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return spanContains(r.X, r.Width, x) && spanContains(r.Y, r.Height, y)
}

// Intersects reports whether the two rectangles share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return spansOverlap(r.X, r.Width, o.X, o.Width) && spansOverlap(r.Y, r.Height, o.Y, o.Height)
}

// Within reports whether the rectangle lies fully inside a width x height grid.
func (r Rect) Within(width, height int) bool {
	if r.Empty() {
		return false
	}
	if width <= 0 || height <= 0 || r.X < 0 || r.Y < 0 {
		return false
	}
	return r.Width <= width-r.X && r.Height <= height-r.Y
}
