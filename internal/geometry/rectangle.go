package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a rectangle would have a non-positive side.
var ErrInvalidDimensions = errors.New("geometry: rectangle width and height must be positive")

// Edge identifies one side of a rectangle.
type Edge int

// Edges in the order intersections are tested.
const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rectangle is an axis-aligned box anchored at its upper-left corner.
// Corners and edges are computed once at construction and never change;
// moving a rectangle means building a new one.
type Rectangle struct {
	upperLeft Point
	width     float64
	height    float64
	edges     [4]Line
}

// NewRectangle creates a rectangle with the given upper-left corner and size.
func NewRectangle(upperLeft Point, width, height float64) (Rectangle, error) {
	if width <= 0 || height <= 0 {
		return Rectangle{}, fmt.Errorf("%w: got %vx%v", ErrInvalidDimensions, width, height)
	}

	r := Rectangle{
		upperLeft: upperLeft,
		width:     width,
		height:    height,
	}

	ur := r.UpperRight()
	ll := r.LowerLeft()
	lr := r.LowerRight()
	r.edges[EdgeTop] = NewLine(upperLeft, ur)
	r.edges[EdgeBottom] = NewLine(ll, lr)
	r.edges[EdgeLeft] = NewLine(upperLeft, ll)
	r.edges[EdgeRight] = NewLine(ur, lr)

	return r, nil
}

// MustRectangle is like NewRectangle but panics on invalid dimensions.
// Intended for fixed layouts.
func MustRectangle(upperLeft Point, width, height float64) Rectangle {
	r, err := NewRectangle(upperLeft, width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// UpperLeft returns the anchor corner.
func (r Rectangle) UpperLeft() Point {
	return r.upperLeft
}

// UpperRight returns the top-right corner.
func (r Rectangle) UpperRight() Point {
	return Pt(r.upperLeft.X+r.width, r.upperLeft.Y)
}

// LowerLeft returns the bottom-left corner.
func (r Rectangle) LowerLeft() Point {
	return Pt(r.upperLeft.X, r.upperLeft.Y+r.height)
}

// LowerRight returns the bottom-right corner.
func (r Rectangle) LowerRight() Point {
	return Pt(r.upperLeft.X+r.width, r.upperLeft.Y+r.height)
}

// Width returns the horizontal size.
func (r Rectangle) Width() float64 {
	return r.width
}

// Height returns the vertical size.
func (r Rectangle) Height() float64 {
	return r.height
}

// Left returns the x-coordinate of the left edge.
func (r Rectangle) Left() float64 {
	return r.upperLeft.X
}

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.upperLeft.X + r.width
}

// Top returns the y-coordinate of the top edge.
func (r Rectangle) Top() float64 {
	return r.upperLeft.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.upperLeft.Y + r.height
}

// Edge returns one boundary segment.
func (r Rectangle) Edge(e Edge) Line {
	return r.edges[e]
}

// Edges returns the boundary segments in test order: top, bottom, left, right.
func (r Rectangle) Edges() [4]Line {
	return r.edges
}

// IntersectionPoints returns every point where line crosses the boundary.
// Points come in edge order; a segment through a corner yields the corner
// twice, once per edge.
func (r Rectangle) IntersectionPoints(line Line) []Point {
	var points []Point
	for _, edge := range r.edges {
		if p, ok := line.IntersectionWith(edge); ok {
			points = append(points, p)
		}
	}
	return points
}

// Contains reports whether p is inside or on the boundary.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// MoveTo returns a rectangle of the same size anchored at upperLeft.
func (r Rectangle) MoveTo(upperLeft Point) Rectangle {
	return MustRectangle(upperLeft, r.width, r.height)
}

// Translate returns a rectangle shifted by (dx, dy).
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	return r.MoveTo(Pt(r.upperLeft.X+dx, r.upperLeft.Y+dy))
}
