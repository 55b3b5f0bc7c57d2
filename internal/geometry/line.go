package geometry

import "math"

// Epsilon absorbs floating error in bounds checks.
// The segment intersection test itself is exact.
const Epsilon = 1e-10

// Line is a directed segment from Start to End.
// Equality ignores direction; motion code relies on Start being the origin.
type Line struct {
	start Point
	end   Point
}

// NewLine creates a segment from start to end.
func NewLine(start, end Point) Line {
	return Line{start: start, end: end}
}

// NewLineXY creates a segment from raw coordinates.
func NewLineXY(x1, y1, x2, y2 float64) Line {
	return Line{start: Pt(x1, y1), end: Pt(x2, y2)}
}

// Start returns the origin of the segment.
func (l Line) Start() Point {
	return l.start
}

// End returns the far end of the segment.
func (l Line) End() Point {
	return l.end
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.start.Distance(l.end)
}

// Middle returns the midpoint of the segment.
func (l Line) Middle() Point {
	return Point{
		X: (l.start.X + l.end.X) / 2,
		Y: (l.start.Y + l.end.Y) / 2,
	}
}

// Slope returns dy/dx. ok is false for a vertical segment (zero run).
func (l Line) Slope() (slope float64, ok bool) {
	dx := l.end.X - l.start.X
	if dx == 0 {
		return math.NaN(), false
	}
	return (l.end.Y - l.start.Y) / dx, true
}

// YIntercept returns where the supporting line crosses x = 0.
// ok is false for a vertical segment.
func (l Line) YIntercept() (float64, bool) {
	m, ok := l.Slope()
	if !ok {
		return math.NaN(), false
	}
	return l.start.Y - m*l.start.X, true
}

// Equal reports whether both segments have the same endpoints, in either order.
func (l Line) Equal(other Line) bool {
	same := l.start.Equal(other.start) && l.end.Equal(other.end)
	swapped := l.start.Equal(other.end) && l.end.Equal(other.start)
	return same || swapped
}

// IntersectionWith returns the point where the two segments cross.
//
// Both segments are parameterised as start + t*(end-start), t in [0,1].
// Parallel segments, including collinear overlapping ones, never intersect.
// The [0,1] containment test is exact; touching at an endpoint counts.
// The returned point lies on l at parameter t1.
func (l Line) IntersectionWith(other Line) (Point, bool) {
	d1 := l.end.Sub(l.start)
	d2 := other.end.Sub(other.start)

	cross := d1.Cross(d2)
	if cross == 0 {
		return Point{}, false
	}

	offset := other.start.Sub(l.start)
	t1 := offset.Cross(d2) / cross
	t2 := offset.Cross(d1) / cross

	if t1 < 0 || t1 > 1 || t2 < 0 || t2 > 1 {
		return Point{}, false
	}

	return Point{
		X: l.start.X + t1*d1.X,
		Y: l.start.Y + t1*d1.Y,
	}, true
}

// IsIntersecting reports whether the two segments cross.
func (l Line) IsIntersecting(other Line) bool {
	_, ok := l.IntersectionWith(other)
	return ok
}

// ContainsPoint reports whether p lies within the bounding box of the segment,
// widened by Epsilon on every side.
func (l Line) ContainsPoint(p Point) bool {
	minX, maxX := math.Min(l.start.X, l.end.X), math.Max(l.start.X, l.end.X)
	minY, maxY := math.Min(l.start.Y, l.end.Y), math.Max(l.start.Y, l.end.Y)
	return p.X+Epsilon >= minX && p.X-Epsilon <= maxX &&
		p.Y+Epsilon >= minY && p.Y-Epsilon <= maxY
}

// ClosestIntersectionToStart returns the intersection with rect nearest to Start.
// Ties keep the first point in edge order (top, bottom, left, right).
func (l Line) ClosestIntersectionToStart(rect Rectangle) (Point, bool) {
	points := rect.IntersectionPoints(l)
	if len(points) == 0 {
		return Point{}, false
	}

	closest := points[0]
	minDist := l.start.Distance(closest)
	for _, p := range points[1:] {
		if d := l.start.Distance(p); d < minDist {
			minDist = d
			closest = p
		}
	}
	return closest, true
}
