package procedural

// Side names one side of a contour relative to its direction of travel.
type Side int

const (
	// SideLeft is the left-hand side when walking along the contour.
	SideLeft Side = iota
	// SideRight is the right-hand side when walking along the contour.
	SideRight
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Contour is the part of a 2D outline that MultiShape relies on.
// Any contour implementation exposing these methods can be classified.
type Contour interface {
	// Point returns point i, wrapping around for closed contours.
	Point(i int) Vec2
	// SegCount returns the number of segments.
	SegCount() int
	// NormalAfter returns the unit normal of segment i, pointing to the
	// declared outside.
	NormalAfter(i int) Vec2
	// FindRealOutSide computes which side is geometrically outside.
	FindRealOutSide() Side
	// OutSide returns the declared outside.
	OutSide() Side
}

// Shape is an ordered 2D polyline, optionally closed into a polygon, with a
// declared outside side. The zero value is an empty open shape whose
// outside is SideLeft; use NewShape for the usual SideRight default.
type Shape struct {
	points  []Vec2
	outSide Side
	closed  bool
}

var _ Contour = (*Shape)(nil)

// NewShape returns an open shape through points with its outside on the right.
func NewShape(points ...Vec2) *Shape {
	return &Shape{
		points:  append([]Vec2(nil), points...),
		outSide: SideRight,
	}
}

// AddPoint appends a point.
func (s *Shape) AddPoint(p Vec2) *Shape {
	s.points = append(s.points, p)
	return s
}

// AddPointXY appends the point (x, y).
func (s *Shape) AddPointXY(x, y float32) *Shape {
	return s.AddPoint(Vec2{X: x, Y: y})
}

// Close makes the shape a polygon: the last point connects to the first.
func (s *Shape) Close() *Shape {
	s.closed = true
	return s
}

// SetOutSide declares which side is outside.
func (s *Shape) SetOutSide(side Side) *Shape {
	s.outSide = side
	return s
}

// SwitchSide flips the declared outside.
func (s *Shape) SwitchSide() *Shape {
	s.outSide = s.outSide.Opposite()
	return s
}

// OutSide returns the declared outside.
func (s *Shape) OutSide() Side {
	return s.outSide
}

// IsClosed reports whether the shape is closed.
func (s *Shape) IsClosed() bool {
	return s.closed
}

// PointCount returns the number of stored points.
func (s *Shape) PointCount() int {
	return len(s.points)
}

// Points returns a copy of the stored points. A closed shape does not
// repeat its first point.
func (s *Shape) Points() []Vec2 {
	return append([]Vec2(nil), s.points...)
}

// Clone returns an independent copy of the shape.
func (s *Shape) Clone() *Shape {
	c := *s
	c.points = s.Points()
	return &c
}

// Point returns point i. Closed shapes wrap i modulo the point count,
// open shapes clamp it to the valid range. The shape must have a point.
func (s *Shape) Point(i int) Vec2 {
	n := len(s.points)
	if s.closed {
		return s.points[((i%n)+n)%n]
	}
	return s.points[max(0, min(i, n-1))]
}

// SegCount returns the number of segments: one per consecutive pair, plus
// the closing segment when closed.
func (s *Shape) SegCount() int {
	if len(s.points) == 0 {
		return 0
	}
	if s.closed {
		return len(s.points)
	}
	return len(s.points) - 1
}

// DirectionAfter returns the unit direction of the segment starting at point i.
// For the last point of an open shape it returns the direction of the last segment.
// A shape without segments has no direction and yields the zero vector.
func (s *Shape) DirectionAfter(i int) Vec2 {
	n := len(s.points)
	if s.SegCount() == 0 {
		return Vec2{}
	}
	if !s.closed && i >= n-1 {
		return s.points[n-1].Sub(s.points[n-2]).Normalize()
	}
	return s.Point(i + 1).Sub(s.Point(i)).Normalize()
}

// DirectionBefore returns the unit direction of the segment ending at point i.
// For the first point of an open shape it returns the direction of the first segment.
func (s *Shape) DirectionBefore(i int) Vec2 {
	if s.SegCount() == 0 {
		return Vec2{}
	}
	if !s.closed && i <= 0 {
		return s.points[1].Sub(s.points[0]).Normalize()
	}
	return s.Point(i).Sub(s.Point(i - 1)).Normalize()
}

// NormalAfter returns the unit normal of the segment starting at point i,
// pointing to the declared outside.
func (s *Shape) NormalAfter(i int) Vec2 {
	n := s.DirectionAfter(i).Perp()
	if s.outSide == SideRight {
		return n.Neg()
	}
	return n
}

// NormalBefore returns the unit normal of the segment ending at point i,
// pointing to the declared outside.
func (s *Shape) NormalBefore(i int) Vec2 {
	n := s.DirectionBefore(i).Perp()
	if s.outSide == SideRight {
		return n.Neg()
	}
	return n
}

// FindRealOutSide computes the geometric outside of a closed shape from
// its orientation at the rightmost point: walking along a counter-clockwise
// contour the outside is on the right. A shape without segments keeps its
// declared outside.
func (s *Shape) FindRealOutSide() Side {
	if s.SegCount() == 0 {
		return s.outSide
	}
	x := s.points[0].X
	index := 0
	for i := 1; i < len(s.points); i++ {
		if x < s.points[i].X {
			x = s.points[i].X
			index = i
		}
	}
	alpha1 := UnitY2.AngleTo(s.DirectionAfter(index))
	alpha2 := UnitY2.AngleTo(s.DirectionBefore(index).Neg())
	if alpha1 < alpha2 {
		return SideRight
	}
	return SideLeft
}

// UnitY2 is the 2D unit vector along +Y.
var UnitY2 = Vec2{Y: 1}
