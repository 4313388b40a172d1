package procedural

import "github.com/chewxy/math32"

// MultiShape holds several shapes, typically an outline and its holes.
//
// Shapes are stored by value: AddShape and AddMultiShape copy their input,
// so later changes to the originals are not observed. Member shapes are
// assumed not to cross each other; crossings are not detected and make
// IsPointInside undefined.
type MultiShape struct {
	shapes []Shape
}

// NewMultiShape returns a MultiShape holding copies of shapes.
func NewMultiShape(shapes ...*Shape) *MultiShape {
	ms := &MultiShape{}
	for _, s := range shapes {
		ms.AddShape(s)
	}
	return ms
}

// AddShape appends a copy of s.
func (ms *MultiShape) AddShape(s *Shape) *MultiShape {
	ms.shapes = append(ms.shapes, *s.Clone())
	return ms
}

// Shape returns member shape i for in-place editing. i must lie in
// [0, ShapeCount()).
func (ms *MultiShape) Shape(i int) *Shape {
	return &ms.shapes[i]
}

// ShapeCount returns the number of member shapes.
func (ms *MultiShape) ShapeCount() int {
	return len(ms.shapes)
}

// Points returns the points of every shape, in shape order then point order.
func (ms *MultiShape) Points() []Vec2 {
	var n int
	for i := range ms.shapes {
		n += len(ms.shapes[i].points)
	}
	result := make([]Vec2, 0, n)
	for i := range ms.shapes {
		result = append(result, ms.shapes[i].points...)
	}
	return result
}

// AddMultiShape appends a copy of every shape of other, in other's order.
func (ms *MultiShape) AddMultiShape(other *MultiShape) *MultiShape {
	// Snapshot the count so ms.AddMultiShape(ms) doubles once.
	n := len(other.shapes)
	for i := range n {
		ms.AddShape(&other.shapes[i])
	}
	return ms
}

// IsPointInside reports whether point lies inside the region bounded by the
// member shapes. An empty MultiShape contains nothing.
func (ms *MultiShape) IsPointInside(point Vec2) bool {
	if len(ms.shapes) == 0 {
		return false
	}
	contours := make([]Contour, len(ms.shapes))
	for i := range ms.shapes {
		contours[i] = &ms.shapes[i]
	}
	return IsPointInside(contours, point)
}

// IsPointInside classifies point against a set of non-crossing contours.
//
// A horizontal line through point is intersected with every non-horizontal
// segment that straddles it. The crossing nearest to point decides: point
// is inside when it lies against the outward normal of that segment. On an
// exact distance tie the first crossing found wins. When nothing straddles
// the line, the declared outside of the first contour having a segment is
// compared with its geometric outside: if they agree the point is outside.
// Without any such contour nothing is inside.
func IsPointInside(contours []Contour, point Vec2) bool {
	closestSegment := -1
	closestDistance := float32(math32.MaxFloat32)
	var closestIntersection Vec2
	var closestContour Contour

	for _, c := range contours {
		for i := range c.SegCount() {
			a := c.Point(i)
			b := c.Point(i + 1)
			if a.Y == b.Y || (a.Y-point.Y)*(b.Y-point.Y) > 0 {
				continue
			}
			intersect := Vec2{
				X: a.X + (point.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y),
				Y: point.Y,
			}
			dist := math32.Abs(point.X - intersect.X)
			if dist < closestDistance {
				closestSegment = i
				closestDistance = dist
				closestIntersection = intersect
				closestContour = c
			}
		}
	}

	if closestSegment != -1 {
		return closestContour.NormalAfter(closestSegment).X*(point.X-closestIntersection.X) < 0
	}
	// Shapes must agree about the outside, so the first one with a
	// segment decides.
	for _, c := range contours {
		if c.SegCount() > 0 {
			return c.FindRealOutSide() != c.OutSide()
		}
	}
	return false
}
