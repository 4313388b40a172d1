package procedural

import "slices"

// Shape operations for area, orientation and affine transforms.

// Area returns the signed area enclosed by the closed shape using the
// shoelace formula. Positive for counter-clockwise contours (y up),
// negative for clockwise. Open shapes are treated as if closed.
func (s *Shape) Area() float32 {
	var area float32
	n := len(s.points)
	for i := range n {
		p0 := s.points[i]
		p1 := s.points[(i+1)%n]
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return area / 2
}

// IsClockwise reports whether the contour runs clockwise (y up).
func (s *Shape) IsClockwise() bool {
	return s.Area() < 0
}

// Transform applies m to every point. A transform that flips orientation
// also switches the declared outside so it keeps pointing the same way
// relative to the enclosed region.
func (s *Shape) Transform(m Matrix) *Shape {
	for i, p := range s.points {
		s.points[i] = m.TransformPoint(p)
	}
	if m.Determinant() < 0 {
		s.SwitchSide()
	}
	return s
}

// Translate moves every point by d.
func (s *Shape) Translate(d Vec2) *Shape {
	for i := range s.points {
		s.points[i] = s.points[i].Add(d)
	}
	return s
}

// Reverse reverses the point order and switches the declared outside, so
// the same region stays outside.
func (s *Shape) Reverse() *Shape {
	slices.Reverse(s.points)
	return s.SwitchSide()
}
