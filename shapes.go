package procedural

import "github.com/chewxy/math32"

// RectangleShape returns a closed counter-clockwise rectangle of the given
// size centred on the origin, outside on the right.
func RectangleShape(width, height float32) *Shape {
	w, h := width/2, height/2
	return NewShape(V2(-w, -h), V2(w, -h), V2(w, h), V2(-w, h)).Close()
}

// CircleShape returns a closed counter-clockwise polygon approximating a
// circle of radius r with numSeg segments, outside on the right.
func CircleShape(r float32, numSeg int) *Shape {
	return RegularPolygonShape(numSeg, r, 0)
}

// RegularPolygonShape returns a closed counter-clockwise regular polygon with
// n sides inscribed in a circle of radius r, first vertex at angle rotation.
func RegularPolygonShape(n int, r, rotation float32) *Shape {
	s := NewShape()
	angle := 2 * math32.Pi / float32(n)
	for i := range n {
		sin, cos := math32.Sincos(rotation + angle*float32(i))
		s.AddPointXY(r*cos, r*sin)
	}
	return s.Close()
}
