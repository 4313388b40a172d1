package procedural

import "github.com/chewxy/math32"

// SphereGenerator builds a UV sphere centred on MeshParams.Position.
type SphereGenerator struct {
	MeshParams

	Radius      float32
	NumRings    int
	NumSegments int
}

// NewSphereGenerator returns a unit sphere with 16 rings and 16 segments.
func NewSphereGenerator(opts ...MeshOption) *SphereGenerator {
	return &SphereGenerator{
		MeshParams:  applyOptions(opts),
		Radius:      1,
		NumRings:    16,
		NumSegments: 16,
	}
}

// Validate checks that the radius and tessellation counts are positive.
func (sg *SphereGenerator) Validate() error {
	switch {
	case sg.Radius <= 0:
		return invalidParam("SphereGenerator", "Radius", sg.Radius)
	case sg.NumRings <= 0:
		return invalidParam("SphereGenerator", "NumRings", sg.NumRings)
	case sg.NumSegments <= 0:
		return invalidParam("SphereGenerator", "NumSegments", sg.NumSegments)
	}
	return nil
}

// AddToTriangleBuffer implements Generator. The pole triangles that would
// collapse to a point are skipped.
func (sg *SphereGenerator) AddToTriangleBuffer(buf *TriangleBuffer) {
	mustValid(sg.Validate())

	buf.RebaseOffset()
	buf.EstimateVertexCount((sg.NumRings + 1) * (sg.NumSegments + 1))
	buf.EstimateIndexCount(sg.NumRings * (sg.NumSegments + 1) * 6)

	deltaRing := math32.Pi / float32(sg.NumRings)
	deltaSeg := 2 * math32.Pi / float32(sg.NumSegments)
	n := sg.NumSegments

	offset := 0
	for ring := 0; ring <= sg.NumRings; ring++ {
		sinRing, cosRing := math32.Sincos(float32(ring) * deltaRing)
		r0 := sg.Radius * sinRing
		y0 := sg.Radius * cosRing
		for seg := 0; seg <= n; seg++ {
			sinSeg, cosSeg := math32.Sincos(float32(seg) * deltaSeg)
			p := Vec3{X: r0 * sinSeg, Y: y0, Z: r0 * cosSeg}
			sg.addPoint(buf, p, p.Normalize(),
				float32(seg)/float32(n), float32(ring)/float32(sg.NumRings))

			if ring != sg.NumRings && seg != n {
				if ring != sg.NumRings-1 {
					buf.Triangle(offset+n+2, offset, offset+n+1)
				}
				if ring != 0 {
					buf.Triangle(offset+n+2, offset+1, offset)
				}
			}
			offset++
		}
	}

	Logger().Debug("procedural: sphere generated", "buffer", buf)
}
