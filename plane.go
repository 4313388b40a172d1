package procedural

// PlaneGenerator builds a subdivided rectangle facing Normal, centred on
// MeshParams.Position.
type PlaneGenerator struct {
	MeshParams

	Normal  Vec3
	SizeX   float32
	SizeY   float32
	NumSegX int
	NumSegY int
}

// NewPlaneGenerator returns a 1x1 single-segment plane facing +Y.
func NewPlaneGenerator(opts ...MeshOption) *PlaneGenerator {
	return &PlaneGenerator{
		MeshParams: applyOptions(opts),
		Normal:     UnitY,
		SizeX:      1,
		SizeY:      1,
		NumSegX:    1,
		NumSegY:    1,
	}
}

// Validate checks that sizes and segment counts are positive and the
// normal is not null.
func (pg *PlaneGenerator) Validate() error {
	switch {
	case pg.NumSegX <= 0:
		return invalidParam("PlaneGenerator", "NumSegX", pg.NumSegX)
	case pg.NumSegY <= 0:
		return invalidParam("PlaneGenerator", "NumSegY", pg.NumSegY)
	case pg.SizeX <= 0:
		return invalidParam("PlaneGenerator", "SizeX", pg.SizeX)
	case pg.SizeY <= 0:
		return invalidParam("PlaneGenerator", "SizeY", pg.SizeY)
	case pg.Normal.IsZero():
		return invalidParam("PlaneGenerator", "Normal", pg.Normal)
	}
	return nil
}

// AddToTriangleBuffer implements Generator.
//
// The plane spans vX = perpendicular(Normal) and vY = Normal × vX, with
// (NumSegX+1)*(NumSegY+1) vertices laid out row by row along vX.
func (pg *PlaneGenerator) AddToTriangleBuffer(buf *TriangleBuffer) {
	mustValid(pg.Validate())

	buf.RebaseOffset()
	buf.EstimateVertexCount((pg.NumSegX + 1) * (pg.NumSegY + 1))
	buf.EstimateIndexCount(pg.NumSegX * pg.NumSegY * 6)

	normal := pg.Normal.Normalize()
	vX := normal.Perpendicular()
	vY := normal.Cross(vX)
	delta1 := vX.Mul(pg.SizeX / float32(pg.NumSegX))
	delta2 := vY.Mul(pg.SizeY / float32(pg.NumSegY))
	orig := vX.Mul(-0.5 * pg.SizeX).Sub(vY.Mul(0.5 * pg.SizeY))

	for i1 := 0; i1 <= pg.NumSegX; i1++ {
		for i2 := 0; i2 <= pg.NumSegY; i2++ {
			p := orig.Add(delta1.Mul(float32(i1))).Add(delta2.Mul(float32(i2)))
			pg.addPoint(buf, p, normal, float32(i1)/float32(pg.NumSegX), float32(i2)/float32(pg.NumSegY))
		}
	}

	// Wind each cell counter-clockwise as seen from the normal side.
	ccw := delta1.Cross(delta2).Dot(normal) > 0
	row := pg.NumSegY + 1
	offset := 0
	for n1 := 0; n1 < pg.NumSegX; n1++ {
		for n2 := 0; n2 < pg.NumSegY; n2++ {
			if ccw {
				buf.Triangle(offset, offset+row, offset+1)
				buf.Triangle(offset+1, offset+row, offset+row+1)
			} else {
				buf.Triangle(offset, offset+1, offset+row)
				buf.Triangle(offset+1, offset+row+1, offset+row)
			}
			offset++
		}
		offset++
	}

	Logger().Debug("procedural: plane generated",
		"normal", pg.Normal, "segments", pg.NumSegX*pg.NumSegY)
}
