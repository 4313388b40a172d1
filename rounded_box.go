package procedural

import "github.com/chewxy/math32"

// RoundedBoxGenerator builds a box whose edges and corners are rounded with
// radius ChamferSize.
//
// SizeX, SizeY and SizeZ are the extents of the flat faces. Each face is set
// back from the box centre by half the size plus ChamferSize, so the overall
// extent along X is SizeX + 2*ChamferSize. Eight sphere octants fill the
// corners and twelve quarter cylinders fill the edges. Patches share no
// indices: seams close because boundary vertices land on the same positions.
type RoundedBoxGenerator struct {
	MeshParams

	SizeX, SizeY, SizeZ       float32
	NumSegX, NumSegY, NumSegZ int
	ChamferSize               float32
	ChamferNumSeg             int
}

// NewRoundedBoxGenerator returns a unit box with a 0.1 chamfer.
func NewRoundedBoxGenerator(opts ...MeshOption) *RoundedBoxGenerator {
	return &RoundedBoxGenerator{
		MeshParams:    applyOptions(opts),
		SizeX:         1,
		SizeY:         1,
		SizeZ:         1,
		NumSegX:       1,
		NumSegY:       1,
		NumSegZ:       1,
		ChamferSize:   0.1,
		ChamferNumSeg: 8,
	}
}

// Validate checks that every size, segment count and the chamfer are positive.
func (rb *RoundedBoxGenerator) Validate() error {
	const name = "RoundedBoxGenerator"
	switch {
	case rb.NumSegX <= 0:
		return invalidParam(name, "NumSegX", rb.NumSegX)
	case rb.NumSegY <= 0:
		return invalidParam(name, "NumSegY", rb.NumSegY)
	case rb.NumSegZ <= 0:
		return invalidParam(name, "NumSegZ", rb.NumSegZ)
	case rb.ChamferNumSeg <= 0:
		return invalidParam(name, "ChamferNumSeg", rb.ChamferNumSeg)
	case rb.SizeX <= 0:
		return invalidParam(name, "SizeX", rb.SizeX)
	case rb.SizeY <= 0:
		return invalidParam(name, "SizeY", rb.SizeY)
	case rb.SizeZ <= 0:
		return invalidParam(name, "SizeZ", rb.SizeZ)
	case rb.ChamferSize <= 0:
		return invalidParam(name, "ChamferSize", rb.ChamferSize)
	}
	return nil
}

// AddToTriangleBuffer implements Generator.
func (rb *RoundedBoxGenerator) AddToTriangleBuffer(buf *TriangleBuffer) {
	mustValid(rb.Validate())

	addBoxFaces(buf, rb.MeshParams, Vec3{X: rb.SizeX, Y: rb.SizeY, Z: rb.SizeZ},
		rb.NumSegX, rb.NumSegY, rb.NumSegZ, rb.ChamferSize)

	for _, c := range [8][3]bool{
		{true, true, true},
		{true, true, false},
		{true, false, true},
		{true, false, false},
		{false, true, true},
		{false, true, false},
		{false, false, true},
		{false, false, false},
	} {
		rb.addCorner(buf, c[0], c[1], c[2])
	}

	// A zero component marks the axis the edge runs along.
	for _, e := range [12][3]int{
		{-1, -1, 0}, {-1, 1, 0}, {1, -1, 0}, {1, 1, 0},
		{-1, 0, -1}, {-1, 0, 1}, {1, 0, -1}, {1, 0, 1},
		{0, -1, -1}, {0, -1, 1}, {0, 1, -1}, {0, 1, 1},
	} {
		rb.addEdge(buf, e[0], e[1], e[2])
	}

	Logger().Debug("procedural: rounded box generated", "buffer", buf)
}

// addCorner emits the sphere octant at the corner selected by the signs.
// Rings step the polar angle from +Y, segments step the azimuth from +Z
// towards +X; both span a quarter turn in ChamferNumSeg steps.
func (rb *RoundedBoxGenerator) addCorner(buf *TriangleBuffer, xPositive, yPositive, zPositive bool) {
	buf.RebaseOffset()
	n := rb.ChamferNumSeg
	buf.EstimateVertexCount((n + 1) * (n + 1))
	buf.EstimateIndexCount(n * n * 6)

	offsetPosition := Vec3{
		X: sign(xPositive) * 0.5 * rb.SizeX,
		Y: sign(yPositive) * 0.5 * rb.SizeY,
		Z: sign(zPositive) * 0.5 * rb.SizeZ,
	}
	delta := math32.Pi / 2 / float32(n)

	var offsetRingAngle float32
	if !yPositive {
		offsetRingAngle = math32.Pi / 2
	}
	var offsetSegAngle float32
	switch {
	case xPositive && zPositive:
		offsetSegAngle = 0
	case !xPositive && zPositive:
		offsetSegAngle = 1.5 * math32.Pi
	case xPositive && !zPositive:
		offsetSegAngle = math32.Pi / 2
	default:
		offsetSegAngle = math32.Pi
	}

	offset := 0
	for ring := 0; ring <= n; ring++ {
		sinRing, cosRing := math32.Sincos(float32(ring)*delta + offsetRingAngle)
		r0 := rb.ChamferSize * sinRing
		y0 := rb.ChamferSize * cosRing
		for seg := 0; seg <= n; seg++ {
			sinSeg, cosSeg := math32.Sincos(float32(seg)*delta + offsetSegAngle)
			local := Vec3{X: r0 * sinSeg, Y: y0, Z: r0 * cosSeg}
			rb.addPoint(buf, local.Add(offsetPosition), local.Normalize(),
				float32(seg)/float32(n), float32(ring)/float32(n))

			if ring != n && seg != n {
				buf.Triangle(offset+n+2, offset, offset+n+1)
				buf.Triangle(offset+n+2, offset+1, offset)
			}
			offset++
		}
	}
}

// addEdge emits the quarter cylinder along the box edge selected by the
// signs; the zero component is the axis the cylinder runs along. The
// local frame is (vx, vy, vz) with vy the extrusion axis, vx and vz its
// anti-permutation and permutation flipped to point away from the box
// centre, and vy flipped if needed to keep the frame right-handed.
func (rb *RoundedBoxGenerator) addEdge(buf *TriangleBuffer, xPos, yPos, zPos int) {
	buf.RebaseOffset()

	centerPosition := Vec3{
		X: 0.5 * float32(xPos) * rb.SizeX,
		Y: 0.5 * float32(yPos) * rb.SizeY,
		Z: 0.5 * float32(zPos) * rb.SizeZ,
	}
	vy0 := Vec3{
		X: float32(1 - abs(xPos)),
		Y: float32(1 - abs(yPos)),
		Z: float32(1 - abs(zPos)),
	}
	vx0 := vy0.AntiPermute()
	vz0 := vy0.Permute()
	if vx0.Dot(centerPosition) < 0 {
		vx0 = vx0.Neg()
	}
	if vz0.Dot(centerPosition) < 0 {
		vz0 = vz0.Neg()
	}
	if vx0.Cross(vy0).Dot(vz0) < 0 {
		vy0 = vy0.Neg()
	}

	height := vy0.Dot(Vec3{X: rb.SizeX, Y: rb.SizeY, Z: rb.SizeZ})
	height = math32.Abs(height)
	var numSegHeight int
	switch {
	case xPos == 0:
		numSegHeight = rb.NumSegX
	case yPos == 0:
		numSegHeight = rb.NumSegY
	default:
		numSegHeight = rb.NumSegZ
	}

	n := rb.ChamferNumSeg
	buf.EstimateVertexCount((numSegHeight + 1) * (n + 1))
	buf.EstimateIndexCount(numSegHeight * n * 6)

	offsetPosition := centerPosition.Sub(vy0.Mul(0.5 * height))
	deltaAngle := math32.Pi / 2 / float32(n)
	deltaHeight := height / float32(numSegHeight)

	offset := 0
	for i := 0; i <= numSegHeight; i++ {
		for j := 0; j <= n; j++ {
			sin, cos := math32.Sincos(float32(j) * deltaAngle)
			radial := vx0.Mul(rb.ChamferSize * cos).Add(vz0.Mul(rb.ChamferSize * sin))
			p := radial.Add(vy0.Mul(float32(i) * deltaHeight)).Add(offsetPosition)
			rb.addPoint(buf, p, radial.Normalize(),
				float32(j)/float32(n), float32(i)/float32(numSegHeight))

			if i != numSegHeight && j != n {
				buf.Triangle(offset+n+2, offset, offset+n+1)
				buf.Triangle(offset+n+2, offset+1, offset)
			}
			offset++
		}
	}
}

func sign(positive bool) float32 {
	if positive {
		return 1
	}
	return -1
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
