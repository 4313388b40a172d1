package procedural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiers_RequireInput(t *testing.T) {
	modifiers := []struct {
		name string
		m    Modifier
	}{
		{"spherify", &SpherifyModifier{}},
		{"calculate normals", &CalculateNormalsModifier{}},
		{"weld", &WeldVerticesModifier{Tolerance: 1e-3}},
	}
	for _, tt := range modifiers {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Modify()
			require.ErrorIs(t, err, ErrNoInputBuffer)
			assert.Contains(t, err.Error(), "input triangle buffer must be set")
		})
	}
}

func TestSpherifyModifier(t *testing.T) {
	tb := BuildTriangleBuffer(newTestRoundedBox())
	indices := append([]int(nil), tb.Indices()...)
	count := tb.VertexCount()

	require.NoError(t, new(SpherifyModifier).SetInput(tb).Modify())

	assert.Equal(t, count, tb.VertexCount())
	assert.Equal(t, indices, tb.Indices(), "topology must not change")
	for i, v := range tb.Vertices() {
		assert.InDelta(t, 1, v.Position.Length(), 1e-5, "vertex %d", i)
		assert.True(t, v.Normal.Approx(v.Position, 1e-6), "vertex %d normal %v != position %v", i, v.Normal, v.Position)
	}
}

func TestSpherifyModifier_Idempotent(t *testing.T) {
	tb := BuildTriangleBuffer(NewBoxGenerator())
	m := &SpherifyModifier{Input: tb}
	require.NoError(t, m.Modify())
	once := append([]Vertex(nil), tb.Vertices()...)

	require.NoError(t, m.Modify())
	for i, v := range tb.Vertices() {
		assert.True(t, v.Position.Approx(once[i].Position, 1e-6), "vertex %d moved", i)
		assert.True(t, v.Normal.Approx(once[i].Normal, 1e-6), "vertex %d normal changed", i)
	}
}

func TestSpherifyModifier_LeavesOriginAlone(t *testing.T) {
	tb := NewTriangleBuffer()
	tb.PositionXYZ(0, 0, 0).Normal(UnitX).TextureCoord(0.5, 0.5)
	tb.PositionXYZ(5e-7, 0, 0).Normal(UnitY)
	tb.PositionXYZ(0, 3, 4).Normal(UnitZ)

	require.NoError(t, (&SpherifyModifier{Input: tb}).Modify())

	v := tb.Vertices()
	assert.Equal(t, Vertex{Position: Vec3{}, Normal: UnitX, UV: []Vec2{{0.5, 0.5}}}, v[0])
	assert.Equal(t, V3(5e-7, 0, 0), v[1].Position)
	assert.Equal(t, UnitY, v[1].Normal)
	assert.True(t, v[2].Position.Approx(V3(0, 0.6, 0.8), 1e-6))
	assert.True(t, v[2].Normal.Approx(V3(0, 0.6, 0.8), 1e-6))
}

func TestCalculateNormalsModifier(t *testing.T) {
	pg := NewPlaneGenerator(WithNormals(false))
	pg.Normal = V3(0, 0, -1)
	pg.NumSegX, pg.NumSegY = 2, 2
	tb := BuildTriangleBuffer(pg)

	require.NoError(t, (&CalculateNormalsModifier{Input: tb}).Modify())
	for i, v := range tb.Vertices() {
		assert.True(t, v.Normal.Approx(V3(0, 0, -1), 1e-5), "vertex %d normal %v", i, v.Normal)
	}
}

func TestCalculateNormalsModifier_Sphere(t *testing.T) {
	tb := BuildTriangleBuffer(NewSphereGenerator(WithNormals(false)))
	require.NoError(t, (&CalculateNormalsModifier{Input: tb}).Modify())

	unused := 0
	for i, v := range tb.Vertices() {
		if v.Normal.IsZero() {
			unused++
			continue
		}
		// Seam and pole vertices only see part of their neighbourhood.
		assert.Greater(t, v.Normal.Dot(v.Position), float32(0.5), "vertex %d", i)
	}
	// One duplicated pole vertex on each pole belongs to no triangle.
	assert.Equal(t, 2, unused)
}

func TestCalculateNormalsModifier_InvalidBuffer(t *testing.T) {
	tb := NewTriangleBuffer()
	tb.PositionXYZ(0, 0, 0)
	tb.Triangle(0, 1, 2)

	assert.ErrorIs(t, (&CalculateNormalsModifier{Input: tb}).Modify(), ErrIndexOutOfRange)
}

func TestWeldVerticesModifier_Box(t *testing.T) {
	tb := BuildTriangleBuffer(NewBoxGenerator())
	require.NoError(t, new(WeldVerticesModifier).SetInput(tb).Modify(), "zero tolerance welds nothing")
	assert.Equal(t, 24, tb.VertexCount())

	require.NoError(t, (&WeldVerticesModifier{Input: tb, Tolerance: 1e-4}).Modify())
	assert.Equal(t, 8, tb.VertexCount())
	assert.Equal(t, 12, tb.TriangleCount())
	assert.NoError(t, tb.Validate())
	for tri := range tb.TriangleCount() {
		assert.Greater(t, faceNormal(tb, tri).Dot(centroid(tb, tri)), float32(0))
	}
}

func TestWeldVerticesModifier_KeepsFirstOfCluster(t *testing.T) {
	tb := NewTriangleBuffer()
	tb.PositionXYZ(1, 0, 0).Normal(UnitX)
	tb.PositionXYZ(0, 0, 0).Normal(UnitY)
	tb.PositionXYZ(1, 0, 1e-5).Normal(UnitZ)
	tb.PositionXYZ(0, 1, 0)
	tb.Triangle(0, 1, 3).Triangle(2, 3, 1)

	require.NoError(t, (&WeldVerticesModifier{Input: tb, Tolerance: 1e-3}).Modify())

	require.Equal(t, 3, tb.VertexCount())
	assert.Equal(t, UnitX, tb.Vertices()[0].Normal)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 1}, tb.Indices())
}
