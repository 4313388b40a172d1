package main

import (
	"fmt"

	"github.com/gogpu/procedural"
	"github.com/gogpu/procedural/internal/meshcache"
	"gopkg.in/yaml.v3"
)

// Result is a built scene.
type Result struct {
	Buffer  *procedural.TriangleBuffer
	Mesh    *procedural.MeshData
	Shapes  *procedural.MultiShape
	Queries []Query
	// Reused counts solids taken from the cache instead of regenerated.
	Reused int
}

// Query is a classified query point.
type Query struct {
	Point  procedural.Vec2
	Inside bool
}

// Builder turns scenes into meshes. Solids are cached by their
// configuration, so rebuilding a scene only regenerates what changed.
type Builder struct {
	cache *meshcache.Cache[string, *procedural.TriangleBuffer]
}

// NewBuilder returns a Builder keeping up to limit generated solids.
func NewBuilder(limit int) *Builder {
	return &Builder{cache: meshcache.New[string, *procedural.TriangleBuffer](limit)}
}

// Build generates every solid into one buffer, assembles the shapes and
// classifies the query points.
func (b *Builder) Build(scene *Scene) (*Result, error) {
	res := &Result{Buffer: procedural.NewTriangleBuffer()}
	for i, sc := range scene.Solids {
		key, err := solidKey(sc, scene.Mesh)
		if err != nil {
			return nil, fmt.Errorf("solid %d: %w", i, err)
		}
		part, hit, err := b.cache.GetOrBuild(key, func() (*procedural.TriangleBuffer, error) {
			return buildSolid(sc, scene.Mesh)
		})
		if err != nil {
			return nil, fmt.Errorf("solid %d: %w", i, err)
		}
		if hit {
			res.Reused++
		}
		res.Buffer.Append(part)
	}

	md, err := res.Buffer.MeshData()
	if err != nil {
		return nil, err
	}
	res.Mesh = md

	res.Shapes = procedural.NewMultiShape()
	for i, sc := range scene.Shapes {
		s, err := sc.Shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		res.Shapes.AddShape(s)
	}

	for i, q := range scene.Query {
		if len(q) != 2 {
			return nil, fmt.Errorf("query %d: %w: want 2 coordinates, got %d", i, procedural.ErrInvalidParameter, len(q))
		}
		p := procedural.V2(q[0], q[1])
		res.Queries = append(res.Queries, Query{Point: p, Inside: res.Shapes.IsPointInside(p)})
	}

	procedural.Logger().Debug("meshgen: scene built",
		"solids", len(scene.Solids), "reused", res.Reused, "buffer", res.Buffer)
	return res, nil
}

// Build builds scene without keeping anything for later rebuilds.
func Build(scene *Scene) (*Result, error) {
	return NewBuilder(0).Build(scene)
}

func buildSolid(sc SolidConfig, mesh MeshConfig) (*procedural.TriangleBuffer, error) {
	g, err := sc.Generator(mesh)
	if err != nil {
		return nil, err
	}
	buf := procedural.BuildTriangleBuffer(g)
	if sc.Spherify {
		if err := new(procedural.SpherifyModifier).SetInput(buf).Modify(); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// solidKey identifies a solid by its full configuration, including the
// shared mesh settings it is generated with.
func solidKey(sc SolidConfig, mesh MeshConfig) (string, error) {
	data, err := yaml.Marshal(struct {
		Solid SolidConfig `yaml:"solid"`
		Mesh  MeshConfig  `yaml:"mesh"`
	}{sc, mesh})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
