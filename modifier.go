package procedural

import (
	"cmp"
	"fmt"
	"slices"
)

// Modifier post-processes a filled TriangleBuffer in place.
type Modifier interface {
	Modify() error
}

// spherifyEpsilon is the length under which a vertex is left where it is.
const spherifyEpsilon = 1e-6

// SpherifyModifier projects every vertex radially onto the unit sphere and
// sets its normal to the projected position. Vertices within 1e-6 of the
// origin are left unchanged. Applying it twice gives the same result as
// applying it once.
type SpherifyModifier struct {
	Input *TriangleBuffer
}

// SetInput attaches the buffer to modify.
func (m *SpherifyModifier) SetInput(tb *TriangleBuffer) *SpherifyModifier {
	m.Input = tb
	return m
}

// Modify implements Modifier.
func (m *SpherifyModifier) Modify() error {
	if m.Input == nil {
		return fmt.Errorf("SpherifyModifier.Modify: %w", ErrNoInputBuffer)
	}
	vertices := m.Input.Vertices()
	for i := range vertices {
		v := &vertices[i]
		l := v.Position.Length()
		if l > spherifyEpsilon {
			v.Position = v.Position.Div(l)
			v.Normal = v.Position
		}
	}
	return nil
}

// CalculateNormalsModifier recomputes smooth vertex normals as the
// area-weighted sum of the normals of the triangles using each vertex.
// Vertices used by no triangle, or only by degenerate ones, keep a zero
// normal.
type CalculateNormalsModifier struct {
	Input *TriangleBuffer
}

// SetInput attaches the buffer to modify.
func (m *CalculateNormalsModifier) SetInput(tb *TriangleBuffer) *CalculateNormalsModifier {
	m.Input = tb
	return m
}

// Modify implements Modifier. It fails on a buffer whose indices do not
// validate.
func (m *CalculateNormalsModifier) Modify() error {
	if m.Input == nil {
		return fmt.Errorf("CalculateNormalsModifier.Modify: %w", ErrNoInputBuffer)
	}
	if err := m.Input.Validate(); err != nil {
		return fmt.Errorf("CalculateNormalsModifier.Modify: %w", err)
	}
	vertices := m.Input.Vertices()
	indices := m.Input.Indices()
	for i := range vertices {
		vertices[i].Normal = Vec3{}
	}
	for t := 0; t+2 < len(indices); t += 3 {
		a := &vertices[indices[t]]
		b := &vertices[indices[t+1]]
		c := &vertices[indices[t+2]]
		// Unnormalized: its length is twice the triangle area.
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		a.Normal = a.Normal.Add(n)
		b.Normal = b.Normal.Add(n)
		c.Normal = c.Normal.Add(n)
	}
	for i := range vertices {
		vertices[i].Normal = vertices[i].Normal.Normalize()
	}
	return nil
}

// WeldVerticesModifier merges vertices whose positions differ by less than
// Tolerance on every axis. The first vertex of each cluster, in buffer
// order, survives with its normal and texture coordinates; indices are
// remapped onto the survivors.
type WeldVerticesModifier struct {
	Input     *TriangleBuffer
	Tolerance float32
}

// SetInput attaches the buffer to modify.
func (m *WeldVerticesModifier) SetInput(tb *TriangleBuffer) *WeldVerticesModifier {
	m.Input = tb
	return m
}

// Modify implements Modifier.
func (m *WeldVerticesModifier) Modify() error {
	if m.Input == nil {
		return fmt.Errorf("WeldVerticesModifier.Modify: %w", ErrNoInputBuffer)
	}
	if err := m.Input.Validate(); err != nil {
		return fmt.Errorf("WeldVerticesModifier.Modify: %w", err)
	}
	tb := m.Input
	n := len(tb.vertices)

	// Sweep along X so only vertices within Tolerance in X are compared.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(tb.vertices[a].Position.X, tb.vertices[b].Position.X)
	})

	// Union-find over matching pairs; each root is the lowest index of its cluster.
	rep := make([]int, n)
	for i := range rep {
		rep[i] = i
	}
	find := func(i int) int {
		for rep[i] != i {
			rep[i] = rep[rep[i]]
			i = rep[i]
		}
		return i
	}
	for k, vi := range order {
		p := tb.vertices[vi].Position
		for j := k - 1; j >= 0; j-- {
			q := tb.vertices[order[j]].Position
			if p.X-q.X >= m.Tolerance {
				break
			}
			if !p.Approx(q, m.Tolerance) {
				continue
			}
			ra, rb := find(vi), find(order[j])
			if ra < rb {
				rep[rb] = ra
			} else if rb < ra {
				rep[ra] = rb
			}
		}
	}
	for i := range rep {
		rep[i] = find(i)
	}

	newIndex := make([]int, n)
	kept := make([]Vertex, 0, n)
	for i := range n {
		if rep[i] == i {
			newIndex[i] = len(kept)
			kept = append(kept, tb.vertices[i])
		}
	}
	for i := range n {
		newIndex[i] = newIndex[rep[i]]
	}
	for i, idx := range tb.indices {
		tb.indices[i] = newIndex[idx]
	}
	tb.vertices = kept
	tb.offset = min(tb.offset, len(kept))

	Logger().Debug("procedural: vertices welded", "before", n, "after", len(kept))
	return nil
}
