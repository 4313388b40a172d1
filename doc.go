// Package procedural generates indexed triangle meshes from parametric
// solids and classifies points against 2D outlines.
//
// # Overview
//
// Generators append their topology to a TriangleBuffer. Modifiers then
// post-process a filled buffer in place, and MeshData converts the result to
// the flat arrays a renderer uploads.
//
//	rb := procedural.NewRoundedBoxGenerator(procedural.WithUVTile(2, 2))
//	rb.SizeX, rb.SizeY, rb.SizeZ = 2, 1, 1
//	rb.ChamferSize = 0.2
//
//	buf := procedural.BuildTriangleBuffer(rb)
//	md, err := buf.MeshData()
//
// # Triangle buffers
//
// Every vertex is emitted as Position, then Normal, then one TextureCoord
// per UV channel. Indices are relative to the rebase offset: a generator
// calls RebaseOffset before each independent sub-mesh and numbers that
// sub-mesh's vertices from 0. Triangles are wound counter-clockwise when
// seen from the side the normals point to.
//
// # Shapes
//
// A Shape is a 2D polyline with a declared outside side. A MultiShape owns
// copies of several non-crossing shapes and answers IsPointInside by
// casting a horizontal line through the query point and looking at the
// nearest crossing.
//
// # Errors
//
// Invalid generator parameters are programming errors: AddToTriangleBuffer
// panics with an error wrapping ErrInvalidParameter. Call Validate first
// when parameters come from user input. Modifiers return ErrNoInputBuffer
// when run without a buffer.
//
// # Coordinate System
//
// Right-handed, Y up. Shapes live in the XY plane with Y up, so
// counter-clockwise contours have positive area.
package procedural
