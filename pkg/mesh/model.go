// Package mesh holds the triangulated roof surface and its construction
// paths. A Model is immutable once built; viewer sessions own exactly
// one at a time and replace it wholesale on reload.
package mesh

import (
	"github.com/rooflens/roofmesh/pkg/geometry"
)

// Model is a triangulated 3D surface in model-space coordinates
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromBuffers builds a model from flat vertex position and triangle
// index buffers, the layout external loaders hand over. Faces whose
// indices do not resolve to a valid vertex are skipped rather than
// failing the whole mesh.
func FromBuffers(name string, positions []float64, indices []int) *Model {
	model := NewModel(name)
	vertexCount := len(positions) / 3

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= vertexCount || i1 >= vertexCount || i2 >= vertexCount {
			continue
		}

		v1 := geometry.NewVector3(positions[i0*3], positions[i0*3+1], positions[i0*3+2])
		v2 := geometry.NewVector3(positions[i1*3], positions[i1*3+1], positions[i1*3+2])
		v3 := geometry.NewVector3(positions[i2*3], positions[i2*3+1], positions[i2*3+2])

		triangle := geometry.Triangle{V1: v1, V2: v2, V3: v3}
		triangle.Normal = triangle.CalculateNormal()
		model.AddTriangle(triangle)
	}

	return model
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area in model units.
// Degenerate faces contribute zero; the result is never negative.
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// FaceArea returns the area of a single face in model units, or 0 for
// an out-of-range index
func (m *Model) FaceArea(face int) float64 {
	if face < 0 || face >= len(m.Triangles) {
		return 0
	}
	return m.Triangles[face].Area()
}
