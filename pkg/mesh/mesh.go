package mesh

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gosphere/pkg/geometry"
)

// ErrIndexOutOfRange is returned by Validate when a triangle references a
// vertex that does not exist.
var ErrIndexOutOfRange = errors.New("vertex index out of range")

// Triangle is an ordered triple of 0-based vertex indices.
// The order defines the winding and therefore the front face.
type Triangle [3]int

// Mesh is an indexed triangle mesh with one normal per vertex.
// A Mesh is immutable once created.
type Mesh struct {
	vertices  []mgl64.Vec3
	triangles []Triangle
	normals   []mgl64.Vec3
}

// New creates a mesh from vertex positions and triangles.
// Normals are derived from the raw positions: every position is divided by
// its own length, so they point away from the origin. Vertices at the
// origin get a zero normal.
func New(vertices []mgl64.Vec3, triangles []Triangle) *Mesh {
	normals := make([]mgl64.Vec3, len(vertices))
	for i, v := range vertices {
		normals[i] = geometry.Normalize(v)
	}

	return &Mesh{
		vertices:  slices.Clone(vertices),
		triangles: slices.Clone(triangles),
		normals:   normals,
	}
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// IndexCount returns the number of triangle vertex indices (3 per triangle)
func (m *Mesh) IndexCount() int {
	return len(m.triangles) * 3
}

// Vertex returns the position of vertex i
func (m *Mesh) Vertex(i int) mgl64.Vec3 {
	return m.vertices[i]
}

// Normal returns the normal of vertex i
func (m *Mesh) Normal(i int) mgl64.Vec3 {
	return m.normals[i]
}

// Triangle returns triangle i
func (m *Mesh) Triangle(i int) Triangle {
	return m.triangles[i]
}

// Vertices returns a copy of the vertex positions
func (m *Mesh) Vertices() []mgl64.Vec3 {
	return slices.Clone(m.vertices)
}

// Normals returns a copy of the vertex normals
func (m *Mesh) Normals() []mgl64.Vec3 {
	return slices.Clone(m.normals)
}

// Triangles returns a copy of the triangle list
func (m *Mesh) Triangles() []Triangle {
	return slices.Clone(m.triangles)
}

// Indices returns the flattened triangle index list
func (m *Mesh) Indices() []int {
	indices := make([]int, 0, m.IndexCount())
	for _, tri := range m.triangles {
		indices = append(indices, tri[0], tri[1], tri[2])
	}
	return indices
}

// TrianglePositions returns the three corner positions of triangle i
func (m *Mesh) TrianglePositions(i int) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	tri := m.triangles[i]
	return m.vertices[tri[0]], m.vertices[tri[1]], m.vertices[tri[2]]
}

// Validate checks that every triangle index refers to an existing vertex
func (m *Mesh) Validate() error {
	if len(m.normals) != len(m.vertices) {
		return fmt.Errorf("normal count %d does not match vertex count %d", len(m.normals), len(m.vertices))
	}
	for i, tri := range m.triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.vertices) {
				return fmt.Errorf("triangle %d: index %d not in [0, %d): %w", i, idx, len(m.vertices), ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.vertices {
		bbox.Extend(v)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	totalArea := 0.0
	for i := range m.triangles {
		a, b, c := m.TrianglePositions(i)
		totalArea += geometry.TriangleArea(a, b, c)
	}
	return totalArea
}
