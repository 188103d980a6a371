package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gosphere/pkg/geometry"
	"github.com/philipparndt/gosphere/pkg/mesh"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	A, B   int // vertex indices, A < B
	Length float64
}

// TriangleInfo contains information about a single triangle
type TriangleInfo struct {
	Index     int
	Indices   mesh.Triangle
	Area      float64
	Perimeter float64
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    mgl64.Vec3
	SurfaceArea   float64
	VertexCount   int
	IndexCount    int
	TriangleCount int
	// DegenerateCount is the number of triangles with zero area, such as
	// the ones collapsing into a pole.
	DegenerateCount int
	EdgeCount       int
	MinEdgeLength   float64
	MaxEdgeLength   float64
	AvgEdgeLength   float64
	// MinRadius and MaxRadius are the smallest and largest vertex distance
	// from the origin.
	MinRadius float64
	MaxRadius float64
}

type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// AnalyzeMesh performs a comprehensive analysis of a mesh.
// Edges shared by two triangles are counted once; zero-length edges are
// skipped.
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		VertexCount:   m.VertexCount(),
		IndexCount:    m.IndexCount(),
		TriangleCount: m.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	result.MinRadius = math.MaxFloat64
	for i := 0; i < m.VertexCount(); i++ {
		r := geometry.Length(m.Vertex(i))
		result.MinRadius = math.Min(result.MinRadius, r)
		result.MaxRadius = math.Max(result.MaxRadius, r)
	}
	if m.VertexCount() == 0 {
		result.MinRadius = 0
	}

	for _, info := range Triangles(m) {
		if info.Area == 0 {
			result.DegenerateCount++
		}
	}

	edges := Edges(m)
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, edge := range edges {
		totalLength += edge.Length
		if edge.Length < minLength {
			minLength = edge.Length
		}
		if edge.Length > maxLength {
			maxLength = edge.Length
		}
	}

	result.EdgeCount = len(edges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// Edges returns the unique, non-degenerate edges of the mesh ordered by
// vertex index
func Edges(m *mesh.Mesh) []EdgeInfo {
	seen := make(map[edgeKey]bool)
	var edges []EdgeInfo

	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		for j := 0; j < 3; j++ {
			key := newEdgeKey(tri[j], tri[(j+1)%3])
			if seen[key] {
				continue
			}
			seen[key] = true

			length := geometry.Distance(m.Vertex(key.a), m.Vertex(key.b))
			if length == 0 {
				continue
			}
			edges = append(edges, EdgeInfo{A: key.a, B: key.b, Length: length})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// Triangles returns area and perimeter of every triangle in mesh order
func Triangles(m *mesh.Mesh) []TriangleInfo {
	triangles := make([]TriangleInfo, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.TrianglePositions(i)
		triangles = append(triangles, TriangleInfo{
			Index:     i,
			Indices:   m.Triangle(i),
			Area:      geometry.TriangleArea(a, b, c),
			Perimeter: geometry.TrianglePerimeter(a, b, c),
		})
	}
	return triangles
}

// LargestTriangles returns the N triangles with the largest area
func LargestTriangles(m *mesh.Mesh, count int) []TriangleInfo {
	triangles := Triangles(m)
	sort.SliceStable(triangles, func(i, j int) bool {
		return triangles[i].Area > triangles[j].Area
	})
	return firstN(triangles, count)
}

// SmallestTriangles returns the N triangles with the smallest area
func SmallestTriangles(m *mesh.Mesh, count int) []TriangleInfo {
	triangles := Triangles(m)
	sort.SliceStable(triangles, func(i, j int) bool {
		return triangles[i].Area < triangles[j].Area
	})
	return firstN(triangles, count)
}

func firstN(triangles []TriangleInfo, count int) []TriangleInfo {
	if count < 0 {
		count = 0
	}
	if count > len(triangles) {
		count = len(triangles)
	}
	return triangles[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v[0], v[1], v[2])
}
