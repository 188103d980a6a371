package analysis

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gosphere/pkg/mesh"
	"github.com/philipparndt/gosphere/pkg/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *mesh.Mesh {
	return mesh.New(
		[]mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}},
		[]mesh.Triangle{{0, 1, 2}, {0, 2, 3}},
	)
}

func TestAnalyzeSquare(t *testing.T) {
	result := AnalyzeMesh(square())

	assert.Equal(t, 4, result.VertexCount)
	assert.Equal(t, 2, result.TriangleCount)
	assert.Equal(t, 6, result.IndexCount)
	assert.Equal(t, 5, result.EdgeCount) // 4 sides + shared diagonal
	assert.InDelta(t, 4.0, result.SurfaceArea, 1e-12)
	assert.InDelta(t, 2.0, result.MinEdgeLength, 1e-12)
	assert.InDelta(t, 2*math.Sqrt2, result.MaxEdgeLength, 1e-12)
	assert.Equal(t, mgl64.Vec3{2, 2, 0}, result.Dimensions)
	assert.Zero(t, result.DegenerateCount)
}

func TestAnalyzeSphere(t *testing.T) {
	m, err := sphere.Generate(sphere.DefaultParams())
	require.NoError(t, err)

	result := AnalyzeMesh(m)

	assert.Equal(t, 561, result.VertexCount)
	assert.Equal(t, 1024, result.TriangleCount)
	assert.InDelta(t, 1.0, result.MinRadius, 1e-9)
	assert.InDelta(t, 1.0, result.MaxRadius, 1e-9)
	assert.InDelta(t, 2.0, result.Dimensions[1], 1e-9)
	// area approaches 4*pi from below as the tessellation gets finer
	assert.Less(t, result.SurfaceArea, 4*math.Pi)
	assert.Greater(t, result.SurfaceArea, 0.98*4*math.Pi)
	// the north pole row collapses into one point
	assert.GreaterOrEqual(t, result.DegenerateCount, 32)
	assert.Greater(t, result.MinEdgeLength, 0.0)
}

func TestEdgesAreUnique(t *testing.T) {
	edges := Edges(square())

	require.Len(t, edges, 5)
	assert.Equal(t, EdgeInfo{A: 0, B: 1, Length: 2}, edges[0])
	for _, edge := range edges {
		assert.Less(t, edge.A, edge.B)
	}
}

func TestLargestAndSmallestTriangles(t *testing.T) {
	m := mesh.New(
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {3, 0, 0}, {0, 3, 0}},
		[]mesh.Triangle{{0, 1, 2}, {0, 3, 4}},
	)

	largest := LargestTriangles(m, 1)
	require.Len(t, largest, 1)
	assert.Equal(t, 1, largest[0].Index)
	assert.InDelta(t, 4.5, largest[0].Area, 1e-12)

	smallest := SmallestTriangles(m, 10)
	require.Len(t, smallest, 2)
	assert.Equal(t, 0, smallest[0].Index)
	assert.InDelta(t, 0.5, smallest[0].Area, 1e-12)
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "(1.000000, -0.500000, 0.333333)", FormatVector(mgl64.Vec3{1, -0.5, 1.0 / 3.0}))
	assert.Equal(t, "2.500000 units", FormatMeasurement(2.5, ""))
}
