package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Length returns the magnitude of the vector
func Length(v mgl64.Vec3) float64 {
	// conversions keep the compiler from fusing into FMA, so results are
	// the same on every architecture
	return math.Sqrt(float64(v[0]*v[0]) + float64(v[1]*v[1]) + float64(v[2]*v[2]))
}

// Normalize returns a unit vector in the same direction.
// Each component is divided by the length; a zero-length vector is
// returned unchanged.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	length := Length(v)
	if length == 0 {
		return v
	}
	return mgl64.Vec3{v[0] / length, v[1] / length, v[2] / length}
}

// Distance returns the distance between two points
func Distance(a, b mgl64.Vec3) float64 {
	return Length(a.Sub(b))
}

// TriangleArea calculates the area of the triangle spanned by three points
func TriangleArea(a, b, c mgl64.Vec3) float64 {
	return Length(b.Sub(a).Cross(c.Sub(a))) / 2.0
}

// TrianglePerimeter returns the sum of the three edge lengths
func TrianglePerimeter(a, b, c mgl64.Vec3) float64 {
	return Distance(a, b) + Distance(b, c) + Distance(c, a)
}
