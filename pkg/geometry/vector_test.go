package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLength(t *testing.T) {
	v := mgl64.Vec3{3, 4, 0}
	length := Length(v)

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestDistance(t *testing.T) {
	distance := Distance(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 4, 0})

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestNormalize(t *testing.T) {
	normalized := Normalize(mgl64.Vec3{3, 4, 0})

	expected := mgl64.Vec3{0.6, 0.8, 0}
	if !normalized.ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Normalize failed: expected %v, got %v", expected, normalized)
	}
	if math.Abs(Length(normalized)-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected unit length, got %v", Length(normalized))
	}
}

func TestNormalizeZero(t *testing.T) {
	normalized := Normalize(mgl64.Vec3{})

	if normalized != (mgl64.Vec3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", normalized)
	}
	for i, c := range normalized {
		if math.IsNaN(c) {
			t.Errorf("component %d is NaN", i)
		}
	}
}

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	area := TriangleArea(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 4, 0})

	expected := 6.0
	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTrianglePerimeter(t *testing.T) {
	perimeter := TrianglePerimeter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 4, 0})

	expected := 12.0 // 3 + 4 + 5
	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}
