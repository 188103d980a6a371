// Package sphere generates UV sphere meshes from a latitude/longitude grid.
package sphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gosphere/pkg/mesh"
)

var (
	// ErrInvalidRadius is returned for a radius that is not a positive finite number
	ErrInvalidRadius = errors.New("radius must be a positive finite number")
	// ErrInvalidSegments is returned when a segment count is below 1
	ErrInvalidSegments = errors.New("segment count must be at least 1")
)

// Params describes a UV sphere
type Params struct {
	Radius            float64
	LatitudeSegments  int
	LongitudeSegments int
}

// DefaultParams returns a unit sphere with 16 latitude and 32 longitude segments
func DefaultParams() Params {
	return Params{
		Radius:            1.0,
		LatitudeSegments:  16,
		LongitudeSegments: 32,
	}
}

// Validate checks that the parameters describe a non-degenerate sphere
func (p Params) Validate() error {
	if math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) || p.Radius <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, p.Radius)
	}
	if p.LatitudeSegments < 1 {
		return fmt.Errorf("latitude: %w: %d", ErrInvalidSegments, p.LatitudeSegments)
	}
	if p.LongitudeSegments < 1 {
		return fmt.Errorf("longitude: %w: %d", ErrInvalidSegments, p.LongitudeSegments)
	}
	return nil
}

// VertexCount returns the number of vertices Tessellate produces
func (p Params) VertexCount() int {
	return (p.LatitudeSegments + 1) * (p.LongitudeSegments + 1)
}

// IndexCount returns the number of triangle indices Tessellate produces
func (p Params) IndexCount() int {
	return p.LatitudeSegments * p.LongitudeSegments * 6
}

// Tessellate samples the sphere on a (lat+1) x (lon+1) grid and returns the
// vertex positions and two triangles per grid cell.
//
// Row lat has polar angle theta = lat*pi/latSegments measured from +Y, column
// lon has azimuth phi = lon*2*pi/lonSegments. The last column repeats the
// first one as a seam. Arguments are not validated; use Generate for that.
func Tessellate(radius float64, latSegments, lonSegments int) ([]mgl64.Vec3, []mesh.Triangle) {
	vertices := make([]mgl64.Vec3, 0, (latSegments+1)*(lonSegments+1))
	for lat := 0; lat <= latSegments; lat++ {
		theta := float64(lat) * math.Pi / float64(latSegments)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for lon := 0; lon <= lonSegments; lon++ {
			phi := float64(lon*2) * math.Pi / float64(lonSegments)
			sinPhi := math.Sin(phi)
			cosPhi := math.Cos(phi)

			vertices = append(vertices, mgl64.Vec3{
				radius * cosPhi * sinTheta,
				radius * cosTheta,
				radius * sinPhi * sinTheta,
			})
		}
	}

	triangles := make([]mesh.Triangle, 0, latSegments*lonSegments*2)
	for lat := 0; lat < latSegments; lat++ {
		for lon := 0; lon < lonSegments; lon++ {
			first := lat*(lonSegments+1) + lon
			second := first + lonSegments + 1

			triangles = append(triangles,
				mesh.Triangle{first, second, first + 1},
				mesh.Triangle{second, second + 1, first + 1},
			)
		}
	}

	return vertices, triangles
}

// Generate validates the parameters and builds the sphere mesh
func Generate(p Params) (*mesh.Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	vertices, triangles := Tessellate(p.Radius, p.LatitudeSegments, p.LongitudeSegments)
	return mesh.New(vertices, triangles), nil
}
