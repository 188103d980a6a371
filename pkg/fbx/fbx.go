// Package fbx writes meshes as ASCII FBX 7.7 documents.
package fbx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/philipparndt/gosphere/pkg/mesh"
)

// ErrInvalidName is returned for object names that cannot be embedded in a
// quoted FBX string.
var ErrInvalidName = errors.New("invalid object name")

// Options controls the generated document
type Options struct {
	// Name is used for the Document, Model and Geometry objects.
	// Defaults to "UnitSphere".
	Name string
}

func (o Options) name() (string, error) {
	name := o.Name
	if name == "" {
		name = defaultObjectTag
	}
	if strings.ContainsRune(name, '"') || strings.ContainsFunc(name, unicode.IsControl) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

// Write writes the complete FBX document for m to w.
// Output stops at the first write error; whatever was written stays in w.
func Write(w io.Writer, m *mesh.Mesh, opts Options) error {
	name, err := opts.name()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	e := newEncoder(bw)

	e.header()
	e.globalSettings()
	e.documents(name)
	e.definitions()
	e.objects(name)
	e.connections()
	e.geometry(name, m)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write FBX document: %w", err)
	}
	return nil
}

// WriteFile creates (or truncates) the file at path and writes the document.
// The parent directory must exist.
func WriteFile(path string, m *mesh.Mesh, opts Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Write(file, m, opts)
}

// WriteArrays writes only the vertex, index and normal arrays, without the
// surrounding document. The output can be pasted into an existing
// Geometry block.
func WriteArrays(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	e := newEncoder(bw)

	e.vectorArray("Vertices", m.VertexCount(), m.Vertex)
	e.blank()
	e.triangleArray("PolygonVertexIndex", m.TriangleCount(), m.Triangle)
	e.blank()
	e.vectorArray("Normals", m.VertexCount(), m.Normal)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write arrays: %w", err)
	}
	return nil
}

// geometry writes the mesh data. Every polygon is a triangle, so the
// PolygonVertexIndex entries are plain indices without end markers.
func (e *encoder) geometry(name string, m *mesh.Mesh) {
	e.open("Geometry", quoted("Geometry::"+name))
	e.properties(geometryProperties)
	e.vectorArray("Vertices", m.VertexCount(), m.Vertex)
	e.triangleArray("PolygonVertexIndex", m.TriangleCount(), m.Triangle)
	e.open("Edges", "*0")
	e.close()
	e.intField("GeometryVersion", geometryVersion)
	e.open("LayerElementNormal", "0")
	e.vectorArray("Normals", m.VertexCount(), m.Normal)
	e.close()
	e.close()
}
