package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gosphere/pkg/fbx"
	"github.com/philipparndt/gosphere/pkg/sphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func expectedDocument(t *testing.T, p sphere.Params, name string) string {
	t.Helper()
	m, err := sphere.Generate(p)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, fbx.Write(&buf, m, fbx.Options{Name: name}))
	return buf.String()
}

func TestGenerateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Ball.fbx")

	stdout, _, err := execute(t, "generate", "-o", path, "--lat", "4", "--lon", "8", "-r", "2", "-n", "Ball")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Generated sphere with 45 vertices and 192 indices (64 triangles)")
	assert.Contains(t, stdout, "Ball.fbx created successfully!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := expectedDocument(t, sphere.Params{Radius: 2, LatitudeSegments: 4, LongitudeSegments: 8}, "Ball")
	assert.Equal(t, expected, string(data))
}

func TestRootDefaultsToGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "UnitSphere.fbx")

	stdout, _, err := execute(t, "-o", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Generated sphere with 561 vertices and 3072 indices (1024 triangles)")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expectedDocument(t, sphere.DefaultParams(), "UnitSphere"), string(data))
}

func TestGenerateToStdout(t *testing.T) {
	stdout, stderr, err := execute(t, "generate", "-o", "-", "--lat", "2", "--lon", "3")
	require.NoError(t, err)

	assert.Equal(t, expectedDocument(t, sphere.Params{Radius: 1, LatitudeSegments: 2, LongitudeSegments: 3}, "UnitSphere"), stdout)
	assert.Contains(t, stderr, "Generated sphere with 12 vertices and 36 indices (12 triangles)")
}

func TestGenerateMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "UnitSphere.fbx")

	_, _, err := execute(t, "generate", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create file")
}

func TestGenerateRejectsInvalidParameters(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"--radius", "0"},
		{"--radius", "-1"},
		{"--lat", "0"},
		{"--lon", "-3"},
	} {
		path := filepath.Join(dir, "out.fbx")
		_, _, err := execute(t, append([]string{"generate", "-o", path}, args...)...)
		require.Error(t, err, "args %v", args)
		assert.Contains(t, err.Error(), "invalid sphere parameters")

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no file should be written for %v", args)
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "planet.fbx")
	configPath := filepath.Join(dir, "sphere.yaml")
	content := "radius: 3\nlatitude_segments: 3\nlongitude_segments: 5\nname: Planet\noutput: " + output + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	_, _, err := execute(t, "generate", "-c", configPath, "--lon", "6")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	expected := expectedDocument(t, sphere.Params{Radius: 3, LatitudeSegments: 3, LongitudeSegments: 6}, "Planet")
	assert.Equal(t, expected, string(data))
}

func TestDump(t *testing.T) {
	stdout, _, err := execute(t, "dump", "--lat", "1", "--lon", "1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Vertices: *4 {\n    a: 0.000000, 1.000000, 0.000000,\n"))
	assert.Contains(t, stdout, "PolygonVertexIndex: *6 {\n    a: 0, 2, 1,\n    a: 2, 3, 1,\n}\n")
	assert.Contains(t, stdout, "Normals: *4 {\n")
}

func TestInfo(t *testing.T) {
	stdout, _, err := execute(t, "info", "--lat", "4", "--lon", "8", "--name", "Probe")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Name: Probe\n")
	assert.Contains(t, stdout, "  Vertices: 45\n")
	assert.Contains(t, stdout, "  Indices: 192\n")
	assert.Contains(t, stdout, "  Triangles: 64 (8 degenerate)\n")
	assert.Contains(t, stdout, "  Maximum: 1.000000 units\n")
}

func TestTriangles(t *testing.T) {
	stdout, _, err := execute(t, "triangles", "--lat", "2", "--lon", "4", "-N", "2")
	require.NoError(t, err)

	assert.Contains(t, stdout, "First 2 Triangles\n")
	assert.Contains(t, stdout, "Total triangles: 16\n")
	assert.Contains(t, stdout, "Triangle #0:\n  Indices: 0, 5, 1\n")
	assert.Contains(t, stdout, "Triangle #1:\n  Indices: 5, 6, 1\n")
	assert.NotContains(t, stdout, "Triangle #2:")
}

func TestTrianglesFlagsAreExclusive(t *testing.T) {
	_, _, err := execute(t, "triangles", "--largest", "--smallest")
	assert.Error(t, err)
}
