// Package config loads sphere generation settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/gosphere/pkg/sphere"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax
type Format int

const (
	TOML Format = iota
	YAML
)

// ErrUnknownFormat is returned for files whose extension is neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// DefaultOutput is where the document is written unless configured otherwise
const DefaultOutput = "assets/UnitSphere.fbx"

// Config holds everything needed for one generation run
type Config struct {
	Radius            float64 `toml:"radius" yaml:"radius"`
	LatitudeSegments  int     `toml:"latitude_segments" yaml:"latitude_segments"`
	LongitudeSegments int     `toml:"longitude_segments" yaml:"longitude_segments"`
	Name              string  `toml:"name" yaml:"name"`
	// Output is a file path, or "-" for standard output.
	Output string `toml:"output" yaml:"output"`
}

// Default returns the settings of the unit sphere
func Default() Config {
	p := sphere.DefaultParams()
	return Config{
		Radius:            p.Radius,
		LatitudeSegments:  p.LatitudeSegments,
		LongitudeSegments: p.LongitudeSegments,
		Name:              "UnitSphere",
		Output:            DefaultOutput,
	}
}

// Params returns the tessellation parameters
func (c Config) Params() sphere.Params {
	return sphere.Params{
		Radius:            c.Radius,
		LatitudeSegments:  c.LatitudeSegments,
		LongitudeSegments: c.LongitudeSegments,
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads a config file. Keys missing from the file keep their default
// values; unknown keys are an error.
func Load(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand path %s: %w", path, err)
	}

	format, err := FormatFromPath(expanded)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config data on top of the defaults
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return Config{}, ErrUnknownFormat
	}

	return cfg, nil
}

// OutputPath returns the output path with a leading ~ expanded.
// Standard output ("-") is returned unchanged.
func (c Config) OutputPath() (string, error) {
	if c.Output == "-" {
		return c.Output, nil
	}
	return homedir.Expand(c.Output)
}
