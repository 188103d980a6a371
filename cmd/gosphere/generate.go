package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/philipparndt/gosphere/internal/config"
	"github.com/philipparndt/gosphere/pkg/fbx"
	"github.com/philipparndt/gosphere/pkg/mesh"
	"github.com/philipparndt/gosphere/pkg/sphere"
	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sphere and write it as an FBX file",
		Long: `Generate a UV sphere and write the FBX document to the output path.
The output directory must already exist. Use "-o -" to write to standard
output; the summary then goes to standard error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, `Output file, "-" for standard output`)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	output, err := cfg.OutputPath()
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	m, err := generate(cfg)
	if err != nil {
		return err
	}

	report := cmd.OutOrStdout()
	if output == "-" {
		report = cmd.ErrOrStderr()
	}
	printSummary(report, m)

	if output == "-" {
		err = fbx.Write(cmd.OutOrStdout(), m, fbx.Options{Name: cfg.Name})
	} else {
		err = fbx.WriteFile(output, m, fbx.Options{Name: cfg.Name})
	}
	if err != nil {
		return err
	}
	slog.Info("wrote FBX document", "output", output, "name", cfg.Name)

	if output != "-" {
		printSuccess(report, filepath.Base(output))
	}
	return nil
}

// generate builds the mesh described by cfg
func generate(cfg config.Config) (*mesh.Mesh, error) {
	p := cfg.Params()
	m, err := sphere.Generate(p)
	if err != nil {
		return nil, fmt.Errorf("invalid sphere parameters: %w", err)
	}

	slog.Debug("tessellated sphere",
		"radius", p.Radius,
		"latitude_segments", p.LatitudeSegments,
		"longitude_segments", p.LongitudeSegments,
		"vertices", m.VertexCount(),
		"indices", m.IndexCount())
	return m, nil
}

func printSummary(w io.Writer, m *mesh.Mesh) {
	out := termenv.NewOutput(w)
	line := fmt.Sprintf("Generated sphere with %d vertices and %d indices (%d triangles)",
		m.VertexCount(), m.IndexCount(), m.TriangleCount())
	fmt.Fprintln(w, out.String(line).Bold())
}

func printSuccess(w io.Writer, file string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String(file+" created successfully!").Foreground(out.Color("2")))
}
