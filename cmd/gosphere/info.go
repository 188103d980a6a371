package main

import (
	"fmt"

	"github.com/philipparndt/gosphere/pkg/analysis"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display information about the generated sphere",
		Long:  "Show counts, dimensions, surface area and edge statistics of the sphere without writing a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			m, err := generate(cfg)
			if err != nil {
				return err
			}

			result := analysis.AnalyzeMesh(m)
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "Sphere Information")
			fmt.Fprintln(w, "==================")
			fmt.Fprintf(w, "Name: %s\n", cfg.Name)
			fmt.Fprintf(w, "Radius: %.6f\n", cfg.Radius)
			fmt.Fprintf(w, "Segments: %d latitude x %d longitude\n\n", cfg.LatitudeSegments, cfg.LongitudeSegments)

			fmt.Fprintln(w, "Mesh Statistics:")
			fmt.Fprintf(w, "  Vertices: %d\n", result.VertexCount)
			fmt.Fprintf(w, "  Indices: %d\n", result.IndexCount)
			fmt.Fprintf(w, "  Triangles: %d (%d degenerate)\n", result.TriangleCount, result.DegenerateCount)
			fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
			fmt.Fprintf(w, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

			fmt.Fprintln(w, "Bounding Box:")
			fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
			fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
			fmt.Fprintf(w, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
			fmt.Fprintf(w, "  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))

			fmt.Fprintln(w, "Vertex Distance From Origin:")
			fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinRadius, ""))
			fmt.Fprintf(w, "  Maximum: %s\n\n", analysis.FormatMeasurement(result.MaxRadius, ""))

			fmt.Fprintln(w, "Edge Lengths:")
			fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, ""))
			fmt.Fprintf(w, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, ""))
			fmt.Fprintf(w, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, ""))
			return nil
		},
	}
}
