package main

import (
	"fmt"

	"github.com/philipparndt/gosphere/pkg/analysis"
	"github.com/spf13/cobra"
)

func newTrianglesCmd(opts *options) *cobra.Command {
	var (
		count    int
		largest  bool
		smallest bool
	)

	cmd := &cobra.Command{
		Use:   "triangles",
		Short: "Analyze triangles of the generated sphere",
		Long:  "Display area, perimeter and vertex indices of the sphere's triangles.",
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

			var (
				title     string
				triangles []analysis.TriangleInfo
			)
			switch {
			case largest:
				title = fmt.Sprintf("Top %d Largest Triangles", count)
				triangles = analysis.LargestTriangles(m, count)
			case smallest:
				title = fmt.Sprintf("Top %d Smallest Triangles", count)
				triangles = analysis.SmallestTriangles(m, count)
			default:
				title = fmt.Sprintf("First %d Triangles", count)
				all := analysis.Triangles(m)
				triangles = all[:min(max(count, 0), len(all))]
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, title)
			fmt.Fprintln(w, "====================")
			fmt.Fprintf(w, "Total triangles: %d\n", m.TriangleCount())
			fmt.Fprintf(w, "Total surface area: %.6f square units\n\n", m.SurfaceArea())

			for _, tri := range triangles {
				a, b, c := m.TrianglePositions(tri.Index)
				fmt.Fprintf(w, "Triangle #%d:\n", tri.Index)
				fmt.Fprintf(w, "  Indices: %d, %d, %d\n", tri.Indices[0], tri.Indices[1], tri.Indices[2])
				fmt.Fprintf(w, "  Area: %.6f square units\n", tri.Area)
				fmt.Fprintf(w, "  Perimeter: %.6f units\n", tri.Perimeter)
				fmt.Fprintf(w, "  Vertices: %s, %s, %s\n\n",
					analysis.FormatVector(a), analysis.FormatVector(b), analysis.FormatVector(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "N", 10, "Number of triangles to display")
	cmd.Flags().BoolVarP(&largest, "largest", "l", false, "Show largest triangles by area")
	cmd.Flags().BoolVarP(&smallest, "smallest", "s", false, "Show smallest triangles by area")
	cmd.MarkFlagsMutuallyExclusive("largest", "smallest")

	return cmd
}
