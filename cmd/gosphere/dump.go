package main

import (
	"github.com/philipparndt/gosphere/pkg/fbx"
	"github.com/spf13/cobra"
)

func newDumpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the vertex, index and normal arrays",
		Long: `Print only the count-prefixed Vertices, PolygonVertexIndex and Normals
arrays, ready to be pasted into the Geometry block of an existing FBX file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			m, err := generate(cfg)
			if err != nil {
				return err
			}

			return fbx.WriteArrays(cmd.OutOrStdout(), m)
		},
	}
}
