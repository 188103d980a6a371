package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gosphere/internal/config"
	"github.com/philipparndt/gosphere/internal/logx"
	"github.com/philipparndt/gosphere/version"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all commands
type options struct {
	configPath  string
	radius      float64
	latitude    int
	longitude   int
	name        string
	output      string
	verbose     bool
	veryVerbose bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "gosphere",
		Short: "Generate UV sphere meshes as ASCII FBX files",
		Long: `gosphere tessellates a UV sphere from a radius and a latitude/longitude
segment count and writes it as an ASCII FBX 7.7 document with vertices,
triangle indices and per-vertex normals.

Without a subcommand it behaves like "gosphere generate".`,
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.Setup(cmd.ErrOrStderr(), logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML file with sphere settings")
	flags.Float64VarP(&opts.radius, "radius", "r", defaults.Radius, "Sphere radius")
	flags.IntVar(&opts.latitude, "lat", defaults.LatitudeSegments, "Number of latitude segments")
	flags.IntVar(&opts.longitude, "lon", defaults.LongitudeSegments, "Number of longitude segments")
	flags.StringVarP(&opts.name, "name", "n", defaults.Name, "Object name used in the document")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress")
	flags.BoolVar(&opts.veryVerbose, "vv", false, "Log debug details")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only log errors")

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", defaults.Output, `Output file, "-" for standard output`)

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newDumpCmd(opts),
		newInfoCmd(opts),
		newTrianglesCmd(opts),
	)

	return rootCmd
}

// resolve merges the config file and the flags set on the command line.
// Flags win over file values.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		slog.Debug("loaded config", "path", o.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("radius") {
		cfg.Radius = o.radius
	}
	if flags.Changed("lat") {
		cfg.LatitudeSegments = o.latitude
	}
	if flags.Changed("lon") {
		cfg.LongitudeSegments = o.longitude
	}
	if flags.Changed("name") {
		cfg.Name = o.name
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}

	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
