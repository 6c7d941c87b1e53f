package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	delaunay "github.com/jeertmans/DelaunayTriangulation"
	"github.com/jeertmans/DelaunayTriangulation/internal/genconfig"
	"github.com/jeertmans/DelaunayTriangulation/internal/ioformat"
	"github.com/jeertmans/DelaunayTriangulation/internal/pointgen"
	"github.com/jeertmans/DelaunayTriangulation/internal/render"
)

// RootCmd is the base command: it has no subcommands of its own verb
// (unlike the teacher's recast, which splits build/infos/config into
// separate verbs), since this CLI's entire job is the single
// read-or-generate / triangulate / write-or-animate pipeline from
// section 6. The "config" subcommand is the one exception.
var RootCmd = &cobra.Command{
	Use:   "delaunay",
	Short: "compute and inspect planar Delaunay triangulations",
	Long: `delaunay triangulates a point set using the Guibas-Stolfi
divide-and-conquer algorithm.

Points are either read from a -i file or drawn from a random
distribution (-p, -n, -a, -b, -s). The result is written to a -o file
and, unless -d is given, previewed as a terminal animation.`,
	RunE: runRoot,
}

var (
	verbose      bool
	inputPath    string
	outputPath   string
	numPoints    int
	distribution string
	smoothIters  int
	extentX      float64
	extentY      float64
	animSeconds  float64
	noRender     bool
	dedupe       int
	configPath   string
)

func init() {
	flags := RootCmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose progress printing")
	flags.StringVarP(&inputPath, "input", "i", "", "read points from PATH instead of generating them")
	flags.StringVarP(&outputPath, "output", "o", "", "write the triangulation to PATH")
	flags.IntVarP(&numPoints, "num-points", "n", 0, "number of random points (default 500, or from --config)")
	flags.StringVarP(&distribution, "distribution", "p", "", "random point distribution: normal|uniform|uniform-circle|polygon")
	flags.IntVarP(&smoothIters, "smooth", "s", -1, "polygon smoothing iterations")
	flags.Float64VarP(&extentX, "extent-x", "a", 0, "x-extent for uniform generators")
	flags.Float64VarP(&extentY, "extent-y", "b", 0, "y-extent for uniform generators")
	flags.Float64VarP(&animSeconds, "duration", "t", 3, "target animation duration in seconds")
	flags.BoolVarP(&noRender, "no-render", "d", false, "disable terminal rendering")
	flags.IntVarP(&dedupe, "dedupe", "r", -1, "deduplicate input points: 0 or 1")
	flags.StringVar(&configPath, "config", "", "load generator settings from a config file written by 'delaunay config'")

	RootCmd.AddCommand(configCmd)
}

// Execute runs the root command, exiting the process with a non-zero
// status on fatal I/O or allocation failure (spec section 6's exit code
// contract).
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "delaunay:", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := genconfig.Default()
	if configPath != "" {
		loaded, err := genconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg)

	points, err := loadOrGeneratePoints(cfg)
	if err != nil {
		return err
	}

	tri := delaunay.NewTriangulation(points, cfg.Deduplicate)
	tri.SetVerbose(verbose)
	tri.Build()
	if !tri.Valid() {
		return fmt.Errorf("refusing to continue: triangulation of %d points did not build", len(points))
	}

	if outputPath != "" {
		if err := writeOutput(tri); err != nil {
			fmt.Fprintln(os.Stderr, "delaunay: warning: could not write output:", err)
		}
	}

	if !noRender {
		renderAnimation(tri)
	}
	return nil
}

func applyFlagOverrides(cfg *genconfig.Config) {
	if numPoints > 0 {
		cfg.NumPoints = numPoints
	}
	if distribution != "" {
		cfg.Distribution = distribution
	}
	if smoothIters >= 0 {
		cfg.SmoothIterations = smoothIters
	}
	if extentX > 0 {
		cfg.ExtentX = extentX
	}
	if extentY > 0 {
		cfg.ExtentY = extentY
	}
	if dedupe == 0 {
		cfg.Deduplicate = false
	} else if dedupe == 1 {
		cfg.Deduplicate = true
	}
}

func loadOrGeneratePoints(cfg genconfig.Config) ([]delaunay.Point, error) {
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", inputPath, err)
		}
		defer f.Close()
		points, err := ioformat.ReadPoints(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", inputPath, err)
		}
		return points, nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dist := pointgen.Distribution(cfg.Distribution)
	return pointgen.Generate(dist, rng, cfg.NumPoints, cfg.ExtentX, cfg.ExtentY, cfg.SmoothIterations), nil
}

func writeOutput(tri *delaunay.Triangulation) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return ioformat.WriteTriangulation(f, tri.Points().Points(), tri.Edges())
}

func renderAnimation(tri *delaunay.Triangulation) {
	anim := render.NewAnimator(time.Duration(animSeconds * float64(time.Second)))
	stop, restore := render.WatchForQuit()
	defer restore()
	anim.Play(tri.Points().Points(), tri.Edges(), stop)
}
