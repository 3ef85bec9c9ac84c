// Command quadshape is a command-line inspector for the quadrilateral
// classification engine: it takes four vertex positions, runs one
// batch through the model, and prints the classification record.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shapemodel/quadshape/quad"
	"github.com/shapemodel/quadshape/tolerance"
)

var (
	flagVerbose bool
	flagConfig  string
	flagWiden   float64
	flagPoints  [4]string
)

var rootCmd = &cobra.Command{
	Use:   "quadshape",
	Short: "quadrilateral constraint & classification engine",
	Long: `quadshape derives side lengths, interior angles, parallel and equal
pairs from four vertex positions and names the resulting shape.`,
	SilenceUsage: true,
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "classify a quadrilateral given its four vertices",
	Example: `  quadshape classify --a 0,0 --b 1,0 --c 1,1 --d 0,1
  quadshape classify --a 0,0 --b 4,0 --c 3,2 --d 2,2 --config tolerances.toml`,
	RunE: runClassify,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging (rejected batches, parallel flag flips)")

	classifyCmd.Flags().StringVar(&flagPoints[0], "a", "0,0", "vertex A as x,y")
	classifyCmd.Flags().StringVar(&flagPoints[1], "b", "2,0", "vertex B as x,y")
	classifyCmd.Flags().StringVar(&flagPoints[2], "c", "2,2", "vertex C as x,y")
	classifyCmd.Flags().StringVar(&flagPoints[3], "d", "0,2", "vertex D as x,y")
	classifyCmd.Flags().StringVar(&flagConfig, "config", "",
		"TOML file overriding tolerance intervals")
	classifyCmd.Flags().Float64Var(&flagWiden, "widen", 1,
		"widen every tolerance interval by this factor (coarse input devices)")

	rootCmd.AddCommand(classifyCmd)
}

// tolFileConfig mirrors the tolerance intervals in TOML; absent keys
// keep their defaults.
type tolFileConfig struct {
	StaticAngle   *float64 `toml:"static_angle"`
	InterAngle    *float64 `toml:"inter_angle"`
	InterLength   *float64 `toml:"inter_length"`
	ParallelAngle *float64 `toml:"parallel_angle"`
}

func loadTolerances() (tolerance.Config, error) {
	cfg := tolerance.Default()
	if flagConfig != "" {
		var f tolFileConfig
		if _, err := toml.DecodeFile(flagConfig, &f); err != nil {
			return cfg, fmt.Errorf("reading %s: %w", flagConfig, err)
		}
		if f.StaticAngle != nil {
			cfg.StaticAngle = *f.StaticAngle
		}
		if f.InterAngle != nil {
			cfg.InterAngle = *f.InterAngle
		}
		if f.InterLength != nil {
			cfg.InterLength = *f.InterLength
		}
		if f.ParallelAngle != nil {
			cfg.ParallelAngle = *f.ParallelAngle
		}
	}
	cfg = cfg.Widened(flagWiden)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}

	return geom.Point{X: x, Y: y}, nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := logrus.StandardLogger()
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadTolerances()
	if err != nil {
		return err
	}

	var ps [4]geom.Point
	for i, s := range flagPoints {
		p, err := parsePoint(s)
		if err != nil {
			return fmt.Errorf("vertex %c: %w", 'A'+i, err)
		}
		ps[i] = p
	}

	m, err := quad.New(
		quad.WithInitialPositions(ps),
		quad.WithTolerances(cfg),
		quad.WithLogger(log),
	)
	if err != nil {
		return err
	}

	snap := m.Snapshot()
	res := m.Classification()

	fmt.Printf("shape: %s\n", res.Shape)
	fmt.Printf("area:  %.4f\n", snap.Area)

	for l := quad.SideAB; l <= quad.SideDA; l++ {
		fmt.Printf("side %s: length %.4f, midpoint (%.3f, %.3f)\n",
			l, m.Side(l).Length(), m.Side(l).Midpoint().X, m.Side(l).Midpoint().Y)
	}
	for l := quad.VertexA; l <= quad.VertexD; l++ {
		a, _ := m.Vertex(l).Angle()
		fmt.Printf("angle %s: %.2f°\n", l, a*180/math.Pi)
	}

	fmt.Printf("parallel AB/CD: %v\n", m.ParallelPairABCD().AreParallel())
	fmt.Printf("parallel BC/DA: %v\n", m.ParallelPairBCDA().AreParallel())

	if len(res.EqualSides) > 0 {
		names := make([]string, len(res.EqualSides))
		for i, p := range res.EqualSides {
			names[i] = p.String()
		}
		fmt.Printf("equal sides:  %s\n", strings.Join(names, ", "))
	}
	if len(res.EqualAngles) > 0 {
		names := make([]string, len(res.EqualAngles))
		for i, p := range res.EqualAngles {
			names[i] = p.String()
		}
		fmt.Printf("equal angles: %s\n", strings.Join(names, ", "))
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
