package commands

import (
	"github.com/spf13/cobra"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/internal/plan"
)

var (
	borderMainCount   int
	borderMainGauge   string
	borderStitchGauge float64
	borderEdge        string
	borderJSON        bool
)

var borderCmd = &cobra.Command{
	Use:   "border",
	Short: "Count border stitches along a differently gauged edge",
	Long: `Count how many border stitches to pick up along a main-fabric edge when
border and body knit at different gauges.

The edge is converted through real centimetres: main stitches (or rows) to
cm at the main gauge, then cm to stitches at the border's stitch gauge. The
answer includes the simplified border:main pick-up rate.

Examples:
  # 110 body stitches at 22/30, garter border knitting up at 20 sts per 10 cm
  tension border --main-count 110 --main-gauge 22/30 --border-gauge 20

  # Along row ends instead of a stitch edge
  tension border --main-count 90 --edge row --main-gauge 22/30 --border-gauge 20`,
	RunE: runBorder,
}

func init() {
	borderCmd.Flags().IntVar(&borderMainCount, "main-count", 0, "Stitches or rows along the main-fabric edge (required)")
	borderCmd.Flags().StringVar(&borderMainGauge, "main-gauge", "", "The main fabric's gauge (default: tension.yml)")
	borderCmd.Flags().Float64Var(&borderStitchGauge, "border-gauge", 0, "The border's stitch gauge per 10 cm (required)")
	borderCmd.Flags().StringVar(&borderEdge, "edge", "stitch", "Edge kind: stitch (cast-on/off) or row (side edge)")
	borderCmd.Flags().BoolVar(&borderJSON, "json", false, "Output in JSON format")
	borderCmd.MarkFlagRequired("main-count")
	borderCmd.MarkFlagRequired("border-gauge")
	rootCmd.AddCommand(borderCmd)
}

func runBorder(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadIfPresent(config.DefaultPath)
	if err != nil {
		return err
	}

	mainGauge, err := resolveGauge("--main-gauge", borderMainGauge, cfg)
	if err != nil {
		return err
	}

	edge, err := gauge.ParseEdge(borderEdge)
	if err != nil {
		return err
	}

	p, err := plan.BuildBorder(plan.BorderRequest{
		MainCount:         borderMainCount,
		MainGauge:         mainGauge,
		BorderStitchGauge: borderStitchGauge,
		Edge:              edge,
	})
	if err != nil {
		return err
	}
	return output(p, borderJSON)
}
