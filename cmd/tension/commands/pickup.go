package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/internal/plan"
	"github.com/dyluth/tension/internal/printer"
	"github.com/dyluth/tension/internal/swatch"
	"github.com/dyluth/tension/internal/worksheet"
)

var (
	pickupStitches      int
	pickupRows          int
	pickupEdgeRows      int
	pickupPatternGauge  string
	pickupGauge         string
	pickupAllowOverflow bool
	pickupXLSX          string
	pickupSVG           string
	pickupJSON          bool
)

var pickupCmd = &cobra.Command{
	Use:   "pickup",
	Short: "Convert a pattern's pick-up rate to your gauge",
	Long: `Convert a pattern's "pick up S stitches per R rows" to your own gauge and
spread the result evenly along the edge.

The answer is the total to pick up, the shortest repeating cycle, a written
instruction, and a slot-by-slot chart. A vertical edge takes at most one
stitch per row end; pass --allow-overflow if your numbers genuinely need
doubled-up slots.

Examples:
  # Pattern says 18 per 20 rows at 20/28; your edge is 24 rows at 24/32
  tension pickup --stitches 18 --rows 20 --edge-rows 24 \
    --pattern-gauge 20/28 --gauge 24/32

  # Export a printable worksheet and a chart
  tension pickup --stitches 18 --rows 20 --edge-rows 24 \
    --pattern-gauge 20/28 --xlsx pickup.xlsx --svg chart.svg`,
	RunE: runPickup,
}

func init() {
	pickupCmd.Flags().IntVar(&pickupStitches, "stitches", 0, "Stitches the pattern picks up (required)")
	pickupCmd.Flags().IntVar(&pickupRows, "rows", 0, "Rows the pattern picks them up over (required)")
	pickupCmd.Flags().IntVar(&pickupEdgeRows, "edge-rows", 0, "Rows along your actual edge (required)")
	pickupCmd.Flags().StringVar(&pickupPatternGauge, "pattern-gauge", "", "The pattern's gauge as stitches/rows per 10 cm (required)")
	pickupCmd.Flags().StringVarP(&pickupGauge, "gauge", "g", "", "Your gauge as stitches/rows per 10 cm (default: tension.yml)")
	pickupCmd.Flags().BoolVar(&pickupAllowOverflow, "allow-overflow", false, "Allow more than one stitch per row end")
	pickupCmd.Flags().StringVar(&pickupXLSX, "xlsx", "", "Write a worksheet to this file")
	pickupCmd.Flags().StringVar(&pickupSVG, "svg", "", "Write the chart as SVG to this file")
	pickupCmd.Flags().BoolVar(&pickupJSON, "json", false, "Output in JSON format")
	pickupCmd.MarkFlagRequired("stitches")
	pickupCmd.MarkFlagRequired("rows")
	pickupCmd.MarkFlagRequired("edge-rows")
	pickupCmd.MarkFlagRequired("pattern-gauge")
	rootCmd.AddCommand(pickupCmd)
}

func runPickup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadIfPresent(config.DefaultPath)
	if err != nil {
		return err
	}

	personal, err := resolveGauge("--gauge", pickupGauge, cfg)
	if err != nil {
		return err
	}
	pattern, err := gauge.Parse(pickupPatternGauge)
	if err != nil {
		return fmt.Errorf("--pattern-gauge: %w", err)
	}

	allow := pickupAllowOverflow
	if !allow && cfg != nil && cfg.Preferences != nil {
		allow = cfg.Preferences.AllowOverflow
	}

	req := plan.PickupRequest{
		PatternStitches: pickupStitches,
		PatternRows:     pickupRows,
		TotalRows:       pickupEdgeRows,
		PatternGauge:    pattern,
		PersonalGauge:   personal,
		AllowOverflow:   allow,
	}
	p, err := plan.BuildPickup(req)
	if err != nil {
		if errors.Is(err, plan.ErrOverflow) {
			return printer.Error(
				err.Error(),
				"A vertical edge takes at most one picked-up stitch per row end.",
				[]string{
					"Check --edge-rows against the rows actually on your edge",
					"Allow doubled-up slots:\n  tension pickup ... --allow-overflow",
				},
			)
		}
		return err
	}

	if err := output(p, pickupJSON); err != nil {
		return err
	}

	if pickupXLSX != "" {
		if err := worksheet.Save(pickupXLSX, req, p); err != nil {
			return err
		}
		printer.Success("Worksheet written to %s\n", pickupXLSX)
	}
	if pickupSVG != "" {
		err := writeSVGFile(pickupSVG, func(w io.Writer) error {
			return swatch.WriteChartSVG(w, p.FullSequence)
		})
		if err != nil {
			return err
		}
		printer.Success("Chart written to %s\n", pickupSVG)
	}
	return nil
}
