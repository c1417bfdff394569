package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/printer"
	"github.com/dyluth/tension/internal/swatch"
)

var (
	swatchGauge string
	swatchSVG   string
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Preview a 10 cm swatch at a gauge",
	Long: `Preview what a 10 cm square looks like at a gauge: one 'v' per stitch, one
line per row. With --svg the preview is also written as a scaled drawing.

Examples:
  tension swatch --gauge 22/30
  tension swatch --svg swatch.svg`,
	RunE: runSwatch,
}

func init() {
	swatchCmd.Flags().StringVarP(&swatchGauge, "gauge", "g", "", "Gauge to preview as stitches/rows per 10 cm (default: tension.yml)")
	swatchCmd.Flags().StringVar(&swatchSVG, "svg", "", "Write the preview as SVG to this file")
	rootCmd.AddCommand(swatchCmd)
}

func runSwatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadIfPresent(config.DefaultPath)
	if err != nil {
		return err
	}

	g, err := resolveGauge("--gauge", swatchGauge, cfg)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("a swatch needs both dimensions: %w", err)
	}

	fmt.Print(swatch.Grid(g))
	fmt.Println(swatch.Caption(g))

	if swatchSVG != "" {
		err := writeSVGFile(swatchSVG, func(w io.Writer) error {
			return swatch.WriteSVG(w, g)
		})
		if err != nil {
			return err
		}
		printer.Success("Swatch written to %s\n", swatchSVG)
	}
	return nil
}
