package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/internal/plan"
)

var (
	sizeDesired   float64
	sizeDimension string
	sizeGauge     string
	sizePattern   string
	sizeSizes     string
	sizeJSON      bool
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Work out which printed size to follow",
	Long: `Work out which printed size to follow when your gauge differs from the
pattern's.

Your desired measurement is converted into the pattern's terms; with a list
of the printed sizes, the closest one is recommended along with the actual
measurement it will knit up to at your gauge.

Examples:
  # You want 50 cm wide, knitting at 24/32 against the pattern's 20/28
  tension size --desired 50 --pattern-gauge 20/28 --gauge 24/32

  # Pick from the pattern's printed size table
  tension size --desired 50 --pattern-gauge 20/28 --sizes "44, 52, 58, 64"

  # A length instead of a width (row gauge does the converting)
  tension size --desired 40 --dimension length --pattern-gauge 20/28`,
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().Float64VarP(&sizeDesired, "desired", "d", 0, "Desired finished measurement in cm (required)")
	sizeCmd.Flags().StringVar(&sizeDimension, "dimension", "width", "Which way the measurement runs: width or length")
	sizeCmd.Flags().StringVarP(&sizeGauge, "gauge", "g", "", "Your gauge as stitches/rows per 10 cm (default: tension.yml)")
	sizeCmd.Flags().StringVar(&sizePattern, "pattern-gauge", "", "The pattern's gauge as stitches/rows per 10 cm (required)")
	sizeCmd.Flags().StringVar(&sizeSizes, "sizes", "", "The pattern's printed sizes in cm, comma separated")
	sizeCmd.Flags().BoolVar(&sizeJSON, "json", false, "Output in JSON format")
	sizeCmd.MarkFlagRequired("desired")
	sizeCmd.MarkFlagRequired("pattern-gauge")
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadIfPresent(config.DefaultPath)
	if err != nil {
		return err
	}

	personal, err := resolveGauge("--gauge", sizeGauge, cfg)
	if err != nil {
		return err
	}
	pattern, err := gauge.Parse(sizePattern)
	if err != nil {
		return fmt.Errorf("--pattern-gauge: %w", err)
	}

	dim, err := plan.ParseDimension(sizeDimension)
	if err != nil {
		return err
	}

	sizes, err := parseSizes(sizeSizes)
	if err != nil {
		return err
	}

	p, err := plan.BuildSize(plan.SizeRequest{
		Desired:       sizeDesired,
		Dimension:     dim,
		PersonalGauge: personal,
		PatternGauge:  pattern,
		Sizes:         sizes,
	})
	if err != nil {
		return err
	}
	return output(p, sizeJSON)
}

// parseSizes splits a comma-separated size list.
func parseSizes(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var sizes []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q in --sizes (use numbers like \"44, 52, 58\")", part)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}
