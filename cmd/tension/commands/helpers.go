package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/internal/plan"
	"github.com/dyluth/tension/internal/printer"
)

// textPlan is any plan that can render itself as a text block.
type textPlan interface {
	WriteText(io.Writer)
}

// output renders a plan to stdout as text or JSON.
func output(p textPlan, asJSON bool) error {
	if asJSON {
		return plan.WriteJSON(os.Stdout, p)
	}
	p.WriteText(os.Stdout)
	return nil
}

// resolveGauge picks the knitter's own gauge: an explicit spec wins, then the
// gauge kept in tension.yml. flagName appears in the error text.
func resolveGauge(flagName, spec string, cfg *config.Config) (gauge.Gauge, error) {
	if spec != "" {
		g, err := gauge.Parse(spec)
		if err != nil {
			return gauge.Gauge{}, fmt.Errorf("%s: %w", flagName, err)
		}
		return g, nil
	}
	if cfg != nil && cfg.Gauge != nil {
		return *cfg.Gauge, nil
	}
	return gauge.Gauge{}, printer.Error(
		"no personal gauge",
		"Tension needs your own measured gauge for this conversion.",
		[]string{
			fmt.Sprintf("Pass it on the command line:\n  %s 22/30", flagName),
			"Or keep it in tension.yml:\n  tension init --gauge 22/30",
		},
	)
}

// writeSVGFile creates path and hands it to render.
func writeSVGFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
