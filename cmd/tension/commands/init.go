package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/internal/scaffold"
)

var (
	forceInit bool
	initGauge string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a tension.yml for your measured gauge",
	Long: `Create a tension.yml in the current directory to hold your measured gauge
and preferences.

Creates:
  • tension.yml - your gauge and defaults, read by every command

Pass --gauge to record a gauge you have already measured; otherwise the file
is created with an example to edit.

Use --force to overwrite an existing tension.yml.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing tension.yml")
	initCmd.Flags().StringVarP(&initGauge, "gauge", "g", "", "Your measured gauge as stitches/rows per 10 cm, e.g. 22/30")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check for an existing file (unless --force)
	if !forceInit {
		if err := scaffold.CheckExisting(); err != nil {
			return err
		}
	}

	var personal *gauge.Gauge
	if initGauge != "" {
		g, err := gauge.Parse(initGauge)
		if err != nil {
			return fmt.Errorf("--gauge: %w", err)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("--gauge: %w", err)
		}
		personal = &g
	}

	if err := scaffold.Initialize(forceInit, personal); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess()
	return nil
}
