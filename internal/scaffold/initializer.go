// Package scaffold creates the files `tension init` lays down in a fresh
// project directory.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strconv"
	"text/template"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/gauge"
)

//go:embed templates/*
var templatesFS embed.FS

// templateData feeds the tension.yml template. Gauge values are preformatted
// so whole numbers render without decimal points.
type templateData struct {
	Stitches string
	Rows     string
}

// Initialize writes tension.yml into the current directory. If force is true
// an existing file is removed first; otherwise the caller is expected to have
// checked with CheckExisting. personal overrides the template's example gauge
// when non-nil.
func Initialize(force bool, personal *gauge.Gauge) error {
	if force {
		if err := handleForce(); err != nil {
			return err
		}
	}

	content, err := renderConfig(personal)
	if err != nil {
		return err
	}

	if err := os.WriteFile(config.DefaultPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.DefaultPath, err)
	}

	return validateCreatedFile()
}

// handleForce removes an existing tension.yml if present.
func handleForce() error {
	if _, err := os.Stat(config.DefaultPath); err == nil {
		fmt.Printf("⚠️  Removing existing %s...\n", config.DefaultPath)
		if err := os.Remove(config.DefaultPath); err != nil {
			return fmt.Errorf("failed to remove %s: %w", config.DefaultPath, err)
		}
	}
	return nil
}

// renderConfig fills the tension.yml template with the knitter's gauge, or a
// 22/30 example when none was measured yet.
func renderConfig(personal *gauge.Gauge) ([]byte, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/tension.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse tension.yml template: %w", err)
	}

	data := templateData{Stitches: "22", Rows: "30"}
	if personal != nil {
		data.Stitches = formatNumber(personal.Stitches)
		data.Rows = formatNumber(personal.Rows)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render tension.yml template: %w", err)
	}
	return buf.Bytes(), nil
}

// validateCreatedFile loads the file back through the config loader, so init
// can never leave behind a file the other commands reject.
func validateCreatedFile() error {
	if _, err := config.Load(config.DefaultPath); err != nil {
		return fmt.Errorf("created %s failed validation: %w", config.DefaultPath, err)
	}
	return nil
}

// PrintSuccess prints the created file and the first things to try.
func PrintSuccess() {
	fmt.Println("\n✅ Created tension.yml!")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Knit a swatch in the working yarn, wash it, and measure 10 cm")
	fmt.Println("  2. Record your stitch and row counts under 'gauge:' in tension.yml")
	fmt.Println("  3. Run 'tension pickup --help' to convert your first edge")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
