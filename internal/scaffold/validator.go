package scaffold

import (
	"fmt"
	"os"

	"github.com/dyluth/tension/internal/config"
)

// CheckExisting reports an error when the directory already holds a
// tension.yml, so a plain `tension init` never clobbers a measured gauge.
func CheckExisting() error {
	if _, err := os.Stat(config.DefaultPath); err == nil {
		return fmt.Errorf("already initialized: %s exists\n\nUse 'tension init --force' to overwrite it", config.DefaultPath)
	}
	return nil
}
