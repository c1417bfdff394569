package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootShowsHelpWhenNoSubcommand checks that a bare `tension` lists the
// calculators instead of silently succeeding.
func TestRootShowsHelpWhenNoSubcommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs([]string{})
	require.NoError(t, Execute())

	output := buf.String()
	assert.Contains(t, output, "Usage:")
	for _, sub := range []string{"size", "pickup", "border", "spread", "swatch", "init", "serve"} {
		assert.Contains(t, output, sub, "help should list the %s command", sub)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-01-02")
	assert.Equal(t, "1.2.3 (commit: abc1234, built: 2026-01-02)", rootCmd.Version)
}
