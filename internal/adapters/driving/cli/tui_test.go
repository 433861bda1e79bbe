package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_HasRunE(t *testing.T) {
	assert.NotNil(t, tuiCmd.RunE)
}

func TestTUICmd_NotConfigured(t *testing.T) {
	t.Cleanup(resetCLI)

	_, err := execute(t, "", "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "tui", "extra")

	assert.Error(t, err)
}
