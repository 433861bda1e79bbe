package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	t.Cleanup(resetCLI)
	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	out, err := execute(t, "", "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "clipscope version test-version-1.0.0")
}

func TestVersionCmd_SkipsBootstrap(t *testing.T) {
	t.Cleanup(resetCLI)
	called := false
	SetBootstrap(func(string) (*Services, error) {
		called = true
		return &Services{}, nil
	})

	_, err := execute(t, "", "version")

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestVersionCmd_JSON(t *testing.T) {
	t.Cleanup(resetCLI)
	originalVersion := version
	SetVersion("1.2.3")
	defer func() { version = originalVersion }()

	out, err := execute(t, "", "version", "-o", "json")

	assert.NoError(t, err)
	assert.Contains(t, out, `"version": "1.2.3"`)
	assert.Contains(t, out, `"mcpVersion"`)
}

func TestVersionCmd_VerboseShowsRuntime(t *testing.T) {
	t.Cleanup(resetCLI)

	out, err := execute(t, "", "version", "--verbose")

	assert.NoError(t, err)
	assert.Contains(t, out, "mcp server")
	assert.Contains(t, out, runtime.GOOS)
}
