package system

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// writeTool installs an executable shell script named name in a temp dir
// that is put first on PATH.
func writeTool(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell tools are not available on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

func TestExecRunner_WriteReturnsWhenToolForksChild(t *testing.T) {
	dir := writeTool(t, "xclip", `cat > "$(dirname "$0")/written"
( sleep 10 ) &
exit 0
`)
	c, err := New(domain.ClipboardToolXclip)
	require.NoError(t, err)

	start := time.Now()
	err = c.Write(context.Background(), domain.WriteItem{Format: domain.FormatHTML, Data: []byte("<b>hi</b>")})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, 5*time.Second, "write must not wait for the forked child")

	written, err := os.ReadFile(filepath.Join(dir, "written"))
	require.NoError(t, err)
	assert.Equal(t, "<b>hi</b>", string(written))
}

func TestExecRunner_WriteFailureIsReported(t *testing.T) {
	writeTool(t, "wl-copy", "cat > /dev/null\nexit 3\n")

	_, err := ExecRunner{}.Run(context.Background(), []byte("x"), "wl-copy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "wl-copy")
}

func TestExecRunner_ReadReturnsOutput(t *testing.T) {
	writeTool(t, "wl-paste", "printf 'text/plain\\ntext/html\\n'\n")

	out, err := ExecRunner{}.Run(context.Background(), nil, "wl-paste", "--list-types")

	require.NoError(t, err)
	assert.Equal(t, "text/plain\ntext/html\n", string(out))
}

func TestExecRunner_ReadFailureIncludesStderr(t *testing.T) {
	writeTool(t, "wl-paste", "echo 'No selection' >&2\nexit 1\n")

	_, err := ExecRunner{}.Run(context.Background(), nil, "wl-paste")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No selection")
}
