package system

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// fakeRunner answers invocations from a table keyed by "name args...".
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
	stdin   map[string][]byte
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: make(map[string]string),
		errs:    make(map[string]error),
		stdin:   make(map[string][]byte),
	}
}

func (f *fakeRunner) Run(_ context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	if stdin != nil {
		f.stdin[key] = stdin
	}
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[key]), nil
}

func TestNew_RejectsUnresolvedTools(t *testing.T) {
	for _, tool := range []domain.ClipboardTool{domain.ClipboardToolAuto, domain.ClipboardToolNone, "pbcopy"} {
		_, err := New(tool)
		assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform, tool)
	}
}

func TestClipboard_ReadXclipFiltersTargets(t *testing.T) {
	r := newFakeRunner()
	r.outputs["xclip -selection clipboard -t TARGETS -o"] = "TIMESTAMP\nTARGETS\nUTF8_STRING\ntext/html\ntext/plain\ntext/html\n"
	r.outputs["xclip -selection clipboard -t text/html -o"] = "<b>hi</b>"
	r.outputs["xclip -selection clipboard -t text/plain -o"] = "hi"

	c, err := New(domain.ClipboardToolXclip, WithRunner(r))
	require.NoError(t, err)

	items, err := c.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"text/html", "text/plain"}, items[0].Types())

	blob, err := items[0].GetType(context.Background(), "text/html")
	require.NoError(t, err)
	data, err := blob.Bytes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<b>hi</b>", string(data))
	assert.Len(t, r.calls, 3)
}

func TestClipboard_ReadWaylandPerTypeFailure(t *testing.T) {
	r := newFakeRunner()
	r.outputs["wl-paste --list-types"] = "image/png\ntext/plain\n"
	r.errs["wl-paste --no-newline --type image/png"] = errors.New("broken pipe")
	r.outputs["wl-paste --no-newline --type text/plain"] = "caption"

	c, err := New(domain.ClipboardToolWayland, WithRunner(r))
	require.NoError(t, err)

	items, err := c.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = items[0].GetType(context.Background(), "image/png")
	assert.Error(t, err)
	blob, err := items[0].GetType(context.Background(), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, int64(7), blob.Size())
}

func TestClipboard_ReadEmpty(t *testing.T) {
	r := newFakeRunner()
	r.outputs["xclip -selection clipboard -t TARGETS -o"] = "TARGETS\n"

	c, err := New(domain.ClipboardToolXclip, WithRunner(r))
	require.NoError(t, err)

	items, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClipboard_ReadListFailure(t *testing.T) {
	r := newFakeRunner()
	r.errs["wl-paste --list-types"] = errors.New("no selection")

	c, err := New(domain.ClipboardToolWayland, WithRunner(r))
	require.NoError(t, err)

	_, err = c.Read(context.Background())
	assert.EqualError(t, err, "no selection")
}

func TestClipboard_ReadText(t *testing.T) {
	r := newFakeRunner()
	r.outputs["wl-paste --no-newline"] = "plain"

	c, err := New(domain.ClipboardToolWayland, WithRunner(r))
	require.NoError(t, err)

	text, err := c.ReadText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "plain", text)
}

func TestClipboard_Write(t *testing.T) {
	tests := []struct {
		tool domain.ClipboardTool
		want string
	}{
		{domain.ClipboardToolWayland, "wl-copy --type text/html"},
		{domain.ClipboardToolXclip, "xclip -selection clipboard -t text/html -i"},
	}

	for _, tt := range tests {
		t.Run(tt.tool.String(), func(t *testing.T) {
			r := newFakeRunner()
			c, err := New(tt.tool, WithRunner(r))
			require.NoError(t, err)

			err = c.Write(context.Background(), domain.WriteItem{Format: domain.FormatHTML, Data: []byte("<i>x</i>")})
			require.NoError(t, err)

			assert.Equal(t, []string{tt.want}, r.calls)
			assert.Equal(t, "<i>x</i>", string(r.stdin[tt.want]))
			assert.Equal(t, tt.tool, c.Tool())
		})
	}
}

func TestClipboard_WriteFailure(t *testing.T) {
	r := newFakeRunner()
	r.errs["wl-copy --type text/plain"] = errors.New("compositor gone")
	c, err := New(domain.ClipboardToolWayland, WithRunner(r))
	require.NoError(t, err)

	err = c.Write(context.Background(), domain.WriteItem{Format: domain.FormatPlain, Data: []byte("x")})
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	env := func(vars map[string]string, installed ...string) Environment {
		return Environment{
			Getenv: func(k string) string { return vars[k] },
			LookPath: func(bin string) (string, error) {
				for _, name := range installed {
					if name == bin {
						return "/usr/bin/" + bin, nil
					}
				}
				return "", errors.New("not found")
			},
		}
	}

	tests := []struct {
		name    string
		tool    domain.ClipboardTool
		env     Environment
		want    domain.ClipboardTool
		wantErr bool
	}{
		{"auto wayland", domain.ClipboardToolAuto, env(map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, "wl-paste", "xclip"), domain.ClipboardToolWayland, false},
		{"auto x11", domain.ClipboardToolAuto, env(map[string]string{"DISPLAY": ":0"}, "wl-paste", "xclip"), domain.ClipboardToolXclip, false},
		{"auto wayland without wl-paste uses xwayland", domain.ClipboardToolAuto, env(map[string]string{"WAYLAND_DISPLAY": "w", "DISPLAY": ":0"}, "xclip"), domain.ClipboardToolXclip, false},
		{"auto headless", domain.ClipboardToolAuto, env(nil, "xclip"), domain.ClipboardToolNone, true},
		{"explicit installed", domain.ClipboardToolXclip, env(nil, "xclip"), domain.ClipboardToolXclip, false},
		{"explicit missing", domain.ClipboardToolWayland, env(nil), domain.ClipboardToolNone, true},
		{"none", domain.ClipboardToolNone, env(nil, "xclip"), domain.ClipboardToolNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.tool, tt.env)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
