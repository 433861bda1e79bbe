package system

import (
	"os"
	"os/exec"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// command is one tool invocation.
type command struct {
	name string
	args []string
}

// backend builds the invocations for one clipboard tool.
type backend struct {
	tool      domain.ClipboardTool
	binary    string
	listTypes func() command
	read      func(mimeType string) command
	readText  func() command
	write     func(mimeType string) command
}

var wayland = backend{
	tool:   domain.ClipboardToolWayland,
	binary: "wl-paste",
	listTypes: func() command {
		return command{"wl-paste", []string{"--list-types"}}
	},
	read: func(mimeType string) command {
		return command{"wl-paste", []string{"--no-newline", "--type", mimeType}}
	},
	readText: func() command {
		return command{"wl-paste", []string{"--no-newline"}}
	},
	write: func(mimeType string) command {
		return command{"wl-copy", []string{"--type", mimeType}}
	},
}

var xclip = backend{
	tool:   domain.ClipboardToolXclip,
	binary: "xclip",
	listTypes: func() command {
		return command{"xclip", []string{"-selection", "clipboard", "-t", "TARGETS", "-o"}}
	},
	read: func(mimeType string) command {
		return command{"xclip", []string{"-selection", "clipboard", "-t", mimeType, "-o"}}
	},
	readText: func() command {
		return command{"xclip", []string{"-selection", "clipboard", "-o"}}
	},
	write: func(mimeType string) command {
		return command{"xclip", []string{"-selection", "clipboard", "-t", mimeType, "-i"}}
	},
}

// Environment is what tool detection looks at.
type Environment struct {
	Getenv   func(string) string
	LookPath func(string) (string, error)
}

// HostEnvironment reads the real process environment and PATH.
func HostEnvironment() Environment {
	return Environment{Getenv: os.Getenv, LookPath: exec.LookPath}
}

// Detect resolves a clipboard tool. Auto prefers wl-clipboard under
// Wayland and xclip under X11; an explicit tool is used only if installed.
func Detect(tool domain.ClipboardTool, env Environment) (domain.ClipboardTool, error) {
	installed := func(b backend) bool {
		_, err := env.LookPath(b.binary)
		return err == nil
	}

	switch tool {
	case domain.ClipboardToolWayland:
		if installed(wayland) {
			return tool, nil
		}
	case domain.ClipboardToolXclip:
		if installed(xclip) {
			return tool, nil
		}
	case domain.ClipboardToolAuto, "":
		if env.Getenv("WAYLAND_DISPLAY") != "" && installed(wayland) {
			return domain.ClipboardToolWayland, nil
		}
		if env.Getenv("DISPLAY") != "" && installed(xclip) {
			return domain.ClipboardToolXclip, nil
		}
	}
	return domain.ClipboardToolNone, domain.ErrUnsupportedPlatform
}

func backendFor(tool domain.ClipboardTool) (backend, bool) {
	switch tool {
	case domain.ClipboardToolWayland:
		return wayland, true
	case domain.ClipboardToolXclip:
		return xclip, true
	default:
		return backend{}, false
	}
}
