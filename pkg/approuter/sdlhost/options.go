package sdlhost

import (
	"os"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// Environment variables overriding windows made by Host.NewWindow.
const (
	WindowWidthEnvVar  = "APPROUTER_WINDOW_WIDTH"
	WindowHeightEnvVar = "APPROUTER_WINDOW_HEIGHT"
	WindowModeEnvVar   = "APPROUTER_WINDOW_MODE"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// WindowMode is how a created window occupies the display.
type WindowMode int

const (
	Windowed          WindowMode = iota
	Fullscreen                   // Change the display mode to the window size
	FullscreenDesktop            // Cover the desktop without a mode change
)

func (m WindowMode) String() string {
	switch m {
	case Fullscreen:
		return "fullscreen"
	case FullscreenDesktop:
		return "desktop"
	default:
		return "windowed"
	}
}

// ParseWindowMode is the inverse of WindowMode.String, ignoring case. Unknown names
// report false.
func ParseWindowMode(name string) (WindowMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windowed":
		return Windowed, true
	case "fullscreen":
		return Fullscreen, true
	case "desktop", "fullscreen_desktop":
		return FullscreenDesktop, true
	}
	return Windowed, false
}

var modeFlags = map[WindowMode]uint32{
	Windowed:          0,
	Fullscreen:        sdl.WINDOW_FULLSCREEN,
	FullscreenDesktop: sdl.WINDOW_FULLSCREEN_DESKTOP,
}

// WindowOptions shape windows made by Host.NewWindow, which become the target of the
// next root replacement.
type WindowOptions struct {
	Mode        WindowMode
	Resizable   bool
	Borderless  bool
	AlwaysOnTop bool
	HighDPI     bool
	// Background windows are created hidden and not raised, so they never take focus
	// away from the active window.
	Background bool
}

// Flags returns the SDL creation flags.
func (o WindowOptions) Flags() uint32 {
	flags := modeFlags[o.Mode]
	if o.Background {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}
	if o.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if o.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if o.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	if o.HighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}
	return flags
}

// fromEnv applies the mode override to o.
func (o WindowOptions) fromEnv() WindowOptions {
	v := os.Getenv(WindowModeEnvVar)
	if v == "" {
		return o
	}
	mode, ok := ParseWindowMode(v)
	if !ok {
		internal.GetInternalLogger().Warn("Invalid window mode; keeping configured mode", "variable", WindowModeEnvVar, "value", v, "mode", o.Mode.String())
		return o
	}
	o.Mode = mode
	return o
}

// sizeFromEnv returns width and height, replaced by the environment overrides when set.
func sizeFromEnv(width, height int32) (int32, int32) {
	return envSize(WindowWidthEnvVar, width), envSize(WindowHeightEnvVar, height)
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}
