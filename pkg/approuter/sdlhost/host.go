// Package sdlhost hosts approuter display surfaces on SDL windows.
//
// Host implements approuter.Host so that a router created with
// approuter.DynamicWindow always works with the window holding keyboard focus:
//
//	host := sdlhost.NewHost("My App", sdlhost.WindowOptions{Resizable: true})
//	defer host.Close()
//	r := approuter.New(
//	    approuter.WithWindowProvider(approuter.DynamicWindow(host)),
//	    approuter.WithAnimator(sdlhost.FadeAnimator{}),
//	)
//
// SDL must be initialized with the video subsystem before the host is used, and every
// call must happen on the thread running the SDL event loop. Reactive subscriptions get
// there through Dispatch.
package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/approuter/pkg/approuter"
	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// Window is an SDL window holding a root screen.
type Window struct {
	SDL  *sdl.Window
	ID   uint32
	root approuter.Screen
}

func (w *Window) Root() approuter.Screen { return w.root }

func (w *Window) SetRoot(s approuter.Screen) {
	internal.GetInternalLogger().Debug("Setting window root", "window", w.ID, "root", screenName(s))
	w.root = s
}

// Host tracks the SDL windows roots can be installed on.
type Host struct {
	Title   string
	Width   int32
	Height  int32
	Options WindowOptions

	windows []*Window
	owned   map[uint32]bool
}

// NewHost returns a host creating windows of the default size. The size and mode
// environment variables override the defaults and opts.
func NewHost(title string, opts WindowOptions) *Host {
	opts = opts.fromEnv()
	w, h := sizeFromEnv(DefaultWidth, DefaultHeight)
	return &Host{
		Title:   title,
		Width:   w,
		Height:  h,
		Options: opts,
		owned:   make(map[uint32]bool),
	}
}

// Attach starts tracking a window created elsewhere. The host never destroys it.
func (h *Host) Attach(win *sdl.Window) (*Window, error) {
	id, err := win.GetID()
	if err != nil {
		return nil, err
	}
	if w := h.lookup(id); w != nil {
		return w, nil
	}
	w := &Window{SDL: win, ID: id}
	h.windows = append(h.windows, w)
	return w, nil
}

// ActiveWindow returns the tracked window holding keyboard focus.
func (h *Host) ActiveWindow() (approuter.Window, bool) {
	focused := sdl.GetKeyboardFocus()
	if focused == nil {
		return nil, false
	}
	id, err := focused.GetID()
	if err != nil {
		return nil, false
	}
	if w := h.lookup(id); w != nil {
		return w, true
	}
	return nil, false
}

// NewWindow creates a window and, unless it is a background window, raises it so it
// becomes the active one.
func (h *Host) NewWindow() (approuter.Window, bool) {
	win, err := sdl.CreateWindow(h.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, h.Width, h.Height, h.Options.Flags())
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create window", "error", err)
		return nil, false
	}
	w, err := h.Attach(win)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get window ID", "error", err)
		win.Destroy()
		return nil, false
	}
	if h.owned == nil {
		h.owned = make(map[uint32]bool)
	}
	h.owned[w.ID] = true
	if !h.Options.Background {
		win.Raise()
	}

	internal.GetInternalLogger().Debug("Created window", "id", w.ID, "width", h.Width, "height", h.Height, "mode", h.Options.Mode.String())
	return w, true
}

// AnyWindow returns the first tracked window.
func (h *Host) AnyWindow() (approuter.Window, bool) {
	if len(h.windows) == 0 {
		return nil, false
	}
	return h.windows[0], true
}

// Windows returns the tracked windows in the order they were attached.
func (h *Host) Windows() []*Window {
	return append([]*Window(nil), h.windows...)
}

// HandleEvent stops tracking windows that are closed. It reports whether the event
// closed a tracked window.
func (h *Host) HandleEvent(event sdl.Event) bool {
	e, ok := event.(*sdl.WindowEvent)
	if !ok || e.Event != sdl.WINDOWEVENT_CLOSE {
		return false
	}
	return h.remove(e.WindowID)
}

// Close destroys the windows the host created.
func (h *Host) Close() {
	for _, w := range h.windows {
		if h.owned[w.ID] {
			if err := w.SDL.Destroy(); err != nil {
				internal.GetInternalLogger().Warn("Failed to destroy window", "id", w.ID, "error", err)
			}
		}
	}
	h.windows = nil
	h.owned = make(map[uint32]bool)
}

func (h *Host) lookup(id uint32) *Window {
	for _, w := range h.windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (h *Host) remove(id uint32) bool {
	for i, w := range h.windows {
		if w.ID != id {
			continue
		}
		h.windows = append(h.windows[:i:i], h.windows[i+1:]...)
		if h.owned[id] {
			delete(h.owned, id)
			w.SDL.Destroy()
		}
		return true
	}
	return false
}

func screenName(s approuter.Screen) string {
	if s == nil {
		return "<nil>"
	}
	if named, ok := s.(interface{ String() string }); ok {
		return named.String()
	}
	return "screen"
}
