package approuter

// WindowProvider resolves the display surface a Router works with.
type WindowProvider interface {
	Window() Window
}

// WindowProviderFunc adapts a function to a WindowProvider.
type WindowProviderFunc func() Window

func (f WindowProviderFunc) Window() Window { return f() }

// StaticWindow always returns w. Mostly used by tests.
func StaticWindow(w Window) WindowProvider {
	return WindowProviderFunc(func() Window { return w })
}

// Host is the application side of the dynamic window lookup.
type Host interface {
	// ActiveWindow returns the surface currently receiving input, if one can be discovered.
	ActiveWindow() (Window, bool)
	// NewWindow creates a surface and promotes it to the active one.
	NewWindow() (Window, bool)
	// AnyWindow returns any existing surface.
	AnyWindow() (Window, bool)
}

// DynamicWindow looks the surface up on host every time it is asked.
// The lookup tries the active surface, then a newly created one, then any existing one.
// If all of them fail the host is mis-integrated and DynamicWindow panics.
func DynamicWindow(host Host) WindowProvider {
	return WindowProviderFunc(func() Window {
		if w, ok := host.ActiveWindow(); ok {
			return w
		}
		if w, ok := host.NewWindow(); ok {
			return w
		}
		if w, ok := host.AnyWindow(); ok {
			return w
		}
		panic("approuter: host provides no active window, cannot create one and has no existing window")
	})
}
