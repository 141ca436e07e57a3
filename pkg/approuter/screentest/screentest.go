// Package screentest provides an in-memory toolkit implementing the approuter
// container interfaces, for tests and examples.
//
// Screens are created through a Toolkit so that they share one transition
// Coordinator and one Lifecycle registry. Application screen types embed View and are
// registered with Bind:
//
//	type Detail struct {
//	    screentest.View
//	    Item string
//	}
//
//	tk := screentest.New()
//	d := screentest.Bind(tk, &Detail{})
package screentest

import (
	"github.com/BrandonKowalski/approuter/pkg/approuter"
)

// Coordinator holds completions of animated transitions until Finish is called.
// Non-animated transitions complete synchronously.
type Coordinator struct {
	pending []func()
}

// Pending returns the number of transitions waiting for Finish.
func (c *Coordinator) Pending() int {
	return len(c.pending)
}

// Finish completes every pending transition in the order they started.
func (c *Coordinator) Finish() {
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		next()
	}
}

func (c *Coordinator) complete(animated bool, done func()) {
	if done == nil {
		done = func() {}
	}
	if animated && c != nil {
		c.pending = append(c.pending, done)
		return
	}
	done()
}

// Toolkit creates screens sharing a coordinator and a lifecycle registry.
type Toolkit struct {
	Transitions *Coordinator
	Events      *approuter.Lifecycle
}

// New returns a toolkit with a fresh coordinator and lifecycle registry.
func New() *Toolkit {
	return &Toolkit{
		Transitions: &Coordinator{},
		Events:      &approuter.Lifecycle{},
	}
}

type node interface {
	approuter.Screen
	base() *View
}

// Bind attaches s to the toolkit and reports it as loaded. s must embed View.
func Bind[S node](tk *Toolkit, s S) S {
	v := s.base()
	v.self = s
	v.tk = tk
	tk.Events.Notify(s, approuter.Loaded, false)
	return s
}

// View creates a plain screen.
func (tk *Toolkit) View(name string) *View {
	return Bind(tk, &View{Name: name})
}

// Navigation creates a stack container holding screens.
func (tk *Toolkit) Navigation(screens ...approuter.Screen) *Navigation {
	n := Bind(tk, &Navigation{})
	n.View.Name = "navigation"
	n.SetScreens(screens)
	return n
}

// TabBar creates a tab container holding screens, with the first one selected.
func (tk *Toolkit) TabBar(screens ...approuter.Screen) *TabBar {
	t := Bind(tk, &TabBar{})
	t.View.Name = "tabs"
	t.SetScreens(screens)
	return t
}

// Window creates a window without a root.
func (tk *Toolkit) Window(name string) *Window {
	return &Window{Name: name, tk: tk}
}

// Catalog returns a catalog whose stack and tab constructors create toolkit containers.
func (tk *Toolkit) Catalog() *approuter.Catalog {
	return approuter.NewCatalog().
		RegisterStack(func() approuter.StackContainer { return tk.Navigation() }).
		RegisterTabs(func() approuter.TabContainer { return tk.TabBar() })
}

func (tk *Toolkit) coordinator() *Coordinator {
	if tk == nil {
		return nil
	}
	return tk.Transitions
}

func (tk *Toolkit) notify(s approuter.Screen, event approuter.LifecycleEvent, animated bool) {
	if tk == nil || tk.Events == nil || s == nil {
		return
	}
	tk.Events.Notify(s, event, animated)
}

// Window is an in-memory display surface.
type Window struct {
	Name string
	root approuter.Screen
	tk   *Toolkit
}

func (w *Window) Root() approuter.Screen { return w.root }

func (w *Window) SetRoot(s approuter.Screen) {
	old := w.root
	if old == s {
		return
	}
	w.tk.notify(old, approuter.WillDisappear, false)
	w.tk.notify(s, approuter.WillAppear, false)
	w.root = s
	w.tk.notify(old, approuter.DidDisappear, false)
	w.tk.notify(s, approuter.DidAppear, false)
}

// Host is an approuter.Host over in-memory windows.
type Host struct {
	Toolkit *Toolkit
	// Active is returned by ActiveWindow when set.
	Active *Window
	// Windows are the existing windows, returned by AnyWindow.
	Windows []*Window
	// CanCreate allows NewWindow to create windows.
	CanCreate bool
	// Created counts windows created by NewWindow.
	Created int
}

func (h *Host) ActiveWindow() (approuter.Window, bool) {
	if h.Active == nil {
		return nil, false
	}
	return h.Active, true
}

func (h *Host) NewWindow() (approuter.Window, bool) {
	if !h.CanCreate {
		return nil, false
	}
	h.Created++
	w := h.Toolkit.Window("window")
	h.Windows = append(h.Windows, w)
	h.Active = w
	return w, true
}

func (h *Host) AnyWindow() (approuter.Window, bool) {
	if len(h.Windows) == 0 {
		return nil, false
	}
	return h.Windows[0], true
}
