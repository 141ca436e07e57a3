package screentest

import "github.com/BrandonKowalski/approuter/pkg/approuter"

// View is a plain in-memory screen. Embed it to build application screen types.
type View struct {
	Name string

	self       approuter.Screen
	tk         *Toolkit
	presented  approuter.Screen
	presenting approuter.Screen
	stack      *Navigation
	tabs       *TabBar
}

func (v *View) base() *View { return v }

func (v *View) outer() approuter.Screen {
	if v.self != nil {
		return v.self
	}
	return v
}

func baseOf(s approuter.Screen) *View {
	if n, ok := s.(node); ok {
		return n.base()
	}
	return nil
}

func (v *View) PresentedScreen() approuter.Screen { return v.presented }

func (v *View) PresentingScreen() approuter.Screen { return v.presenting }

// Present shows screen modally. A view that is already presenting keeps its current
// presentation and ignores the request, without calling done.
func (v *View) Present(screen approuter.Screen, animated bool, done func()) {
	if v.presented != nil || screen == nil {
		return
	}
	child := baseOf(screen)
	if child == nil {
		return
	}
	self := v.outer()
	v.tk.notify(screen, approuter.WillAppear, animated)
	v.presented = screen
	child.presenting = self
	v.tk.coordinator().complete(animated, func() {
		v.tk.notify(screen, approuter.DidAppear, animated)
		if done != nil {
			done()
		}
	})
}

// Dismiss removes the screen presented by this one. Without one, it dismisses this
// screen (or its stack) from its presenter.
func (v *View) Dismiss(animated bool, done func()) {
	if v.presented != nil {
		presented := v.presented
		v.tk.notify(presented, approuter.WillDisappear, animated)
		if child := baseOf(presented); child != nil {
			child.presenting = nil
		}
		v.presented = nil
		v.tk.coordinator().complete(animated, func() {
			v.tk.notify(presented, approuter.DidDisappear, animated)
			if done != nil {
				done()
			}
		})
		return
	}
	if v.presenting != nil {
		v.presenting.Dismiss(animated, done)
		return
	}
	if v.stack != nil {
		v.stack.Dismiss(animated, done)
		return
	}
	v.tk.coordinator().complete(false, done)
}

func (v *View) Stack() approuter.StackContainer {
	if v.stack == nil {
		return nil
	}
	return v.stack
}

func (v *View) Tabs() approuter.TabContainer {
	if v.tabs != nil {
		return v.tabs
	}
	if v.stack != nil {
		return v.stack.Tabs()
	}
	return nil
}

func (v *View) String() string {
	return v.Name
}
