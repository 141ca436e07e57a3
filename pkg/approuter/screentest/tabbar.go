package screentest

import "github.com/BrandonKowalski/approuter/pkg/approuter"

// TabBar is an in-memory tab container.
type TabBar struct {
	View
	screens  []approuter.Screen
	selected approuter.Screen
}

func (t *TabBar) SelectedScreen() approuter.Screen { return t.selected }

// SetSelectedScreen selects s if it is one of the tabs.
func (t *TabBar) SetSelectedScreen(s approuter.Screen) {
	for _, candidate := range t.screens {
		if candidate == s {
			old := t.selected
			t.tk.notify(old, approuter.WillDisappear, false)
			t.tk.notify(s, approuter.WillAppear, false)
			t.selected = s
			t.tk.notify(old, approuter.DidDisappear, false)
			t.tk.notify(s, approuter.DidAppear, false)
			return
		}
	}
}

func (t *TabBar) Screens() []approuter.Screen {
	return append([]approuter.Screen(nil), t.screens...)
}

// SetScreens replaces the tabs. The selection is kept when still present,
// otherwise the first tab is selected.
func (t *TabBar) SetScreens(screens []approuter.Screen) {
	for _, s := range t.screens {
		if b := baseOf(s); b != nil && b.tabs == t {
			b.tabs = nil
		}
	}
	t.screens = append([]approuter.Screen(nil), screens...)
	for _, s := range t.screens {
		if b := baseOf(s); b != nil {
			b.tabs = t
		}
	}
	for _, s := range t.screens {
		if s == t.selected {
			return
		}
	}
	t.selected = nil
	if len(t.screens) > 0 {
		t.selected = t.screens[0]
	}
}

// Tabs is always nil: tab containers are never nested in tab containers.
func (t *TabBar) Tabs() approuter.TabContainer {
	return nil
}
