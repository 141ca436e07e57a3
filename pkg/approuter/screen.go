package approuter

// Screen is a unit of displayed UI content provided by the host toolkit.
// Implementations are expected to be pointers so that interface equality is identity.
type Screen interface {
	// PresentedScreen returns the screen modally presented on top of this one, if any.
	PresentedScreen() Screen
	// PresentingScreen returns the screen that modally presented this one, if any.
	PresentingScreen() Screen
	// Present shows screen modally on top of this one. done runs once the transition ends.
	Present(screen Screen, animated bool, done func())
	// Dismiss removes the screen presented by this one (or this one, if it is presented).
	Dismiss(animated bool, done func())
	// Stack returns the stack container this screen belongs to, if any.
	Stack() StackContainer
	// Tabs returns the tab container this screen belongs to, if any.
	Tabs() TabContainer
}

// StackContainer presents an ordered, pushable sequence of screens.
type StackContainer interface {
	Screen
	VisibleScreen() Screen
	Screens() []Screen
	SetScreens(screens []Screen)
	Push(screen Screen, animated bool, done func())
	Pop(animated bool, done func()) Screen
	PopTo(screen Screen, animated bool, done func()) []Screen
	PopToRoot(animated bool, done func()) []Screen
}

// TabContainer presents a set of screens with one of them selected.
type TabContainer interface {
	Screen
	SelectedScreen() Screen
	SetSelectedScreen(screen Screen)
	Screens() []Screen
	SetScreens(screens []Screen)
}

// Window is the display surface holding the root screen.
type Window interface {
	Root() Screen
	SetRoot(screen Screen)
}

// IsModal reports whether s, its stack container or its tab container is modally presented.
func IsModal(s Screen) bool {
	if s == nil {
		return false
	}
	if presenting := s.PresentingScreen(); presenting != nil && presenting.PresentedScreen() == s {
		return true
	}
	if stack := s.Stack(); stack != nil && IsModal(stack) {
		return true
	}
	if tabs := s.Tabs(); tabs != nil {
		if _, ok := tabs.PresentingScreen().(TabContainer); ok {
			return true
		}
	}
	return false
}

func contains(screens []Screen, s Screen) bool {
	for _, candidate := range screens {
		if candidate == s {
			return true
		}
	}
	return false
}
