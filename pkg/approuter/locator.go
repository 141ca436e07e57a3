package approuter

// StopFunc decides whether the locator should refuse to descend into a screen.
// Returning true for a screen excludes it and everything above it from the search.
type StopFunc func(Screen) bool

// Next returns the screen the locator descends into from s:
// the visible child of a stack, the selected child of a tab container
// (or its presented screen when nothing is selected), otherwise the presented screen.
func Next(s Screen) Screen {
	switch c := s.(type) {
	case StackContainer:
		return c.VisibleScreen()
	case TabContainer:
		if selected := c.SelectedScreen(); selected != nil {
			return selected
		}
		return c.PresentedScreen()
	default:
		return s.PresentedScreen()
	}
}

// Topmost returns the topmost visible screen reachable from start.
//
// The search always falls back to the deepest screen it could reach, so the result is
// non-nil whenever start is non-nil and no stop function fires on start. A stop function
// that returns true for start makes Topmost return nil for that subtree.
func Topmost(start Screen, stop ...StopFunc) Screen {
	if start == nil || stopped(start, stop) {
		return nil
	}
	next := Next(start)
	if next == nil {
		return start
	}
	if top := Topmost(next, stop...); top != nil {
		return top
	}
	return start
}

func stopped(s Screen, stop []StopFunc) bool {
	for _, fn := range stop {
		if fn != nil && fn(s) {
			return true
		}
	}
	return false
}

// SkipType returns a StopFunc that refuses to descend into screens of type S.
func SkipType[S Screen]() StopFunc {
	return func(s Screen) bool {
		_, ok := s.(S)
		return ok
	}
}
