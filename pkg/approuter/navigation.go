package approuter

// PushOnto pushes s onto stack unless it is already part of it.
// It reports whether a push happened; done is only called when it did.
func PushOnto(stack StackContainer, s Screen, animated bool, done func()) bool {
	if contains(stack.Screens(), s) {
		return false
	}
	stack.Push(s, animated, completion(done))
	return true
}

// StackFor returns s itself when it is a stack container, otherwise the stack it belongs to.
func StackFor(s Screen) StackContainer {
	if stack, ok := s.(StackContainer); ok {
		return stack
	}
	if s == nil {
		return nil
	}
	return s.Stack()
}

// Pop pops the stack s belongs to back to the screen before s.
// It returns the popped screens, or nil when s is the first or only screen on its stack.
func (r *Router) Pop(s Screen, animated bool, done func()) []Screen {
	stack := s.Stack()
	if stack == nil {
		r.debugf("#[AppRouter] can't pop %T: it is not on a stack", s)
		return nil
	}
	screens := stack.Screens()
	if len(screens) < 2 {
		r.debugf("#[AppRouter] can't pop %T when only one screen is on the stack", s)
		return nil
	}
	if screens[0] == s {
		r.debugf("#[AppRouter] can't pop from %T because it is first on the stack", s)
		return nil
	}
	for i := 1; i < len(screens); i++ {
		if screens[i] == s {
			return stack.PopTo(screens[i-1], animated, completion(done))
		}
	}
	return nil
}

// Close pops s if it can be popped, otherwise dismisses it if it is modally presented.
// It reports false when neither applies.
func (r *Router) Close(s Screen, animated bool, done func()) bool {
	switch {
	case canPop(s):
		r.Pop(s, animated, done)
	case IsModal(s):
		s.Dismiss(animated, completion(done))
	default:
		r.debugf("#[AppRouter] can't close %T", s)
		return false
	}
	return true
}

func canPop(s Screen) bool {
	stack := s.Stack()
	if stack == nil {
		return false
	}
	screens := stack.Screens()
	if len(screens) < 2 || screens[0] == s {
		return false
	}
	return contains(screens, s)
}

// PopFromTop pops the stack of the topmost screen. It returns the popped screen, if any.
func (r *Router) PopFromTop(animated bool, done func()) Screen {
	top := r.Topmost()
	if top == nil {
		return nil
	}
	stack := top.Stack()
	if stack == nil {
		r.debugf("#[AppRouter] topmost %T has no stack to pop", top)
		return nil
	}
	return stack.Pop(animated, completion(done))
}

// FindInStack returns the first screen of type S on stack.
func FindInStack[S Screen](stack StackContainer) (S, bool) {
	for _, s := range stack.Screens() {
		if typed, ok := s.(S); ok {
			return typed, true
		}
	}
	var zero S
	return zero, false
}

// FindInTabs returns the first tab of type S, also looking at the root of stacks used as tabs.
func FindInTabs[S Screen](tabs TabContainer) (S, bool) {
	for _, s := range tabs.Screens() {
		if typed, ok := s.(S); ok {
			return typed, true
		}
		if stack, ok := s.(StackContainer); ok {
			if screens := stack.Screens(); len(screens) > 0 {
				if typed, ok := screens[0].(S); ok {
					return typed, true
				}
			}
		}
	}
	var zero S
	return zero, false
}

// SelectTab selects the tab holding a screen of type S, either directly or as the root of
// a stack. It reports whether such a tab was found.
func SelectTab[S Screen](tabs TabContainer) bool {
	found, ok := FindInTabs[S](tabs)
	if !ok {
		return false
	}
	screens := tabs.Screens()
	if contains(screens, found) {
		tabs.SetSelectedScreen(found)
		return true
	}
	if stack := found.Stack(); stack != nil && contains(screens, stack) {
		tabs.SetSelectedScreen(stack)
	}
	return true
}

// PopToType pops stack back to the first screen of type S.
func PopToType[S Screen](stack StackContainer, animated bool, done func()) []Screen {
	target, ok := FindInStack[S](stack)
	if !ok {
		return nil
	}
	return stack.PopTo(target, animated, completion(done))
}

func completion(done func()) func() {
	if done == nil {
		return func() {}
	}
	return done
}
