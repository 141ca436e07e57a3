package screentest

import "github.com/BrandonKowalski/approuter/pkg/approuter"

// history is the ordered list of screens on a Navigation.
type history struct {
	entries []approuter.Screen
}

// Push adds a new entry on top.
func (h *history) Push(s approuter.Screen) {
	h.entries = append(h.entries, s)
}

// Pop removes and returns the top entry.
// Returns nil if the history is empty.
func (h *history) Pop() approuter.Screen {
	if len(h.entries) == 0 {
		return nil
	}
	top := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return top
}

// Peek returns the top entry without removing it.
// Returns nil if the history is empty.
func (h *history) Peek() approuter.Screen {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[len(h.entries)-1]
}

// IsEmpty returns true if the history has no entries.
func (h *history) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries.
func (h *history) Len() int {
	return len(h.entries)
}

// Clear removes all entries.
func (h *history) Clear() {
	h.entries = h.entries[:0]
}

func (h *history) indexOf(s approuter.Screen) int {
	for i, e := range h.entries {
		if e == s {
			return i
		}
	}
	return -1
}

// Navigation is an in-memory stack container.
type Navigation struct {
	View
	history history
}

// VisibleScreen returns the screen presented on the navigation if any, otherwise its top screen.
func (n *Navigation) VisibleScreen() approuter.Screen {
	if n.presented != nil {
		return n.presented
	}
	return n.history.Peek()
}

// TopScreen returns the top screen of the stack.
func (n *Navigation) TopScreen() approuter.Screen {
	return n.history.Peek()
}

func (n *Navigation) Screens() []approuter.Screen {
	return append([]approuter.Screen(nil), n.history.entries...)
}

// SetScreens replaces the stack. Screens move out of any stack they were on before.
func (n *Navigation) SetScreens(screens []approuter.Screen) {
	for _, s := range n.history.entries {
		if b := baseOf(s); b != nil && b.stack == n {
			b.stack = nil
		}
	}
	n.history.Clear()
	for _, s := range screens {
		n.adopt(s)
		n.history.Push(s)
	}
}

func (n *Navigation) adopt(s approuter.Screen) {
	b := baseOf(s)
	if b == nil {
		return
	}
	if b.stack != nil && b.stack != n {
		b.stack.remove(s)
	}
	b.stack = n
}

func (n *Navigation) remove(s approuter.Screen) {
	i := n.history.indexOf(s)
	if i < 0 {
		return
	}
	n.history.entries = append(n.history.entries[:i:i], n.history.entries[i+1:]...)
}

func (n *Navigation) Push(s approuter.Screen, animated bool, done func()) {
	old := n.history.Peek()
	n.tk.notify(old, approuter.WillDisappear, animated)
	n.tk.notify(s, approuter.WillAppear, animated)
	n.adopt(s)
	n.history.Push(s)
	n.tk.coordinator().complete(animated, func() {
		n.tk.notify(old, approuter.DidDisappear, animated)
		n.tk.notify(s, approuter.DidAppear, animated)
		if done != nil {
			done()
		}
	})
}

// Pop removes the top screen. The root screen is never popped.
func (n *Navigation) Pop(animated bool, done func()) approuter.Screen {
	if n.history.Len() < 2 {
		return nil
	}
	popped := n.history.Pop()
	n.release(popped)
	n.finishPop([]approuter.Screen{popped}, animated, done)
	return popped
}

// PopTo pops every screen above s. It returns nil when s is not on the stack.
func (n *Navigation) PopTo(s approuter.Screen, animated bool, done func()) []approuter.Screen {
	i := n.history.indexOf(s)
	if i < 0 {
		return nil
	}
	return n.popAbove(i, animated, done)
}

// PopToRoot pops every screen above the root screen.
func (n *Navigation) PopToRoot(animated bool, done func()) []approuter.Screen {
	if n.history.IsEmpty() {
		return nil
	}
	return n.popAbove(0, animated, done)
}

func (n *Navigation) popAbove(i int, animated bool, done func()) []approuter.Screen {
	popped := append([]approuter.Screen(nil), n.history.entries[i+1:]...)
	if len(popped) == 0 {
		n.tk.coordinator().complete(false, done)
		return nil
	}
	n.history.entries = n.history.entries[:i+1]
	for _, s := range popped {
		n.release(s)
	}
	n.finishPop(popped, animated, done)
	return popped
}

func (n *Navigation) release(s approuter.Screen) {
	if b := baseOf(s); b != nil && b.stack == n {
		b.stack = nil
	}
}

func (n *Navigation) finishPop(popped []approuter.Screen, animated bool, done func()) {
	top := n.history.Peek()
	var leaving approuter.Screen
	if len(popped) > 0 {
		leaving = popped[len(popped)-1]
	}
	n.tk.notify(leaving, approuter.WillDisappear, animated)
	n.tk.notify(top, approuter.WillAppear, animated)
	n.tk.coordinator().complete(animated, func() {
		n.tk.notify(leaving, approuter.DidDisappear, animated)
		n.tk.notify(top, approuter.DidAppear, animated)
		if done != nil {
			done()
		}
	})
}

// Stack is always nil: stacks are never nested in stacks.
func (n *Navigation) Stack() approuter.StackContainer {
	return nil
}
