package approuter

import "fmt"

// Embedder places a freshly constructed source into the screen that is actually shown.
type Embedder[T Screen] interface {
	Embed(r *Router, source T) (Screen, error)
}

// EmbedFunc adapts a transform to an Embedder.
type EmbedFunc[T Screen] func(source T) (Screen, error)

func (f EmbedFunc[T]) Embed(_ *Router, source T) (Screen, error) { return f(source) }

type identityEmbedder[T Screen] struct{}

func (identityEmbedder[T]) Embed(_ *Router, source T) (Screen, error) { return source, nil }

// Identity shows the source itself.
func Identity[T Screen]() Embedder[T] {
	return identityEmbedder[T]{}
}

type stackEmbedder[T Screen] struct {
	stack StackContainer
}

func (e stackEmbedder[T]) Embed(r *Router, source T) (Screen, error) {
	stack := e.stack
	if stack == nil {
		stack = r.Catalog().NewStack()
	}
	if stack == nil {
		return nil, fmt.Errorf("%w: no stack container registered", ErrEmbeddingFailed)
	}
	stack.SetScreens(append(stack.Screens(), source))
	return stack, nil
}

// InStack appends the source to stack. A nil stack means a fresh one from the catalog
// on every resolution.
func InStack[T Screen](stack StackContainer) Embedder[T] {
	return stackEmbedder[T]{stack: stack}
}

type tabsEmbedder[T Screen] struct {
	tabs TabContainer
}

func (e tabsEmbedder[T]) Embed(r *Router, source T) (Screen, error) {
	tabs := e.tabs
	if tabs == nil {
		tabs = r.Catalog().NewTabs()
	}
	if tabs == nil {
		return nil, fmt.Errorf("%w: no tab container registered", ErrEmbeddingFailed)
	}
	tabs.SetScreens(append(tabs.Screens(), source))
	return tabs, nil
}

// InTabs appends the source to tabs' screens. A nil tabs means a fresh one from the catalog.
func InTabs[T Screen](tabs TabContainer) Embedder[T] {
	return tabsEmbedder[T]{tabs: tabs}
}
