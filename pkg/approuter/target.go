package approuter

import (
	"fmt"
	"weak"
)

// TargetProvider produces the anchor screen an action is performed on.
type TargetProvider interface {
	Target(r *Router) (Screen, error)
}

// TargetFunc adapts a function to a TargetProvider.
type TargetFunc func() (Screen, error)

func (f TargetFunc) Target(*Router) (Screen, error) { return f() }

type topTarget struct {
	stop []StopFunc
}

func (t topTarget) Target(r *Router) (Screen, error) {
	return r.Topmost(t.stop...), nil
}

// Top anchors on the topmost screen of the router's root.
func Top(stop ...StopFunc) TargetProvider {
	return topTarget{stop: stop}
}

type rootTarget struct{}

func (rootTarget) Target(r *Router) (Screen, error) {
	return r.Root(), nil
}

// Root anchors on the router's root screen.
func Root() TargetProvider {
	return rootTarget{}
}

// Weak anchors on the screen ptr points to without keeping it alive. Once the screen
// has been collected, resolution fails with ErrTargetConstructionFailed.
// *P must implement Screen.
func Weak[P any](ptr *P) TargetProvider {
	if ptr == nil {
		return weakTarget[P]{}
	}
	return weakTarget[P]{ref: weak.Make(ptr), valid: true}
}

type weakTarget[P any] struct {
	ref   weak.Pointer[P]
	valid bool
}

func (t weakTarget[P]) Target(*Router) (Screen, error) {
	if !t.valid {
		return nil, fmt.Errorf("%w: weak target is nil", ErrTargetConstructionFailed)
	}
	ptr := t.ref.Value()
	if ptr == nil {
		return nil, fmt.Errorf("%w: weak target was released", ErrTargetConstructionFailed)
	}
	screen, ok := any(ptr).(Screen)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a screen", ErrTargetConstructionFailed, ptr)
	}
	return screen, nil
}

// ResolveTarget resolves p on r and narrows the anchor to S.
func ResolveTarget[S Screen](r *Router, p TargetProvider) (S, error) {
	var zero S
	target, err := p.Target(r)
	if err != nil {
		return zero, err
	}
	if target == nil {
		return zero, fmt.Errorf("%w: no anchor screen", ErrTargetConstructionFailed)
	}
	typed, ok := target.(S)
	if !ok {
		return zero, fmt.Errorf("%w: anchor %T is not %s", ErrTargetConstructionFailed, target, TypeName[S]())
	}
	return typed, nil
}
