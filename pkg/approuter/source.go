package approuter

import (
	"fmt"
	"reflect"
)

// SourceProvider produces the screen a pipeline presents.
type SourceProvider[T Screen] interface {
	Provide(r *Router) (T, error)
}

// SourceFunc adapts a factory function to a SourceProvider. Its errors propagate unchanged.
type SourceFunc[T Screen] func() (T, error)

func (f SourceFunc[T]) Provide(*Router) (T, error) { return f() }

// FromTemplate instantiates T from the named catalog template. An empty name uses T's
// type name. With initial set, the template's initial unit is used and, when that unit
// is a stack container, its first screen is taken out of it. Otherwise the unit named
// after T is used.
func FromTemplate[T Screen](name string, initial bool) SourceProvider[T] {
	return templateSource[T]{name: name, initial: initial}
}

type templateSource[T Screen] struct {
	name    string
	initial bool
}

func (s templateSource[T]) Provide(r *Router) (T, error) {
	var zero T
	typeName := TypeName[T]()
	name := s.name
	if name == "" {
		name = typeName
	}

	unit, ok := r.Catalog().InstantiateTemplate(name, typeName, s.initial)
	if !ok {
		return zero, fmt.Errorf("%w: template %q has no unit for %s", ErrConstructionFailed, name, typeName)
	}
	if screen, ok := unit.(T); ok {
		return screen, nil
	}
	if stack, ok := unit.(StackContainer); ok {
		screens := stack.Screens()
		if len(screens) > 0 {
			if screen, ok := screens[0].(T); ok {
				stack.SetScreens(screens[1:])
				return screen, nil
			}
		}
	}
	return zero, fmt.Errorf("%w: template %q produced %T, not %s", ErrConstructionFailed, name, unit, typeName)
}

// FromResource instantiates T from a freestanding catalog resource. An empty name uses
// T's type name.
func FromResource[T Screen](name string) SourceProvider[T] {
	return resourceSource[T]{name: name}
}

type resourceSource[T Screen] struct {
	name string
}

func (s resourceSource[T]) Provide(r *Router) (T, error) {
	var zero T
	name := s.name
	if name == "" {
		name = TypeName[T]()
	}
	screen, ok := r.Catalog().InstantiateResource(name)
	if !ok {
		return zero, fmt.Errorf("%w: no resource %q", ErrConstructionFailed, name)
	}
	typed, ok := screen.(T)
	if !ok {
		return zero, fmt.Errorf("%w: resource %q produced %T, not %s", ErrConstructionFailed, name, screen, TypeName[T]())
	}
	return typed, nil
}

// Preconstructed returns the same instance on every resolution.
func Preconstructed[T Screen](instance Screen) SourceProvider[T] {
	return preconstructedSource[T]{instance: instance}
}

type preconstructedSource[T Screen] struct {
	instance Screen
}

func (s preconstructedSource[T]) Provide(*Router) (T, error) {
	typed, ok := s.instance.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: instance %T is not %s", ErrConstructionFailed, s.instance, TypeName[T]())
	}
	return typed, nil
}

// isNil reports whether s is nil or a nil value of a nilable kind held in the interface.
func isNil(s Screen) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// TypeName returns the name of T with pointer indirections removed.
func TypeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
