// Package factory is a small type-keyed container implementing approuter.ViewFactory
// and approuter.ViewModelFactory.
//
// Views registered for a type are built by their builder. A view type without a
// builder falls back to the catalog: the initial unit of the template named after the
// type, then the resource of that name.
//
//	c := factory.New(catalog)
//	factory.RegisterViewModel(c, func(args ...any) (*DetailModel, error) {
//	    id, _ := factory.Arg[string](args, 0)
//	    return store.Detail(id)
//	})
//	route := approuter.NewRoute[*DetailScreen, *DetailModel](r, c, c).
//	    FromFactory().
//	    BuildViewModel("42")
package factory

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/BrandonKowalski/approuter/pkg/approuter"
)

// ErrFailedToBuild indicates the container has no way to build the requested type.
var ErrFailedToBuild = errors.New("failed to build")

// Container builds views and view models by type.
// A Container is not safe for concurrent registration.
type Container struct {
	catalog    *approuter.Catalog
	views      map[reflect.Type]func(args ...any) (approuter.Screen, error)
	viewModels map[reflect.Type]func(args ...any) (any, error)
}

// New returns an empty container falling back to catalog for views. catalog may be nil.
func New(catalog *approuter.Catalog) *Container {
	return &Container{
		catalog:    catalog,
		views:      make(map[reflect.Type]func(args ...any) (approuter.Screen, error)),
		viewModels: make(map[reflect.Type]func(args ...any) (any, error)),
	}
}

// RegisterView registers the builder for views of type T.
func RegisterView[T approuter.Screen](c *Container, fn func(args ...any) (T, error)) {
	c.views[reflect.TypeFor[T]()] = func(args ...any) (approuter.Screen, error) {
		return fn(args...)
	}
}

// RegisterViewModel registers the builder for view models of type VM.
func RegisterViewModel[VM any](c *Container, fn func(args ...any) (VM, error)) {
	c.viewModels[reflect.TypeFor[VM]()] = func(args ...any) (any, error) {
		return fn(args...)
	}
}

// BuildView builds a view of type t.
func (c *Container) BuildView(t reflect.Type, args ...any) (approuter.Screen, error) {
	if fn, ok := c.views[t]; ok {
		s, err := fn(args...)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrFailedToBuild, t, err)
		}
		return s, nil
	}

	if s, ok := c.fromCatalog(t); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w %s: no builder, template or resource", ErrFailedToBuild, t)
}

func (c *Container) fromCatalog(t reflect.Type) (approuter.Screen, bool) {
	if c.catalog == nil {
		return nil, false
	}
	name := baseName(t)

	if unit, ok := c.catalog.InstantiateTemplate(name, name, true); ok {
		if matches(unit, t) {
			return unit, true
		}
		if stack, ok := unit.(approuter.StackContainer); ok {
			if screens := stack.Screens(); len(screens) > 0 && matches(screens[0], t) {
				stack.SetScreens(screens[1:])
				return screens[0], true
			}
		}
	}

	if s, ok := c.catalog.InstantiateResource(name); ok && matches(s, t) {
		return s, true
	}
	return nil, false
}

// BuildViewModel builds a view model of type t.
func (c *Container) BuildViewModel(t reflect.Type, args ...any) (any, error) {
	fn, ok := c.viewModels[t]
	if !ok {
		return nil, fmt.Errorf("%w %s: no builder", ErrFailedToBuild, t)
	}
	vm, err := fn(args...)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFailedToBuild, t, err)
	}
	return vm, nil
}

// Arg returns args[i] as an A.
func Arg[A any](args []any, i int) (A, bool) {
	var zero A
	if i < 0 || i >= len(args) {
		return zero, false
	}
	a, ok := args[i].(A)
	return a, ok
}

func baseName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func matches(s approuter.Screen, t reflect.Type) bool {
	if s == nil {
		return false
	}
	st := reflect.TypeOf(s)
	if t.Kind() == reflect.Interface {
		return st.Implements(t)
	}
	return st == t
}
