package approuter

import (
	"fmt"
	"reflect"
)

// ViewFactory builds screens for a requested type, optionally from an argument.
type ViewFactory interface {
	BuildView(t reflect.Type, args ...any) (Screen, error)
}

// ViewModelFactory builds view models for a requested type from zero or more arguments.
type ViewModelFactory interface {
	BuildViewModel(t reflect.Type, args ...any) (any, error)
}

// ViewModelHolder is a screen that accepts a view model of type VM.
type ViewModelHolder[VM any] interface {
	Screen
	SetViewModel(vm VM)
}

// Route is a Pipeline whose source and view model come from factories.
// The view model is injected right before the labelled configuration steps run.
// Fluent setters are redeclared on Route so chains keep the Route type.
type Route[T ViewModelHolder[VM], VM any] struct {
	*Pipeline[T]

	views      ViewFactory
	viewModels ViewModelFactory
	viewModel  func() (VM, bool, error)
}

// NewRoute returns a route on r using the given factories. Without a view model
// provider no view model is injected.
func NewRoute[T ViewModelHolder[VM], VM any](r *Router, views ViewFactory, viewModels ViewModelFactory) *Route[T, VM] {
	route := &Route[T, VM]{
		Pipeline:   Presenter[T](r),
		views:      views,
		viewModels: viewModels,
	}
	route.Pipeline.inject = route.injectViewModel
	return route
}

func (r *Route[T, VM]) injectViewModel(source T) error {
	if r.viewModel == nil {
		return nil
	}
	vm, ok, err := r.viewModel()
	if err != nil {
		return err
	}
	if ok {
		source.SetViewModel(vm)
	}
	return nil
}

// FromFactory sources T from the view factory, passing args through.
func (r *Route[T, VM]) FromFactory(args ...any) *Route[T, VM] {
	views := r.views
	r.Pipeline.From(func() (T, error) {
		return BuildView[T](views, args...)
	})
	return r
}

// BuildViewModel injects a view model built by the view model factory from args.
// The factory is called on every resolution.
func (r *Route[T, VM]) BuildViewModel(args ...any) *Route[T, VM] {
	viewModels := r.viewModels
	r.viewModel = func() (VM, bool, error) {
		vm, err := BuildViewModel[VM](viewModels, args...)
		return vm, err == nil, err
	}
	return r
}

// WithViewModel injects vm on every resolution.
func (r *Route[T, VM]) WithViewModel(vm VM) *Route[T, VM] {
	r.viewModel = func() (VM, bool, error) { return vm, true, nil }
	return r
}

// WithViewModelFunc injects the view model returned by fn. A false result skips injection.
func (r *Route[T, VM]) WithViewModelFunc(fn func() (VM, bool, error)) *Route[T, VM] {
	r.viewModel = fn
	return r
}

// Clone returns an independent copy of the route that injects its own view model.
func (r *Route[T, VM]) Clone() *Route[T, VM] {
	c := &Route[T, VM]{
		Pipeline:   r.Pipeline.Clone(),
		views:      r.views,
		viewModels: r.viewModels,
		viewModel:  r.viewModel,
	}
	c.Pipeline.inject = c.injectViewModel
	return c
}

func (r *Route[T, VM]) OnTop(stop ...StopFunc) *Route[T, VM] {
	r.Pipeline.OnTop(stop...)
	return r
}

func (r *Route[T, VM]) OnRoot() *Route[T, VM] {
	r.Pipeline.OnRoot()
	return r
}

func (r *Route[T, VM]) On(provider TargetProvider) *Route[T, VM] {
	r.Pipeline.On(provider)
	return r
}

func (r *Route[T, VM]) OnFunc(fn func() (Screen, error)) *Route[T, VM] {
	r.Pipeline.OnFunc(fn)
	return r
}

func (r *Route[T, VM]) OnScreen(s Screen) *Route[T, VM] {
	r.Pipeline.OnScreen(s)
	return r
}

func (r *Route[T, VM]) FromTemplate(name string, initial bool) *Route[T, VM] {
	r.Pipeline.FromTemplate(name, initial)
	return r
}

func (r *Route[T, VM]) FromResource(name string) *Route[T, VM] {
	r.Pipeline.FromResource(name)
	return r
}

func (r *Route[T, VM]) FromInstance(instance T) *Route[T, VM] {
	r.Pipeline.FromInstance(instance)
	return r
}

func (r *Route[T, VM]) From(factory func() (T, error)) *Route[T, VM] {
	r.Pipeline.From(factory)
	return r
}

func (r *Route[T, VM]) FromProvider(provider SourceProvider[T]) *Route[T, VM] {
	r.Pipeline.FromProvider(provider)
	return r
}

func (r *Route[T, VM]) EmbedInStack(stack StackContainer) *Route[T, VM] {
	r.Pipeline.EmbedInStack(stack)
	return r
}

func (r *Route[T, VM]) EmbedInTabs(tabs TabContainer) *Route[T, VM] {
	r.Pipeline.EmbedInTabs(tabs)
	return r
}

func (r *Route[T, VM]) EmbedIn(fn func(source T) (Screen, error)) *Route[T, VM] {
	r.Pipeline.EmbedIn(fn)
	return r
}

func (r *Route[T, VM]) Configure(label string, step func(source T) error) *Route[T, VM] {
	r.Pipeline.Configure(label, step)
	return r
}

func (r *Route[T, VM]) ConfigureFunc(step func(source T)) *Route[T, VM] {
	r.Pipeline.ConfigureFunc(step)
	return r
}

func (r *Route[T, VM]) OnShow(handler ShowHandler[T]) *Route[T, VM] {
	r.Pipeline.OnShow(handler)
	return r
}

func (r *Route[T, VM]) WithAnimation(anim Animation) *Route[T, VM] {
	r.Pipeline.WithAnimation(anim)
	return r
}

// BuildView asks f for a screen of type T.
func BuildView[T Screen](f ViewFactory, args ...any) (T, error) {
	var zero T
	if f == nil {
		return zero, fmt.Errorf("%w: no view factory", ErrConstructionFailed)
	}
	screen, err := f.BuildView(reflect.TypeFor[T](), args...)
	if err != nil {
		return zero, err
	}
	typed, ok := screen.(T)
	if !ok {
		return zero, fmt.Errorf("%w: view factory built %T, not %s", ErrConstructionFailed, screen, TypeName[T]())
	}
	return typed, nil
}

// BuildViewModel asks f for a view model of type VM.
func BuildViewModel[VM any](f ViewModelFactory, args ...any) (VM, error) {
	var zero VM
	if f == nil {
		return zero, fmt.Errorf("approuter: no view model factory for %s", TypeName[VM]())
	}
	vm, err := f.BuildViewModel(reflect.TypeFor[VM](), args...)
	if err != nil {
		return zero, err
	}
	typed, ok := vm.(VM)
	if !ok {
		return zero, fmt.Errorf("approuter: view model factory built %T, not %s", vm, TypeName[VM]())
	}
	return typed, nil
}
