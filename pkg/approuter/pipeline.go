package approuter

import "fmt"

// ShowHandler implements Show for a pipeline.
type ShowHandler[T Screen] func(p *Pipeline[T]) (T, error)

// Pipeline accumulates the intent of a single presentation of a screen of type T and
// resolves it when an action is called.
//
// Each action constructs the source, embeds it, runs view-model injection and the
// labelled configuration steps, then dispatches to the container operation. Every call
// runs the whole sequence again and produces a new source, unless the source is
// Preconstructed. The returned screen is always the source, never its embedding.
//
// A Pipeline is not safe for concurrent use.
type Pipeline[T Screen] struct {
	router    *Router
	source    SourceProvider[T]
	target    TargetProvider
	embedder  Embedder[T]
	inject    func(source T) error
	steps     Steps[T]
	show      ShowHandler[T]
	animation Animation
}

// Presenter returns a pipeline for T on r. Defaults: on top, from the initial unit of the
// template named after T, no embedding.
func Presenter[T Screen](r *Router) *Pipeline[T] {
	if r == nil {
		r = Shared()
	}
	return &Pipeline[T]{
		router:    r,
		source:    FromTemplate[T]("", true),
		target:    Top(),
		embedder:  Identity[T](),
		animation: r.DefaultAnimation(),
	}
}

// PresenterFor returns a pipeline that presents instance itself.
func PresenterFor[T Screen](r *Router, instance T) *Pipeline[T] {
	return Presenter[T](r).FromInstance(instance)
}

// Router returns the router the pipeline resolves against.
func (p *Pipeline[T]) Router() *Router {
	return p.router
}

// Clone returns an independent copy of the pipeline.
func (p *Pipeline[T]) Clone() *Pipeline[T] {
	c := *p
	c.steps = p.steps.clone()
	return &c
}

// OnTop anchors presentation on the topmost screen.
func (p *Pipeline[T]) OnTop(stop ...StopFunc) *Pipeline[T] {
	p.target = Top(stop...)
	return p
}

// OnRoot anchors presentation on the root screen.
func (p *Pipeline[T]) OnRoot() *Pipeline[T] {
	p.target = Root()
	return p
}

// On anchors presentation on the screen returned by provider.
func (p *Pipeline[T]) On(provider TargetProvider) *Pipeline[T] {
	p.target = provider
	return p
}

// OnFunc anchors presentation on the screen returned by fn.
func (p *Pipeline[T]) OnFunc(fn func() (Screen, error)) *Pipeline[T] {
	return p.On(TargetFunc(fn))
}

// OnScreen anchors presentation on s.
func (p *Pipeline[T]) OnScreen(s Screen) *Pipeline[T] {
	return p.On(TargetFunc(func() (Screen, error) { return s, nil }))
}

// FromTemplate sources T from a catalog template. See FromTemplate.
func (p *Pipeline[T]) FromTemplate(name string, initial bool) *Pipeline[T] {
	p.source = FromTemplate[T](name, initial)
	return p
}

// FromResource sources T from a freestanding catalog resource.
func (p *Pipeline[T]) FromResource(name string) *Pipeline[T] {
	p.source = FromResource[T](name)
	return p
}

// FromInstance sources the same instance on every resolution.
func (p *Pipeline[T]) FromInstance(instance T) *Pipeline[T] {
	p.source = Preconstructed[T](instance)
	return p
}

// From sources T from factory.
func (p *Pipeline[T]) From(factory func() (T, error)) *Pipeline[T] {
	p.source = SourceFunc[T](factory)
	return p
}

// FromProvider sets the source provider.
func (p *Pipeline[T]) FromProvider(provider SourceProvider[T]) *Pipeline[T] {
	p.source = provider
	return p
}

// EmbedInStack appends the source to stack, or to a fresh stack when stack is nil.
func (p *Pipeline[T]) EmbedInStack(stack StackContainer) *Pipeline[T] {
	p.embedder = InStack[T](stack)
	return p
}

// EmbedInTabs appends the source to the screens of tabs.
func (p *Pipeline[T]) EmbedInTabs(tabs TabContainer) *Pipeline[T] {
	p.embedder = InTabs[T](tabs)
	return p
}

// EmbedIn transforms the source into the screen that is shown.
func (p *Pipeline[T]) EmbedIn(fn func(source T) (Screen, error)) *Pipeline[T] {
	p.embedder = EmbedFunc[T](fn)
	return p
}

// Configure registers step under label. An existing label keeps its position.
func (p *Pipeline[T]) Configure(label string, step func(source T) error) *Pipeline[T] {
	p.steps.Set(label, step)
	return p
}

// ConfigureFunc registers an infallible step under DefaultStepLabel.
func (p *Pipeline[T]) ConfigureFunc(step func(source T)) *Pipeline[T] {
	return p.Configure(DefaultStepLabel, func(source T) error {
		step(source)
		return nil
	})
}

// Steps returns the labelled configuration steps.
func (p *Pipeline[T]) Steps() *Steps[T] {
	return &p.steps
}

// OnShow sets the handler used by Show.
func (p *Pipeline[T]) OnShow(handler ShowHandler[T]) *Pipeline[T] {
	p.show = handler
	return p
}

// WithAnimation sets the animation used by SetAsRootDefault.
func (p *Pipeline[T]) WithAnimation(anim Animation) *Pipeline[T] {
	p.animation = anim
	return p
}

// Build constructs, embeds and configures a new source. It returns the source and the
// screen to show.
func (p *Pipeline[T]) Build() (T, Screen, error) {
	return p.build("build")
}

// ProvideSource builds and returns the configured source.
func (p *Pipeline[T]) ProvideSource() (T, error) {
	source, _, err := p.build("provide")
	return source, err
}

// ProvideEmbedded builds and returns the screen the source is embedded in.
func (p *Pipeline[T]) ProvideEmbedded() (Screen, error) {
	_, parent, err := p.build("provide")
	return parent, err
}

// ResolveTarget resolves the anchor screen without building anything.
func (p *Pipeline[T]) ResolveTarget() (Screen, error) {
	target, err := ResolveTarget[Screen](p.router, p.target)
	if err != nil {
		return nil, wrapKind("target", TypeName[T](), ErrTargetConstructionFailed, err)
	}
	return target, nil
}

func (p *Pipeline[T]) build(op string) (T, Screen, error) {
	var zero T
	name := TypeName[T]()

	source, err := p.source.Provide(p.router)
	if err == nil && isNil(source) {
		err = fmt.Errorf("%w: source provider returned nil", ErrConstructionFailed)
	}
	if err != nil {
		p.debug("error constructing source screen: %v", err)
		return zero, nil, wrapKind(op, name, ErrConstructionFailed, err)
	}

	parent, err := p.embedder.Embed(p.router, source)
	if err == nil && isNil(parent) {
		err = fmt.Errorf("%w: embedder returned nil", ErrEmbeddingFailed)
	}
	if err != nil {
		p.debug("error embedding screen: %v", err)
		return zero, nil, wrapKind(op, name, ErrEmbeddingFailed, err)
	}

	if p.inject != nil {
		if err := p.inject(source); err != nil {
			p.debug("error injecting view model: %v", err)
			return zero, nil, &PresentationError{Op: op, Screen: name, Step: "view-model", Err: err}
		}
	}

	if label, err := p.steps.Apply(source); err != nil {
		p.debug("configuration step %q failed: %v", label, err)
		return zero, nil, &PresentationError{Op: op, Screen: name, Step: label, Err: err}
	}

	return source, parent, nil
}

// Push builds the source and pushes it onto the anchor's stack container.
// done runs after the push transition completes.
func (p *Pipeline[T]) Push(animated bool, done func()) (T, error) {
	var zero T
	name := TypeName[T]()

	source, parent, err := p.build("push")
	if err != nil {
		return zero, err
	}

	target, err := ResolveTarget[Screen](p.router, p.target)
	if err != nil {
		p.debug("error fetching target screen: %v", err)
		return zero, wrapKind("push", name, ErrTargetConstructionFailed, err)
	}
	stack := StackFor(target)
	if stack == nil {
		p.debug("error fetching stack container from %T", target)
		return zero, newPresentationError("push", name, ErrNoStackToPushOn, nil)
	}
	if _, ok := parent.(StackContainer); ok {
		p.debug("refusing to push stack container %T", parent)
		return zero, newPresentationError("push", name, ErrPushingStack, nil)
	}

	if !PushOnto(stack, parent, animated, done) {
		p.debug("%T is already on the stack", parent)
	}
	return source, nil
}

// Present builds the source and presents it modally on the anchor.
// done runs after the presentation transition completes.
func (p *Pipeline[T]) Present(animated bool, done func()) (T, error) {
	var zero T

	source, parent, err := p.build("present")
	if err != nil {
		return zero, err
	}

	target, err := ResolveTarget[Screen](p.router, p.target)
	if err != nil {
		p.debug("error fetching target screen: %v", err)
		return zero, wrapKind("present", TypeName[T](), ErrTargetConstructionFailed, err)
	}

	target.Present(parent, animated, completion(done))
	return source, nil
}

// SetAsRoot builds the source and installs its embedding as the window's root using anim.
func (p *Pipeline[T]) SetAsRoot(anim Animation, done func(finished bool)) (T, error) {
	var zero T

	source, parent, err := p.build("setAsRoot")
	if err != nil {
		return zero, err
	}

	p.router.ReplaceRoot(parent, anim, done)
	return source, nil
}

// SetAsRootDefault is SetAsRoot with the pipeline's animation: the router's default
// animation unless changed with WithAnimation.
func (p *Pipeline[T]) SetAsRootDefault(done func(finished bool)) (T, error) {
	return p.SetAsRoot(p.animation, done)
}

// Show delegates to the handler registered with OnShow.
func (p *Pipeline[T]) Show() (T, error) {
	if p.show == nil {
		var zero T
		return zero, newPresentationError("show", TypeName[T](), ErrNotImplemented, nil)
	}
	return p.show(p)
}

func (p *Pipeline[T]) debug(format string, args ...any) {
	p.router.debugf("#[Presenter<"+TypeName[T]()+">] "+format, args...)
}
