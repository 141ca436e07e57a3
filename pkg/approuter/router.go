package approuter

import (
	"fmt"

	"go.uber.org/atomic"
)

// Router is the context every pipeline resolves against: it knows the display surface,
// where diagnostics go, how root replacements are animated and where templates come from.
//
// A process-wide Router is available through Shared for top-level use; tests and
// embedders construct their own with New and pass it to Presenter.
// Routers are not safe for concurrent use. All calls are expected on the UI thread.
type Router struct {
	windows  WindowProvider
	debug    DebugOutput
	animator Animator
	catalog  *Catalog
	anim     Animation
}

// Option configures a Router.
type Option func(*Router)

// WithWindowProvider sets the provider used to resolve the display surface.
func WithWindowProvider(p WindowProvider) Option {
	return func(r *Router) { r.windows = p }
}

// WithWindow pins the router to a single surface.
func WithWindow(w Window) Option {
	return WithWindowProvider(StaticWindow(w))
}

// WithDebugOutput sets the diagnostic sink.
func WithDebugOutput(out DebugOutput) Option {
	return func(r *Router) { r.debug = out }
}

// WithAnimator sets the animator used by ReplaceRoot.
func WithAnimator(a Animator) Option {
	return func(r *Router) { r.animator = a }
}

// WithDefaultAnimation sets the animation pipelines use for SetAsRootDefault.
func WithDefaultAnimation(anim Animation) Option {
	return func(r *Router) { r.anim = anim }
}

// WithCatalog sets the template and resource catalog used by template sources.
func WithCatalog(c *Catalog) Option {
	return func(r *Router) { r.catalog = c }
}

// New creates a Router. Without WithWindowProvider it owns a detached in-memory window.
func New(opts ...Option) *Router {
	r := &Router{
		debug:    DebugLog,
		animator: ImmediateAnimator,
		anim:     DefaultAnimation,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.windows == nil {
		r.windows = StaticWindow(&detachedWindow{})
	}
	if r.catalog == nil {
		r.catalog = NewCatalog()
	}
	if r.debug == nil {
		r.debug = DebugNone
	}
	if r.animator == nil {
		r.animator = ImmediateAnimator
	}
	return r
}

var shared atomic.Pointer[Router]

// Shared returns the process-wide Router, creating a default one on first use.
func Shared() *Router {
	if r := shared.Load(); r != nil {
		return r
	}
	r := New()
	if shared.CompareAndSwap(nil, r) {
		return r
	}
	return shared.Load()
}

// SetShared replaces the process-wide Router and returns the previous one.
func SetShared(r *Router) *Router {
	return shared.Swap(r)
}

// Window resolves the current display surface.
func (r *Router) Window() Window {
	return r.windows.Window()
}

// SetWindowProvider replaces the window provider.
func (r *Router) SetWindowProvider(p WindowProvider) {
	r.windows = p
}

// SetDebugOutput replaces the diagnostic sink.
func (r *Router) SetDebugOutput(out DebugOutput) {
	if out == nil {
		out = DebugNone
	}
	r.debug = out
}

// SetAnimator replaces the root replacement animator.
func (r *Router) SetAnimator(a Animator) {
	if a == nil {
		a = ImmediateAnimator
	}
	r.animator = a
}

// Catalog returns the template and resource catalog.
func (r *Router) Catalog() *Catalog {
	return r.catalog
}

// DefaultAnimation returns the animation new pipelines use for SetAsRootDefault.
func (r *Router) DefaultAnimation() Animation {
	return r.anim
}

// Root returns the root screen of the current window.
func (r *Router) Root() Screen {
	return r.Window().Root()
}

// SetRoot installs s as the root screen without animation.
func (r *Router) SetRoot(s Screen) {
	r.Window().SetRoot(s)
}

// Topmost returns the topmost screen starting from the root.
func (r *Router) Topmost(stop ...StopFunc) Screen {
	return Topmost(r.Root(), stop...)
}

// TopmostFrom returns the topmost screen starting from start.
func (r *Router) TopmostFrom(start Screen, stop ...StopFunc) Screen {
	return Topmost(start, stop...)
}

// ReplaceRoot installs s as the root screen using anim. done, if set, is called once the
// transition has finished. Without a current root, or with AnimationNone, the swap is
// immediate and done reports true.
func (r *Router) ReplaceRoot(s Screen, anim Animation, done func(finished bool)) {
	if done == nil {
		done = func(bool) {}
	}
	window := r.Window()
	from := window.Root()
	if from == nil || anim.Kind == AnimationNone {
		window.SetRoot(s)
		done(true)
		return
	}

	committed := false
	r.animator.Animate(Transition{
		Window:    window,
		From:      from,
		To:        s,
		Animation: normalizeAnimation(anim),
		Commit: func() {
			if committed {
				return
			}
			committed = true
			window.SetRoot(s)
		},
	}, func(finished bool) {
		if !committed {
			committed = true
			window.SetRoot(s)
		}
		done(finished)
	})
}

func normalizeAnimation(anim Animation) Animation {
	if anim.Duration <= 0 {
		anim.Duration = DefaultAnimationDuration
	}
	if anim.Kind == AnimationSnapshot && anim.Scale == 0 {
		anim.Scale = DefaultSnapshotScale
	}
	return anim
}

func (r *Router) debugf(format string, args ...any) {
	r.debug(fmt.Sprintf(format, args...))
}

type detachedWindow struct {
	root Screen
}

func (w *detachedWindow) Root() Screen { return w.root }
func (w *detachedWindow) SetRoot(s Screen) { w.root = s }
