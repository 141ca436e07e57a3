// Package reactive binds streams of pipelines to presentation actions.
//
// Each value received on the input channel is resolved with the bound action. A failing
// resolution is logged and the subscription keeps going; only the input channel closing
// or the context ending stops it.
//
// Every resolution goes through a Dispatcher that runs it on the context owning the
// container tree. SDL applications pass sdlhost.Dispatch:
//
//	sub := reactive.Push(ctx, sdlhost.Dispatch, results)
//	defer sub.Dispose()
package reactive

import (
	"context"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/approuter/pkg/approuter"
	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// Subscription is a running binding.
type Subscription struct {
	cancel   context.CancelFunc
	done     chan struct{}
	handled  atomic.Int64
	failures atomic.Int64
}

// Dispose stops the subscription. Values already being resolved finish first.
func (s *Subscription) Dispose() {
	s.cancel()
	<-s.done
}

// Done is closed once the subscription has stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Handled returns the number of values resolved so far, including failed ones.
func (s *Subscription) Handled() int64 {
	return s.handled.Load()
}

// Failures returns the number of values whose resolution failed.
func (s *Subscription) Failures() int64 {
	return s.failures.Load()
}

// Dispatcher runs fn on the context that owns the container tree and returns once fn
// has returned.
type Dispatcher func(fn func())

type config struct {
	logger  *slog.Logger
	onError func(error)
}

// Option configures a subscription.
type Option func(*config)

// WithLogger logs failures to logger instead of the internal router logger.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithErrorHandler calls fn with every failure, after logging it.
func WithErrorHandler(fn func(error)) Option {
	return func(c *config) { c.onError = fn }
}

// Each resolves every value received on in with action, run through dispatch.
// It panics if dispatch is nil.
func Each[P any](ctx context.Context, dispatch Dispatcher, in <-chan P, name string, action func(P) error, opts ...Option) *Subscription {
	if dispatch == nil {
		panic("reactive: nil Dispatcher for " + name)
	}
	cfg := config{logger: internal.GetInternalLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		for {
			select {
			case <-ctx.Done():
				return
			case p, ok := <-in:
				if !ok {
					return
				}
				var err error
				dispatch(func() { err = action(p) })
				sub.handled.Inc()
				if err == nil {
					continue
				}
				sub.failures.Inc()
				if cfg.logger != nil {
					cfg.logger.Warn("[Route] failed to "+name, "error", err, "kind", kindName(err))
				}
				if cfg.onError != nil {
					cfg.onError(err)
				}
			}
		}
	}()

	return sub
}

func kindName(err error) string {
	if kind := approuter.KindOf(err); kind != nil {
		return kind.Error()
	}
	return "step"
}

// Push pushes every received pipeline without animation.
func Push[T approuter.Screen](ctx context.Context, dispatch Dispatcher, in <-chan *approuter.Pipeline[T], opts ...Option) *Subscription {
	return Each(ctx, dispatch, in, "push", func(p *approuter.Pipeline[T]) error {
		_, err := p.Push(false, nil)
		return err
	}, opts...)
}

// PushOn pushes every received pipeline onto target. Bind target with approuter.Weak
// so the subscription does not keep the anchor screen alive; once it is released,
// every push fails with approuter.ErrTargetConstructionFailed.
func PushOn[T approuter.Screen](ctx context.Context, dispatch Dispatcher, in <-chan *approuter.Pipeline[T], target approuter.TargetProvider, opts ...Option) *Subscription {
	return Each(ctx, dispatch, in, "push", func(p *approuter.Pipeline[T]) error {
		_, err := p.On(target).Push(false, nil)
		return err
	}, opts...)
}

// Present presents every received pipeline without animation.
func Present[T approuter.Screen](ctx context.Context, dispatch Dispatcher, in <-chan *approuter.Pipeline[T], opts ...Option) *Subscription {
	return Each(ctx, dispatch, in, "present", func(p *approuter.Pipeline[T]) error {
		_, err := p.Present(false, nil)
		return err
	}, opts...)
}

// SetAsRoot installs every received pipeline as the root with its default animation.
func SetAsRoot[T approuter.Screen](ctx context.Context, dispatch Dispatcher, in <-chan *approuter.Pipeline[T], opts ...Option) *Subscription {
	return Each(ctx, dispatch, in, "set as root", func(p *approuter.Pipeline[T]) error {
		_, err := p.SetAsRootDefault(nil)
		return err
	}, opts...)
}

// Show shows every received pipeline through its show handler.
func Show[T approuter.Screen](ctx context.Context, dispatch Dispatcher, in <-chan *approuter.Pipeline[T], opts ...Option) *Subscription {
	return Each(ctx, dispatch, in, "show", func(p *approuter.Pipeline[T]) error {
		_, err := p.Show()
		return err
	}, opts...)
}
