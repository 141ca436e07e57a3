package approuter

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a presentation could not be resolved.
// Failures raised by the pipeline itself match exactly one of them with errors.Is.
// Failures raised by a configuration step are returned with the step label and no kind.
var (
	// ErrConstructionFailed indicates the source provider could not produce a screen
	// of the requested type.
	ErrConstructionFailed = errors.New("failed to construct source screen")

	// ErrEmbeddingFailed indicates the embedder could not place the source into a container.
	ErrEmbeddingFailed = errors.New("failed to embed source screen")

	// ErrTargetConstructionFailed indicates the anchor screen could not be found or
	// is not of the required type.
	ErrTargetConstructionFailed = errors.New("failed to construct target screen")

	// ErrNoStackToPushOn indicates push found no stack container on the target.
	ErrNoStackToPushOn = errors.New("no stack container to push on")

	// ErrPushingStack indicates push was asked to push a stack container onto another one.
	ErrPushingStack = errors.New("trying to push a stack container")

	// ErrNotImplemented indicates Show was called without a registered show handler.
	ErrNotImplemented = errors.New("not implemented")
)

var kinds = []error{
	ErrConstructionFailed,
	ErrEmbeddingFailed,
	ErrTargetConstructionFailed,
	ErrNoStackToPushOn,
	ErrPushingStack,
	ErrNotImplemented,
}

// PresentationError is returned by pipeline actions. It carries the action that failed,
// the screen type it was resolving, the error kind and the underlying cause, if any.
// errors.Is matches both the kind and the cause.
type PresentationError struct {
	Op     string // Action that failed (e.g., "push", "present")
	Screen string // Type name of the screen being resolved
	Kind   error  // One of the Err* sentinels, nil for configuration step failures
	Step   string // Label of the failing configuration step, if any
	Err    error  // Underlying cause, may be nil
}

func (e *PresentationError) Error() string {
	switch {
	case e.Kind == nil:
		return fmt.Sprintf("approuter: %s %s: step %q: %v", e.Op, e.Screen, e.Step, e.Err)
	case e.Err != nil && !errors.Is(e.Err, e.Kind):
		return fmt.Sprintf("approuter: %s %s: %v: %v", e.Op, e.Screen, e.Kind, e.Err)
	default:
		return fmt.Sprintf("approuter: %s %s: %v", e.Op, e.Screen, e.Kind)
	}
}

func (e *PresentationError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newPresentationError(op, screen string, kind, err error) *PresentationError {
	return &PresentationError{Op: op, Screen: screen, Kind: kind, Err: err}
}

// wrapKind attaches the stage kind to err. A nested PresentationError is returned as is.
func wrapKind(op, screen string, kind, err error) error {
	var pe *PresentationError
	if errors.As(err, &pe) {
		return err
	}
	return newPresentationError(op, screen, kind, err)
}

// KindOf returns the sentinel kind carried by err, or nil if err is not a presentation failure.
func KindOf(err error) error {
	var pe *PresentationError
	if errors.As(err, &pe) && pe.Kind != nil {
		return pe.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// IsTargetFailure reports whether err means the anchor screen could not be resolved.
func IsTargetFailure(err error) bool {
	return errors.Is(err, ErrTargetConstructionFailed) || errors.Is(err, ErrNoStackToPushOn)
}
