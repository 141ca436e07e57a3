package approuter

import (
	"strings"
	"time"
)

// AnimationKind selects how a root replacement is animated.
type AnimationKind int

const (
	AnimationNone           AnimationKind = iota // Swap immediately
	AnimationViewDissolve                        // Cross-dissolve from the old root's content to the new one
	AnimationWindowDissolve                      // Cross-dissolve the whole window
	AnimationSnapshot                            // Scale and fade a snapshot of the old content
)

func (k AnimationKind) String() string {
	switch k {
	case AnimationNone:
		return "none"
	case AnimationViewDissolve:
		return "view"
	case AnimationWindowDissolve:
		return "window"
	case AnimationSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// ParseAnimationKind is the inverse of AnimationKind.String, ignoring case and surrounding
// space. Unknown names map to AnimationWindowDissolve.
func ParseAnimationKind(name string) AnimationKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return AnimationNone
	case "view":
		return AnimationViewDissolve
	case "snapshot":
		return AnimationSnapshot
	default:
		return AnimationWindowDissolve
	}
}

const (
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultSnapshotScale     = 1.2
	DefaultSnapshotOpacity   = 0.0
)

// Animation describes a root replacement transition. It is plain data.
type Animation struct {
	Kind     AnimationKind
	Duration time.Duration
	Scale    float64 // Final snapshot scale, AnimationSnapshot only
	Opacity  float64 // Final snapshot opacity, AnimationSnapshot only
}

// DefaultAnimation is a 300ms window cross-dissolve.
var DefaultAnimation = Animation{Kind: AnimationWindowDissolve, Duration: DefaultAnimationDuration}

// NoAnimation swaps the root immediately.
var NoAnimation = Animation{Kind: AnimationNone}

// ViewDissolve returns a view cross-dissolve of the given duration.
func ViewDissolve(d time.Duration) Animation {
	return Animation{Kind: AnimationViewDissolve, Duration: d}
}

// WindowDissolve returns a window cross-dissolve of the given duration.
func WindowDissolve(d time.Duration) Animation {
	return Animation{Kind: AnimationWindowDissolve, Duration: d}
}

// Snapshot returns a snapshot animation scaling to scale and fading to opacity.
func Snapshot(d time.Duration, scale, opacity float64) Animation {
	return Animation{Kind: AnimationSnapshot, Duration: d, Scale: scale, Opacity: opacity}
}

// Transition is handed to an Animator when a root replacement is animated.
// The animator must call Commit exactly once to install To as the root.
type Transition struct {
	Window    Window
	From      Screen
	To        Screen
	Animation Animation
	Commit    func()
}

// Animator performs a root replacement transition and calls done when it finishes.
type Animator interface {
	Animate(t Transition, done func(finished bool))
}

// AnimatorFunc adapts a function to an Animator.
type AnimatorFunc func(t Transition, done func(finished bool))

func (f AnimatorFunc) Animate(t Transition, done func(finished bool)) { f(t, done) }

// ImmediateAnimator commits without animating and reports the transition as finished.
var ImmediateAnimator Animator = AnimatorFunc(func(t Transition, done func(bool)) {
	t.Commit()
	done(true)
})
