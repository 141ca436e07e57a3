package sdlhost

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/approuter/pkg/approuter"
	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

const defaultFrameInterval = 16 * time.Millisecond

// FadeAnimator animates root replacements by fading the window out, committing the new
// root and fading back in. Every animation kind fades the whole window; snapshot
// animations fade out to their final opacity instead of zero.
//
// Animate blocks the calling thread for the duration of the animation.
type FadeAnimator struct {
	// Render is called after every opacity change with the current root.
	Render func(root approuter.Screen)
	// FrameInterval is the delay between two frames. Zero means about 60 frames per second.
	FrameInterval time.Duration
}

func (a FadeAnimator) Animate(t approuter.Transition, done func(finished bool)) {
	w, ok := t.Window.(*Window)
	if !ok || w.SDL == nil {
		t.Commit()
		done(true)
		return
	}

	low := float32(0)
	if t.Animation.Kind == approuter.AnimationSnapshot {
		low = float32(t.Animation.Opacity)
	}
	half := t.Animation.Duration / 2

	if err := a.fade(w, 1, low, half); err != nil {
		internal.GetInternalLogger().Debug("Window opacity unsupported, swapping root", "error", err)
		t.Commit()
		a.render(w)
		done(true)
		return
	}
	t.Commit()
	err := a.fade(w, low, 1, half)
	if err != nil {
		w.SDL.SetWindowOpacity(1)
	}
	done(err == nil)
}

func (a FadeAnimator) fade(w *Window, from, to float32, d time.Duration) error {
	interval := a.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}

	start := sdl.GetTicks64()
	for {
		elapsed := time.Duration(sdl.GetTicks64()-start) * time.Millisecond
		p := progress(elapsed, d)
		if err := w.SDL.SetWindowOpacity(from + (to-from)*p); err != nil {
			return err
		}
		a.render(w)
		if p >= 1 {
			return nil
		}
		sdl.Delay(uint32(interval / time.Millisecond))
	}
}

func (a FadeAnimator) render(w *Window) {
	if a.Render != nil {
		a.Render(w.root)
	}
}

// progress returns how far into d the elapsed time is, clamped to [0, 1].
func progress(elapsed, d time.Duration) float32 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float32(elapsed) / float32(d)
}
