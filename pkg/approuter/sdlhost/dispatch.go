package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// Dispatch runs fn on the thread running sdl.Main and waits for it. It is the
// dispatcher for reactive subscriptions in SDL applications:
//
//	func main() {
//	    sdl.Main(func() {
//	        sub := reactive.Push(ctx, sdlhost.Dispatch, results)
//	        defer sub.Dispose()
//	        ...
//	    })
//	}
//
// Calling Dispatch from the sdl.Main thread itself deadlocks.
func Dispatch(fn func()) {
	sdl.Do(fn)
}
