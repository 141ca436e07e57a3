// Package approuter locates, builds and presents screens in a host toolkit's
// container hierarchy of stacks, tab sets and modal presentations.
//
// The toolkit itself stays behind small interfaces (Screen, StackContainer,
// TabContainer, Window). approuter adds three things on top of them: finding the
// topmost visible screen, building a screen from a declarative source, and pushing,
// presenting or installing it as the root with a pluggable animation.
//
// # Basic Usage
//
//	// One router per display surface; Shared() is the process-wide default.
//	r := approuter.New(approuter.WithWindow(window), approuter.WithCatalog(catalog))
//
//	// Build a DetailScreen from the "Detail" template, wrap it in a new stack,
//	// configure it and present it on whatever is on top.
//	detail, err := approuter.Presenter[*DetailScreen](r).
//	    FromTemplate("Detail", false).
//	    EmbedInStack(nil).
//	    Configure("item", func(s *DetailScreen) error {
//	        s.Item = item
//	        return nil
//	    }).
//	    Present(true, func() { log.Println("presented") })
//
// # Resolution Order
//
// Every action runs the same stages: construct the source, embed it, inject the view
// model (Route only), apply the labelled configuration steps in registration order,
// resolve the anchor and dispatch. Each stage stops the action at its first failure and
// nothing is retried. Stages after a failure never run, so a failing configuration step
// leaves the container hierarchy untouched.
//
// Re-registering a configuration step under an existing label replaces it but keeps
// its position:
//
//	p.Configure("a", a1).Configure("b", b).Configure("a", a2) // runs a2, then b
//
// # Threading
//
// Like the toolkits it drives, approuter is single threaded. Call it from the UI thread
// only; completion callbacks are delivered there by the toolkit.
package approuter
