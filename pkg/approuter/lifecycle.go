package approuter

// LifecycleEvent is a point in a screen's life reported by its container.
type LifecycleEvent int

const (
	Loaded LifecycleEvent = iota
	WillAppear
	DidAppear
	WillDisappear
	DidDisappear
)

func (e LifecycleEvent) String() string {
	switch e {
	case Loaded:
		return "loaded"
	case WillAppear:
		return "will-appear"
	case DidAppear:
		return "did-appear"
	case WillDisappear:
		return "will-disappear"
	case DidDisappear:
		return "did-disappear"
	default:
		return "unknown"
	}
}

// LifecycleObserver is called for every event a container reports.
type LifecycleObserver func(s Screen, event LifecycleEvent, animated bool)

// Lifecycle is a registry of observers. Toolkits embed or hold one and call Notify at
// the defined lifecycle points; nothing is intercepted behind their back.
// The zero value is ready to use.
type Lifecycle struct {
	nextID    int
	observers []registeredObserver
}

type registeredObserver struct {
	id int
	fn LifecycleObserver
}

// Observe registers fn and returns a function that removes it.
func (l *Lifecycle) Observe(fn LifecycleObserver) (cancel func()) {
	l.nextID++
	id := l.nextID
	l.observers = append(l.observers, registeredObserver{id: id, fn: fn})
	return func() {
		for i, o := range l.observers {
			if o.id == id {
				l.observers = append(l.observers[:i:i], l.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserveScreen registers fn for events of target only.
func (l *Lifecycle) ObserveScreen(target Screen, fn func(event LifecycleEvent, animated bool)) (cancel func()) {
	return l.Observe(func(s Screen, event LifecycleEvent, animated bool) {
		if s == target {
			fn(event, animated)
		}
	})
}

// ObserveType registers fn for events of screens of type S.
func ObserveType[S Screen](l *Lifecycle, fn func(s S, event LifecycleEvent, animated bool)) (cancel func()) {
	return l.Observe(func(s Screen, event LifecycleEvent, animated bool) {
		if typed, ok := s.(S); ok {
			fn(typed, event, animated)
		}
	})
}

// Notify reports event for s to every observer registered at the time of the call.
func (l *Lifecycle) Notify(s Screen, event LifecycleEvent, animated bool) {
	observers := append([]registeredObserver(nil), l.observers...)
	for _, o := range observers {
		o.fn(s, event, animated)
	}
}
