package approuter

// DefaultStepLabel is the label used by ConfigureFunc.
const DefaultStepLabel = "default"

// Step configures a constructed source before it is shown.
type Step[T Screen] func(source T) error

// Steps is an ordered set of labelled configuration steps.
// Registering an existing label replaces its step in place; a new label is appended.
type Steps[T Screen] struct {
	order []string
	steps map[string]Step[T]
}

// Set registers step under label.
func (s *Steps[T]) Set(label string, step Step[T]) {
	if s.steps == nil {
		s.steps = make(map[string]Step[T])
	}
	if _, exists := s.steps[label]; !exists {
		s.order = append(s.order, label)
	}
	s.steps[label] = step
}

// Remove drops the step registered under label.
func (s *Steps[T]) Remove(label string) {
	if _, exists := s.steps[label]; !exists {
		return
	}
	delete(s.steps, label)
	for i, l := range s.order {
		if l == label {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			return
		}
	}
}

// Labels returns the labels in execution order.
func (s *Steps[T]) Labels() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of registered steps.
func (s *Steps[T]) Len() int {
	return len(s.order)
}

// Apply runs every step on source in order and stops at the first failure,
// returning the failing label with the error.
func (s *Steps[T]) Apply(source T) (string, error) {
	for _, label := range s.order {
		if err := s.steps[label](source); err != nil {
			return label, err
		}
	}
	return "", nil
}

func (s *Steps[T]) clone() Steps[T] {
	c := Steps[T]{
		order: append([]string(nil), s.order...),
		steps: make(map[string]Step[T], len(s.steps)),
	}
	for k, v := range s.steps {
		c.steps[k] = v
	}
	return c
}
