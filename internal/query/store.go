package query

// Store owns the current State. It is driven from the UI event loop only and
// is not safe for concurrent use.
type Store struct {
	state      State
	descriptor Descriptor
}

// NewStore creates a store starting from the given state
func NewStore(initial State) *Store {
	return &Store{
		state:      initial,
		descriptor: DescriptorOf(initial),
	}
}

// State returns a copy of the current state
func (s *Store) State() State {
	return s.state
}

// Descriptor returns the descriptor derived from the current state
func (s *Store) Descriptor() Descriptor {
	return s.descriptor
}

// Dispatch applies the action and returns the new descriptor along with
// whether it differs from the previous one. Callers issue exactly one fetch
// per changed descriptor; writing a field's current value is not a change.
func (s *Store) Dispatch(action Action) (Descriptor, bool) {
	s.state = Reduce(s.state, action)
	next := DescriptorOf(s.state)
	changed := next != s.descriptor
	s.descriptor = next
	return next, changed
}
