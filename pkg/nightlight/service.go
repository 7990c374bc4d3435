package nightlight

import "github.com/craole-cc/wallter/util/log"

// Service layers enable/disable/toggle semantics over a Store. Every
// mutating call runs a full read-decode-mutate-encode-write cycle; when the
// state is already in the requested shape, nothing is written back.
type Service struct {
	store Store
}

// NewService returns a Service bound to the given store. Passing nil binds
// the platform default store.
func NewService(store Store) *Service {
	if store == nil {
		store = DefaultStore()
	}
	return &Service{store: store}
}

// State reads and decodes the current Night Light state.
func (s *Service) State() (*State, error) {
	data, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return Deserialize(data)
}

// IsEnabled reports whether Night Light is currently forced on.
func (s *Service) IsEnabled() (bool, error) {
	st, err := s.State()
	if err != nil {
		return false, err
	}
	return st.Enabled, nil
}

// Enable forces Night Light on and persists the new state. It returns true
// if the state changed; when Night Light was already on, the store is left
// untouched.
func (s *Service) Enable() (bool, error) {
	st, err := s.State()
	if err != nil {
		return false, err
	}
	if !st.Enable() {
		return false, nil
	}
	if err := s.store.Write(st.Serialize()); err != nil {
		return false, err
	}
	log.Debugf("nightlight enabled, timestamp %d", st.Timestamp)
	return true, nil
}

// Disable turns Night Light off and persists the new state. It returns true
// if the state changed; when Night Light was already off, the store is left
// untouched.
func (s *Service) Disable() (bool, error) {
	st, err := s.State()
	if err != nil {
		return false, err
	}
	if !st.Disable() {
		return false, nil
	}
	if err := s.store.Write(st.Serialize()); err != nil {
		return false, err
	}
	log.Debugf("nightlight disabled, timestamp %d", st.Timestamp)
	return true, nil
}

// Toggle flips the Night Light state and persists it. It returns whether a
// change was made together with the new enabled value. A toggle always flips,
// so changed is true on success; the flag is kept explicit for callers that
// log or test the transition.
func (s *Service) Toggle() (changed, enabled bool, err error) {
	on, err := s.IsEnabled()
	if err != nil {
		return false, false, err
	}
	if on {
		changed, err = s.Disable()
		return changed, false, err
	}
	changed, err = s.Enable()
	return changed, true, err
}
