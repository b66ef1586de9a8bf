package stratum

import "github.com/aretw0/stratum/pkg/domain"

// Observer receives state values pushed by a store.
type Observer[S any] interface {
	Next(state S)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[S any] func(S)

// Next calls f with the state.
func (f ObserverFunc[S]) Next(state S) {
	f(state)
}

// Observe delivers the current state to o immediately, then again after every
// completed transition, until the returned handle unsubscribes. It is built
// entirely on Subscribe and State and adds no invariants of its own.
func (s *Store[S]) Observe(o Observer[S]) (Unsubscribe, error) {
	if o == nil {
		return nil, domain.ErrNilObserver
	}

	push := func() {
		if state, err := s.State(); err == nil {
			o.Next(state)
		}
	}

	unsubscribe, err := s.Subscribe(push)
	if err != nil {
		return nil, err
	}
	push()
	return unsubscribe, nil
}
