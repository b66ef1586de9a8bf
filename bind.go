package stratum

import (
	"fmt"

	"github.com/aretw0/stratum/pkg/domain"
	"github.com/aretw0/stratum/pkg/ports"
)

// ActionCreator builds an action from call arguments.
type ActionCreator func(args ...any) domain.Action

// BoundCreator builds an action and immediately dispatches it, returning the
// dispatched action and any dispatch error.
type BoundCreator func(args ...any) (domain.Action, error)

// BindCreator wires a single action creator to a dispatcher, so callers can
// trigger transitions without holding the store themselves (a component given
// only the bound function, for instance).
func BindCreator(creator ActionCreator, d ports.Dispatcher) (BoundCreator, error) {
	if creator == nil {
		return nil, domain.ErrNilActionCreator
	}
	if d == nil {
		return nil, domain.ErrNilDispatcher
	}
	return func(args ...any) (domain.Action, error) {
		return d.Dispatch(creator(args...))
	}, nil
}

// BindCreators binds every creator in the map to d, preserving keys.
func BindCreators(creators map[string]ActionCreator, d ports.Dispatcher) (map[string]BoundCreator, error) {
	if creators == nil {
		return nil, domain.ErrNilActionCreator
	}
	if d == nil {
		return nil, domain.ErrNilDispatcher
	}

	bound := make(map[string]BoundCreator, len(creators))
	for name, creator := range creators {
		bc, err := BindCreator(creator, d)
		if err != nil {
			return nil, fmt.Errorf("bind %q: %w", name, err)
		}
		bound[name] = bc
	}
	return bound, nil
}
