package ports

import "github.com/aretw0/stratum/pkg/domain"

// Dispatcher submits an action for synchronous processing. The returned
// action is whatever the dispatch pipeline produced, normally the input
// action unchanged.
type Dispatcher interface {
	Dispatch(action domain.Action) (domain.Action, error)
}

// StateReader reads the current state of a container.
type StateReader[S any] interface {
	State() (S, error)
}

// API is the capability surface handed to middleware: exactly read and
// dispatch, nothing else of the store. Its Dispatch always refers to the
// dispatch currently in effect, so a middleware that dispatches sends the
// action through the whole chain, including itself.
type API[S any] interface {
	StateReader[S]
	Dispatcher
}
