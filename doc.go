/*
Package stratum is a minimal synchronous state container for Go.

A Store holds a single application state value that can only change by
dispatching Actions through a pure Reducer. Listeners subscribed to the store
are notified after every transition, and a middleware pipeline lets
cross-cutting logic intercept the dispatch call before it reaches the reducer.

# Concept

State flows one way. The host dispatches an action, the reducer computes the
next state from the current state and the action, the store swaps the state in
and notifies its listeners. The store never inspects the state value itself;
it is opaque and only ever replaced wholesale, never mutated in place.

# Usage

Define a state type and a reducer, then construct the store:

	type Counter struct {
		Value int
	}

	reducer := func(s Counter, a domain.Action) Counter {
		switch a.Type {
		case "counter/increment":
			s.Value++
		case "counter/decrement":
			s.Value--
		}
		return s
	}

	store, err := stratum.New(reducer)
	if err != nil {
		log.Fatal(err)
	}

	unsubscribe, _ := store.Subscribe(func() {
		state, _ := store.State()
		log.Println("value:", state.Value)
	})
	defer unsubscribe()

	store.Dispatch(domain.Action{Type: "counter/increment"})

# Middleware

Middleware wraps dispatch. It receives a narrow ports.API capability (read and
dispatch only) and the next dispatch in the chain, and decides what to forward:

	audit := func(api ports.API[Counter]) func(stratum.Dispatch) stratum.Dispatch {
		return func(next stratum.Dispatch) stratum.Dispatch {
			return func(a domain.Action) (domain.Action, error) {
				log.Println("dispatching", a.Type)
				return next(a)
			}
		}
	}

	store, err := stratum.New(reducer,
		stratum.WithEnhancer(stratum.ApplyMiddleware(audit)),
	)

The first middleware in the list is the outermost wrapper: it sees every
action first and the chain's result last.

# Concurrency

A Store is deliberately not safe for concurrent use. It models a single
logical thread of control: every operation completes (or fails) synchronously,
and reentrant calls from inside a reducer are rejected rather than serialized.
Confine each store to one goroutine.
*/
package stratum
