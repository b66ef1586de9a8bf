package stratum

import (
	"github.com/aretw0/stratum/pkg/domain"
	"github.com/aretw0/stratum/pkg/ports"
)

// Dispatch submits an action for processing and returns the result the
// pipeline produced, normally the action unchanged.
type Dispatch func(action domain.Action) (domain.Action, error)

// Middleware intercepts dispatch. It receives the store's capability surface
// once at construction, then wraps the next dispatch in the chain. The
// wrapper decides whether, when, and with what action to call next.
type Middleware[S any] func(api ports.API[S]) func(next Dispatch) Dispatch

// Constructor builds a store from a reducer and optional preloaded state.
type Constructor[S any] func(reducer domain.Reducer[S], preloaded *S) (*Store[S], error)

// Enhancer augments store construction itself. ApplyMiddleware produces one;
// several compose right-to-left with Compose.
type Enhancer[S any] func(next Constructor[S]) Constructor[S]

// ApplyMiddleware returns an enhancer that installs the given middleware
// around the store's dispatch. The first middleware listed is the outermost
// wrapper: it sees every action first on the way in and the chain's result
// last on the way out. The last one calls the store's own transition.
//
// Every middleware receives the same capability value, whose Dispatch always
// forwards to the dispatch currently in effect. Dispatching through it while
// the pipeline is still assembling fails with domain.ErrPipelineAssembling.
func ApplyMiddleware[S any](middleware ...Middleware[S]) Enhancer[S] {
	return func(construct Constructor[S]) Constructor[S] {
		return func(reducer domain.Reducer[S], preloaded *S) (*Store[S], error) {
			store, err := construct(reducer, preloaded)
			if err != nil {
				return nil, err
			}

			entry := Dispatch(func(a domain.Action) (domain.Action, error) {
				return a, domain.ErrPipelineAssembling
			})
			api := &capability[S]{
				state: store.State,
				dispatch: func(a domain.Action) (domain.Action, error) {
					// Deliberately late-bound: entry is replaced once the
					// chain is assembled.
					return entry(a)
				},
			}

			wrappers := make([]func(Dispatch) Dispatch, 0, len(middleware))
			for _, mw := range middleware {
				if mw == nil {
					return nil, domain.ErrNilMiddleware
				}
				wrappers = append(wrappers, mw(api))
			}

			entry = Compose(wrappers...)(store.dispatch)
			store.dispatch = entry
			return store, nil
		}
	}
}

// capability adapts a store to ports.API, exposing exactly the read and
// dispatch operations and nothing else of its internals.
type capability[S any] struct {
	state    func() (S, error)
	dispatch Dispatch
}

func (c *capability[S]) State() (S, error) {
	return c.state()
}

func (c *capability[S]) Dispatch(action domain.Action) (domain.Action, error) {
	return c.dispatch(action)
}
