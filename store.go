package stratum

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/stratum/internal/logging"
	"github.com/aretw0/stratum/pkg/domain"
)

// Unsubscribe removes a previously registered listener. It is idempotent:
// the second and later calls are no-ops.
type Unsubscribe func() error

// Store is a synchronous state container. All mutable state (the value, the
// reducer, the listener registry, the reentrancy flag) is per-instance, so
// multiple stores coexist without sharing anything.
//
// A Store is not safe for concurrent use; confine each instance to a single
// goroutine. See the package documentation for the concurrency model.
type Store[S any] struct {
	reducer  domain.Reducer[S]
	state    S
	dispatch Dispatch // dispatch currently in effect; middleware may wrap it
	logger   *slog.Logger

	// dispatching is true strictly while the reducer executes. It rejects
	// reentrant dispatch/read/subscribe calls instead of serializing them.
	dispatching bool

	// currentListeners is the snapshot notified by the in-flight transition;
	// nextListeners is what Subscribe and unsubscribe mutate. They alias
	// until the first mutation after a transition begins, which copies
	// nextListeners so the in-flight notification pass is never affected.
	currentListeners []*listenerRef
	nextListeners    []*listenerRef
	listenersShared  bool
}

// listenerRef gives each subscription an identity, so the same function can
// be subscribed more than once and removed individually.
type listenerRef struct {
	fn domain.Listener
}

// New constructs a store around reducer and dispatches one internal
// initialization action before returning, so the reducer establishes its
// initial state without any caller action. Options supply preloaded state, a
// construction enhancer, and a logger.
func New[S any](reducer domain.Reducer[S], opts ...Option[S]) (*Store[S], error) {
	if reducer == nil {
		return nil, domain.ErrNilReducer
	}

	cfg := config[S]{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	construct := Constructor[S](func(r domain.Reducer[S], preloaded *S) (*Store[S], error) {
		return newStore(r, preloaded, cfg.logger)
	})
	if cfg.enhancer != nil {
		construct = cfg.enhancer(construct)
	}
	return construct(reducer, cfg.preloaded)
}

func newStore[S any](reducer domain.Reducer[S], preloaded *S, logger *slog.Logger) (*Store[S], error) {
	if reducer == nil {
		return nil, domain.ErrNilReducer
	}

	s := &Store[S]{
		reducer: reducer,
		logger:  logger,
	}
	if preloaded != nil {
		s.state = *preloaded
	}
	s.dispatch = s.transition

	if _, err := s.transition(domain.Action{Type: domain.ActionInit}); err != nil {
		return nil, fmt.Errorf("initial dispatch: %w", err)
	}
	return s, nil
}

// State returns the current state. It fails while the reducer is executing:
// the reducer already holds the current state as its argument and must pass
// it down instead of reading it back.
func (s *Store[S]) State() (S, error) {
	if s.dispatching {
		var zero S
		return zero, domain.ErrStateAccessDuringDispatch
	}
	return s.state, nil
}

// Subscribe registers fn to run after every transition and returns its
// unsubscribe handle. Registration targets the next transition: subscribing
// from inside a listener never injects fn into the notification pass already
// under way. Subscribing from inside a reducer fails.
func (s *Store[S]) Subscribe(fn domain.Listener) (Unsubscribe, error) {
	if fn == nil {
		return nil, domain.ErrNilListener
	}
	if s.dispatching {
		return nil, domain.ErrSubscribeDuringDispatch
	}

	ref := &listenerRef{fn: fn}
	s.ensureCanMutateNextListeners()
	s.nextListeners = append(s.nextListeners, ref)

	subscribed := true
	return func() error {
		if !subscribed {
			return nil
		}
		if s.dispatching {
			return domain.ErrUnsubscribeDuringDispatch
		}
		subscribed = false

		s.ensureCanMutateNextListeners()
		for i, r := range s.nextListeners {
			if r == ref {
				s.nextListeners = append(s.nextListeners[:i], s.nextListeners[i+1:]...)
				break
			}
		}
		return nil
	}, nil
}

// ensureCanMutateNextListeners copies the listener list if the in-flight (or
// last) notification snapshot still aliases it.
func (s *Store[S]) ensureCanMutateNextListeners() {
	if !s.listenersShared {
		return
	}
	s.nextListeners = slices.Clone(s.nextListeners)
	s.listenersShared = false
}

// Dispatch submits an action for processing and returns it unchanged, unless
// middleware installed by an enhancer intercepts it. Dispatching from inside
// a reducer fails; dispatching from inside a listener is allowed.
func (s *Store[S]) Dispatch(action domain.Action) (domain.Action, error) {
	return s.dispatch(action)
}

// transition is the base dispatch: validate, reduce, swap state, notify.
// Middleware pipelines wrap this function but always end up calling it.
func (s *Store[S]) transition(action domain.Action) (domain.Action, error) {
	if err := action.Valid(); err != nil {
		return action, err
	}
	if s.dispatching {
		return action, domain.ErrDispatchInProgress
	}

	// The flag clears even if the reducer panics, so the store stays usable;
	// the state swap below is skipped in that case because the panic
	// propagates first.
	s.dispatching = true
	next := func() S {
		defer func() { s.dispatching = false }()
		return s.reducer(s.state, action)
	}()
	s.state = next

	s.currentListeners = s.nextListeners
	s.listenersShared = true
	for _, ref := range s.currentListeners {
		ref.fn()
	}

	s.logger.Debug("transition complete",
		"action", action.Type,
		"listeners", len(s.currentListeners),
	)
	return action, nil
}

// ReplaceReducer swaps the active reducer and immediately runs one transition
// with the reserved replace action, so the new reducer initializes any state
// slices it owns. Existing subscriptions survive the swap.
func (s *Store[S]) ReplaceReducer(next domain.Reducer[S]) error {
	if next == nil {
		return domain.ErrNilReducer
	}
	s.reducer = next
	_, err := s.transition(domain.Action{Type: domain.ActionReplace})
	return err
}
