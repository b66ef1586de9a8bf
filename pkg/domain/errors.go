package domain

import "errors"

// ErrActionType is returned when an action is dispatched without a type.
var ErrActionType = errors.New("action type is missing")

// ErrNilReducer is returned when a store is created, or its reducer replaced,
// with a nil reducer.
var ErrNilReducer = errors.New("reducer must not be nil")

// ErrNilListener is returned when a nil listener is subscribed.
var ErrNilListener = errors.New("listener must not be nil")

// ErrNilMiddleware is returned when a nil middleware is passed to the
// pipeline builder.
var ErrNilMiddleware = errors.New("middleware must not be nil")

// ErrNilDispatcher is returned when binding action creators to a nil
// dispatcher.
var ErrNilDispatcher = errors.New("dispatcher must not be nil")

// ErrNilActionCreator is returned when binding a nil action creator or a nil
// creator map.
var ErrNilActionCreator = errors.New("action creator must not be nil")

// ErrNilObserver is returned when observing a store with a nil observer.
var ErrNilObserver = errors.New("observer must not be nil")

// ErrDispatchInProgress is returned when Dispatch is called while the reducer
// for an earlier dispatch is still executing. Reducers must never dispatch.
var ErrDispatchInProgress = errors.New("dispatch while a dispatch is in progress")

// ErrStateAccessDuringDispatch is returned when the state is read from inside
// an executing reducer. The reducer already receives the current state as its
// argument; it must be passed down instead of read back.
var ErrStateAccessDuringDispatch = errors.New("state read while the reducer is executing")

// ErrSubscribeDuringDispatch is returned when Subscribe is called from inside
// an executing reducer.
var ErrSubscribeDuringDispatch = errors.New("subscribe while the reducer is executing")

// ErrUnsubscribeDuringDispatch is returned when an unsubscribe handle is
// called from inside an executing reducer.
var ErrUnsubscribeDuringDispatch = errors.New("unsubscribe while the reducer is executing")

// ErrPipelineAssembling is returned when a middleware dispatches while the
// pipeline is still being built. Dispatching that early would silently bypass
// the middleware not yet instantiated.
var ErrPipelineAssembling = errors.New("dispatch while the middleware pipeline is assembling")
