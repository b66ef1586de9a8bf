package domain

// Reducer is a pure state transition function. It must return the input state
// unchanged for action types it does not recognize, including the reserved
// ActionInit and ActionReplace types, for which returning a valid default
// state is the initialization contract. Reducers must never dispatch.
type Reducer[S any] func(state S, action Action) S

// Listener is invoked once per completed transition. It receives no
// arguments; read the store to observe the new state.
type Listener func()
