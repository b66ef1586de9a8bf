package domain

// Reserved action types dispatched by the container itself. Reducers must not
// handle these explicitly: returning their default state for an unknown type
// is what initializes (or re-initializes) the state tree.
const (
	// ActionInit is dispatched exactly once during store construction.
	ActionInit = "@@stratum/INIT"

	// ActionReplace is dispatched when the active reducer is swapped, so the
	// new reducer can initialize any state slices it owns.
	ActionReplace = "@@stratum/REPLACE"
)

// Action describes an intended state change. Type is the mandatory
// discriminator; Payload and Meta are opaque to the container and travel
// verbatim to the reducer.
type Action struct {
	Type    string
	Payload any
	Meta    map[string]any
}

// Valid reports whether the action can be dispatched.
func (a Action) Valid() error {
	if a.Type == "" {
		return ErrActionType
	}
	return nil
}
