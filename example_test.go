package stratum_test

import (
	"fmt"
	"log"

	"github.com/aretw0/stratum"
	"github.com/aretw0/stratum/pkg/domain"
	"github.com/aretw0/stratum/pkg/ports"
)

// ExampleNew builds a counter store, subscribes to it, and dispatches a few
// actions.
func ExampleNew() {
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

	unsubscribe, err := store.Subscribe(func() {
		state, _ := store.State()
		fmt.Println("value:", state.Value)
	})
	if err != nil {
		log.Fatal(err)
	}
	defer unsubscribe()

	store.Dispatch(domain.Action{Type: "counter/increment"})
	store.Dispatch(domain.Action{Type: "counter/increment"})
	store.Dispatch(domain.Action{Type: "counter/decrement"})

	// Output:
	// value: 1
	// value: 2
	// value: 1
}

// ExampleApplyMiddleware installs a middleware that announces every action
// before the reducer runs.
func ExampleApplyMiddleware() {
	type Counter struct {
		Value int
	}

	reducer := func(s Counter, a domain.Action) Counter {
		if a.Type == "counter/increment" {
			s.Value++
		}
		return s
	}

	announce := func(api ports.API[Counter]) func(stratum.Dispatch) stratum.Dispatch {
		return func(next stratum.Dispatch) stratum.Dispatch {
			return func(a domain.Action) (domain.Action, error) {
				fmt.Println("dispatching:", a.Type)
				return next(a)
			}
		}
	}

	store, err := stratum.New(reducer,
		stratum.WithEnhancer[Counter](stratum.ApplyMiddleware(announce)),
	)
	if err != nil {
		log.Fatal(err)
	}

	store.Dispatch(domain.Action{Type: "counter/increment"})

	state, _ := store.State()
	fmt.Println("value:", state.Value)

	// Output:
	// dispatching: counter/increment
	// value: 1
}
