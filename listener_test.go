package stratum_test

import (
	"errors"
	"testing"

	"github.com/aretw0/stratum"
	"github.com/aretw0/stratum/pkg/domain"
)

func TestListener_SnapshotIsolation(t *testing.T) {
	store, err := stratum.New(countReducer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	lateCalls := 0
	registered := false
	if _, err := store.Subscribe(func() {
		if registered {
			return
		}
		registered = true
		// Subscribing mid-notification must not add the listener to the
		// pass already under way.
		if _, subErr := store.Subscribe(func() { lateCalls++ }); subErr != nil {
			t.Errorf("Subscribe from listener failed: %v", subErr)
		}
	}); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if _, err := store.Dispatch(domain.Action{Type: "inc"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if lateCalls != 0 {
		t.Fatalf("Late listener ran during the transition that registered it")
	}

	if _, err := store.Dispatch(domain.Action{Type: "inc"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if lateCalls != 1 {
		t.Errorf("Expected late listener to run on the next transition, got %d calls", lateCalls)
	}
}

func TestListener_UnsubscribeDuringNotification(t *testing.T) {
	store, err := stratum.New(countReducer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var unsubscribeSecond stratum.Unsubscribe
	firstCalls, secondCalls := 0, 0

	if _, err := store.Subscribe(func() {
		firstCalls++
		// Removing a later listener mid-pass must not skip it this round.
		if unsubscribeSecond != nil {
			if unsubErr := unsubscribeSecond(); unsubErr != nil {
				t.Errorf("Unsubscribe failed: %v", unsubErr)
			}
			unsubscribeSecond = nil
		}
	}); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	unsubscribeSecond, err = store.Subscribe(func() { secondCalls++ })
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if _, err := store.Dispatch(domain.Action{Type: "inc"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if secondCalls != 1 {
		t.Errorf("Second listener was part of the snapshot, expected 1 call, got %d", secondCalls)
	}

	if _, err := store.Dispatch(domain.Action{Type: "inc"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if firstCalls != 2 {
		t.Errorf("Expected first listener called twice, got %d", firstCalls)
	}
	if secondCalls != 1 {
		t.Errorf("Second listener removed, expected to stay at 1, got %d", secondCalls)
	}
}

func TestListener_UnsubscribeIdempotent(t *testing.T) {
	store, err := stratum.New(countReducer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	calls := 0
	unsubscribe, err := store.Subscribe(func() { calls++ })
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	another := 0
	if _, err := store.Subscribe(func() { another++ }); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if err := unsubscribe(); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	if err := unsubscribe(); err != nil {
		t.Fatalf("Second unsubscribe must be a no-op, got %v", err)
	}

	if _, err := store.Dispatch(domain.Action{Type: "inc"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("Unsubscribed listener ran %d times", calls)
	}
	if another != 1 {
		t.Errorf("Remaining listener expected once, got %d", another)
	}
}

func TestListener_UnsubscribeInsideReducerRejected(t *testing.T) {
	var store *stratum.Store[counter]
	var unsubscribe stratum.Unsubscribe
	var unsubErr error

	reducer := func(s counter, a domain.Action) counter {
		if a.Type == "unsub" {
			unsubErr = unsubscribe()
		}
		return s
	}

	store, err := stratum.New(reducer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	calls := 0
	unsubscribe, err = store.Subscribe(func() { calls++ })
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if _, err := store.Dispatch(domain.Action{Type: "unsub"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if !errors.Is(unsubErr, domain.ErrUnsubscribeDuringDispatch) {
		t.Fatalf("Expected ErrUnsubscribeDuringDispatch, got %v", unsubErr)
	}

	// The rejected call must not have removed the listener.
	if calls != 1 {
		t.Errorf("Expected listener still registered and called once, got %d", calls)
	}
	if _, err := store.Dispatch(domain.Action{Type: "inc"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected listener called twice, got %d", calls)
	}
}

func TestListener_NilRejected(t *testing.T) {
	store, err := stratum.New(countReducer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := store.Subscribe(nil); err == nil {
		t.Fatal("Expected error subscribing nil listener")
	}
}

func TestListener_DispatchFromListenerAllowed(t *testing.T) {
	store, err := stratum.New(countReducer)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dispatched := false
	if _, err := store.Subscribe(func() {
		if dispatched {
			return
		}
		dispatched = true
		// The reducer has finished by notification time, so this recurses
		// legally.
		if _, dispatchErr := store.Dispatch(domain.Action{Type: "inc"}); dispatchErr != nil {
			t.Errorf("Dispatch from listener failed: %v", dispatchErr)
		}
	}); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if _, err := store.Dispatch(domain.Action{Type: "inc"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	state, _ := store.State()
	if state.Value != 2 {
		t.Errorf("Expected 2 after chained dispatch, got %d", state.Value)
	}
}
