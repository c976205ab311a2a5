// Copyright 2020 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quorum

import (
	"testing"

	"github.com/DanglingPointer/async/cancel"
)

// Invariant 9: OnAllCompleted fires only after every tracked callback has
// run AND Detach has been called, regardless of order.
func TestOnAllCompletedFiresAfterDetach(t *testing.T) {
	fired := 0
	s := NewOnAllCompleted(func() { fired++ })

	c := cancel.NewCanceller(4)
	cb1, _, _ := cancel.MakeCallback(c, func(int) {})
	cb2, _, _ := cancel.MakeCallback(c, func(int) {})

	w1, err := TrackAll(s, cb1)
	if err != nil {
		t.Fatalf("TrackAll: %v", err)
	}
	w2, err := TrackAll(s, cb2)
	if err != nil {
		t.Fatalf("TrackAll: %v", err)
	}

	w1.Invoke(1)
	if fired != 0 {
		t.Fatalf("expected no fire with one callback still pending, got %d", fired)
	}
	w2.Invoke(1)
	if fired != 0 {
		t.Fatalf("expected no fire before Detach even though all callbacks ran, got %d", fired)
	}

	s.Detach()
	if fired != 1 {
		t.Fatalf("expected exactly 1 fire after Detach, got %d", fired)
	}

	s.Detach() // idempotent
	if fired != 1 {
		t.Fatalf("expected Detach to be idempotent, got %d fires", fired)
	}
}

func TestOnAllCompletedFiresOnDetachWhenAlreadyDone(t *testing.T) {
	fired := 0
	s := NewOnAllCompleted(func() { fired++ })

	c := cancel.NewCanceller(1)
	cb, _, _ := cancel.MakeCallback(c, func(int) {})
	w, _ := TrackAll(s, cb)
	w.Invoke(1)

	s.Detach()
	if fired != 1 {
		t.Fatalf("expected fire immediately on Detach, got %d", fired)
	}
}

// Invariant 10: OnAnyCompleted fires on the first callback to run, once
// the synchronizer is detached, and only once.
func TestOnAnyCompletedFiresOnceAfterDetach(t *testing.T) {
	fired := 0
	s := NewOnAnyCompleted(func() { fired++ })

	c := cancel.NewCanceller(4)
	cb1, _, _ := cancel.MakeCallback(c, func(int) {})
	cb2, _, _ := cancel.MakeCallback(c, func(int) {})

	w1, _ := TrackAny(s, cb1)
	w2, _ := TrackAny(s, cb2)

	w1.Invoke(1)
	if fired != 0 {
		t.Fatalf("expected no fire before Detach, got %d", fired)
	}

	s.Detach()
	if fired != 1 {
		t.Fatalf("expected exactly 1 fire right after Detach since a callback already ran, got %d", fired)
	}

	w2.Invoke(1)
	if fired != 1 {
		t.Fatalf("expected second callback to not re-fire listener, got %d", fired)
	}
}

func TestOnAnyCompletedDetachThenFire(t *testing.T) {
	fired := 0
	s := NewOnAnyCompleted(func() { fired++ })

	c := cancel.NewCanceller(2)
	cb, _, _ := cancel.MakeCallback(c, func(int) {})
	w, _ := TrackAny(s, cb)

	s.Detach()
	if fired != 0 {
		t.Fatalf("expected no fire yet, nothing has run, got %d", fired)
	}
	w.Invoke(1)
	if fired != 1 {
		t.Fatalf("expected fire once the callback runs post-detach, got %d", fired)
	}
}

func TestTrackOnZeroValueFails(t *testing.T) {
	var s OnAllCompleted
	c := cancel.NewCanceller(1)
	cb, _, _ := cancel.MakeCallback(c, func(int) {})
	if _, err := TrackAll(&s, cb); err != ErrInvalidState {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestTrackAfterDetachFails(t *testing.T) {
	s := NewOnAllCompleted(func() {})
	c := cancel.NewCanceller(2)

	cb1, _, _ := cancel.MakeCallback(c, func(int) {})
	if _, err := TrackAll(s, cb1); err != nil {
		t.Fatalf("TrackAll before Detach: %v", err)
	}

	s.Detach()

	cb2, _, _ := cancel.MakeCallback(c, func(int) {})
	if _, err := TrackAll(s, cb2); err != ErrInvalidState {
		t.Fatalf("expected ErrInvalidState tracking after Detach, got %v", err)
	}
}
