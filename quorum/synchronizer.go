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
	"runtime"
	"sync"

	"github.com/DanglingPointer/async/cancel"
)

// detachBias is added to trackedCount at construction, so firedCount can
// never reach trackedCount before Detach subtracts it back out, no matter
// how many real callbacks have been tracked and fired in the meantime.
const detachBias = 10_000

// state is the bookkeeping shared between a synchronizer and every
// Callback it has wrapped. It's guarded by mu since, unlike the original
// design, tracked callbacks may run concurrently on different goroutines.
type state struct {
	mu           sync.Mutex
	trackedCount uint32
	firedCount   uint32
	listener     func()
	detached     bool
	dead         bool
}

func newState(listener func()) *state {
	return &state{trackedCount: detachBias, listener: listener}
}

// track increments trackedCount and returns whether the state is still
// valid. Once the synchronizer has been Detached, no further callback may
// be tracked, even if the quorum hasn't fired yet.
func (s *state) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dead || s.detached {
		return false
	}
	s.trackedCount++
	return true
}

// OnAllCompleted fires its listener once every tracked callback has
// executed and the synchronizer has been Detached, whichever happens
// last.
type OnAllCompleted struct {
	st *state
}

// NewOnAllCompleted builds an OnAllCompleted whose listener is called
// exactly once, with no arguments, once both conditions above hold.
//
// A finalizer is armed as a Detach backstop, so a synchronizer that's
// simply dropped (rather than explicitly Detach-ed) still eventually
// fires if all its tracked callbacks already ran.
func NewOnAllCompleted(listener func()) *OnAllCompleted {
	s := &OnAllCompleted{st: newState(listener)}
	runtime.SetFinalizer(s, (*OnAllCompleted).Detach)
	return s
}

// Detach removes the bias this synchronizer added at construction,
// firing the listener immediately if every tracked callback has already
// run. Detach is idempotent; calling it more than once only the first
// call has any effect.
func (s *OnAllCompleted) Detach() {
	if s.st == nil {
		return
	}
	s.st.mu.Lock()
	if s.st.detached || s.st.dead {
		s.st.mu.Unlock()
		return
	}
	s.st.detached = true
	s.st.trackedCount -= detachBias
	fire := s.st.firedCount == s.st.trackedCount
	if fire {
		s.st.dead = true
	}
	listener := s.st.listener
	s.st.mu.Unlock()
	if fire {
		listener()
	}
}

// TrackAll wraps cb so that, in addition to running cb's own function,
// it counts toward s's quorum. It returns a new Callback sharing cb's
// liveness; the original cb is unaffected and may still be used directly.
//
// TrackAll fails with ErrInvalidState if s has already been Detached
// (whether or not its listener has fired yet), or if s is the zero value.
func TrackAll[A any](s *OnAllCompleted, cb cancel.Callback[A]) (cancel.Callback[A], error) {
	if s.st == nil || !s.st.track() {
		return cb, ErrInvalidState
	}
	st := s.st
	return cb.Wrapped(func(orig func(A)) func(A) {
		return func(a A) {
			orig(a)
			st.mu.Lock()
			st.firedCount++
			fire := st.detached && st.firedCount == st.trackedCount
			if fire {
				st.dead = true
			}
			listener := st.listener
			st.mu.Unlock()
			if fire {
				listener()
			}
		}
	}), nil
}

// OnAnyCompleted fires its listener the first time any tracked callback
// executes, provided the synchronizer has already been Detached by then
// (or as soon as it is, if a callback already fired first).
type OnAnyCompleted struct {
	st *state
}

// NewOnAnyCompleted builds an OnAnyCompleted whose listener is called at
// most once, the first time a tracked callback runs after Detach.
func NewOnAnyCompleted(listener func()) *OnAnyCompleted {
	s := &OnAnyCompleted{st: newState(listener)}
	runtime.SetFinalizer(s, (*OnAnyCompleted).Detach)
	return s
}

// Detach removes the bias this synchronizer added at construction. If any
// tracked callback has already run by now, the listener fires immediately.
// Detach is idempotent.
func (s *OnAnyCompleted) Detach() {
	if s.st == nil {
		return
	}
	s.st.mu.Lock()
	if s.st.detached || s.st.dead {
		s.st.mu.Unlock()
		return
	}
	s.st.detached = true
	s.st.trackedCount -= detachBias
	fireNow := s.st.firedCount > 0
	allDone := s.st.firedCount == s.st.trackedCount
	if allDone {
		s.st.dead = true
	}
	listener := s.st.listener
	s.st.mu.Unlock()
	if fireNow {
		listener()
	}
}

// TrackAny wraps cb exactly like TrackAll does, but against s's
// first-to-complete semantics.
func TrackAny[A any](s *OnAnyCompleted, cb cancel.Callback[A]) (cancel.Callback[A], error) {
	if s.st == nil || !s.st.track() {
		return cb, ErrInvalidState
	}
	st := s.st
	return cb.Wrapped(func(orig func(A)) func(A) {
		return func(a A) {
			orig(a)
			st.mu.Lock()
			st.firedCount++
			fireNow := st.firedCount == 1 && st.detached
			allDone := st.firedCount == st.trackedCount
			if allDone {
				st.dead = true
			}
			listener := st.listener
			st.mu.Unlock()
			if fireNow {
				listener()
			}
		}
	}), nil
}
