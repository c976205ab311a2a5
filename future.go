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

package async

import "sync"

// sharedState is the state jointly owned by a Promise[R] and its Future[R].
//
// hasFuture and active are read on the hot path (every Invoke of a pending
// delivery closure), so they're plain atomics; the callback slot is guarded
// by mu since it's set at most once and read at most once.
type sharedState[R any] struct {
	mu  sync.Mutex
	cb  func(*R)
	set bool

	hasFuture boolFlag
	active    boolFlag
}

func (s *sharedState[R]) callback() (func(*R), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cb, s.set
}

func (s *sharedState[R]) setCallbackIfEmpty(cb func(*R)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		return false
	}
	s.cb, s.set = cb, true
	return true
}

// Future is a one-shot handle to a pending or completed result of type R.
//
// Its zero value behaves like a Future whose state is already gone: every
// method returns ErrNoState or a no-op. A non-zero Future is obtained from
// Promise.GetFuture, and is consumed by Then (the receiver is returned
// again to allow fluent chaining, but a Future carries no other chain
// state of its own).
type Future[R any] struct {
	state     *sharedState[R]
	canceller func()
}

// Then installs cb as the single delivery callback for this Future. cb is
// invoked with a non-nil *R on success, or nil if the Promise was dropped
// before finishing. It is invoked at most once, on whichever goroutine the
// Promise's Executor chooses, and never if the Future is cancelled first.
//
// Then fails with ErrNoState if the Future's state is gone (including
// after Cancel), or ErrCallbackAlreadySet if a callback was already
// installed.
func (f *Future[R]) Then(cb func(*R)) (*Future[R], error) {
	if f.state == nil {
		return f, ErrNoState
	}
	if !f.state.setCallbackIfEmpty(cb) {
		return f, ErrCallbackAlreadySet
	}
	return f, nil
}

// IsActive reports whether this Future still references live shared state
// whose Promise has not yet finished or terminated.
func (f *Future[R]) IsActive() bool {
	return f.state != nil && f.state.active.get()
}

// Cancel clears this Future's claim on the shared result (Promise.Finished
// racing a concurrent Cancel delivers nothing, since the pending delivery
// closure re-checks hasFuture immediately before invoking the callback),
// and, if a canceller function was registered through GetFuture, invokes it
// exactly once. Cancel is idempotent.
func (f *Future[R]) Cancel() {
	if f.state != nil {
		f.state.hasFuture.set(false)
		f.state = nil
	}
	if f.canceller != nil {
		c := f.canceller
		f.canceller = nil
		c()
	}
}
