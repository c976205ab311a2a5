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

import (
	"runtime"
	"sync/atomic"
)

// Promise is the producer endpoint of a one-shot Promise/Future pair. It
// completes exactly once, either by Finished or by being dropped before
// that (the "terminated" path), delivering exactly one of value/nothing to
// the paired Future's Then callback.
type Promise[R any] struct {
	executor Executor
	state    *sharedState[R]
	dropped  atomic.Bool
}

// NewPromise allocates a Promise bound to executor, which is used to
// deliver the eventual Then callback. The returned Promise starts active
// and without a Future.
func NewPromise[R any](executor Executor) *Promise[R] {
	st := &sharedState[R]{}
	st.active.set(true)
	p := &Promise[R]{executor: executor, state: st}
	runtime.SetFinalizer(p, (*Promise[R]).Drop)
	return p
}

// GetFuture returns the single Future that observes this Promise's result.
// It may be called only once; a second call fails with
// ErrFutureAlreadyExists.
//
// If canceller is given and non-nil, it is invoked exactly once, the first
// time the returned Future is cancelled.
func (p *Promise[R]) GetFuture(canceller ...func()) (*Future[R], error) {
	if p.state == nil {
		return nil, ErrNoState
	}
	if !p.state.hasFuture.cas(false, true) {
		return nil, ErrFutureAlreadyExists
	}
	f := &Future[R]{state: p.state}
	if len(canceller) > 0 {
		f.canceller = canceller[0]
	}
	return f, nil
}

// IsCancelled reports whether this Promise's Future has been dropped or
// cancelled (or never created), i.e. whether running the corresponding
// task body would now be observable by no one.
func (p *Promise[R]) IsCancelled() bool {
	return p.state == nil || !p.state.hasFuture.get()
}

// Finished completes the Promise with value v. If a Future is still alive
// and has a Then callback installed, cb(&v) is scheduled on the Promise's
// Executor; the scheduled closure re-checks liveness immediately before
// invoking cb, so a Future dropped after scheduling but before delivery
// turns the delivery into a no-op.
//
// Finished fails with ErrNoState on the zero value, or ErrAlreadyFinished
// if called more than once.
func (p *Promise[R]) Finished(v R) error {
	if p.state == nil {
		return ErrNoState
	}
	if !p.state.active.cas(true, false) {
		return ErrAlreadyFinished
	}
	p.deliver(&v)
	return nil
}

// Drop terminates the Promise without a result, as if it had gone out of
// scope in a destructor-based language: if the Promise is still active, it
// is marked inactive and, if a Future is alive with a Then callback
// installed, cb(nil) is scheduled exactly like a premature-death delivery.
//
// Drop is idempotent and safe to call multiple times (including via the
// finalizer backstop armed by NewPromise); callers that want deterministic
// "promise died prematurely" semantics should call it explicitly, typically
// with defer.
func (p *Promise[R]) Drop() {
	if p.state == nil {
		return
	}
	if !p.dropped.CompareAndSwap(false, true) {
		return
	}
	if p.state.active.swap(false) {
		p.deliver(nil)
	}
}

// deliver schedules cb(v) on the executor, for whichever cb was installed
// on the Future at the time Finished/Drop ran, re-validating hasFuture both
// now and again inside the scheduled closure.
func (p *Promise[R]) deliver(v *R) {
	if !p.state.hasFuture.get() {
		return
	}
	cb, set := p.state.callback()
	if !set || cb == nil {
		return
	}
	st := p.state
	p.executor(func() {
		if st.hasFuture.get() {
			cb(v)
		}
	})
}

// EmbedPromiseIntoTask builds a Task that, when run, checks whether p has
// already been cancelled (i.e. its Future dropped); if so the task body f
// is skipped entirely and has no observable side effects. Otherwise f is
// invoked and its result fed into p.Finished.
func EmbedPromiseIntoTask[R any](p *Promise[R], f func() R) Task {
	return func() {
		if p.IsCancelled() {
			return
		}
		_ = p.Finished(f())
	}
}
