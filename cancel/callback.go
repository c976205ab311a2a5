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

package cancel

import "github.com/DanglingPointer/async"

// CallbackID is an opaque handle that lets a caller cancel, or query the
// liveness of, a specific Callback without holding onto the Callback value
// itself — only the Canceller that minted it needs the full picture.
//
// The zero CallbackID is never valid; CancelCallback and IsActive treat it
// as already-cancelled.
type CallbackID struct {
	c     *Canceller
	index uint32
	gen   uint8
}

// Callback wraps a user function of one argument together with the
// liveness bookkeeping that makes it safe to invoke long after whatever
// registered it may have gone away: invoking it after its Canceller is
// closed, or after its own CallbackID is cancelled, is a silent no-op.
//
// The zero Callback[A] is a valid, permanently-inactive callback — same as
// the value returned by NoCallback.
type Callback[A any] struct {
	tok  *token
	cell *flagCell
	id   uint8
	fn   func(A)
}

// Cancelled reports whether invoking this Callback would currently be a
// no-op, either because its owning Canceller is gone, or its cell has been
// explicitly cancelled, or it carries no function at all.
func (cb Callback[A]) Cancelled() bool {
	if cb.fn == nil {
		return true
	}
	if cb.tok != nil && !cb.tok.isAlive() {
		return true
	}
	if cb.cell != nil && !cb.cell.isActive(cb.id) {
		return true
	}
	return false
}

// Invoke calls the wrapped function with a, unless Cancelled reports true.
func (cb Callback[A]) Invoke(a A) {
	if cb.Cancelled() {
		return
	}
	cb.fn(a)
}

// Release gives up this Callback's claim on its flag cell, if any, making
// the cell immediately available for a later MakeCallback call on the same
// Canceller. It's the caller's responsibility not to invoke this Callback
// again afterward; doing so would be a no-op anyway once the cell is
// reused for something else, but may also spuriously invoke the new
// occupant if the id happens to wrap around (see DESIGN.md, Open Question
// 4, for why CancelCallback zeroes the caller's CallbackID instead of
// relying on this alone).
func (cb Callback[A]) Release() {
	if cb.cell != nil {
		cb.cell.deactivate()
	}
}

// Wrapped returns a new Callback sharing this Callback's liveness (the same
// token and, if any, the same flag cell), but invoking wrap(cb.fn) instead
// of cb.fn directly. It's how quorum.TrackAll and quorum.TrackAny splice
// their own bookkeeping onto an existing Callback without needing access to
// its private fn field.
func (cb Callback[A]) Wrapped(wrap func(orig func(A)) func(A)) Callback[A] {
	if cb.fn == nil {
		return cb
	}
	return Callback[A]{
		tok:  cb.tok,
		cell: cb.cell,
		id:   cb.id,
		fn:   wrap(cb.fn),
	}
}

// Detached returns a Callback bound to a single process-wide token that is
// always alive: it is never cancellable and never consumes a Canceller's
// flag cell. Use it for fire-and-forget callbacks that don't need
// individual cancellation.
func Detached[A any](f func(A)) Callback[A] {
	return Callback[A]{tok: detachedToken(), fn: f}
}

// NoCallback returns the permanently-inactive zero Callback[A]; invoking it
// is always a no-op.
func NoCallback[A any]() Callback[A] {
	return Callback[A]{}
}

// Schedule invokes cb.Invoke(a) on ex, exactly like scheduling any other
// Task: Callback carries no Executor of its own, so the caller supplies
// one, typically the same Executor already driving the surrounding
// Promise/Future pair.
//
// If cb is already cancelled at schedule time, it's dropped immediately
// and never reaches ex at all.
func Schedule[A any](ex async.Executor, cb Callback[A], a A) {
	if cb.Cancelled() {
		return
	}
	ex(func() {
		cb.Invoke(a)
	})
}
