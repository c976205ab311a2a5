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

// Empty is the result type of the All and Any combinators, which care only
// about completion, not about either input's value.
type Empty struct{}

// All returns a Future that becomes inactive once both f1 and f2 have
// resolved. Its Then callback, if any, is delivered exactly once, on
// whichever of f1's or f2's executor resolves second. Callbacks already
// installed on f1 or f2 still run, in their own executors, before the
// combined bookkeeping.
//
// Cancelling the returned Future cancels both f1 and f2 (clearing their
// claim on their own state and running any canceller registered on them).
//
// f1 and f2 are consumed: after calling All, using them directly is no
// longer meaningful, mirroring the move-semantics of the original design.
//
// If either input's state is already gone (e.g. it was itself the result
// of an earlier cancel), the combined Future's initial activity is seeded
// from whatever activity remained in the two inputs at the time of the
// call (see DESIGN.md, Open Question 1): combining two already-resolved
// futures yields an immediately-inactive combined Future with no further
// delivery.
func All[R1, R2 any](f1 *Future[R1], f2 *Future[R2]) *Future[Empty] {
	lhsState, lhsCanceller := f1.state, f1.canceller
	f1.state, f1.canceller = nil, nil
	rhsState, rhsCanceller := f2.state, f2.canceller
	f2.state, f2.canceller = nil, nil
	if lhsState == nil {
		lhsState = &sharedState[R1]{}
	}
	if rhsState == nil {
		rhsState = &sharedState[R2]{}
	}

	combined := &sharedState[Empty]{}
	combined.active.set(lhsState.active.get() && rhsState.active.get())
	combined.hasFuture.set(true)

	lhsOrig, lhsSet := lhsState.callback()
	lhsState.mu.Lock()
	lhsState.cb, lhsState.set = func(r *R1) {
		if lhsSet && lhsOrig != nil {
			lhsOrig(r)
		}
		if !rhsState.active.get() && combined.active.cas(true, false) {
			deliverCombined(combined)
		}
	}, true
	lhsState.mu.Unlock()

	rhsOrig, rhsSet := rhsState.callback()
	rhsState.mu.Lock()
	rhsState.cb, rhsState.set = func(r *R2) {
		if rhsSet && rhsOrig != nil {
			rhsOrig(r)
		}
		if !lhsState.active.get() && combined.active.cas(true, false) {
			deliverCombined(combined)
		}
	}, true
	rhsState.mu.Unlock()

	combinedFuture := &Future[Empty]{state: combined}
	combinedFuture.canceller = func() {
		lhsState.hasFuture.set(false)
		rhsState.hasFuture.set(false)
		if lhsCanceller != nil {
			lhsCanceller()
		}
		if rhsCanceller != nil {
			rhsCanceller()
		}
	}
	return combinedFuture
}

// Any returns a Future that resolves as soon as either f1 or f2 resolves;
// the first to resolve clears the other's claim on its own state,
// suppressing its delivery, and deactivates the combined Future.
//
// Cancelling the returned Future cancels both f1 and f2, exactly as All
// does. f1 and f2 are consumed.
func Any[R1, R2 any](f1 *Future[R1], f2 *Future[R2]) *Future[Empty] {
	lhsState, lhsCanceller := f1.state, f1.canceller
	f1.state, f1.canceller = nil, nil
	rhsState, rhsCanceller := f2.state, f2.canceller
	f2.state, f2.canceller = nil, nil

	combined := &sharedState[Empty]{}
	combined.active.set(lhsState.active.get() && rhsState.active.get())
	combined.hasFuture.set(true)

	lhsOrig, lhsSet := lhsState.callback()
	lhsState.mu.Lock()
	lhsState.cb, lhsState.set = func(r *R1) {
		rhsState.hasFuture.set(false)
		if lhsSet && lhsOrig != nil {
			lhsOrig(r)
		}
		combined.active.set(false)
		deliverCombined(combined)
	}, true
	lhsState.mu.Unlock()

	rhsOrig, rhsSet := rhsState.callback()
	rhsState.mu.Lock()
	rhsState.cb, rhsState.set = func(r *R2) {
		lhsState.hasFuture.set(false)
		if rhsSet && rhsOrig != nil {
			rhsOrig(r)
		}
		combined.active.set(false)
		deliverCombined(combined)
	}, true
	rhsState.mu.Unlock()

	combinedFuture := &Future[Empty]{state: combined}
	combinedFuture.canceller = func() {
		lhsState.hasFuture.set(false)
		rhsState.hasFuture.set(false)
		if lhsCanceller != nil {
			lhsCanceller()
		}
		if rhsCanceller != nil {
			rhsCanceller()
		}
	}
	return combinedFuture
}

// deliverCombined runs the combined future's own Then callback, if any and
// if a future still claims the combined state, with an Empty{} value. It's
// called synchronously, on whichever of the two inputs' executors is
// currently running their own delivery closure — there is no separate
// executor hop for the combinator bookkeeping itself.
func deliverCombined(state *sharedState[Empty]) {
	if !state.hasFuture.get() {
		return
	}
	cb, set := state.callback()
	if set && cb != nil {
		cb(&Empty{})
	}
}
