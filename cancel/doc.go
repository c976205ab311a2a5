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

// Package cancel provides a capacity-bounded registry of cancellation-aware
// callback handles.
//
// A Canceller owns a fixed-size array of flag cells and a liveness token.
// MakeCallback claims a free cell and returns a Callback[A] bound to it,
// plus an opaque CallbackID that can later cancel or query that specific
// callback without holding a reference to the Callback value itself.
//
// Invoking a Callback after its Canceller has been dropped (explicitly via
// Close, or implicitly via the finalizer backstop armed by NewCanceller) is
// a silent no-op; so is invoking one whose individual CallbackID has been
// cancelled. Callbacks are not one-shot: invocation never deactivates the
// underlying cell.
//
// Wrap and Detached offer a cheaper escape hatch for fire-and-forget
// callbacks that only need to know their owner is alive and never need
// individual cancellation or capacity accounting: they don't consume a
// flag cell at all.
package cancel
