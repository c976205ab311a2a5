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

// Package async provides a one-shot Promise/Future pair with
// executor-controlled callback delivery, plus combinators for composing
// independent futures.
//
// A Promise is created bound to an Executor, a func(func()) that decides on
// which goroutine the eventual Then callback runs. GetFuture hands out the
// single Future that may observe the promise's result; calling it twice
// fails with ErrFutureAlreadyExists.
//
// A Future accepts at most one Then callback (a second call fails with
// ErrCallbackAlreadySet). The callback receives a *R on success, or nil if
// the Promise was dropped before it finished, or if the Future was itself
// cancelled no delivery happens at all.
//
// Cancellation is cooperative and local: Future.Cancel clears the future's
// claim on the shared state and, if one was registered through GetFuture,
// invokes a caller-supplied canceller function exactly once. A Promise
// racing Finished against a Cancel is safe: the executor closure re-checks
// liveness immediately before invoking the callback, so a cancel that lands
// after scheduling but before delivery turns the delivery into a no-op.
//
// EmbedPromiseIntoTask adapts a Promise and a plain function into a Task
// (a func()) suitable for handing to a worker or worker pool: the task
// skips the function body entirely if the promise has already been
// cancelled, and otherwise feeds the function's result into the promise.
//
// All and Any compose two independently cancellable futures: All resolves
// once both inputs have resolved and cancelling it cancels both; Any
// resolves (and suppresses the other's delivery) as soon as either input
// resolves.
//
// Since this package has no channel-based cleanup, every Promise and every
// OnAllCompleted/OnAnyCompleted guard backs its explicit Drop/Detach method
// with a runtime.SetFinalizer, so a value that is only garbage collected —
// never explicitly dropped — still converges to the same terminal state a
// C++ destructor would produce.
package async
