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

// Executor posts a thunk for later execution, on whatever goroutine the
// implementation chooses. Promise uses it exclusively to deliver the Then
// callback, never to run the task itself.
//
// InlineExecutor and a workerpool.Pool (via its Execute method) are the two
// most common Executor implementations used with this package.
type Executor func(func())

// InlineExecutor runs the thunk synchronously, on the calling goroutine.
// It's mostly useful in tests, and in the rare case where the caller
// already knows it's safe to run the Then callback inline with Finished.
func InlineExecutor(f func()) { f() }

// Task is a single invocable unit of work, as handed to a Worker or a
// workerpool.Pool. Unlike the original C++ design, a Go func() closure
// already owns its captured state outright, so there is no move/copy
// distinction to paper over (see DESIGN.md, Open Question 3).
type Task func()
