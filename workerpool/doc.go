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

// Package workerpool provides an elastic pool of goroutines executing
// submitted tasks from a shared blocking queue.
//
// A Pool keeps MinSize mandatory workers running for its entire lifetime,
// and grows beyond that, up to MaxSize, by spawning optional workers
// whenever a task is submitted while every existing worker is busy.
// Optional workers exit on their own once they've gone MaxLinger without
// picking up a new task, so the pool shrinks back down automatically once
// load subsides.
//
// ExecuteIn and ExecuteAt hand a task to a dedicated timer goroutine
// instead of the worker queue directly; the timer enqueues the task for
// the workers once its fire time has passed, polling at TimerResolution.
package workerpool
