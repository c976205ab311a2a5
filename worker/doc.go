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

// Package worker provides a single background goroutine that executes
// scheduled tasks strictly in time order: a task scheduled for an earlier
// fire time always runs before one scheduled for a later fire time, even if
// the later one was enqueued first. Tasks with the same fire time run in
// the order they were enqueued.
//
// A Worker bounds its pending-task queue at a fixed capacity; Schedule
// blocks the caller until room is available, while TrySchedule fails
// immediately instead of blocking.
package worker
