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

package workerpool

import "fmt"

// TaskPanic describes a task panic recovered by a Pool worker when
// Config.CatchPanics is enabled. It's never returned to a caller directly;
// it's formatted into the string handed to the configured Logger.
type TaskPanic struct {
	WorkerName string
	Value      any
}

func (e *TaskPanic) Error() string {
	return fmt.Sprintf("workerpool: uncaught panic in %s: %v", e.WorkerName, e.Value)
}
