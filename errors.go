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

import "errors"

var (
	// ErrNoState is returned by any Future/Promise method called on a value
	// whose shared state is gone, e.g. after Cancel, or on the zero value.
	ErrNoState = errors.New("async: no state")

	// ErrAlreadyFinished is returned by Promise.Finished when called more
	// than once on the same Promise.
	ErrAlreadyFinished = errors.New("async: promise already finished")

	// ErrCallbackAlreadySet is returned by Future.Then when a callback was
	// already installed on that Future.
	ErrCallbackAlreadySet = errors.New("async: callback already set")

	// ErrFutureAlreadyExists is returned by Promise.GetFuture when called
	// more than once on the same Promise.
	ErrFutureAlreadyExists = errors.New("async: future already exists")
)
