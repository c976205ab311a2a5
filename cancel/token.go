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

import (
	"sync"
	"sync/atomic"
)

// token is a liveness flag shared between a Canceller and the Callback
// values it hands out, standing in for the weak_ptr the original design
// uses to let a Callback notice its Canceller is gone without holding a
// strong reference to it.
type token struct {
	alive atomic.Bool
}

func newToken() *token {
	t := &token{}
	t.alive.Store(true)
	return t
}

func (t *token) isAlive() bool {
	return t.alive.Load()
}

func (t *token) kill() {
	t.alive.Store(false)
}

var (
	detachedTok     *token
	detachedTokOnce sync.Once
)

// detachedToken is a process-wide token that is always alive, used by
// Detached so it doesn't need to allocate a token per call.
func detachedToken() *token {
	detachedTokOnce.Do(func() {
		detachedTok = newToken()
	})
	return detachedTok
}
