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

import "sync/atomic"

// boolFlag is a tiny wrapper around atomic.Bool with get/set/swap names
// that read naturally at call sites that mirror the C++ original's
// std::atomic_bool fields (hasFuture, active).
type boolFlag struct {
	v atomic.Bool
}

func (f *boolFlag) get() bool          { return f.v.Load() }
func (f *boolFlag) set(b bool)         { f.v.Store(b) }
func (f *boolFlag) swap(b bool) bool   { return f.v.Swap(b) }
func (f *boolFlag) cas(old, new bool) bool {
	return f.v.CompareAndSwap(old, new)
}
