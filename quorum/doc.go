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

// Package quorum provides listeners that fire once a tracked set of
// cancel.Callback values have all executed (OnAllCompleted), or once the
// first of them has (OnAnyCompleted).
//
// Both synchronizers additionally require that the object itself has been
// detached — either explicitly via Detach, or implicitly when it becomes
// unreachable and its finalizer backstop runs — before their listener can
// fire, mirroring a destructor-driven lifetime in a language with
// deterministic object death: a synchronizer that is still in scope with
// more Track calls potentially coming must not fire early just because
// every callback tracked *so far* happened to run.
//
// Internally this is modeled with a tracked-count bias of 10000: every new
// synchronizer starts as if it were tracking 10000 phantom callbacks, so no
// realistic number of real Track calls can make firedCount catch up to
// trackedCount before Detach subtracts the bias back out.
package quorum
