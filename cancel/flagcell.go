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

import "sync/atomic"

// A flagCell packs a generation id and two booleans into the low 8 bits of
// a single atomic.Uint32, so a Canceller's whole array fits in one cache-line-ish
// allocation and every transition is a single CAS:
//
//	bit 7 6 5 4 3 2 1 0
//	    [ alive | cancelled | ------ id (6 bits) ------ ]
const (
	idBits     = 6
	idMask     = 1<<idBits - 1
	cancelBit  = 1 << idBits
	aliveBit   = 1 << (idBits + 1)
)

type flagCell struct {
	v atomic.Uint32
}

func (f *flagCell) id() uint8 {
	return uint8(f.v.Load() & idMask)
}

func (f *flagCell) isAlive() bool {
	return f.v.Load()&aliveBit != 0
}

func (f *flagCell) isCancelled() bool {
	return f.v.Load()&cancelBit != 0
}

// activate claims the cell for a new callback, bumping its generation id
// (wrapping modulo 2^idBits) and clearing the cancelled bit, and returns the
// new id. It never fails: a cell can always be reactivated, even if it was
// previously alive (activate is only called on cells the caller already
// knows are free).
func (f *flagCell) activate() uint8 {
	for {
		old := f.v.Load()
		newID := (old + 1) & idMask
		newV := aliveBit | newID
		if f.v.CompareAndSwap(old, newV) {
			return uint8(newID)
		}
	}
}

// cancel sets the cancelled bit if the cell is alive and matches id. It
// reports whether the cell is now cancelled for id (true also if it was
// already cancelled), and false if the cell is free or carries another id.
func (f *flagCell) cancel(id uint8) bool {
	for {
		old := f.v.Load()
		if old&aliveBit == 0 || old&idMask != uint32(id) {
			return false
		}
		if old&cancelBit != 0 {
			return true
		}
		newV := old | cancelBit
		if f.v.CompareAndSwap(old, newV) {
			return true
		}
	}
}

// deactivate clears the alive bit, freeing the cell for reuse by a later
// activate. The generation id and cancelled bit are left untouched; the
// next activate call overwrites both anyway.
func (f *flagCell) deactivate() {
	for {
		old := f.v.Load()
		if old&aliveBit == 0 {
			return
		}
		newV := old &^ aliveBit
		if f.v.CompareAndSwap(old, newV) {
			return
		}
	}
}

// isActive reports whether the cell is alive, carries id, and is not
// cancelled — the single check MakeCallback's Invoke path needs.
func (f *flagCell) isActive(id uint8) bool {
	v := f.v.Load()
	return v&aliveBit != 0 && v&idMask == uint32(id) && v&cancelBit == 0
}
