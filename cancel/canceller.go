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
	"runtime"
	"sync/atomic"
)

// Canceller owns a fixed-size array of flag cells plus a liveness token
// shared by every Callback it ever hands out. Capacity is fixed at
// construction: MakeCallback fails with ErrCapacityExceeded once every cell
// is simultaneously claimed.
type Canceller struct {
	tok    *token
	cells  []flagCell
	cursor atomic.Uint32
	closed atomic.Bool
}

// NewCanceller allocates a Canceller with room for capacity simultaneously
// active callbacks. capacity must be positive; non-positive values are
// clamped to DefaultCapacity.
//
// A finalizer is armed so that if the Canceller is ever garbage collected
// without an explicit Close, every Callback it handed out still becomes
// inert, instead of silently leaking an "alive" token forever.
func NewCanceller(capacity int) *Canceller {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Canceller{
		tok:   newToken(),
		cells: make([]flagCell, capacity),
	}
	runtime.SetFinalizer(c, (*Canceller).Close)
	return c
}

// register scans the cell array starting from the last successful cursor
// position, wrapping around once, looking for a free (not alive) cell. It
// returns the claimed index and the cell's new generation id, or false if
// every cell is currently alive.
func (c *Canceller) register() (uint32, uint8, bool) {
	n := uint32(len(c.cells))
	start := c.cursor.Load() % n
	for i := uint32(0); i < n; i++ {
		idx := (start + i) % n
		cell := &c.cells[idx]
		if cell.isAlive() {
			continue
		}
		id := cell.activate()
		c.cursor.Store((idx + 1) % n)
		return idx, id, true
	}
	return 0, 0, false
}

// MakeCallback claims a free cell on c and returns a Callback[A] wrapping
// f, alongside the CallbackID that can later cancel or query it. It fails
// with ErrCapacityExceeded if c is closed or has no free cell left.
func MakeCallback[A any](c *Canceller, f func(A)) (Callback[A], CallbackID, error) {
	if c.closed.Load() {
		return NoCallback[A](), CallbackID{}, ErrCapacityExceeded
	}
	idx, id, ok := c.register()
	if !ok {
		return NoCallback[A](), CallbackID{}, ErrCapacityExceeded
	}
	cell := &c.cells[idx]
	cb := Callback[A]{tok: c.tok, cell: cell, id: id, fn: f}
	cbID := CallbackID{c: c, index: idx, gen: id}
	return cb, cbID, nil
}

// Wrap returns a Callback bound only to c's liveness token, not to any
// individual flag cell: it's cancelled the moment c is closed, but can
// never be cancelled individually and never competes for capacity. Use it
// for callbacks that only need to know "is my owner still around".
func Wrap[A any](c *Canceller, f func(A)) Callback[A] {
	if c.closed.Load() {
		return NoCallback[A]()
	}
	return Callback[A]{tok: c.tok, fn: f}
}

// CancelCallback cancels the callback identified by *id, if it's still the
// same registration (matching generation), and zeroes *id afterward so a
// caller can't accidentally reuse a stale handle once the cell has been
// recycled for a different callback.
func (c *Canceller) CancelCallback(id *CallbackID) {
	if id == nil || id.c == nil {
		return
	}
	if int(id.index) < len(c.cells) {
		c.cells[id.index].cancel(id.gen)
	}
	*id = CallbackID{}
}

// IsActive reports whether id still refers to a live, non-cancelled
// callback on c.
func (c *Canceller) IsActive(id CallbackID) bool {
	if id.c != c || int(id.index) >= len(c.cells) {
		return false
	}
	return c.cells[id.index].isActive(id.gen)
}

// InvalidateCallbacks cancels every currently registered callback and
// invalidates every Wrap-bound callback handed out so far, without closing
// c: new calls to MakeCallback and Wrap after this still succeed, bound to
// a fresh liveness token.
func (c *Canceller) InvalidateCallbacks() {
	for i := range c.cells {
		c.cells[i].deactivate()
	}
	if !c.closed.Load() {
		c.tok.kill()
		c.tok = newToken()
	}
}

// Close permanently disables c: every outstanding Callback, whether
// flag-cell-bound or Wrap-bound, becomes inert, and further MakeCallback
// or Wrap calls return NoCallback. Close is idempotent and safe to call
// from the finalizer armed by NewCanceller.
func (c *Canceller) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.tok.kill()
	for i := range c.cells {
		c.cells[i].deactivate()
	}
}
