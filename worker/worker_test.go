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

package worker

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestScheduleRunsInOrder(t *testing.T) {
	w := New(Config{Capacity: 8})
	defer w.Close()

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})

	w.Schedule(func() { mu.Lock(); order = append(order, 1); mu.Unlock() })
	w.Schedule(func() { mu.Lock(); order = append(order, 2); mu.Unlock() })
	w.Schedule(func() {
		mu.Lock()
		order = append(order, 3)
		mu.Unlock()
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tasks to run")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected FIFO order [1 2 3], got %v", order)
	}
}

// S7: a task scheduled sooner but enqueued later in real time still runs
// before one scheduled further out, using a virtual clock so the test
// doesn't depend on wall-clock sleeps.
func TestVirtualClockOrdersbyFireTime(t *testing.T) {
	var mu sync.Mutex
	clock := time.Unix(0, 0)
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return clock
	}
	advance := func(d time.Duration) {
		mu.Lock()
		clock = clock.Add(d)
		mu.Unlock()
	}

	w := newWithClock(Config{Capacity: 8}, now)
	defer w.Close()

	var order []int
	var resultsMu sync.Mutex
	done := make(chan struct{})

	w.ScheduleAfter(200*time.Millisecond, func() {
		resultsMu.Lock()
		order = append(order, 2)
		resultsMu.Unlock()
	})
	w.ScheduleAfter(50*time.Millisecond, func() {
		resultsMu.Lock()
		order = append(order, 1)
		resultsMu.Unlock()
	})
	w.ScheduleAfter(400*time.Millisecond, func() {
		resultsMu.Lock()
		order = append(order, 3)
		resultsMu.Unlock()
		close(done)
	})

	// Advance the virtual clock in steps, giving the worker goroutine a
	// real chance to observe each step via its timer-driven wakeups.
	for i := 0; i < 50; i++ {
		advance(10 * time.Millisecond)
		time.Sleep(5 * time.Millisecond)
		select {
		case <-done:
			goto checked
		default:
		}
	}
checked:
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for all tasks to fire")
	}

	resultsMu.Lock()
	defer resultsMu.Unlock()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected fire-time order [1 2 3], got %v", order)
	}
}

func TestTryScheduleFailsWhenFull(t *testing.T) {
	block := make(chan struct{})
	w := New(Config{Capacity: 1})
	defer func() {
		close(block)
		w.Close()
	}()

	w.Schedule(func() { <-block })
	// Give the worker a moment to pick up the first task so the queue is
	// actually empty, then fill the one-slot queue.
	time.Sleep(20 * time.Millisecond)

	if !w.TrySchedule(func() {}) {
		t.Fatal("expected first TrySchedule to succeed with an empty queue")
	}
	if w.TrySchedule(func() {}) {
		t.Fatal("expected second TrySchedule to fail with a full queue")
	}
}

func TestExceptionHandlerCalledOnPanic(t *testing.T) {
	var gotName, gotDetail string
	done := make(chan struct{})
	w := New(Config{
		Name:     "panicky",
		Capacity: 4,
		ExceptionHandler: func(name, detail string) {
			gotName, gotDetail = name, detail
			close(done)
		},
	})
	defer w.Close()

	w.Schedule(func() { panic("boom") })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for exception handler")
	}
	if gotName != "panicky" {
		t.Fatalf("expected worker name 'panicky', got %q", gotName)
	}
	if gotDetail != "boom" {
		t.Fatalf("expected detail 'boom', got %q", gotDetail)
	}

	// The worker must keep running after a recovered panic.
	next := make(chan struct{})
	w.Schedule(func() { close(next) })
	select {
	case <-next:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not keep processing tasks after a panic")
	}
}

func TestScheduleContextCancelled(t *testing.T) {
	block := make(chan struct{})
	w := New(Config{Capacity: 1})
	defer func() {
		close(block)
		w.Close()
	}()

	w.Schedule(func() { <-block })
	time.Sleep(20 * time.Millisecond) // let the blocking task get dequeued

	if !w.TrySchedule(func() {}) {
		t.Fatal("expected the one free slot to be claimable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := w.ScheduleContext(ctx, 0, func() {})
	if err == nil {
		t.Fatal("expected ScheduleContext to fail once the queue stays full past the deadline")
	}
}

func TestCloseIsIdempotentAndDrainsQueue(t *testing.T) {
	w := New(Config{Capacity: 4})
	ran := false
	w.Schedule(func() { ran = true })
	w.Close()
	w.Close()
	if !ran {
		t.Fatal("expected queued task to run before Close returns")
	}
}
