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
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Task is a unit of work run on a Worker's background goroutine.
type Task func()

type taskEntry struct {
	fireAt time.Time
	seq    uint64
	task   Task
}

// Worker runs Tasks one at a time, strictly in (fireAt, enqueue order).
//
// Capacity is enforced on the pending queue only, via a weighted
// semaphore: a slot is acquired when a task is scheduled and released the
// moment it's dequeued for execution, not when it finishes running.
type Worker struct {
	cfg Config
	now func() time.Time
	sem *semaphore.Weighted

	mu      sync.Mutex
	tasks   []taskEntry
	nextSeq uint64
	closed  bool

	filled *sync.Cond
	done   chan struct{}
}

// New starts a Worker's background goroutine and returns it. Capacity in
// cfg is promoted to DefaultCapacity if non-positive.
func New(cfg Config) *Worker {
	return newWithClock(cfg, time.Now)
}

// newWithClock is used by tests to inject a virtual clock.
func newWithClock(cfg Config, now func() time.Time) *Worker {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	w := &Worker{
		cfg:  cfg,
		now:  now,
		sem:  semaphore.NewWeighted(int64(cfg.Capacity)),
		done: make(chan struct{}),
	}
	w.filled = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Schedule enqueues work to run as soon as the Worker is free, blocking the
// caller until the queue has room if it's currently full.
func (w *Worker) Schedule(work Task) {
	w.ScheduleAfter(0, work)
}

// TrySchedule is like Schedule but never blocks: it fails immediately,
// returning false, if the queue is currently full.
func (w *Worker) TrySchedule(work Task) bool {
	return w.TryScheduleAfter(0, work)
}

// ScheduleAfter enqueues work to run no earlier than delay from now,
// blocking the caller until the queue has room if it's currently full.
func (w *Worker) ScheduleAfter(delay time.Duration, work Task) {
	_ = w.sem.Acquire(context.Background(), 1)
	w.enqueue(delay, work)
}

// TryScheduleAfter is like ScheduleAfter but never blocks: it fails
// immediately, returning false, if the queue is currently full.
func (w *Worker) TryScheduleAfter(delay time.Duration, work Task) bool {
	if !w.sem.TryAcquire(1) {
		return false
	}
	w.enqueue(delay, work)
	return true
}

// ScheduleContext is like ScheduleAfter, but gives up and returns ctx.Err()
// if ctx is done before a queue slot becomes available.
func (w *Worker) ScheduleContext(ctx context.Context, delay time.Duration, work Task) error {
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	w.enqueue(delay, work)
	return nil
}

// enqueue assumes a semaphore slot has already been acquired for this
// task; it's released again by getNext once the task is dequeued.
func (w *Worker) enqueue(delay time.Duration, work Task) {
	fireAt := w.now().Add(delay)
	w.mu.Lock()
	w.insertLocked(fireAt, work)
	w.mu.Unlock()
	w.filled.Broadcast()
}

// insertLocked must be called with mu held.
func (w *Worker) insertLocked(fireAt time.Time, work Task) {
	e := taskEntry{fireAt: fireAt, seq: w.nextSeq, task: work}
	w.nextSeq++
	i := sort.Search(len(w.tasks), func(i int) bool {
		if w.tasks[i].fireAt.After(fireAt) {
			return true
		}
		if w.tasks[i].fireAt.Equal(fireAt) {
			return w.tasks[i].seq > e.seq
		}
		return false
	})
	w.tasks = append(w.tasks, taskEntry{})
	copy(w.tasks[i+1:], w.tasks[i:])
	w.tasks[i] = e
}

// Close stops the Worker once its currently queued tasks have all run, and
// blocks until its background goroutine has exited. Close is idempotent.
func (w *Worker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()
	w.filled.Broadcast()
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		task, ok := w.getNext()
		if !ok {
			return
		}
		w.runGuarded(task)
	}
}

func (w *Worker) runGuarded(task Task) {
	defer func() {
		if r := recover(); r != nil && w.cfg.ExceptionHandler != nil {
			w.cfg.ExceptionHandler(w.cfg.Name, fmt.Sprint(r))
		}
	}()
	task()
}

// getNext blocks until a task is due, or the Worker has been Closed with
// nothing left pending, in which case ok is false.
func (w *Worker) getNext() (Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for {
		for len(w.tasks) == 0 {
			if w.closed {
				return nil, false
			}
			w.filled.Wait()
		}

		fireAt := w.tasks[0].fireAt
		now := w.now()
		if !fireAt.After(now) {
			break
		}

		wait := fireAt.Sub(now)
		timer := time.AfterFunc(wait, func() {
			w.mu.Lock()
			w.filled.Broadcast()
			w.mu.Unlock()
		})
		w.filled.Wait()
		timer.Stop()
	}

	e := w.tasks[0]
	w.tasks = w.tasks[1:]
	w.sem.Release(1)
	return e.task, true
}
