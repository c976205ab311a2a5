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

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// Task is a unit of work run on one of a Pool's workers.
type Task func()

// blockingQueue is an unbounded MPMC task queue: any number of goroutines
// may Enqueue concurrently, and any number may block in WaitDequeue or
// WaitDequeueTimed waiting for something to arrive. It wraps
// eapache/queue's ring buffer (not itself safe for concurrent use) with a
// mutex and condition variable.
type blockingQueue struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    *queue.Queue
}

func newBlockingQueue() *blockingQueue {
	bq := &blockingQueue{q: queue.New()}
	bq.cond = sync.NewCond(&bq.mu)
	return bq
}

// Enqueue appends t and wakes one blocked dequeuer, if any.
func (bq *blockingQueue) Enqueue(t Task) {
	bq.mu.Lock()
	bq.q.Add(t)
	bq.mu.Unlock()
	bq.cond.Signal()
}

// WaitDequeue blocks until a task is available and returns it.
func (bq *blockingQueue) WaitDequeue() Task {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	for bq.q.Length() == 0 {
		bq.cond.Wait()
	}
	return bq.q.Remove().(Task)
}

// WaitDequeueTimed blocks until a task is available or d elapses, in which
// case ok is false.
func (bq *blockingQueue) WaitDequeueTimed(d time.Duration) (t Task, ok bool) {
	deadline := time.Now().Add(d)

	bq.mu.Lock()
	defer bq.mu.Unlock()
	for bq.q.Length() == 0 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, false
		}
		timer := time.AfterFunc(remaining, func() {
			bq.mu.Lock()
			bq.cond.Broadcast()
			bq.mu.Unlock()
		})
		bq.cond.Wait()
		timer.Stop()
	}
	return bq.q.Remove().(Task), true
}

// Len reports the number of tasks currently queued, not counting any
// being executed by a worker.
func (bq *blockingQueue) Len() int {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	return bq.q.Length()
}
