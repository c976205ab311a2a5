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
	"testing"
	"time"
)

func TestBlockingQueueFIFO(t *testing.T) {
	bq := newBlockingQueue()
	order := []int{}
	bq.Enqueue(func() { order = append(order, 1) })
	bq.Enqueue(func() { order = append(order, 2) })

	bq.WaitDequeue()()
	bq.WaitDequeue()()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected FIFO [1 2], got %v", order)
	}
}

func TestWaitDequeueTimedTimesOut(t *testing.T) {
	bq := newBlockingQueue()
	start := time.Now()
	_, ok := bq.WaitDequeueTimed(30 * time.Millisecond)
	if ok {
		t.Fatal("expected timeout on an empty queue")
	}
	if time.Since(start) < 25*time.Millisecond {
		t.Fatal("returned suspiciously early for the requested timeout")
	}
}

func TestWaitDequeueTimedSucceedsOnArrival(t *testing.T) {
	bq := newBlockingQueue()
	go func() {
		time.Sleep(10 * time.Millisecond)
		bq.Enqueue(func() {})
	}()
	_, ok := bq.WaitDequeueTimed(time.Second)
	if !ok {
		t.Fatal("expected a task to arrive before the timeout")
	}
}
