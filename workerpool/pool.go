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
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Pool is an elastic group of goroutines draining a shared task queue. See
// the package doc for its growth and shrink policy.
type Pool struct {
	cfg    Config
	logger Logger
	now    func() time.Time

	queue *blockingQueue
	timer *poolTimer

	workerCount atomic.Int32
	busyCount   atomic.Int32
	stopped     atomic.Bool
	closeOnce   sync.Once
	wg          sync.WaitGroup
}

// New builds and starts a Pool. With no options it uses DefaultConfig, a
// Logger that discards recovered panics, and the real wall clock.
func New(opts ...Option) *Pool {
	o := options{cfg: DefaultConfig(), logger: noopLogger{}, clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg.MinSize <= 0 {
		o.cfg.MinSize = 1
	}
	if o.cfg.MaxSize < o.cfg.MinSize {
		o.cfg.MaxSize = o.cfg.MinSize
	}
	if o.logger == nil {
		o.logger = noopLogger{}
	}

	p := &Pool{cfg: o.cfg, logger: o.logger, now: o.clock}
	p.queue = newBlockingQueue()
	p.timer = newPoolTimer(o.clock, o.cfg.TimerResolution, p.queue.Enqueue)

	for i := 0; i < o.cfg.MinSize; i++ {
		p.spawnMandatory()
	}
	return p
}

func (p *Pool) spawnMandatory() {
	p.wg.Add(1)
	go p.runMandatory()
}

func (p *Pool) runMandatory() {
	defer p.wg.Done()
	name := "mandatory-" + uuid.NewString()

	p.workerCount.Add(1)
	defer p.workerCount.Add(-1)

	for !p.stopped.Load() {
		t := p.queue.WaitDequeue()
		p.invokeGuarded(name, t)
	}
}

func (p *Pool) spawnOptional() {
	p.wg.Add(1)
	go p.runOptional()
}

func (p *Pool) runOptional() {
	defer p.wg.Done()
	name := "optional-" + uuid.NewString()

	p.workerCount.Add(1)
	defer p.workerCount.Add(-1)

	for !p.stopped.Load() {
		t, ok := p.queue.WaitDequeueTimed(p.cfg.MaxLinger)
		if !ok {
			return
		}
		p.invokeGuarded(name, t)
	}
}

func (p *Pool) invokeGuarded(workerName string, t Task) {
	if t == nil {
		return
	}
	p.busyCount.Add(1)
	defer p.busyCount.Add(-1)

	if p.cfg.CatchPanics {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Log((&TaskPanic{WorkerName: workerName, Value: r}).Error())
			}
		}()
	}
	t()
}

// Execute enqueues task for the next available worker. If every current
// worker is busy and the pool hasn't reached MaxSize, an optional worker is
// spawned to help drain the backlog; it exits on its own after MaxLinger
// idle.
func (p *Pool) Execute(task Task) {
	p.queue.Enqueue(task)
	wc := p.workerCount.Load()
	if int(wc) < p.cfg.MaxSize && wc == p.busyCount.Load() {
		p.spawnOptional()
	}
}

// ExecuteIn enqueues task once after has elapsed, measured from the Pool's
// clock.
func (p *Pool) ExecuteIn(after time.Duration, task Task) {
	p.timer.schedule(p.now().Add(after), task)
}

// ExecuteAt enqueues task once the Pool's clock reaches when.
func (p *Pool) ExecuteAt(when time.Time, task Task) {
	p.timer.schedule(when, task)
}

// WorkerCount reports how many worker goroutines, mandatory and optional,
// are currently running.
func (p *Pool) WorkerCount() int {
	return int(p.workerCount.Load())
}

// BusyCount reports how many of those workers are currently executing a
// task rather than waiting for one.
func (p *Pool) BusyCount() int {
	return int(p.busyCount.Load())
}

// Close stops the timer goroutine and every worker. If Config.JoinOnClose
// is true (the default), it blocks until every worker goroutine has
// actually exited. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.timer.stop()
		p.stopped.Store(true)
		n := p.WorkerCount()
		for i := 0; i < n; i++ {
			p.queue.Enqueue(nil)
		}
		if p.cfg.JoinOnClose {
			p.wg.Wait()
		}
	})
}
