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

import "time"

type options struct {
	cfg    Config
	logger Logger
	clock  func() time.Time
}

// Option configures a Pool constructed by New.
type Option func(*options)

// WithConfig replaces the Pool's whole Config at once, e.g. with one built
// by ConfigFromEnv.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithMinSize overrides Config.MinSize.
func WithMinSize(n int) Option {
	return func(o *options) { o.cfg.MinSize = n }
}

// WithMaxSize overrides Config.MaxSize.
func WithMaxSize(n int) Option {
	return func(o *options) { o.cfg.MaxSize = n }
}

// WithMaxLinger overrides Config.MaxLinger.
func WithMaxLinger(d time.Duration) Option {
	return func(o *options) { o.cfg.MaxLinger = d }
}

// WithTimerResolution overrides Config.TimerResolution.
func WithTimerResolution(d time.Duration) Option {
	return func(o *options) { o.cfg.TimerResolution = d }
}

// WithJoinOnClose overrides Config.JoinOnClose.
func WithJoinOnClose(join bool) Option {
	return func(o *options) { o.cfg.JoinOnClose = join }
}

// WithCatchPanics overrides Config.CatchPanics.
func WithCatchPanics(catch bool) Option {
	return func(o *options) { o.cfg.CatchPanics = catch }
}

// WithLogger sets the Logger a Pool reports recovered task panics to. The
// default, if unset, discards them.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock overrides the time source ExecuteIn/ExecuteAt and the timer
// goroutine use, for tests that need a virtual clock.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}
