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
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables of a Pool.
type Config struct {
	MinSize         int           `env:"ASYNC_WORKERPOOL_MIN_SIZE" envDefault:"2"`
	MaxSize         int           `env:"ASYNC_WORKERPOOL_MAX_SIZE" envDefault:"5"`
	MaxLinger       time.Duration `env:"ASYNC_WORKERPOOL_MAX_LINGER" envDefault:"3m"`
	TimerResolution time.Duration `env:"ASYNC_WORKERPOOL_TIMER_RESOLUTION" envDefault:"100ms"`
	JoinOnClose     bool          `env:"ASYNC_WORKERPOOL_JOIN_ON_CLOSE" envDefault:"true"`
	CatchPanics     bool          `env:"ASYNC_WORKERPOOL_CATCH_PANICS" envDefault:"true"`
}

// DefaultConfig returns the same tunables as the zero-argument New call:
// MinSize 2, MaxSize 5, MaxLinger 3m, TimerResolution 100ms, both
// JoinOnClose and CatchPanics true.
func DefaultConfig() Config {
	return Config{
		MinSize:         2,
		MaxSize:         5,
		MaxLinger:       3 * time.Minute,
		TimerResolution: 100 * time.Millisecond,
		JoinOnClose:     true,
		CatchPanics:     true,
	}
}

// ConfigFromEnv reads Config from the process environment, defaulting
// every unset field exactly like DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
