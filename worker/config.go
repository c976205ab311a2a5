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

import "github.com/caarlos0/env/v11"

// DefaultCapacity is the pending-task queue size a zero-value Config's
// Capacity is promoted to.
const DefaultCapacity = 1024

// Config configures a Worker.
type Config struct {
	// Name identifies this Worker to ExceptionHandler; it has no effect on
	// scheduling.
	Name string `env:"ASYNC_WORKER_NAME" envDefault:"worker"`

	// Capacity bounds how many pending tasks may be queued at once.
	// Non-positive values are promoted to DefaultCapacity.
	Capacity int `env:"ASYNC_WORKER_CAPACITY" envDefault:"1024"`

	// ExceptionHandler, if non-nil, is called with this Worker's Name and
	// a description of the panic whenever a scheduled task panics instead
	// of returning normally. If nil, such panics are silently recovered.
	ExceptionHandler func(workerName, detail string)
}

// ConfigFromEnv reads Config from the process environment. The returned
// Config's ExceptionHandler is always nil; set it explicitly afterward if
// desired.
func ConfigFromEnv() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
