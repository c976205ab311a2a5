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

import "github.com/caarlos0/env/v11"

// DefaultCapacity is the flag cell count NewCanceller uses when given a
// non-positive capacity, and the default MaxSimultCallbacks in Config.
const DefaultCapacity = 128

// Config holds the tunables for building a Canceller from the environment.
type Config struct {
	MaxSimultCallbacks int `env:"ASYNC_CANCEL_MAX_SIMULT_CALLBACKS" envDefault:"128"`
}

// ConfigFromEnv reads Config from the process environment, falling back to
// DefaultCapacity for MaxSimultCallbacks if the variable is unset.
func ConfigFromEnv() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewCancellerFromConfig is a convenience wrapper around NewCanceller that
// sizes the Canceller from cfg.MaxSimultCallbacks.
func NewCancellerFromConfig(cfg Config) *Canceller {
	return NewCanceller(cfg.MaxSimultCallbacks)
}
