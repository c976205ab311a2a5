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

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestConfigFromEnvOverride(t *testing.T) {
	t.Setenv("ASYNC_WORKERPOOL_MIN_SIZE", "7")
	t.Setenv("ASYNC_WORKERPOOL_MAX_LINGER", "2s")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.MinSize != 7 {
		t.Fatalf("expected MinSize 7, got %d", cfg.MinSize)
	}
	if cfg.MaxLinger != 2*time.Second {
		t.Fatalf("expected MaxLinger 2s, got %v", cfg.MaxLinger)
	}
}
