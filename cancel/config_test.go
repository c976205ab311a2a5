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

import "testing"

func TestConfigFromEnvDefault(t *testing.T) {
	t.Setenv("ASYNC_CANCEL_MAX_SIMULT_CALLBACKS", "")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.MaxSimultCallbacks != DefaultCapacity {
		t.Fatalf("expected default %d, got %d", DefaultCapacity, cfg.MaxSimultCallbacks)
	}
}

func TestConfigFromEnvOverride(t *testing.T) {
	t.Setenv("ASYNC_CANCEL_MAX_SIMULT_CALLBACKS", "64")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.MaxSimultCallbacks != 64 {
		t.Fatalf("expected 64, got %d", cfg.MaxSimultCallbacks)
	}

	c := NewCancellerFromConfig(cfg)
	for i := 0; i < 64; i++ {
		if _, _, err := MakeCallback(c, func(int) {}); err != nil {
			t.Fatalf("registration %d: %v", i, err)
		}
	}
	if _, _, err := MakeCallback(c, func(int) {}); err == nil {
		t.Fatal("expected 65th registration to fail")
	}
}
