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

import "github.com/sirupsen/logrus"

// Logger receives one line per recovered task panic, when CatchPanics is
// enabled. Implementations must be safe for concurrent use.
type Logger interface {
	Log(msg string)
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger adapts a *logrus.Logger into a Logger, logging every
// recovered task panic at error level with a "workerpool" component field.
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{entry: l.WithField("component", "workerpool")}
}

func (l *logrusLogger) Log(msg string) {
	l.entry.Error(msg)
}

type noopLogger struct{}

func (noopLogger) Log(string) {}
