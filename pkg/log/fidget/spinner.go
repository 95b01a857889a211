/*
Copyright 2018 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
	This package is derived from https://github.com/kubernetes-sigs/kind/blob/master/pkg/log/status.go
	See above license
*/

// Package fidget implements CLI functionality for bored users waiting for results
package fidget

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"
)

var unicodeSpinnerFrames = []string{"◐", "◓", "◑", "◒"}

// Windows terminals don't reliably render the unicode frames
var asciiSpinnerFrames = []string{"<", "^", ">", "v"}

// Spinner is a simple CLI loading spinner.
// It assumes that the line length does not change while spinning.
type Spinner struct {
	frames []string
	writer io.Writer
	start  time.Time

	mu      sync.Mutex
	suffix  string
	stop    chan struct{}
	stopped chan struct{}
}

// NewSpinner initializes and returns a new Spinner that will write to w
func NewSpinner(w io.Writer) *Spinner {
	frames := unicodeSpinnerFrames
	if runtime.GOOS == "windows" {
		frames = asciiSpinnerFrames
	}
	return &Spinner{
		frames: frames,
		writer: w,
		start:  time.Now(),
	}
}

// SetSuffix sets the text printed after the spinner
func (s *Spinner) SetSuffix(suffix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(suffix) < len(s.suffix) {
		fmt.Fprintf(s.writer, "\r%*s", len(s.suffix)+1, "")
	}
	s.suffix = suffix
}

// Start starts the spinner running. Calling Start on a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.spin(s.stop, s.stopped)
}

func (s *Spinner) spin(stop, stopped chan struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			fmt.Fprintf(s.writer, "\r%s%s", s.frames[i%len(s.frames)], s.suffix)
			s.mu.Unlock()
		}
	}
}

// Stop stops the spinner and waits for the last frame to be written
func (s *Spinner) Stop() {
	s.mu.Lock()
	stop, stopped := s.stop, s.stopped
	s.stop, s.stopped = nil, nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-stopped
}

// TimeSpent returns the time spent since the spinner was created, in a human friendly unit
func (s *Spinner) TimeSpent() string {
	elapsed := time.Since(s.start)
	switch {
	case elapsed > time.Minute:
		return fmt.Sprintf("%.0fm", elapsed.Minutes())
	case elapsed > time.Second:
		return fmt.Sprintf("%.0fs", elapsed.Seconds())
	case elapsed > time.Millisecond:
		return fmt.Sprintf("%dms", elapsed.Milliseconds())
	}
	return fmt.Sprintf("%dns", elapsed.Nanoseconds())
}
