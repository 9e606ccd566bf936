// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time for testability. Production code
// injects Real(); tests inject a Fake and advance it by hand to probe
// staleness boundaries without sleeping.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time. Code that decides freshness (the
// query cache) takes a Clock instead of calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// Real returns a Clock backed by the system clock.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Fake is a manually-driven Clock for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a Fake starting at a fixed, deterministic instant.
func NewFake() *Fake {
	return &Fake{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
