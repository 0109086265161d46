// Copyright (c) 2026 SvcPack
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"time"

	"github.com/svcpack/svcpack.go/pkg/commons"
)

// ArrivalSource is the origin of simulated connection or request arrival
// signals. A real deployment would replace the connection source with a
// listening-socket accept stream and the request source with request
// framing; the engine only consumes "a new arrival is available" events.
type ArrivalSource interface {
	// Arrivals emits one signal per arrival.
	Arrivals() <-chan time.Time

	// Stop releases the source's resources. Stop is idempotent.
	Stop()
}

// TickerSource emits an arrival on a fixed interval.
type TickerSource struct {
	ticker *time.Ticker
}

// NewTickerSource creates an ArrivalSource that fires every interval.
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{ticker: time.NewTicker(interval)}
}

func (a *TickerSource) Arrivals() <-chan time.Time {
	return a.ticker.C
}

func (a *TickerSource) Stop() {
	a.ticker.Stop()
}

// OnceSource emits a single arrival and then stays silent.
// It is used to stand up exactly one connection, e.g., for a single shared
// app with no real connection handling.
type OnceSource struct {
	c chan time.Time
}

// NewOnceSource creates an ArrivalSource whose single arrival is already pending.
func NewOnceSource() *OnceSource {
	c := make(chan time.Time, 1)
	c <- time.Now()
	return &OnceSource{c: c}
}

func (a *OnceSource) Arrivals() <-chan time.Time {
	return a.c
}

func (a *OnceSource) Stop() {}

// TriggerSource emits an arrival each time Trigger is called. It is meant
// for driving arrivals manually.
type TriggerSource struct {
	c chan time.Time
}

// NewTriggerSource creates an unbuffered manually driven ArrivalSource.
func NewTriggerSource() *TriggerSource {
	return &TriggerSource{c: make(chan time.Time)}
}

// Trigger emits one arrival, blocking until the engine has received it.
// Triggering a stopped source is a no-op.
func (a *TriggerSource) Trigger() {
	defer commons.IgnorePanic()
	a.c <- time.Now()
}

func (a *TriggerSource) Arrivals() <-chan time.Time {
	return a.c
}

func (a *TriggerSource) Stop() {
	commons.CloseQuietly(a.c)
}
