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

// Package svc defines the two-phase readiness/call contract that every
// request handler and every connection factory implements.
//
// The protocol is: a caller first polls the instance for readiness, and only
// after observing Ready issues the call. The check-then-call pair is an
// atomic sequence from that caller's perspective - an instance that reported
// Ready must accept the immediately following Call. Readiness failing is
// distinct from the call's future failing: the former means the instance
// cannot accept the work, the latter means accepted work failed.
package svc

import "github.com/svcpack/svcpack.go/pkg/web"

// Service is the two-phase contract. One Call consumes exactly one input
// and yields a pending computation.
//
// Call may only be invoked after PollReady reported Ready. Implementations
// are not required to guard against callers that skip the readiness check.
type Service[In, Out any] interface {
	// PollReady reports whether the instance can currently accept one unit
	// of work, without blocking. The error carries the NotReady reason or
	// the Failed cause; it is nil when the instance is Ready.
	PollReady() (Readiness, error)

	// Call consumes one input and returns the pending result.
	Call(in In) *Future[Out]
}

// App processes one request per call on an established connection.
type App = Service[web.Request, web.Response]

// AppFactory produces one App per accepted connection. Its "work" is
// constructing the App; request processing belongs to the App it yields.
type AppFactory = Service[web.ConnInfo, App]
