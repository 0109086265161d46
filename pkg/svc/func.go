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

package svc

import "github.com/svcpack/svcpack.go/pkg/web"

// Func adapts an ordinary function to the Service contract. This is the only
// bridge between a plain function and a service instance.
//
// A Func has no readiness state of its own: PollReady always reports Ready,
// with no side effects, on every invocation.
type Func[In, Out any] struct {
	f func(In) *Future[Out]
}

// NewFunc wraps f as a Service. f is required.
func NewFunc[In, Out any](f func(In) *Future[Out]) *Func[In, Out] {
	if f == nil {
		logger.Panic().Str("type", "Func").Msg("f is required")
	}
	return &Func[In, Out]{f: f}
}

func (a *Func[In, Out]) PollReady() (Readiness, error) {
	return Ready, nil
}

// Call invokes the wrapped function and returns its future unchanged.
func (a *Func[In, Out]) Call(in In) *Future[Out] {
	return a.f(in)
}

// AppFunc wraps a request-handling function as an App.
func AppFunc(f func(req web.Request) *Future[web.Response]) App {
	return NewFunc(f)
}

// AppFactoryFunc wraps an app-constructing function as an AppFactory.
func AppFactoryFunc(f func(conn web.ConnInfo) *Future[App]) AppFactory {
	return NewFunc(f)
}
