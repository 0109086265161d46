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

// Package demo provides the demo app: an echo handler built around a
// counter that is shared by every app derived from the same factory.
//
// Each call takes the next counter value. Calls observing a counter value
// where counter mod 4 == 2 fail with a descriptive error; every other call
// echoes the request back with status 200 and one added header carrying the
// counter value.
package demo

import (
	"fmt"
	"sync/atomic"

	"github.com/svcpack/svcpack.go/pkg/svc"
	"github.com/svcpack/svcpack.go/pkg/web"
)

// HeaderCounter is the header stamped onto successful responses.
const HeaderCounter = "X-Counter"

// Counter is the mutable state shared across concurrent calls. The cell is
// jointly owned by every holder: each Next is an indivisible
// read-modify-write, so no two callers ever observe the same value.
type Counter struct {
	n atomic.Uint64
}

// NewCounter returns a Counter whose first value will be 0.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the current value and advances the counter.
func (a *Counter) Next() uint64 {
	return a.n.Add(1) - 1
}

// Value returns the number of values handed out so far.
func (a *Counter) Value() uint64 {
	return a.n.Load()
}

// NewAppFactory returns a factory whose apps all share one counter.
// Every app derived from the factory stamps its connection identity into the
// counter header name.
func NewAppFactory() svc.AppFactory {
	counter := NewCounter()
	return svc.AppFactoryFunc(func(conn web.ConnInfo) *svc.Future[svc.App] {
		logger.Info().Str("conn", conn.String()).Msg("starting a new app for connection")
		return svc.CompletedFuture(NewApp(counter, conn))
	})
}

// NewApp returns an app for the specified connection, sharing the counter
// with its sibling apps.
func NewApp(counter *Counter, conn web.ConnInfo) svc.App {
	headerName := fmt.Sprintf("Conn: %s, %s", conn, HeaderCounter)
	return svc.AppFunc(func(req web.Request) *svc.Future[web.Response] {
		return handle(counter, headerName, req)
	})
}

// NewSingleApp returns a standalone app with its own counter, for running
// without a connection factory.
func NewSingleApp() svc.App {
	counter := NewCounter()
	return svc.AppFunc(func(req web.Request) *svc.Future[web.Response] {
		return handle(counter, HeaderCounter, req)
	})
}

func handle(counter *Counter, headerName string, req web.Request) *svc.Future[web.Response] {
	logger.Info().Str("path", req.PathAndQuery).Msg("handling a request")

	n := counter.Next()
	if n%4 == 2 {
		return svc.FailedFuture[web.Response](fmt.Errorf("failing 25%% of the time, just for fun : counter = %d", n))
	}

	headers := req.Headers
	if headers == nil {
		headers = make(map[string]string, 1)
	}
	headers[headerName] = fmt.Sprintf("%d", n)

	return svc.CompletedFuture(web.Response{
		Status:  200,
		Headers: headers,
		Body:    req.Body,
	})
}
