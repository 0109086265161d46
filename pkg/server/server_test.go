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

package server_test

import (
	"errors"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/svcpack/svcpack.go/pkg/demo"
	"github.com/svcpack/svcpack.go/pkg/server"
	"github.com/svcpack/svcpack.go/pkg/svc"
	"github.com/svcpack/svcpack.go/pkg/web"
)

func descriptor() *svc.Descriptor {
	return svc.NewDescriptor("svcpack", "server", "test", "1.0.0")
}

// stubFactory reports each readiness poll on the polls channel and delegates
// Call to the configured func.
type stubFactory struct {
	readiness svc.Readiness
	err       error
	polls     chan struct{}
	call      func(conn web.ConnInfo) *svc.Future[svc.App]
}

func (a *stubFactory) PollReady() (svc.Readiness, error) {
	if a.polls != nil {
		a.polls <- struct{}{}
	}
	return a.readiness, a.err
}

func (a *stubFactory) Call(conn web.ConnInfo) *svc.Future[svc.App] {
	return a.call(conn)
}

type result struct {
	resp web.Response
	err  error
}

// recordResults wraps the app so that each call's outcome is delivered on
// results, preserving issuance order for synchronously completing apps.
func recordResults(app svc.App, results chan<- result) svc.App {
	return svc.AppFunc(func(req web.Request) *svc.Future[web.Response] {
		future := app.Call(req)
		resp, err := future.Await()
		results <- result{resp: resp, err: err}
		return future
	})
}

func await[T any](t *testing.T, c <-chan T, desc string) T {
	t.Helper()
	select {
	case v := <-c:
		return v
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", desc)
		panic("unreachable")
	}
}

func TestNew_RequiredSettings(t *testing.T) {
	factory := demo.NewAppFactory()
	connSource := server.NewTriggerSource()
	defer connSource.Stop()
	requestSource := func(conn web.ConnInfo) server.ArrivalSource { return server.NewOnceSource() }

	settings := []server.Settings{
		{ConnSource: connSource, RequestSource: requestSource, Descriptor: descriptor()},
		{Factory: factory, RequestSource: requestSource, Descriptor: descriptor()},
		{Factory: factory, ConnSource: connSource, Descriptor: descriptor()},
		{Factory: factory, ConnSource: connSource, RequestSource: requestSource},
	}
	for i, s := range settings {
		if _, err := server.New(s); err == nil {
			t.Errorf("settings[%d] is missing a required setting - New should have failed", i)
		}
	}

	s, err := server.New(server.Settings{
		Factory:       factory,
		ConnSource:    connSource,
		RequestSource: requestSource,
		Descriptor:    descriptor(),
		LogOutput:     io.Discard,
	})
	if err != nil {
		t.Fatalf("New should have succeeded : %v", err)
	}
	if s.Descriptor().ID() != "svcpack-server-test-1.0.0" {
		t.Errorf("unexpected descriptor : %v", s.Descriptor())
	}
}

func TestServer_FactoryNotReadyDoesNotStopTheAcceptLoop(t *testing.T) {
	factory := &stubFactory{
		readiness: svc.NotReady,
		err:       &svc.NotReadyError{Reason: "draining"},
		polls:     make(chan struct{}, 16),
		call: func(conn web.ConnInfo) *svc.Future[svc.App] {
			return svc.FailedFuture[svc.App](errors.New("Call should not have been reached"))
		},
	}
	connSource := server.NewTriggerSource()

	s, err := server.New(server.Settings{
		Factory:       factory,
		ConnSource:    connSource,
		RequestSource: func(conn web.ConnInfo) server.ArrivalSource { return server.NewOnceSource() },
		Descriptor:    descriptor(),
		LogOutput:     io.Discard,
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	defer func() {
		s.Kill(nil)
		if err := s.Wait(); err != nil {
			t.Errorf("Wait should have returned nil : %v", err)
		}
	}()

	const arrivals = 3
	for i := 0; i < arrivals; i++ {
		connSource.Trigger()
		await(t, factory.polls, "a factory readiness poll")
	}
	if s.ConnCount() != arrivals {
		t.Errorf("every arrival should have been counted : %d", s.ConnCount())
	}
}

func TestServer_FactoryCallFailureAbandonsTheConn(t *testing.T) {
	app := demo.NewSingleApp()
	calls := make(chan uint64, 16)
	factory := &stubFactory{
		readiness: svc.Ready,
		call: func(conn web.ConnInfo) *svc.Future[svc.App] {
			calls <- conn.Number
			if conn.Number == 1 {
				return svc.FailedFuture[svc.App](errors.New("out of capacity"))
			}
			return svc.CompletedFuture(app)
		},
	}
	connSource := server.NewTriggerSource()
	requestSource := server.NewTriggerSource()
	results := make(chan result, 16)

	s, err := server.New(server.Settings{
		Factory:    factory,
		ConnSource: connSource,
		RequestSource: func(conn web.ConnInfo) server.ArrivalSource {
			return requestSource
		},
		Descriptor: descriptor(),
		NewRequest: func(conn web.ConnInfo) web.Request {
			return web.Request{PathAndQuery: server.FakePathAndQuery}
		},
		LogOutput: io.Discard,
	})
	if err != nil {
		t.Fatal(err)
	}
	factory.call = wrapFactoryCall(factory.call, results)

	s.Start()
	defer func() {
		s.Kill(nil)
		if err := s.Wait(); err != nil {
			t.Errorf("Wait should have returned nil : %v", err)
		}
	}()

	// conn #1 fails at the factory, conn #2 is accepted and served
	connSource.Trigger()
	if n := await(t, calls, "the failing factory call"); n != 1 {
		t.Fatalf("the first conn should be #1 : %d", n)
	}
	connSource.Trigger()
	if n := await(t, calls, "the succeeding factory call"); n != 2 {
		t.Fatalf("the second conn should be #2 : %d", n)
	}

	requestSource.Trigger()
	r := await(t, results, "the first request's outcome")
	if r.err != nil {
		t.Fatalf("the request should have succeeded : %v", r.err)
	}
	if r.resp.Status != 200 {
		t.Errorf("unexpected status : %d", r.resp.Status)
	}
}

// wrapFactoryCall wraps every successfully constructed app with recordResults.
func wrapFactoryCall(call func(conn web.ConnInfo) *svc.Future[svc.App], results chan<- result) func(conn web.ConnInfo) *svc.Future[svc.App] {
	return func(conn web.ConnInfo) *svc.Future[svc.App] {
		app, err := call(conn).Await()
		if err != nil {
			return svc.FailedFuture[svc.App](err)
		}
		return svc.CompletedFuture(recordResults(app, results))
	}
}

func TestServer_PanicInFactoryPollIsContained(t *testing.T) {
	polls := make(chan struct{}, 16)
	first := true
	factory := &stubFactory{readiness: svc.Ready, polls: polls}
	factory.call = func(conn web.ConnInfo) *svc.Future[svc.App] {
		return svc.CompletedFuture(demo.NewSingleApp())
	}
	pollingFactory := &pollPanicFactory{inner: factory, first: &first}
	connSource := server.NewTriggerSource()

	s, err := server.New(server.Settings{
		Factory:       pollingFactory,
		ConnSource:    connSource,
		RequestSource: func(conn web.ConnInfo) server.ArrivalSource { return server.NewOnceSource() },
		Descriptor:    descriptor(),
		LogOutput:     io.Discard,
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	defer func() {
		s.Kill(nil)
		if err := s.Wait(); err != nil {
			t.Errorf("Wait should have returned nil : %v", err)
		}
	}()

	// the first poll panics - the accept loop must survive and poll again
	connSource.Trigger()
	connSource.Trigger()
	await(t, polls, "the poll after the panic")
	if s.ConnCount() != 2 {
		t.Errorf("both arrivals should have been counted : %d", s.ConnCount())
	}
}

// pollPanicFactory panics on its first readiness poll and then delegates.
type pollPanicFactory struct {
	inner *stubFactory
	first *bool
}

func (a *pollPanicFactory) PollReady() (svc.Readiness, error) {
	if *a.first {
		*a.first = false
		panic("readiness probe blew up")
	}
	return a.inner.PollReady()
}

func (a *pollPanicFactory) Call(conn web.ConnInfo) *svc.Future[svc.App] {
	return a.inner.Call(conn)
}

func TestServer_EndToEnd(t *testing.T) {
	const conns = 3
	const requestsPerConn = 2

	results := make(chan result, conns*requestsPerConn)
	counter := demo.NewCounter()
	factory := svc.AppFactoryFunc(func(conn web.ConnInfo) *svc.Future[svc.App] {
		return svc.CompletedFuture(recordResults(demo.NewApp(counter, conn), results))
	})

	connSource := server.NewTriggerSource()
	requestSources := map[uint64]*server.TriggerSource{}
	for i := uint64(1); i <= conns; i++ {
		requestSources[i] = server.NewTriggerSource()
	}

	s, err := server.New(server.Settings{
		Factory:    factory,
		ConnSource: connSource,
		RequestSource: func(conn web.ConnInfo) server.ArrivalSource {
			return requestSources[conn.Number]
		},
		Descriptor: descriptor(),
		LogOutput:  io.Discard,
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Start()

	for i := 0; i < conns; i++ {
		connSource.Trigger()
	}

	// issue requests one at a time, awaiting each outcome, so the counter
	// values line up with the issue order : 0 1 2 3 4 5, failing at 2
	outcomes := make([]result, 0, conns*requestsPerConn)
	for round := 0; round < requestsPerConn; round++ {
		for i := uint64(1); i <= conns; i++ {
			requestSources[i].Trigger()
			outcomes = append(outcomes, await(t, results, "a request outcome"))
		}
	}

	s.Kill(nil)
	if err := s.Wait(); err != nil {
		t.Errorf("Wait should have returned nil : %v", err)
	}
	if s.ConnCount() != conns {
		t.Errorf("ConnCount should be %d but was %d", conns, s.ConnCount())
	}

	for i, r := range outcomes {
		if i == 2 {
			if r.err == nil {
				t.Error("the call observing counter value 2 should have failed")
			}
			continue
		}
		if r.err != nil {
			t.Errorf("call %d should have succeeded : %v", i, r.err)
			continue
		}
		if r.resp.Status != 200 {
			t.Errorf("call %d should have status 200 : %d", i, r.resp.Status)
		}
		if len(r.resp.Headers) != 1 {
			t.Errorf("call %d should have exactly one added header : %v", i, r.resp.Headers)
			continue
		}
		for _, value := range r.resp.Headers {
			if n, err := strconv.ParseUint(value, 10, 64); err != nil || n != uint64(i) {
				t.Errorf("call %d should carry counter value %d : %q", i, i, value)
			}
		}
	}
}
