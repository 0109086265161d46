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

// Package server implements the dispatch engine that drives two-phase
// service instances.
//
// The engine runs one accept loop over a connection ArrivalSource. For each
// arrival it builds a ConnInfo, polls the AppFactory for readiness, and, if
// ready, calls the factory and launches the resulting future as an
// independent unit of work. A successfully constructed App is then served by
// a per-connection request loop of the same shape.
//
// Every unit of work runs concurrently with its siblings - the loops never
// wait on a call's future before handling the next arrival. Within one
// connection, requests are issued in arrival order but may complete in any
// order; across connections there is no ordering at all.
//
// No failure escalates: a readiness rejection or a failed future is logged,
// counted, and the relevant connection attempt or request is abandoned
// without retry. The engine has no admission limit - the number of in-flight
// units is unbounded.
package server

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/tomb.v2"

	"github.com/svcpack/svcpack.go/pkg/logging"
	"github.com/svcpack/svcpack.go/pkg/svc"
	"github.com/svcpack/svcpack.go/pkg/uid"
	"github.com/svcpack/svcpack.go/pkg/web"
)

// FakePathAndQuery is the synthetic request target used when no request
// constructor is configured. It stands in for real request parsing.
const FakePathAndQuery = "/fake/path?page=1"

// Settings is used by New to create a Server.
type Settings struct {
	// REQUIRED - produces one App per accepted connection
	Factory svc.AppFactory

	// REQUIRED - emits connection arrival signals
	ConnSource ArrivalSource

	// REQUIRED - produces the request arrival source for an accepted connection
	RequestSource func(conn web.ConnInfo) ArrivalSource

	// REQUIRED - identifies this engine instance
	Descriptor *svc.Descriptor

	// OPTIONAL - constructs the synthetic request for each request arrival.
	// Defaults to NewFakeRequest.
	NewRequest func(conn web.ConnInfo) web.Request

	// OPTIONAL - used to specify an alternative writer for the engine logger
	LogOutput io.Writer

	// OPTIONAL - if not specified then the global default log level is used
	LogLevel *zerolog.Level
}

// NewFakeRequest constructs the fixed synthetic request dispatched for each
// simulated request arrival: FakePathAndQuery, no headers, empty body.
func NewFakeRequest(conn web.ConnInfo) web.Request {
	return web.Request{
		PathAndQuery: FakePathAndQuery,
		Headers:      map[string]string{},
		Body:         []byte{},
	}
}

// Server is the dispatch engine. Its lifetime is managed by the embedded
// tomb: Start launches the accept loop, Kill triggers shutdown, and Wait
// blocks until every spawned unit of work has returned.
type Server struct {
	tomb.Tomb

	factory       svc.AppFactory
	connSource    ArrivalSource
	requestSource func(conn web.ConnInfo) ArrivalSource
	newRequest    func(conn web.ConnInfo) web.Request

	descriptor *svc.Descriptor
	connSeq    *svc.Sequence

	logger  zerolog.Logger
	metrics *engineMetrics
}

// New creates a Server in the new state - no loops are running until Start.
func New(settings Settings) (*Server, error) {
	if settings.Factory == nil {
		return nil, errors.New("Factory is required")
	}
	if settings.ConnSource == nil {
		return nil, errors.New("ConnSource is required")
	}
	if settings.RequestSource == nil {
		return nil, errors.New("RequestSource is required")
	}
	if settings.Descriptor == nil {
		return nil, errors.New("Descriptor is required")
	}
	newRequest := settings.NewRequest
	if newRequest == nil {
		newRequest = NewFakeRequest
	}

	l := logger
	if settings.LogOutput != nil {
		l = l.Output(settings.LogOutput)
	}
	if settings.LogLevel != nil {
		l = l.Level(*settings.LogLevel)
	}

	return &Server{
		factory:       settings.Factory,
		connSource:    settings.ConnSource,
		requestSource: settings.RequestSource,
		newRequest:    newRequest,
		descriptor:    settings.Descriptor,
		connSeq:       svc.NewSequence(0),
		logger:        l.With().Str(logging.ID, settings.Descriptor.ID()).Logger(),
		metrics:       newEngineMetrics(),
	}, nil
}

// Descriptor identifies this engine instance.
func (a *Server) Descriptor() *svc.Descriptor {
	return a.descriptor
}

// ConnCount returns the number of connection arrivals processed so far.
func (a *Server) ConnCount() uint64 {
	return a.connSeq.Value()
}

// Start launches the accept loop. It must be called exactly once.
func (a *Server) Start() {
	a.Go(a.acceptLoop)
	LOG_EVENT_STARTED.Log(a.logger.Info()).Msg("")
}

// acceptLoop waits for connection arrivals and accepts each one.
// It only ends when the server is killed.
func (a *Server) acceptLoop() error {
	defer a.connSource.Stop()
	for {
		select {
		case <-a.Dying():
			LOG_EVENT_DYING.Log(a.logger.Info()).Msg("")
			return nil
		case <-a.connSource.Arrivals():
			a.acceptConn()
		}
	}
}

// acceptConn performs one readiness+call sequence against the factory and
// launches the resulting future as an independent unit of work. The accept
// loop is never blocked by the outcome.
func (a *Server) acceptConn() {
	defer a.recoverUnitPanic()

	a.metrics.connArrivals.Inc()
	number := a.connSeq.Next()
	conn := web.ConnInfo{
		ID:          string(uid.NextUID()),
		Number:      number,
		HostAndPort: fmt.Sprintf("fake info, connection #%d", number),
	}

	readiness, err := a.factory.PollReady()
	if !readiness.Ready() {
		a.metrics.conns.WithLabelValues(OutcomeRejected).Inc()
		LOG_EVENT_CONN_REJECTED.Log(a.logger.Warn()).
			Str(logging.STATE, readiness.String()).
			Err(err).
			Str(logging.CONN, conn.String()).
			Msg("factory not able to accept connection")
		return
	}

	future := a.factory.Call(conn)
	a.Go(func() error {
		select {
		case <-a.Dying():
			return nil
		case <-future.Done():
		}
		app, err := future.Result()
		if err != nil {
			a.metrics.conns.WithLabelValues(OutcomeFailed).Inc()
			LOG_EVENT_CONN_FAILED.Log(a.logger.Error()).
				Err(err).
				Str(logging.CONN, conn.String()).
				Msg("connection attempt abandoned")
			return nil
		}
		a.metrics.conns.WithLabelValues(OutcomeAccepted).Inc()
		LOG_EVENT_CONN_ACCEPTED.Log(a.logger.Info()).
			Str(logging.CONN, conn.String()).
			Msg("accepted a connection")
		a.serveConn(conn, app)
		return nil
	})
}

// serveConn is the per-connection request loop. It runs inside the unit of
// work that constructed the App and only ends when the server is killed.
func (a *Server) serveConn(conn web.ConnInfo, app svc.App) {
	source := a.requestSource(conn)
	defer source.Stop()
	for {
		select {
		case <-a.Dying():
			return
		case <-source.Arrivals():
			a.dispatch(conn, app)
		}
	}
}

// dispatch performs one readiness+call sequence against the App and
// launches the call's future as an independent unit of work. The request
// loop is never blocked by the outcome, so multiple requests on the same
// connection may be in flight simultaneously.
func (a *Server) dispatch(conn web.ConnInfo, app svc.App) {
	defer a.recoverUnitPanic()

	req := a.newRequest(conn)

	readiness, err := app.PollReady()
	if !readiness.Ready() {
		a.metrics.requests.WithLabelValues(OutcomeRejected).Inc()
		LOG_EVENT_REQUEST_REJECTED.Log(a.logger.Warn()).
			Str(logging.STATE, readiness.String()).
			Err(err).
			Str(logging.CONN, conn.String()).
			Str(logging.REQUEST, req.String()).
			Msg("app not able to accept request")
		return
	}

	future := app.Call(req)
	a.Go(func() error {
		select {
		case <-a.Dying():
			return nil
		case <-future.Done():
		}
		resp, err := future.Result()
		if err != nil {
			a.metrics.requests.WithLabelValues(OutcomeFailed).Inc()
			LOG_EVENT_REQUEST_ERR.Log(a.logger.Error()).
				Err(err).
				Str(logging.CONN, conn.String()).
				Str(logging.REQUEST, req.String()).
				Msg("request failed")
			return nil
		}
		a.metrics.requests.WithLabelValues(OutcomeOK).Inc()
		LOG_EVENT_REQUEST_OK.Log(a.logger.Info()).
			Str(logging.CONN, conn.String()).
			Str(logging.RESPONSE, resp.String()).
			Msg("successful response")
		return nil
	})
}

// recoverUnitPanic traps a panic escaping a unit of work and converts it to
// a log entry - no failure escalates past the unit that produced it.
func (a *Server) recoverUnitPanic() {
	if p := recover(); p != nil {
		err := &svc.PanicError{Panic: p}
		LOG_EVENT_UNIT_PANIC.Log(a.logger.Error()).Err(err).Msg("")
	}
}
