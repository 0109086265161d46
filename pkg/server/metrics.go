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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/svcpack/svcpack.go/pkg/metrics"
)

// metric naming
const (
	MetricNamespace = "svcpack"
	MetricSubsystem = "server"

	LabelOutcome = "outcome"

	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeOK       = "ok"
)

type engineMetrics struct {
	connArrivals prometheus.Counter
	conns        *prometheus.CounterVec
	requests     *prometheus.CounterVec
}

func newEngineMetrics() *engineMetrics {
	return &engineMetrics{
		connArrivals: metrics.GetOrMustRegisterCounter(&prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "conn_arrivals_total",
			Help:      "Total number of simulated connection arrivals.",
		}),
		conns: metrics.GetOrMustRegisterCounterVec(&metrics.CounterVecOpts{
			CounterOpts: &prometheus.CounterOpts{
				Namespace: MetricNamespace,
				Subsystem: MetricSubsystem,
				Name:      "conns_total",
				Help:      "Connection attempts partitioned by outcome.",
			},
			Labels: []string{LabelOutcome},
		}),
		requests: metrics.GetOrMustRegisterCounterVec(&metrics.CounterVecOpts{
			CounterOpts: &prometheus.CounterOpts{
				Namespace: MetricNamespace,
				Subsystem: MetricSubsystem,
				Name:      "requests_total",
				Help:      "Dispatched requests partitioned by outcome.",
			},
			Labels: []string{LabelOutcome},
		}),
	}
}
