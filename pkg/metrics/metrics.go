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

// Package metrics centralizes prometheus metric registration.
//
// Metrics are registered against the package Registry via the
// GetOrMustRegister* functions, which cache metrics by fully qualified name
// and panic on opts collisions. This makes registration idempotent for
// components that may be constructed more than once per process.
package metrics

import (
	"maps"
	"slices"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MetricType enumerates the supported metric types
type MetricType int

// Supported metric types
const (
	MetricType_UNKNOWN MetricType = iota
	MetricType_COUNTER
	MetricType_COUNTER_VEC
)

func (a MetricType) Value() int {
	return int(a)
}

func (a MetricType) String() string {
	switch a {
	case MetricType_COUNTER:
		return "Counter"
	case MetricType_COUNTER_VEC:
		return "CounterVec"
	default:
		return "UNKNOWN"
	}
}

// Counter pairs a registered counter with the opts it was registered with
type Counter struct {
	prometheus.Counter
	*prometheus.CounterOpts
}

// CounterVec pairs a registered counter vector with the opts it was registered with
type CounterVec struct {
	*prometheus.CounterVec
	*CounterVecOpts
}

// CounterVecOpts are CounterOpts plus the vector's label names
type CounterVecOpts struct {
	*prometheus.CounterOpts
	Labels []string
}

// FindMetricFamilyByName finds a gathered MetricFamily by name.
// nil is returned if no match is found
func FindMetricFamilyByName(gatheredMetrics []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, m := range gatheredMetrics {
		if m.GetName() == name {
			return m
		}
	}
	return nil
}

// CounterFQName returns the fully qualified name for the counter.
func CounterFQName(opts *prometheus.CounterOpts) string {
	return prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
}

// CounterOptsMatch returns true if the 2 opts match
func CounterOptsMatch(opts1, opts2 *prometheus.CounterOpts) bool {
	if CounterFQName(opts1) != CounterFQName(opts2) {
		return false
	}
	if opts1.Help != opts2.Help {
		return false
	}
	return maps.Equal(opts1.ConstLabels, opts2.ConstLabels)
}

// CounterVecOptsMatch returns true if the 2 opts match
func CounterVecOptsMatch(opts1, opts2 *CounterVecOpts) bool {
	if opts1 == nil && opts2 == nil {
		return true
	}
	if opts1 == nil || opts2 == nil {
		return false
	}
	if !CounterOptsMatch(opts1.CounterOpts, opts2.CounterOpts) {
		return false
	}
	sort.Strings(opts1.Labels)
	sort.Strings(opts2.Labels)
	return slices.Equal(opts1.Labels, opts2.Labels)
}
