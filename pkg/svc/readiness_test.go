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

package svc_test

import (
	"testing"

	"github.com/svcpack/svcpack.go/pkg/svc"
)

func TestReadiness(t *testing.T) {
	if !svc.Ready.Ready() || svc.Ready.NotReady() || svc.Ready.Failed() {
		t.Error("Ready predicates are wrong")
	}
	if !svc.NotReady.NotReady() || svc.NotReady.Ready() || svc.NotReady.Failed() {
		t.Error("NotReady predicates are wrong")
	}
	if !svc.Failed.Failed() || svc.Failed.Ready() || svc.Failed.NotReady() {
		t.Error("Failed predicates are wrong")
	}
}

func TestReadiness_String(t *testing.T) {
	for readiness, expected := range map[svc.Readiness]string{
		svc.Ready:    "Ready",
		svc.NotReady: "NotReady",
		svc.Failed:   "Failed",
	} {
		if readiness.String() != expected {
			t.Errorf("String() should be %q but was %q", expected, readiness.String())
		}
	}
}

func TestReadiness_StringPanicsOnUnknownValue(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Error("String() should have panicked for an unknown Readiness value")
		}
	}()
	_ = svc.Readiness(99).String()
}

func TestNotReadyError(t *testing.T) {
	err := &svc.NotReadyError{}
	if err.Error() != "service is not ready to accept work" {
		t.Errorf("unexpected error message : %v", err)
	}
	err = &svc.NotReadyError{Reason: "warming up"}
	if err.Error() != "service is not ready to accept work : warming up" {
		t.Errorf("unexpected error message : %v", err)
	}
}
