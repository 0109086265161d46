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

import "fmt"

// NotReadyError is the error an instance reports from PollReady when it
// cannot currently accept work.
type NotReadyError struct {
	Reason string
}

func (e *NotReadyError) Error() string {
	if e.Reason == "" {
		return "service is not ready to accept work"
	}
	return fmt.Sprintf("service is not ready to accept work : %v", e.Reason)
}

// UnknownFailureCause indicates that a unit of work failed, but the failure
// cause was not supplied.
type UnknownFailureCause struct{}

func (e UnknownFailureCause) Error() string {
	return "UnknownFailureCause"
}

// PanicError is used to wrap any trapped panics along with supplemental info
// about the context of the panic
type PanicError struct {
	Panic interface{}
	// additional info
	Message string
}

func (e *PanicError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("panic: %v : %v", e.Panic, e.Message)
	}
	return fmt.Sprintf("panic: %v", e.Panic)
}
