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

// Package web defines the value shapes exchanged between the dispatch
// engine, app factories, and apps: connection metadata, requests, and
// responses. The types are plain values - once constructed they are not
// mutated except by the app that currently owns them.
package web

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ConnInfo describes an accepted connection.
// Number increases monotonically per engine instance. ID is globally unique
// and is meant for log correlation across the connection's requests.
type ConnInfo struct {
	ID          string `json:"id"`
	Number      uint64 `json:"number"`
	HostAndPort string `json:"host_and_port"`
}

func (a ConnInfo) String() string {
	return toString(a)
}

// Request is a method-agnostic message. Header keys are unique; key case is
// preserved as supplied and insertion order is not significant.
type Request struct {
	PathAndQuery string            `json:"path_and_query"`
	Headers      map[string]string `json:"headers"`
	Body         []byte            `json:"body"`
}

func (a Request) String() string {
	return toString(a)
}

// Response carries a status code, headers shaped like Request headers, and
// an opaque payload. A Response is constructed exactly once per successful
// call.
type Response struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers"`
	Body    []byte            `json:"body"`
}

func (a Response) String() string {
	return toString(a)
}

func toString(v interface{}) string {
	s, err := json.MarshalToString(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return s
}
