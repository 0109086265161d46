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

import "github.com/svcpack/svcpack.go/pkg/logging"

type pkgobject struct{}

var logger = logging.NewPackageLogger(pkgobject{})

// log events
const (
	LOG_EVENT_STARTED logging.Event = "STARTED"
	LOG_EVENT_DYING   logging.Event = "DYING"

	LOG_EVENT_CONN_ACCEPTED logging.Event = "CONN_ACCEPTED"
	LOG_EVENT_CONN_REJECTED logging.Event = "CONN_REJECTED"
	LOG_EVENT_CONN_FAILED   logging.Event = "CONN_FAILED"

	LOG_EVENT_REQUEST_REJECTED logging.Event = "REQUEST_REJECTED"
	LOG_EVENT_REQUEST_OK       logging.Event = "REQUEST_OK"
	LOG_EVENT_REQUEST_ERR      logging.Event = "REQUEST_ERR"

	LOG_EVENT_UNIT_PANIC logging.Event = "UNIT_PANIC"
)
