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

// Package logging provides the zerolog conventions used across the project.
//
// Each package creates its own logger via NewPackageLogger, which tags every
// log event with the package path. Named log events are declared as Event
// constants and applied via Event.Log.
package logging

import (
	"reflect"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// standard logger field names
const (
	PACKAGE = "pkg"
	TYPE    = "type"
	FUNC    = "func"
	EVENT   = "event"
	STATE   = "state"
	ID      = "id"

	CONN     = "conn"
	REQUEST  = "req"
	RESPONSE = "resp"
)

// Event is a named log event.
type Event string

// Log tags the zerolog event with event={e}
func (e Event) Log(evt *zerolog.Event) *zerolog.Event {
	return evt.Str(EVENT, string(e))
}

// NewPackageLogger returns a new logger with pkg={pkg}
// where {pkg} is o's package path
// o must be a struct - the pattern is to use an empty struct
func NewPackageLogger(o interface{}) zerolog.Logger {
	t := reflect.TypeOf(o)
	if t == nil || t.Kind() != reflect.Struct {
		panic("NewPackageLogger can only be created for a struct")
	}
	return log.With().Str(PACKAGE, t.PkgPath()).Logger()
}

// NewTypeLogger returns a new logger with pkg={pkg}, type={type}
// where {pkg} is o's package path and {type} is o's type name
// o must be a struct - the pattern is to use an empty struct
func NewTypeLogger(o interface{}) zerolog.Logger {
	t := reflect.TypeOf(o)
	if t == nil || t.Kind() != reflect.Struct {
		panic("NewTypeLogger can only be created for a struct")
	}
	return log.With().
		Str(PACKAGE, t.PkgPath()).
		Str(TYPE, t.Name()).
		Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
