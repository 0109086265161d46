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

// Package commons provides small shared utilities.
package commons

import (
	"github.com/rs/zerolog/log"
)

// IgnorePanic simply calls recover()
// It is intended to use in defer() functions to explicitly specify the intent.
// If debug logging is enabled, then ignored panics will be logged
func IgnorePanic() {
	if p := recover(); p != nil {
		log.Debug().Msgf("IgnorePanic : %v", p)
	}
}

// CloseQuietly closes the channel, ignoring the panic if the channel is
// already closed. A common use case is for event notification channels,
// e.g., stop triggers, which may be closed from more than one path.
func CloseQuietly[T any](c chan T) {
	defer IgnorePanic()
	close(c)
}
