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

// The appserver demo runs the dispatch engine against the demo app factory:
// a simulated connection arrives every 2s, and each accepted connection
// receives a simulated request every 1s. All apps share one counter, so
// roughly every 4th request across all connections fails.
package main

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/svcpack/svcpack.go/pkg/demo"
	"github.com/svcpack/svcpack.go/pkg/server"
	"github.com/svcpack/svcpack.go/pkg/svc"
	"github.com/svcpack/svcpack.go/pkg/web"
)

func main() {
	s, err := server.New(server.Settings{
		Factory:    demo.NewAppFactory(),
		ConnSource: server.NewTickerSource(2 * time.Second),
		RequestSource: func(conn web.ConnInfo) server.ArrivalSource {
			return server.NewTickerSource(1 * time.Second)
		},
		Descriptor: svc.NewDescriptor("svcpack", "demos", "appserver", "1.0.0"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	s.Start()
	<-s.Dead()
}
