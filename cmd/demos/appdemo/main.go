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

// The appdemo demo runs a single shared app with no connection handling:
// one synthetic connection is stood up immediately, and a simulated request
// arrives every 5s. Every 4th request fails.
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
	app := demo.NewSingleApp()

	s, err := server.New(server.Settings{
		Factory: svc.AppFactoryFunc(func(conn web.ConnInfo) *svc.Future[svc.App] {
			return svc.CompletedFuture(app)
		}),
		ConnSource: server.NewOnceSource(),
		RequestSource: func(conn web.ConnInfo) server.ArrivalSource {
			return server.NewTickerSource(5 * time.Second)
		},
		Descriptor: svc.NewDescriptor("svcpack", "demos", "appdemo", "1.0.0"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	log.Info().Msg("fakeserver started")
	s.Start()
	<-s.Dead()
}
