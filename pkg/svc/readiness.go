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

// Readiness is the result of polling a service instance for its ability to
// accept one unit of work.
//
// Ready means the next Call will be accepted.
// NotReady means the instance cannot accept work right now.
// Failed means the instance can never accept work again.
type Readiness int

// Possible Readiness values
const (
	Ready Readiness = iota
	NotReady
	Failed
)

func (a Readiness) Ready() bool { return a == Ready }

func (a Readiness) NotReady() bool { return a == NotReady }

func (a Readiness) Failed() bool { return a == Failed }

func (a Readiness) String() string {
	switch a {
	case Ready:
		return "Ready"
	case NotReady:
		return "NotReady"
	case Failed:
		return "Failed"
	default:
		panic(fmt.Sprintf("UNKNOWN READINESS : %d", a))
	}
}
