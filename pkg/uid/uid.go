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

// Package uid provides unique identifiers for connections and requests.
// IDs are NUIDs - fast, unique, and safe for concurrent use.
package uid

import (
	"hash/fnv"

	"github.com/nats-io/nuid"
)

// UID is a unique identifier
type UID string

// Hash returns the UID's fnv-64 hash
func (a UID) Hash() UIDHash {
	hasher := fnv.New64()
	hasher.Write([]byte(a))
	return UIDHash(hasher.Sum64())
}

// UIDHash is the numeric form of a UID, for compact log correlation
type UIDHash uint64

// UInt64 returns the hash as a uint64
func (a UIDHash) UInt64() uint64 {
	return uint64(a)
}

// NextUID returns the next unique id
func NextUID() UID {
	return UID(nuid.Next())
}

// NextUIDHash returns the hash of the next unique id
func NextUIDHash() UIDHash {
	return NextUID().Hash()
}
