// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package module implements the module UID, the parse-plugin interface and
// import resolution of spec §6.
package module

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// uidNamespace is a fixed namespace UUID used to derive each module UID's
// textual hash deterministically (spec §6: the hash must be stable across
// runs, so we use uuid.NewSHA1 — a name-based UUID — rather than a random
// one).
var uidNamespace = uuid.MustParse("9c6c37b2-8f0a-4f0a-9f2e-2a6a4f6e6a10")

// UID uniquely identifies a module file (spec §6 "Module UID").
type UID struct {
	ID               string
	Path             string
	ParseExtension   string
	ProcessExtension string
}

// Equal compares all four fields, per spec.
func (u UID) Equal(o UID) bool {
	return u.ID == o.ID && u.Path == o.Path &&
		u.ParseExtension == o.ParseExtension && u.ProcessExtension == o.ProcessExtension
}

// Hash12 is the deterministic 12-character hash used in the textual form.
func (u UID) Hash12() string {
	key := strings.Join([]string{u.ID, u.Path, u.ParseExtension, u.ProcessExtension}, "\x00")
	id := uuid.NewSHA1(uidNamespace, []byte(key))
	return strings.ReplaceAll(id.String(), "-", "")[:12]
}

// String renders "<id>_<hash12>" (spec §6).
func (u UID) String() string {
	return fmt.Sprintf("%s_%s", u.ID, u.Hash12())
}

// SyntheticPath builds a path for a module with no on-disk source, e.g. one
// synthesized by a test or a REPL.
func SyntheticPath(id string) string {
	return fmt.Sprintf("<synthetic:%s>", id)
}
