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

// Package attr implements the recognized declaration-attribute tags of spec
// §6 and loosely-typed accessors over their literal expression values.
package attr

import "github.com/spf13/cast"

// Tag names the recognized attribute tags the core observes.
type Tag string

const (
	CxxName  Tag = "&cxxname"
	OnHeap   Tag = "&on-heap"
	Optional Tag = "&optional"
	Default  Tag = "&default"
	Internal Tag = "&internal"
	Static   Tag = "&static"
	NoEmit   Tag = "&no-emit"
	NoSub    Tag = "&nosub"
	Alias    Tag = "&alias" // reserved
)

// Set is a declaration's attribute set: tag -> literal value (nil for
// value-less tags like &optional).
type Set map[Tag]interface{}

func (s Set) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// String loosely converts a tag's value to a string via spf13/cast, the way
// the teacher coerces loosely-typed session/config values; ok is false if
// the tag is absent or not string-like.
func (s Set) String(t Tag) (string, bool) {
	v, ok := s[t]
	if !ok {
		return "", false
	}
	str, err := cast.ToStringE(v)
	return str, err == nil
}

// Bool loosely converts a tag's value to bool; a value-less tag present in
// the set is treated as true.
func (s Set) Bool(t Tag) (bool, bool) {
	v, ok := s[t]
	if !ok {
		return false, false
	}
	if v == nil {
		return true, true
	}
	b, err := cast.ToBoolE(v)
	return b, err == nil
}
