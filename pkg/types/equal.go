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

package types

// Equal implements spec §3's type equality: same type_id, or same cxx_id,
// wins over structural comparison; anonymous records are equal only to
// themselves.
func (t *Type) Equal(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}

	if isAnonymousRecord(t) || isAnonymousRecord(o) {
		return t.anonID != 0 && t.anonID == o.anonID
	}

	if t.TypeID != "" || o.TypeID != "" {
		return t.TypeID != "" && t.TypeID == o.TypeID
	}
	if t.CxxID != "" || o.CxxID != "" {
		return t.CxxID != "" && t.CxxID == o.CxxID
	}

	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == KindInt || t.Kind == KindUInt {
		return t.Width == o.Width
	}
	if t.Wildcard != o.Wildcard {
		return false
	}
	if t.Wildcard {
		// A wildcard of the same Kind is equal regardless of Params.
		return true
	}
	if len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	return true
}

func isAnonymousRecord(t *Type) bool {
	switch t.Kind {
	case KindStruct, KindUnion, KindException:
		return t.TypeID == "" && t.CxxID == ""
	default:
		return false
	}
}

// EqualQ compares two qualified types for identical underlying type and
// constness.
func (q Qualified) EqualQ(o Qualified) bool {
	if q.Type == nil || o.Type == nil {
		return q.Type == o.Type
	}
	return q.Const == o.Const && q.Type.Equal(o.Type)
}
