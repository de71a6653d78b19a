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

// Allocable reports whether a type has storage representation and can be
// bound to a variable.
func (t *Type) Allocable() bool {
	switch t.Kind {
	case KindVoid, KindUnknown, KindAuto, KindOperandList, KindTypeOf, KindNameOf, KindDocOnly, KindMember:
		return false
	default:
		return true
	}
}

// Sortable reports whether a type admits runtime ordering.
func (t *Type) Sortable() bool {
	switch t.Kind {
	case KindInt, KindUInt, KindReal, KindString, KindBytes, KindTime, KindInterval,
		KindAddress, KindPort, KindBool, KindEnum:
		return true
	case KindTuple:
		for _, p := range t.Params {
			if !p.Sortable() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Mutable reports whether a bound value of this type may change after
// binding.
func (t *Type) Mutable() bool {
	switch t.Kind {
	case KindList, KindSet, KindVector, KindMap, KindStruct, KindStrongRef, KindWeakRef, KindValueRef:
		return true
	default:
		return false
	}
}

// Iterable reports whether the type exposes an element sequence.
func (t *Type) Iterable() bool {
	switch t.Kind {
	case KindList, KindSet, KindVector, KindMap, KindBytes, KindStream:
		return true
	default:
		return false
	}
}

// Iterator reports whether the type itself is an iterator over another
// container.
func (t *Type) Iterator() bool {
	switch t.Kind {
	case KindListIterator, KindSetIterator, KindVectorIterator, KindMapIterator:
		return true
	default:
		return false
	}
}

// Parameterized reports whether the type carries type parameters that
// affect its identity.
func (t *Type) Parameterized() bool {
	switch t.Kind {
	case KindList, KindSet, KindVector, KindMap, KindTuple, KindOptional, KindResult,
		KindStrongRef, KindWeakRef, KindValueRef,
		KindListIterator, KindSetIterator, KindVectorIterator, KindMapIterator:
		return true
	default:
		return len(t.Params) > 0
	}
}

// ReferenceType reports whether t is one of the three reference variants.
func (t *Type) ReferenceType() bool {
	switch t.Kind {
	case KindStrongRef, KindWeakRef, KindValueRef:
		return true
	default:
		return false
	}
}

// RuntimeNonTrivial reports whether the type maps to a non-POD target
// representation.
func (t *Type) RuntimeNonTrivial() bool {
	switch t.Kind {
	case KindBool, KindInt, KindUInt, KindReal, KindEnum, KindVoid:
		return false
	default:
		return true
	}
}

// Deref returns the element type of a reference/container/optional/result,
// or nil if t carries none.
func (t *Type) Deref() *Type {
	if len(t.Params) == 1 {
		return t.Params[0]
	}
	return nil
}

// IsResolved reports whether t, recursively, is fully known. state breaks
// cycles among mutually recursive parameterized types (spec §4.2
// "Resolution"): on entering a parameterized type whose identity is
// already in state, the call optimistically returns true rather than
// looping forever.
func (t *Type) IsResolved(state map[int64]bool) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindUnknown, KindAuto:
		return false
	}

	if t.Parameterized() {
		if state == nil {
			state = make(map[int64]bool)
		}
		if state[t.rid] {
			return true
		}
		state[t.rid] = true
	}

	switch t.Kind {
	case KindStruct, KindUnion, KindException:
		for _, f := range t.Fields {
			if f.Type.Type == nil || !f.Type.Type.IsResolved(state) {
				return false
			}
		}
		return true
	case KindFunction:
		if t.Result != nil && t.Result.Type != nil && !t.Result.Type.IsResolved(state) {
			return false
		}
		for _, op := range t.Operands {
			if op.Type.IsAuto {
				return false
			}
			if op.Type.Type == nil || !op.Type.Type.IsResolved(state) {
				return false
			}
		}
		return true
	case KindEnum:
		return true
	default:
		for _, p := range t.Params {
			if !p.IsResolved(state) {
				return false
			}
		}
		return true
	}
}

// Resolved is a convenience wrapper around IsResolved with a fresh state set.
func (t *Type) Resolved() bool { return t.IsResolved(nil) }
