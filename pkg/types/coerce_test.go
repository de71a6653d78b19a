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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactMatchCoercion(t *testing.T) {
	require := require.New(t)
	i32 := Q(NewInt(32))
	_, ok := CoerceType(i32, i32, TryExactMatch)
	require.True(ok)
}

// P8: Assignment coercion into a const destination fails.
func TestConstDestinationRejectsAssignmentP8(t *testing.T) {
	require := require.New(t)
	src := Q(NewInt(32))
	dst := QConst(NewInt(32))
	_, ok := CoerceType(src, dst, TryExactMatch|Assignment|OperandMatching)
	require.False(ok)
}

func TestIntWideningCoercion(t *testing.T) {
	require := require.New(t)
	src := Q(NewInt(8))
	dst := Q(NewInt(32))
	_, ok := CoerceType(src, dst, TryExactMatch)
	require.True(ok)

	_, ok = CoerceType(dst, src, TryExactMatch)
	require.False(ok, "narrowing must not silently coerce")
}

func TestOptionalWrapping(t *testing.T) {
	require := require.New(t)
	src := Q(NewInt(32))
	dst := Q(NewParameterized(KindOptional, NewInt(32)))
	_, ok := CoerceType(src, dst, Assignment)
	require.True(ok)

	_, ok = CoerceType(src, dst, TryExactMatch)
	require.False(ok, "optional wrapping requires Assignment or FunctionCall")
}

func TestBytesStreamCoercion(t *testing.T) {
	require := require.New(t)
	bytes := Q(New(KindBytes))
	stream := Q(New(KindStream))
	_, ok := CoerceType(bytes, stream, Assignment)
	require.True(ok)
}

func TestNullToReferenceAlwaysCoerces(t *testing.T) {
	require := require.New(t)
	null := Q(New(KindNull))
	ref := Q(NewParameterized(KindStrongRef, New(KindInt)))
	_, ok := CoerceType(null, ref, TryExactMatch)
	require.True(ok)
}

func TestErrorToResultAlwaysCoerces(t *testing.T) {
	require := require.New(t)
	errT := Q(New(KindError))
	result := Q(NewParameterized(KindResult, NewInt(32)))
	_, ok := CoerceType(errT, result, TryExactMatch)
	require.True(ok)
}

func TestContextualBoolCoercion(t *testing.T) {
	require := require.New(t)
	i := Q(NewInt(32))
	b := Q(New(KindBool))
	_, ok := CoerceType(i, b, TryExactMatch)
	require.False(ok, "without ContextualConversion this must fail")

	_, ok = CoerceType(i, b, TryExactMatch|ContextualConversion)
	require.True(ok)
}

// P7: coercion transitivity where declared (Assignment style), for the
// int-widening chain.
func TestCoercionTransitivityP7(t *testing.T) {
	require := require.New(t)
	i8 := Q(NewInt(8))
	i16 := Q(NewInt(16))
	i32 := Q(NewInt(32))

	style := TryExactMatch | Assignment
	_, ok1 := CoerceType(i8, i16, style)
	_, ok2 := CoerceType(i16, i32, style)
	_, ok3 := CoerceType(i8, i32, style)
	require.True(ok1)
	require.True(ok2)
	require.True(ok3, "coerce(i8,i16) && coerce(i16,i32) => coerce(i8,i32)")
}

func TestAnonymousStructEqualOnlyToItself(t *testing.T) {
	require := require.New(t)
	a := NewAnonymousStruct([]FieldRef{{Name: "x", Type: Q(NewInt(32))}})
	b := NewAnonymousStruct([]FieldRef{{Name: "x", Type: Q(NewInt(32))}})
	require.True(a.Equal(a))
	require.False(a.Equal(b), "two anonymous records are equal only to themselves")
}

func TestWildcardEqualityIgnoresParams(t *testing.T) {
	require := require.New(t)
	wc1 := NewWildcard(KindList)
	wc2 := NewWildcard(KindList)
	require.True(wc1.Equal(wc2), "two wildcards of the same kind are equal regardless of params")

	concrete := NewParameterized(KindList, NewInt(32))
	require.False(wc1.Equal(concrete), "Equal is not coercion — matching a wildcard to a concrete list is an operand-matching rule, not type equality")
}

func TestIsResolvedBreaksCycles(t *testing.T) {
	require := require.New(t)
	// Build a self-referential struct type (via a strong_ref to itself),
	// simulating a mutually recursive record; resolution must terminate
	// rather than loop forever, and the cycle is optimistically closed.
	self := New(KindStruct)
	self.TypeID = "M.Node"
	ref := NewParameterized(KindStrongRef, self)
	self.Fields = []FieldRef{{Name: "next", Type: Q(ref)}}

	require.True(self.Resolved())
}
