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

package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/decl"
	"github.com/coral-lang/astcore/pkg/types"
)

func TestCoerceIntegerCtorWidensWithinRange(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorInteger)
	e.Payload = &decl.IntegerCtorPayload{Value: 42, Type: types.Q(types.NewInt(8))}

	coerced, ok := coerceIntegerCtor(e, types.Q(types.NewInt(32)))
	require.True(ok)
	ip := coerced.Payload.(*decl.IntegerCtorPayload)
	require.Equal(int64(42), ip.Value)
	require.Equal(32, ip.Type.Type.Width)
}

func TestCoerceIntegerCtorRejectsOutOfRangeSigned(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorInteger)
	e.Payload = &decl.IntegerCtorPayload{Value: 200, Type: types.Q(types.NewInt(32))}

	_, ok := coerceIntegerCtor(e, types.Q(types.NewInt(8)))
	require.False(ok)
}

func TestCoerceIntegerCtorRejectsNegativeToUnsigned(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorInteger)
	e.Payload = &decl.IntegerCtorPayload{Value: -1, Type: types.Q(types.NewInt(32))}

	_, ok := coerceIntegerCtor(e, types.Q(types.NewUInt(32)))
	require.False(ok)
}

func TestCoerceIntegerCtorToRealRequiresExactRoundTrip(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorInteger)
	e.Payload = &decl.IntegerCtorPayload{Value: 7, Type: types.Q(types.NewInt(32))}

	coerced, ok := coerceIntegerCtor(e, types.Q(types.New(types.KindReal)))
	require.True(ok)
	require.Equal(ast.VariantCtorReal, coerced.Variant)
}

func TestCoerceRealCtorRequiresIntegralValue(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorReal)
	e.Payload = &decl.RealCtorPayload{Value: 3.5, Type: types.Q(types.New(types.KindReal))}

	_, ok := coerceRealCtor(e, types.Q(types.NewInt(32)))
	require.False(ok, "3.5 cannot round-trip through an integer destination")

	e.Payload = &decl.RealCtorPayload{Value: 4.0, Type: types.Q(types.New(types.KindReal))}
	coerced, ok := coerceRealCtor(e, types.Q(types.NewInt(32)))
	require.True(ok)
	require.Equal(ast.VariantCtorInteger, coerced.Variant)
}

func TestCoerceContainerCtorRewritesElementsAndVariant(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorList)
	e.AddChild(intCtor(8))
	e.AddChild(intCtor(8))

	dst := types.Q(types.NewParameterized(types.KindSet, types.NewInt(32)))
	coerced, ok := coerceContainerCtor(e, dst)
	require.True(ok)
	require.Equal(ast.VariantCtorSet, coerced.Variant)
	require.Len(coerced.NonNilChildren(), 2)
	for _, c := range coerced.NonNilChildren() {
		ip := c.Payload.(*decl.IntegerCtorPayload)
		require.Equal(32, ip.Type.Type.Width)
	}
}

func TestCoerceTupleCtorRequiresMatchingArity(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorTuple)
	e.AddChild(intCtor(8))

	dst := types.Q(types.NewParameterized(types.KindTuple, types.NewInt(32), types.New(types.KindBool)))
	_, ok := coerceTupleCtor(e, dst)
	require.False(ok)
}

func TestCoerceStructCtorRejectsExtraFieldsAndMissingRequired(t *testing.T) {
	require := require.New(t)
	structType := types.NewAnonymousStruct([]types.FieldRef{
		{Name: "a", Type: types.Q(types.NewInt(32))},
		{Name: "b", Type: types.Q(types.New(types.KindBool)), Optional: true},
	})

	extra := ast.New(ast.CategoryCtor, ast.VariantCtorStruct)
	extra.Payload = &decl.StructCtorPayload{
		FieldOrder: []string{"a", "c"},
		Fields:     map[string]*ast.Node{"a": intCtor(32), "c": intCtor(8)},
	}
	_, ok := coerceStructCtor(extra, types.Q(structType))
	require.False(ok, "field c does not exist on the destination struct")

	missing := ast.New(ast.CategoryCtor, ast.VariantCtorStruct)
	missing.Payload = &decl.StructCtorPayload{FieldOrder: nil, Fields: map[string]*ast.Node{}}
	_, ok = coerceStructCtor(missing, types.Q(structType))
	require.False(ok, "required field a has no default and was not supplied")
}

func TestCoerceStructCtorAcceptsCompleteFieldSet(t *testing.T) {
	require := require.New(t)
	structType := types.NewAnonymousStruct([]types.FieldRef{
		{Name: "a", Type: types.Q(types.NewInt(32))},
		{Name: "b", Type: types.Q(types.New(types.KindBool)), Optional: true},
	})

	e := ast.New(ast.CategoryCtor, ast.VariantCtorStruct)
	e.Payload = &decl.StructCtorPayload{
		FieldOrder: []string{"a"},
		Fields:     map[string]*ast.Node{"a": intCtor(32)},
	}
	coerced, ok := coerceStructCtor(e, types.Q(structType))
	require.True(ok)
	sp := coerced.Payload.(*decl.StructCtorPayload)
	require.Equal([]string{"a"}, sp.FieldOrder)
}

func TestCoerceEnumCtorToBoolIsUndefFalse(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorEnum)
	e.Payload = &decl.EnumCtorPayload{Label: "Undef"}

	coerced, ok := coerceEnumCtor(e, types.Q(types.New(types.KindBool)), types.ContextualConversion)
	require.True(ok)
	bp := coerced.Payload.(*decl.BoolCtorPayload)
	require.False(bp.Value)

	e.Payload = &decl.EnumCtorPayload{Label: "Active"}
	coerced, ok = coerceEnumCtor(e, types.Q(types.New(types.KindBool)), types.ContextualConversion)
	require.True(ok)
	require.True(coerced.Payload.(*decl.BoolCtorPayload).Value)
}

func TestCoerceEnumCtorRequiresContextualConversionStyle(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorEnum)
	e.Payload = &decl.EnumCtorPayload{Label: "Active"}

	_, ok := coerceEnumCtor(e, types.Q(types.New(types.KindBool)), 0)
	require.False(ok)
}

func TestResolveTupleCtorComputesElementwiseType(t *testing.T) {
	require := require.New(t)
	r := New(nil, nil, nil)
	n := ast.New(ast.CategoryCtor, ast.VariantCtorTuple)
	n.AddChild(intCtor(8))
	n.AddChild(intCtor(32))

	resolved, changed, err := r.resolveTupleCtor(n)
	require.NoError(err)
	require.True(changed)
	tp := resolved.Payload.(*decl.TupleCtorPayload)
	require.Len(tp.Type.Type.Params, 2)
}

func TestResolveTupleCtorIsIdempotentOnceTyped(t *testing.T) {
	require := require.New(t)
	r := New(nil, nil, nil)
	n := ast.New(ast.CategoryCtor, ast.VariantCtorTuple)
	n.Payload = &decl.TupleCtorPayload{Type: types.Q(types.NewParameterized(types.KindTuple, types.NewInt(8)))}

	_, changed, err := r.resolveTupleCtor(n)
	require.NoError(err)
	require.False(changed)
}
