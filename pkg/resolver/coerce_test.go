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

func TestExprTypeReadsBarePayloadAndNameIndirection(t *testing.T) {
	require := require.New(t)

	bare := ast.New(ast.CategoryCtor, ast.VariantCtorBool)
	bare.Payload = types.Q(types.New(types.KindBool))
	q, ok := exprType(bare)
	require.True(ok)
	require.Equal(types.KindBool, q.Type.Kind)

	varDecl := ast.New(ast.CategoryDeclaration, ast.VariantDeclConstant)
	varDecl.Payload = &decl.VariablePayload{Type: types.Q(types.NewInt(32))}
	name := ast.New(ast.CategoryExpression, ast.VariantExprName)
	name.Payload = &NameResolutionPayload{Decl: varDecl}
	q, ok = exprType(name)
	require.True(ok)
	require.Equal(32, q.Type.Width)
}

func TestExprTypeFalseForUnresolvedPayload(t *testing.T) {
	require := require.New(t)
	n := ast.New(ast.CategoryExpression, ast.VariantExprName)
	_, ok := exprType(n)
	require.False(ok)
}

func TestCoerceExpressionPassesAutoAndAnyThrough(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorInteger)
	e.Payload = &decl.IntegerCtorPayload{Value: 1, Type: types.Q(types.NewInt(8))}

	rewritten, changed, ok := coerceExpression(e, types.Q(types.New(types.KindAuto)), 0)
	require.True(ok)
	require.False(changed)
	require.Same(e, rewritten)

	rewritten, changed, ok = coerceExpression(e, types.Q(types.New(types.KindAny)), 0)
	require.True(ok)
	require.False(changed)
	require.Same(e, rewritten)
}

func TestCoerceExpressionWidensIntegerLiteral(t *testing.T) {
	require := require.New(t)
	e := intCtor(8)

	rewritten, changed, ok := coerceExpression(e, types.Q(types.NewInt(32)), types.TryExactMatch|types.TryCoercion)
	require.True(ok)
	require.True(changed)
	ip, ok := rewritten.Payload.(*decl.IntegerCtorPayload)
	require.True(ok)
	require.Equal(32, ip.Type.Type.Width)
}

func TestCoerceExpressionRejectsOutOfRangeNarrowing(t *testing.T) {
	require := require.New(t)
	e := ast.New(ast.CategoryCtor, ast.VariantCtorInteger)
	e.Payload = &decl.IntegerCtorPayload{Value: 1000, Type: types.Q(types.NewInt(32))}

	_, _, ok := coerceExpression(e, types.Q(types.NewInt(8)), types.TryExactMatch|types.TryCoercion)
	require.False(ok)
}

func TestCoerceOperandsRejectsTooManyArguments(t *testing.T) {
	require := require.New(t)
	exprs := []*ast.Node{intCtor(8), intCtor(8)}
	_, _, ok := coerceOperands(exprs, nil, 0)
	require.False(ok)
}

func TestCoerceOperandsFillsOptionalTrailingOperand(t *testing.T) {
	require := require.New(t)
	operands := []types.Operand{
		{Name: "required", Type: types.Q(types.NewInt(32))},
		{Name: "opt", Type: types.Q(types.NewInt(32)), Optional: true},
	}
	_, out, ok := coerceOperands([]*ast.Node{intCtor(32)}, operands, types.TryExactMatch)
	require.True(ok)
	require.Len(out, 2)
	require.Equal("$$absent", out[1].ID)
}

func TestParamOperandsReadsParameterTypes(t *testing.T) {
	require := require.New(t)
	fn := ast.New(ast.CategoryDeclaration, ast.VariantDeclFunction)
	p := ast.New(ast.CategoryDeclaration, ast.VariantDeclParameter)
	p.ID = "a"
	p.Payload = &decl.ParameterPayload{Type: types.Q(types.NewInt(16))}
	fn.AddChild(p)

	ops := paramOperands(fn)
	require.Len(ops, 1)
	require.Equal("a", ops[0].Name)
	require.Equal(16, ops[0].Type.Type.Width)
}
