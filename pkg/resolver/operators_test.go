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
	"github.com/coral-lang/astcore/pkg/operator"
	"github.com/coral-lang/astcore/pkg/types"
)

func intCtor(width int) *ast.Node {
	n := ast.New(ast.CategoryCtor, ast.VariantCtorInteger)
	n.Payload = &decl.IntegerCtorPayload{Value: 1, Type: types.Q(types.NewInt(width))}
	return n
}

func TestResolveOperatorMatchesAndInstantiatesSum(t *testing.T) {
	require := require.New(t)
	r := New(operator.Default, nil, nil)

	lhs, rhs := intCtor(8), intCtor(32)
	n := ast.New(ast.CategoryExpression, ast.VariantExprUnresolvedOperator)
	n.Payload = &UnresolvedOperatorPayload{Kind: operator.Sum, Operands: []*ast.Node{lhs, rhs}}

	resolved, changed, err := r.resolveOperator(n)
	require.NoError(err)
	require.True(changed)
	require.Equal(ast.VariantExprResolvedOperator, resolved.Variant)

	payload, ok := resolved.Payload.(*operator.ResolvedOperatorPayload)
	require.True(ok)
	require.Equal(operator.Sum, payload.Operator.Kind)
}

func TestResolveOperatorLeavesUnrelatedPayloadAlone(t *testing.T) {
	require := require.New(t)
	r := New(operator.Default, nil, nil)
	n := ast.New(ast.CategoryExpression, ast.VariantExprUnresolvedOperator)

	resolved, changed, err := r.resolveOperator(n)
	require.NoError(err)
	require.False(changed)
	require.Same(n, resolved)
}

func TestResolveOperatorReportsAmbiguityAcrossIdenticalCandidates(t *testing.T) {
	require := require.New(t)
	reg := operator.NewRegistry()
	boolQ := types.Q(types.New(types.KindBool))
	makeOp := func() *operator.Operator {
		return operator.NewStatic(operator.MemberCall, operator.Signature{
			Operands: []types.Operand{{Name: "lhs", Type: boolQ}, {Name: "rhs", Type: boolQ}},
			Result:   boolQ,
			Priority: operator.PriorityNormal,
		}, func(b operator.Builder, operands []*ast.Node, meta ast.Meta) (*ast.Node, error) {
			n := ast.New(ast.CategoryExpression, ast.VariantExprResolvedOperator)
			n.Meta = meta
			return n, nil
		}).WithMethodName("tied")
	}
	reg.Register(makeOp())
	reg.Register(makeOp())

	r := New(reg, nil, nil)
	lhs := ast.New(ast.CategoryCtor, ast.VariantCtorBool)
	lhs.Payload = &decl.BoolCtorPayload{Value: true, Type: boolQ}
	rhs := ast.New(ast.CategoryCtor, ast.VariantCtorBool)
	rhs.Payload = &decl.BoolCtorPayload{Value: false, Type: boolQ}

	n := ast.New(ast.CategoryExpression, ast.VariantExprUnresolvedOperator)
	n.Payload = &UnresolvedOperatorPayload{Kind: operator.MemberCall, MethodName: "tied", Operands: []*ast.Node{lhs, rhs}}

	_, changed, err := r.resolveOperator(n)
	require.NoError(err)
	require.False(changed)
	require.Len(n.Errors, 1)
	require.Contains(n.Errors[0].Message, "ambiguous")
}

func TestCandidatesForCallFindsPublicFunctionsButNotInitFunctions(t *testing.T) {
	require := require.New(t)
	mod := ast.New(ast.CategoryRoot, ast.VariantModule)
	mod.ID = "M"

	pub := ast.New(ast.CategoryDeclaration, ast.VariantDeclFunction)
	pub.ID = "pub"
	pub.Linkage = ast.LinkagePublic
	mod.AddChild(pub)

	priv := ast.New(ast.CategoryDeclaration, ast.VariantDeclFunction)
	priv.ID = "priv"
	priv.Linkage = ast.LinkagePrivate
	mod.AddChild(priv)

	initFn := ast.New(ast.CategoryDeclaration, ast.VariantDeclFunction)
	initFn.ID = "ctor"
	initFn.Linkage = ast.LinkageInit
	mod.AddChild(initFn)

	mod.SetScope(newTestScope(map[string][]*ast.Node{
		"pub":  {pub},
		"priv": {priv},
		"ctor": {initFn},
	}))
	ref := ast.New(ast.CategoryExpression, ast.VariantExprName)
	mod.AddChild(ref)

	r := New(operator.NewRegistry(), nil, nil)

	pubOps := r.candidatesFor(ref, &UnresolvedOperatorPayload{Kind: operator.Call, CalleeID: "pub"})
	require.Len(pubOps, 1)

	initOps := r.candidatesFor(ref, &UnresolvedOperatorPayload{Kind: operator.Call, CalleeID: "ctor"})
	require.Empty(initOps, "Init linkage is neither public nor private, so it is never callable as a function")
}

// testScope is a minimal ast.Scope used only to seed Lookup results directly,
// bypassing pkg/scope's builder for a focused candidatesFor test.
type testScope struct {
	decls map[string][]*ast.Node
}

func newTestScope(decls map[string][]*ast.Node) *testScope {
	return &testScope{decls: decls}
}

func (s *testScope) Declare(id string, d *ast.Node) { s.decls[id] = append(s.decls[id], d) }
func (s *testScope) Lookup(id string) []*ast.Node    { return s.decls[id] }
func (s *testScope) Clear()                          { s.decls = map[string][]*ast.Node{} }
