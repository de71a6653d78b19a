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

package operator

import (
	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/types"
)

// typed is implemented by every runtime-literal ctor payload (pkg/decl)
// that carries a settled qualified type. It is declared locally, rather
// than imported from pkg/decl, so the operator registry never needs to
// depend on the declaration-payload package (design note §9's two-level
// tag keeps Category/Variant payload packages layered above ast/types,
// independently of each other; pkg/operator sits beside pkg/decl, not
// above it).
type typed interface {
	QualifiedType() types.Qualified
}

// typeOf is how operand/result expressions carry their resolved qualified
// type: either directly as the node's Payload, or through a ctor payload
// implementing typed. Packages downstream (resolver) set one of these on
// every ctor/expression node as they settle its type.
func typeOf(n *ast.Node) types.Qualified {
	if n == nil {
		return types.Qualified{}
	}
	if q, ok := n.Payload.(types.Qualified); ok {
		return q
	}
	if t, ok := n.Payload.(typed); ok {
		return t.QualifiedType()
	}
	return types.Qualified{}
}

func widerInt(a, b *types.Type) *types.Type {
	if a.Width >= b.Width {
		return a
	}
	return b
}

func arithmeticResult(operands []*ast.Node) (types.Qualified, error) {
	a, b := typeOf(operands[0]), typeOf(operands[1])
	if a.Type.Kind == types.KindReal || b.Type.Kind == types.KindReal {
		return types.Q(types.New(types.KindReal)), nil
	}
	if a.Type.Kind == types.KindUInt && b.Type.Kind == types.KindUInt {
		return types.Q(types.NewUInt(maxInt(a.Type.Width, b.Type.Width))), nil
	}
	return types.Q(types.NewInt(maxInt(a.Type.Width, b.Type.Width))), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func makeResolvedFactory(k Kind) Factory {
	return func(b Builder, operands []*ast.Node, meta ast.Meta) (*ast.Node, error) {
		n := ast.New(ast.CategoryExpression, ast.VariantExprResolvedOperator)
		n.Meta = meta
		for _, o := range operands {
			n.AddChild(o)
		}
		return n, nil
	}
}

func binaryNumeric(k Kind, priority Priority) *Operator {
	wcInt := types.Q(types.NewWildcard(types.KindInt))
	op := NewStatic(k, Signature{
		Operands: []types.Operand{
			{Name: "lhs", Type: wcInt},
			{Name: "rhs", Type: wcInt},
		},
		Priority: priority,
	}, makeResolvedFactory(k))
	op.WithResultFunc(arithmeticResult)
	op.Namespace = "arithmetic"
	op.ClassName = "BinaryNumericOperator"
	return op
}

func comparison(k Kind) *Operator {
	wc := types.Q(types.NewWildcard(types.KindInt))
	op := NewStatic(k, Signature{
		Operands: []types.Operand{
			{Name: "lhs", Type: wc},
			{Name: "rhs", Type: wc},
		},
		Priority: PriorityNormal,
	}, makeResolvedFactory(k))
	op.WithResultFunc(func(operands []*ast.Node) (types.Qualified, error) {
		return types.Q(types.New(types.KindBool)), nil
	})
	op.Namespace = "comparison"
	op.ClassName = "ComparisonOperator"
	return op
}

func logical(k Kind) *Operator {
	b := types.Q(types.New(types.KindBool))
	op := NewStatic(k, Signature{
		Operands: []types.Operand{{Name: "lhs", Type: b}, {Name: "rhs", Type: b}},
		Result:   b,
		Priority: PriorityNormal,
	}, makeResolvedFactory(k))
	op.Namespace = "logical"
	op.ClassName = "LogicalOperator"
	return op
}

// RegisterBuiltins installs the core arithmetic/comparison/logical
// operators into r. The package init() below calls it on Default; a
// compilation context using its own registry (spec §9 design note:
// "per-context registry") can call it on that registry.
func RegisterBuiltins(r *Registry) {
	r.Register(binaryNumeric(Sum, PriorityNormal))
	r.Register(binaryNumeric(Difference, PriorityNormal))
	r.Register(binaryNumeric(Multiple, PriorityNormal))
	r.Register(binaryNumeric(Division, PriorityNormal))
	r.Register(binaryNumeric(Modulo, PriorityNormal))

	r.Register(comparison(Equal))
	r.Register(comparison(Unequal))
	r.Register(comparison(Less))
	r.Register(comparison(LessEqual))
	r.Register(comparison(Greater))
	r.Register(comparison(GreaterEqual))

	r.Register(logical(LogicalAnd))
	r.Register(logical(LogicalOr))
}

func init() {
	RegisterBuiltins(Default)
}
