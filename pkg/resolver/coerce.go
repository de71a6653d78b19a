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
	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/decl"
	"github.com/coral-lang/astcore/pkg/types"
)

// exprType reads an expression/ctor node's settled qualified type. The
// resolver stores it directly as the node's Payload once an expression is
// typed (ctors, coerced wrappers); Name/TypeName nodes instead resolve it
// through their resolution payload, handled by the switch below.
func exprType(n *ast.Node) (types.Qualified, bool) {
	if n == nil {
		return types.Qualified{}, false
	}
	if q, ok := n.Payload.(types.Qualified); ok {
		return q, true
	}
	switch p := n.Payload.(type) {
	case *NameResolutionPayload:
		return declType(p.Decl)
	case *TypeNameResolutionPayload:
		return types.Q(p.Type), true
	case decl.Typed:
		q := p.QualifiedType()
		return q, q.Type != nil
	}
	return types.Qualified{}, false
}

// declType reads the qualified type a declaration node carries, regardless
// of which variant-specific payload it holds.
func declType(d *ast.Node) (types.Qualified, bool) {
	if d == nil {
		return types.Qualified{}, false
	}
	switch p := d.Payload.(type) {
	case *decl.VariablePayload:
		return p.Type, true
	case *decl.ParameterPayload:
		return p.Type, true
	case *decl.FieldPayload:
		return p.Type, true
	case *decl.PropertyPayload:
		return p.Type, true
	case *decl.FunctionPayload:
		return p.Result, true
	}
	return types.Qualified{}, false
}

// paramOperands reads a function declaration's parameters as an operand
// list, for candidate matching (spec §4.5.3 step 1).
func paramOperands(fn *ast.Node) []types.Operand {
	var out []types.Operand
	for _, c := range fn.ChildrenOfVariant(ast.VariantDeclParameter) {
		pp, ok := c.Payload.(*decl.ParameterPayload)
		if !ok {
			continue
		}
		out = append(out, types.Operand{Name: c.ID, Type: pp.Type})
	}
	return out
}

func functionResult(fn *ast.Node) (types.Qualified, bool) {
	fp, ok := fn.Payload.(*decl.FunctionPayload)
	if !ok {
		return types.Qualified{}, false
	}
	return fp.Result, true
}

// coerceOperands implements spec §4.5.4: it pairs exprs against operands in
// order, substituting defaults/absent markers for a shorter exprs list, and
// accumulates the "did any argument's primary type change" flag with the
// FunctionCall/DisallowTypeChanges budget rules.
func coerceOperands(exprs []*ast.Node, operands []types.Operand, style types.Style) (bool, []*ast.Node, bool) {
	if len(exprs) > len(operands) {
		return false, nil, false
	}

	out := make([]*ast.Node, len(operands))
	changedCount := 0

	for i, operand := range operands {
		if i < len(exprs) {
			rewritten, didChange, ok := coerceExpression(exprs[i], operand.Type, style)
			if !ok {
				return false, nil, false
			}
			if didChange {
				changedCount++
			}
			out[i] = rewritten
			continue
		}
		// Trailing operand with no supplied expression.
		switch {
		case operand.Default != nil:
			out[i] = operand.Default
		case operand.Optional:
			absent := ast.New(ast.CategoryExpression, ast.VariantExprKeyword)
			absent.ID = "$$absent"
			absent.Payload = operand.Type
			out[i] = absent
		default:
			return false, nil, false
		}
	}

	if style.has(types.FunctionCall) && changedCount > 1 {
		return false, nil, false
	}
	if style.has(types.DisallowTypeChanges) && changedCount > 0 {
		return false, nil, false
	}

	return changedCount > 0, out, true
}

// coerceExpression implements spec §4.5.5.
func coerceExpression(e *ast.Node, dst types.Qualified, style types.Style) (*ast.Node, bool, bool) {
	if dst.Type != nil && dst.Type.Kind == types.KindAuto {
		return e, false, true
	}
	if dst.Type != nil && dst.Type.Kind == types.KindAny {
		return e, false, true
	}

	src, ok := exprType(e)
	if !ok {
		return nil, false, false
	}

	if src.Type != nil && dst.Type != nil {
		if (src.Type.CxxID != "" && dst.Type.CxxID != "") || (src.Type.TypeID != "" && dst.Type.TypeID != "") {
			if !src.Type.Equal(dst.Type) {
				return nil, false, false
			}
			return e, false, true
		}
	}

	if style.has(types.OperandMatching) && src.Const && !dst.Const && dst.Type != nil && dst.Type.Mutable() {
		return nil, false, false
	}
	if style.has(types.Assignment) && dst.Const {
		if !style.has(types.TryConstPromotion) || !src.Const {
			return nil, false, false
		}
	}

	if isConstructor(e) {
		if coerced, ok := coerceCtor(e, src, dst, style); ok {
			changed := !src.EqualQ(dst)
			return coerced, changed, true
		}
	}

	// int<N> -> uint<M> is accepted only for a non-negative integer
	// literal, which coerceCtor has already handled above.
	if src.Type != nil && dst.Type != nil && src.Type.Kind == types.KindInt && dst.Type.Kind == types.KindUInt {
		return nil, false, false
	}

	resolved, ok := types.CoerceType(src, dst, style)
	if !ok {
		return nil, false, false
	}
	if src.EqualQ(resolved) {
		return e, false, true
	}
	return wrapCoercion(e, resolved), true, true
}

// isConstructor reports whether e is one of the runtime-literal constructor
// variants spec §4.5.6 applies element-wise coercion rules to.
func isConstructor(e *ast.Node) bool {
	return e != nil && e.Category == ast.CategoryCtor
}

// wrapCoercion produces the Expr.Coerced node the spec describes as one of
// coerce_expression's possible outcomes: "a rewritten expression (e.g. ...
// a coercion expression)".
func wrapCoercion(e *ast.Node, dst types.Qualified) *ast.Node {
	n := ast.New(ast.CategoryExpression, ast.VariantExprCoerced)
	n.Meta = e.Meta
	n.Payload = dst
	n.AddChild(e)
	return n
}
