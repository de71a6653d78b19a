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
	"fmt"
	"strings"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/operator"
	"github.com/coral-lang/astcore/pkg/scope"
	"github.com/coral-lang/astcore/pkg/types"
)

// UnresolvedOperatorPayload is the Payload of a VariantExprUnresolvedOperator
// node: the operator kind and the candidate operand expressions as supplied
// by the parser/normalizer (spec §3 Operators, §4.5.2 rule 5).
type UnresolvedOperatorPayload struct {
	Kind     operator.Kind
	Operands []*ast.Node
	// CalleeID is the looked-up identifier for Kind == Call, when the callee
	// is itself a name expression (spec §4.5.3 step 1: "if the callee is not
	// a name, matching fails immediately and no error is recorded").
	CalleeID string
	// MethodName is the member name for Kind == MemberCall.
	MethodName string
}

// match is one candidate operator that matched under some style, carrying
// the coerced operand expressions it would be instantiated with.
type match struct {
	op       *operator.Operator
	operands []*ast.Node
	style    types.Style
	swapped  bool
}

// coercionCascade is the fixed-order cascade of spec §4.5.3 step 2.
var coercionCascade = []types.Style{
	types.TryExactMatch,
	types.TryExactMatch | types.TryCoercion,
	types.TryExactMatch | types.TryConstPromotion,
	types.TryExactMatch | types.TryConstPromotion | types.TryCoercion,
}

// resolveOperator implements spec §4.5.2 rule 5 and the matching algorithm
// of §4.5.3/§4.5.4.
func (r *Resolver) resolveOperator(n *ast.Node) (*ast.Node, bool, error) {
	up, ok := n.Payload.(*UnresolvedOperatorPayload)
	if !ok {
		return n, false, nil
	}

	candidates := r.candidatesFor(n, up)
	if len(candidates) == 0 {
		if up.Kind == operator.Call && up.CalleeID == "" {
			// "the callee is not a name, matching fails immediately and no
			// error is recorded" — a later pass may turn the callee into a
			// name.
			return n, false, nil
		}
		return n, false, nil
	}

	var matches []match
	for _, style := range coercionCascade {
		for _, cand := range candidates {
			if m, ok := tryMatch(cand, up.Operands, style|types.OperandMatching); ok {
				matches = append(matches, m)
			} else if operator.Commutative[up.Kind] && len(up.Operands) == 2 {
				swapped := []*ast.Node{up.Operands[1], up.Operands[0]}
				if m, ok := tryMatch(cand, swapped, style|types.OperandMatching); ok {
					m.swapped = true
					matches = append(matches, m)
				}
			}
		}
		if len(matches) > 0 {
			// Don't fall through to looser styles once something matched at
			// this tier (spec §4.5.3 step 2: the cascade is tried in order
			// and the first tier to produce matches governs tie-breaking).
			break
		}
	}

	if len(matches) == 0 {
		return n, false, nil
	}

	winners := breakTies(matches)
	switch len(winners) {
	case 1:
		b := r.builder()
		resolved, err := winners[0].op.Instantiate(b, winners[0].operands, n.Meta)
		if err != nil {
			n.AddError(fmt.Sprintf("operator %s: %v", up.Kind, err), ast.Normal)
			return n, false, nil
		}
		resolved.Payload = &operator.ResolvedOperatorPayload{Operator: winners[0].op, Operands: winners[0].operands}
		r.recordAutoParamInference(winners[0].op, winners[0].operands)
		return resolved, true, nil
	default:
		var protos []string
		for _, w := range winners {
			protos = append(protos, w.op.Prototype())
		}
		n.AddError(fmt.Sprintf("ambiguous overload for %s: %s", up.Kind, strings.Join(protos, "; ")), ast.High)
		return n, false, nil
	}
}

// candidatesFor implements spec §4.5.3 step 1.
func (r *Resolver) candidatesFor(n *ast.Node, up *UnresolvedOperatorPayload) []*operator.Operator {
	switch up.Kind {
	case operator.Call:
		if up.CalleeID == "" {
			return nil
		}
		found := scope.Lookup(n, up.CalleeID)
		var out []*operator.Operator
		for _, candidate := range found {
			if candidate.Linkage != ast.LinkagePublic && candidate.Linkage != ast.LinkagePrivate {
				continue
			}
			if candidate.Category != ast.CategoryDeclaration || candidate.Variant != ast.VariantDeclFunction {
				continue
			}
			out = append(out, functionAsOperator(candidate))
		}
		return out
	case operator.MemberCall:
		if up.MethodName == "" {
			return nil
		}
		return r.Registry.ByMethod(up.MethodName)
	default:
		return r.Registry.ByKind(up.Kind)
	}
}

// tryMatch attempts to coerce ops against cand's operand list under style; on
// success it returns the match with rewritten operand expressions.
func tryMatch(cand *operator.Operator, ops []*ast.Node, style types.Style) (match, bool) {
	changed, newOps, ok := coerceOperands(ops, cand.Operands(), style)
	_ = changed
	if !ok {
		return match{}, false
	}
	return match{op: cand, operands: newOps, style: style}, true
}

// breakTies implements spec §4.5.3 step 4.
func breakTies(matches []match) []match {
	// Normal-priority supersedes Low-priority among the same kind.
	hasNormal := false
	for _, m := range matches {
		if m.op.Priority() == operator.PriorityNormal {
			hasNormal = true
			break
		}
	}
	if hasNormal {
		filtered := matches[:0:0]
		for _, m := range matches {
			if m.op.Priority() == operator.PriorityNormal {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	if len(matches) <= 1 {
		return matches
	}

	// Swap-matches rank below non-swap matches of the same style.
	hasNonSwap := false
	for _, m := range matches {
		if !m.swapped {
			hasNonSwap = true
			break
		}
	}
	if hasNonSwap {
		filtered := matches[:0:0]
		for _, m := range matches {
			if !m.swapped {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	// De-duplicate identical operators matched at more than one cascade
	// tier (shouldn't normally happen since the cascade breaks on first
	// success, but defends against a candidate appearing twice).
	seen := map[*operator.Operator]bool{}
	out := matches[:0:0]
	for _, m := range matches {
		if seen[m.op] {
			continue
		}
		seen[m.op] = true
		out = append(out, m)
	}
	return out
}

// functionAsOperator wraps a Decl.Function node as a synthetic Call operator
// candidate, so the unified matching cascade in resolveOperator can be used
// uniformly for both registered operators and user function declarations
// (spec §4.5.3 step 1). candidatesFor offers it every function declaration
// with public or private linkage visible through the scope chain.
func functionAsOperator(fn *ast.Node) *operator.Operator {
	ops := paramOperands(fn)
	sig := operator.Signature{Operands: ops, Priority: operator.PriorityNormal}
	if fp, ok := functionResult(fn); ok {
		sig.Result = fp
	}
	op := operator.NewStatic(operator.Call, sig, func(b operator.Builder, operands []*ast.Node, meta ast.Meta) (*ast.Node, error) {
		n := ast.New(ast.CategoryExpression, ast.VariantExprResolvedOperator)
		n.Meta = meta
		callee := ast.New(ast.CategoryExpression, ast.VariantExprName)
		callee.ID = fn.ID
		callee.Payload = &NameResolutionPayload{Decl: fn}
		n.AddChild(callee)
		for _, o := range operands {
			n.AddChild(o)
		}
		return n, nil
	})
	op.Namespace = "call"
	op.ClassName = "FunctionCallOperator"
	op.OriginDecl = fn
	return op
}
