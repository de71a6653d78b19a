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

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/decl"
	"github.com/coral-lang/astcore/pkg/operator"
	"github.com/coral-lang/astcore/pkg/types"
)

func (r *Resolver) autoParamStateInit() {
	if r.autoParamConflicts == nil {
		r.autoParamConflicts = map[string]types.Qualified{}
	}
}

// recordAutoParamInference implements the recording half of spec §4.5.7:
// "the resolver records each auto parameter's inferred type keyed by the
// parameter's canonical ID in a side table", at every call site a function
// candidate matched. Inconsistent inferences across call sites are flagged
// here and reported by the erasure sweep.
func (r *Resolver) recordAutoParamInference(op *operator.Operator, operands []*ast.Node) {
	fn := op.OriginDecl
	if fn == nil {
		return
	}
	r.autoParamStateInit()

	params := fn.ChildrenOfVariant(ast.VariantDeclParameter)
	for i, p := range params {
		if i >= len(operands) {
			break
		}
		pp, ok := p.Payload.(*decl.ParameterPayload)
		if !ok || !pp.Type.IsAuto {
			continue
		}
		inferred, ok := exprType(operands[i])
		if !ok || inferred.Type == nil || !inferred.Type.Resolved() {
			continue
		}
		key := canonicalID(p)
		if existing, already := r.AutoParams[key]; already {
			if !existing.Type.Equal(inferred.Type) {
				r.autoParamConflicts[key] = inferred
			}
			continue
		}
		r.AutoParams[key] = inferred
	}
}

// applyAutoParamSweep implements the erasure half of spec §4.5.7: "a second
// sweep then replaces each auto parameter type with the recorded type.
// Inconsistent inferences across call sites attach an error to the
// parameter."
func (r *Resolver) applyAutoParamSweep(root *ast.Node) bool {
	if len(r.AutoParams) == 0 {
		return false
	}
	changed := false
	for _, n := range ast.PreOrderAll(root) {
		if n.Category != ast.CategoryDeclaration || n.Variant != ast.VariantDeclParameter {
			continue
		}
		pp, ok := n.Payload.(*decl.ParameterPayload)
		if !ok || !pp.Type.IsAuto {
			continue
		}
		key := canonicalID(n)
		if conflicting, isConflict := r.autoParamConflicts[key]; isConflict {
			n.AddError(fmt.Sprintf("parameter %q inferred as both %s and %s across call sites",
				n.ID, r.AutoParams[key], conflicting), ast.Normal)
			continue
		}
		inferred, ok := r.AutoParams[key]
		if !ok {
			continue
		}
		pp.Type = types.Qualified{Type: inferred.Type, Const: inferred.Const}
		changed = true
	}
	return changed
}
