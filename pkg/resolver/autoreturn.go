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
)

// resolveAutoReturn implements spec §4.5.2's "Function with auto result"
// rule and §4.5.7's auto-return-type resolution: "scan the body for the
// first return e; whose e has a resolved type; adopt that as the result
// type."
func (r *Resolver) resolveAutoReturn(n *ast.Node) (*ast.Node, bool, error) {
	fp, ok := n.Payload.(*decl.FunctionPayload)
	if !ok || !fp.ResultIsAuto || fp.Body == nil {
		return n, false, nil
	}

	ret := firstTypedReturn(fp.Body)
	if ret == nil {
		return n, false, nil
	}
	q, ok := exprType(ret)
	if !ok || q.Type == nil || !q.Type.Resolved() {
		return n, false, nil
	}

	fp.Result = q
	fp.ResultIsAuto = false
	r.log("function %q auto result inferred as %s", n.ID, q)
	return n, true, nil
}

// firstTypedReturn walks body pre-order (source order) for the first
// Stmt.Return whose expression child has a resolved type, skipping returns
// whose expression is not typed yet.
func firstTypedReturn(body *ast.Node) *ast.Node {
	var found *ast.Node
	ast.Walk(body, ast.WalkOptions{Order: ast.PreOrder}, func(n *ast.Node) bool {
		if found != nil {
			return false
		}
		if n.Category == ast.CategoryStatement && n.Variant == ast.VariantStmtReturn {
			children := n.NonNilChildren()
			if len(children) > 0 {
				if q, ok := exprType(children[0]); ok && q.Type != nil && q.Type.Resolved() {
					found = children[0]
					return false
				}
			}
		}
		return true
	})
	return found
}
