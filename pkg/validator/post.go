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

package validator

import (
	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/errs"
	"github.com/coral-lang/astcore/pkg/resolver"
)

// checkCompleteness implements spec §4.6's post-validation rule: "every
// unresolved-operator, name, or type-name node that remains triggers an
// error." A name/type-name node "remains" unresolved when its Payload was
// never populated with the resolution the resolver's rewrite rules attach
// on success — e.g. an overload set resolveName deliberately deferred
// without attaching an error of its own.
func checkCompleteness(root *ast.Node) {
	ast.Walk(root, ast.WalkOptions{Order: ast.PreOrder}, func(n *ast.Node) bool {
		if n.Category != ast.CategoryExpression {
			return true
		}
		switch n.Variant {
		case ast.VariantExprUnresolvedOperator:
			n.AddError(errs.ErrUnresolvedRemains.New(n.Variant, n.Meta.Location).Error(), ast.High)
		case ast.VariantExprName:
			if _, ok := n.Payload.(*resolver.NameResolutionPayload); !ok {
				n.AddError(errs.ErrUnresolvedRemains.New(n.Variant, n.Meta.Location).Error(), ast.High)
			}
		case ast.VariantExprTypeName:
			if _, ok := n.Payload.(*resolver.TypeNameResolutionPayload); !ok {
				n.AddError(errs.ErrUnresolvedRemains.New(n.Variant, n.Meta.Location).Error(), ast.High)
			}
		}
		return true
	})
}
