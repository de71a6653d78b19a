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

// resolveEnumLabels implements spec §4.5.2's "Enum type labels" rule and
// §4.4's "each enum label becomes a constant declaration in the enclosing
// module scope after resolving has assigned a type ID to the enum type":
// once the enum's Decl.Type has a TypeID, this materializes one Decl.
// Constant per label, appended as a child of the enclosing module so the
// next scope rebuild (spec P5) picks them up the ordinary way.
func (r *Resolver) resolveEnumLabels(n *ast.Node) (*ast.Node, bool, error) {
	tp, ok := n.Payload.(*decl.TypePayload)
	if !ok || tp.Type == nil || tp.Type.Kind != types.KindEnum {
		return n, false, nil
	}
	if tp.Type.TypeID == "" || tp.LabelsMaterialized {
		return n, false, nil
	}
	mod := enclosingModule(n)
	if mod == nil {
		return n, false, nil
	}

	for _, label := range tp.Type.EnumLabels {
		c := ast.New(ast.CategoryDeclaration, ast.VariantDeclConstant)
		c.ID = label.Name
		c.Linkage = ast.LinkagePublic

		ctor := ast.New(ast.CategoryCtor, ast.VariantCtorEnum)
		ctor.Meta = n.Meta
		ctor.Payload = &decl.EnumCtorPayload{Label: label.Name, Type: types.Q(tp.Type)}

		c.Payload = &decl.VariablePayload{Type: types.Q(tp.Type), Value: ctor}
		c.AddChild(ctor)
		mod.AddChild(c)
	}

	tp.Type.EnumOwner = n
	tp.LabelsMaterialized = true
	r.log("materialized %d label(s) for enum %s", len(tp.Type.EnumLabels), tp.Type.TypeID)
	return n, true, nil
}
