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
)

// enclosingModule walks up from n (exclusive) to the nearest Module node.
func enclosingModule(n *ast.Node) *ast.Node {
	cur := n.Parent()
	for cur != nil {
		if cur.Variant == ast.VariantModule {
			return cur
		}
		cur = cur.Parent()
	}
	return nil
}

// canonicalID computes a declaration's stable canonical ID (spec §3
// Declarations: "globally unique and stable across runs, used to key side
// tables"). It is derived from the qualified module path, never from a
// process-local identity, so repeated compiler runs key the auto_params
// side table identically.
func canonicalID(d *ast.Node) string {
	if d.CanonicalID != "" {
		return d.CanonicalID
	}
	mod := enclosingModule(d)
	modID := "<root>"
	if mod != nil {
		modID = mod.ID
	}
	owner := d.Parent()
	ownerID := ""
	if owner != nil && owner.Category == ast.CategoryDeclaration {
		ownerID = owner.ID + "."
	}
	id := fmt.Sprintf("%s::%s%s", modID, ownerID, d.ID)
	d.CanonicalID = id
	return id
}
