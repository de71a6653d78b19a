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

package scope

import "github.com/coral-lang/astcore/pkg/ast"

// Lookup resolves id starting at n's own position: n's own scope (if any)
// is consulted first, then every scope on the ancestor chain honoring
// inherit_scope (spec §3 Scopes). The first scope with any binding for id
// wins — declarations do not merge across nesting levels, matching lexical
// shadowing.
func Lookup(n *ast.Node, id string) []*ast.Node {
	if n.HasScope() {
		if found := n.Scope().Lookup(id); len(found) > 0 {
			return found
		}
	}
	for _, s := range ast.AncestorScopes(n) {
		if found := s.Lookup(id); len(found) > 0 {
			return found
		}
	}
	return nil
}
