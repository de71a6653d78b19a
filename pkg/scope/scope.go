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

// Package scope implements the scope builder of spec §4.4: a mapping from
// unqualified identifier to a set of declaration handles, attached to
// scope-introducing nodes, with hierarchical parent-chain lookup.
package scope

import (
	"strings"

	"github.com/coral-lang/astcore/pkg/ast"
)

// Scope implements ast.Scope. Lookup is local-only; climbing the parent
// chain is done by the package-level Lookup (lookup.go) via
// ast.AncestorScopes.
type Scope struct {
	decls map[string][]*ast.Node
	// mounted holds child scopes installed under a qualifying prefix, used
	// by imported-module mounting ("N::foo" reaches into N's scope).
	mounted map[string]*Scope
}

// New creates an empty scope.
func New() *Scope {
	return &Scope{decls: map[string][]*ast.Node{}}
}

// Declare binds id to decl, appending if id is already bound (overload
// sets, or an ambiguous redeclaration the validator will catch).
func (s *Scope) Declare(id string, decl *ast.Node) {
	s.decls[id] = append(s.decls[id], decl)
}

// Lookup returns every declaration bound to id in this scope only. A
// qualified id ("N::foo") is resolved by descending into the mounted scope
// for prefix "N".
func (s *Scope) Lookup(id string) []*ast.Node {
	if i := strings.Index(id, "::"); i >= 0 {
		prefix, rest := id[:i], id[i+2:]
		if child, ok := s.mounted[prefix]; ok {
			return child.Lookup(rest)
		}
		return nil
	}
	return s.decls[id]
}

// Clear empties the scope; the scope builder uses this to make rebuilds
// idempotent (spec §4.4 "the builder first clears any existing scope when a
// rebuild is requested").
func (s *Scope) Clear() {
	s.decls = map[string][]*ast.Node{}
	s.mounted = nil
}

// Mount installs child as the scope reached through prefix (spec §4.4
// "Imported module: the imported module's top-level scope is mounted as a
// child of the importing scope").
func (s *Scope) Mount(prefix string, child *Scope) {
	if s.mounted == nil {
		s.mounted = map[string]*Scope{}
	}
	s.mounted[prefix] = child
}

// All returns every identifier currently bound directly in this scope (not
// through a mount), for debug dumping.
func (s *Scope) All() map[string][]*ast.Node {
	return s.decls
}

// Of returns n's attached scope as a *Scope, or nil if none/wrong type.
func Of(n *ast.Node) *Scope {
	if n == nil || !n.HasScope() {
		return nil
	}
	s, _ := n.Scope().(*Scope)
	return s
}
