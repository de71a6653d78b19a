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

import (
	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/decl"
	"github.com/coral-lang/astcore/pkg/module"
)

// ModuleResolver looks up the AST node of an already-imported module by its
// UID, if it has been installed under the AST root. The builder uses it to
// mount an imported module's scope as a child of the importing scope (spec
// §4.4).
type ModuleResolver func(uid module.UID) *ast.Node

// Builder walks the tree post-order and attaches/populates scopes on every
// scope-introducing node (spec §4.4). It is idempotent and safe to call
// repeatedly from scratch (spec P5).
type Builder struct {
	Resolve ModuleResolver
}

// Build rebuilds every scope reachable from root.
func (b *Builder) Build(root *ast.Node) error {
	return ast.TransformPostOrder(root, func(n *ast.Node) error {
		if !introducesScope(n) {
			return nil
		}
		s := Of(n)
		if s == nil {
			s = New()
			n.SetScope(s)
		} else {
			s.Clear()
		}
		return b.populate(n, s)
	})
}

func introducesScope(n *ast.Node) bool {
	switch n.Variant {
	case ast.VariantASTRoot, ast.VariantModule, ast.VariantDeclFunction,
		ast.VariantStmtFor, ast.VariantStmtWhile, ast.VariantStmtIf, ast.VariantStmtSwitch,
		ast.VariantStmtTryCatch, ast.VariantExprListComprehension:
		return true
	case ast.VariantDeclType:
		if tp, ok := n.Payload.(*decl.TypePayload); ok && tp.Type != nil {
			switch tp.Type.Kind.String() {
			case "struct", "union", "exception":
				return true
			}
		}
		return false
	case ast.VariantStmtBlock:
		for _, c := range n.NonNilChildren() {
			if c.Variant == ast.VariantStmtDeclaration {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (b *Builder) populate(n *ast.Node, s *Scope) error {
	switch n.Variant {
	case ast.VariantASTRoot:
		for _, c := range n.ChildrenOfVariant(ast.VariantModule) {
			s.Declare(c.ID, c)
		}
	case ast.VariantModule:
		s.Declare(n.ID, n)
		for _, c := range n.NonNilChildren() {
			if c.Category == ast.CategoryDeclaration {
				s.Declare(c.ID, c)
			}
			if c.Variant == ast.VariantDeclType {
				// static members mirrored one level above; the module
				// scope is (re)filled after its type declarations are
				// built, so the mirroring is done here.
				for _, f := range c.ChildrenOfVariant(ast.VariantDeclField) {
					if f.Linkage == ast.LinkageStruct {
						s.Declare(f.ID, f)
					}
				}
			}
		}
	case ast.VariantDeclFunction:
		for _, c := range n.ChildrenOfVariant(ast.VariantDeclParameter) {
			s.Declare(c.ID, c)
		}
	case ast.VariantDeclType:
		// self: a value-typed alias back to the record itself.
		selfDecl := ast.New(ast.CategoryDeclaration, ast.VariantDeclLocalVariable)
		selfDecl.ID = "self"
		selfDecl.Linkage = ast.LinkageStruct
		s.Declare("self", selfDecl)

		modScope := enclosingModuleScope(n)
		for _, c := range n.NonNilChildren() {
			if c.Variant != ast.VariantDeclField {
				continue
			}
			s.Declare(c.ID, c)
			if c.Linkage == ast.LinkageStruct && modScope != nil {
				// static members mirrored one level above.
				modScope.Declare(c.ID, c)
			}
		}
	case ast.VariantStmtFor, ast.VariantStmtWhile, ast.VariantStmtIf, ast.VariantStmtSwitch, ast.VariantStmtTryCatch:
		for _, c := range n.ChildrenOfCategory(ast.CategoryDeclaration) {
			s.Declare(c.ID, c)
		}
	case ast.VariantExprListComprehension:
		if lp, ok := n.Payload.(*decl.ListComprehensionPayload); ok {
			for _, c := range n.ChildrenOfCategory(ast.CategoryDeclaration) {
				if c.ID == lp.IterVarID {
					s.Declare(c.ID, c)
				}
			}
		}
	case ast.VariantStmtBlock:
		for _, c := range n.ChildrenOfVariant(ast.VariantStmtDeclaration) {
			for _, inner := range c.ChildrenOfCategory(ast.CategoryDeclaration) {
				s.Declare(inner.ID, inner)
			}
		}
	}

	if n.Variant == ast.VariantModule {
		b.mountImports(n, s)
	}
	return nil
}

// mountImports mounts every resolved Decl.ImportedModule's target scope as
// a child of the module's own scope, keyed by the import's local name.
func (b *Builder) mountImports(moduleNode *ast.Node, s *Scope) {
	if b.Resolve == nil {
		return
	}
	for _, c := range moduleNode.NonNilChildren() {
		if c.Variant != ast.VariantDeclImportedModule {
			continue
		}
		ip, ok := c.Payload.(*decl.ImportedModulePayload)
		if !ok {
			continue
		}
		targetNode := b.Resolve(ip.Target)
		if targetNode == nil || !targetNode.HasScope() {
			continue
		}
		if targetScope, ok := targetNode.Scope().(*Scope); ok {
			s.Mount(c.ID, targetScope)
		}
	}
}

func enclosingModuleScope(n *ast.Node) *Scope {
	cur := n.Parent()
	for cur != nil {
		if cur.Variant == ast.VariantModule {
			return Of(cur)
		}
		cur = cur.Parent()
	}
	return nil
}
