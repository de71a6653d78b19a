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
	"strings"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/errs"
)

// checkStructural implements spec §4.6's pre-validation rules: "that
// switch/while/for/if init children are of the expected declaration kind;
// that catch first child is a parameter; that struct-linkage function
// declarations have a namespaced id."
func checkStructural(root *ast.Node) {
	ast.Walk(root, ast.WalkOptions{Order: ast.PreOrder}, func(n *ast.Node) bool {
		switch n.Variant {
		case ast.VariantStmtIf, ast.VariantStmtFor, ast.VariantStmtWhile, ast.VariantStmtSwitch:
			checkInitChildKind(n)
		case ast.VariantStmtTryCatch:
			checkCatchParameter(n)
		case ast.VariantDeclFunction:
			checkNamespacedMethod(n)
		}
		return true
	})
}

// checkInitChildKind enforces that any declaration-category child of an
// if/for/while/switch statement is the induced local the scope builder
// expects (pkg/scope.Builder.populate pulls these same children by
// CategoryDeclaration, so the two must agree on the expected variant).
func checkInitChildKind(n *ast.Node) {
	for i, c := range n.Children() {
		if c == nil || c.Category != ast.CategoryDeclaration {
			continue
		}
		if c.Variant != ast.VariantDeclLocalVariable {
			n.AddError(errs.ErrWrongChildKind.New("Decl.LocalVariable", i, n.Variant, c.Variant).Error(), ast.High)
		}
	}
}

// checkCatchParameter enforces that a try/catch's bound exception, when
// present as a declaration-category child, is a parameter — the catch
// clause binds the caught value the same way a function binds an argument.
func checkCatchParameter(n *ast.Node) {
	children := n.NonNilChildren()
	if len(children) == 0 {
		return
	}
	first := children[0]
	if first.Category == ast.CategoryDeclaration && first.Variant != ast.VariantDeclParameter {
		n.AddError(errs.ErrWrongChildKind.New("Decl.Parameter", 0, n.Variant, first.Variant).Error(), ast.High)
	}
}

// checkNamespacedMethod enforces that a struct-linkage function (a method
// declared outside its record's body) carries a namespaced id ("Type::method").
func checkNamespacedMethod(n *ast.Node) {
	if n.Linkage != ast.LinkageStruct {
		return
	}
	if !strings.Contains(n.ID, "::") {
		n.AddError(errs.ErrMethodWithoutNamespace.New(n.ID).Error(), ast.High)
	}
}
