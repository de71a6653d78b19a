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

// Package resolver implements the fixed-point engine of spec §4.5: name and
// operator resolution, bidirectional type inference for auto parameters and
// return types, and import following.
package resolver

import (
	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/debug"
	"github.com/coral-lang/astcore/pkg/module"
	"github.com/coral-lang/astcore/pkg/operator"
	"github.com/coral-lang/astcore/pkg/types"
)

// Importer resolves a Decl.ImportedModule node against the module table
// (spec §6 import_module), returning the target UID or an error recorded on
// the declaration.
type Importer interface {
	Import(id, scopePrefix, parseExtension, processExtension string, searchDirs []string) (module.UID, error)
}

// Resolver is a single fixed-point pass (spec §4.5). It is stateless across
// calls to Pass except for the auto_params side table, which the spec
// describes as "owned by the resolver pass and discarded after application"
// (spec §5) — here that means it is reset once at the start of each
// compiler.Context.Process call by the caller (pkg/compiler), not by Pass
// itself, so that inference accumulated across every Pass of that call is
// visible to the erasure sweep.
type Resolver struct {
	Registry *operator.Registry
	Importer Importer
	Streams  *debug.Streams

	// AutoParams maps a parameter's canonical ID to its inferred type,
	// accumulated across every call site visited in this pass (spec
	// §4.5.7).
	AutoParams map[string]types.Qualified
	// autoParamConflicts records, for a parameter inferred with two
	// incompatible types, the later (conflicting) inference — AutoParams
	// keeps the first. The erasure sweep reports both.
	autoParamConflicts map[string]types.Qualified
}

// New creates a Resolver ready for a fresh Process loop.
func New(reg *operator.Registry, importer Importer, streams *debug.Streams) *Resolver {
	return &Resolver{
		Registry:   reg,
		Importer:   importer,
		Streams:    streams,
		AutoParams: map[string]types.Qualified{},
	}
}

// builder adapts the resolver's type lookups to operator.Builder.
func (r *Resolver) builder() operator.Builder {
	return operator.Builder{Named: func(string) *types.Type { return nil }}
}

// Pass runs one post-order rewrite over root, applying every rule in spec
// §4.5.2, and reports ast.NewTree if anything changed (spec §4.5.8: the
// outer driver loop terminates when a full pass changes nothing).
func (r *Resolver) Pass(root *ast.Node) (ast.TreeIdentity, error) {
	changed := ast.SameTree

	_, treeChanged, err := ast.TransformUp(root, func(n *ast.Node) (*ast.Node, ast.TreeIdentity, error) {
		rewritten, didChange, err := r.visit(n)
		if err != nil {
			return nil, ast.SameTree, err
		}
		if didChange {
			changed = ast.NewTree
			return rewritten, ast.NewTree, nil
		}
		return n, ast.SameTree, nil
	})
	if err != nil {
		return ast.SameTree, err
	}
	if treeChanged == ast.NewTree {
		changed = ast.NewTree
	}

	if r.applyAutoParamSweep(root) {
		changed = ast.NewTree
	}

	return changed, nil
}

// visit dispatches a single node to its rewrite rule (spec §4.5.2).
func (r *Resolver) visit(n *ast.Node) (*ast.Node, bool, error) {
	switch {
	case n.Category == ast.CategoryExpression && n.Variant == ast.VariantExprName:
		return r.resolveName(n)
	case n.Category == ast.CategoryExpression && n.Variant == ast.VariantExprTypeName:
		return r.resolveTypeName(n)
	case n.Category == ast.CategoryDeclaration && n.Variant == ast.VariantDeclImportedModule:
		return r.resolveImport(n)
	case n.Category == ast.CategoryExpression && n.Variant == ast.VariantExprUnresolvedOperator:
		return r.resolveOperator(n)
	case n.Category == ast.CategoryCtor && n.Variant == ast.VariantCtorTuple:
		return r.resolveTupleCtor(n)
	case n.Category == ast.CategoryDeclaration && n.Variant == ast.VariantDeclType:
		return r.resolveEnumLabels(n)
	case n.Category == ast.CategoryDeclaration && n.Variant == ast.VariantDeclFunction:
		return r.resolveAutoReturn(n)
	default:
		return n, false, nil
	}
}
