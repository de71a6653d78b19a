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
	"github.com/coral-lang/astcore/pkg/module"
	"github.com/coral-lang/astcore/pkg/scope"
	"github.com/coral-lang/astcore/pkg/types"
)

// zeroUID is the sentinel unresolved-import target: a Decl.ImportedModule
// whose payload's Target still equals this value has not yet been followed.
var zeroUID = module.UID{}

// NameResolutionPayload is the Payload a Expr.Name node carries once
// resolved: a non-owning pointer to the declaration it names (spec §4.5.2
// "Name expression: look up the identifier... on success, record the
// resolved declaration").
type NameResolutionPayload struct {
	Decl *ast.Node
}

// TypeNameResolutionPayload mirrors NameResolutionPayload for Expr.TypeName,
// additionally caching the resolved unqualified type for fast re-reads.
type TypeNameResolutionPayload struct {
	Decl *ast.Node
	Type *types.Type
}

// resolveName implements spec §4.5.2's Name expression rule. It is
// idempotent: a node whose Payload is already populated with the same
// declaration is left untouched and reports no change.
func (r *Resolver) resolveName(n *ast.Node) (*ast.Node, bool, error) {
	if _, already := n.Payload.(*NameResolutionPayload); already {
		return n, false, nil
	}

	if n.ID == "$$" {
		n.AddError(`"$$" is not available in this context`, ast.High)
		return n, false, nil
	}

	found := scope.Lookup(n, n.ID)
	switch len(found) {
	case 0:
		n.AddError(fmt.Sprintf("unknown identifier %q", n.ID), ast.Normal)
		return n, false, nil
	case 1:
		n.Payload = &NameResolutionPayload{Decl: found[0]}
		r.log("name %q -> %s", n.ID, found[0])
		return n, true, nil
	default:
		// Multiple candidates (an overload set): left for operator/call
		// resolution to disambiguate by arity/type; Name itself just
		// records the set's first declaration's canonical shape isn't
		// enough, so we defer by reporting no match yet.
		return n, false, nil
	}
}

func (r *Resolver) resolveTypeName(n *ast.Node) (*ast.Node, bool, error) {
	if _, already := n.Payload.(*TypeNameResolutionPayload); already {
		return n, false, nil
	}

	found := scope.Lookup(n, n.ID)
	if len(found) != 1 {
		n.AddError(fmt.Sprintf("unknown type name %q", n.ID), ast.Normal)
		return n, false, nil
	}
	target := found[0]
	tp, ok := target.Payload.(*decl.TypePayload)
	if !ok || tp.Type == nil {
		// The target Decl.Type hasn't had its own type payload resolved
		// yet; try again on a later pass.
		return n, false, nil
	}
	n.Payload = &TypeNameResolutionPayload{Decl: target, Type: tp.Type}
	return n, true, nil
}

func (r *Resolver) resolveImport(n *ast.Node) (*ast.Node, bool, error) {
	ip, ok := n.Payload.(*decl.ImportedModulePayload)
	if !ok || !ip.Target.Equal(zeroUID) {
		return n, false, nil
	}
	if r.Importer == nil {
		return n, false, nil
	}
	parseExt, processExt := importExtensions(n)
	uid, err := r.Importer.Import(n.ID, ip.ScopePrefix, parseExt, processExt, ip.Search)
	if err != nil {
		n.AddError(fmt.Sprintf("import %q failed: %v", n.ID, err), ast.Normal)
		return n, false, nil
	}
	ip.Target = uid
	if mod := enclosingModule(n); mod != nil {
		if mp, ok := mod.Payload.(*decl.ModulePayload); ok {
			mp.Imports = append(mp.Imports, uid)
		}
	}
	return n, true, nil
}

// importExtensions resolves the parse/process extensions an import should
// search with from the importing module's own UID: a module imports others
// written in the same source language it was itself parsed as (spec §6
// "import_module(id, scope?, parse_extension, process_extension, ...)").
func importExtensions(n *ast.Node) (string, string) {
	mod := enclosingModule(n)
	if mod == nil {
		return "", ""
	}
	mp, ok := mod.Payload.(*decl.ModulePayload)
	if !ok {
		return "", ""
	}
	return mp.UID.ParseExtension, mp.UID.ProcessExtension
}

func (r *Resolver) log(format string, args ...interface{}) {
	if r.Streams == nil {
		return
	}
	r.Streams.Record("resolver", format, args...)
}
