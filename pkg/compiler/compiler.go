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

// Package compiler wires the node graph, scope builder, resolver and
// validator into the process_ast fixed-point loop of spec §2: validate-pre
// -> resolve -> validate-post -> optimize -> validate-post, repeating until
// a full resolver pass changes nothing, capped at 50 iterations. It plays
// the role the teacher's Engine (engine.go) plays for a query: the one type
// that owns every collaborator and exposes a single entry point to drive
// them.
package compiler

import (
	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/debug"
	"github.com/coral-lang/astcore/pkg/decl"
	"github.com/coral-lang/astcore/pkg/errs"
	"github.com/coral-lang/astcore/pkg/module"
	"github.com/coral-lang/astcore/pkg/operator"
	"github.com/coral-lang/astcore/pkg/resolver"
	"github.com/coral-lang/astcore/pkg/scope"
	"github.com/coral-lang/astcore/pkg/types"
	"github.com/coral-lang/astcore/pkg/validator"
)

// maxIterations is the hard safety cap of spec §4.5.8/§4.5.2: exceeding it
// without reaching a fixed point is an internal compiler error, never a
// user-visible one.
const maxIterations = 50

// Context is a single compilation: one operator registry, one module table,
// one parse-plugin registry, one scope builder and resolver bound together.
// A port serving multiple independent compilations creates one Context per
// compilation (spec §5 "if a port runs multiple compilations, init may be
// called again but registration must not").
type Context struct {
	Registry *operator.Registry
	Plugins  *module.Registry
	Table    *module.Table
	Builder  *scope.Builder
	Resolver *resolver.Resolver
	Streams  *debug.Streams
}

// New builds a Context ready to Process an AST root. The operator registry
// is expected to already be populated (Register calls) and have had Init
// run by the caller (spec §4.3 "a later init(ctx) pass fills in each
// operator's signature").
func New(reg *operator.Registry, plugins *module.Registry, streams *debug.Streams) *Context {
	table := module.NewTable()
	c := &Context{
		Registry: reg,
		Plugins:  plugins,
		Table:    table,
		Streams:  streams,
	}
	c.Builder = &scope.Builder{Resolve: func(uid module.UID) *ast.Node {
		if m, ok := table.Get(uid); ok {
			return m.Node
		}
		return nil
	}}
	c.Resolver = resolver.New(reg, &importer{plugins: plugins, table: table, ctx: c}, streams)
	return c
}

// Process runs process_ast (spec §2) over root, whose children are the
// installed modules. forceScopeRebuild requests a rebuild beyond the
// mandatory first-iteration one ("Scope rebuilding is forced on the first
// iteration and when explicitly requested"). It returns whether the
// validator reported any error (spec §4.6 "If any error is reported, the
// top-level process_ast call returns failure") and any internal-error
// wrapping a fixed-point non-convergence (spec §4.5.8, §7 "Internal
// errors").
func (c *Context) Process(root *ast.Node, forceScopeRebuild bool) (failed bool, err error) {
	defer errs.Recover(&err)

	c.Resolver.AutoParams = map[string]types.Qualified{}

	var lastPre, lastPost []validator.Report
	for iter := 0; ; iter++ {
		if iter >= maxIterations {
			errs.Fatal(errs.ErrFixedPointDidNotConverge, maxIterations)
		}

		if iter == 0 || forceScopeRebuild {
			if buildErr := c.Builder.Build(root); buildErr != nil {
				return false, buildErr
			}
			if hookErr := c.forEachPluginModule(root, func(p module.ParsePlugin, m *ast.Node) error {
				return p.BuildScopes(m)
			}); hookErr != nil {
				return false, hookErr
			}
		}

		if hookErr := c.forEachPluginModule(root, func(p module.ParsePlugin, m *ast.Node) error {
			return p.Normalize(m)
		}); hookErr != nil {
			return false, hookErr
		}
		if hookErr := c.forEachPluginModule(root, func(p module.ParsePlugin, m *ast.Node) error {
			return p.Coerce(m)
		}); hookErr != nil {
			return false, hookErr
		}

		lastPre = validator.Pre(root)
		if hookErr := c.forEachPluginModule(root, func(p module.ParsePlugin, m *ast.Node) error {
			return p.ValidatePre(m)
		}); hookErr != nil {
			return false, hookErr
		}

		changed, resolveErr := c.Resolver.Pass(root)
		if resolveErr != nil {
			return false, resolveErr
		}
		if hookErr := c.forEachPluginModule(root, func(p module.ParsePlugin, m *ast.Node) error {
			return p.Resolve(m)
		}); hookErr != nil {
			return false, hookErr
		}

		lastPost = validator.Post(root)
		if hookErr := c.forEachPluginModule(root, func(p module.ParsePlugin, m *ast.Node) error {
			return p.ValidatePost(m)
		}); hookErr != nil {
			return false, hookErr
		}

		// optimize: a no-op in the core itself, but the plugin Transform
		// hook (spec §9 open question) runs here, once per full pass.
		if hookErr := c.forEachPluginModule(root, func(p module.ParsePlugin, m *ast.Node) error {
			return p.Transform(m)
		}); hookErr != nil {
			return false, hookErr
		}
		lastPost = append(lastPost, validator.Post(root)...)

		c.log("iteration %d changed=%v", iter, changed == ast.NewTree)

		if changed == ast.SameTree {
			return validator.Failed(lastPre) || validator.Failed(lastPost), nil
		}
	}
}

// forEachPluginModule invokes fn with the parse plugin registered for each
// top-level module's parse extension, in the order modules appear under
// root (spec §6 "the core calls each hook in registered order"). A module
// with no matching registered plugin is skipped.
func (c *Context) forEachPluginModule(root *ast.Node, fn func(module.ParsePlugin, *ast.Node) error) error {
	if c.Plugins == nil {
		return nil
	}
	for _, m := range root.ChildrenOfVariant(ast.VariantModule) {
		mp, ok := m.Payload.(*decl.ModulePayload)
		if !ok {
			continue
		}
		plugin, ok := c.Plugins.ByExtension(mp.UID.ParseExtension)
		if !ok {
			continue
		}
		if err := fn(plugin, m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) log(format string, args ...interface{}) {
	if c.Streams == nil {
		return
	}
	c.Streams.Record(debug.Compiler, format, args...)
}

// importer adapts resolver.Importer to module.ImportModule, resolving a
// candidate's search directories from the parse plugin registered for the
// requested extension (spec §6 "searches library_paths ∪ search_dirs").
type importer struct {
	plugins *module.Registry
	table   *module.Table
	ctx     interface{}
}

func (im *importer) Import(id, scopePrefix, parseExtension, processExtension string, searchDirs []string) (module.UID, error) {
	plugin, ok := im.plugins.ByExtension(parseExtension)
	if !ok {
		return module.UID{}, errs.ErrModuleNotFound.New(id)
	}
	libraryPaths := plugin.LibraryPaths(im.ctx)
	return module.ImportModule(im.plugins, im.table, id, scopePrefix, parseExtension, processExtension, libraryPaths, searchDirs)
}
