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

package module

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/errs"
)

// ParsePlugin recognizes one source-file extension and supplies the six
// AST hooks, plus Transform, that the core invokes in registered order (spec §6 "Source language
// recognition"). The core never inspects what a hook actually does.
type ParsePlugin interface {
	Component() string
	Extension() string
	LibraryPaths(ctx interface{}) []string

	Parse(stream io.Reader, path string) (*ast.Node, error)

	BuildScopes(mod *ast.Node) error
	Normalize(mod *ast.Node) error
	Coerce(mod *ast.Node) error
	Resolve(mod *ast.Node) error
	ValidatePre(mod *ast.Node) error
	ValidatePost(mod *ast.Node) error

	// Transform is an extension point (spec §9 open question: "leave the
	// hook point in place for extensions"). compiler.Context.Process calls
	// it once per loop iteration, after the ValidatePost hooks and before
	// the second validator.Post, but the core places no requirement on what
	// it does.
	Transform(mod *ast.Node) error
}

// Registry holds the process-wide set of registered parse plugins, keyed by
// file extension.
type Registry struct {
	byExt map[string]ParsePlugin
}

func NewRegistry() *Registry { return &Registry{byExt: map[string]ParsePlugin{}} }

func (r *Registry) Register(p ParsePlugin) { r.byExt[p.Extension()] = p }

func (r *Registry) ByExtension(ext string) (ParsePlugin, bool) {
	p, ok := r.byExt[ext]
	return p, ok
}

// Module is the resolved product of an import: its UID, its AST node, and
// the set of module UIDs it imports (for dependency closure).
type Module struct {
	UID     UID
	Node    *ast.Node
	Imports []UID
}

// Table tracks every module loaded so far, keyed by UID.
type Table struct {
	byUID map[UID]*Module
}

func NewTable() *Table { return &Table{byUID: map[UID]*Module{}} }

func (t *Table) Get(uid UID) (*Module, bool) {
	m, ok := t.byUID[uid]
	return m, ok
}

func (t *Table) Put(m *Module) { t.byUID[m.UID] = m }

// Dependencies returns the transitive closure of module UIDs reachable from
// uid's import edges (spec §9 open question: the source prints a TODO and
// returns empty; this port implements the closure). recursive=false returns
// only the direct imports.
func (t *Table) Dependencies(uid UID, recursive bool) []UID {
	m, ok := t.byUID[uid]
	if !ok {
		return nil
	}
	if !recursive {
		return append([]UID(nil), m.Imports...)
	}

	seen := map[UID]bool{uid: true}
	var out []UID
	var visit func(UID)
	visit = func(u UID) {
		mm, ok := t.byUID[u]
		if !ok {
			return
		}
		for _, dep := range mm.Imports {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			out = append(out, dep)
			visit(dep)
		}
	}
	visit(uid)
	return out
}

// ImportModule implements spec §6's import_module: it searches
// libraryPaths ∪ searchDirs for "[scope/]<lower(id)><parseExtension>",
// parses it with the plugin registered for parseExtension, sets its process
// extension, and installs it in the table. It returns the resolved UID or a
// wrapped error describing the search/parse failure.
func ImportModule(
	reg *Registry,
	table *Table,
	id string,
	scopePrefix string,
	parseExtension string,
	processExtension string,
	libraryPaths []string,
	searchDirs []string,
) (UID, error) {
	plugin, ok := reg.ByExtension(parseExtension)
	if !ok {
		return UID{}, errs.ErrModuleNotFound.New(id)
	}

	fileName := strings.ToLower(id) + parseExtension
	if scopePrefix != "" {
		fileName = filepath.Join(scopePrefix, fileName)
	}

	var dirs []string
	dirs = append(dirs, libraryPaths...)
	dirs = append(dirs, searchDirs...)

	var path string
	for _, dir := range dirs {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return UID{}, errs.ErrModuleNotFound.New(id)
	}

	f, err := os.Open(path)
	if err != nil {
		return UID{}, pkgerrors.Wrapf(err, "opening module %q", id)
	}
	defer f.Close()

	node, err := plugin.Parse(f, path)
	if err != nil {
		return UID{}, pkgerrors.Wrapf(err, "parsing module %q", id)
	}

	uid := UID{ID: id, Path: path, ParseExtension: parseExtension, ProcessExtension: processExtension}
	table.Put(&Module{UID: uid, Node: node})
	return uid, nil
}
