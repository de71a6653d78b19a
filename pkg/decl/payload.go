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

// Package decl defines the variant-specific payloads carried on
// ast.Node.Payload for every declaration and scope-relevant node. It sits
// above both ast and types so those two stay free of each other's concerns
// (design note §9's "two-level tag": Category/Variant is the outer tag,
// Payload is the inner one).
package decl

import (
	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/module"
	"github.com/coral-lang/astcore/pkg/types"
)

// TypePayload is the Payload of a Decl.Type node: the unqualified type this
// declaration introduces, plus the type_id once assigned.
type TypePayload struct {
	Type *types.Type
	// LabelsMaterialized marks that an enum type's per-label constant
	// declarations have already been instantiated into the enclosing
	// module (spec §4.4/§4.5.2's enum-label rule), so the resolver's
	// rewrite rule stays idempotent across fixed-point passes.
	LabelsMaterialized bool
}

// ParameterPayload is the Payload of a Decl.Parameter node.
type ParameterPayload struct {
	Kind       ast.ParamKind
	IsTypeParam bool
	Type       types.Qualified
}

// FunctionPayload is the Payload of a Decl.Function node.
type FunctionPayload struct {
	Result       types.Qualified
	ResultIsAuto bool
	Body         *ast.Node // Stmt.Block, or nil for a declaration-only prototype
}

// VariablePayload backs Decl.GlobalVariable / Decl.LocalVariable /
// Decl.Constant / Decl.ExpressionAlias.
type VariablePayload struct {
	Type  types.Qualified
	Value *ast.Node // initializer expression, or nil
}

// FieldPayload is the Payload of a Decl.Field node (a struct/union member;
// possibly an inline function per spec §3).
type FieldPayload struct {
	Type       types.Qualified
	Optional   bool
	Internal   bool
	IsFunction bool
	Default    *ast.Node
}

// ModulePayload is the Payload of a Module node: its own declaration (for
// cross-module lookup) plus every import edge it has resolved so far.
type ModulePayload struct {
	UID     module.UID
	Imports []module.UID
}

// ImportedModulePayload is the Payload of a Decl.ImportedModule node.
type ImportedModulePayload struct {
	Target  module.UID
	Search  []string
	ScopePrefix string
}

// ListComprehensionPayload is the Payload of an Expr.ListComprehension node:
// the name of its induced iteration variable and the source/element
// sub-expressions (held as ordinary children; this only names the slots).
type ListComprehensionPayload struct {
	IterVarID string
}

// PropertyPayload is the Payload of a Decl.Property node.
type PropertyPayload struct {
	Type  types.Qualified
	Value *ast.Node
}

// Typed is implemented by every runtime-literal ctor payload (spec §3
// Ctors, §4.5.6 "Constructor coercion") so the resolver can read a ctor
// node's settled qualified type uniformly, without a type switch per
// concrete ctor variant.
type Typed interface {
	QualifiedType() types.Qualified
}

// IntegerCtorPayload is the Payload of a Ctor.Integer node: a signed or
// unsigned integer literal, plus its settled type once one has been
// assigned (the default type for a bare literal before any coercion site
// has narrowed it).
type IntegerCtorPayload struct {
	Value    int64
	Unsigned bool
	Type     types.Qualified
}

func (p *IntegerCtorPayload) QualifiedType() types.Qualified { return p.Type }

// RealCtorPayload is the Payload of a Ctor.Real node.
type RealCtorPayload struct {
	Value float64
	Type  types.Qualified
}

func (p *RealCtorPayload) QualifiedType() types.Qualified { return p.Type }

// StringCtorPayload is the Payload of a Ctor.String node.
type StringCtorPayload struct {
	Value string
	Type  types.Qualified
}

func (p *StringCtorPayload) QualifiedType() types.Qualified { return p.Type }

// BytesCtorPayload is the Payload of a Ctor.Bytes node.
type BytesCtorPayload struct {
	Value []byte
	Type  types.Qualified
}

func (p *BytesCtorPayload) QualifiedType() types.Qualified { return p.Type }

// BoolCtorPayload is the Payload of a Ctor.Bool node.
type BoolCtorPayload struct {
	Value bool
	Type  types.Qualified
}

func (p *BoolCtorPayload) QualifiedType() types.Qualified { return p.Type }

// ContainerCtorPayload is the Payload of Ctor.List/Ctor.Set/Ctor.Vector
// nodes; elements are ordinary children. Type is set once the resolver has
// inferred an element-wise qualified type (spec §4.5.2 rule 3's tuple case
// generalizes to every container ctor).
type ContainerCtorPayload struct {
	Type types.Qualified
}

func (p *ContainerCtorPayload) QualifiedType() types.Qualified { return p.Type }

// MapCtorPayload is the Payload of a Ctor.Map node; children alternate
// key, value, key, value, ... in declaration order.
type MapCtorPayload struct {
	Type types.Qualified
}

func (p *MapCtorPayload) QualifiedType() types.Qualified { return p.Type }

// TupleCtorPayload is the Payload of a Ctor.Tuple node; elements are
// ordinary children (spec §4.5.2 rule 3).
type TupleCtorPayload struct {
	Type types.Qualified
}

func (p *TupleCtorPayload) QualifiedType() types.Qualified { return p.Type }

// StructCtorPayload is the Payload of a Ctor.Struct node: field name ->
// initializer expression (spec §3 "struct{id=e_i}"), plus field order for
// stable re-emission, and the settled struct type once matched against a
// destination.
type StructCtorPayload struct {
	FieldOrder []string
	Fields     map[string]*ast.Node
	Type       types.Qualified
}

func (p *StructCtorPayload) QualifiedType() types.Qualified { return p.Type }

// EnumCtorPayload is the Payload of a Ctor.Enum node: the label name chosen
// and (once resolved) the owning enum's type.
type EnumCtorPayload struct {
	Label string
	Type  types.Qualified
}

func (p *EnumCtorPayload) QualifiedType() types.Qualified { return p.Type }

// WrapCtorPayload is the Payload of Ctor.Optional/Ctor.Result/Ctor.Reference
// nodes, each wrapping a single inner expression (its sole child).
type WrapCtorPayload struct {
	Type types.Qualified
}

func (p *WrapCtorPayload) QualifiedType() types.Qualified { return p.Type }

// NullCtorPayload is the Payload of a Ctor.Null node, carried mainly so
// Null has a Typed implementation like every other ctor.
type NullCtorPayload struct{}

func (p *NullCtorPayload) QualifiedType() types.Qualified { return types.Q(types.New(types.KindNull)) }
