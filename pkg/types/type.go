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

// Package types implements the type family of spec §4.2: unqualified and
// qualified types, resolution predicates, and coerce_type.
package types

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/coral-lang/astcore/pkg/ast"
)

// Kind is the unqualified type variant tag.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindAuto

	// Primitives
	KindBool
	KindInt
	KindUInt
	KindReal
	KindString
	KindBytes
	KindStream
	KindViewStream
	KindAddress
	KindNetwork
	KindPort
	KindTime
	KindInterval
	KindRegexp
	KindError
	KindNull
	KindVoid
	KindAny

	// Containers / iterators
	KindList
	KindSet
	KindVector
	KindMap
	KindTuple
	KindListIterator
	KindSetIterator
	KindVectorIterator
	KindMapIterator

	// References
	KindStrongRef
	KindWeakRef
	KindValueRef

	// Compound
	KindOptional
	KindResult
	KindFunction
	KindStruct
	KindUnion
	KindException
	KindEnum
	KindMember
	KindOperandList
	KindTypeOf
	KindNameOf
	KindLibraryBound
	KindDocOnly
)

var kindNames = [...]string{
	KindUnknown: "unknown", KindAuto: "auto",
	KindBool: "bool", KindInt: "int", KindUInt: "uint", KindReal: "real",
	KindString: "string", KindBytes: "bytes", KindStream: "stream",
	KindViewStream: "view<stream>", KindAddress: "address", KindNetwork: "network",
	KindPort: "port", KindTime: "time", KindInterval: "interval", KindRegexp: "regexp",
	KindError: "error", KindNull: "null", KindVoid: "void", KindAny: "any",
	KindList: "list", KindSet: "set", KindVector: "vector", KindMap: "map", KindTuple: "tuple",
	KindListIterator: "iterator<list>", KindSetIterator: "iterator<set>",
	KindVectorIterator: "iterator<vector>", KindMapIterator: "iterator<map>",
	KindStrongRef: "strong_ref", KindWeakRef: "weak_ref", KindValueRef: "value_ref",
	KindOptional: "optional", KindResult: "result", KindFunction: "function",
	KindStruct: "struct", KindUnion: "union", KindException: "exception", KindEnum: "enum",
	KindMember: "member", KindOperandList: "operand_list", KindTypeOf: "typeof",
	KindNameOf: "nameof", KindLibraryBound: "library", KindDocOnly: "doc",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "kind(?)"
}

// EnumLabel is one member of an enum type: its name and numeric value. The
// non-owning back-reference to the owning declaration is Type.EnumOwner.
type EnumLabel struct {
	Name  string
	Value int64
}

var nextTypeID int64
var nextAnonID int64

func allocTypeRID() int64 { return atomic.AddInt64(&nextTypeID, 1) }

// Type is an unqualified type (spec §3 "Types (qualified vs. unqualified)").
type Type struct {
	rid int64

	Kind   Kind
	Params []*Type // type parameters, e.g. list<T> -> Params=[T]
	Width  int     // bit width for int<N>/uint<N>

	// Optional identity fields.
	TypeID     string // fully-qualified name, set once the type is a decl payload
	CxxID      string // forced external name (e.g. &cxxname attribute)
	ResolvedID string // canonicalized name after scope resolution

	Wildcard bool // T<*> — matches any instance of Kind regardless of Params

	// Enum payload.
	EnumLabels []EnumLabel
	// EnumOwner is a weak back-reference set once this type is the payload
	// of a Decl.Type node; used by per-label constant instantiation.
	EnumOwner *ast.Node

	// Struct/Union/Exception payload: member fields, each described by name,
	// type and flags, with no link to the Decl.Field node (field
	// declarations live in the AST; the type only needs to enumerate them
	// for ctor coercion).
	Fields []FieldRef

	// Function payload.
	Operands []Operand
	Result   *Qualified

	// anonID distinguishes otherwise-identical anonymous records: "two
	// anonymous records are equal only to themselves" (spec §3 Types).
	anonID int64
}

// FieldRef describes one struct/union field for ctor-matching purposes.
type FieldRef struct {
	Name       string
	Type       Qualified
	Optional   bool
	Internal   bool
	HasDefault bool
	IsFunction bool // inline method field — never required at ctor sites
}

// Operand is one entry of an operator/function operand list (spec §3
// Operators — operand). Defaults and optionals must tail the list.
type Operand struct {
	Name     string
	Type     Qualified
	Optional bool
	Default  *ast.Node // default expression, or nil
}

// Qualified wraps an unqualified Type with constness and the is_auto flag
// (spec §3 "A qualified type pairs a type with a constness flag").
type Qualified struct {
	Type    *Type
	Const   bool
	IsAuto  bool
}

// New creates a fresh unqualified type of the given kind.
func New(k Kind) *Type {
	return &Type{rid: allocTypeRID(), Kind: k}
}

// NewParameterized creates a type with the given kind and type parameters.
func NewParameterized(k Kind, params ...*Type) *Type {
	t := New(k)
	t.Params = params
	return t
}

// NewWildcard creates a T<*> wildcard of the given kind.
func NewWildcard(k Kind) *Type {
	t := New(k)
	t.Wildcard = true
	return t
}

// NewInt/NewUInt create fixed-width integer types.
func NewInt(width int) *Type  { t := New(KindInt); t.Width = width; return t }
func NewUInt(width int) *Type { t := New(KindUInt); t.Width = width; return t }

// NewAnonymousStruct allocates a struct type with a fresh anonymous
// identity; it is only ever equal to itself.
func NewAnonymousStruct(fields []FieldRef) *Type {
	t := New(KindStruct)
	t.Fields = fields
	t.anonID = atomic.AddInt64(&nextAnonID, 1)
	return t
}

func Q(t *Type) Qualified           { return Qualified{Type: t} }
func QConst(t *Type) Qualified      { return Qualified{Type: t, Const: true} }
func QAuto() Qualified              { return Qualified{Type: New(KindAuto), IsAuto: true} }

func (t *Type) RID() int64 { return t.rid }

func (t *Type) String() string {
	var sb strings.Builder
	if t.Wildcard {
		sb.WriteString(t.Kind.String())
		sb.WriteString("<*>")
		return sb.String()
	}
	switch t.Kind {
	case KindInt, KindUInt:
		fmt.Fprintf(&sb, "%s<%d>", t.Kind, t.Width)
		return sb.String()
	}
	sb.WriteString(t.Kind.String())
	if len(t.Params) > 0 {
		sb.WriteString("<")
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
		sb.WriteString(">")
	}
	return sb.String()
}

func (q Qualified) String() string {
	prefix := ""
	if q.Const {
		prefix = "const "
	}
	if q.Type == nil {
		return prefix + "<nil type>"
	}
	return prefix + q.Type.String()
}
