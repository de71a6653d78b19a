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

// Package operator implements the process-wide operator registry of spec
// §4.3: operator signatures keyed by kind (and by method name for member
// calls), with factories that instantiate resolved-operator AST nodes once
// the resolver has matched operands.
package operator

// Kind is the fixed enumeration an expression's syntactic role is tagged
// with (spec §3 Operators).
type Kind uint8

const (
	Sum Kind = iota
	Difference
	Multiple
	Division
	Modulo
	Power
	Negate

	Equal
	Unequal
	Less
	LessEqual
	Greater
	GreaterEqual

	LogicalAnd
	LogicalOr
	LogicalNot

	BitAnd
	BitOr
	BitXor
	BitNot
	ShiftLeft
	ShiftRight

	Index
	Member
	Call
	MemberCall
	Cast

	Begin
	End
	Size

	HasMember
	TryMember

	Pack
	Unpack

	New
	Delete
	Unset

	SumAssign
	DifferenceAssign
	MultipleAssign
	DivisionAssign
	ModuloAssign
	PowerAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	ShiftLeftAssign
	ShiftRightAssign
)

var kindNames = map[Kind]string{
	Sum: "+", Difference: "-", Multiple: "*", Division: "/", Modulo: "%", Power: "**", Negate: "unary-",
	Equal: "==", Unequal: "!=", Less: "<", LessEqual: "<=", Greater: ">", GreaterEqual: ">=",
	LogicalAnd: "&&", LogicalOr: "||", LogicalNot: "!",
	BitAnd: "&", BitOr: "|", BitXor: "^", BitNot: "~", ShiftLeft: "<<", ShiftRight: ">>",
	Index: "[]", Member: ".", Call: "()", MemberCall: ".()", Cast: "cast",
	Begin: "begin", End: "end", Size: "size",
	HasMember: "?.", TryMember: "try.",
	Pack: "pack", Unpack: "unpack",
	New: "new", Delete: "delete", Unset: "unset",
	SumAssign: "+=", DifferenceAssign: "-=", MultipleAssign: "*=", DivisionAssign: "/=",
	ModuloAssign: "%=", PowerAssign: "**=", BitAndAssign: "&=", BitOrAssign: "|=", BitXorAssign: "^=",
	ShiftLeftAssign: "<<=", ShiftRightAssign: ">>=",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "op(?)"
}

// Commutative is the fixed set of kinds where operand order does not affect
// which candidate matches (spec §4.5.3 "Commutative kinds").
var Commutative = map[Kind]bool{
	BitAnd: true, BitOr: true, BitXor: true,
	Equal: true, Unequal: true,
	Multiple: true, Sum: true,
}

// Priority orders candidate matches of the same kind (spec §3/§4.5.3).
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
)
