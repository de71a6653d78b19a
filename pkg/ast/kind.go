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

package ast

// Category is the outer tag of the two-level node tag (design note §9:
// "Deep inheritance of node kinds ⇒ two-level tag"). It groups every node
// variant into the handful of families the rest of the core dispatches on.
type Category uint8

const (
	CategoryRoot Category = iota
	CategoryDeclaration
	CategoryExpression
	CategoryStatement
	CategoryType
	CategoryCtor
	CategoryAttribute
	CategoryAttributeSet
)

func (c Category) String() string {
	switch c {
	case CategoryRoot:
		return "Root"
	case CategoryDeclaration:
		return "Declaration"
	case CategoryExpression:
		return "Expression"
	case CategoryStatement:
		return "Statement"
	case CategoryType:
		return "Type"
	case CategoryCtor:
		return "Ctor"
	case CategoryAttribute:
		return "Attribute"
	case CategoryAttributeSet:
		return "AttributeSet"
	default:
		return "Unknown"
	}
}

// Variant is the inner tag: the concrete node kind within a Category.
type Variant uint16

const (
	VariantUnset Variant = iota

	// Root
	VariantASTRoot
	VariantModule

	// Declaration variants
	VariantDeclConstant
	VariantDeclExpressionAlias
	VariantDeclGlobalVariable
	VariantDeclLocalVariable
	VariantDeclParameter
	VariantDeclField
	VariantDeclFunction
	VariantDeclModule
	VariantDeclImportedModule
	VariantDeclType
	VariantDeclProperty

	// Expression variants
	VariantExprName
	VariantExprTypeName
	VariantExprUnresolvedOperator
	VariantExprResolvedOperator
	VariantExprCoerced
	VariantExprKeyword
	VariantExprDeferred
	VariantExprListComprehension
	VariantExprMember

	// Statement variants
	VariantStmtBlock
	VariantStmtIf
	VariantStmtFor
	VariantStmtWhile
	VariantStmtSwitch
	VariantStmtTryCatch
	VariantStmtReturn
	VariantStmtDeclaration
	VariantStmtExpression

	// Ctor variants (runtime literal constructors)
	VariantCtorInteger
	VariantCtorReal
	VariantCtorString
	VariantCtorBytes
	VariantCtorBool
	VariantCtorNull
	VariantCtorList
	VariantCtorSet
	VariantCtorVector
	VariantCtorMap
	VariantCtorTuple
	VariantCtorStruct
	VariantCtorEnum
	VariantCtorOptional
	VariantCtorResult
	VariantCtorReference

	// Attribute / attribute-set
	VariantAttribute
	VariantAttributeSet
)

var variantNames = map[Variant]string{
	VariantUnset:                  "Unset",
	VariantASTRoot:                "ASTRoot",
	VariantModule:                 "Module",
	VariantDeclConstant:           "Decl.Constant",
	VariantDeclExpressionAlias:    "Decl.ExpressionAlias",
	VariantDeclGlobalVariable:     "Decl.GlobalVariable",
	VariantDeclLocalVariable:      "Decl.LocalVariable",
	VariantDeclParameter:          "Decl.Parameter",
	VariantDeclField:              "Decl.Field",
	VariantDeclFunction:           "Decl.Function",
	VariantDeclModule:             "Decl.Module",
	VariantDeclImportedModule:     "Decl.ImportedModule",
	VariantDeclType:               "Decl.Type",
	VariantDeclProperty:           "Decl.Property",
	VariantExprName:               "Expr.Name",
	VariantExprTypeName:           "Expr.TypeName",
	VariantExprUnresolvedOperator: "Expr.UnresolvedOperator",
	VariantExprResolvedOperator:   "Expr.ResolvedOperator",
	VariantExprCoerced:            "Expr.Coerced",
	VariantExprKeyword:            "Expr.Keyword",
	VariantExprDeferred:           "Expr.Deferred",
	VariantExprListComprehension:  "Expr.ListComprehension",
	VariantExprMember:             "Expr.Member",
	VariantStmtBlock:              "Stmt.Block",
	VariantStmtIf:                 "Stmt.If",
	VariantStmtFor:                "Stmt.For",
	VariantStmtWhile:              "Stmt.While",
	VariantStmtSwitch:             "Stmt.Switch",
	VariantStmtTryCatch:           "Stmt.TryCatch",
	VariantStmtReturn:             "Stmt.Return",
	VariantStmtDeclaration:        "Stmt.Declaration",
	VariantStmtExpression:         "Stmt.Expression",
	VariantCtorInteger:            "Ctor.Integer",
	VariantCtorReal:               "Ctor.Real",
	VariantCtorString:             "Ctor.String",
	VariantCtorBytes:              "Ctor.Bytes",
	VariantCtorBool:               "Ctor.Bool",
	VariantCtorNull:               "Ctor.Null",
	VariantCtorList:               "Ctor.List",
	VariantCtorSet:                "Ctor.Set",
	VariantCtorVector:             "Ctor.Vector",
	VariantCtorMap:                "Ctor.Map",
	VariantCtorTuple:              "Ctor.Tuple",
	VariantCtorStruct:             "Ctor.Struct",
	VariantCtorEnum:               "Ctor.Enum",
	VariantCtorOptional:           "Ctor.Optional",
	VariantCtorResult:             "Ctor.Result",
	VariantCtorReference:          "Ctor.Reference",
	VariantAttribute:              "Attribute",
	VariantAttributeSet:           "AttributeSet",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return "Variant(?)"
}

// Linkage is a declaration's visibility class (spec §3 Declarations).
type Linkage uint8

const (
	LinkagePrivate Linkage = iota
	LinkagePublic
	LinkageInit
	LinkagePreInit
	LinkageStruct
)

func (l Linkage) String() string {
	switch l {
	case LinkagePrivate:
		return "private"
	case LinkagePublic:
		return "public"
	case LinkageInit:
		return "init"
	case LinkagePreInit:
		return "preinit"
	case LinkageStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// ParamKind classifies a function/operator parameter's passing mode.
type ParamKind uint8

const (
	ParamIn ParamKind = iota
	ParamInOut
	ParamCopy
)
