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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/resolver"
)

func TestCollectAndReportKeepsOnlyHighestPriorityTierP6(t *testing.T) {
	require := require.New(t)
	root := ast.New(ast.CategoryRoot, ast.VariantASTRoot)
	child := ast.New(ast.CategoryExpression, ast.VariantExprName)
	root.AddChild(child)

	root.AddError("low-tier noise", ast.Low)
	child.AddError("normal-tier warning", ast.Normal)
	child.AddError("high-tier failure", ast.High)

	reports := collectAndReport(root)
	require.Len(reports, 1)
	require.Equal("high-tier failure", reports[0].Message)
}

func TestCollectAndReportDedupesByMessageAndLocation(t *testing.T) {
	require := require.New(t)
	root := ast.New(ast.CategoryRoot, ast.VariantASTRoot)
	a := ast.New(ast.CategoryExpression, ast.VariantExprName)
	b := ast.New(ast.CategoryExpression, ast.VariantExprName)
	root.AddChild(a)
	root.AddChild(b)

	a.AddError("duplicate", ast.High)
	b.AddError("duplicate", ast.High)

	reports := collectAndReport(root)
	require.Len(reports, 1)
}

func TestCollectAndReportEmptyWhenNoErrors(t *testing.T) {
	require := require.New(t)
	root := ast.New(ast.CategoryRoot, ast.VariantASTRoot)
	require.Empty(collectAndReport(root))
}

func TestFailedReflectsReportPresence(t *testing.T) {
	require := require.New(t)
	require.False(Failed(nil))
	require.True(Failed([]Report{{Message: "x"}}))
}

func TestReportStringIncludesLocationAndMessage(t *testing.T) {
	require := require.New(t)
	r := Report{Message: "bad thing", Location: ast.Location{Path: "a.cor", Line: 3, Col: 1}}
	require.Contains(r.String(), "bad thing")
	require.Contains(r.String(), "a.cor:3:1")
}

func TestPreFlagsWrongInitChildKind(t *testing.T) {
	require := require.New(t)
	ifStmt := ast.New(ast.CategoryStatement, ast.VariantStmtIf)
	badInit := ast.New(ast.CategoryDeclaration, ast.VariantDeclParameter)
	ifStmt.AddChild(badInit)

	reports := Pre(ifStmt)
	require.Len(reports, 1)
	require.Contains(reports[0].Message, "LocalVariable")
}

func TestPreAcceptsLocalVariableInitChild(t *testing.T) {
	require := require.New(t)
	forStmt := ast.New(ast.CategoryStatement, ast.VariantStmtFor)
	init := ast.New(ast.CategoryDeclaration, ast.VariantDeclLocalVariable)
	forStmt.AddChild(init)

	require.Empty(Pre(forStmt))
}

func TestPreFlagsCatchWithoutParameterFirstChild(t *testing.T) {
	require := require.New(t)
	tryCatch := ast.New(ast.CategoryStatement, ast.VariantStmtTryCatch)
	bad := ast.New(ast.CategoryDeclaration, ast.VariantDeclLocalVariable)
	tryCatch.AddChild(bad)

	reports := Pre(tryCatch)
	require.Len(reports, 1)
	require.Contains(reports[0].Message, "Parameter")
}

func TestPreFlagsStructMethodWithoutNamespace(t *testing.T) {
	require := require.New(t)
	fn := ast.New(ast.CategoryDeclaration, ast.VariantDeclFunction)
	fn.Linkage = ast.LinkageStruct
	fn.ID = "method"

	reports := Pre(fn)
	require.Len(reports, 1)
	require.Contains(reports[0].Message, "method")
}

func TestPreAcceptsNamespacedStructMethod(t *testing.T) {
	require := require.New(t)
	fn := ast.New(ast.CategoryDeclaration, ast.VariantDeclFunction)
	fn.Linkage = ast.LinkageStruct
	fn.ID = "Type::method"

	require.Empty(Pre(fn))
}

func TestPostFlagsUnresolvedOperatorRemaining(t *testing.T) {
	require := require.New(t)
	n := ast.New(ast.CategoryExpression, ast.VariantExprUnresolvedOperator)

	reports := Post(n)
	require.Len(reports, 1)
}

func TestPostFlagsNameWithoutResolutionPayload(t *testing.T) {
	require := require.New(t)
	n := ast.New(ast.CategoryExpression, ast.VariantExprName)
	n.ID = "x"

	reports := Post(n)
	require.Len(reports, 1)
}

func TestPostAcceptsResolvedName(t *testing.T) {
	require := require.New(t)
	decl := ast.New(ast.CategoryDeclaration, ast.VariantDeclConstant)
	n := ast.New(ast.CategoryExpression, ast.VariantExprName)
	n.ID = "x"
	n.Payload = &resolver.NameResolutionPayload{Decl: decl}

	require.Empty(Post(n))
}
