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

package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/debug"
	"github.com/coral-lang/astcore/pkg/operator"
)

func buildModuleWithReference() (root, constDecl, ref *ast.Node) {
	root = ast.New(ast.CategoryRoot, ast.VariantASTRoot)
	mod := ast.New(ast.CategoryRoot, ast.VariantModule)
	mod.ID = "M"
	constDecl = ast.New(ast.CategoryDeclaration, ast.VariantDeclConstant)
	constDecl.ID = "x"
	ref = ast.New(ast.CategoryExpression, ast.VariantExprName)
	ref.ID = "x"
	mod.AddChild(constDecl)
	mod.AddChild(ref)
	root.AddChild(mod)
	return
}

func TestProcessResolvesNameAndConvergesWithoutFailure(t *testing.T) {
	require := require.New(t)
	root, _, ref := buildModuleWithReference()

	c := New(operator.Default, nil, debug.New())
	failed, err := c.Process(root, false)
	require.NoError(err)
	require.False(failed)
	require.NotNil(ref.Payload)
}

func TestProcessReportsFailureForUnresolvableName(t *testing.T) {
	require := require.New(t)
	root := ast.New(ast.CategoryRoot, ast.VariantASTRoot)
	mod := ast.New(ast.CategoryRoot, ast.VariantModule)
	mod.ID = "M"
	ref := ast.New(ast.CategoryExpression, ast.VariantExprName)
	ref.ID = "nonexistent"
	mod.AddChild(ref)
	root.AddChild(mod)

	c := New(operator.Default, nil, debug.New())
	failed, err := c.Process(root, false)
	require.NoError(err)
	require.True(failed)
}

func TestProcessIsIdempotentOnASecondCall(t *testing.T) {
	require := require.New(t)
	root, _, _ := buildModuleWithReference()

	c := New(operator.Default, nil, debug.New())
	_, err := c.Process(root, false)
	require.NoError(err)

	failed, err := c.Process(root, true)
	require.NoError(err)
	require.False(failed)
}
