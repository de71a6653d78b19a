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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/decl"
	"github.com/coral-lang/astcore/pkg/types"
)

func enumDecl(modID, typeID string, labels ...string) (mod, typeNode *ast.Node) {
	mod = ast.New(ast.CategoryRoot, ast.VariantModule)
	mod.ID = modID
	typeNode = ast.New(ast.CategoryDeclaration, ast.VariantDeclType)
	typeNode.ID = typeID

	enumType := types.New(types.KindEnum)
	enumType.TypeID = typeID
	for _, l := range labels {
		enumType.EnumLabels = append(enumType.EnumLabels, types.EnumLabel{Name: l})
	}
	typeNode.Payload = &decl.TypePayload{Type: enumType}
	mod.AddChild(typeNode)
	return
}

func TestResolveEnumLabelsMaterializesOneConstantPerLabel(t *testing.T) {
	require := require.New(t)
	r := New(nil, nil, nil)
	mod, typeNode := enumDecl("M", "Color", "Red", "Green", "Blue")

	resolved, changed, err := r.resolveEnumLabels(typeNode)
	require.NoError(err)
	require.True(changed)
	require.Same(typeNode, resolved)

	constants := mod.ChildrenOfVariant(ast.VariantDeclConstant)
	require.Len(constants, 3)

	names := map[string]bool{}
	for _, c := range constants {
		names[c.ID] = true
	}
	require.True(names["Red"] && names["Green"] && names["Blue"])

	tp := typeNode.Payload.(*decl.TypePayload)
	require.True(tp.LabelsMaterialized)
	require.Same(typeNode, tp.Type.EnumOwner)
}

func TestResolveEnumLabelsIsIdempotent(t *testing.T) {
	require := require.New(t)
	r := New(nil, nil, nil)
	mod, typeNode := enumDecl("M", "Color", "Red")

	_, changed, err := r.resolveEnumLabels(typeNode)
	require.NoError(err)
	require.True(changed)

	_, changed, err = r.resolveEnumLabels(typeNode)
	require.NoError(err)
	require.False(changed)
	require.Len(mod.ChildrenOfVariant(ast.VariantDeclConstant), 1)
}

func TestResolveEnumLabelsWaitsForTypeID(t *testing.T) {
	require := require.New(t)
	r := New(nil, nil, nil)
	_, typeNode := enumDecl("M", "", "Red")

	_, changed, err := r.resolveEnumLabels(typeNode)
	require.NoError(err)
	require.False(changed)
}

func TestResolveEnumLabelsSkipsNonEnumTypes(t *testing.T) {
	require := require.New(t)
	r := New(nil, nil, nil)
	typeNode := ast.New(ast.CategoryDeclaration, ast.VariantDeclType)
	typeNode.Payload = &decl.TypePayload{Type: types.New(types.KindStruct)}

	_, changed, err := r.resolveEnumLabels(typeNode)
	require.NoError(err)
	require.False(changed)
}
