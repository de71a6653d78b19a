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
	"github.com/coral-lang/astcore/pkg/types"
)

// elementStyle is the style the spec's §4.5.6 table calls
// "TryAllForAssignment": every recursive element coercion behaves as an
// Assignment into that element's slot.
const elementStyle = types.TryExactMatch | types.TryCoercion | types.Assignment

// coerceCtor implements the per-variant table of spec §4.5.6. It returns
// ok=false when e's variant has no ctor-level rule for dst, letting the
// caller (coerceExpression) fall back to the generic types.CoerceType path.
func coerceCtor(e *ast.Node, src, dst types.Qualified, style types.Style) (*ast.Node, bool) {
	if dst.Type == nil {
		return nil, false
	}
	switch e.Variant {
	case ast.VariantCtorInteger:
		return coerceIntegerCtor(e, dst)
	case ast.VariantCtorReal:
		return coerceRealCtor(e, dst)
	case ast.VariantCtorList, ast.VariantCtorSet, ast.VariantCtorVector:
		return coerceContainerCtor(e, dst)
	case ast.VariantCtorTuple:
		return coerceTupleCtor(e, dst)
	case ast.VariantCtorStruct:
		return coerceStructCtor(e, dst)
	case ast.VariantCtorMap:
		return coerceMapCtor(e, dst)
	case ast.VariantCtorEnum:
		return coerceEnumCtor(e, dst, style)
	default:
		return nil, false
	}
}

func coerceIntegerCtor(e *ast.Node, dst types.Qualified) (*ast.Node, bool) {
	ip, ok := e.Payload.(*decl.IntegerCtorPayload)
	if !ok {
		return nil, false
	}
	switch dst.Type.Kind {
	case types.KindInt:
		if !fitsSigned(ip.Value, dst.Type.Width) {
			return nil, false
		}
		clone := e.Clone()
		clone.Payload = &decl.IntegerCtorPayload{Value: ip.Value, Type: dst}
		return clone, true
	case types.KindUInt:
		if ip.Value < 0 || !fitsUnsigned(uint64(ip.Value), dst.Type.Width) {
			return nil, false
		}
		clone := e.Clone()
		clone.Payload = &decl.IntegerCtorPayload{Value: ip.Value, Unsigned: true, Type: dst}
		return clone, true
	case types.KindReal:
		f := float64(ip.Value)
		if int64(f) != ip.Value {
			return nil, false
		}
		clone := e.Clone()
		clone.Variant = ast.VariantCtorReal
		clone.Payload = &decl.RealCtorPayload{Value: f, Type: dst}
		return clone, true
	default:
		return nil, false
	}
}

func coerceRealCtor(e *ast.Node, dst types.Qualified) (*ast.Node, bool) {
	rp, ok := e.Payload.(*decl.RealCtorPayload)
	if !ok {
		return nil, false
	}
	switch dst.Type.Kind {
	case types.KindInt, types.KindUInt:
		asInt := int64(rp.Value)
		if float64(asInt) != rp.Value {
			return nil, false
		}
		if dst.Type.Kind == types.KindUInt && asInt < 0 {
			return nil, false
		}
		clone := e.Clone()
		clone.Variant = ast.VariantCtorInteger
		clone.Payload = &decl.IntegerCtorPayload{Value: asInt, Unsigned: dst.Type.Kind == types.KindUInt, Type: dst}
		return clone, true
	default:
		return nil, false
	}
}

func fitsSigned(v int64, width int) bool {
	if width <= 0 || width >= 64 {
		return true
	}
	lo := int64(-1) << (width - 1)
	hi := (int64(1) << (width - 1)) - 1
	return v >= lo && v <= hi
}

func fitsUnsigned(v uint64, width int) bool {
	if width <= 0 || width >= 64 {
		return true
	}
	hi := (uint64(1) << width) - 1
	return v <= hi
}

// coerceContainerCtor implements "list{e_i} -> set<T>/vector<T>/list<T>:
// each e_i coerces to T under TryAllForAssignment" (spec §4.5.6).
func coerceContainerCtor(e *ast.Node, dst types.Qualified) (*ast.Node, bool) {
	switch dst.Type.Kind {
	case types.KindList, types.KindSet, types.KindVector:
	default:
		return nil, false
	}
	elem := dst.Type.Deref()
	if elem == nil {
		return nil, false
	}
	elemQ := types.Q(elem)

	children := e.NonNilChildren()
	newChildren := make([]*ast.Node, len(children))
	for i, c := range children {
		rewritten, _, ok := coerceExpression(c, elemQ, elementStyle)
		if !ok {
			return nil, false
		}
		newChildren[i] = rewritten
	}

	variant := e.Variant
	switch dst.Type.Kind {
	case types.KindList:
		variant = ast.VariantCtorList
	case types.KindSet:
		variant = ast.VariantCtorSet
	case types.KindVector:
		variant = ast.VariantCtorVector
	}

	clone := e.Clone()
	clone.Variant = variant
	clone.ReplaceChildren(newChildren)
	clone.Payload = &decl.ContainerCtorPayload{Type: dst}
	return clone, true
}

// coerceTupleCtor implements "tuple{e_i} -> tuple<T_i>: element-wise under
// TryAllForAssignment".
func coerceTupleCtor(e *ast.Node, dst types.Qualified) (*ast.Node, bool) {
	if dst.Type.Kind != types.KindTuple {
		return nil, false
	}
	children := e.NonNilChildren()
	if len(children) != len(dst.Type.Params) {
		return nil, false
	}
	newChildren := make([]*ast.Node, len(children))
	for i, c := range children {
		rewritten, _, ok := coerceExpression(c, types.Q(dst.Type.Params[i]), elementStyle)
		if !ok {
			return nil, false
		}
		newChildren[i] = rewritten
	}
	clone := e.Clone()
	clone.ReplaceChildren(newChildren)
	clone.Payload = &decl.TupleCtorPayload{Type: dst}
	return clone, true
}

// coerceStructCtor implements "struct{id=e_i} -> named record type: fields
// match; extras rejected; missing fields must be optional/internal/have
// default/be function-typed" (spec §4.5.6, end-to-end scenario 3).
func coerceStructCtor(e *ast.Node, dst types.Qualified) (*ast.Node, bool) {
	if dst.Type.Kind != types.KindStruct && dst.Type.Kind != types.KindUnion && dst.Type.Kind != types.KindException {
		return nil, false
	}
	sp, ok := e.Payload.(*decl.StructCtorPayload)
	if !ok {
		return nil, false
	}

	fieldByName := map[string]types.FieldRef{}
	for _, f := range dst.Type.Fields {
		fieldByName[f.Name] = f
	}

	newFields := map[string]*ast.Node{}
	for name, expr := range sp.Fields {
		f, ok := fieldByName[name]
		if !ok {
			return nil, false // extras rejected
		}
		rewritten, _, ok := coerceExpression(expr, f.Type, elementStyle)
		if !ok {
			return nil, false
		}
		newFields[name] = rewritten
	}

	for _, f := range dst.Type.Fields {
		if _, supplied := sp.Fields[f.Name]; supplied {
			continue
		}
		if !(f.Optional || f.Internal || f.HasDefault || f.IsFunction) {
			return nil, false
		}
	}

	clone := e.Clone()
	order := make([]string, 0, len(newFields))
	for _, n := range sp.FieldOrder {
		if _, ok := newFields[n]; ok {
			order = append(order, n)
		}
	}
	clone.Payload = &decl.StructCtorPayload{FieldOrder: order, Fields: newFields, Type: dst}
	return clone, true
}

// coerceMapCtor implements "map{k_i:v_i} -> map<K,V>: each pair coerces".
// Children alternate key, value (decl.MapCtorPayload).
func coerceMapCtor(e *ast.Node, dst types.Qualified) (*ast.Node, bool) {
	if dst.Type.Kind != types.KindMap || len(dst.Type.Params) != 2 {
		return nil, false
	}
	keyQ, valQ := types.Q(dst.Type.Params[0]), types.Q(dst.Type.Params[1])

	children := e.NonNilChildren()
	if len(children)%2 != 0 {
		return nil, false
	}
	newChildren := make([]*ast.Node, len(children))
	for i := 0; i < len(children); i += 2 {
		k, v := children[i], children[i+1]
		newK, _, ok := coerceExpression(k, keyQ, elementStyle)
		if !ok {
			return nil, false
		}
		newV, _, ok := coerceExpression(v, valQ, elementStyle)
		if !ok {
			return nil, false
		}
		newChildren[i], newChildren[i+1] = newK, newV
	}
	clone := e.Clone()
	clone.ReplaceChildren(newChildren)
	clone.Payload = &decl.MapCtorPayload{Type: dst}
	return clone, true
}

// coerceEnumCtor implements "enum label -> bool: ContextualConversion; true
// iff label != Undef".
func coerceEnumCtor(e *ast.Node, dst types.Qualified, style types.Style) (*ast.Node, bool) {
	if dst.Type.Kind != types.KindBool || !style.has(types.ContextualConversion) {
		return nil, false
	}
	ep, ok := e.Payload.(*decl.EnumCtorPayload)
	if !ok {
		return nil, false
	}
	clone := ast.New(ast.CategoryCtor, ast.VariantCtorBool)
	clone.Meta = e.Meta
	clone.Payload = &decl.BoolCtorPayload{Value: ep.Label != "Undef", Type: dst}
	return clone, true
}

// resolveTupleCtor implements spec §4.5.2 rule 3: "If all element
// expressions are resolved and the tuple's type is not yet set, compute an
// element-wise qualified-type tuple and store it."
func (r *Resolver) resolveTupleCtor(n *ast.Node) (*ast.Node, bool, error) {
	if tp, ok := n.Payload.(*decl.TupleCtorPayload); ok && tp.Type.Type != nil {
		return n, false, nil
	}

	children := n.NonNilChildren()
	params := make([]*types.Type, len(children))
	for i, c := range children {
		q, ok := exprType(c)
		if !ok || q.Type == nil || !q.Type.Resolved() {
			return n, false, nil
		}
		params[i] = q.Type
	}

	tupleType := types.NewParameterized(types.KindTuple, params...)
	n.Payload = &decl.TupleCtorPayload{Type: types.Q(tupleType)}
	r.log("tuple ctor typed as %s", fmt.Sprint(tupleType))
	return n, true, nil
}
