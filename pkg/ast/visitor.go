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

// Visitor is the base (category-level) double-dispatch capability. Every
// node dispatches to its category method at minimum (spec §4.1 "dispatch(visitor)").
type Visitor interface {
	VisitRoot(n *Node)
	VisitDeclaration(n *Node)
	VisitExpression(n *Node)
	VisitStatement(n *Node)
	VisitType(n *Node)
	VisitCtor(n *Node)
	VisitAttribute(n *Node)
}

// VariantVisitor is an optional, more specific capability a Visitor may
// additionally implement. If present, Dispatch calls it first; if it
// returns true, the shared base-category method is also invoked (mirroring
// "calls the most-derived method and optionally the base-variant method for
// shared behavior", spec §4.1).
type VariantVisitor interface {
	VisitVariant(n *Node) (alsoBase bool)
}

// Dispatch performs the two-level double dispatch described in spec §4.1.
func Dispatch(n *Node, v Visitor) {
	alsoBase := true
	if vv, ok := v.(VariantVisitor); ok {
		alsoBase = vv.VisitVariant(n)
	}
	if !alsoBase {
		return
	}
	switch n.Category {
	case CategoryRoot:
		v.VisitRoot(n)
	case CategoryDeclaration:
		v.VisitDeclaration(n)
	case CategoryExpression:
		v.VisitExpression(n)
	case CategoryStatement:
		v.VisitStatement(n)
	case CategoryType:
		v.VisitType(n)
	case CategoryCtor:
		v.VisitCtor(n)
	case CategoryAttribute, CategoryAttributeSet:
		v.VisitAttribute(n)
	}
}

// BaseVisitor is an embeddable no-op implementation of Visitor; concrete
// visitors embed it and override only the categories they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitRoot(*Node)        {}
func (BaseVisitor) VisitDeclaration(*Node) {}
func (BaseVisitor) VisitExpression(*Node)  {}
func (BaseVisitor) VisitStatement(*Node)   {}
func (BaseVisitor) VisitType(*Node)        {}
func (BaseVisitor) VisitCtor(*Node)        {}
func (BaseVisitor) VisitAttribute(*Node)   {}
