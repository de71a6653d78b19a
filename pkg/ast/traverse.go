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

// Order selects pre-order or post-order traversal.
type Order uint8

const (
	PreOrder Order = iota
	PostOrder
)

// WalkOptions configures a traversal.
type WalkOptions struct {
	Order Order
	// IncludeNilSlots yields nil child slots too, passing nil to the
	// VisitFunc (needed by dumping/rendering so positional gaps are visible;
	// spec §4.1 "Null child slots are skipped unless explicitly requested").
	IncludeNilSlots bool
}

// VisitFunc is called once per reachable node. Returning false stops the
// walk early (but is not an error).
type VisitFunc func(n *Node) bool

// Walk traverses the tree rooted at n honoring PruneWalk:
//   - pre-order: visits n, then (unless n.PruneWalk) descends into children.
//   - post-order: if n.PruneWalk, skips both children and n itself.
func Walk(n *Node, opts WalkOptions, visit VisitFunc) {
	walk(n, opts, visit)
}

func walk(n *Node, opts WalkOptions, visit VisitFunc) bool {
	if n == nil {
		if opts.IncludeNilSlots {
			return visit(nil)
		}
		return true
	}

	if opts.Order == PreOrder {
		if !visit(n) {
			return false
		}
		if n.PruneWalk {
			return true
		}
		for _, c := range n.children {
			if c == nil && !opts.IncludeNilSlots {
				continue
			}
			if !walk(c, opts, visit) {
				return false
			}
		}
		return true
	}

	// Post-order.
	if n.PruneWalk {
		return true
	}
	for _, c := range n.children {
		if c == nil && !opts.IncludeNilSlots {
			continue
		}
		if !walk(c, opts, visit) {
			return false
		}
	}
	return visit(n)
}

// PreOrderAll returns every reachable node in pre-order, honoring PruneWalk,
// skipping nil slots.
func PreOrderAll(root *Node) []*Node {
	var out []*Node
	Walk(root, WalkOptions{Order: PreOrder}, func(n *Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

// PostOrderAll returns every reachable node in post-order, honoring
// PruneWalk, skipping nil slots.
func PostOrderAll(root *Node) []*Node {
	var out []*Node
	Walk(root, WalkOptions{Order: PostOrder}, func(n *Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

// AncestorScopes climbs the parent chain from n (exclusive) yielding every
// scope encountered, honoring InheritScope: a node with InheritScope=false
// causes the climb to jump directly to the enclosing module scope, except
// when that non-inheriting node is itself the type payload of a type
// declaration, in which case the declaration's own scope is consulted first
// (spec §3 Scopes, "one-level leniency").
func AncestorScopes(n *Node) []Scope {
	var out []Scope
	cur := n.parent
	for cur != nil {
		if cur.HasScope() {
			out = append(out, cur.Scope())
		}
		if !cur.InheritScope {
			if leniency := typeDeclLeniencyScope(cur); leniency != nil {
				out = append(out, leniency)
			}
			return append(out, moduleScopeOf(cur)...)
		}
		cur = cur.parent
	}
	return out
}

// typeDeclLeniencyScope returns the scope of cur's parent when cur is the
// type payload of a Decl.Type node (the "one-level leniency" exception).
func typeDeclLeniencyScope(cur *Node) Scope {
	p := cur.parent
	if p != nil && p.Category == CategoryDeclaration && p.Variant == VariantDeclType && p.HasScope() {
		return p.Scope()
	}
	return nil
}

// moduleScopeOf walks up from cur (exclusive) to the nearest enclosing
// Module node and returns its scope, if any.
func moduleScopeOf(cur *Node) []Scope {
	walker := cur.parent
	for walker != nil {
		if walker.Variant == VariantModule && walker.HasScope() {
			return []Scope{walker.Scope()}
		}
		walker = walker.parent
	}
	return nil
}

// Root follows parent links to the tree root. Spec P2: this must terminate.
func Root(n *Node) *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Depth returns the number of parent hops from n to the root.
func Depth(n *Node) int {
	d := 0
	for cur := n; cur.parent != nil; cur = cur.parent {
		d++
	}
	return d
}
