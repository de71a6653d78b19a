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

// Package ast implements the polymorphic AST node graph: shared-ownership
// children, non-owning parent back-links, per-node metadata, error lists and
// an optional lexical scope attached to scope-introducing nodes.
package ast

import (
	"fmt"
	"sync/atomic"
)

// Priority tiers an Error (spec §3 Errors).
type Priority uint8

const (
	Low Priority = iota
	Normal
	High
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Location is a source position, set by the parse plugin that produced a
// node. The core never interprets it beyond carrying it on errors.
type Location struct {
	Path        string
	Line, Col   int
	EndLine     int
	EndCol      int
}

func (l Location) String() string {
	if l.Path == "" {
		return "<no-location>"
	}
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Col)
}

// Error is a single diagnostic attached to a node (spec §3/§7).
type Error struct {
	Message  string
	Location Location
	Priority Priority
	Context  []string
}

// Meta carries source location, free-form comments and documentation.
type Meta struct {
	Location Location
	Comments []string
	Doc      string
}

// Scope is the minimal surface pkg/ast needs from pkg/scope, kept as an
// interface here so the node graph does not import the scope builder
// (scopes are attached by pkg/scope, consulted by pkg/resolver).
type Scope interface {
	Declare(id string, decl *Node)
	Lookup(id string) []*Node
	Clear()
}

var nextRID int64

func allocRID() int64 {
	return atomic.AddInt64(&nextRID, 1)
}

// Node is a single AST element. Children are shared-ownership handles
// (plain pointers here; the compilation context owns the arena for the
// lifetime of a build, per design note §9's "arena of nodes" recommendation
// for systems-language ports — Go's GC lets us use direct pointers and get
// the same shared-ownership semantics for free).
type Node struct {
	rid int64

	Category Category
	Variant  Variant

	children []*Node
	parent   *Node

	Meta   Meta
	Errors []Error

	scope       Scope
	PruneWalk   bool
	InheritScope bool

	// Payload holds variant-specific data. Concrete packages (operator,
	// types, resolver) type-assert Payload to the struct they expect for
	// a given Variant; this is the "inner tag" half of the two-level tag
	// design (outer = Category/Variant, inner = Payload).
	Payload interface{}

	// Decl-only fields; zero value is meaningless outside CategoryDeclaration.
	ID         string
	Linkage    Linkage
	CanonicalID string
}

// New creates a detached node of the given category/variant with a fresh
// identity. InheritScope defaults to true, matching the common case; nodes
// that need inherit_scope = false set it explicitly (spec §3 Scopes).
func New(cat Category, v Variant) *Node {
	return &Node{
		rid:          allocRID(),
		Category:     cat,
		Variant:      v,
		InheritScope: true,
	}
}

// RID is the node's process-local identity, used by cycle-breaking
// algorithms (pkg/types.IsResolved) and never serialized or compared across
// processes.
func (n *Node) RID() int64 { return n.rid }

// Parent returns the non-owning parent back-link, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's child slots, including nil slots (positional
// semantics are preserved — spec §3 "Child positional semantics are stable
// for the lifetime of a node").
func (n *Node) Children() []*Node { return n.children }

// NonNilChildren returns only the occupied child slots, in order.
func (n *Node) NonNilChildren() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// AddChild appends a new child slot, wiring the parent link.
func (n *Node) AddChild(c *Node) {
	n.children = append(n.children, c)
	if c != nil {
		c.parent = n
	}
}

// SetChild rewires slot i to point at m, clearing the previous occupant's
// parent link and wiring m's, atomically from the caller's point of view
// (spec invariant, §4.1 "Invariant (traversal)").
func (n *Node) SetChild(i int, m *Node) {
	for len(n.children) <= i {
		n.children = append(n.children, nil)
	}
	if old := n.children[i]; old != nil && old.parent == n {
		old.parent = nil
	}
	n.children[i] = m
	if m != nil {
		m.parent = n
	}
}

// ReplaceChild rewires the slot currently holding `old` to hold `replacement`.
// It is a no-op if old is not a direct child of n.
func (n *Node) ReplaceChild(old, replacement *Node) bool {
	for i, c := range n.children {
		if c == old {
			n.SetChild(i, replacement)
			return true
		}
	}
	return false
}

// RemoveChildren clears the parent link of every child in [begin,end) and
// removes those slots from the child list.
func (n *Node) RemoveChildren(begin, end int) {
	if begin < 0 {
		begin = 0
	}
	if end > len(n.children) {
		end = len(n.children)
	}
	if begin >= end {
		return
	}
	for _, c := range n.children[begin:end] {
		if c != nil && c.parent == n {
			c.parent = nil
		}
	}
	n.children = append(n.children[:begin], n.children[end:]...)
}

// ReplaceChildren replaces the entire child list.
func (n *Node) ReplaceChildren(nodes []*Node) {
	for _, c := range n.children {
		if c != nil && c.parent == n {
			c.parent = nil
		}
	}
	n.children = append([]*Node(nil), nodes...)
	for _, c := range n.children {
		if c != nil {
			c.parent = n
		}
	}
}

// Detach clears n's parent link without touching the parent's child slot
// (callers that also need the slot cleared should use ReplaceChild/SetChild
// from the parent side).
func (n *Node) Detach() { n.parent = nil }

// ChildrenOfVariant returns the subset of direct children matching v.
func (n *Node) ChildrenOfVariant(v Variant) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c != nil && c.Variant == v {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenOfCategory returns the subset of direct children matching cat.
func (n *Node) ChildrenOfCategory(cat Category) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c != nil && c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// Scope returns the node's attached lexical scope, or nil if none.
func (n *Node) Scope() Scope { return n.scope }

// SetScope attaches (or clears, with nil) a lexical scope to this node.
func (n *Node) SetScope(s Scope) { n.scope = s }

// HasScope reports whether a scope is attached (the node is scope-introducing
// and the scope builder has run).
func (n *Node) HasScope() bool { return n.scope != nil }

// AddError appends a diagnostic to this node.
func (n *Node) AddError(msg string, prio Priority, ctx ...string) {
	n.Errors = append(n.Errors, Error{
		Message:  msg,
		Location: n.Meta.Location,
		Priority: prio,
		Context:  ctx,
	})
}

// HasErrors reports whether this node (not its subtree) carries errors.
func (n *Node) HasErrors() bool { return len(n.Errors) > 0 }

func (n *Node) String() string {
	return fmt.Sprintf("%s/%s#%d", n.Category, n.Variant, n.rid)
}
