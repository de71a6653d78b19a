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

// TreeIdentity reports whether a rewrite actually produced a different tree,
// the way sql/transform and sql/visit report NewTree/SameTree in the teacher
// corpus. Rewrite rules that leave a node untouched return SameTree so the
// fixed-point driver (pkg/compiler) can tell "nothing changed this pass"
// without a deep comparison.
type TreeIdentity bool

const (
	SameTree TreeIdentity = false
	NewTree  TreeIdentity = true
)

// RewriteFunc rewrites a single node, reporting whether it changed it.
type RewriteFunc func(n *Node) (*Node, TreeIdentity, error)

// TransformUp rewrites every node post-order: children are rewritten (and
// their parent slots updated in place) before the parent itself is offered
// to f. It returns the (possibly replaced) root and NewTree if anything in
// the subtree changed.
func TransformUp(n *Node, f RewriteFunc) (*Node, TreeIdentity, error) {
	if n == nil {
		return nil, SameTree, nil
	}
	if n.PruneWalk {
		return f(n)
	}

	changed := SameTree
	for i, c := range n.children {
		if c == nil {
			continue
		}
		nc, ci, err := TransformUp(c, f)
		if err != nil {
			return nil, SameTree, err
		}
		if ci == NewTree {
			n.SetChild(i, nc)
			changed = NewTree
		}
	}

	newN, ni, err := f(n)
	if err != nil {
		return nil, SameTree, err
	}
	if ni == NewTree {
		changed = NewTree
	}
	return newN, changed, nil
}

// TransformPostOrder applies f to every node post-order for side effects
// only (no rewriting). At a PruneWalk node f runs on the node itself but its
// children are not visited. It is the shape the scope builder uses.
func TransformPostOrder(n *Node, f func(n *Node) error) error {
	if n == nil {
		return nil
	}
	if n.PruneWalk {
		return f(n)
	}
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if err := TransformPostOrder(c, f); err != nil {
			return err
		}
	}
	return f(n)
}
