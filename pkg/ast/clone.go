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

// Clone makes a shallow copy of n: children are shared with the original
// (spec §3 "Cloning is shallow (children are shared)"), identity is fresh,
// and the clone starts detached (no parent).
func (n *Node) Clone() *Node {
	clone := *n
	clone.rid = allocRID()
	clone.parent = nil
	clone.children = append([]*Node(nil), n.children...)
	clone.Errors = append([]Error(nil), n.Errors...)
	return &clone
}

// DeepClone produces an isomorphic tree with fresh identity on every
// interior node (spec §3 "deep cloning produces an isomorphic tree with
// fresh identity on every interior node"). Scopes are not copied — the
// caller is expected to rebuild them (scope builder is idempotent and
// rebuildable from scratch per spec §4.4).
func (n *Node) DeepClone() *Node {
	if n == nil {
		return nil
	}
	clone := n.Clone()
	clone.scope = nil
	for i, c := range n.children {
		if c == nil {
			continue
		}
		cc := c.DeepClone()
		clone.SetChild(i, cc)
	}
	return clone
}
