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

// Package validator implements spec §4.6: it runs before and after every
// resolver pass, collects the errors attached to nodes during the walk, and
// reports only the highest-priority tier actually present, deduplicated by
// (message, location) — the same priority-filtering discipline the teacher
// applies to its query-engine analyzer errors (sql/analyzer/error.go), here
// generalized into the one place spec §7 describes as "avoiding showering
// users with cascading diagnostics".
package validator

import (
	"sort"

	"github.com/coral-lang/astcore/pkg/ast"
)

// Report is one deduplicated, priority-filtered diagnostic surfaced to the
// caller of Pre/Post (spec §4.6, P6).
type Report struct {
	Message  string
	Location ast.Location
}

func (r Report) String() string {
	return r.Location.String() + ": " + r.Message
}

// Pre runs the structural invariant checks of spec §4.6 ("Pre-validation
// enforces structural invariants that do not require resolution") and
// reports the resulting errors. Call before the first resolver pass of a
// process_ast iteration.
func Pre(root *ast.Node) []Report {
	checkStructural(root)
	return collectAndReport(root)
}

// Post runs the resolution-completeness checks of spec §4.6
// ("Post-validation enforces resolution completeness") and reports the
// resulting errors, combined with anything the resolver itself attached
// during the pass just completed.
func Post(root *ast.Node) []Report {
	checkCompleteness(root)
	return collectAndReport(root)
}

// Failed reports whether reports is non-empty — spec §4.6's "If any error
// is reported, the top-level process_ast call returns failure."
func Failed(reports []Report) bool { return len(reports) > 0 }

// collectAndReport walks root pre-order, honoring PruneWalk, gathering
// every node's error list, then filters to the single highest-priority
// tier present and deduplicates by (message, location) (spec §4.6, P6).
func collectAndReport(root *ast.Node) []Report {
	var all []ast.Error
	ast.Walk(root, ast.WalkOptions{Order: ast.PreOrder}, func(n *ast.Node) bool {
		all = append(all, n.Errors...)
		return true
	})
	if len(all) == 0 {
		return nil
	}

	tier := ast.Low
	for _, e := range all {
		if e.Priority > tier {
			tier = e.Priority
		}
	}

	seen := map[string]bool{}
	var out []Report
	for _, e := range all {
		if e.Priority != tier {
			continue
		}
		key := e.Message + "@" + e.Location.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Report{Message: e.Message, Location: e.Location})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Message < out[j].Message })
	return out
}
