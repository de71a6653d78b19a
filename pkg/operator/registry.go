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

package operator

import (
	"github.com/coral-lang/astcore/pkg/debug"
)

// Registry is a catalog of operator definitions, keyed by kind and by
// method name (spec §4.3). Design note §9 ("Process-wide operator registry
// ⇒ per-context registry") moves what the source treats as a process
// singleton into a value owned by the compilation context; a package-level
// Default is kept for callers (and tests) that want teacher-style global
// registration via init().
type Registry struct {
	byKind   map[Kind][]*Operator
	byMethod map[string][]*Operator
	all      []*Operator
}

func NewRegistry() *Registry {
	return &Registry{byKind: map[Kind][]*Operator{}, byMethod: map[string][]*Operator{}}
}

// Default is the process-wide registry operator definitions self-register
// into at package-init time, mirroring the teacher's function-registration
// pattern (sql/expression/function).
var Default = NewRegistry()

// Register adds op to the registry. Registration is a startup-time-only
// operation (spec §5): callers must not register after Init has run.
func (r *Registry) Register(op *Operator) {
	r.byKind[op.Kind] = append(r.byKind[op.Kind], op)
	if op.Kind == MemberCall && op.MethodName != "" {
		r.byMethod[op.MethodName] = append(r.byMethod[op.MethodName], op)
	}
	r.all = append(r.all, op)
}

// ByKind returns every operator of kind k.
func (r *Registry) ByKind(k Kind) []*Operator { return r.byKind[k] }

// ByMethod returns every member-call operator bound to method name id.
func (r *Registry) ByMethod(id string) []*Operator { return r.byMethod[id] }

// All returns every registered operator, for Init and debug dumping.
func (r *Registry) All() []*Operator { return r.all }

// Init evaluates every lazy signature against b and logs each registered
// operator to the operator-registry debug stream (spec §4.3 "Debug logging
// records every registered operator with its namespace, kind, and
// demangled class name").
func (r *Registry) Init(b Builder, streams *debug.Streams) {
	for _, op := range r.all {
		op.Init(b)
		if streams != nil {
			streams.Record(debug.OperatorRegistry, "registered operator kind=%s namespace=%q class=%q method=%q",
				op.Kind, op.Namespace, op.ClassName, op.MethodName)
		}
	}
}
