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
	"fmt"

	"github.com/coral-lang/astcore/pkg/ast"
	"github.com/coral-lang/astcore/pkg/types"
)

// Builder is the minimal capability an operator's SignatureFunc/Factory
// needs: access to the root scope's named types (spec §4.3 "a later init(ctx)
// pass fills in each operator's signature... which may reference types that
// must exist in the root scope").
type Builder struct {
	// Named resolves a root-scope type declaration by its fully-qualified
	// name (e.g. "int64", "string"); operator signatures reference these
	// instead of constructing primitives ad hoc, so a single change to the
	// root scope's type table propagates everywhere.
	Named func(name string) *types.Type
}

// SignatureFunc computes an operator's signature lazily, given a Builder;
// used when the signature references named root-scope types that might not
// exist yet at registration time.
type SignatureFunc func(b Builder) Signature

// Signature is an operator's result type, operand list, priority and
// documentation (spec §3 Operators).
type Signature struct {
	Result   types.Qualified
	Operands []types.Operand
	Priority Priority
	DocNS    string
	Doc      string
}

// ResultFunc computes a signature's result type dynamically from the
// matched operand expressions (spec §3: "result qualified type (possibly
// computed dynamically)"). Most operators don't need this and leave it nil,
// in which case Signature.Result is used as-is.
type ResultFunc func(operands []*ast.Node) (types.Qualified, error)

// Factory instantiates a resolved-operator node once operands have been
// matched and (if needed) coerced. It may fail on structurally invalid
// operands beyond type checking (spec §4.3).
type Factory func(b Builder, operands []*ast.Node, meta ast.Meta) (*ast.Node, error)

// Operator is a single, stateless registry entry (spec §3 Operators).
type Operator struct {
	Kind       Kind
	MethodName string // set only for Kind == MemberCall

	Namespace string // doc namespace, also used in debug logging
	ClassName string // demangled class name, for debug logging parity with the teacher's C++ source

	sigFunc    SignatureFunc
	signature  Signature
	resultFunc ResultFunc
	factory    Factory

	// OriginDecl links a synthesized Call-kind operator back to the
	// Decl.Function node it was generated from (spec §4.5.3 step 1: user
	// function declarations are matched through the same cascade as
	// registered operators). Nil for every operator the registry holds
	// directly. Used by the resolver to locate auto parameters to infer
	// (spec §4.5.7).
	OriginDecl *ast.Node
}

// NewStatic creates an operator whose signature is known up front;
// Registry.Register registers it.
func NewStatic(k Kind, sig Signature, factory Factory) *Operator {
	return &Operator{Kind: k, signature: sig, factory: factory}
}

// NewLazy creates an operator whose signature must be computed from
// root-scope types during Init.
func NewLazy(k Kind, sigFunc SignatureFunc, factory Factory) *Operator {
	return &Operator{Kind: k, sigFunc: sigFunc, factory: factory}
}

// WithMethodName marks a MemberCall operator with the method name it binds
// (spec §4.3 "by_method(id) returns all member-call operators whose second
// operand is a type-member selector matching id").
func (o *Operator) WithMethodName(name string) *Operator {
	o.MethodName = name
	return o
}

// WithResultFunc attaches a dynamic result-type computation.
func (o *Operator) WithResultFunc(f ResultFunc) *Operator {
	o.resultFunc = f
	return o
}

// WithDoc sets the documentation namespace/string.
func (o *Operator) WithDoc(ns, doc string) *Operator {
	o.Namespace = ns
	o.Doc = doc
	return o
}

// Init evaluates a lazy signature against b; a no-op for static operators.
// Safe to call more than once (idempotent), matching "init may be called
// again but registration must not" (spec §5).
func (o *Operator) Init(b Builder) {
	if o.sigFunc != nil {
		o.signature = o.sigFunc(b)
	}
}

// Signature returns the operator's (already-Init'd) signature.
func (o *Operator) Signature() Signature { return o.signature }

// Operands returns the operand list.
func (o *Operator) Operands() []types.Operand { return o.signature.Operands }

// Priority returns the operator's matching priority.
func (o *Operator) Priority() Priority { return o.signature.Priority }

// Result computes the operator's result type, dynamically if a ResultFunc
// was supplied, otherwise from the static signature.
func (o *Operator) Result(operands []*ast.Node) (types.Qualified, error) {
	if o.resultFunc != nil {
		return o.resultFunc(operands)
	}
	return o.signature.Result, nil
}

// Instantiate builds a resolved-operator node for the matched operands.
func (o *Operator) Instantiate(b Builder, operands []*ast.Node, meta ast.Meta) (*ast.Node, error) {
	return o.factory(b, operands, meta)
}

// Prototype renders a human-readable signature, used in ambiguity error
// messages (spec §4.5.3 "listing each resolved candidate's printed
// prototype").
func (o *Operator) Prototype() string {
	s := fmt.Sprintf("%s(", o.Kind)
	for i, op := range o.signature.Operands {
		if i > 0 {
			s += ", "
		}
		if op.Name != "" {
			s += op.Name + ": "
		}
		s += op.Type.String()
		if op.Optional {
			s += "?"
		}
	}
	return s + fmt.Sprintf(") -> %s", o.signature.Result)
}

// ResolvedOperatorPayload is the ast.Node.Payload for a
// VariantExprResolvedOperator node: the operator that matched and the final
// (possibly rewritten) operand expressions.
type ResolvedOperatorPayload struct {
	Operator *Operator
	Operands []*ast.Node
}
