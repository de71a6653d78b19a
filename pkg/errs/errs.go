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

// Package errs catalogs every user-visible error category from spec §7 as a
// go-errors.v1 Kind, the way the teacher (auth/auth.go) builds its
// permission errors — one Kind per failure shape, instantiated with
// New(args...) at the call site and matched with Is() by callers that care.
package errs

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// Resolution failures (spec §7, Normal/High).
	ErrUnknownIdentifier = errors.NewKind("unknown identifier %q")
	ErrAmbiguousOverload = errors.NewKind("ambiguous overload for %s: %s")
	ErrNoMatchingOperator = errors.NewKind("no operator matches %s for operand types (%s)")
	ErrUnresolvedRemains = errors.NewKind("%s node at %s was never resolved")
	ErrInconsistentAutoInference = errors.NewKind("parameter %q inferred as both %s and %s across call sites")

	// Coercion failures (Normal).
	ErrOperandCoercion = errors.NewKind("could not coerce operand %q (%s) to %s")
	ErrReturnCoercion  = errors.NewKind("returned value of type %s incompatible with declared result type %s")
	ErrCtorFieldMismatch = errors.NewKind("constructor field %q not found on type %s")
	ErrCtorMissingField  = errors.NewKind("constructor for %s is missing required field %q")

	// Structural invariants (High).
	ErrWrongChildKind = errors.NewKind("expected %s as child %d of %s, found %s")
	ErrMethodWithoutNamespace = errors.NewKind("struct-linkage function %q has no namespaced id")

	// Import failures (Normal).
	ErrModuleNotFound   = errors.NewKind("could not find module %q in search path")
	ErrModuleNameMismatch = errors.NewKind("file %q declares module %q, expected %q")

	// Internal errors (fatal — never user-visible, only ever hit a bug).
	ErrFixedPointDidNotConverge = errors.NewKind("resolver did not reach a fixed point after %d iterations")
	ErrUnreachableVariant       = errors.NewKind("unreachable variant %v in %s")
)

// Fatal panics with an internal-error Kind instance. It is the one place
// the core ever panics; everything else reports through the validator
// (design note §9, "Exceptions for internal errors").
func Fatal(kind *errors.Kind, args ...interface{}) {
	panic(kind.New(args...))
}

// Recover turns a panic raised by Fatal back into an error, for the one
// caller (pkg/compiler.Context.Process) allowed to catch it at the process
// boundary.
func Recover(target *error) {
	if r := recover(); r != nil {
		if err, ok := r.(error); ok {
			*target = err
			return
		}
		panic(r)
	}
}
