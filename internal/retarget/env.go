// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package retarget

import (
	"context"
	"iter"
)

// Env bundles the collaborators the analysis queries.
type Env[E comparable] struct {
	Syntax    Syntax[E]
	Resolver  Resolver[E]
	Usages    UsageSearch[E]
	Hierarchy InheritanceQuery[E]
}

// Syntax describes program elements and their syntactic context.
type Syntax[E comparable] interface {
	// Role returns the role of e in its immediate parent.
	Role(e E) Role[E]

	// Classifiable reports whether e can be classified. Terminal elements, like
	// declarations outside the edited scope, are never classified.
	Classifiable(e E) bool

	// Slot returns the declared type position of a variable, parameter or result.
	// A type expression is its own slot.
	Slot(decl E) (Slot[E], bool)

	// Initializer returns the initial value of a variable, if it has one.
	Initializer(variable E) (E, bool)

	// Parameters returns the declared parameters of a routine and whether the
	// last one accepts a variable number of arguments.
	Parameters(routine E) (params []E, variadic bool)

	// Results returns the declared results of a routine.
	Results(routine E) []E

	// ReturnValues returns the values returned as result index in the body of routine.
	ReturnValues(routine E, index int) []E

	// Call returns the call site for a use of a routine. ok is false when the
	// routine is used other than by calling it.
	Call(use E) (site CallSite[E], ok bool)

	// InheritedPositions returns the positions in inherited member signatures
	// that are typed by the type argument at index of instantiation.
	InheritedPositions(instantiation E, index int) []E
}

// Slot is the declared type position of a variable, parameter or result.
type Slot[E comparable] struct {
	// Type is the declared type.
	Type E

	// Tracked reports whether Type is itself a usage of the candidate class.
	Tracked bool
}

// CallSite is a call of a routine.
type CallSite[E comparable] struct {
	Call    E
	Args    []E
	Results []E // the values of the call's results, by index
}

// Resolver maps references to the declarations they name.
type Resolver[E comparable] interface {
	// Resolve returns the routine called by call.
	Resolve(ctx context.Context, call E) (E, bool)
}

// UsageSearch finds references to declarations.
type UsageSearch[E comparable] interface {
	// FindUsages produces every reference to decl. An error ends the sequence.
	FindUsages(ctx context.Context, decl E) iter.Seq2[E, error]
}

// InheritanceQuery answers questions about the type hierarchy.
type InheritanceQuery[E comparable] interface {
	// IsSubtype reports whether a value of candidate can be used as base.
	IsSubtype(candidate, base E) bool

	// HasMember reports whether member is available on class.
	HasMember(class, member E) bool

	// OverridingRoutines returns the routines overriding or implementing routine.
	OverridingRoutines(routine E) []E

	// OverriddenRoutines returns the routines routine overrides or implements.
	OverriddenRoutines(routine E) []E
}
