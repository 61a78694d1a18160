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

// Role is the syntactic role of a program element within its immediate parent.
//
// The set of roles is closed. Elements in a role the classifier does not know
// how to make safe are marked unsafe.
type Role[E comparable] interface {
	role()
}

type (
	// MemberQualifier qualifies an access of Member.
	MemberQualifier[E comparable] struct{ Member E }

	// IdentityCheck is the operand of an identity or dynamic type check.
	// Result is the element bound to the checked value, if HasResult is set.
	IdentityCheck[E comparable] struct {
		Result    E
		HasResult bool
	}

	// VariableType is the declared type of Variables.
	VariableType[E comparable] struct{ Variables []E }

	// ReturnType is the type of the results at Indices of Routine.
	ReturnType[E comparable] struct {
		Routine E
		Indices []int
	}

	// ParameterType is the type of the parameters at Indices of Routine.
	ParameterType[E comparable] struct {
		Routine E
		Indices []int
	}

	// ArrayElement is the element type of the array type Array.
	ArrayElement[E comparable] struct{ Array E }

	// ArrayConstruction is the element type of an array construction.
	ArrayConstruction[E comparable] struct {
		Elements []E
		Value    E
	}

	// Conversion is the target type of a conversion of Operand, producing Result.
	Conversion[E comparable] struct{ Operand, Result E }

	// TypeArgument is the type argument at Index of Instantiation.
	TypeArgument[E comparable] struct {
		Instantiation E
		Index         int
	}

	// Argument is the argument at Index of Call.
	Argument[E comparable] struct {
		Call  E
		Index int
	}

	// Assigned is a value stored into Target.
	Assigned[E comparable] struct{ Target E }

	// Returned is the result at Index returned from Routine.
	Returned[E comparable] struct {
		Routine E
		Index   int
	}

	// Written is a write site of a variable, receiving Value.
	Written[E comparable] struct{ Value E }

	// Inert is a value that is discarded.
	Inert[E comparable] struct{}

	// Unresolved is an element whose target cannot be determined.
	Unresolved[E comparable] struct{}

	// Unknown is any other context.
	Unknown[E comparable] struct{}
)

func (MemberQualifier[E]) role()   {}
func (IdentityCheck[E]) role()     {}
func (VariableType[E]) role()      {}
func (ReturnType[E]) role()        {}
func (ParameterType[E]) role()     {}
func (ArrayElement[E]) role()      {}
func (ArrayConstruction[E]) role() {}
func (Conversion[E]) role()        {}
func (TypeArgument[E]) role()      {}
func (Argument[E]) role()          {}
func (Assigned[E]) role()          {}
func (Returned[E]) role()          {}
func (Written[E]) role()           {}
func (Inert[E]) role()             {}
func (Unresolved[E]) role()        {}
func (Unknown[E]) role()           {}
