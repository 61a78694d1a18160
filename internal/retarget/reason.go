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

//go:generate go tool stringer -type Reason -linecomment

// Reason is the local rule that marked an element unsafe.
type Reason uint8

const (
	// NoReason is the reason of unmarked elements.
	NoReason Reason = iota // -

	// ReasonMember means a member is accessed that the supertype does not have.
	ReasonMember // mem

	// ReasonIdentity means the element is subject to an identity or type check.
	ReasonIdentity // idc

	// ReasonUnresolved means a reference could not be resolved.
	ReasonUnresolved // unr

	// ReasonDefault means the context is not known to be safe.
	ReasonDefault // def

	// ReasonFunctionValue means a routine is used other than by calling it.
	ReasonFunctionValue // fun

	// ReasonFlow means a value flows into a slot the supertype cannot fill.
	ReasonFlow // flo

	// ReasonLookup means an external lookup failed.
	ReasonLookup // lkp
)
