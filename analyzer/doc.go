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

// Package analyzer implements the supertype static analysis pass.
//
// # Overview
//
// Supertype finds usages of a concrete type that can soundly reference an
// interface the type implements. A usage is safe when every value flowing
// through it is only used through the interface's methods.
//
// # Example
//
// With the target "square=shape":
//
//	func total(s *square) float64 {  // *square is only used through shape
//	    return s.area()
//	}
//
// After applying supertype's suggested fix:
//
//	func total(s shape) float64 {
//	    return s.area()
//	}
//
// # Restrictions
//
// The analysis is conservative. A usage keeps its type when a value reaches
//
//   - a member the interface does not declare,
//   - a type assertion, type switch or comparison (unless identity checks are allowed),
//   - a routine that cannot be resolved, or a routine used as a value,
//   - a position visible outside the package, like exported routines and variables,
//   - a nil or zero value (unless values are assumed to be non-nil),
//   - any other context the analysis does not model.
package analyzer
