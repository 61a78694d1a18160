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

// Package gosource provides the Go source environment of the retargeting analysis.
//
// Program elements are expressions, declared objects and a few synthetic
// positions, like the implicit type of a variable declared without one. Roles
// are derived from the parent edge of an element's syntax node, looking
// through parentheses.
//
// In Go terms the class is a named type T or its pointer *T, and the supertype
// is an interface implemented by it. Positions whose callers or implementations
// may live outside the analyzed package, like exported routines, methods with
// exported names and exported package-level variables, always keep their type.
package gosource
