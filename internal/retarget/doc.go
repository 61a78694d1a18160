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

// Package retarget decides which usages of a class type can be rewritten to
// reference one of its supertypes.
//
// The analysis builds a dependency graph over program elements. Every element
// is classified by its syntactic [Role]: some roles require the exact type and
// seed an unsafe mark, others tie the element to related elements whose safety
// it shares. Marks are then propagated to a fixpoint, and a usage is safe to
// retarget iff it ends up unmarked.
//
// The engine is generic over the element type; an [Env] supplies syntax,
// resolution, usage search and hierarchy queries for a concrete language.
package retarget
