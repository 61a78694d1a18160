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

import "iter"

// Edges iterates over the dependency edges of the analysis graph.
func (r *Result[E]) Edges() iter.Seq2[E, E] {
	return func(yield func(E, E) bool) {
		for from, to := range r.graph.Edges() {
			if !yield(r.graph.Key(from), r.graph.Key(to)) {
				return
			}
		}
	}
}

// Marked reports whether an element of the graph is marked.
func (r *Result[E]) Marked(e E) bool {
	id, ok := r.graph.Lookup(e)

	return ok && r.graph.Marked(id)
}

// SeedReasons returns the reasons of all seeds.
func (r *Result[E]) SeedReasons() map[E]Reason {
	reasons := make(map[E]Reason, len(r.reasons))
	for _, id := range r.graph.Seeds() {
		reasons[r.graph.Key(id)] = r.reasons[id]
	}

	return reasons
}
