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
	"fmt"

	"fillmore-labs.com/supertype/internal/graph"
)

// Result is the outcome of [Analyze]. It is read-only.
type Result[E comparable] struct {
	usages  []E
	graph   *graph.Graph[E]
	reasons map[graph.NodeID]Reason
}

// Safe reports whether usage can be rewritten to reference the supertype.
// Querying an element that was never classified is an [InvariantError].
func (r *Result[E]) Safe(usage E) (bool, error) {
	id, ok := r.graph.Lookup(usage)
	if !ok {
		return false, &InvariantError{Op: "safe", Detail: fmt.Sprintf("element %v was never classified", usage)}
	}

	return !r.graph.Marked(id), nil
}

// Unsafe returns the usages that are not safe to retarget, in input order.
func (r *Result[E]) Unsafe() []E {
	var unsafe []E
	for _, u := range r.usages {
		if id, ok := r.graph.Lookup(u); ok && r.graph.Marked(id) {
			unsafe = append(unsafe, u)
		}
	}

	return unsafe
}

// Step is an element on the path of an unsafe mark.
type Step[E comparable] struct {
	Element E
	Reason  Reason // set on the seed only
}

// Explain returns the chain of elements the unsafe mark of usage was propagated
// along, starting with usage and ending with the seed. It is empty for safe usages.
func (r *Result[E]) Explain(usage E) ([]Step[E], error) {
	id, ok := r.graph.Lookup(usage)
	if !ok {
		return nil, &InvariantError{Op: "explain", Detail: fmt.Sprintf("element %v was never classified", usage)}
	}

	path := r.graph.Path(id)
	steps := make([]Step[E], len(path))

	for i, n := range path {
		steps[i].Element = r.graph.Key(n)
	}

	if len(path) > 0 {
		seed := path[len(path)-1]

		reason, ok := r.reasons[seed]
		if !ok {
			return nil, &InvariantError{Op: "explain", Detail: fmt.Sprintf("seed %v has no reason", r.graph.Key(seed))}
		}

		steps[len(steps)-1].Reason = reason
	}

	return steps, nil
}

// Stats reports the size of the dependency graph.
func (r *Result[E]) Stats() (nodes, edges, seeds int) {
	return r.graph.Len(), r.graph.EdgeCount(), len(r.graph.Seeds())
}
