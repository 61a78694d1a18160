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

package graph

// Propagate spreads marks backwards along the edges until a fixpoint is reached:
// if m → n and n is marked, m gets marked too.
//
// The result is the set of nodes reachable from the seeds over predecessor edges,
// independent of the traversal order. Propagate returns the number of frontier
// pops, which never exceeds [Graph.Len].
func (g *Graph[K]) Propagate() int {
	// The queue never holds a node twice: seeds are distinct, and only
	// unmarked nodes are appended.
	g.queue = append(g.queue[:0], g.seeds...)

	for head := 0; head < len(g.queue); head++ {
		n := g.queue[head]

		for _, m := range g.nodes[n].pred {
			dependent := &g.nodes[m]
			if dependent.mark {
				continue
			}

			dependent.mark = true
			dependent.cause = n

			g.queue = append(g.queue, m)
		}
	}

	return len(g.queue)
}

// Path returns the chain of nodes from id to the seed its mark originates from.
// The chain starts with id and ends with the seed. It is empty for unmarked nodes.
func (g *Graph[K]) Path(id NodeID) []NodeID {
	if !g.nodes[id].mark {
		return nil
	}

	path := []NodeID{id}
	for n := g.nodes[id].cause; n.Valid(); n = g.nodes[n].cause {
		path = append(path, n)
	}

	return path
}
