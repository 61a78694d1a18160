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

// Package graph implements the dependency graph of the retargeting analysis.
//
// Nodes live in an arena and are addressed by small integer indices. An edge
// from → to states that "from" must keep its exact type whenever "to" must.
// Marks are monotonic: once a node is marked, it stays marked.
package graph

import (
	"iter"
	"slices"
)

// NodeID addresses a node in a [Graph].
type NodeID int32

// None is the invalid [NodeID].
const None NodeID = -1

// Valid reports whether the id addresses a node.
func (n NodeID) Valid() bool {
	return n >= 0
}

type node[K comparable] struct {
	key   K
	succ  []NodeID // outgoing edges: this node depends on them
	pred  []NodeID // incoming edges: nodes depending on this one
	cause NodeID   // the node whose mark spread to this one, None for seeds
	mark  bool
}

// edgeKey packs a directed edge for duplicate detection.
type edgeKey uint64

func makeEdgeKey(from, to NodeID) edgeKey {
	return edgeKey(uint64(uint32(from))<<32 | uint64(uint32(to)))
}

// Graph is an arena of nodes keyed by program elements of type K.
//
// The graph only grows: there is no operation removing nodes, edges or marks.
type Graph[K comparable] struct {
	index map[K]NodeID
	nodes []node[K]
	edges map[edgeKey]struct{}
	seeds []NodeID

	// Reusable propagation frontier
	queue []NodeID
}

// New creates an empty [Graph], sized for approximately sizeHint nodes.
func New[K comparable](sizeHint int) *Graph[K] {
	return &Graph[K]{
		index: make(map[K]NodeID, sizeHint),
		nodes: make([]node[K], 0, sizeHint),
		edges: make(map[edgeKey]struct{}, 2*sizeHint),
	}
}

// Node returns the node for key, allocating an unmarked node if none exists yet.
// created reports whether the node was allocated by this call.
func (g *Graph[K]) Node(key K) (id NodeID, created bool) {
	if id, ok := g.index[key]; ok {
		return id, false
	}

	id = NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node[K]{key: key, cause: None})
	g.index[key] = id

	return id, true
}

// Lookup returns the node for key without allocating one.
func (g *Graph[K]) Lookup(key K) (NodeID, bool) {
	id, ok := g.index[key]
	return id, ok
}

// Key returns the program element of the node.
func (g *Graph[K]) Key(id NodeID) K {
	return g.nodes[id].key
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph[K]) EdgeCount() int {
	return len(g.edges)
}

// AddEdge adds the edge from → to. Adding an existing edge or a self loop is a no-op.
// It reports whether a new edge was added.
func (g *Graph[K]) AddEdge(from, to NodeID) bool {
	if from == to {
		return false
	}

	key := makeEdgeKey(from, to)
	if _, ok := g.edges[key]; ok {
		return false
	}
	g.edges[key] = struct{}{}

	g.nodes[from].succ = append(g.nodes[from].succ, to)
	g.nodes[to].pred = append(g.nodes[to].pred, from)

	return true
}

// Link adds a mutual constraint between a and b, i.e. the edges a → b and b → a.
func (g *Graph[K]) Link(a, b NodeID) {
	g.AddEdge(a, b)
	g.AddEdge(b, a)
}

// Mark seeds the node as unsafe. It reports whether the node was not marked before.
func (g *Graph[K]) Mark(id NodeID) bool {
	n := &g.nodes[id]
	if n.mark {
		return false
	}

	n.mark = true
	g.seeds = append(g.seeds, id)

	return true
}

// Marked reports whether the node is marked unsafe.
func (g *Graph[K]) Marked(id NodeID) bool {
	return g.nodes[id].mark
}

// Cause returns the node whose mark was propagated to id, or [None] when id
// is unmarked or a seed.
func (g *Graph[K]) Cause(id NodeID) NodeID {
	return g.nodes[id].cause
}

// Seeds returns the nodes marked directly, in marking order.
func (g *Graph[K]) Seeds() []NodeID {
	return slices.Clone(g.seeds)
}

// Successors returns the nodes id depends on.
func (g *Graph[K]) Successors(id NodeID) []NodeID {
	return slices.Clone(g.nodes[id].succ)
}

// Predecessors returns the nodes depending on id.
func (g *Graph[K]) Predecessors(id NodeID) []NodeID {
	return slices.Clone(g.nodes[id].pred)
}

// Edges iterates over all edges in insertion order of their source node.
func (g *Graph[K]) Edges() iter.Seq2[NodeID, NodeID] {
	return func(yield func(NodeID, NodeID) bool) {
		for i := range g.nodes {
			from := NodeID(i)
			for _, to := range g.nodes[i].succ {
				if !yield(from, to) {
					return
				}
			}
		}
	}
}

// All iterates over all node ids and their keys.
func (g *Graph[K]) All() iter.Seq2[NodeID, K] {
	return func(yield func(NodeID, K) bool) {
		for i := range g.nodes {
			if !yield(NodeID(i), g.nodes[i].key) {
				return
			}
		}
	}
}
