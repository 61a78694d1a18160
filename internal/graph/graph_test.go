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

package graph_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/supertype/internal/graph"
)

func TestNode(t *testing.T) {
	t.Parallel()

	g := New[string](0)

	a, created := g.Node("a")
	require.True(t, created)

	again, created := g.Node("a")
	require.False(t, created)
	assert.Equal(t, a, again)

	b, _ := g.Node("b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, "b", g.Key(b))

	_, ok := g.Lookup("c")
	assert.False(t, ok)
	assert.Equal(t, 2, g.Len(), "Lookup must not allocate")
}

func TestAddEdgeIdempotent(t *testing.T) {
	t.Parallel()

	g := New[string](0)
	a, _ := g.Node("a")
	b, _ := g.Node("b")

	assert.True(t, g.AddEdge(a, b))
	assert.False(t, g.AddEdge(a, b))
	assert.False(t, g.AddEdge(a, a), "Self loops are ignored")

	g.Link(a, b)
	g.Link(b, a)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []NodeID{b}, g.Successors(a))
	assert.Equal(t, []NodeID{a}, g.Predecessors(b))
}

func TestMarkIdempotent(t *testing.T) {
	t.Parallel()

	g := New[string](0)
	a, _ := g.Node("a")

	assert.True(t, g.Mark(a))
	assert.False(t, g.Mark(a))
	assert.Equal(t, []NodeID{a}, g.Seeds())
	assert.True(t, g.Marked(a))
	assert.Equal(t, None, g.Cause(a))
}

func TestPropagate(t *testing.T) {
	t.Parallel()

	// d → c → b → a, e → a, f isolated
	g := New[string](0)
	ids := make(map[string]NodeID)
	for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
		ids[k], _ = g.Node(k)
	}

	g.AddEdge(ids["d"], ids["c"])
	g.AddEdge(ids["c"], ids["b"])
	g.AddEdge(ids["b"], ids["a"])
	g.AddEdge(ids["e"], ids["a"])

	g.Mark(ids["b"])
	pops := g.Propagate()

	assert.Equal(t, 3, pops)

	for k, want := range map[string]bool{"a": false, "b": true, "c": true, "d": true, "e": false, "f": false} {
		assert.Equal(t, want, g.Marked(ids[k]), "Node %s", k)
	}

	assert.Equal(t, []NodeID{ids["d"], ids["c"], ids["b"]}, g.Path(ids["d"]))
	assert.Empty(t, g.Path(ids["a"]))
}

func TestPropagateCycle(t *testing.T) {
	t.Parallel()

	g := New[int](0)
	for i := range 4 {
		g.Node(i)
	}

	for i := range 4 {
		g.Link(NodeID(i), NodeID((i+1)%4))
	}

	g.Mark(2)
	assert.Equal(t, 4, g.Propagate())

	for i := range 4 {
		assert.True(t, g.Marked(NodeID(i)))
	}

	path := g.Path(0)
	require.NotEmpty(t, path)
	assert.Equal(t, NodeID(2), path[len(path)-1])
}

type edge struct{ from, to int }

// randomGraph returns random edges and seeds over n nodes.
func randomGraph(r *rand.Rand, n int) ([]edge, []int) {
	edges := make([]edge, r.IntN(3*n))
	for i := range edges {
		edges[i] = edge{r.IntN(n), r.IntN(n)}
	}

	seeds := make([]int, r.IntN(4))
	for i := range seeds {
		seeds[i] = r.IntN(n)
	}

	return edges, seeds
}

// build inserts nodes, edges and seeds in the given order and propagates.
func build(t *testing.T, nodes []int, edges []edge, seeds []int) (*Graph[int], int) {
	t.Helper()

	g := New[int](len(nodes))
	for _, k := range nodes {
		g.Node(k)
	}

	id := func(k int) NodeID {
		id, ok := g.Lookup(k)
		require.True(t, ok)

		return id
	}

	for _, e := range edges {
		g.AddEdge(id(e.from), id(e.to))
	}

	for _, s := range seeds {
		g.Mark(id(s))
	}

	return g, g.Propagate()
}

func markedKeys(g *Graph[int]) []int {
	var marked []int
	for id, k := range g.All() {
		if g.Marked(id) {
			marked = append(marked, k)
		}
	}

	slices.Sort(marked)

	return marked
}

// reachable computes the closure over predecessor edges with a depth-first search.
func reachable(n int, edges []edge, seeds []int) []int {
	pred := make([][]int, n)
	for _, e := range edges {
		if e.from != e.to {
			pred[e.to] = append(pred[e.to], e.from)
		}
	}

	seen := make([]bool, n)
	var visit func(int)
	visit = func(k int) {
		if seen[k] {
			return
		}

		seen[k] = true
		for _, m := range pred[k] {
			visit(m)
		}
	}

	for _, s := range seeds {
		visit(s)
	}

	var marked []int
	for k, s := range seen {
		if s {
			marked = append(marked, k)
		}
	}

	return marked
}

// TestOrderIndependence propagates random graphs built in shuffled orders
// and compares the result against a depth-first closure.
func TestOrderIndependence(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		n := 1 + r.IntN(30)
		edges, seeds := randomGraph(r, n)
		want := reachable(n, edges, seeds)

		nodes := make([]int, n)
		for i := range nodes {
			nodes[i] = i
		}

		for range 5 {
			r.Shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })
			r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
			r.Shuffle(len(seeds), func(i, j int) { seeds[i], seeds[j] = seeds[j], seeds[i] })

			g, pops := build(t, nodes, edges, seeds)

			assert.Equal(t, want, markedKeys(g))
			assert.LessOrEqual(t, pops, g.Len())
		}
	}
}

// TestMonotonicity checks that additional seeds never unmark nodes.
func TestMonotonicity(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		n := 1 + r.IntN(30)
		edges, seeds := randomGraph(r, n)

		nodes := make([]int, n)
		for i := range nodes {
			nodes[i] = i
		}

		g, _ := build(t, nodes, edges, seeds)
		before := markedKeys(g)

		more := append(slices.Clone(seeds), r.IntN(n))
		g, _ = build(t, nodes, edges, more)
		after := markedKeys(g)

		assert.Subset(t, after, before)
	}
}

// TestSoundness checks that every edge respects the final marks.
func TestSoundness(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(5, 6))

	for range 200 {
		n := 1 + r.IntN(30)
		edges, seeds := randomGraph(r, n)

		nodes := make([]int, n)
		for i := range nodes {
			nodes[i] = i
		}

		g, _ := build(t, nodes, edges, seeds)

		for from, to := range g.Edges() {
			if g.Marked(to) {
				assert.True(t, g.Marked(from), "Edge %d → %d", g.Key(from), g.Key(to))
			}
		}

		for id := range g.All() {
			if !g.Marked(id) {
				continue
			}

			path := g.Path(id)
			require.NotEmpty(t, path)
			assert.Contains(t, g.Seeds(), path[len(path)-1])
		}
	}
}

func TestPropagateTwice(t *testing.T) {
	t.Parallel()

	g := New[string](0)
	a, _ := g.Node("a")
	b, _ := g.Node("b")
	c, _ := g.Node("c")
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	g.Mark(b)
	g.Propagate()
	assert.False(t, g.Marked(c))

	g.Mark(c)
	assert.LessOrEqual(t, g.Propagate(), g.Len())

	for _, id := range []NodeID{a, b, c} {
		assert.True(t, g.Marked(id))
	}
}
