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
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
)

// Analyze decides for each usage of candidate whether it can reference supertype instead.
//
// Every usage is classified, the elements related to it are discovered and
// classified in turn, and unsafe marks are propagated to a fixpoint. Analyze
// returns [ErrNotSubtype] when candidate is not a subtype of supertype and an
// error wrapping [ErrCancelled] when ctx is done before the analysis completes.
func Analyze[E comparable](ctx context.Context, env Env[E], candidate, supertype E, usages []E, opts ...Option) (*Result[E], error) {
	if !env.Hierarchy.IsSubtype(candidate, supertype) {
		return nil, ErrNotSubtype
	}

	o := makeOptions(opts)
	c := newClassifier(env, supertype, 4*len(usages), o)

	for _, u := range usages {
		id, created := c.graph.Node(u)
		if created {
			c.worklist = append(c.worklist, u)
		} else {
			o.logger.Debug("Duplicate usage", slog.Any("usage", u), slog.Int("node", int(id)))
		}
	}

	if err := classify(ctx, c); err != nil {
		return nil, err
	}

	defer trace.StartRegion(ctx, "Propagate").End()

	seeds := len(c.graph.Seeds())
	pops := c.graph.Propagate()

	if pops > c.graph.Len() {
		return nil, &InvariantError{Op: "propagate", Detail: fmt.Sprintf("%d frontier pops for %d nodes", pops, c.graph.Len())}
	}

	o.logger.Debug("Analysis complete",
		slog.Int("usages", len(usages)),
		slog.Int("nodes", c.graph.Len()),
		slog.Int("edges", c.graph.EdgeCount()),
		slog.Int("seeds", seeds),
		slog.Int("marked", pops),
	)

	return &Result[E]{usages: usages, graph: c.graph, reasons: c.reasons}, nil
}

func classify[E comparable](ctx context.Context, c *classifier[E]) error {
	defer trace.StartRegion(ctx, "Classify").End()

	return c.run(ctx)
}
