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
	"slices"

	"fillmore-labs.com/supertype/internal/graph"
)

// classifier owns the state of a single analysis run.
type classifier[E comparable] struct {
	env       Env[E]
	opts      options
	supertype E

	graph   *graph.Graph[E]
	reasons map[graph.NodeID]Reason

	worklist []E
	head     int
}

func newClassifier[E comparable](env Env[E], supertype E, sizeHint int, opts options) *classifier[E] {
	return &classifier[E]{
		env:       env,
		opts:      opts,
		supertype: supertype,
		graph:     graph.New[E](sizeHint),
		reasons:   make(map[graph.NodeID]Reason),
		worklist:  make([]E, 0, sizeHint),
	}
}

// node returns the node for e, queuing newly discovered classifiable elements.
func (c *classifier[E]) node(e E) graph.NodeID {
	id, created := c.graph.Node(e)
	if created && c.env.Syntax.Classifiable(e) {
		c.worklist = append(c.worklist, e)
	}

	return id
}

func (c *classifier[E]) link(a, b E) {
	c.graph.Link(c.node(a), c.node(b))
}

func (c *classifier[E]) mark(e E, reason Reason) {
	id := c.node(e)
	if !c.graph.Mark(id) {
		return
	}

	c.reasons[id] = reason
	c.opts.logger.Debug("Marked element", slog.Any("element", e), slog.String("reason", reason.String()))
}

// run classifies elements until the worklist is exhausted.
func (c *classifier[E]) run(ctx context.Context) error {
	for ; c.head < len(c.worklist); c.head++ {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
		}

		c.classify(ctx, c.worklist[c.head])
	}

	return nil
}

func (c *classifier[E]) classify(ctx context.Context, e E) {
	switch r := c.env.Syntax.Role(e).(type) {
	case MemberQualifier[E]:
		if !c.env.Hierarchy.HasMember(c.supertype, r.Member) {
			c.mark(e, ReasonMember)
		}

	case IdentityCheck[E]:
		switch {
		case !c.opts.identityChecks:
			c.mark(e, ReasonIdentity)

		case r.HasResult:
			c.link(e, r.Result)
		}

	case VariableType[E]:
		for _, v := range r.Variables {
			if init, ok := c.env.Syntax.Initializer(v); ok {
				c.link(e, init)
			}

			c.linkUsages(ctx, e, v)
		}

	case ReturnType[E]:
		for _, i := range r.Indices {
			c.linkResult(ctx, e, r.Routine, i)
		}

	case ParameterType[E]:
		for _, i := range r.Indices {
			c.linkParameter(ctx, e, r.Routine, i)
		}

	case ArrayElement[E]:
		c.link(e, r.Array)

	case ArrayConstruction[E]:
		for _, element := range r.Elements {
			c.link(e, element)
		}

		c.link(e, r.Value)

	case Conversion[E]:
		c.link(e, r.Operand)
		c.link(e, r.Result)

	case TypeArgument[E]:
		for _, pos := range c.env.Syntax.InheritedPositions(r.Instantiation, r.Index) {
			c.link(e, pos)
		}

	case Argument[E]:
		c.classifyArgument(ctx, e, r)

	case Assigned[E]:
		slot, ok := c.env.Syntax.Slot(r.Target)
		if !ok {
			c.mark(e, ReasonUnresolved)
			break
		}

		c.flow(e, slot)

	case Returned[E]:
		results := c.env.Syntax.Results(r.Routine)
		if r.Index >= len(results) {
			c.mark(e, ReasonUnresolved)
			break
		}

		slot, ok := c.env.Syntax.Slot(results[r.Index])
		if !ok {
			c.mark(e, ReasonUnresolved)
			break
		}

		c.flow(e, slot)

	case Written[E]:
		c.link(e, r.Value)

	case Inert[E]:

	case Unresolved[E]:
		c.mark(e, ReasonUnresolved)

	case Unknown[E], nil:
		c.mark(e, ReasonDefault)

	default:
		c.mark(e, ReasonDefault)
	}
}

// flow applies the constraint of a value stored into slot.
func (c *classifier[E]) flow(e E, slot Slot[E]) {
	switch {
	case slot.Tracked:
		c.link(e, slot.Type)

	case c.env.Hierarchy.IsSubtype(c.supertype, slot.Type):
		// The retargeted value still fits.

	default:
		c.mark(e, ReasonFlow)
	}
}

func (c *classifier[E]) classifyArgument(ctx context.Context, e E, r Argument[E]) {
	routine, ok := c.env.Resolver.Resolve(ctx, r.Call)
	if !ok {
		c.mark(e, ReasonUnresolved)
		return
	}

	params, variadic := c.env.Syntax.Parameters(routine)

	p, ok := boundParameter(r.Index, len(params), variadic)
	if !ok {
		c.mark(e, ReasonUnresolved)
		return
	}

	slot, ok := c.env.Syntax.Slot(params[p])
	if !ok {
		c.mark(e, ReasonUnresolved)
		return
	}

	c.flow(e, slot)
}

// boundParameter returns the parameter index an argument index binds to.
func boundParameter(arg, params int, variadic bool) (int, bool) {
	switch {
	case arg < 0:
		return 0, false

	case variadic && arg >= params-1:
		return params - 1, params > 0

	case arg < params:
		return arg, true

	default:
		return 0, false
	}
}

// boundArguments returns the arguments of a call bound to the parameter at index.
func boundArguments[E comparable](args []E, index, params int, variadic bool) []E {
	switch {
	case variadic && index == params-1:
		if index >= len(args) {
			return nil
		}

		return args[index:]

	case index < len(args):
		return args[index : index+1]

	default:
		return nil
	}
}

func (c *classifier[E]) linkResult(ctx context.Context, e, routine E, index int) {
	c.linkRelated(e, routine, func(related E) (E, bool) {
		results := c.env.Syntax.Results(related)
		if index >= len(results) {
			var zero E
			return zero, false
		}

		return results[index], true
	})

	for _, v := range c.env.Syntax.ReturnValues(routine, index) {
		c.link(e, v)
	}

	c.linkCallSites(ctx, e, routine, func(site CallSite[E]) {
		if index < len(site.Results) {
			c.link(e, site.Results[index])
		}
	})
}

func (c *classifier[E]) linkParameter(ctx context.Context, e, routine E, index int) {
	params, variadic := c.env.Syntax.Parameters(routine)
	if index >= len(params) {
		c.mark(e, ReasonUnresolved)
		return
	}

	c.linkRelated(e, routine, func(related E) (E, bool) {
		params, _ := c.env.Syntax.Parameters(related)
		if index >= len(params) {
			var zero E
			return zero, false
		}

		return params[index], true
	})

	c.linkUsages(ctx, e, params[index])

	c.linkCallSites(ctx, e, routine, func(site CallSite[E]) {
		for _, arg := range boundArguments(site.Args, index, len(params), variadic) {
			c.link(e, arg)
		}
	})
}

// linkRelated links e to the tracked declared type of the corresponding
// position in every overriding and overridden routine.
func (c *classifier[E]) linkRelated(e, routine E, position func(related E) (E, bool)) {
	related := slices.Concat(
		c.env.Hierarchy.OverridingRoutines(routine),
		c.env.Hierarchy.OverriddenRoutines(routine),
	)

	for _, r := range related {
		decl, ok := position(r)
		if !ok {
			continue
		}

		if slot, ok := c.env.Syntax.Slot(decl); ok && slot.Tracked {
			c.link(e, slot.Type)
		}
	}
}

// linkUsages links e to every reference to decl.
func (c *classifier[E]) linkUsages(ctx context.Context, e, decl E) {
	for use, err := range c.env.Usages.FindUsages(ctx, decl) {
		if err != nil {
			c.mark(e, ReasonLookup)
			return
		}

		c.link(e, use)
	}
}

// linkCallSites calls link for every call of routine. Any other use of routine marks e.
func (c *classifier[E]) linkCallSites(ctx context.Context, e, routine E, link func(site CallSite[E])) {
	for use, err := range c.env.Usages.FindUsages(ctx, routine) {
		if err != nil {
			c.mark(e, ReasonLookup)
			return
		}

		site, ok := c.env.Syntax.Call(use)
		if !ok {
			c.mark(e, ReasonFunctionValue)
			continue
		}

		link(site)
	}
}
