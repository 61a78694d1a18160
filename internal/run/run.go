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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/supertype/internal/astutil"
	"fillmore-labs.com/supertype/internal/config"
	"fillmore-labs.com/supertype/internal/gosource"
	"fillmore-labs.com/supertype/internal/report"
	"fillmore-labs.com/supertype/internal/retarget"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the supertype analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("supertype: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if len(r.Targets) == 0 {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Supertype")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Stage 1: index types, use sites and the method hierarchy once per package
	x := gosource.NewIndex(p.Pkg, p.TypesInfo, in)

	for _, t := range r.Targets {
		for _, s := range x.Sources(t, r.Behavior.Enabled(config.AssumeNonNil)) {
			r.retarget(ctx, p, s)
		}
	}

	return nil, nil
}

// retarget analyzes and reports the usages of a single type.
func (r *Options) retarget(ctx context.Context, p *analysis.Pass, s *gosource.Source) {
	usages := s.Usages()
	if len(usages) == 0 {
		return
	}

	logger := r.Logger.With(slog.String("package", p.Pkg.Path()), slog.String("type", s.Candidate().String()))
	logger.Debug("Analyzing usages", slog.Int("usages", len(usages)), slog.Any("behavior", r.Behavior))

	// Stage 2: classify usages and propagate marks
	res, err := retarget.Analyze(ctx, s.Env(), s.Candidate(), s.Supertype(), usages,
		retarget.WithIdentityChecks(r.Behavior.Enabled(config.RewriteIdentityChecks)),
		retarget.WithLogger(logger))

	switch {
	case errors.Is(err, retarget.ErrNotSubtype):
		return

	case err != nil:
		astutil.InternalError(p, usages[0].Node, "Can't analyze %s: %v", s.Candidate(), err)
		return
	}

	// Stage 3: report safe usages with suggested fixes
	results := make([]report.Usage, 0, len(usages))
	for _, u := range usages {
		usage, err := r.result(s, res, u)
		if err != nil {
			astutil.InternalError(p, u.Node, "%v", err)
			continue
		}

		results = append(results, usage)
	}

	report.Diagnostics(ctx, p, results, r.Behavior)
}

func (r *Options) result(s *gosource.Source, res *retarget.Result[gosource.Element], u gosource.Element) (report.Usage, error) {
	usage := report.Usage{Expr: u.Node.(ast.Expr), Interface: s.Interface()}

	safe, err := res.Safe(u)
	if err != nil {
		return usage, err
	}

	usage.Safe = safe
	if safe || !r.Behavior.Enabled(config.ExplainUnsafe) {
		return usage, nil
	}

	steps, err := res.Explain(u)
	if err != nil {
		return usage, err
	}

	if len(steps) > 0 {
		seed := steps[len(steps)-1]
		usage.Reason, usage.Cause = seed.Reason.String(), seed.Element.Pos()
	}

	return usage, nil
}
