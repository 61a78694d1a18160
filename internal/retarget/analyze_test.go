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

package retarget_test

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/supertype/internal/retarget"
	"fillmore-labs.com/supertype/internal/testprogram"
)

func loadPrograms(t *testing.T) map[string]*testprogram.Program {
	t.Helper()

	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	programs := make(map[string]*testprogram.Program, len(files))
	for _, file := range files {
		p, err := testprogram.Load(file)
		require.NoError(t, err)

		programs[strings.TrimSuffix(filepath.Base(file), ".yaml")] = p
	}

	return programs
}

func analyze(ctx context.Context, p *testprogram.Program) (*Result[string], error) {
	return Analyze(ctx, p.Env(), p.Candidate, p.Supertype, p.Usages, WithIdentityChecks(p.IdentityChecks))
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	for name, p := range loadPrograms(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := analyze(t.Context(), p)
			require.NoError(t, err)

			for _, e := range p.Expect.Safe {
				safe, err := res.Safe(e)
				require.NoError(t, err)
				assert.Truef(t, safe, "Expected %s to be safe", e)
			}

			for _, e := range p.Expect.Unsafe {
				safe, err := res.Safe(e)
				require.NoError(t, err)
				assert.Falsef(t, safe, "Expected %s to be unsafe", e)
			}

			for e, want := range p.Expect.Reasons {
				steps, err := res.Explain(e)
				require.NoError(t, err)
				require.NotEmpty(t, steps, "Expected an explanation for %s", e)

				assert.Equal(t, e, steps[0].Element)
				assert.Equal(t, want, steps[len(steps)-1].Reason.String(), "Reason for %s", e)
			}
		})
	}
}

func TestUnsafeIsSubsetOfUsages(t *testing.T) {
	t.Parallel()

	for name, p := range loadPrograms(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := analyze(t.Context(), p)
			require.NoError(t, err)

			unsafe := res.Unsafe()
			assert.Subset(t, p.Usages, unsafe)

			for _, u := range p.Usages {
				safe, err := res.Safe(u)
				require.NoError(t, err)
				assert.Equal(t, !safe, slices.Contains(unsafe, u), "Usage %s", u)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	for name, p := range loadPrograms(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := analyze(t.Context(), p)
			require.NoError(t, err)

			second, err := analyze(t.Context(), p)
			require.NoError(t, err)

			assert.Equal(t, first.Unsafe(), second.Unsafe())

			n1, e1, s1 := first.Stats()
			n2, e2, s2 := second.Stats()
			assert.Equal(t, []int{n1, e1, s1}, []int{n2, e2, s2})
		})
	}
}

func TestIdentityChecksOption(t *testing.T) {
	t.Parallel()

	p, err := testprogram.Load(filepath.Join("testdata", "identity_check.yaml"))
	require.NoError(t, err)

	res, err := Analyze(t.Context(), p.Env(), p.Candidate, p.Supertype, p.Usages, WithIdentityChecks(true))
	require.NoError(t, err)

	assert.Empty(t, res.Unsafe())
}

func TestNotSubtype(t *testing.T) {
	t.Parallel()

	p, err := testprogram.Load(filepath.Join("testdata", "local_variable.yaml"))
	require.NoError(t, err)

	_, err = Analyze(t.Context(), p.Env(), p.Supertype, p.Candidate, p.Usages)
	assert.ErrorIs(t, err, ErrNotSubtype)
}

func TestNeverClassified(t *testing.T) {
	t.Parallel()

	p, err := testprogram.Load(filepath.Join("testdata", "local_variable.yaml"))
	require.NoError(t, err)

	res, err := analyze(t.Context(), p)
	require.NoError(t, err)

	_, err = res.Safe("elsewhere")

	var ie *InvariantError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "safe", ie.Op)

	_, err = res.Explain("elsewhere")
	require.ErrorAs(t, err, &ie)
}

var errStop = errors.New("stop")

func TestCancelled(t *testing.T) {
	t.Parallel()

	p, err := testprogram.Load(filepath.Join("testdata", "overridden_parameter.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancelCause(t.Context())
	cancel(errStop)

	res, err := analyze(ctx, p)
	require.ErrorIs(t, err, ErrCancelled)
	require.ErrorIs(t, err, errStop)
	assert.Nil(t, res)
}

// cancellingSearch cancels the analysis on its first query.
type cancellingSearch struct {
	UsageSearch[string]
	cancel context.CancelCauseFunc
}

func (s cancellingSearch) FindUsages(ctx context.Context, decl string) iter.Seq2[string, error] {
	s.cancel(errStop)

	return s.UsageSearch.FindUsages(ctx, decl)
}

func TestCancelledDuringSearch(t *testing.T) {
	t.Parallel()

	p, err := testprogram.Load(filepath.Join("testdata", "overridden_parameter.yaml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancelCause(t.Context())
	defer cancel(nil)

	env := p.Env()
	env.Usages = cancellingSearch{UsageSearch: env.Usages, cancel: cancel}

	res, err := Analyze(ctx, env, p.Candidate, p.Supertype, p.Usages)
	require.ErrorIs(t, err, ErrCancelled)
	require.ErrorIs(t, err, errStop)
	assert.Nil(t, res)
}

func TestDuplicateUsages(t *testing.T) {
	t.Parallel()

	p, err := testprogram.Load(filepath.Join("testdata", "identity_check.yaml"))
	require.NoError(t, err)

	usages := slices.Concat(p.Usages, p.Usages)

	res, err := Analyze(t.Context(), p.Env(), p.Candidate, p.Supertype, usages)
	require.NoError(t, err)

	assert.Equal(t, usages, res.Unsafe())
}

func TestPropagationSound(t *testing.T) {
	t.Parallel()

	for name, p := range loadPrograms(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := analyze(t.Context(), p)
			require.NoError(t, err)

			for from, to := range res.Edges() {
				if res.Marked(to) {
					assert.True(t, res.Marked(from), "Edge %s → %s", from, to)
				}
			}

			for seed, reason := range res.SeedReasons() {
				assert.NotEqual(t, NoReason, reason, "Seed %s", seed)
			}
		})
	}
}
