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

package config_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "fillmore-labs.com/supertype/internal/config"
)

func TestBehavior(t *testing.T) {
	t.Parallel()

	b := NewBehavior(IncludeGenerated, AssumeNonNil)

	if !b.Enabled(IncludeGenerated) || !b.Enabled(AssumeNonNil) {
		t.Errorf("Got %v, want generated and assume-non-nil enabled", b)
	}

	b.Set(AssumeNonNil, false)
	b.Set(ExplainUnsafe, true)

	if b.Enabled(AssumeNonNil) || !b.Enabled(ExplainUnsafe) || b.Enabled(RewriteIdentityChecks) {
		t.Errorf("Got %v, want generated and explain enabled", b)
	}
}

func TestBehaviorLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))

	logger.Info("run", slog.Any("behavior", NewBehavior(RewriteIdentityChecks)))

	const want = "behavior.generated=false behavior.identity-checks=true behavior.assume-non-nil=false behavior.explain=false"
	if got := buf.String(); !strings.Contains(got, want) {
		t.Errorf("Got %q, want %q", got, want)
	}
}
