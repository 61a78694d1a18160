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

package gclplugin

import (
	"fillmore-labs.com/supertype/analyzer"
	"fillmore-labs.com/supertype/internal/config"
)

// Settings is the golangci-lint configuration of the supertype linter.
type Settings struct {
	// Targets lists the types to retarget as "Type=Interface" or "=Interface".
	Targets []string `json:"targets,omitzero"`
	// IdentityChecks allows retargeting type assertions, type switches and comparisons.
	IdentityChecks *bool `json:"identity-checks,omitzero"`
	// AssumeNonNil ignores nil and zero values.
	AssumeNonNil *bool `json:"assume-non-nil,omitzero"`
	// Explain reports usages that must keep their type.
	Explain *bool `json:"explain,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the supertype analyzer.
// Unset (nil) flags keep the analyzer defaults.
func (s Settings) Options() ([]analyzer.Option, error) {
	opts := make([]analyzer.Option, 0, len(s.Targets))

	for _, spec := range s.Targets {
		t, err := config.ParseTarget(spec)
		if err != nil {
			return nil, err
		}

		opts = append(opts, analyzer.WithTarget(t.Type, t.Interface))
	}

	opts = appendOption(opts, s.IdentityChecks, analyzer.WithIdentityChecks)
	opts = appendOption(opts, s.AssumeNonNil, analyzer.WithAssumeNonNil)
	opts = appendOption(opts, s.Explain, analyzer.WithExplain)

	return opts, nil
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
