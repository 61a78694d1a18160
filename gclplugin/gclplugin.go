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
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/supertype/analyzer"
)

func init() { register.Plugin("supertype", New) }

// New validates the golangci-lint settings and returns the plugin.
// Malformed targets are reported here, before any package is loaded.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	opts, err := settings.Options()
	if err != nil {
		return nil, err
	}

	// golangci-lint excludes generated files itself.
	opts = append(opts, analyzer.WithGenerated(true))

	return plugin{analyzer: analyzer.New(opts...)}, nil
}

type plugin struct {
	analyzer *analysis.Analyzer
}

func (plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

func (p plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{p.analyzer}, nil
}
