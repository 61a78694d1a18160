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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/supertype/internal/config"
	"fillmore-labs.com/supertype/internal/run"
)

// Option configures specific behavior of a [New] supertype analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithTarget is an [Option] to retarget usages of typ to the interface iface.
//
// Both names are resolved in the analyzed package, or qualified by an import
// path like "example.com/geo.Square". A leading "*" on typ selects the pointer
// type. An empty typ selects every type of the package implementing iface.
func WithTarget(typ, iface string) Option {
	return targetOption{target: config.Target{Type: typ, Interface: iface}}
}

type targetOption struct{ target config.Target }

func (o targetOption) apply(r *run.Options) {
	r.Targets = append(r.Targets, o.target)
}

func (o targetOption) LogAttr() slog.Attr {
	return slog.String("target", o.target.String())
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option {
	return behaviorOption{key: "generated", flag: config.IncludeGenerated, value: generated}
}

// WithIdentityChecks is an [Option] to allow retargeting operands of type
// assertions, type switches and comparisons.
func WithIdentityChecks(rewrite bool) Option {
	return behaviorOption{key: "identity-checks", flag: config.RewriteIdentityChecks, value: rewrite}
}

// WithAssumeNonNil is an [Option] to ignore nil and zero values.
func WithAssumeNonNil(nonNil bool) Option {
	return behaviorOption{key: "assume-non-nil", flag: config.AssumeNonNil, value: nonNil}
}

// WithExplain is an [Option] to report usages that must keep their type.
func WithExplain(explain bool) Option {
	return behaviorOption{key: "explain", flag: config.ExplainUnsafe, value: explain}
}

type behaviorOption struct {
	key   string
	flag  config.Config
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.value)
}

// WithLogger is an [Option] to receive debug output of the analysis.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger != nil {
		r.Logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
