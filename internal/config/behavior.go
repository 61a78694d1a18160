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

package config

import (
	"log/slog"
	"math/bits"
)

// Behavior is a set of [Config] flags.
type Behavior struct {
	flags Config
}

// NewBehavior returns a [Behavior] with the given flags enabled.
func NewBehavior(flags ...Config) Behavior {
	var b Behavior
	for _, flag := range flags {
		b.Set(flag, true)
	}

	return b
}

// Set enables or disables flag.
func (b *Behavior) Set(flag Config, value bool) {
	if value {
		b.flags |= flag
	} else {
		b.flags &^= flag
	}
}

// Enabled reports whether flag is enabled.
func (b Behavior) Enabled(flag Config) bool {
	return b.flags&flag != 0
}

var flagNames = [...]string{"generated", "identity-checks", "assume-non-nil", "explain"}

// LogValue implements [slog.LogValuer].
func (b Behavior) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(flagNames))
	for i, name := range flagNames {
		as = append(as, slog.Bool(name, b.Enabled(1<<i)))
	}

	if unknown := b.flags >> len(flagNames); unknown != 0 {
		as = append(as, slog.Int("unknown", bits.OnesCount8(uint8(unknown))))
	}

	return slog.GroupValue(as...)
}
