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
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTarget is returned for malformed target specifications.
var ErrInvalidTarget = errors.New("invalid target")

// Target pairs a type with the interface its usages should reference instead.
type Target struct {
	// Type is the name of the class type, optionally qualified by its import path
	// and prefixed with "*" to select the pointer type. An empty Type selects
	// every type of the analyzed package implementing Interface.
	Type string

	// Interface is the name of the supertype, optionally qualified by its import path.
	Interface string
}

// ParseTarget parses a target specification of the form "Type=Interface" or "=Interface".
func ParseTarget(s string) (Target, error) {
	typ, iface, ok := strings.Cut(s, "=")
	if !ok {
		return Target{}, fmt.Errorf("%w %q: expected Type=Interface", ErrInvalidTarget, s)
	}

	t := Target{Type: strings.TrimSpace(typ), Interface: strings.TrimSpace(iface)}

	if _, name, _ := SplitName(t.Type); name == "" && t.Type != "" {
		return Target{}, fmt.Errorf("%w %q: missing type name", ErrInvalidTarget, s)
	}

	if _, name, pointer := SplitName(t.Interface); name == "" || pointer {
		return Target{}, fmt.Errorf("%w %q: malformed interface name", ErrInvalidTarget, s)
	}

	return t, nil
}

func (t Target) String() string {
	return t.Type + "=" + t.Interface
}

// SplitName splits a possibly qualified type name like "*example.com/pkg.Name"
// into its import path, its name and whether it denotes the pointer type.
func SplitName(s string) (path, name string, pointer bool) {
	s, pointer = strings.CutPrefix(s, "*")

	slash := strings.LastIndexByte(s, '/')
	if dot := strings.LastIndexByte(s, '.'); dot > slash {
		return s[:dot], s[dot+1:], pointer
	}

	return "", s, pointer
}

// Targets is a list of [Target] values usable as a repeatable command line flag.
type Targets []Target

// Set implements [flag.Value].
func (t *Targets) Set(s string) error {
	for spec := range strings.SplitSeq(s, ",") {
		target, err := ParseTarget(spec)
		if err != nil {
			return err
		}

		*t = append(*t, target)
	}

	return nil
}

// String implements [flag.Value].
func (t *Targets) String() string {
	if t == nil {
		return ""
	}

	specs := make([]string, len(*t))
	for i, target := range *t {
		specs[i] = target.String()
	}

	return strings.Join(specs, ",")
}
