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
	"errors"
	"flag"
	"testing"

	. "fillmore-labs.com/supertype/internal/config"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		want    Target
		wantErr bool
	}{
		{"simple", "square=Shape", Target{"square", "Shape"}, false},
		{"pointer", "*square = Shape", Target{"*square", "Shape"}, false},
		{"qualified", "example.com/geo.Square=io.Reader", Target{"example.com/geo.Square", "io.Reader"}, false},
		{"missing separator", "square", Target{}, true},
		{"implementations", "=Shape", Target{"", "Shape"}, false},
		{"pointer without type", "*=Shape", Target{}, true},
		{"pointer interface", "square=*Shape", Target{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTarget(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTarget) {
					t.Errorf("Got error %v, want %v", err, ErrInvalidTarget)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, path, typ string
		pointer         bool
	}{
		{"Shape", "", "Shape", false},
		{"*square", "", "square", true},
		{"io.Reader", "io", "Reader", false},
		{"*example.com/geo.Square", "example.com/geo", "Square", true},
		{"example.com/geo", "", "example.com/geo", false},
	}

	for _, tt := range tests {
		path, typ, pointer := SplitName(tt.name)
		if path != tt.path || typ != tt.typ || pointer != tt.pointer {
			t.Errorf("SplitName(%q) = %q, %q, %t, want %q, %q, %t", tt.name, path, typ, pointer, tt.path, tt.typ, tt.pointer)
		}
	}
}

func TestTargetsFlag(t *testing.T) {
	t.Parallel()

	var targets Targets

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&targets, "target", "type to retarget")

	if err := fs.Parse([]string{"-target", "a=I", "-target", "b=J,*c=K"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, want := targets.String(), "a=I,b=J,*c=K"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if err := fs.Parse([]string{"-target", "bad"}); err == nil {
		t.Error("Expected an error for a malformed target")
	}
}
