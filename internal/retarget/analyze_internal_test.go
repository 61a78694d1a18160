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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundParameter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		arg, params int
		variadic    bool
		want        int
		wantOK      bool
	}{
		{"first", 0, 2, false, 0, true},
		{"last", 1, 2, false, 1, true},
		{"too many", 2, 2, false, 0, false},
		{"negative", -1, 2, false, 0, false},
		{"variadic last", 1, 2, true, 1, true},
		{"variadic extra", 4, 2, true, 1, true},
		{"variadic only", 3, 1, true, 0, true},
		{"no parameters", 0, 0, true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := boundParameter(tt.arg, tt.params, tt.variadic)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Got %d, %t, want %d, %t", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBoundArguments(t *testing.T) {
	t.Parallel()

	args := []string{"a", "b", "c"}

	assert.Equal(t, []string{"b", "c"}, boundArguments(args, 1, 2, true))
	assert.Equal(t, []string{"b"}, boundArguments(args, 1, 2, false))
	assert.Empty(t, boundArguments(args[:1], 1, 2, true))
	assert.Empty(t, boundArguments(args, 3, 4, false))
}
