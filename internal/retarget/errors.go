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
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned when the analysis was cancelled before completion.
	ErrCancelled = errors.New("analysis cancelled")

	// ErrNotSubtype is returned when the candidate is not a subtype of the supertype.
	ErrNotSubtype = errors.New("candidate is not a subtype")
)

// InvariantError reports a violated internal invariant. The analysis result is unusable.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Op, e.Detail)
}
