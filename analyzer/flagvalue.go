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
	"strconv"

	"fillmore-labs.com/supertype/internal/config"
)

// behaviorFlag switches a single [config.Config] bit of a [config.Behavior].
type behaviorFlag struct {
	behavior *config.Behavior
	bit      config.Config
}

func newBehaviorValue(b *config.Behavior, bit config.Config) behaviorFlag {
	return behaviorFlag{behavior: b, bit: bit}
}

func (f behaviorFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	f.behavior.Set(f.bit, on)

	return nil
}

func (f behaviorFlag) String() string {
	return strconv.FormatBool(f.enabled())
}

func (f behaviorFlag) Get() any {
	return f.enabled()
}

// IsBoolFlag allows "-explain" without a value.
func (behaviorFlag) IsBoolFlag() bool { return true }

// enabled is false for the zero value the flag package creates to print defaults.
func (f behaviorFlag) enabled() bool {
	return f.behavior != nil && f.behavior.Enabled(f.bit)
}
