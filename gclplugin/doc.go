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

/*
Package gclplugin registers the [supertype] analyzer as a golangci-lint module plugin.

Build a custom golangci-lint binary with this module listed in `.custom-gcl.yaml`:

	plugins:
	  - module: fillmore-labs.com/supertype
	    import: fillmore-labs.com/supertype/gclplugin
	    version: v0.0.1

and enable it as a custom linter of type "module" in `.golangci.yaml`.
The plugin settings mirror the command line flags:

	settings:
	  custom:
	    supertype:
	      type: module
	      settings:
	        targets:
	          - "*example.com/geo.Square=example.com/geo.Shape"
	          - "=io.Reader"
	        identity-checks: true
	        assume-non-nil: false
	        explain: false

A target "Type=Interface" retargets the usages of one type, "=Interface" those of
every type of the package implementing the interface. Generated files are always
analyzed; golangci-lint decides whether their issues are shown.

[supertype]: https://pkg.go.dev/fillmore-labs.com/supertype/analyzer
*/
package gclplugin
