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

package report

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
)

// QualifiedName returns how the type name tn is referenced at pos in file.
// It fails when tn is not accessible or shadowed at pos.
func QualifiedName(pkg *types.Package, file *ast.File, tn *types.TypeName, pos token.Pos) (string, bool) {
	scope := pkg.Scope().Innermost(pos)
	if scope == nil {
		return "", false
	}

	if tn.Pkg() == nil || tn.Pkg() == pkg {
		if !resolves(scope, tn.Name(), pos, tn) {
			return "", false
		}

		return tn.Name(), true
	}

	if !tn.Exported() {
		return "", false
	}

	for _, spec := range file.Imports {
		if path, err := strconv.Unquote(spec.Path.Value); err != nil || path != tn.Pkg().Path() {
			continue
		}

		var name string

		switch {
		case spec.Name == nil:
			name = tn.Pkg().Name()

		case spec.Name.Name == "_":
			continue

		case spec.Name.Name == ".":
			if resolves(scope, tn.Name(), pos, tn) {
				return tn.Name(), true
			}

			continue

		default:
			name = spec.Name.Name
		}

		if _, obj := scope.LookupParent(name, pos); obj != nil {
			if pn, ok := obj.(*types.PkgName); ok && pn.Imported() == tn.Pkg() {
				return name + "." + tn.Name(), true
			}
		}
	}

	return "", false
}

func resolves(scope *types.Scope, name string, pos token.Pos, obj types.Object) bool {
	_, found := scope.LookupParent(name, pos)

	return found == obj
}
