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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// linterName is the name used in nolint directives.
const linterName = "supertype"

// File holds the facts about a source file that decide whether diagnostics are reported.
type File struct {
	syntax    *ast.File
	generated bool

	// nolint is set when the file's doc comment ends with a nolint directive.
	nolint bool

	// lines holds the lines carrying a nolint directive.
	lines map[int]struct{}
	fset  *token.FileSet
}

func newFile(fset *token.FileSet, f *ast.File) File {
	file := File{
		syntax:    f,
		generated: ast.IsGenerated(f),
		lines:     make(map[int]struct{}),
		fset:      fset,
	}

	if doc := f.Doc; doc != nil {
		file.nolint = HasNoLint(doc.List[len(doc.List)-1])
	}

	for _, group := range f.Comments {
		for _, c := range group.List {
			if HasNoLint(c) {
				file.lines[fset.PositionFor(c.Pos(), false).Line] = struct{}{}
			}
		}
	}

	return file
}

// Syntax returns the syntax tree of the file.
func (f File) Syntax() *ast.File {
	return f.syntax
}

// Generated returns true if the file is a generated file.
func (f File) Generated() bool {
	return f.generated
}

// Skip reports whether the whole file is excluded from diagnostics.
func (f File) Skip(includeGenerated bool) bool {
	return f.nolint || f.generated && !includeGenerated
}

// NoLint reports whether the line of pos carries a //nolint:supertype comment.
func (f File) NoLint(pos token.Pos) bool {
	_, ok := f.lines[f.fset.PositionFor(pos, false).Line]

	return ok
}

// Files finds the [File] containing a position.
type Files struct {
	fset  *token.FileSet
	files []*ast.File
	cache map[*ast.File]File
}

// NewFiles returns a [Files] for the syntax trees of a package.
func NewFiles(fset *token.FileSet, files []*ast.File) *Files {
	return &Files{fset: fset, files: files, cache: make(map[*ast.File]File, len(files))}
}

// At returns the file containing pos.
func (fs *Files) At(pos token.Pos) (File, bool) {
	i := slices.IndexFunc(fs.files, func(f *ast.File) bool { return f.FileStart <= pos && pos <= f.FileEnd })
	if i < 0 {
		return File{}, false
	}

	syntax := fs.files[i]

	file, ok := fs.cache[syntax]
	if !ok {
		file = newFile(fs.fset, syntax)
		fs.cache[syntax] = file
	}

	return file, true
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// HasNoLint checks if the provided comment contains a `//nolint:supertype` or `//nolint:all` directive.
func HasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	return slices.ContainsFunc(strings.Split(matches[1], ","), func(linter string) bool {
		l := strings.ToLower(strings.TrimSpace(linter))
		return l == linterName || l == "all"
	})
}
