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

// Package testsource provides utilities for parsing and type-checking Go source code in tests.
//
// It handles the boilerplate of turning a package-level source fragment into
// the syntax, type information and inspector an analysis pass would provide.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Package is a parsed and type-checked single-file package.
type Package struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info
	In   *inspector.Inspector
}

// Load parses and type-checks a Go source fragment.
// The provided source `src` is automatically prefixed with the clause `package test`,
// so it holds package-level declarations.
func Load(tb testing.TB, src string) *Package {
	tb.Helper()

	fset, f := Parse(tb, src)
	pkg, info := Check(tb, fset, f)

	return &Package{Fset: fset, File: f, Pkg: pkg, Info: info, In: inspector.New([]*ast.File{f})}
}

// Parse parses a Go source code fragment into an AST.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info,
// recording everything an analysis pass records.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:        make(map[ast.Expr]types.TypeAndValue),
		Instances:    make(map[*ast.Ident]types.Instance),
		Defs:         make(map[*ast.Ident]types.Object),
		Uses:         make(map[*ast.Ident]types.Object),
		Implicits:    make(map[ast.Node]types.Object),
		Selections:   make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:       make(map[ast.Node]*types.Scope),
		FileVersions: make(map[*ast.File]string),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

func wrapSource(src string) *bytes.Buffer {
	const header = "package " + testpkg + "\n\n"

	var srcFile bytes.Buffer
	srcFile.Grow(len(header) + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error

	return &srcFile
}
