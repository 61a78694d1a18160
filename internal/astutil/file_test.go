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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/supertype/internal/astutil"
)

const src = `package test

type square struct{}

func total(s *square) {} //nolint:supertype

func grow(s *square) {} //nolint:errcheck,all

func keep(s *square) {} // nolint is not a directive
`

func TestFiles(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	files := NewFiles(fset, []*ast.File{f})

	file, ok := files.At(f.Decls[0].Pos())
	if !ok {
		t.Fatal("Can't find file")
	}

	if file.Syntax() != f {
		t.Error("Got wrong syntax tree")
	}

	if file.Generated() || file.Skip(false) {
		t.Error("Got generated file")
	}

	tests := []struct {
		decl int
		want bool
	}{
		{1, true},
		{2, true},
		{3, false},
	}

	for _, tt := range tests {
		fun := f.Decls[tt.decl].(*ast.FuncDecl)
		if got := file.NoLint(fun.Type.Params.Pos()); got != tt.want {
			t.Errorf("Got NoLint(%s) = %t, want %t", fun.Name.Name, got, tt.want)
		}
	}

	if _, ok := files.At(token.Pos(f.FileEnd + 1)); ok {
		t.Error("Got file for position outside of files")
	}
}

func TestSkipGenerated(t *testing.T) {
	t.Parallel()

	const generated = "// Code generated by test. DO NOT EDIT.\n\npackage test\n"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "generated.go", generated, parser.ParseComments)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	file, ok := NewFiles(fset, []*ast.File{f}).At(f.Package)
	if !ok {
		t.Fatal("Can't find file")
	}

	if !file.Skip(false) || file.Skip(true) {
		t.Errorf("Got Skip() = %t, %t, want true, false", file.Skip(false), file.Skip(true))
	}
}
