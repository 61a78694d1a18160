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

package gosource

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
)

// Kind classifies an [Element].
type Kind uint8

const (
	// KindExpr is a type or value expression Node.
	KindExpr Kind = iota + 1

	// KindTuple is the result Index of the multi-value call Node.
	KindTuple

	// KindDecl is the declared variable or function Obj. Index 1 marks a variadic parameter.
	KindDecl

	// KindLit is the function literal Node.
	KindLit

	// KindImplicit is the type of the variable Obj declared without a type expression.
	KindImplicit

	// KindOpaque is a value of unknown provenance: the zero value of Obj, or
	// value Index of Node.
	KindOpaque

	// KindNamed is the named type Obj, or its pointer if Index is 1.
	KindNamed

	// KindVarType is the declared type of Obj without syntax in this package.
	// Index 1 selects the element type of a variadic parameter.
	KindVarType
)

// Element is a program element of Go source.
type Element struct {
	Kind  Kind
	Node  ast.Node
	Obj   types.Object
	Index int32
}

// Expr returns the element of an expression.
func Expr(e ast.Expr) Element {
	return Element{Kind: KindExpr, Node: e}
}

// Tuple returns the element of result index of a multi-value call.
func Tuple(call ast.Expr, index int) Element {
	return Element{Kind: KindTuple, Node: call, Index: int32(index)}
}

// Decl returns the element of a declared object.
func Decl(obj types.Object) Element {
	return Element{Kind: KindDecl, Obj: origin(obj)}
}

func implicit(v *types.Var) Element {
	return Element{Kind: KindImplicit, Obj: origin(v)}
}

func opaqueValue(n ast.Node, index int) Element {
	return Element{Kind: KindOpaque, Node: n, Index: int32(index)}
}

func zeroValue(v *types.Var) Element {
	return Element{Kind: KindOpaque, Obj: origin(v)}
}

// Named returns the element of a named type or its pointer.
func Named(tn *types.TypeName, pointer bool) Element {
	e := Element{Kind: KindNamed, Obj: tn}
	if pointer {
		e.Index = 1
	}

	return e
}

// Pos returns the source position of the element, if any.
func (e Element) Pos() token.Pos {
	switch {
	case e.Node != nil:
		return e.Node.Pos()

	case e.Obj != nil:
		return e.Obj.Pos()

	default:
		return token.NoPos
	}
}

func (e Element) String() string {
	switch e.Kind {
	case KindExpr:
		return types.ExprString(e.Node.(ast.Expr))

	case KindTuple:
		return fmt.Sprintf("%s[%d]", types.ExprString(e.Node.(ast.Expr)), e.Index)

	case KindDecl:
		return e.Obj.Name()

	case KindLit:
		return "func literal"

	case KindImplicit:
		return "type of " + e.Obj.Name()

	case KindOpaque:
		if e.Obj != nil {
			return "zero " + e.Obj.Name()
		}

		return fmt.Sprintf("opaque %T[%d]", e.Node, e.Index)

	case KindNamed:
		if e.Index == 1 {
			return "*" + e.Obj.Name()
		}

		return e.Obj.Name()

	case KindVarType:
		return "declared type of " + e.Obj.Name()

	default:
		return fmt.Sprintf("Element(%d)", e.Kind)
	}
}

// origin maps instantiated fields and methods to their generic declaration.
func origin(obj types.Object) types.Object {
	switch o := obj.(type) {
	case *types.Var:
		return o.Origin()

	case *types.Func:
		return o.Origin()

	default:
		return obj
	}
}
