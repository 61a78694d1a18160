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
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/supertype/internal/retarget"
)

type role = retarget.Role[Element]

var (
	unknown    role = retarget.Unknown[Element]{}
	unresolved role = retarget.Unresolved[Element]{}
	inert      role = retarget.Inert[Element]{}
)

// Role implements [retarget.Syntax].
func (s *Source) Role(e Element) retarget.Role[Element] {
	switch e.Kind {
	case KindExpr:
		return s.exprRole(e.Node.(ast.Expr))

	case KindTuple:
		return s.tupleRole(e)

	case KindImplicit:
		v, ok := e.Obj.(*types.Var)
		if !ok || v.Exported() && s.packageLevel(v) {
			return unknown
		}

		return retarget.VariableType[Element]{Variables: []Element{Decl(v)}}

	default:
		return unknown
	}
}

func (s *Source) exprRole(e ast.Expr) role {
	c, ok := s.cursor(e)
	if !ok {
		return unresolved
	}

	if tv, ok := s.info.Types[e]; ok && tv.IsType() {
		return s.typeRole(c)
	}

	switch {
	case s.isNil(e):
		if !s.assumeNonNil {
			return unknown
		}

	case !s.carries(e):
		return unknown
	}

	return s.valueRole(c)
}

// carries reports whether e is a non-constant value of exactly the candidate type.
// Other values keep their own dynamic type when stored in the interface.
func (s *Source) carries(e ast.Expr) bool {
	tv, ok := s.info.Types[e]

	return ok && tv.Value == nil && s.isCandidate(tv.Type)
}

func (s *Source) isNil(e ast.Expr) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}

	_, isNil := s.info.Uses[id].(*types.Nil)

	return isNil
}

// climbParens returns the outermost parenthesized cursor of c and its parent edge.
func climbParens(c inspector.Cursor) (inspector.Cursor, edge.Kind, int) {
	for {
		kind, index := c.ParentEdge()
		if kind != edge.ParenExpr_X {
			return c, kind, index
		}

		c = c.Parent()
	}
}

// typeRole returns the role of a type expression.
func (s *Source) typeRole(c inspector.Cursor) role {
	child, kind, _ := climbParens(c)
	parent := child.Parent()

	switch kind {
	case edge.Field_Type:
		return s.fieldRole(parent)

	case edge.ValueSpec_Type:
		return s.variablesRole(parent.Node().(*ast.ValueSpec).Names)

	case edge.TypeAssertExpr_Type:
		return retarget.IdentityCheck[Element]{Result: Expr(parent.Node().(*ast.TypeAssertExpr)), HasResult: true}

	case edge.CaseClause_List:
		return s.typeCaseRole(parent)

	case edge.CallExpr_Fun:
		call := parent.Node().(*ast.CallExpr)
		if len(call.Args) != 1 || call.Ellipsis.IsValid() || !s.carries(call.Args[0]) {
			return unknown
		}

		return retarget.Conversion[Element]{Operand: Expr(call.Args[0]), Result: Expr(call)}

	default:
		// receivers, composite literal, element, map and pointer base types,
		// type arguments, type declarations
		return unknown
	}
}

func (s *Source) typeCaseRole(clause inspector.Cursor) role {
	if _, ok := clause.Parent().Parent().Node().(*ast.TypeSwitchStmt); !ok {
		return unknown
	}

	cc := clause.Node().(*ast.CaseClause)
	if len(cc.List) == 1 {
		if v, ok := s.info.Implicits[cc].(*types.Var); ok {
			return retarget.IdentityCheck[Element]{Result: implicit(v), HasResult: true}
		}
	}

	return retarget.IdentityCheck[Element]{}
}

// fieldRole returns the role of the type of a parameter, result or struct field.
func (s *Source) fieldRole(fc inspector.Cursor) role {
	field := fc.Node().(*ast.Field)
	list := fc.Parent()

	switch kind, _ := list.ParentEdge(); kind {
	case edge.FuncType_Params, edge.FuncType_Results:
		if kind == edge.FuncType_Results && len(field.Names) > 0 {
			return unknown // named results
		}

		routine, ok := s.signatureRoutine(list.Parent())
		if !ok {
			return unknown
		}

		indices := fieldIndices(list.Node().(*ast.FieldList), field)

		if kind == edge.FuncType_Params {
			return retarget.ParameterType[Element]{Routine: routine, Indices: indices}
		}

		return retarget.ReturnType[Element]{Routine: routine, Indices: indices}

	case edge.StructType_Fields:
		if len(field.Names) == 0 || !s.trackedStruct(list.Parent()) {
			return unknown // embedded
		}

		return s.variablesRole(field.Names)

	default:
		return unknown
	}
}

// fieldIndices returns the positions of the variables declared by field.
func fieldIndices(list *ast.FieldList, field *ast.Field) []int {
	i := 0
	for _, f := range list.List {
		n := max(1, len(f.Names))

		if f == field {
			indices := make([]int, n)
			for j := range indices {
				indices[j] = i + j
			}

			return indices
		}

		i += n
	}

	return nil
}

// signatureRoutine returns the routine declared with the function type ft.
// Routines that may be called or implemented outside the package are rejected.
func (s *Source) signatureRoutine(ft inspector.Cursor) (Element, bool) {
	var fn *types.Func

	switch kind, _ := ft.ParentEdge(); kind {
	case edge.FuncDecl_Type:
		decl := ft.Parent().Node().(*ast.FuncDecl)
		if decl.Body == nil {
			return Element{}, false
		}

		fn, _ = s.info.Defs[decl.Name].(*types.Func)

	case edge.Field_Type:
		fc := ft.Parent()
		if kind, _ := fc.Parent().ParentEdge(); kind != edge.InterfaceType_Methods {
			return Element{}, false
		}

		field := fc.Node().(*ast.Field)
		if len(field.Names) != 1 {
			return Element{}, false
		}

		fn, _ = s.info.Defs[field.Names[0]].(*types.Func)

	default:
		// function literals and function types
		return Element{}, false
	}

	if fn == nil || !s.private(fn) {
		return Element{}, false
	}

	return Decl(fn), true
}

// private reports whether all callers and implementations of fn are in the package.
func (s *Source) private(fn *types.Func) bool {
	if fn.Exported() {
		return false
	}

	recv := fn.Signature().Recv()
	if recv == nil {
		return true
	}

	if s.hierarchy.isOpaque(fn.Name()) {
		return false
	}

	if !types.IsInterface(recv.Type()) {
		return true
	}

	named, ok := types.Unalias(recv.Type()).(*types.Named)

	return ok && s.packageLevel(named.Obj())
}

// trackedStruct reports whether the fields of a struct type can be retargeted.
func (s *Source) trackedStruct(sc inspector.Cursor) bool {
	if kind, _ := sc.ParentEdge(); kind != edge.TypeSpec_Type {
		return false // anonymous struct
	}

	spec := sc.Parent().Node().(*ast.TypeSpec)
	if spec.Assign.IsValid() || spec.TypeParams != nil {
		return false
	}

	tn, ok := s.info.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return false
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return false
	}

	_, converted := s.converted[named]

	return !converted
}

func (s *Source) variablesRole(names []*ast.Ident) role {
	vars := make([]Element, 0, len(names))

	for _, name := range names {
		v, ok := s.info.Defs[name].(*types.Var)
		if !ok {
			continue
		}

		if v.Exported() && (v.IsField() || s.packageLevel(v)) {
			return unknown
		}

		vars = append(vars, Decl(v))
	}

	return retarget.VariableType[Element]{Variables: vars}
}

// valueRole returns the role of a value of the candidate type.
func (s *Source) valueRole(c inspector.Cursor) role {
	child, kind, index := climbParens(c)
	parent := child.Parent()

	switch kind {
	case edge.SelectorExpr_X:
		selection, ok := s.info.Selections[parent.Node().(*ast.SelectorExpr)]
		if !ok {
			return unresolved
		}

		return retarget.MemberQualifier[Element]{Member: Decl(selection.Obj())}

	case edge.CallExpr_Args:
		return s.argumentRole(parent.Node().(*ast.CallExpr), index)

	case edge.AssignStmt_Rhs:
		assign := parent.Node().(*ast.AssignStmt)
		if len(assign.Lhs) != len(assign.Rhs) {
			return unknown
		}

		return s.storeRole(assign.Tok, assign.Lhs[index])

	case edge.AssignStmt_Lhs:
		return s.writeRole(parent.Node().(*ast.AssignStmt), index)

	case edge.ValueSpec_Values:
		spec := parent.Node().(*ast.ValueSpec)
		if len(spec.Names) != len(spec.Values) {
			return unknown
		}

		return s.declareRole(spec.Names[index])

	case edge.ReturnStmt_Results:
		return s.returnRole(parent, index)

	case edge.KeyValueExpr_Value:
		if kind, _ := parent.ParentEdge(); kind != edge.CompositeLit_Elts {
			return unknown
		}

		kv := parent.Node().(*ast.KeyValueExpr)

		return s.elementRole(parent.Parent().Node().(*ast.CompositeLit), kv.Key, -1)

	case edge.KeyValueExpr_Key:
		if id, ok := child.Node().(*ast.Ident); ok {
			if v, ok := s.info.Uses[id].(*types.Var); ok && v.IsField() {
				return retarget.Written[Element]{Value: Expr(parent.Node().(*ast.KeyValueExpr).Value)}
			}
		}

		return unknown

	case edge.CompositeLit_Elts:
		return s.elementRole(parent.Node().(*ast.CompositeLit), nil, index)

	case edge.BinaryExpr_X, edge.BinaryExpr_Y:
		switch parent.Node().(*ast.BinaryExpr).Op {
		case token.EQL, token.NEQ:
			return retarget.IdentityCheck[Element]{}
		}

		return unknown

	case edge.SwitchStmt_Tag, edge.CaseClause_List:
		return retarget.IdentityCheck[Element]{}

	case edge.ExprStmt_X:
		return inert

	default:
		return unknown
	}
}

func (s *Source) argumentRole(call *ast.CallExpr, index int) role {
	fun := ast.Unparen(call.Fun)

	if tv, ok := s.info.Types[fun]; ok && tv.IsType() {
		return retarget.Assigned[Element]{Target: Expr(fun)} // conversion
	}

	if sel, ok := fun.(*ast.SelectorExpr); ok {
		if selection, ok := s.info.Selections[sel]; ok && selection.Kind() == types.MethodExpr {
			return unknown
		}
	}

	if call.Ellipsis.IsValid() && index == len(call.Args)-1 {
		return unknown
	}

	return retarget.Argument[Element]{Call: Expr(call), Index: index}
}

// storeRole returns the role of a value stored into lhs.
func (s *Source) storeRole(tok token.Token, lhs ast.Expr) role {
	if tok != token.ASSIGN && tok != token.DEFINE {
		return unknown
	}

	switch l := ast.Unparen(lhs).(type) {
	case *ast.Ident:
		if l.Name == "_" {
			return inert
		}

		if v, ok := s.info.ObjectOf(l).(*types.Var); ok {
			return retarget.Assigned[Element]{Target: Decl(v)}
		}

	case *ast.SelectorExpr:
		if v, ok := s.info.ObjectOf(l.Sel).(*types.Var); ok {
			return retarget.Assigned[Element]{Target: Decl(v)}
		}
	}

	return unknown
}

// writeRole returns the role of an assignment target.
func (s *Source) writeRole(assign *ast.AssignStmt, index int) role {
	if assign.Tok != token.ASSIGN && assign.Tok != token.DEFINE {
		return unknown
	}

	switch {
	case len(assign.Lhs) == len(assign.Rhs):
		return retarget.Written[Element]{Value: Expr(assign.Rhs[index])}

	case len(assign.Rhs) == 1:
		return retarget.Written[Element]{Value: s.tupleValue(assign.Rhs[0], index)}

	default:
		return unknown
	}
}

func (s *Source) declareRole(name *ast.Ident) role {
	if name.Name == "_" {
		return inert
	}

	if v, ok := s.info.Defs[name].(*types.Var); ok {
		return retarget.Assigned[Element]{Target: Decl(v)}
	}

	return unknown
}

func (s *Source) returnRole(ret inspector.Cursor, index int) role {
	for f := range ret.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		routine, ok := s.routineElement(f.Node())
		if !ok {
			return unknown
		}

		return retarget.Returned[Element]{Routine: routine, Index: index}
	}

	return unknown
}

func (s *Source) routineElement(n ast.Node) (Element, bool) {
	switch n := n.(type) {
	case *ast.FuncDecl:
		fn, ok := s.info.Defs[n.Name].(*types.Func)
		if !ok {
			return Element{}, false
		}

		return Decl(fn), true

	case *ast.FuncLit:
		return Element{Kind: KindLit, Node: n}, true

	default:
		return Element{}, false
	}
}

// elementRole returns the role of a composite literal element, either keyed
// by key or at position index.
func (s *Source) elementRole(lit *ast.CompositeLit, key ast.Expr, index int) role {
	t := s.info.TypeOf(lit)
	if t == nil {
		return unknown
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		var field *types.Var

		switch id, ok := key.(*ast.Ident); {
		case ok:
			field, _ = s.info.Uses[id].(*types.Var)

		case key == nil && index >= 0 && index < u.NumFields():
			field = u.Field(index)
		}

		if field == nil {
			return unknown
		}

		return retarget.Assigned[Element]{Target: Decl(field)}

	case *types.Slice, *types.Array:
		if at, ok := lit.Type.(*ast.ArrayType); ok {
			return retarget.Assigned[Element]{Target: Expr(at.Elt)}
		}

	case *types.Map:
		if mt, ok := lit.Type.(*ast.MapType); ok && key != nil {
			return retarget.Assigned[Element]{Target: Expr(mt.Value)}
		}
	}

	return unknown
}

// tupleRole returns the role of a single result of a multi-value call.
func (s *Source) tupleRole(e Element) role {
	call := e.Node.(ast.Expr)
	i := int(e.Index)

	tuple, ok := s.info.TypeOf(call).(*types.Tuple)
	if !ok || i >= tuple.Len() || !s.isCandidate(tuple.At(i).Type()) {
		return unknown
	}

	c, ok := s.cursor(call)
	if !ok {
		return unresolved
	}

	child, kind, _ := climbParens(c)
	parent := child.Parent()

	switch kind {
	case edge.AssignStmt_Rhs:
		assign := parent.Node().(*ast.AssignStmt)
		if len(assign.Rhs) != 1 || i >= len(assign.Lhs) {
			return unknown
		}

		return s.storeRole(assign.Tok, assign.Lhs[i])

	case edge.ValueSpec_Values:
		spec := parent.Node().(*ast.ValueSpec)
		if len(spec.Values) != 1 || i >= len(spec.Names) {
			return unknown
		}

		return s.declareRole(spec.Names[i])

	case edge.CallExpr_Args:
		outer := parent.Node().(*ast.CallExpr)
		if len(outer.Args) != 1 {
			return unknown
		}

		return s.argumentRole(outer, i)

	case edge.ReturnStmt_Results:
		return s.returnRole(parent, i)

	case edge.ExprStmt_X:
		return inert

	default:
		return unknown
	}
}
