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
)

// Index holds the facts about a package shared by all analyzed targets.
// It is built in a single preorder traversal.
type Index struct {
	pkg  *types.Package
	info *types.Info
	in   *inspector.Inspector

	// nodes maps syntax nodes to their inspector cursor index
	nodes map[ast.Node]int32

	// uses maps declared variables and functions to their use sites,
	// selector uses are normalized to the whole selector expression
	uses map[types.Object][]ast.Expr

	// slots maps variables to their declared type expression
	slots map[*types.Var]ast.Expr

	// inits maps variables to their initial value
	inits map[*types.Var]Element

	// zeros holds the variables starting with their zero value
	zeros map[*types.Var]struct{}

	funcs   map[*types.Func]*ast.FuncDecl
	returns map[ast.Node][]*ast.ReturnStmt // by *ast.FuncDecl or *ast.FuncLit

	// typeExprs are all type expressions, in source order
	typeExprs []ast.Expr

	// converted holds named struct types that are converted from or to
	converted map[*types.Named]struct{}

	hierarchy hierarchy
}

// NewIndex indexes the type-checked package.
func NewIndex(pkg *types.Package, info *types.Info, in *inspector.Inspector) *Index {
	x := &Index{
		pkg:       pkg,
		info:      info,
		in:        in,
		nodes:     make(map[ast.Node]int32),
		uses:      make(map[types.Object][]ast.Expr),
		slots:     make(map[*types.Var]ast.Expr),
		inits:     make(map[*types.Var]Element),
		zeros:     make(map[*types.Var]struct{}),
		funcs:     make(map[*types.Func]*ast.FuncDecl),
		returns:   make(map[ast.Node][]*ast.ReturnStmt),
		converted: make(map[*types.Named]struct{}),
		hierarchy: newHierarchy(),
	}

	for c := range in.Root().Preorder() {
		n := c.Node()
		x.nodes[n] = c.Index()

		switch n := n.(type) {
		case *ast.Ident:
			x.indexIdent(c, n)

		case *ast.FuncDecl:
			x.indexFuncDecl(n)

		case *ast.FuncLit:
			if sig, ok := x.info.TypeOf(n).(*types.Signature); ok {
				x.indexSignature(sig, n.Type)
			}

		case *ast.Field:
			x.indexField(c, n)

		case *ast.ValueSpec:
			x.indexValueSpec(n)

		case *ast.AssignStmt:
			if n.Tok == token.DEFINE {
				x.indexDefine(n)
			}

		case *ast.RangeStmt:
			if n.Tok == token.DEFINE {
				x.indexRange(n)
			}

		case *ast.ReturnStmt:
			x.indexReturn(c, n)

		case *ast.CallExpr:
			x.indexConversion(n)

		case *ast.InterfaceType:
			x.indexInterface(c, n)
		}

		if e, ok := n.(ast.Expr); ok {
			x.indexTypeExpr(c, e)
		}
	}

	x.hierarchy.build(x.pkg, x.info)

	return x
}

// cursor returns the inspector cursor of a node.
func (x *Index) cursor(n ast.Node) (inspector.Cursor, bool) {
	i, ok := x.nodes[n]
	if !ok {
		return inspector.Cursor{}, false
	}

	return x.in.At(i), true
}

func (x *Index) indexIdent(c inspector.Cursor, id *ast.Ident) {
	obj := x.info.Uses[id]
	switch obj.(type) {
	case *types.Var, *types.Func:

	default:
		return
	}

	var site ast.Expr = id
	if kind, _ := c.ParentEdge(); kind == edge.SelectorExpr_Sel {
		site = c.Parent().Node().(*ast.SelectorExpr)
	}

	key := origin(obj)
	x.uses[key] = append(x.uses[key], site)
}

func (x *Index) indexFuncDecl(decl *ast.FuncDecl) {
	fn, ok := x.info.Defs[decl.Name].(*types.Func)
	if !ok {
		return
	}

	x.funcs[fn] = decl

	sig := fn.Signature()
	x.indexSignature(sig, decl.Type)

	if recv := sig.Recv(); recv != nil && decl.Recv != nil && len(decl.Recv.List) == 1 {
		x.slots[recv] = decl.Recv.List[0].Type
	}
}

func (x *Index) indexSignature(sig *types.Signature, ft *ast.FuncType) {
	x.indexFields(sig.Params(), ft.Params)
	x.indexFields(sig.Results(), ft.Results)
}

// indexFields records the type expressions of a parameter or result list,
// including unnamed ones.
func (x *Index) indexFields(vars *types.Tuple, list *ast.FieldList) {
	if list == nil {
		return
	}

	i := 0
	for _, field := range list.List {
		for range max(1, len(field.Names)) {
			if i < vars.Len() {
				x.slots[vars.At(i)] = field.Type
			}
			i++
		}
	}
}

func (x *Index) indexField(c inspector.Cursor, field *ast.Field) {
	switch kind, _ := c.Parent().ParentEdge(); kind {
	case edge.StructType_Fields:
		for _, name := range field.Names {
			if v, ok := x.info.Defs[name].(*types.Var); ok {
				x.slots[v] = field.Type
				x.zeros[v] = struct{}{}
			}
		}

	case edge.InterfaceType_Methods:
		ft, ok := field.Type.(*ast.FuncType)
		if !ok || len(field.Names) != 1 {
			return
		}

		if fn, ok := x.info.Defs[field.Names[0]].(*types.Func); ok {
			x.indexSignature(fn.Signature(), ft)
		}
	}
}

func (x *Index) indexValueSpec(spec *ast.ValueSpec) {
	for i, name := range spec.Names {
		v, ok := x.info.Defs[name].(*types.Var)
		if !ok {
			continue
		}

		if spec.Type != nil {
			x.slots[v] = spec.Type
		}

		x.indexInit(v, spec.Values, i)
	}
}

func (x *Index) indexDefine(assign *ast.AssignStmt) {
	for i, lhs := range assign.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok {
			continue
		}

		if v, ok := x.info.Defs[id].(*types.Var); ok {
			x.indexInit(v, assign.Rhs, i)
		}
	}
}

// indexInit records the initial value of v, declared at index i with values.
func (x *Index) indexInit(v *types.Var, values []ast.Expr, i int) {
	switch len(values) {
	case 0:
		x.zeros[v] = struct{}{}

	case 1:
		if i == 0 && x.singleValue(values[0]) {
			x.inits[v] = Expr(values[0])
			break
		}

		x.inits[v] = x.tupleValue(values[0], i)

	default:
		if i < len(values) {
			x.inits[v] = Expr(values[i])
		}
	}
}

// singleValue reports whether e is not a tuple or comma-ok expression.
func (x *Index) singleValue(e ast.Expr) bool {
	tv, ok := x.info.Types[e]
	if !ok {
		return false
	}

	_, tuple := tv.Type.(*types.Tuple)

	return !tuple
}

// tupleValue returns the element of value i of a multi-value expression.
func (x *Index) tupleValue(e ast.Expr, i int) Element {
	if call, ok := ast.Unparen(e).(*ast.CallExpr); ok {
		if _, tuple := x.info.TypeOf(call).(*types.Tuple); tuple {
			return Tuple(call, i)
		}
	}

	return opaqueValue(e, i)
}

func (x *Index) indexRange(stmt *ast.RangeStmt) {
	for i, e := range [...]ast.Expr{stmt.Key, stmt.Value} {
		id, ok := e.(*ast.Ident)
		if !ok {
			continue
		}

		if v, ok := x.info.Defs[id].(*types.Var); ok {
			x.inits[v] = opaqueValue(stmt, i)
		}
	}
}

func (x *Index) indexReturn(c inspector.Cursor, ret *ast.ReturnStmt) {
	for f := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		routine := f.Node()
		x.returns[routine] = append(x.returns[routine], ret)

		break
	}
}

// indexConversion records named struct types involved in conversions.
func (x *Index) indexConversion(call *ast.CallExpr) {
	if len(call.Args) != 1 {
		return
	}

	if tv, ok := x.info.Types[call.Fun]; !ok || !tv.IsType() {
		return
	}

	for _, t := range [...]types.Type{x.info.TypeOf(call.Fun), x.info.TypeOf(call.Args[0])} {
		if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
			t = ptr.Elem()
		}

		named, ok := types.Unalias(t).(*types.Named)
		if !ok {
			continue
		}

		if _, ok := named.Underlying().(*types.Struct); ok {
			x.converted[named.Origin()] = struct{}{}
		}
	}
}

// indexInterface records the method names of interfaces that are not declared
// as non-generic package-level types.
func (x *Index) indexInterface(c inspector.Cursor, it *ast.InterfaceType) {
	if kind, _ := c.ParentEdge(); kind == edge.TypeSpec_Type {
		spec := c.Parent().Node().(*ast.TypeSpec)
		if tn, ok := x.info.Defs[spec.Name].(*types.TypeName); ok && x.packageLevel(tn) && spec.TypeParams == nil && !spec.Assign.IsValid() {
			return
		}
	}

	iface, ok := x.info.TypeOf(it).(*types.Interface)
	if !ok {
		return
	}

	for i := range iface.NumMethods() {
		x.hierarchy.opaque[iface.Method(i).Name()] = struct{}{}
	}
}

func (x *Index) indexTypeExpr(c inspector.Cursor, e ast.Expr) {
	if _, ok := e.(*ast.ParenExpr); ok {
		return
	}

	if kind, _ := c.ParentEdge(); kind == edge.SelectorExpr_Sel {
		return
	}

	if tv, ok := x.info.Types[e]; ok && tv.IsType() {
		x.typeExprs = append(x.typeExprs, e)
	}
}

func (x *Index) packageLevel(obj types.Object) bool {
	return obj.Parent() == x.pkg.Scope()
}
