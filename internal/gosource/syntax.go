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
	"go/types"

	"golang.org/x/tools/go/ast/edge"

	"fillmore-labs.com/supertype/internal/retarget"
)

// Classifiable implements [retarget.Syntax].
func (*Source) Classifiable(e Element) bool {
	switch e.Kind {
	case KindExpr, KindTuple, KindImplicit, KindOpaque:
		return true

	default:
		return false
	}
}

// Slot implements [retarget.Syntax].
func (s *Source) Slot(decl Element) (retarget.Slot[Element], bool) {
	switch decl.Kind {
	case KindExpr:
		e := ast.Unparen(decl.Node.(ast.Expr))

		tv, ok := s.info.Types[e]
		if !ok || !tv.IsType() {
			return retarget.Slot[Element]{}, false
		}

		return retarget.Slot[Element]{Type: Expr(e), Tracked: s.isCandidate(tv.Type)}, true

	case KindDecl:
		v, ok := decl.Obj.(*types.Var)
		if !ok {
			return retarget.Slot[Element]{}, false
		}

		if e, ok := s.slots[v]; ok {
			if ellipsis, ok := e.(*ast.Ellipsis); ok {
				e = ellipsis.Elt
			}

			return retarget.Slot[Element]{Type: Expr(e), Tracked: s.isCandidate(s.info.TypeOf(e))}, true
		}

		if v.Pkg() == s.pkg && !v.IsField() {
			return retarget.Slot[Element]{Type: implicit(v), Tracked: s.isCandidate(v.Type())}, true
		}

		return retarget.Slot[Element]{Type: Element{Kind: KindVarType, Obj: v, Index: decl.Index}}, true

	default:
		return retarget.Slot[Element]{}, false
	}
}

// Initializer implements [retarget.Syntax].
func (s *Source) Initializer(decl Element) (Element, bool) {
	v, ok := decl.Obj.(*types.Var)
	if decl.Kind != KindDecl || !ok {
		return Element{}, false
	}

	if init, ok := s.inits[v]; ok {
		return init, true
	}

	if _, ok := s.zeros[v]; ok && !s.assumeNonNil {
		return zeroValue(v), true
	}

	return Element{}, false
}

// Parameters implements [retarget.Syntax].
func (s *Source) Parameters(routine Element) ([]Element, bool) {
	sig, ok := s.signature(routine)
	if !ok {
		return nil, false
	}

	params := variables(sig.Params())
	if sig.Variadic() && len(params) > 0 {
		params[len(params)-1].Index = 1
	}

	return params, sig.Variadic()
}

// Results implements [retarget.Syntax].
func (s *Source) Results(routine Element) []Element {
	sig, ok := s.signature(routine)
	if !ok {
		return nil
	}

	return variables(sig.Results())
}

func variables(vars *types.Tuple) []Element {
	elements := make([]Element, vars.Len())
	for i := range elements {
		elements[i] = Decl(vars.At(i))
	}

	return elements
}

func (s *Source) signature(routine Element) (*types.Signature, bool) {
	switch routine.Kind {
	case KindDecl:
		fn, ok := routine.Obj.(*types.Func)
		if !ok {
			return nil, false
		}

		return fn.Signature(), true

	case KindLit:
		sig, ok := s.info.TypeOf(routine.Node.(*ast.FuncLit)).(*types.Signature)

		return sig, ok

	default:
		return nil, false
	}
}

// ReturnValues implements [retarget.Syntax].
func (s *Source) ReturnValues(routine Element, index int) []Element {
	sig, ok := s.signature(routine)
	if !ok {
		return nil
	}

	var body ast.Node
	switch routine.Kind {
	case KindDecl:
		decl, ok := s.funcs[routine.Obj.(*types.Func)]
		if !ok {
			return nil
		}

		body = decl

	default:
		body = routine.Node
	}

	n := sig.Results().Len()

	var values []Element
	for _, ret := range s.returns[body] {
		switch {
		case len(ret.Results) == n:
			values = append(values, Expr(ret.Results[index]))

		case len(ret.Results) == 1:
			values = append(values, s.tupleValue(ret.Results[0], index))

		default: // naked return
			values = append(values, opaqueValue(ret, index))
		}
	}

	return values
}

// Call implements [retarget.Syntax].
func (s *Source) Call(use Element) (retarget.CallSite[Element], bool) {
	if use.Kind != KindExpr {
		return retarget.CallSite[Element]{}, false
	}

	c, ok := s.cursor(use.Node)
	if !ok {
		return retarget.CallSite[Element]{}, false
	}

	child, kind, _ := climbParens(c)
	if kind != edge.CallExpr_Fun {
		return retarget.CallSite[Element]{}, false
	}

	if sel, ok := use.Node.(*ast.SelectorExpr); ok {
		if selection, ok := s.info.Selections[sel]; ok && selection.Kind() == types.MethodExpr {
			return retarget.CallSite[Element]{}, false
		}
	}

	call := child.Parent().Node().(*ast.CallExpr)

	sig, ok := types.Unalias(s.info.TypeOf(call.Fun)).(*types.Signature)
	if !ok {
		return retarget.CallSite[Element]{}, false
	}

	site := retarget.CallSite[Element]{Call: Expr(call)}

	if len(call.Args) == 1 && !s.singleValue(call.Args[0]) {
		if tuple, ok := s.info.TypeOf(call.Args[0]).(*types.Tuple); ok {
			for i := range tuple.Len() {
				site.Args = append(site.Args, Tuple(call.Args[0], i))
			}
		}
	} else {
		for _, arg := range call.Args {
			site.Args = append(site.Args, Expr(arg))
		}
	}

	switch n := sig.Results().Len(); n {
	case 1:
		site.Results = []Element{Expr(call)}

	default:
		for i := range n {
			site.Results = append(site.Results, Tuple(call, i))
		}
	}

	return site, true
}

// InheritedPositions implements [retarget.Syntax].
//
// Go has no covariant overriding, so implementations share their positions.
func (*Source) InheritedPositions(Element, int) []Element {
	return nil
}
