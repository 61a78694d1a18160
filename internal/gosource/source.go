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
	"context"
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/supertype/internal/config"
	"fillmore-labs.com/supertype/internal/retarget"
)

// Source is the environment for retargeting one type of a package to an interface.
type Source struct {
	*Index

	candidate types.Type
	class     *types.TypeName
	pointer   bool

	super *types.TypeName

	assumeNonNil bool
}

// NewSource returns the environment retargeting the type of t to its interface,
// or false when the target does not apply to the package.
func (x *Index) NewSource(t config.Target, assumeNonNil bool) (*Source, bool) {
	super, iface, ok := x.lookupInterface(t.Interface)
	if !ok {
		return nil, false
	}

	path, name, pointer := config.SplitName(t.Type)

	class, ok := x.lookupTypeName(path, name)
	if !ok {
		return nil, false
	}

	return x.newSource(class, pointer, super, iface, assumeNonNil)
}

// Sources returns the environments for a target. A target without type
// selects every package-level type implementing the interface.
func (x *Index) Sources(t config.Target, assumeNonNil bool) []*Source {
	if t.Type != "" {
		if s, ok := x.NewSource(t, assumeNonNil); ok {
			return []*Source{s}
		}

		return nil
	}

	super, iface, ok := x.lookupInterface(t.Interface)
	if !ok {
		return nil
	}

	var sources []*Source

	for _, n := range x.hierarchy.subclasses(iface) {
		if !x.packageLevel(n.Obj()) {
			continue
		}

		if s, ok := x.newSource(n.Obj(), false, super, iface, assumeNonNil); ok {
			sources = append(sources, s)
		}
	}

	return sources
}

func (x *Index) lookupInterface(qualified string) (*types.TypeName, *types.Interface, bool) {
	path, name, _ := config.SplitName(qualified)

	super, ok := x.lookupTypeName(path, name)
	if !ok {
		return nil, nil, false
	}

	iface, ok := super.Type().Underlying().(*types.Interface)

	return super, iface, ok
}

func (x *Index) newSource(class *types.TypeName, pointer bool, super *types.TypeName, iface *types.Interface, assumeNonNil bool) (*Source, bool) {
	if class.IsAlias() {
		return nil, false
	}

	named, ok := class.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 || types.IsInterface(named) {
		return nil, false
	}

	var candidate types.Type = named
	switch {
	case pointer:
		candidate = types.NewPointer(named)

	case types.Implements(named, iface):

	default:
		candidate, pointer = types.NewPointer(named), true
	}

	if !types.Implements(candidate, iface) {
		return nil, false
	}

	s := &Source{
		Index:        x,
		candidate:    candidate,
		class:        class,
		pointer:      pointer,
		super:        super,
		assumeNonNil: assumeNonNil,
	}

	return s, true
}

func (x *Index) lookupTypeName(path, name string) (*types.TypeName, bool) {
	var obj types.Object

	switch {
	case path == "" || path == x.pkg.Path():
		if obj = x.pkg.Scope().Lookup(name); obj == nil && path == "" {
			obj = types.Universe.Lookup(name)
		}

	default:
		for _, imp := range x.pkg.Imports() {
			if imp.Path() == path {
				obj = imp.Scope().Lookup(name)
				break
			}
		}
	}

	tn, ok := obj.(*types.TypeName)

	return tn, ok
}

// Env returns the collaborators of the analysis.
func (s *Source) Env() retarget.Env[Element] {
	return retarget.Env[Element]{Syntax: s, Resolver: s, Usages: s, Hierarchy: s}
}

// Candidate returns the element of the candidate type.
func (s *Source) Candidate() Element {
	return Named(s.class, s.pointer)
}

// Supertype returns the element of the interface.
func (s *Source) Supertype() Element {
	return Named(s.super, false)
}

// Interface returns the type name of the interface.
func (s *Source) Interface() *types.TypeName {
	return s.super
}

// Usages returns the type expressions denoting the candidate type, in source order.
func (s *Source) Usages() []Element {
	var usages []Element
	for _, e := range s.typeExprs {
		if s.isCandidate(s.info.Types[e].Type) {
			usages = append(usages, Expr(e))
		}
	}

	return usages
}

func (s *Source) isCandidate(t types.Type) bool {
	return t != nil && types.Identical(t, s.candidate)
}

// typeOf returns the type an element denotes or has.
func (s *Source) typeOf(e Element) types.Type {
	switch e.Kind {
	case KindExpr:
		return s.info.TypeOf(e.Node.(ast.Expr))

	case KindNamed:
		if e.Index == 1 {
			return types.NewPointer(e.Obj.Type())
		}

		return e.Obj.Type()

	case KindDecl, KindImplicit, KindVarType:
		t := e.Obj.Type()
		if e.Index == 1 {
			if slice, ok := t.(*types.Slice); ok {
				return slice.Elem()
			}
		}

		return t

	default:
		return nil
	}
}

// IsSubtype implements [retarget.InheritanceQuery].
func (s *Source) IsSubtype(candidate, base Element) bool {
	v, t := s.typeOf(candidate), s.typeOf(base)
	if v == nil || t == nil {
		return false
	}

	return types.AssignableTo(v, t)
}

// HasMember implements [retarget.InheritanceQuery].
func (s *Source) HasMember(class, member Element) bool {
	if member.Obj == nil {
		return false
	}

	t := s.typeOf(class)
	if t == nil {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, false, member.Obj.Pkg(), member.Obj.Name())
	_, ok := obj.(*types.Func)

	return ok
}

// OverridingRoutines implements [retarget.InheritanceQuery].
func (s *Source) OverridingRoutines(routine Element) []Element {
	fn, ok := routine.Obj.(*types.Func)
	if !ok {
		return nil
	}

	return declElements(s.hierarchy.implementations[fn])
}

// OverriddenRoutines implements [retarget.InheritanceQuery].
func (s *Source) OverriddenRoutines(routine Element) []Element {
	fn, ok := routine.Obj.(*types.Func)
	if !ok {
		return nil
	}

	return declElements(s.hierarchy.interfaces[fn])
}

// SubclassesOf returns the types of the package implementing the interface class.
func (s *Source) SubclassesOf(class Element) []Element {
	t := s.typeOf(class)
	if t == nil {
		return nil
	}

	iface, ok := t.Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	var subclasses []Element
	for _, n := range s.hierarchy.subclasses(iface) {
		subclasses = append(subclasses, Named(n.Obj(), !types.Implements(n, iface)))
	}

	return subclasses
}

func declElements(fns []*types.Func) []Element {
	if len(fns) == 0 {
		return nil
	}

	elements := make([]Element, len(fns))
	for i, fn := range fns {
		elements[i] = Decl(fn)
	}

	return elements
}

// Resolve implements [retarget.Resolver].
func (s *Source) Resolve(_ context.Context, call Element) (Element, bool) {
	ce, ok := call.Node.(*ast.CallExpr)
	if call.Kind != KindExpr || !ok {
		return Element{}, false
	}

	fn, ok := typeutil.Callee(s.info, ce).(*types.Func)
	if !ok {
		return Element{}, false
	}

	return Decl(fn), true
}

// FindUsages implements [retarget.UsageSearch].
func (s *Source) FindUsages(_ context.Context, decl Element) iter.Seq2[Element, error] {
	var sites []ast.Expr
	if decl.Kind == KindDecl {
		sites = s.uses[decl.Obj]
	}

	return func(yield func(Element, error) bool) {
		for _, site := range sites {
			if !yield(Expr(site), nil) {
				return
			}
		}
	}
}
