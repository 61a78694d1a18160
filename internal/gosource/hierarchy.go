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
	"go/types"
	"slices"
)

// hierarchy relates interface methods of the package to the methods implementing them.
type hierarchy struct {
	// implementations maps interface methods to the concrete methods implementing them
	implementations map[*types.Func][]*types.Func

	// interfaces maps methods to the interface methods they implement,
	// and interface methods to the interface methods of the same name
	interfaces map[*types.Func][]*types.Func

	// opaque holds the names of methods of interfaces the package does not
	// declare as non-generic package-level types. Methods with these names
	// may implement interfaces the relation does not cover.
	opaque map[string]struct{}

	// concrete holds the non-generic, non-interface named types in declaration order
	concrete []*types.Named
}

func newHierarchy() hierarchy {
	return hierarchy{
		implementations: make(map[*types.Func][]*types.Func),
		interfaces:      make(map[*types.Func][]*types.Func),
		opaque:          make(map[string]struct{}),
	}
}

func (h *hierarchy) build(pkg *types.Package, info *types.Info) {
	var ifaces, concrete []*types.Named

	for _, obj := range info.Defs {
		tn, ok := obj.(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		if named.TypeParams().Len() > 0 {
			h.addOpaque(named)
			continue
		}

		switch {
		case !types.IsInterface(named):
			concrete = append(concrete, named)

		case tn.Parent() == pkg.Scope():
			ifaces = append(ifaces, named)

		default:
			h.addOpaque(named)
		}
	}

	// deterministic relation order
	byPos := func(a, b *types.Named) int { return int(a.Obj().Pos() - b.Obj().Pos()) }
	slices.SortFunc(ifaces, byPos)
	slices.SortFunc(concrete, byPos)

	byName := make(map[string][]*types.Func)

	for _, named := range ifaces {
		iface := named.Underlying().(*types.Interface)

		for i := range iface.NumMethods() {
			m := iface.Method(i)

			if !slices.Contains(byName[m.Name()], m) {
				byName[m.Name()] = append(byName[m.Name()], m)
			}

			for _, n := range concrete {
				h.relateImplementation(n, iface, m)
			}
		}
	}

	h.concrete = concrete

	for _, methods := range byName {
		for _, a := range methods {
			for _, b := range methods {
				if a != b {
					h.interfaces[a] = appendUnique(h.interfaces[a], b)
				}
			}
		}
	}
}

// relateImplementation relates the interface method m to the method of n or *n implementing it.
func (h *hierarchy) relateImplementation(n *types.Named, iface *types.Interface, m *types.Func) {
	for _, t := range [...]types.Type{n, types.NewPointer(n)} {
		if !types.Implements(t, iface) {
			continue
		}

		obj, _, _ := types.LookupFieldOrMethod(t, false, m.Pkg(), m.Name())

		fn, ok := obj.(*types.Func)
		if !ok {
			continue
		}

		fn = fn.Origin()
		h.implementations[m] = appendUnique(h.implementations[m], fn)
		h.interfaces[fn] = appendUnique(h.interfaces[fn], m)

		return
	}
}

// subclasses returns the named types implementing iface, directly or by pointer.
func (h *hierarchy) subclasses(iface *types.Interface) []*types.Named {
	var named []*types.Named

	for _, n := range h.concrete {
		if types.Implements(n, iface) || types.Implements(types.NewPointer(n), iface) {
			named = append(named, n)
		}
	}

	return named
}

func (h *hierarchy) addOpaque(named *types.Named) {
	if iface, ok := named.Underlying().(*types.Interface); ok {
		for i := range iface.NumMethods() {
			h.opaque[iface.Method(i).Name()] = struct{}{}
		}

		return
	}

	for i := range named.NumMethods() {
		h.opaque[named.Method(i).Name()] = struct{}{}
	}
}

func (h *hierarchy) isOpaque(name string) bool {
	_, ok := h.opaque[name]
	return ok
}

func appendUnique(s []*types.Func, fn *types.Func) []*types.Func {
	if slices.Contains(s, fn) {
		return s
	}

	return append(s, fn)
}
