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

// Package testprogram describes in-memory programs for testing the retargeting
// analysis. A [Program] is loaded from YAML and implements every collaborator
// the analysis queries, with program elements named by strings.
package testprogram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/supertype/internal/retarget"
)

// ErrLookup is yielded by usage searches configured to fail.
var ErrLookup = errors.New("usage search failed")

// Program is a description of the elements of a program.
type Program struct {
	Candidate string `yaml:"candidate"`
	Supertype string `yaml:"supertype"`

	// IdentityChecks enables retargeting of identity check operands.
	IdentityChecks bool `yaml:"identity-checks"`

	// Subtypes lists the proper supertypes of each type.
	Subtypes map[string][]string `yaml:"subtypes"`

	// Members lists the members available on each type.
	Members map[string][]string `yaml:"members"`

	// Usages are the references to the candidate to analyze.
	Usages []string `yaml:"usages"`

	Elements map[string]*Element `yaml:"elements"`

	Expect Expect `yaml:"expect"`
}

// Expect is the expected outcome of an analysis.
type Expect struct {
	Safe   []string `yaml:"safe"`
	Unsafe []string `yaml:"unsafe"`

	// Reasons maps unsafe elements to the reason of the seed their mark originates from.
	Reasons map[string]string `yaml:"reasons"`
}

// Element describes a single program element. Role fields apply to
// classifiable elements, declaration fields to variables and routines.
type Element struct {
	Role string `yaml:"role"`

	Member        string   `yaml:"member"`
	Result        string   `yaml:"result"`
	Variables     []string `yaml:"variables"`
	Routine       string   `yaml:"routine"`
	Indices       []int    `yaml:"indices"`
	Index         int      `yaml:"index"`
	Array         string   `yaml:"array"`
	Elements      []string `yaml:"elements"`
	Value         string   `yaml:"value"`
	Operand       string   `yaml:"operand"`
	Instantiation string   `yaml:"instantiation"`
	Call          string   `yaml:"call"`
	Target        string   `yaml:"target"`

	Terminal    bool             `yaml:"terminal"`
	Type        string           `yaml:"type"`
	Tracked     bool             `yaml:"tracked"`
	Init        string           `yaml:"init"`
	Usages      []string         `yaml:"usages"`
	UsagesError bool             `yaml:"usages-error"`
	Params      []string         `yaml:"params"`
	Variadic    bool             `yaml:"variadic"`
	Results     []string         `yaml:"results"`
	Returns     map[int][]string `yaml:"returns"`
	Overriding  []string         `yaml:"overriding"`
	Overridden  []string         `yaml:"overridden"`
	Resolves    string           `yaml:"resolves"`
	Site        *Site            `yaml:"site"`
	Inherited   map[int][]string `yaml:"inherited"`
}

// Site describes the call a routine use belongs to.
type Site struct {
	Call    string   `yaml:"call"`
	Args    []string `yaml:"args"`
	Results []string `yaml:"results"`
}

var roles = map[string]func(e *Element) retarget.Role[string]{
	"member": func(e *Element) retarget.Role[string] {
		return retarget.MemberQualifier[string]{Member: e.Member}
	},
	"identity": func(e *Element) retarget.Role[string] {
		return retarget.IdentityCheck[string]{Result: e.Result, HasResult: e.Result != ""}
	},
	"variable-type": func(e *Element) retarget.Role[string] {
		return retarget.VariableType[string]{Variables: e.Variables}
	},
	"return-type": func(e *Element) retarget.Role[string] {
		return retarget.ReturnType[string]{Routine: e.Routine, Indices: e.Indices}
	},
	"parameter-type": func(e *Element) retarget.Role[string] {
		return retarget.ParameterType[string]{Routine: e.Routine, Indices: e.Indices}
	},
	"array-element": func(e *Element) retarget.Role[string] {
		return retarget.ArrayElement[string]{Array: e.Array}
	},
	"array-construction": func(e *Element) retarget.Role[string] {
		return retarget.ArrayConstruction[string]{Elements: e.Elements, Value: e.Value}
	},
	"conversion": func(e *Element) retarget.Role[string] {
		return retarget.Conversion[string]{Operand: e.Operand, Result: e.Result}
	},
	"type-argument": func(e *Element) retarget.Role[string] {
		return retarget.TypeArgument[string]{Instantiation: e.Instantiation, Index: e.Index}
	},
	"argument": func(e *Element) retarget.Role[string] {
		return retarget.Argument[string]{Call: e.Call, Index: e.Index}
	},
	"assigned": func(e *Element) retarget.Role[string] {
		return retarget.Assigned[string]{Target: e.Target}
	},
	"returned": func(e *Element) retarget.Role[string] {
		return retarget.Returned[string]{Routine: e.Routine, Index: e.Index}
	},
	"written": func(e *Element) retarget.Role[string] {
		return retarget.Written[string]{Value: e.Value}
	},
	"inert":      func(*Element) retarget.Role[string] { return retarget.Inert[string]{} },
	"unresolved": func(*Element) retarget.Role[string] { return retarget.Unresolved[string]{} },
	"unknown":    func(*Element) retarget.Role[string] { return retarget.Unknown[string]{} },
}

// Load reads a [Program] from a YAML file.
func Load(name string) (*Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return p, nil
}

// Decode reads a [Program] from YAML.
func Decode(r io.Reader) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Program
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("can't decode program: %w", err)
	}

	for name, e := range p.Elements {
		if e == nil {
			return nil, fmt.Errorf("element %q has no description", name)
		}

		if _, ok := roles[e.Role]; e.Role != "" && !ok {
			return nil, fmt.Errorf("element %q has unknown role %q", name, e.Role)
		}
	}

	return &p, nil
}

// Env returns the collaborators of the analysis backed by p.
func (p *Program) Env() retarget.Env[string] {
	return retarget.Env[string]{Syntax: p, Resolver: p, Usages: p, Hierarchy: p}
}

func (p *Program) element(name string) *Element {
	if e, ok := p.Elements[name]; ok {
		return e
	}

	return &Element{}
}

// Role implements [retarget.Syntax].
func (p *Program) Role(e string) retarget.Role[string] {
	el := p.element(e)
	if role, ok := roles[el.Role]; ok {
		return role(el)
	}

	return nil
}

// Classifiable implements [retarget.Syntax].
func (p *Program) Classifiable(e string) bool {
	return !p.element(e).Terminal
}

// Slot implements [retarget.Syntax].
func (p *Program) Slot(decl string) (retarget.Slot[string], bool) {
	el := p.element(decl)
	if el.Type == "" {
		return retarget.Slot[string]{}, false
	}

	return retarget.Slot[string]{Type: el.Type, Tracked: el.Tracked}, true
}

// Initializer implements [retarget.Syntax].
func (p *Program) Initializer(variable string) (string, bool) {
	el := p.element(variable)

	return el.Init, el.Init != ""
}

// Parameters implements [retarget.Syntax].
func (p *Program) Parameters(routine string) ([]string, bool) {
	el := p.element(routine)

	return el.Params, el.Variadic
}

// Results implements [retarget.Syntax].
func (p *Program) Results(routine string) []string {
	return p.element(routine).Results
}

// ReturnValues implements [retarget.Syntax].
func (p *Program) ReturnValues(routine string, index int) []string {
	return p.element(routine).Returns[index]
}

// Call implements [retarget.Syntax].
func (p *Program) Call(use string) (retarget.CallSite[string], bool) {
	site := p.element(use).Site
	if site == nil {
		return retarget.CallSite[string]{}, false
	}

	return retarget.CallSite[string]{Call: site.Call, Args: site.Args, Results: site.Results}, true
}

// InheritedPositions implements [retarget.Syntax].
func (p *Program) InheritedPositions(instantiation string, index int) []string {
	return p.element(instantiation).Inherited[index]
}

// Resolve implements [retarget.Resolver].
func (p *Program) Resolve(_ context.Context, call string) (string, bool) {
	r := p.element(call).Resolves

	return r, r != ""
}

// FindUsages implements [retarget.UsageSearch].
func (p *Program) FindUsages(_ context.Context, decl string) iter.Seq2[string, error] {
	el := p.element(decl)

	return func(yield func(string, error) bool) {
		for _, u := range el.Usages {
			if !yield(u, nil) {
				return
			}
		}

		if el.UsagesError {
			yield("", ErrLookup)
		}
	}
}

// IsSubtype implements [retarget.InheritanceQuery].
func (p *Program) IsSubtype(candidate, base string) bool {
	if candidate == base {
		return true
	}

	return slices.Contains(p.Subtypes[candidate], base)
}

// HasMember implements [retarget.InheritanceQuery].
func (p *Program) HasMember(class, member string) bool {
	return slices.Contains(p.Members[class], member)
}

// OverridingRoutines implements [retarget.InheritanceQuery].
func (p *Program) OverridingRoutines(routine string) []string {
	return p.element(routine).Overriding
}

// OverriddenRoutines implements [retarget.InheritanceQuery].
func (p *Program) OverriddenRoutines(routine string) []string {
	return p.element(routine).Overridden
}
