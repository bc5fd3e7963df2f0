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

package match

import "go/types"

// Registry recognizes configured nil-check validation methods. It is
// built once per analyzed package and read-only afterwards.
type Registry struct {
	names map[string]struct{}
	funcs map[string]struct{}
}

// NewRegistry builds a [Registry] from parsed validator specs. Bare
// names take precedence over qualified entries in the sense that they
// match any method with that identifier, regardless of containing type
// or package; qualified entries match only the exact symbol.
func NewRegistry(specs []Spec) *Registry {
	r := &Registry{
		names: make(map[string]struct{}),
		funcs: make(map[string]struct{}),
	}

	for _, spec := range specs {
		switch spec.Kind {
		case ByName:
			r.names[spec.Pattern] = struct{}{}

		case ByFunc:
			r.funcs[spec.Pattern] = struct{}{}

		default: // rejected by ParseValidators
		}
	}

	return r
}

// Matches reports whether fn is a recognized validation method.
func (r *Registry) Matches(fn *types.Func) bool {
	if r == nil || fn == nil {
		return false
	}

	if _, ok := r.names[fn.Name()]; ok {
		return true
	}

	_, ok := r.funcs[fn.FullName()]

	return ok
}

// Exclusions suppresses analysis of configured symbols. A function is
// excluded when the function itself, its receiver type, or its package
// matches a configured entry.
type Exclusions struct {
	names map[string]struct{}
	funcs map[string]struct{}
	types map[string]struct{}
	pkgs  map[string]struct{}
}

// NewExclusions builds [Exclusions] from parsed exclusion specs.
func NewExclusions(specs []Spec) *Exclusions {
	e := &Exclusions{
		names: make(map[string]struct{}),
		funcs: make(map[string]struct{}),
		types: make(map[string]struct{}),
		pkgs:  make(map[string]struct{}),
	}

	for _, spec := range specs {
		switch spec.Kind {
		case ByName:
			e.names[spec.Pattern] = struct{}{}

		case ByFunc:
			e.funcs[spec.Pattern] = struct{}{}

		case ByType:
			e.types[spec.Pattern] = struct{}{}

		case ByPackage:
			e.pkgs[spec.Pattern] = struct{}{}
		}
	}

	return e
}

// ExcludesFunc reports whether fn or one of its containing symbols is
// excluded from analysis.
func (e *Exclusions) ExcludesFunc(fn *types.Func) bool {
	if e == nil || fn == nil {
		return false
	}

	if _, ok := e.names[fn.Name()]; ok {
		return true
	}

	if _, ok := e.funcs[fn.FullName()]; ok {
		return true
	}

	if pkg := fn.Pkg(); pkg != nil {
		if _, ok := e.pkgs[pkg.Path()]; ok {
			return true
		}

		if _, ok := e.names[pkg.Name()]; ok {
			return true
		}
	}

	if named := receiverNamed(fn); named != nil {
		obj := named.Obj()
		if _, ok := e.names[obj.Name()]; ok {
			return true
		}

		if _, ok := e.types[qualifiedName(obj)]; ok {
			return true
		}
	}

	return false
}

// receiverNamed returns the named receiver type of a method, looking
// through one level of pointer indirection, or nil for plain functions.
func receiverNamed(fn *types.Func) *types.Named {
	recv := fn.Signature().Recv()
	if recv == nil {
		return nil
	}

	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, _ := t.(*types.Named)

	return named
}

// qualifiedName returns the path/to/pkg.Name form of a type name.
func qualifiedName(obj *types.TypeName) string {
	if pkg := obj.Pkg(); pkg != nil {
		return pkg.Path() + "." + obj.Name()
	}

	return obj.Name()
}
