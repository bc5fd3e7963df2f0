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

// Package testsource provides utilities for parsing, type-checking and
// building SSA form for Go source fragments in tests.
//
// It is designed to simplify testing of the nilguard analyzer by
// handling the common boilerplate of turning a handful of declarations
// into analyzable SSA functions.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

const testpkg = "test"

// Build parses src, a sequence of top-level declarations without the
// package clause, type-checks it as package "test" and builds SSA form
// for it. Fetch individual functions with [Func] or [Method].
func Build(tb testing.TB, src string) *ssa.Package {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, "package "+testpkg+"\n\n"+src, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v", err)
	}

	conf := &types.Config{Importer: importer.Default()}
	pkg := types.NewPackage(testpkg, testpkg)

	ssapkg, _, err := ssautil.BuildPackage(conf, fset, pkg, []*ast.File{f}, ssa.SanityCheckFunctions)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return ssapkg
}

// Func returns the package-level function named name.
func Func(tb testing.TB, pkg *ssa.Package, name string) *ssa.Function {
	tb.Helper()

	fn := pkg.Func(name)
	if fn == nil {
		tb.Fatalf("Can't find function %q", name)
	}

	return fn
}

// Method returns the method methodName declared on the named type
// typeName, looking it up through the pointer method set.
func Method(tb testing.TB, pkg *ssa.Package, typeName, methodName string) *ssa.Function {
	tb.Helper()

	obj := pkg.Pkg.Scope().Lookup(typeName)
	if obj == nil {
		tb.Fatalf("Can't find type %q", typeName)
	}

	ms := types.NewMethodSet(types.NewPointer(obj.Type()))
	for sel := range ms.Methods() {
		if sel.Obj().Name() == methodName {
			return pkg.Prog.MethodValue(sel)
		}
	}

	tb.Fatalf("Can't find method %q on type %q", methodName, typeName)

	return nil
}

// FuncObj returns the [types.Func] symbol for the package-level
// function named name.
func FuncObj(tb testing.TB, pkg *ssa.Package, name string) *types.Func {
	tb.Helper()

	fn, ok := pkg.Pkg.Scope().Lookup(name).(*types.Func)
	if !ok {
		tb.Fatalf("Can't find function %q", name)
	}

	return fn
}

// MethodObj returns the [types.Func] symbol for the method methodName
// declared on the named type typeName.
func MethodObj(tb testing.TB, pkg *ssa.Package, typeName, methodName string) *types.Func {
	tb.Helper()

	fn, ok := Method(tb, pkg, typeName, methodName).Object().(*types.Func)
	if !ok {
		tb.Fatalf("Method %q on type %q has no symbol", methodName, typeName)
	}

	return fn
}
