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

// Package classify decides which functions are analyzed and which of
// their parameters are candidates for nil-check validation.
//
// A function is in scope when it is reachable from outside its package:
// an exported function, or an exported method declared on an exported
// named type. Unexported functions can only be called with arguments the
// package itself controls, so they are never analyzed, regardless of
// their bodies. Configured exclusions remove further functions from
// scope.
package classify

import (
	"go/types"

	"golang.org/x/tools/go/ssa"

	"fillmore-labs.com/nilguard/internal/match"
)

// Candidate is a nillable parameter of an in-scope function.
type Candidate struct {
	// Param is the SSA value of the formal parameter.
	Param *ssa.Parameter

	// Ordinal is the declaration position; the receiver of a method is 0.
	Ordinal int

	// Receiver is set when Param is the method receiver.
	Receiver bool
}

// InScope reports whether fn is subject to analysis at all.
func InScope(fn *ssa.Function, excl *match.Exclusions) bool {
	if fn.Parent() != nil {
		// Anonymous functions are not externally visible.
		return false
	}

	obj, ok := fn.Object().(*types.Func)
	if !ok {
		// Synthetic functions like wrappers and package initializers.
		return false
	}

	return Visible(obj) && !excl.ExcludesFunc(obj)
}

// Visible reports whether fn is reachable from outside its package:
// exported, and for methods declared on an exported named type.
func Visible(fn *types.Func) bool {
	if !fn.Exported() {
		return false
	}

	recv := fn.Signature().Recv()
	if recv == nil {
		return true
	}

	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)

	return ok && named.Obj().Exported()
}

// Nillable reports whether values of type t can be nil and fault on
// dereference. Channels are excluded: operations on a nil channel block
// rather than panic.
func Nillable(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Pointer,
		*types.Interface,
		*types.Map,
		*types.Slice,
		*types.Signature:
		return true

	default:
		return false
	}
}

// Candidates returns the parameters of fn eligible for analysis, in
// declaration order. The receiver of a method counts as the first
// parameter unless excludeReceiver is set; it is only ever a candidate
// when its own type is nillable, since a value receiver cannot be nil.
func Candidates(fn *ssa.Function, excludeReceiver bool) []Candidate {
	method := fn.Signature.Recv() != nil

	var cs []Candidate
	for i, param := range fn.Params {
		receiver := method && i == 0
		if receiver && excludeReceiver {
			continue
		}

		if !Nillable(param.Type()) {
			continue
		}

		cs = append(cs, Candidate{Param: param, Ordinal: i, Receiver: receiver})
	}

	return cs
}
