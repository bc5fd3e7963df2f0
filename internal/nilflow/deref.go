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

package nilflow

import (
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ssa"
)

// derefOf reports the tracked parameter that instr dereferences, if
// any. A dereference is any use that faults when the value is nil:
// field access, indexing, storing or loading through a pointer, map
// update, slicing a *[N]T, a single-result type assertion, an interface
// method invocation through the value, or calling a func-typed value.
//
// Not dereferences: reassignment, nil comparisons, passing the value
// onward as an argument, map reads (defined on nil maps), and method
// calls with the value in receiver position (the callee may be
// nil-safe; a fault there is reported in the callee).
func (c *checker) derefOf(instr ssa.Instruction) (ssa.Value, bool) {
	switch instr := instr.(type) {
	case *ssa.FieldAddr:
		// &p.f
		return c.trackedValue(instr.X)

	case *ssa.Field:
		// p.f
		return c.trackedValue(instr.X)

	case *ssa.IndexAddr:
		// &p[i]
		return c.trackedValue(instr.X)

	case *ssa.UnOp:
		// *p
		if instr.Op == token.MUL {
			return c.trackedValue(instr.X)
		}

	case *ssa.Store:
		// *p = v
		return c.trackedValue(instr.Addr)

	case *ssa.MapUpdate:
		// m[k] = v
		return c.trackedValue(instr.Map)

	case *ssa.Slice:
		// p[:] of a *[N]T
		if _, ok := instr.X.Type().Underlying().(*types.Pointer); ok {
			return c.trackedValue(instr.X)
		}

	case *ssa.TypeAssert:
		// v.(T); the comma-ok form never panics.
		if !instr.CommaOk {
			return c.trackedValue(instr.X)
		}

	case ssa.CallInstruction:
		// In invoke mode Value is the interface receiver; in call mode it
		// is the callee, which faults when a tracked func-typed parameter
		// is called directly.
		return c.trackedValue(instr.Common().Value)
	}

	return nil, false
}

func (c *checker) trackedValue(v ssa.Value) (ssa.Value, bool) {
	_, ok := c.tracked[v]

	return v, ok
}
