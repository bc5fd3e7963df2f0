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

import "golang.org/x/tools/go/ssa"

// nilness is the guard lattice: unknown is below both definite values,
// and the definite values are incomparable. Merging is handled
// structurally: facts are only visible in dominated blocks, so a value
// known on a single branch is unknown again after the join.
type nilness int

const (
	isnonnil nilness = -1
	unknown  nilness = 0
	isnil    nilness = 1
)

var nilnessStrings = []string{"non-nil", "unknown", "nil"}

func (n nilness) String() string { return nilnessStrings[n+1] }

// guardFact records that the enclosing walk is dominated by the
// condition value == nil or value != nil.
type guardFact struct {
	value   ssa.Value
	nilness nilness
}

func (f guardFact) negate() guardFact { return guardFact{f.value, -f.nilness} }

// nilnessOf reports whether v is definitely nil, definitely non-nil, or
// unknown given the dominating facts.
func nilnessOf(stack []guardFact, v ssa.Value) nilness {
	// Is v intrinsically nil or non-nil?
	switch v := v.(type) {
	case *ssa.Alloc,
		*ssa.FieldAddr,
		*ssa.FreeVar,
		*ssa.Function,
		*ssa.Global,
		*ssa.IndexAddr,
		*ssa.MakeChan,
		*ssa.MakeClosure,
		*ssa.MakeInterface,
		*ssa.MakeMap,
		*ssa.MakeSlice:
		return isnonnil

	case *ssa.Const:
		if v.IsNil() {
			return isnil
		}

		return isnonnil
	}

	// Search dominating control-flow facts, most recent first.
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].value == v {
			return stack[i].nilness
		}
	}

	return unknown
}
