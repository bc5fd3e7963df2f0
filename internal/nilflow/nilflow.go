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

// Package nilflow implements the per-function nil-check dataflow
// analysis.
//
// The analysis walks the dominator tree of a function's SSA control-flow
// graph, carrying a stack of nilness facts established by dominating nil
// comparisons, recognized validator calls, and earlier dereferences.
// Facts only ever flow to dominated blocks, so a parameter guarded on
// one arm of a branch is unknown again after the merge. Loop back-edges
// contribute nothing. Both choices are conservative: the analysis
// over-reports rather than under-reports.
package nilflow

import (
	"cmp"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ssa"

	"fillmore-labs.com/nilguard/internal/classify"
)

// Finding reports the first unguarded dereference of a candidate
// parameter. One Finding is produced per (function, parameter) pair,
// however many unguarded dereference sites exist.
type Finding struct {
	// Param is the dereferenced parameter.
	Param *ssa.Parameter

	// Ordinal is the parameter's declaration position.
	Ordinal int

	// Receiver is set when Param is the method receiver.
	Receiver bool

	// Pos locates the first unguarded dereference site.
	Pos token.Pos
}

// Check analyzes fn and returns one [Finding] for every candidate
// parameter that is dereferenced on some path not guarded by a nil
// check or a call recognized by validator. Findings are ordered by
// parameter declaration order. Check reads only fn's own control-flow
// graph and is safe to run concurrently across functions.
func Check(fn *ssa.Function, candidates []classify.Candidate, validator func(*types.Func) bool) []Finding {
	if len(fn.Blocks) == 0 || len(candidates) == 0 {
		return nil
	}

	c := &checker{
		tracked:   make(map[ssa.Value]classify.Candidate, len(candidates)),
		validator: validator,
		reported:  make(map[ssa.Value]bool, len(candidates)),
		seen:      make([]bool, len(fn.Blocks)),
	}
	for _, cand := range candidates {
		c.tracked[cand.Param] = cand
	}

	c.visit(fn.Blocks[0], make([]guardFact, 0, 20)) // 20 is plenty

	slices.SortStableFunc(c.findings, func(a, b Finding) int {
		return cmp.Compare(a.Ordinal, b.Ordinal)
	})

	return c.findings
}

type checker struct {
	tracked   map[ssa.Value]classify.Candidate
	validator func(*types.Func) bool
	reported  map[ssa.Value]bool
	seen      []bool
	findings  []Finding
}

// visit processes block b with the given dominating facts, then
// descends into the blocks b dominates.
func (c *checker) visit(b *ssa.BasicBlock, stack []guardFact) {
	if c.seen[b.Index] {
		return
	}
	c.seen[b.Index] = true

	for _, instr := range b.Instrs {
		if v, ok := c.derefOf(instr); ok {
			if nilnessOf(stack, v) != isnonnil && !c.reported[v] {
				c.reported[v] = true

				cand := c.tracked[v]
				c.findings = append(c.findings, Finding{
					Param:    cand.Param,
					Ordinal:  cand.Ordinal,
					Receiver: cand.Receiver,
					Pos:      instr.Pos(),
				})
			}

			// A dereference implies non-nil from this point on.
			stack = append(stack, guardFact{v, isnonnil})
		}

		if call, ok := instr.(ssa.CallInstruction); ok {
			stack = c.applyValidator(call, stack)
		}
	}

	// For nil comparison blocks, push a nilness fact when descending
	// into the true and false successor blocks.
	if binop, tsucc, fsucc := eq(b); binop != nil {
		xnil := nilnessOf(stack, binop.X)
		ynil := nilnessOf(stack, binop.Y)

		if ynil != unknown && xnil != unknown && (xnil == isnil || ynil == isnil) {
			// Degenerate condition: one successor's sole incoming edge is
			// impossible. Prune it and everything it dominates.
			var skip *ssa.BasicBlock
			if xnil == ynil {
				skip = fsucc
			} else {
				skip = tsucc
			}

			for _, d := range b.Dominees() {
				if d == skip && len(d.Preds) == 1 {
					continue
				}
				c.visit(d, stack)
			}

			return
		}

		if xnil == isnil || ynil == isnil {
			var f guardFact
			if xnil == isnil {
				// nil == y: the true successor learns y is nil.
				f = guardFact{binop.Y, isnil}
			} else {
				// x == nil: the true successor learns x is nil.
				f = guardFact{binop.X, isnil}
			}

			for _, d := range b.Dominees() {
				// Successor blocks learn a fact only at non-critical edges;
				// a block with multiple predecessors merges to unknown.
				s := stack
				if len(d.Preds) == 1 {
					switch d {
					case tsucc:
						s = append(s, f)
					case fsucc:
						s = append(s, f.negate())
					}
				}
				c.visit(d, s)
			}

			return
		}
	}

	for _, d := range b.Dominees() {
		c.visit(d, stack)
	}
}

// applyValidator marks every tracked argument of a recognized validator
// call as non-nil on the normal-return edge. Correspondence is
// positional: the validator is assumed to throw or return early when
// any of its arguments is nil. Dynamic calls with an unresolvable
// callee are conservatively not validators.
func (c *checker) applyValidator(call ssa.CallInstruction, stack []guardFact) []guardFact {
	callee := calleeOf(call)
	if callee == nil || !c.validator(callee) {
		return stack
	}

	for _, arg := range call.Common().Args {
		if _, ok := c.tracked[arg]; ok && nilnessOf(stack, arg) != isnonnil {
			stack = append(stack, guardFact{arg, isnonnil})
		}
	}

	return stack
}

// calleeOf resolves the called function symbol, or nil when the target
// is a builtin or dynamically dispatched.
func calleeOf(call ssa.CallInstruction) *types.Func {
	common := call.Common()
	if common.IsInvoke() {
		return common.Method
	}

	if callee := common.StaticCallee(); callee != nil {
		if obj, ok := callee.Object().(*types.Func); ok {
			return obj
		}
	}

	return nil
}

// eq returns the comparison and its true (equal) and false (not equal)
// successors when b ends in an equality test.
func eq(b *ssa.BasicBlock) (op *ssa.BinOp, tsucc, fsucc *ssa.BasicBlock) {
	if ifinstr, ok := b.Instrs[len(b.Instrs)-1].(*ssa.If); ok {
		if binop, ok := ifinstr.Cond.(*ssa.BinOp); ok {
			switch binop.Op {
			case token.EQL:
				return binop, b.Succs[0], b.Succs[1]
			case token.NEQ:
				return binop, b.Succs[1], b.Succs[0]
			}
		}
	}

	return nil, nil, nil
}
