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

package analyzer

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/ssa"

	"fillmore-labs.com/nilguard/internal/classify"
	"fillmore-labs.com/nilguard/internal/config"
	"fillmore-labs.com/nilguard/internal/match"
	"fillmore-labs.com/nilguard/internal/nilflow"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the nilguard analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the SSA form from the pass results.
	ssainput, ok := p.ResultOf[buildssa.Analyzer].(*buildssa.SSA)
	if !ok {
		return nil, fmt.Errorf("nilguard: %s %w", buildssa.Analyzer.Name, ErrResultMissing)
	}

	// Stage 1: Compile the configuration into matchers, published
	// read-only before any function analysis starts.
	registry, exclusions := r.compileConfig(p)

	generated := classify.NewGeneratedFiles(p.Fset, p.Files)
	includeGenerated := r.behavior.Enabled(config.IncludeGenerated)
	excludeReceiver := r.behavior.Enabled(config.ExcludeReceiver)

	// Stage 2: Select the functions in scope.
	fns := make([]*ssa.Function, 0, len(ssainput.SrcFuncs))
	for _, fn := range ssainput.SrcFuncs {
		if !classify.InScope(fn, exclusions) {
			continue
		}

		if !includeGenerated && generated.Contains(p.Fset, fn.Pos()) {
			continue
		}

		fns = append(fns, fn)
	}

	// Stage 3: Analyze each function. Every analysis reads only the
	// function's own control-flow graph and the shared read-only
	// matchers, so the functions are checked concurrently.
	findings := make([][]nilflow.Finding, len(fns))

	var g errgroup.Group
	for i, fn := range fns {
		g.Go(func() error {
			if candidates := classify.Candidates(fn, excludeReceiver); len(candidates) > 0 {
				findings[i] = nilflow.Check(fn, candidates, registry.Matches)
			}

			return nil
		})
	}
	_ = g.Wait() // the workers never fail

	// Stage 4: Report, one diagnostic per (function, parameter), in
	// parameter declaration order within each function.
	for i, fn := range fns {
		for _, f := range findings[i] {
			pos := f.Pos
			if !pos.IsValid() {
				pos = fn.Pos()
			}

			what := "parameter"
			if f.Receiver {
				what = "receiver"
			}

			p.Reportf(pos, "missing nil check for %s '%s' before dereference", what, f.Param.Name())
		}
	}

	return nil, nil
}

// compileConfig parses the configured symbol lists. Malformed entries
// are skipped and surface as warnings on the configured logger, never
// as analysis failures.
func (r *runOptions) compileConfig(p *analysis.Pass) (*match.Registry, *match.Exclusions) {
	validators, errs := match.ParseValidators(r.validators)
	for _, err := range errs {
		r.logger.Warn("Skipping malformed validator entry",
			"analyzer", name, "package", p.Pkg.Path(), "error", err)
	}

	excluded, errs := match.ParseExclusions(r.excluded)
	for _, err := range errs {
		r.logger.Warn("Skipping malformed exclusion entry",
			"analyzer", name, "package", p.Pkg.Path(), "error", err)
	}

	return match.NewRegistry(validators), match.NewExclusions(excluded)
}
