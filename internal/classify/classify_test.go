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

package classify_test

import (
	"go/types"
	"slices"
	"testing"

	"golang.org/x/tools/go/ssa"

	. "fillmore-labs.com/nilguard/internal/classify"
	"fillmore-labs.com/nilguard/internal/match"
	"fillmore-labs.com/nilguard/internal/testsource"
)

const src = `
type Config struct {
	Name string
}

type counter struct {
	n int
}

func Exported(c *Config, n int, tags []string) int {
	return n
}

func unexported(c *Config) string {
	return c.Name
}

func (c *Config) Rename(name string) {
	c.Name = name
}

func (c Config) Title() string {
	return c.Name
}

func (c *counter) Add(delta *int) {
	c.n += *delta
}
`

func TestVisible(t *testing.T) {
	t.Parallel()

	pkg := testsource.Build(t, src)

	tests := []struct {
		name string
		fn   string
		typ  string
		want bool
	}{
		{name: "exported_function", fn: "Exported", want: true},
		{name: "unexported_function", fn: "unexported", want: false},
		{name: "exported_method", fn: "Rename", typ: "Config", want: true},
		{name: "method_on_unexported_type", fn: "Add", typ: "counter", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var obj *types.Func
			if tt.typ != "" {
				obj = testsource.MethodObj(t, pkg, tt.typ, tt.fn)
			} else {
				obj = testsource.FuncObj(t, pkg, tt.fn)
			}

			if got := Visible(obj); got != tt.want {
				t.Errorf("Visible(%s) = %v, want %v", tt.fn, got, tt.want)
			}
		})
	}
}

func TestInScope(t *testing.T) {
	t.Parallel()

	pkg := testsource.Build(t, src)

	excl := match.NewExclusions(nil)
	if !InScope(testsource.Func(t, pkg, "Exported"), excl) {
		t.Error("Exported is not in scope")
	}

	if InScope(testsource.Func(t, pkg, "unexported"), excl) {
		t.Error("unexported is in scope")
	}

	specs, errs := match.ParseExclusions("Exported")
	if len(errs) > 0 {
		t.Fatalf("ParseExclusions errors: %v", errs)
	}

	if InScope(testsource.Func(t, pkg, "Exported"), match.NewExclusions(specs)) {
		t.Error("excluded function is in scope")
	}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	pkg := testsource.Build(t, src)

	tests := []struct {
		name            string
		fn              string
		typ             string
		excludeReceiver bool
		want            []string
	}{
		{
			// n is not nillable, c and tags are.
			name: "function_parameters",
			fn:   "Exported",
			want: []string{"c", "tags"},
		},
		{
			name: "pointer_receiver",
			fn:   "Rename",
			typ:  "Config",
			want: []string{"c"},
		},
		{
			name:            "excluded_receiver",
			fn:              "Rename",
			typ:             "Config",
			excludeReceiver: true,
			want:            nil,
		},
		{
			// A value receiver can never be nil.
			name: "value_receiver",
			fn:   "Title",
			typ:  "Config",
			want: nil,
		},
		{
			name:            "parameter_survives_receiver_exclusion",
			fn:              "Add",
			typ:             "counter",
			excludeReceiver: true,
			want:            []string{"delta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fn *ssa.Function
			if tt.typ != "" {
				fn = testsource.Method(t, pkg, tt.typ, tt.fn)
			} else {
				fn = testsource.Func(t, pkg, tt.fn)
			}

			var got []string
			for _, c := range Candidates(fn, tt.excludeReceiver) {
				got = append(got, c.Param.Name())
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Candidates(%s) = %v, want %v", tt.fn, got, tt.want)
			}
		})
	}
}
