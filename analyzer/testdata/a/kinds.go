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

package a

type Greeter interface {
	Greet() string
}

func Greet(g Greeter) string {
	return g.Greet() // want `missing nil check for parameter 'g' before dereference`
}

func GreetChecked(g Greeter) string {
	if g == nil {
		return ""
	}

	return g.Greet()
}

func Apply(f func(int) int, x int) int {
	return f(x) // want `missing nil check for parameter 'f' before dereference`
}

func Record(m map[string]int, k string) {
	m[k] = 1 // want `missing nil check for parameter 'm' before dereference`
}

// Count reads from m; reading a nil map is defined and never faults.
func Count(m map[string]int, k string) int {
	return m[k]
}

func First(xs []int) int {
	return xs[0] // want `missing nil check for parameter 'xs' before dereference`
}

func Cast(v any) string {
	return v.(*Config).Name // want `missing nil check for parameter 'v' before dereference`
}

// TryCast uses the comma-ok form, which never panics.
func TryCast(v any) bool {
	_, ok := v.(*Config)

	return ok
}
