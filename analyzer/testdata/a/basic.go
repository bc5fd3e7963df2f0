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

type Config struct {
	Name string
	Size int
}

func Describe(c *Config) string {
	if c.Name != "" { // want `missing nil check for parameter 'c' before dereference`
		return c.Name
	}

	return "unnamed"
}

func DescribeChecked(c *Config) string {
	if c == nil {
		return ""
	}

	if c.Name != "" {
		return c.Name
	}

	return "unnamed"
}

func DescribeGuarded(c *Config) string {
	if c != nil {
		return c.Name
	}

	return ""
}

func Value(p *int) int {
	return *p // want `missing nil check for parameter 'p' before dereference`
}

func Reset(p *int) {
	*p = 0 // want `missing nil check for parameter 'p' before dereference`
}

func SafeValue(p *int) int {
	if p == nil {
		return 0
	}

	return *p
}

// Twice dereferences c twice; only the first site is reported.
func Twice(c *Config) int {
	a := c.Size // want `missing nil check for parameter 'c' before dereference`
	b := c.Size

	return a + b
}

// Partial guards c on one of two merging paths only.
func Partial(c *Config, check bool) string {
	if check {
		if c == nil {
			return ""
		}
	}

	return c.Name // want `missing nil check for parameter 'c' before dereference`
}

// BothBranches dereferences c on the nil branch as well.
func BothBranches(c *Config) int {
	if c == nil {
		return c.Size // want `missing nil check for parameter 'c' before dereference`
	}

	return c.Size
}

func IsNil(c *Config) bool {
	return c == nil
}

func Forward(c *Config) string {
	return describe(c)
}

func describe(c *Config) string {
	return c.Name
}
