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

package validators

type Config struct {
	Name string
}

// MustConfig is registered as a nil-check validation method in the test
// configuration; it never returns when c is nil.
func MustConfig(c *Config) *Config {
	if c == nil {
		panic("nil config")
	}

	return c
}

func Render(c *Config) string {
	MustConfig(c)

	return c.Name
}

func RenderResult(c *Config) string {
	return MustConfig(c).Name
}

func RenderUnchecked(c *Config) string {
	return c.Name // want `missing nil check for parameter 'c' before dereference`
}

// RenderOther validates one parameter, not the other.
func RenderOther(c, d *Config) string {
	MustConfig(c)

	return c.Name + d.Name // want `missing nil check for parameter 'd' before dereference`
}
