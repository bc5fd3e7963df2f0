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

// Package analyzer implements the nilguard static analysis pass.
//
// # Overview
//
// Nilguard detects exported functions and methods that dereference a
// nillable parameter — pointer, interface, map, slice or func — without
// first checking it against nil or passing it through a recognized
// validation method.
//
// # Example
//
// Reported:
//
//	func Describe(c *Config) string {
//	    return c.Name  // c may be nil: callers outside the package are unknown
//	}
//
// Not reported:
//
//	func Describe(c *Config) string {
//	    if c == nil {
//	        return ""
//	    }
//	    return c.Name
//	}
//
// Also not reported, with -validators=MustConfig:
//
//	func Describe(c *Config) string {
//	    MustConfig(c)  // panics when c is nil
//	    return c.Name
//	}
//
// # Guards
//
// A parameter counts as validated at a program point when every path
// from the function entry passes a nil comparison branching away from
// the dereference, an earlier dereference of the same parameter, or a
// call to a configured validation method consuming it. A guard on only
// one of several merging paths does not survive the merge.
//
// The analysis is deliberately biased toward over-reporting: control
// flow it cannot resolve counts as unguarded. Suppress individual
// findings with the usual lint mechanisms, or exclude whole symbols
// with the -excluded flag.
package analyzer
