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

package config

// Config represents behavioral options for the nilguard analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to analyze generated files.
	IncludeGenerated Config = 1 << iota

	// ExcludeReceiver specifies whether method receivers are exempt from
	// candidate selection.
	ExcludeReceiver
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavior: generated files are
// skipped and method receivers are treated as ordinary parameters.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
