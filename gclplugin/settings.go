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

package gclplugin

import nilguard "fillmore-labs.com/nilguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// ExcludeReceiver exempts method receivers from analysis.
	ExcludeReceiver *bool `json:"exclude-receiver,omitzero"`
	// Validators is the pipe-separated list of nil-check validation methods.
	Validators *string `json:"validators,omitzero"`
	// Excluded is the pipe-separated list of symbols excluded from analysis.
	Excluded *string `json:"excluded,omitzero"`
}

// Options converts [Settings] into a list of [nilguard.Option] for the
// nilguard analyzer. It processes settings and applies them only when
// explicitly set (non-nil).
func (s Settings) Options() []nilguard.Option {
	var opts []nilguard.Option

	opts = appendOption(opts, s.ExcludeReceiver, nilguard.WithExcludeReceiver)
	opts = appendOption(opts, s.Validators, nilguard.WithValidators)
	opts = appendOption(opts, s.Excluded, nilguard.WithExcludedSymbols)

	return opts
}

// appendOption appends a non-nil setting to a [nilguard.Option] list.
func appendOption[T any](opts []nilguard.Option, value *T, constructor func(T) nilguard.Option) []nilguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
