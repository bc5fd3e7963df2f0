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
	"log/slog"

	"fillmore-labs.com/nilguard/internal/config"
)

// Option configures specific behavior of a [New] nilguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithExcludeReceiver is an [Option] to configure whether method receivers
// are exempt from analysis. When set, a method's receiver is never a
// candidate, however it is used in the body.
func WithExcludeReceiver(exclude bool) Option { return receiverOption{exclude: exclude} }

type receiverOption struct{ exclude bool }

func (o receiverOption) apply(r *runOptions) {
	r.behavior.Set(config.ExcludeReceiver, o.exclude)
}

func (o receiverOption) LogAttr() slog.Attr {
	return slog.Bool("exclude-receiver", o.exclude)
}

// WithValidators is an [Option] to configure the pipe-separated list of
// nil-check validation methods. A call to a recognized validator
// establishes that its arguments are non-nil afterwards. Entries are
// bare method names or fully qualified forms with an optional M: prefix.
func WithValidators(validators string) Option { return validatorsOption{validators: validators} }

type validatorsOption struct{ validators string }

func (o validatorsOption) apply(r *runOptions) {
	r.validators = o.validators
}

func (o validatorsOption) LogAttr() slog.Attr {
	return slog.String("validators", o.validators)
}

// WithExcludedSymbols is an [Option] to configure the pipe-separated list
// of symbols excluded from analysis. Entries are bare names or qualified
// forms with M: (function or method), T: (named type) or N: (package)
// prefixes.
func WithExcludedSymbols(excluded string) Option { return excludedOption{excluded: excluded} }

type excludedOption struct{ excluded string }

func (o excludedOption) apply(r *runOptions) {
	r.excluded = o.excluded
}

func (o excludedOption) LogAttr() slog.Attr {
	return slog.String("excluded", o.excluded)
}

// WithLogger is an [Option] to configure the logger receiving
// configuration warnings, such as malformed validator entries.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger != nil {
		r.logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
