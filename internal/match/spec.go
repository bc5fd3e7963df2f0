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

// Package match resolves pipe-separated symbol lists into matchable
// predicates over [types.Func] symbols.
//
// An entry is either a bare identifier, matching any symbol with that
// simple name, or a qualified form carrying a kind prefix:
//
//   - M:path/to/pkg.Func or M:(path/to/pkg.Type).Method — a function or
//     method, in the notation of [types.Func.FullName]. The M: prefix is
//     optional for entries that are recognizably qualified.
//   - T:path/to/pkg.Type — a named type; matches every method declared
//     on that type.
//   - N:path/to/pkg — a package; matches every symbol it declares.
//
// Malformed entries are skipped, never fatal; the caller decides how to
// surface the accompanying errors.
package match

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind discriminates the forms a symbol-list entry can take.
type Kind uint8

const (
	// ByName matches any symbol with the given simple name.
	ByName Kind = iota

	// ByFunc matches a function or method by its fully qualified name.
	ByFunc

	// ByType matches every method of a fully qualified named type.
	ByType

	// ByPackage matches every symbol declared in a package.
	ByPackage
)

// Spec is one parsed entry of a pipe-separated symbol list.
type Spec struct {
	Kind    Kind
	Pattern string
}

// ParseValidators parses a pipe-separated list of nil-check validation
// methods. Only bare names and function entries are meaningful for
// validators; type and package entries are rejected.
func ParseValidators(list string) ([]Spec, []error) {
	return parseList(list, false)
}

// ParseExclusions parses a pipe-separated list of excluded symbols.
func ParseExclusions(list string) ([]Spec, []error) {
	return parseList(list, true)
}

func parseList(list string, exclusion bool) ([]Spec, []error) {
	var (
		specs []Spec
		errs  []error
	)

	for entry := range strings.SplitSeq(list, "|") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		spec, err := parseEntry(entry, exclusion)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		specs = append(specs, spec)
	}

	return specs, errs
}

func parseEntry(entry string, exclusion bool) (Spec, error) {
	if kind, pattern, ok := strings.Cut(entry, ":"); ok && len(kind) == 1 {
		return parseQualified(kind, pattern, exclusion)
	}

	if strings.ContainsAny(entry, "./()") {
		// Qualified function without the optional M: prefix.
		return Spec{Kind: ByFunc, Pattern: entry}, nil
	}

	if !identifier(entry) {
		return Spec{}, fmt.Errorf("entry %q is not a valid identifier", entry)
	}

	return Spec{Kind: ByName, Pattern: entry}, nil
}

func parseQualified(kind, pattern string, exclusion bool) (Spec, error) {
	if pattern == "" {
		return Spec{}, fmt.Errorf("entry %q has an empty %s: pattern", kind+":", kind)
	}

	switch kind {
	case "M":
		return Spec{Kind: ByFunc, Pattern: pattern}, nil

	case "T":
		if !exclusion {
			return Spec{}, fmt.Errorf("type entry %q is not a valid validator", "T:"+pattern)
		}

		return Spec{Kind: ByType, Pattern: pattern}, nil

	case "N":
		if !exclusion {
			return Spec{}, fmt.Errorf("package entry %q is not a valid validator", "N:"+pattern)
		}

		return Spec{Kind: ByPackage, Pattern: pattern}, nil

	default:
		return Spec{}, fmt.Errorf("unknown symbol kind %q in entry %q", kind, kind+":"+pattern)
	}
}

// identifier reports whether s is a plain Go identifier.
func identifier(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}

	return s != ""
}
