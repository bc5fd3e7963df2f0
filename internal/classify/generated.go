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

package classify

import (
	"go/ast"
	"go/token"
)

// GeneratedFiles records which files of a package carry a standard
// "Code generated ... DO NOT EDIT." comment.
type GeneratedFiles map[*token.File]bool

// NewGeneratedFiles scans files for the generated-code marker.
func NewGeneratedFiles(fset *token.FileSet, files []*ast.File) GeneratedFiles {
	g := make(GeneratedFiles)
	for _, f := range files {
		if ast.IsGenerated(f) {
			g[fset.File(f.Pos())] = true
		}
	}

	return g
}

// Contains reports whether pos lies in a generated file.
func (g GeneratedFiles) Contains(fset *token.FileSet, pos token.Pos) bool {
	return pos.IsValid() && g[fset.File(pos)]
}
