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

package excluded

// MyType is excluded by name in the test configuration; none of its
// methods are analyzed.
type MyType struct {
	Name string
}

func (m *MyType) Describe() string {
	return m.Name
}

func (m *MyType) Rename(name *string) {
	m.Name = *name
}

type Other struct {
	Name string
}

func (o *Other) Describe() string {
	return o.Name // want `missing nil check for receiver 'o' before dereference`
}

// Helper is excluded by bare function name.
func Helper(o *Other) string {
	return o.Name
}

func Unexcluded(o *Other) string {
	return o.Name // want `missing nil check for parameter 'o' before dereference`
}
