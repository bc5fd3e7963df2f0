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

type Store struct {
	items map[string]int
}

// Len dereferences its receiver, which is an ordinary candidate by default.
func (s *Store) Len() int {
	return len(s.items) // want `missing nil check for receiver 's' before dereference`
}

func (s *Store) Reset() {
	if s == nil {
		return
	}

	s.items = nil
}

// Add is only visible through the exported Store type; the unguarded
// parameter is still reported.
func (s *Store) Add(k *string) {
	if s == nil {
		return
	}

	s.items[*k]++ // want `missing nil check for parameter 'k' before dereference`
}

type hidden struct {
	name string
}

// Name is an exported method on an unexported type: not externally
// visible, so it is never analyzed.
func (h *hidden) Name() string {
	return h.name
}

// Person exercises the delegating-constructor pattern.
type Person struct {
	Name string
	Age  int
}

func NewPerson(name string, age int) *Person {
	return &Person{Name: name, Age: age}
}

func ClonePerson(other *Person) *Person {
	return NewPerson(other.Name, other.Age) // want `missing nil check for parameter 'other' before dereference`
}
