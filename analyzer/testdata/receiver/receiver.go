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

package receiver

type Counter struct {
	n int
}

// Add dereferences both its receiver and its parameter; with receivers
// excluded only the parameter is reported.
func (c *Counter) Add(delta *int) int {
	c.n += *delta // want `missing nil check for parameter 'delta' before dereference`

	return c.n
}

func (c *Counter) Value() int {
	return c.n
}
