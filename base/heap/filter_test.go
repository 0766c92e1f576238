// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKFilter(t *testing.T) {
	a := NewTopKFilter[string, int](3)
	a.Push("a", 2)
	a.Push("b", 8)
	a.Push("c", 1)
	values := a.PopAllValues()
	assert.Equal(t, []string{"b", "a", "c"}, values)

	a = NewTopKFilter[string, int](3)
	a.Push("a", 2)
	a.Push("b", 8)
	a.Push("c", 1)
	a.Push("d", 2)
	a.Push("e", 5)
	a.Push("f", 10)
	a.Push("g", 7)
	a.Push("h", 9)
	elems := a.PopAll()
	assert.Equal(t, []Elem[string, int]{
		{Value: "f", Weight: 10},
		{Value: "h", Weight: 9},
		{Value: "b", Weight: 8},
	}, elems)
}
