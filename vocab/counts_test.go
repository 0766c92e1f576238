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

package vocab

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts(t *testing.T) {
	c := CountTokens("a", "c", "-", "d", "c", "a", "b", "r", "a", "c", "d")
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, int64(11), c.Total())
	assert.Equal(t, 3, c.Get("a"))
	assert.Equal(t, 3, c.Get("c"))
	assert.Equal(t, 1, c.Get("-"))
	assert.Equal(t, 2, c.Get("d"))
	assert.Equal(t, 1, c.Get("b"))
	assert.Equal(t, 1, c.Get("r"))
	assert.Equal(t, 0, c.Get("z"))
	// tokens iterate in the order they were first seen
	assert.Equal(t, []string{"a", "c", "-", "d", "b", "r"}, slices.Collect(c.Tokens()))
	i, ok := c.Position("a")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	_, ok = c.Position("z")
	assert.False(t, ok)
	token, count := c.At(3)
	assert.Equal(t, "d", token)
	assert.Equal(t, 2, count)
	token, count = c.At(100)
	assert.Empty(t, token)
	assert.Zero(t, count)
}

func TestCountsAdd(t *testing.T) {
	c := NewCounts()
	c.Add("a", 2)
	c.Add("a", 3)
	c.Add("b", 0)
	c.Add("b", -1)
	assert.Equal(t, 5, c.Get("a"))
	assert.Equal(t, 0, c.Get("b"))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(5), c.Total())
}

func TestCountsMerge(t *testing.T) {
	a := CountTokens("a", "b", "a")
	b := CountTokens("b", "c")
	a.Merge(b)
	assert.Equal(t, 2, a.Get("a"))
	assert.Equal(t, 2, a.Get("b"))
	assert.Equal(t, 1, a.Get("c"))
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(a.Tokens()))
	assert.Equal(t, int64(5), a.Total())
}

func TestCountsFilter(t *testing.T) {
	c := CountTokens("a", "c", "-", "d", "c", "a", "b", "r", "a", "c", "d")
	filtered := c.Filter(func(token string, count int) bool {
		return count >= 2
	})
	assert.Equal(t, []TokenCount{{"a", 3}, {"c", 3}, {"d", 2}}, filtered.Pairs())
	// the source counter is untouched
	assert.Equal(t, 6, c.Len())
}

func TestCountsEqual(t *testing.T) {
	a := CountTokens("a", "b", "b")
	b := CountTokens("b", "a", "b")
	// the order tokens were seen in does not matter
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	b.Update("c")
	assert.False(t, a.Equal(b))
}

func TestCountsClone(t *testing.T) {
	a := CountTokens("a", "b", "b")
	clone := a.Clone()
	assert.True(t, a.Equal(clone))
	assert.Equal(t, slices.Collect(a.Tokens()), slices.Collect(clone.Tokens()))
	clone.Update("a")
	assert.False(t, a.Equal(clone))
	assert.Equal(t, 1, a.Get("a"))
}
