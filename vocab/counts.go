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
	"iter"

	"modernc.org/strutil"
)

// TokenCount is a token paired with its occurrence count.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Counts tallies token occurrences and remembers the order tokens were first
// seen in. Create with NewCounts or CountTokens. Not safe for concurrent use.
type Counts struct {
	pool    *strutil.Pool
	indices map[string]int
	tokens  []string
	counts  []int
	total   int64
}

// NewCounts creates an empty counter.
func NewCounts() *Counts {
	return &Counts{
		pool:    strutil.NewPool(),
		indices: make(map[string]int),
	}
}

// CountTokens tallies a token sequence into a fresh counter.
func CountTokens(tokens ...string) *Counts {
	c := NewCounts()
	c.Update(tokens...)
	return c
}

// Add increases the count of a token by n. Counts never go negative, so a
// non-positive n is a no-op.
func (c *Counts) Add(token string, n int) {
	if n <= 0 {
		return
	}
	if i, ok := c.indices[token]; ok {
		c.counts[i] += n
	} else {
		token = c.pool.Align(token)
		c.indices[token] = len(c.tokens)
		c.tokens = append(c.tokens, token)
		c.counts = append(c.counts, n)
	}
	c.total += int64(n)
}

// Update counts every token in the sequence once.
func (c *Counts) Update(tokens ...string) {
	for _, token := range tokens {
		c.Add(token, 1)
	}
}

// Merge adds every count in o to the counter.
func (c *Counts) Merge(o *Counts) {
	for i, token := range o.tokens {
		c.Add(token, o.counts[i])
	}
}

// Get returns the count of a token. Tokens never seen count zero.
func (c *Counts) Get(token string) int {
	if i, ok := c.indices[token]; ok {
		return c.counts[i]
	}
	return 0
}

// Position returns the position a token was first seen at.
func (c *Counts) Position(token string) (int, bool) {
	i, ok := c.indices[token]
	return i, ok
}

// At returns the token and count at position i.
func (c *Counts) At(i int) (string, int) {
	if i < 0 || i >= len(c.tokens) {
		return "", 0
	}
	return c.tokens[i], c.counts[i]
}

// Len returns the number of distinct tokens.
func (c *Counts) Len() int {
	return len(c.tokens)
}

// Total returns the total number of occurrences counted so far.
func (c *Counts) Total() int64 {
	return c.total
}

// Tokens iterates over distinct tokens in the order they were first seen.
func (c *Counts) Tokens() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, token := range c.tokens {
			if !yield(token) {
				return
			}
		}
	}
}

// Pairs returns all tokens with their counts in the order they were first seen.
func (c *Counts) Pairs() []TokenCount {
	pairs := make([]TokenCount, len(c.tokens))
	for i, token := range c.tokens {
		pairs[i] = TokenCount{Token: token, Count: c.counts[i]}
	}
	return pairs
}

// Filter returns a new counter holding the tokens accepted by keep, in the
// order they were first seen.
func (c *Counts) Filter(keep func(token string, count int) bool) *Counts {
	filtered := NewCounts()
	for i, token := range c.tokens {
		if keep(token, c.counts[i]) {
			filtered.Add(token, c.counts[i])
		}
	}
	return filtered
}

// Clone returns a deep copy of the counter.
func (c *Counts) Clone() *Counts {
	clone := NewCounts()
	clone.Merge(c)
	return clone
}

// Equal reports whether two counters hold the same counts. The order tokens
// were seen in does not participate.
func (c *Counts) Equal(o *Counts) bool {
	if c.Len() != o.Len() {
		return false
	}
	for i, token := range c.tokens {
		if o.Get(token) != c.counts[i] {
			return false
		}
	}
	return true
}
