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

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

var corpus = []string{"a", "c", "-", "d", "c", "a", "b", "r", "a", "c", "d"}

func TestVocabulary(t *testing.T) {
	v, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.Equal(t, 2, v.Cutoff())
	assert.Equal(t, "<UNK>", v.UnkLabel())
	// counts below the cutoff are kept
	assert.Equal(t, 3, v.Count("a"))
	assert.Equal(t, 3, v.Count("c"))
	assert.Equal(t, 2, v.Count("d"))
	assert.Equal(t, 1, v.Count("b"))
	assert.Equal(t, 1, v.Count("r"))
	assert.Equal(t, 1, v.Count("-"))
	assert.Equal(t, 0, v.Count("z"))
	// membership requires the cutoff
	assert.True(t, v.Contains("a"))
	assert.True(t, v.Contains("c"))
	assert.True(t, v.Contains("d"))
	assert.False(t, v.Contains("b"))
	assert.False(t, v.Contains("-"))
	assert.False(t, v.Contains("z"))
	assert.True(t, v.Contains("<UNK>"))
	// members iterate in the order first seen, the unknown label last
	assert.Equal(t, []string{"a", "c", "d", "<UNK>"}, slices.Collect(v.Members()))
	assert.Equal(t, 4, v.Len())
}

func TestCutoffNotValid(t *testing.T) {
	_, err := New(0, DefaultUnkLabel)
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = FromTokens(corpus, -1, DefaultUnkLabel)
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = FromCounts(NewCounts(), 0, DefaultUnkLabel)
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = Adopt(NewCounts(), 0, DefaultUnkLabel)
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestLookup(t *testing.T) {
	v, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.Equal(t, "a", v.Lookup("a"))
	assert.Equal(t, "<UNK>", v.Lookup("b"))
	assert.Equal(t, "<UNK>", v.Lookup("z"))
	assert.Equal(t, "<UNK>", v.Lookup("<UNK>"))
	mapped := slices.Collect(v.LookupSeq(slices.Values([]string{"p", "a", "r", "d", "b", "c"})))
	assert.Equal(t, []string{"<UNK>", "a", "<UNK>", "d", "<UNK>", "c"}, mapped)
	// looking the same sequence up twice gives the same result
	mapped = slices.Collect(v.LookupSeq(slices.Values([]string{"p", "a", "r", "d", "b", "c"})))
	assert.Equal(t, []string{"<UNK>", "a", "<UNK>", "d", "<UNK>", "c"}, mapped)
	// lookups never count
	assert.Equal(t, 0, v.Count("p"))
}

func TestLookupSeqLazy(t *testing.T) {
	v, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	produced := 0
	source := func(yield func(string) bool) {
		for _, token := range []string{"p", "a", "r"} {
			produced++
			if !yield(token) {
				return
			}
		}
	}
	// tokens are pulled from the source one at a time
	for range v.LookupSeq(source) {
		break
	}
	assert.Equal(t, 1, produced)
}

func TestUpdate(t *testing.T) {
	v, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.False(t, v.Contains("b"))
	v.Update("b", "b", "c")
	assert.Equal(t, 3, v.Count("b"))
	assert.True(t, v.Contains("b"))
	assert.Equal(t, 4, v.Count("c"))
	assert.Equal(t, []string{"a", "c", "d", "b", "<UNK>"}, slices.Collect(v.Members()))
	assert.Equal(t, 5, v.Len())
}

func TestUnkLabelCollision(t *testing.T) {
	// a counted token spelled like the unknown label keeps the pseudo count
	v, err := FromTokens([]string{"<UNK>", "b", "b", "b"}, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.Equal(t, 2, v.Count("<UNK>"))
	assert.Equal(t, 1, v.Counts().Get("<UNK>"))
	assert.True(t, v.Contains("<UNK>"))
	assert.Equal(t, []string{"<UNK>", "b", "<UNK>"}, slices.Collect(v.Members()))
	assert.Equal(t, 3, v.Len())
}

func TestEmptyVocabulary(t *testing.T) {
	v, err := New(2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.Empty(t, slices.Collect(v.Members()))
	assert.Zero(t, v.Len())
	// the pseudo count stands even without counts
	assert.True(t, v.Contains(DefaultUnkLabel))
	assert.Equal(t, 2, v.Count(DefaultUnkLabel))
}

func TestRebuildWithNewCutoff(t *testing.T) {
	v1, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	v2, err := FromCounts(v1.Counts(), 1, DefaultUnkLabel)
	assert.NoError(t, err)
	// membership is reproduced from stored counts alone
	assert.True(t, v2.Contains("b"))
	assert.True(t, v2.Contains("-"))
	assert.True(t, v2.Contains("r"))
	assert.Equal(t, 7, v2.Len())
	// FromCounts copies, so the original counter stays untouched
	v2.Update("z", "z")
	assert.Zero(t, v1.Count("z"))
}

func TestAdopt(t *testing.T) {
	counts := CountTokens("a", "a", "b")
	v, err := Adopt(counts, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.True(t, v.Contains("a"))
	assert.False(t, v.Contains("b"))
	// updates through the counter are visible to the vocabulary
	counts.Update("b")
	assert.True(t, v.Contains("b"))
	// and updates through the vocabulary reach the counter
	v.Update("c")
	assert.Equal(t, 1, counts.Get("c"))
}

func TestEqual(t *testing.T) {
	v1, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	v2, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.True(t, v1.Equal(v2))
	v3, err := FromTokens(corpus, 3, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.False(t, v1.Equal(v3))
	v4, err := FromTokens(corpus, 2, "<OOV>")
	assert.NoError(t, err)
	assert.False(t, v1.Equal(v4))
	v2.Update("z")
	assert.False(t, v1.Equal(v2))
}

func TestString(t *testing.T) {
	v, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	assert.Equal(t, `<Vocabulary with cutoff=2 unk_label="<UNK>" and 4 items>`, v.String())
}
