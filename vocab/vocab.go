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

// Package vocab maintains frequency-filtered vocabularies for language modeling.
package vocab

import (
	"fmt"
	"iter"

	"github.com/juju/errors"
)

// DefaultUnkLabel is the sentinel most corpora use for out-of-vocabulary tokens.
const DefaultUnkLabel = "<UNK>"

// Vocabulary classifies tokens as known or unknown against a minimum
// occurrence cutoff and maps unknown tokens to a sentinel label. Counts below
// the cutoff are kept rather than discarded, so the same counter rebuilds
// vocabularies under different cutoffs without re-reading the corpus.
//
// A vocabulary is not safe for concurrent use. Callers must serialize Update
// against any other operation.
type Vocabulary struct {
	counts   *Counts
	cutoff   int
	unkLabel string
}

// New creates an empty vocabulary. The cutoff is the minimum count for a
// token to be considered known and must be at least 1.
func New(cutoff int, unkLabel string) (*Vocabulary, error) {
	if cutoff < 1 {
		return nil, errors.NotValidf("cutoff %d", cutoff)
	}
	return &Vocabulary{
		counts:   NewCounts(),
		cutoff:   cutoff,
		unkLabel: unkLabel,
	}, nil
}

// FromTokens creates a vocabulary by tallying a token sequence.
func FromTokens(tokens []string, cutoff int, unkLabel string) (*Vocabulary, error) {
	v, err := New(cutoff, unkLabel)
	if err != nil {
		return nil, errors.Trace(err)
	}
	v.counts.Update(tokens...)
	return v, nil
}

// FromCounts creates a vocabulary over a copy of an existing counter. Later
// changes to either counter stay invisible to the other. Use Adopt to share
// the counter instead.
func FromCounts(counts *Counts, cutoff int, unkLabel string) (*Vocabulary, error) {
	v, err := New(cutoff, unkLabel)
	if err != nil {
		return nil, errors.Trace(err)
	}
	v.counts.Merge(counts)
	return v, nil
}

// Adopt creates a vocabulary over an existing counter without copying it. The
// counter stays shared, so updates through either side are visible to both.
func Adopt(counts *Counts, cutoff int, unkLabel string) (*Vocabulary, error) {
	if cutoff < 1 {
		return nil, errors.NotValidf("cutoff %d", cutoff)
	}
	return &Vocabulary{
		counts:   counts,
		cutoff:   cutoff,
		unkLabel: unkLabel,
	}, nil
}

// Cutoff returns the minimum count for a token to be considered known.
func (v *Vocabulary) Cutoff() int {
	return v.cutoff
}

// UnkLabel returns the label unknown tokens are mapped to.
func (v *Vocabulary) UnkLabel() string {
	return v.unkLabel
}

// Counts returns the live counter backing the vocabulary.
func (v *Vocabulary) Counts() *Counts {
	return v.counts
}

// Update counts every token in the sequence once. Tokens reaching the cutoff
// become members immediately.
func (v *Vocabulary) Update(tokens ...string) {
	v.counts.Update(tokens...)
}

// Count returns the effective count of a token: the cutoff for the unknown
// label, the stored count otherwise. The unknown label wins even when a token
// spelled the same way was genuinely counted.
func (v *Vocabulary) Count(token string) int {
	if token == v.unkLabel {
		return v.cutoff
	}
	return v.counts.Get(token)
}

// Contains reports whether a token is a member of the vocabulary, that is,
// whether its effective count reaches the cutoff.
func (v *Vocabulary) Contains(token string) bool {
	return v.Count(token) >= v.cutoff
}

// Lookup maps a token to itself if it is a member and to the unknown label
// otherwise. Lookup never changes counts.
func (v *Vocabulary) Lookup(token string) string {
	if v.Contains(token) {
		return token
	}
	return v.unkLabel
}

// LookupSeq maps a token sequence through Lookup element by element. The
// returned sequence is lazy: each token is looked up as it is pulled, against
// the vocabulary state at that moment. It is restartable exactly when the
// source sequence is.
func (v *Vocabulary) LookupSeq(tokens iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range tokens {
			if !yield(v.Lookup(token)) {
				return
			}
		}
	}
}

// Members iterates over the members of the vocabulary: counted tokens passing
// the cutoff in the order they were first seen, then the unknown label, which
// is a member whenever anything was counted at all. An empty counter yields
// nothing, not even the unknown label.
func (v *Vocabulary) Members() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, n := 0, v.counts.Len(); i < n; i++ {
			token, _ := v.counts.At(i)
			if v.Contains(token) && !yield(token) {
				return
			}
		}
		if v.counts.Len() > 0 {
			yield(v.unkLabel)
		}
	}
}

// Len returns the number of tokens Members would yield, recomputed on every
// call.
func (v *Vocabulary) Len() int {
	n := 0
	for range v.Members() {
		n++
	}
	return n
}

// Equal reports whether two vocabularies agree on the unknown label, the
// cutoff and every stored count.
func (v *Vocabulary) Equal(o *Vocabulary) bool {
	return v.unkLabel == o.unkLabel && v.cutoff == o.cutoff && v.counts.Equal(o.counts)
}

// String formats a diagnostic summary of the vocabulary.
func (v *Vocabulary) String() string {
	return fmt.Sprintf("<Vocabulary with cutoff=%d unk_label=%q and %d items>",
		v.cutoff, v.unkLabel, v.Len())
}
