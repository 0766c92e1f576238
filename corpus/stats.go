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

package corpus

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/chewxy/math32"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gorse-io/vocabulary/base/heap"
	"github.com/gorse-io/vocabulary/vocab"
	"github.com/juju/errors"
	"modernc.org/mathutil"
)

// Report summarizes how a vocabulary covers a token stream.
type Report struct {
	Tokens   int64   // tokens scanned
	Known    int64   // tokens the vocabulary keeps
	Unknown  int64   // tokens mapped to the unknown label
	Distinct int     // distinct tokens seen in the stream
	OOVRate  float32 // share of unknown tokens
}

// Evaluate streams tokens against a vocabulary and reports coverage.
// Membership of tokens the vocabulary counted is memoized by counter position.
func Evaluate(v *vocab.Vocabulary, scanner *Scanner) (*Report, error) {
	report := &Report{}
	counts := v.Counts()
	classified := bitset.New(uint(counts.Len()))
	members := bitset.New(uint(counts.Len()))
	distinct := mapset.NewSet[string]()
	for scanner.Scan() {
		token := scanner.Token()
		report.Tokens++
		distinct.Add(token)
		var known bool
		if i, ok := counts.Position(token); ok {
			if !classified.Test(uint(i)) {
				classified.Set(uint(i))
				if v.Contains(token) {
					members.Set(uint(i))
				}
			}
			known = members.Test(uint(i))
		} else {
			known = v.Contains(token)
		}
		if known {
			report.Known++
		} else {
			report.Unknown++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	report.Distinct = distinct.Cardinality()
	if report.Tokens > 0 {
		report.OOVRate = float32(report.Unknown) / float32(report.Tokens)
	}
	return report, nil
}

// CountHistogram buckets distinct tokens by the binary magnitude of their
// counts. Bucket i holds tokens counted in [2^i, 2^(i+1)); the last bucket
// absorbs everything above.
func CountHistogram(counts *vocab.Counts, buckets int) []int {
	if buckets <= 0 {
		return nil
	}
	histogram := make([]int, buckets)
	for i, n := 0, counts.Len(); i < n; i++ {
		_, count := counts.At(i)
		bucket := mathutil.Min(int(math32.Log2(float32(count))), buckets-1)
		histogram[bucket]++
	}
	return histogram
}

// TopTokens returns the k most frequent tokens with their counts in
// decreasing order.
func TopTokens(counts *vocab.Counts, k int) []vocab.TokenCount {
	filter := heap.NewTopKFilter[string, int](k)
	for i, n := 0, counts.Len(); i < n; i++ {
		token, count := counts.At(i)
		filter.Push(token, count)
	}
	elems := filter.PopAll()
	top := make([]vocab.TokenCount, len(elems))
	for i, elem := range elems {
		top[i] = vocab.TokenCount{Token: elem.Value, Count: elem.Weight}
	}
	return top
}
