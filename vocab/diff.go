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

	mapset "github.com/deckarep/golang-set/v2"
)

// Diff lists membership changes between two vocabularies.
type Diff struct {
	Added   []string
	Removed []string
}

// Compare reports which members appear in b but not in a, and which members
// of a are gone from b. Both lists are sorted.
func Compare(a, b *Vocabulary) Diff {
	before := memberSet(a)
	after := memberSet(b)
	diff := Diff{
		Added:   after.Difference(before).ToSlice(),
		Removed: before.Difference(after).ToSlice(),
	}
	slices.Sort(diff.Added)
	slices.Sort(diff.Removed)
	return diff
}

func memberSet(v *Vocabulary) mapset.Set[string] {
	s := mapset.NewSet[string]()
	for member := range v.Members() {
		s.Add(member)
	}
	return s
}
