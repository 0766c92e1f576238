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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	v1, err := FromTokens(corpus, 2, DefaultUnkLabel)
	assert.NoError(t, err)
	v2, err := FromCounts(v1.Counts(), 1, DefaultUnkLabel)
	assert.NoError(t, err)
	diff := Compare(v1, v2)
	assert.Equal(t, []string{"-", "b", "r"}, diff.Added)
	assert.Empty(t, diff.Removed)
	diff = Compare(v2, v1)
	assert.Empty(t, diff.Added)
	assert.Equal(t, []string{"-", "b", "r"}, diff.Removed)
	// identical vocabularies differ in nothing
	diff = Compare(v1, v1)
	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
}
