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
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/gorse-io/vocabulary/vocab"
	"github.com/juju/errors"
)

// TokenFilter prunes counters with a user supplied expression over each token
// and its count, such as `count >= 2 && len(token) > 1`.
type TokenFilter struct {
	program *vm.Program
}

// NewTokenFilter compiles a filter expression. The expression sees the
// variables token (string) and count (int) and must return a boolean.
func NewTokenFilter(code string) (*TokenFilter, error) {
	program, err := expr.Compile(code, expr.Env(map[string]any{
		"token": "",
		"count": 0,
	}))
	if err != nil {
		return nil, errors.Trace(err)
	}
	if program.Node().Type().Kind() != reflect.Bool {
		return nil, errors.New("filter expression must return bool")
	}
	return &TokenFilter{program: program}, nil
}

// Apply returns a new counter keeping the tokens the expression accepts. The
// source counter is untouched.
func (f *TokenFilter) Apply(counts *vocab.Counts) (*vocab.Counts, error) {
	var evalErr error
	filtered := counts.Filter(func(token string, count int) bool {
		if evalErr != nil {
			return false
		}
		result, err := expr.Run(f.program, map[string]any{
			"token": token,
			"count": count,
		})
		if err != nil {
			evalErr = errors.Trace(err)
			return false
		}
		return result.(bool)
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return filtered, nil
}
