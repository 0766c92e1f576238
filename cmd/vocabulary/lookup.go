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

package main

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gorse-io/vocabulary/base/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	vocabularyCommand.AddCommand(lookupCommand)
}

var lookupCommand = &cobra.Command{
	Use:   "lookup FILE [TOKEN...]",
	Short: "Map tokens through a vocabulary",
	Long: "Map tokens through a vocabulary. Tokens outside the vocabulary come " +
		"back as the unknown label. Without token arguments, lines of tokens are " +
		"read from stdin.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setupCommand(cmd)
		v, err := loadVocabulary(args[0])
		if err != nil {
			log.Logger().Fatal("failed to load vocabulary", zap.Error(err))
		}
		if len(args) > 1 {
			fmt.Println(strings.Join(lo.Map(args[1:], func(token string, _ int) string {
				return v.Lookup(token)
			}), " "))
			return
		}
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			tokens := strings.Fields(scanner.Text())
			fmt.Println(strings.Join(slices.Collect(v.LookupSeq(slices.Values(tokens))), " "))
		}
		if err = scanner.Err(); err != nil {
			log.Logger().Fatal("failed to read stdin", zap.Error(err))
		}
	},
}
