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
	"os"

	"github.com/gorse-io/vocabulary/base/log"
	"github.com/gorse-io/vocabulary/vocab"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	vocabularyCommand.AddCommand(diffCommand)
}

var diffCommand = &cobra.Command{
	Use:   "diff A B",
	Short: "Compare the members of two vocabularies",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setupCommand(cmd)
		a, err := loadVocabulary(args[0])
		if err != nil {
			log.Logger().Fatal("failed to load vocabulary", zap.Error(err))
		}
		b, err := loadVocabulary(args[1])
		if err != nil {
			log.Logger().Fatal("failed to load vocabulary", zap.Error(err))
		}
		diff := vocab.Compare(a, b)
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("token", "change")
		for _, token := range diff.Added {
			table.Append([]string{token, "added"})
		}
		for _, token := range diff.Removed {
			table.Append([]string{token, "removed"})
		}
		table.Render()
	},
}
