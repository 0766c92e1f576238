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
	"fmt"
	"os"
	"strconv"

	"github.com/gorse-io/vocabulary/base/log"
	"github.com/gorse-io/vocabulary/config"
	"github.com/gorse-io/vocabulary/corpus"
	"github.com/gorse-io/vocabulary/vocab"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const histogramBuckets = 16

func init() {
	vocabularyCommand.AddCommand(statsCommand)
	statsCommand.PersistentFlags().Int("top", 0, "show the most frequent counted tokens")
	statsCommand.PersistentFlags().Bool("histogram", false, "show the histogram of token counts")
	statsCommand.PersistentFlags().String("eval", "", "report coverage over a corpus file")
}

var statsCommand = &cobra.Command{
	Use:   "stats FILE",
	Short: "Show statistics of a vocabulary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf := setupCommand(cmd)
		v, err := loadVocabulary(args[0])
		if err != nil {
			log.Logger().Fatal("failed to load vocabulary", zap.Error(err))
		}

		// show summary
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("statistic", "value")
		table.Append([]string{"cutoff", strconv.Itoa(v.Cutoff())})
		table.Append([]string{"unknown label", v.UnkLabel()})
		table.Append([]string{"items", strconv.Itoa(v.Len())})
		table.Append([]string{"counted tokens", strconv.Itoa(v.Counts().Len())})
		table.Append([]string{"total occurrences", strconv.FormatInt(v.Counts().Total(), 10)})
		table.Render()

		// show the most frequent tokens
		if top, _ := cmd.PersistentFlags().GetInt("top"); top > 0 {
			table = tablewriter.NewWriter(os.Stdout)
			table.Header("token", "count")
			for _, pair := range corpus.TopTokens(v.Counts(), top) {
				table.Append([]string{pair.Token, strconv.Itoa(pair.Count)})
			}
			table.Render()
		}

		// show the histogram of token counts
		if histogram, _ := cmd.PersistentFlags().GetBool("histogram"); histogram {
			buckets := corpus.CountHistogram(v.Counts(), histogramBuckets)
			last := -1
			for i, n := range buckets {
				if n > 0 {
					last = i
				}
			}
			table = tablewriter.NewWriter(os.Stdout)
			table.Header("count range", "tokens")
			for i := 0; i <= last; i++ {
				var label string
				if i == len(buckets)-1 {
					label = fmt.Sprintf(">= %d", 1<<i)
				} else {
					label = fmt.Sprintf("[%d, %d)", 1<<i, 1<<(i+1))
				}
				table.Append([]string{label, strconv.Itoa(buckets[i])})
			}
			table.Render()
		}

		// report coverage over a corpus
		if evalPath, _ := cmd.PersistentFlags().GetString("eval"); evalPath != "" {
			report, err := evaluateCorpus(v, evalPath, conf)
			if err != nil {
				log.Logger().Fatal("failed to evaluate corpus", zap.Error(err))
			}
			table = tablewriter.NewWriter(os.Stdout)
			table.Header("coverage", "value")
			table.Append([]string{"tokens", strconv.FormatInt(report.Tokens, 10)})
			table.Append([]string{"known", strconv.FormatInt(report.Known, 10)})
			table.Append([]string{"unknown", strconv.FormatInt(report.Unknown, 10)})
			table.Append([]string{"distinct", strconv.Itoa(report.Distinct)})
			table.Append([]string{"oov rate", strconv.FormatFloat(float64(report.OOVRate), 'f', 4, 32)})
			table.Render()
		}
	},
}

// evaluateCorpus reports how well a vocabulary covers a corpus file.
func evaluateCorpus(v *vocab.Vocabulary, path string, conf *config.Config) (*corpus.Report, error) {
	reader, err := openCorpus(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer reader.Close()
	scanner, err := corpus.NewScanner(reader, corpus.Options{
		Splitter: conf.Corpus.Splitter,
		FoldCase: conf.Corpus.FoldCase,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	report, err := corpus.Evaluate(v, scanner)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return report, nil
}
