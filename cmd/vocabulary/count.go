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
	"context"
	"os"
	"runtime"

	"github.com/gorse-io/vocabulary/base/log"
	"github.com/gorse-io/vocabulary/base/parallel"
	"github.com/gorse-io/vocabulary/config"
	"github.com/gorse-io/vocabulary/corpus"
	"github.com/gorse-io/vocabulary/vocab"
	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"modernc.org/mathutil"
)

func init() {
	vocabularyCommand.AddCommand(countCommand)
	countCommand.PersistentFlags().Int("cutoff", 0, "minimum count for vocabulary tokens (overrides config)")
	countCommand.PersistentFlags().String("unk-label", "", "label for unknown tokens (overrides config)")
	countCommand.PersistentFlags().String("splitter", "", "splitter cutting text into tokens (overrides config)")
	countCommand.PersistentFlags().Bool("fold-case", false, "fold letter case before counting (overrides config)")
	countCommand.PersistentFlags().String("filter", "", "keep only counted tokens accepted by this expression (overrides config)")
	countCommand.PersistentFlags().StringP("output", "o", "vocabulary.bin", "path of the vocabulary file")
	countCommand.PersistentFlags().IntP("jobs", "j", runtime.NumCPU(), "number of corpus readers")
}

var countCommand = &cobra.Command{
	Use:   "count FILE...",
	Short: "Build a vocabulary from corpus files",
	Long:  "Build a vocabulary from corpus files. The file - reads the corpus from stdin.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf := setupCommand(cmd)

		// overwrite config with flags
		flags := cmd.PersistentFlags()
		if flags.Changed("cutoff") {
			conf.Vocab.Cutoff, _ = flags.GetInt("cutoff")
		}
		if flags.Changed("unk-label") {
			conf.Vocab.UnkLabel, _ = flags.GetString("unk-label")
		}
		if flags.Changed("splitter") {
			splitter, _ := flags.GetString("splitter")
			if err := conf.Corpus.Splitter.UnmarshalText([]byte(splitter)); err != nil {
				log.Logger().Fatal("failed to parse splitter", zap.Error(err))
			}
		}
		if flags.Changed("fold-case") {
			conf.Corpus.FoldCase, _ = flags.GetBool("fold-case")
		}
		if flags.Changed("filter") {
			conf.Corpus.Filter, _ = flags.GetString("filter")
		}

		// count corpus files
		nJobs, _ := flags.GetInt("jobs")
		counts, err := countCorpus(cmd.Context(), conf, args, nJobs)
		if err != nil {
			log.Logger().Fatal("failed to count corpus", zap.Error(err))
		}

		// prune counted tokens
		if conf.Corpus.Filter != "" {
			tokenFilter, err := corpus.NewTokenFilter(conf.Corpus.Filter)
			if err != nil {
				log.Logger().Fatal("failed to compile filter", zap.Error(err))
			}
			if counts, err = tokenFilter.Apply(counts); err != nil {
				log.Logger().Fatal("failed to apply filter", zap.Error(err))
			}
		}

		// build vocabulary
		v, err := vocab.Adopt(counts, conf.Vocab.Cutoff, conf.Vocab.UnkLabel)
		if err != nil {
			log.Logger().Fatal("failed to build vocabulary", zap.Error(err))
		}

		// save vocabulary
		output, _ := flags.GetString("output")
		if err = saveVocabulary(v, output); err != nil {
			log.Logger().Fatal("failed to save vocabulary", zap.Error(err))
		}
		log.Logger().Info("saved vocabulary",
			zap.String("path", output),
			zap.Int("items", v.Len()))
	},
}

// countCorpus counts tokens from corpus files concurrently. Every worker owns
// a private counter so that counting needs no locks, and the counters are
// merged once all workers are done.
func countCorpus(ctx context.Context, conf *config.Config, paths []string, nJobs int) (*vocab.Counts, error) {
	opts := corpus.Options{
		Splitter: conf.Corpus.Splitter,
		FoldCase: conf.Corpus.FoldCase,
	}
	nJobs = mathutil.Max(nJobs, 1)
	workerCounts := make([]*vocab.Counts, nJobs)
	for i := range workerCounts {
		workerCounts[i] = vocab.NewCounts()
	}
	var scanned atomic.Int64
	bar := progressbar.DefaultBytes(corpusSize(paths), "Counting tokens")
	if err := parallel.Parallel(ctx, len(paths), nJobs, func(workerId, jobId int) error {
		reader, err := openCorpus(paths[jobId])
		if err != nil {
			return errors.Trace(err)
		}
		defer reader.Close()
		pbReader := progressbar.NewReader(reader, bar)
		tokens, err := corpus.Count(workerCounts[workerId], &pbReader, opts)
		if err != nil {
			return errors.Trace(err)
		}
		scanned.Add(tokens)
		return nil
	}); err != nil {
		return nil, errors.Trace(err)
	}
	_ = bar.Finish()
	counts := workerCounts[0]
	for _, c := range workerCounts[1:] {
		counts.Merge(c)
	}
	log.Logger().Info("counted corpus",
		zap.Int("files", len(paths)),
		zap.Int64("scanned_tokens", scanned.Load()),
		zap.Int("distinct_tokens", counts.Len()))
	return counts, nil
}

// corpusSize sums the sizes of corpus files for the progress bar. The size is
// unknown when any input is stdin.
func corpusSize(paths []string) int64 {
	var size int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return -1
		}
		size += info.Size()
	}
	return size
}

// saveVocabulary writes a vocabulary to a file.
func saveVocabulary(v *vocab.Vocabulary, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err = v.Marshal(writer); err != nil {
		return errors.Trace(err)
	}
	if err = writer.Flush(); err != nil {
		return errors.Trace(err)
	}
	return nil
}
