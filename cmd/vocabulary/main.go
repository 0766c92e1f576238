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
	"io"
	"os"

	"github.com/gorse-io/vocabulary/base/log"
	"github.com/gorse-io/vocabulary/cmd/version"
	"github.com/gorse-io/vocabulary/config"
	"github.com/gorse-io/vocabulary/vocab"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var vocabularyCommand = &cobra.Command{
	Use:   "vocabulary",
	Short: "Frequency filtered vocabularies for language modeling.",
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}
		_ = cmd.Help()
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Check the version of vocabulary",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.BuildInfo())
	},
}

func init() {
	vocabularyCommand.AddCommand(versionCommand)
	log.AddFlags(vocabularyCommand.PersistentFlags())
	vocabularyCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	vocabularyCommand.PersistentFlags().BoolP("version", "v", false, "vocabulary version")
	vocabularyCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
}

func main() {
	if err := vocabularyCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}

// setupCommand sets up the logger and loads the configuration for subcommands.
func setupCommand(cmd *cobra.Command) *config.Config {
	debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
	log.SetLogger(cmd.Root().PersistentFlags(), debug)
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	if configPath == "" {
		return config.GetDefaultConfig()
	}
	log.Logger().Info("load config", zap.String("config", configPath))
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		log.Logger().Fatal("failed to load config", zap.Error(err))
	}
	return conf
}

// openCorpus opens a corpus file for reading. The path "-" means stdin.
func openCorpus(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return file, nil
}

// loadVocabulary reads a vocabulary file written by the count subcommand.
func loadVocabulary(path string) (*vocab.Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	v, err := vocab.Unmarshal(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Trace(err)
	}
	return v, nil
}
