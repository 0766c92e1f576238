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

package config

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-viper/mapstructure/v2"
	"github.com/gorse-io/vocabulary/corpus"
	"github.com/gorse-io/vocabulary/vocab"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for the vocabulary command line tool.
type Config struct {
	Vocab  VocabConfig  `mapstructure:"vocab"`
	Corpus CorpusConfig `mapstructure:"corpus"`
}

// VocabConfig controls how vocabularies are built.
type VocabConfig struct {
	Cutoff   int    `mapstructure:"cutoff" validate:"gte=1"`
	UnkLabel string `mapstructure:"unk_label"`
}

// CorpusConfig controls how corpora are read.
type CorpusConfig struct {
	Splitter corpus.Splitter `mapstructure:"splitter" validate:"oneof=words cl100k_base o200k_base"`
	FoldCase bool            `mapstructure:"fold_case"`
	Filter   string          `mapstructure:"filter"`
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		Vocab: VocabConfig{
			Cutoff:   1,
			UnkLabel: vocab.DefaultUnkLabel,
		},
		Corpus: CorpusConfig{
			Splitter: corpus.SplitWords,
		},
	}
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	// [vocab]
	viper.SetDefault("vocab.cutoff", defaultConfig.Vocab.Cutoff)
	viper.SetDefault("vocab.unk_label", defaultConfig.Vocab.UnkLabel)
	// [corpus]
	viper.SetDefault("corpus.splitter", defaultConfig.Corpus.Splitter.String())
	viper.SetDefault("corpus.fold_case", defaultConfig.Corpus.FoldCase)
	viper.SetDefault("corpus.filter", defaultConfig.Corpus.Filter)
}

type configBinding struct {
	key string
	env string
}

// LoadConfig loads and validates the configuration from a TOML file.
// Environment variables overwrite values from the configuration file.
func LoadConfig(path string) (*Config, error) {
	// set default values
	setDefault()

	// bind environment variables
	bindings := []configBinding{
		{"vocab.cutoff", "VOCABULARY_CUTOFF"},
		{"vocab.unk_label", "VOCABULARY_UNK_LABEL"},
		{"corpus.splitter", "VOCABULARY_SPLITTER"},
		{"corpus.fold_case", "VOCABULARY_FOLD_CASE"},
		{"corpus.filter", "VOCABULARY_FILTER"},
	}
	for _, binding := range bindings {
		if err := viper.BindEnv(binding.key, binding.env); err != nil {
			return nil, errors.Trace(err)
		}
	}

	// load config file
	viper.SetConfigType("toml")
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}

	// unmarshal config file
	var conf Config
	if err := viper.Unmarshal(&conf, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

// Validate checks the configuration and reports the first violation with a
// human readable message.
func (config *Config) Validate() error {
	validate := validator.New()
	// register translations
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return errors.Trace(err)
	}
	if err := validate.Struct(config); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, validationError := range validationErrors {
				return errors.NotValidf("%s", validationError.Translate(trans))
			}
		}
		return errors.Trace(err)
	}
	return nil
}
