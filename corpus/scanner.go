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

// Package corpus reads token streams out of corpora and measures how well
// vocabularies cover them.
package corpus

import (
	"bufio"
	"io"

	"github.com/gorse-io/vocabulary/vocab"
	"github.com/juju/errors"
	"github.com/tiktoken-go/tokenizer"
	"golang.org/x/text/cases"
)

// Splitter selects how corpus text is cut into tokens.
type Splitter string

const (
	// SplitWords cuts text at Unicode whitespace.
	SplitWords Splitter = "words"
	// SplitCl100kBase cuts text into cl100k_base byte pair pieces.
	SplitCl100kBase Splitter = "cl100k_base"
	// SplitO200kBase cuts text into o200k_base byte pair pieces.
	SplitO200kBase Splitter = "o200k_base"
)

func (s Splitter) String() string {
	return string(s)
}

// UnmarshalText parses a splitter name from flags and configuration files.
func (s *Splitter) UnmarshalText(text []byte) error {
	switch Splitter(text) {
	case SplitWords, SplitCl100kBase, SplitO200kBase:
		*s = Splitter(text)
		return nil
	default:
		return errors.NotValidf("splitter %q", string(text))
	}
}

// Options controls how a scanner hands out tokens.
type Options struct {
	Splitter Splitter
	FoldCase bool
}

// Scanner streams tokens out of corpus text. Use it like bufio.Scanner:
//
//	for scanner.Scan() {
//		counts.Update(scanner.Token())
//	}
//	if err := scanner.Err(); err != nil {
//		...
//	}
type Scanner struct {
	scanner *bufio.Scanner
	codec   tokenizer.Codec
	fold    bool
	caser   cases.Caser
	pending []string
	token   string
	err     error
}

// NewScanner creates a token scanner over a corpus stream. The zero Options
// splits at whitespace without case folding.
func NewScanner(r io.Reader, opts Options) (*Scanner, error) {
	scanner := &Scanner{scanner: bufio.NewScanner(r)}
	if opts.FoldCase {
		scanner.fold = true
		scanner.caser = cases.Fold()
	}
	switch opts.Splitter {
	case SplitWords, "":
		scanner.scanner.Split(bufio.ScanWords)
	case SplitCl100kBase:
		codec, err := tokenizer.Get(tokenizer.Cl100kBase)
		if err != nil {
			return nil, errors.Trace(err)
		}
		scanner.codec = codec
		scanner.scanner.Split(bufio.ScanLines)
	case SplitO200kBase:
		codec, err := tokenizer.Get(tokenizer.O200kBase)
		if err != nil {
			return nil, errors.Trace(err)
		}
		scanner.codec = codec
		scanner.scanner.Split(bufio.ScanLines)
	default:
		return nil, errors.NotValidf("splitter %q", opts.Splitter)
	}
	return scanner, nil
}

// Scan advances the scanner to the next token. It returns false when the
// stream is exhausted or reading fails.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for len(s.pending) == 0 {
		if !s.scanner.Scan() {
			s.err = s.scanner.Err()
			return false
		}
		if s.codec == nil {
			s.pending = append(s.pending, s.scanner.Text())
		} else {
			_, pieces, err := s.codec.Encode(s.scanner.Text())
			if err != nil {
				s.err = errors.Trace(err)
				return false
			}
			s.pending = append(s.pending, pieces...)
		}
	}
	s.token = s.pending[0]
	s.pending = s.pending[1:]
	if s.fold {
		s.token = s.caser.String(s.token)
	}
	return true
}

// Token returns the current token.
func (s *Scanner) Token() string {
	return s.token
}

// Err returns the first error hit while scanning. Reaching the end of the
// stream is not an error.
func (s *Scanner) Err() error {
	return s.err
}

// Count tallies every token in the stream into the counter and reports how
// many tokens were scanned.
func Count(counts *vocab.Counts, r io.Reader, opts Options) (int64, error) {
	scanner, err := NewScanner(r, opts)
	if err != nil {
		return 0, errors.Trace(err)
	}
	var n int64
	for scanner.Scan() {
		counts.Update(scanner.Token())
		n++
	}
	if err = scanner.Err(); err != nil {
		return n, errors.Trace(err)
	}
	return n, nil
}
