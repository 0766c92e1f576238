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
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/gorse-io/vocabulary/base/encoding"
	"github.com/juju/errors"
)

// Marshal writes the vocabulary to a byte stream. Counts are written in the
// order tokens were first seen so a round trip preserves iteration order.
func (v *Vocabulary) Marshal(w io.Writer) error {
	// write unknown label
	if err := encoding.WriteString(w, v.unkLabel); err != nil {
		return errors.Trace(err)
	}
	// write cutoff
	if err := binary.Write(w, binary.LittleEndian, int32(v.cutoff)); err != nil {
		return errors.Trace(err)
	}
	// write counts
	if err := binary.Write(w, binary.LittleEndian, int32(v.counts.Len())); err != nil {
		return errors.Trace(err)
	}
	for i, n := 0, v.counts.Len(); i < n; i++ {
		token, count := v.counts.At(i)
		if err := encoding.WriteString(w, token); err != nil {
			return errors.Trace(err)
		}
		if err := binary.Write(w, binary.LittleEndian, int64(count)); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// Unmarshal reads a vocabulary from a byte stream written by Marshal.
func Unmarshal(r io.Reader) (*Vocabulary, error) {
	// read unknown label
	unkLabel, err := encoding.ReadString(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	// read cutoff
	var cutoff int32
	if err = binary.Read(r, binary.LittleEndian, &cutoff); err != nil {
		return nil, errors.Trace(err)
	}
	v, err := New(int(cutoff), unkLabel)
	if err != nil {
		return nil, errors.Trace(err)
	}
	// read counts
	var n int32
	if err = binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, errors.Trace(err)
	}
	for i := int32(0); i < n; i++ {
		token, err := encoding.ReadString(r)
		if err != nil {
			return nil, errors.Trace(err)
		}
		var count int64
		if err = binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, errors.Trace(err)
		}
		v.counts.Add(token, int(count))
	}
	return v, nil
}

type vocabularyJSON struct {
	Cutoff   int          `json:"cutoff"`
	UnkLabel string       `json:"unk_label"`
	Counts   []TokenCount `json:"counts"`
}

// MarshalJSON formats the vocabulary as JSON. Counts are an ordered array
// rather than an object so the order tokens were first seen in survives the
// round trip.
func (v *Vocabulary) MarshalJSON() ([]byte, error) {
	return json.Marshal(vocabularyJSON{
		Cutoff:   v.cutoff,
		UnkLabel: v.unkLabel,
		Counts:   v.counts.Pairs(),
	})
}

// UnmarshalJSON parses a vocabulary from JSON.
func (v *Vocabulary) UnmarshalJSON(data []byte) error {
	var parsed vocabularyJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		return errors.Trace(err)
	}
	decoded, err := New(parsed.Cutoff, parsed.UnkLabel)
	if err != nil {
		return errors.Trace(err)
	}
	for _, pair := range parsed.Counts {
		decoded.counts.Add(pair.Token, pair.Count)
	}
	*v = *decoded
	return nil
}
