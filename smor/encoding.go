// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
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

package smor

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// wireCodec converts between UTF-8 (used everywhere in our code)
// and the encoding used by the analyzer server.
type wireCodec struct {
	enc encoding.Encoding
}

func (wc wireCodec) encode(s string) ([]byte, error) {
	if wc.enc == nil {
		return []byte(s), nil
	}
	return wc.enc.NewEncoder().Bytes([]byte(s))
}

// canEncode tests whether the server encoding
// is able to represent the word
func (wc wireCodec) canEncode(word string) bool {
	if wc.enc == nil {
		return true
	}
	_, err := wc.enc.NewEncoder().String(word)
	return err == nil
}

func (wc wireCodec) decode(data []byte) (string, error) {
	if wc.enc == nil {
		return string(data), nil
	}
	ans, err := wc.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func newWireCodec(name string) (wireCodec, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return wireCodec{}, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return wireCodec{}, fmt.Errorf("unsupported analyzer encoding %s: %w", name, err)
	}
	if enc == nil {
		return wireCodec{}, fmt.Errorf("unsupported analyzer encoding %s", name)
	}
	if enc == unicode.UTF8 {
		return wireCodec{}, nil
	}
	return wireCodec{enc: enc}, nil
}
