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

// Package variants generates alternative spellings of German
// words (umlauts written as two letters, ß written as ss and
// vice versa) a morphological analyzer may not know.
package variants

import (
	"iter"
	"strings"
)

type substitution struct {
	from string
	to   string
}

var (
	// capital umlauts are only handled at the beginning of a word
	initialSubstitutions = []substitution{
		{"Ae", "Ä"},
		{"Oe", "Ö"},
		{"Ue", "Ü"},
	}

	// the order matters as it defines the order of generated variants
	innerSubstitutions = []substitution{
		{"ss", "ß"},
		{"ß", "ss"},
		{"ae", "ä"},
		{"oe", "ö"},
		{"ue", "ü"},
	}
)

// Of returns a sequence of spelling variants of a word.
// The sequence is lazy, finite and can be iterated repeatedly.
// It never contains the word itself.
// For each occurrence of a substituted string, one variant
// is produced with only the occurrence replaced.
func Of(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, sub := range initialSubstitutions {
			if strings.HasPrefix(word, sub.from) {
				if !yield(sub.to + word[len(sub.from):]) {
					return
				}
				break
			}
		}
		for _, sub := range innerSubstitutions {
			offset := 0
			for {
				idx := strings.Index(word[offset:], sub.from)
				if idx < 0 {
					break
				}
				pos := offset + idx
				if !yield(word[:pos] + sub.to + word[pos+len(sub.from):]) {
					return
				}
				offset = pos + len(sub.from)
			}
		}
	}
}

// All returns all the variants of a word as a slice.
func All(word string) []string {
	ans := make([]string, 0, 4)
	for v := range Of(word) {
		ans = append(ans, v)
	}
	return ans
}
