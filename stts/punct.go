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

package stts

const (
	TagOtherPunct = "$("
	TagComma      = "$,"
	TagSentPunct  = "$."
)

var (
	otherPunct = []string{
		"(", ")", "{", "}", "\"", "'", "”", "“", "[", "]", "«", "»",
		"-", "‒", "–", "‘", "’", "/", "...", "--",
	}

	sentPunct = []string{".", ":", ";", "!", "?"}
)

// PunctuationTags returns default tags for punctuation and symbols
// morphological analyzers do not handle (or handle only partially).
// A new map is created on each call.
func PunctuationTags() map[string]string {
	ans := make(map[string]string, len(otherPunct)+len(sentPunct)+1)
	for _, p := range otherPunct {
		ans[p] = TagOtherPunct
	}
	ans[","] = TagComma
	for _, p := range sentPunct {
		ans[p] = TagSentPunct
	}
	return ans
}
