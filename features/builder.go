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

// Package features converts input tokens into feature lines
// consumed by a CRF tagger.
//
// A feature line consists of tab-separated fields:
// word, lowercased word, case class (uc/lc), alnum class (y/n),
// ten candidate tags (padded with ZZZ) and an optional truth tag.
package features

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/morphfeat/variants"
)

const (
	NumTagSlots = 10
	FillerTag   = "ZZZ"

	UpperInitial = "uc"
	LowerInitial = "lc"

	AlnumYes = "y"
	AlnumNo  = "n"
)

var (
	alnumSrch = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_-]`)
)

// TagSource provides already resolved candidate tags of words
type TagSource interface {
	Tags(word string) ([]string, bool)
}

// tagItem is a BinTree-compatible candidate tag
type tagItem string

func (t tagItem) Compare(other collections.Comparable) int {
	o, ok := other.(tagItem)
	if !ok {
		return -1
	}
	return strings.Compare(string(t), string(o))
}

// Builder creates feature lines out of input lines
type Builder struct {
	tags TagSource
}

// CandidateTags returns a sorted deduplicated union of tags
// of the word and all its spelling variants, padded (or truncated)
// to exactly NumTagSlots items.
func (b *Builder) CandidateTags(word string) []string {
	uniq := new(collections.BinTree[tagItem])
	uniq.UniqValues = true
	add := func(w string) {
		tags, ok := b.tags.Tags(w)
		if !ok {
			return
		}
		for _, t := range tags {
			uniq.Add(tagItem(t))
		}
	}
	add(word)
	for alt := range variants.Of(word) {
		add(alt)
	}
	ans := make([]string, NumTagSlots)
	for i, t := range uniq.ToSlice() {
		if i >= NumTagSlots {
			break
		}
		ans[i] = string(t)
	}
	for i := range ans {
		if ans[i] == "" {
			ans[i] = FillerTag
		}
	}
	return ans
}

func caseClass(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(r) {
		return UpperInitial
	}
	return LowerInitial
}

func alnumClass(word string) string {
	if alnumSrch.MatchString(word) {
		return AlnumYes
	}
	return AlnumNo
}

// Build creates a feature line (without the trailing newline)
// for an input line "word [truth-tag]". An empty (or whitespace-only)
// line produces an empty string which marks a sentence boundary.
func (b *Builder) Build(line string) string {
	items := strings.Fields(line)
	if len(items) == 0 {
		return ""
	}
	word := items[0]
	fields := make([]string, 0, 4+NumTagSlots+1)
	fields = append(
		fields,
		word,
		strings.ToLower(word),
		caseClass(word),
		alnumClass(word),
	)
	fields = append(fields, b.CandidateTags(word)...)
	if len(items) > 1 {
		fields = append(fields, items[1])
	}
	return strings.Join(fields, "\t")
}

// NewBuilder creates a feature builder reading candidate
// tags from the provided source (typically smor.TagSetCache).
func NewBuilder(tags TagSource) *Builder {
	return &Builder{tags: tags}
}
