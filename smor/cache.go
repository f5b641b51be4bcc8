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
	"sort"
)

type tagSet map[string]struct{}

// TagSetCache maps word forms (including their spelling variants)
// to sets of candidate tags. Entries are never removed. An entry
// with an empty set means the word has been already queried (or is
// being queried) and there is nothing known about it.
//
// TagSetCache is not safe for concurrent use.
type TagSetCache struct {
	data   map[string]tagSet
	seeded map[string]struct{}
}

// Init creates an empty entry for the word in case
// there is no entry yet. It returns true if a new entry
// has been created.
func (c *TagSetCache) Init(word string) bool {
	if _, ok := c.data[word]; ok {
		return false
	}
	c.data[word] = make(tagSet)
	return true
}

// Add adds tags to the word entry (creating it if needed).
// Empty tags are ignored.
func (c *TagSetCache) Add(word string, tags ...string) {
	entry, ok := c.data[word]
	if !ok {
		entry = make(tagSet)
		c.data[word] = entry
	}
	for _, t := range tags {
		if t != "" {
			entry[t] = struct{}{}
		}
	}
}

// Tags returns sorted tags of a word. The second returned
// value tells whether the word has an entry at all.
func (c *TagSetCache) Tags(word string) ([]string, bool) {
	entry, ok := c.data[word]
	if !ok {
		return []string{}, false
	}
	ans := make([]string, 0, len(entry))
	for t := range entry {
		ans = append(ans, t)
	}
	sort.Strings(ans)
	return ans, true
}

func (c *TagSetCache) Len() int {
	return len(c.data)
}

// IsSeeded tells whether the word entry comes from
// the static punctuation table
func (c *TagSetCache) IsSeeded(word string) bool {
	_, ok := c.seeded[word]
	return ok
}

// ForEach calls fn for each entry (in an undefined order)
// until fn returns false.
func (c *TagSetCache) ForEach(fn func(word string, tags []string) bool) {
	for word := range c.data {
		tags, _ := c.Tags(word)
		if !fn(word, tags) {
			return
		}
	}
}

// NewTagSetCache creates a cache seeded with provided
// word => tag pairs (typically punctuation defaults).
func NewTagSetCache(seed map[string]string) *TagSetCache {
	ans := &TagSetCache{
		data:   make(map[string]tagSet),
		seeded: make(map[string]struct{}, len(seed)),
	}
	for word, tag := range seed {
		ans.Add(word, tag)
		ans.seeded[word] = struct{}{}
	}
	return ans
}
