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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSeed(t *testing.T) {
	c := NewTagSetCache(map[string]string{",": "$,"})
	assert.True(t, c.IsSeeded(","))
	tags, ok := c.Tags(",")
	assert.True(t, ok)
	assert.Equal(t, []string{"$,"}, tags)
}

func TestCacheInit(t *testing.T) {
	c := NewTagSetCache(nil)
	assert.True(t, c.Init("Haus"))
	assert.False(t, c.Init("Haus"))
	tags, ok := c.Tags("Haus")
	assert.True(t, ok)
	assert.Empty(t, tags)
	assert.False(t, c.IsSeeded("Haus"))
}

func TestCacheAdd(t *testing.T) {
	c := NewTagSetCache(nil)
	c.Add("sich", "PRF", "PPER", "", "PRF")
	tags, _ := c.Tags("sich")
	assert.Equal(t, []string{"PPER", "PRF"}, tags)
	_, ok := c.Tags("nothing")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestCacheForEachEarlyExit(t *testing.T) {
	c := NewTagSetCache(nil)
	c.Add("a", "X")
	c.Add("b", "Y")
	c.Add("c", "Z")
	var visited int
	c.ForEach(func(word string, tags []string) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}
