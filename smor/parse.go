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
	"regexp"
	"strings"

	"github.com/czcorpus/morphfeat/stts"
	"github.com/rs/zerolog/log"
)

const (
	wordHeaderPrefix = "> "
	noResultLine     = "no result"
)

var (
	mainClassSrch = regexp.MustCompile(`<\+(.*?)>`)
)

// mainClass extracts a SMOR main class marker (e.g. `<+V>` => `V`)
// from an analysis line.
func mainClass(line string) (string, bool) {
	m := mainClassSrch.FindStringSubmatch(line)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// parseStats provides some information about processed
// analyzer response
type parseStats struct {
	Words      int
	Analyses   int
	Skipped    int
	Unresolved int
}

// parseResponse reads analyzer output and stores all the
// derived tags to the cache. The output consists of blocks
// starting with a "> word" line, followed by analysis lines
// (or a single "no result" line).
func parseResponse(response string, cache *TagSetCache) parseStats {
	var stats parseStats
	var word string
	var hasWord bool
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, wordHeaderPrefix) {
			word = line[len(wordHeaderPrefix):]
			hasWord = true
			cache.Init(word)
			stats.Words++
			continue
		}
		if line == "" || strings.HasPrefix(line, noResultLine) {
			continue
		}
		if !hasWord {
			log.Debug().Str("line", line).Msg("skipping analysis line without word header")
			stats.Skipped++
			continue
		}
		rawClass, ok := mainClass(line)
		if !ok {
			log.Debug().Str("word", word).Str("line", line).Msg("skipping malformed analysis line")
			stats.Skipped++
			continue
		}
		mapping := stts.Map(rawClass, line)
		if mapping.Unresolved {
			log.Warn().
				Str("word", word).
				Str("analysis", line).
				Str("fallback", mapping.Primary).
				Msg("cannot determine verb form (FIN, INF or PP?)")
			stats.Unresolved++
		}
		cache.Add(word, mapping.Tags()...)
		stats.Analyses++
	}
	return stats
}
