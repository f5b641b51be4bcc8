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

// Package postproc strips features from CRF tagger output and
// (optionally) selects n-best tag alternatives.
package postproc

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// TagPosition is the column of the tagger output containing
	// the best tag (word + 3 flags + 10 candidate tags precede it)
	TagPosition = 14

	sentHeaderPrefix  = "#"
	minTagsHeaderCols = 10
)

type alternative struct {
	tag  string
	prob string
	val  float64
}

func parseAlternatives(items []string) ([]alternative, error) {
	ans := make([]alternative, 0, len(items))
	for _, item := range items {
		i := strings.LastIndex(item, "/")
		if i < 0 {
			return nil, fmt.Errorf("invalid tag alternative '%s'", item)
		}
		val, err := strconv.ParseFloat(item[i+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tag alternative '%s': %w", item, err)
		}
		ans = append(ans, alternative{tag: item[:i], prob: item[i+1:], val: val})
	}
	return ans, nil
}

// formatLine converts a single tagger output line. The second returned
// value is false for lines which should not be printed at all.
func formatLine(line string, nbest int) (string, bool, error) {
	items := strings.Fields(line)
	if len(items) == 0 {
		return "", true, nil
	}
	if strings.HasPrefix(line, sentHeaderPrefix) && len(items) == 3 {
		return fmt.Sprintf("%s%s %s", items[0], items[1], items[2]), true, nil
	}
	if nbest > 1 && strings.HasPrefix(line, sentHeaderPrefix) && len(items) < minTagsHeaderCols {
		return "", false, nil
	}
	if len(items) <= TagPosition {
		return "", false, fmt.Errorf("expected at least %d columns, found %d", TagPosition+1, len(items))
	}
	if nbest <= 1 {
		return items[0] + "\t" + items[TagPosition], true, nil
	}
	alts, err := parseAlternatives(items[TagPosition+1:])
	if err != nil {
		return "", false, err
	}
	sort.SliceStable(alts, func(i, j int) bool {
		return alts[i].val > alts[j].val
	})
	if len(alts) > nbest {
		alts = alts[:nbest]
	}
	var buff strings.Builder
	buff.WriteString(items[0])
	for _, a := range alts {
		buff.WriteString("\t" + a.tag + "/" + a.prob)
	}
	return buff.String(), true, nil
}

// Process reads tagger output and writes "word<TAB>tag" lines
// (or "word<TAB>tag1/prob1<TAB>tag2/prob2..." for nbest > 1).
// Empty lines and n-best sentence headers are preserved.
func Process(r io.Reader, w io.Writer, nbest int) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(w)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		ans, ok, err := formatLine(scanner.Text(), nbest)
		if err != nil {
			log.Warn().Err(err).Int("line", lineNum).Msg("skipping invalid tagger output line")
			continue
		}
		if !ok {
			continue
		}
		if _, err := out.WriteString(ans + "\n"); err != nil {
			return fmt.Errorf("failed to write tagger output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read tagger output: %w", err)
	}
	return out.Flush()
}
