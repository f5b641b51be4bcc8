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

package postproc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taggedLine(word string, tail ...string) string {
	items := []string{word, strings.ToLower(word), "uc", "y"}
	for i := 0; i < 10; i++ {
		items = append(items, "ZZZ")
	}
	return strings.Join(append(items, tail...), "\t")
}

func TestOneBest(t *testing.T) {
	input := taggedLine("Haus", "NN") + "\n\n" + taggedLine("Das", "ART") + "\n"
	var out bytes.Buffer
	require.NoError(t, Process(strings.NewReader(input), &out, 1))
	assert.Equal(t, "Haus\tNN\n\nDas\tART\n", out.String())
}

func TestSentenceHeader(t *testing.T) {
	input := "# 0 0.873\n" + taggedLine("Haus", "NN") + "\n\n# 1 0.127\n" + taggedLine("Haus", "NE") + "\n"
	var out bytes.Buffer
	require.NoError(t, Process(strings.NewReader(input), &out, 1))
	assert.Equal(t, "#0 0.873\nHaus\tNN\n\n#1 0.127\nHaus\tNE\n", out.String())
}

func TestNBestTags(t *testing.T) {
	input := "# 0.98\n" +
		taggedLine("Haus", "NN/0.9", "NE/0.08", "NN/0.9", "ADJA/0.02") + "\n" +
		taggedLine("ist", "VAFIN/0.99", "VAFIN/0.99", "VVFIN/0.01") + "\n\n"
	var out bytes.Buffer
	require.NoError(t, Process(strings.NewReader(input), &out, 2))
	assert.Equal(t, "Haus\tNN/0.9\tNE/0.08\nist\tVAFIN/0.99\tVVFIN/0.01\n\n", out.String())
}

func TestInvalidLinesSkipped(t *testing.T) {
	input := "Haus\tNN\n" + taggedLine("Das", "ART") + "\n"
	var out bytes.Buffer
	require.NoError(t, Process(strings.NewReader(input), &out, 1))
	assert.Equal(t, "Das\tART\n", out.String())

	out.Reset()
	input = taggedLine("Das", "ART/0.9", "ART/x") + "\n"
	require.NoError(t, Process(strings.NewReader(input), &out, 3))
	assert.Equal(t, "", out.String())
}
