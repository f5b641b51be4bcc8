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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/czcorpus/morphfeat/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadConfDefaults(t *testing.T) {
	path := writeConf(t, `{"analyzer": {"executable": "fst-infl2-daemon", "model": "m.a"}}`)
	conf, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, DfltAnalyzerPort, conf.Analyzer.Port)
	assert.Equal(t, DfltAnalyzerHost, conf.Analyzer.Host)
	assert.Equal(t, "UTF-8", conf.Analyzer.Encoding)
	assert.Equal(t, DfltBatchSize, conf.BatchSize)
	assert.Equal(t, CRFBackendWapiti, conf.CRF.Backend)
	assert.Equal(t, "s", conf.Vertical.SentenceStruct)
	assert.Equal(t, -1, conf.Vertical.TagColumn)
	assert.False(t, conf.HasConfiguredLexicon())
}

func TestLoadConfTokenizer(t *testing.T) {
	path := writeConf(t, `{
		"analyzer": {"executable": "fst-infl2-daemon", "model": "m.a"},
		"tokenizer": {"executable": "perl", "args": ["tokenizer.perl", "-l", "de"]}
	}`)
	conf, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, "perl", conf.Tokenizer.Executable)
	assert.Equal(t, []string{"tokenizer.perl", "-l", "de"}, conf.Tokenizer.Args)
}

func TestLoadConfInvalidBackend(t *testing.T) {
	path := writeConf(t, `{"analyzer": {"executable": "x", "model": "m.a"}, "crf": {"backend": "hmm"}}`)
	_, err := LoadConf(path)
	assert.ErrorIs(t, err, ErrInvalidConf)
}

func TestLoadConfMissingFile(t *testing.T) {
	_, err := LoadConf(filepath.Join(t.TempDir(), "nothing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	conf := DefaultConf()
	assert.ErrorIs(t, conf.Validate(), ErrInvalidConf) // no model

	conf.Analyzer.Model = "m.a"
	assert.NoError(t, conf.Validate())

	conf.Analyzer.Port = 70000
	assert.ErrorIs(t, conf.Validate(), ErrInvalidConf)

	conf.Analyzer.Port = 9010
	conf.BatchSize = -1
	assert.ErrorIs(t, conf.Validate(), ErrInvalidConf)

	conf.BatchSize = 10
	conf.Lexicon = &db.Conf{Type: "sqlite"}
	assert.ErrorIs(t, conf.Validate(), ErrInvalidConf)
	conf.Lexicon.Name = "lex.db"
	assert.NoError(t, conf.Validate())
}

func TestDumpConfRoundTrip(t *testing.T) {
	data, err := DumpConf(DefaultConf())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"executable": "fst-infl2-daemon"`)
	assert.Contains(t, string(data), `"port": 9010`)
}
