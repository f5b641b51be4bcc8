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

package mysql

import (
	"testing"

	"github.com/czcorpus/morphfeat/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSQL(t *testing.T) {
	assert.Equal(t, "REPLACE INTO `lexicon` (word, tags) VALUES (?, ?)", upsertSQL("lexicon"))
}

func TestCreateTableSQL(t *testing.T) {
	q := createTableSQL("smor_lexicon")
	assert.Contains(t, q, "CREATE TABLE IF NOT EXISTS `smor_lexicon`")
	assert.Contains(t, q, "PRIMARY KEY (word)")
	assert.Contains(t, q, "word VARCHAR(255) NOT NULL")
	assert.Contains(t, q, "utf8mb4_bin")
}

func TestDSN(t *testing.T) {
	ans := dsn(&db.Conf{
		Type:     db.TypeMySQL,
		Name:     "morphfeat",
		Host:     "db.example.com:3306",
		User:     "tagger",
		Password: "secret",
	})
	assert.Contains(t, ans, "tagger:secret@tcp(db.example.com:3306)/morphfeat")
	assert.Contains(t, ans, "parseTime=true")
}

func TestNewLexiconInvalidTable(t *testing.T) {
	_, err := NewLexicon(&db.Conf{Type: db.TypeMySQL, Name: "x", Table: "a-b"})
	assert.Error(t, err)
}

func TestNewLexiconLimitsWordLength(t *testing.T) {
	lex, err := NewLexicon(&db.Conf{Type: db.TypeMySQL, Name: "morphfeat", Host: "localhost:3306"})
	require.NoError(t, err)
	defer lex.Close()
	assert.Equal(t, 255, lex.MaxWordLength)
}
