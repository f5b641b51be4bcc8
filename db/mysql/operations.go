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
	"database/sql"
	"fmt"
	"strconv"
)

// maxWordLength corresponds to the word column type
const maxWordLength = 255

func upsertSQL(table string) string {
	return fmt.Sprintf("REPLACE INTO `%s` (word, tags) VALUES (?, ?)", table)
}

func createTableSQL(table string) string {
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS `%s` ("+
			"word VARCHAR("+strconv.Itoa(maxWordLength)+") NOT NULL, "+
			"tags TEXT NOT NULL, "+
			"PRIMARY KEY (word)"+
			") COLLATE utf8mb4_bin",
		table,
	)
}

// createSchema creates the lexicon table. A binary collation
// is used as words differing in case or diacritics are
// different entries.
func createSchema(database *sql.DB, table string) error {
	if _, err := database.Exec(createTableSQL(table)); err != nil {
		return fmt.Errorf("failed to create table '%s': %w", table, err)
	}
	return nil
}
