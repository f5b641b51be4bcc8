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

package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // load the driver
)

func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon db: %w", err)
	}
	return db, nil
}

func upsertSQL(table string) string {
	return fmt.Sprintf("INSERT OR REPLACE INTO %s (word, tags) VALUES (?, ?)", table)
}

// createSchema creates the lexicon table unless it already exists
func createSchema(database *sql.DB, table string) error {
	_, err := database.Exec(
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (word TEXT PRIMARY KEY, tags TEXT NOT NULL)", table))
	if err != nil {
		return fmt.Errorf("failed to create table '%s': %w", table, err)
	}
	return nil
}
