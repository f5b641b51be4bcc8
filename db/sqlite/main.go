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

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/morphfeat/db"
	"github.com/czcorpus/morphfeat/fs"
)

// Lexicon is a sqlite3 based persistent lexicon
type Lexicon struct {
	db.TxLexicon
	database       *sql.DB
	Path           string
	PreconfQueries []string
}

func (lx *Lexicon) DatabaseExists() bool {
	return fs.IsFile(lx.Path)
}

// Initialize opens (or creates) the database file, makes sure
// the lexicon table exists and starts a transaction.
func (lx *Lexicon) Initialize() error {
	var err error
	dbExisted := lx.DatabaseExists()
	lx.database, err = openDatabase(lx.Path)
	if err != nil {
		return err
	}
	log.Info().Str("path", lx.Path).Bool("existed", dbExisted).Msg("opened sqlite3 lexicon")

	var dbConf []string
	if len(lx.PreconfQueries) > 0 {
		dbConf = lx.PreconfQueries

	} else {
		dbConf = []string{
			"PRAGMA synchronous = OFF",
			"PRAGMA journal_mode = MEMORY",
		}
	}
	for _, q := range dbConf {
		log.Debug().Str("value", q).Msg("applying preconfiguration")
		if _, err := lx.database.Exec(q); err != nil {
			log.Warn().Err(err).Str("value", q).Msg("failed to apply preconfiguration")
		}
	}
	if err := createSchema(lx.database, lx.Table); err != nil {
		return err
	}
	lx.Tx, err = lx.database.Begin()
	if err != nil {
		return fmt.Errorf("failed to start lexicon transaction: %w", err)
	}
	return nil
}

func (lx *Lexicon) Close() {
	if lx.database == nil {
		return
	}
	if err := lx.database.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing database")
	}
}

// NewLexicon creates a sqlite lexicon. The database is not
// opened until Initialize is called.
func NewLexicon(conf *db.Conf) (*Lexicon, error) {
	table, err := conf.TableName()
	if err != nil {
		return nil, err
	}
	return &Lexicon{
		TxLexicon: db.TxLexicon{
			Table:     table,
			UpsertSQL: upsertSQL(table),
		},
		Path:           conf.Name,
		PreconfQueries: conf.PreconfQueries,
	}, nil
}
