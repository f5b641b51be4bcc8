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
	"time"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/morphfeat/db"

	"github.com/go-sql-driver/mysql"
)

// Lexicon is a MySQL/MariaDB based persistent lexicon
// suitable for sharing among multiple machines.
type Lexicon struct {
	db.TxLexicon
	database       *sql.DB
	dbName         string
	PreconfQueries []string
}

func (lx *Lexicon) DatabaseExists() bool {
	row := lx.database.QueryRow(
		`SELECT COUNT(*) > 0 FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`,
		lx.dbName, lx.Table,
	)
	var ans bool
	err := row.Scan(&ans)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to test lexicon existence")
		return false
	}
	return ans
}

func (lx *Lexicon) Initialize() error {
	var err error
	if !lx.DatabaseExists() {
		if err := createSchema(lx.database, lx.Table); err != nil {
			return err
		}
		log.Info().Str("table", lx.dbName+"."+lx.Table).Msg("created lexicon table")
	}
	for _, q := range lx.PreconfQueries {
		log.Debug().Str("value", q).Msg("applying preconfiguration")
		if _, err := lx.database.Exec(q); err != nil {
			return fmt.Errorf("failed to apply preconfiguration '%s': %w", q, err)
		}
	}
	lx.Tx, err = lx.database.Begin()
	if err != nil {
		return fmt.Errorf("failed to start lexicon transaction: %w", err)
	}
	return nil
}

func (lx *Lexicon) Close() {
	err := lx.database.Close()
	if err != nil {
		log.Warn().Err(err).Msg("error closing database")
	}
}

func dsn(conf *db.Conf) string {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	return mconf.FormatDSN()
}

// NewLexicon creates a MySQL lexicon. The connection is
// established lazily by the driver.
func NewLexicon(conf *db.Conf) (*Lexicon, error) {
	table, err := conf.TableName()
	if err != nil {
		return nil, err
	}
	database, err := sql.Open("mysql", dsn(conf))
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon db: %w", err)
	}
	return &Lexicon{
		TxLexicon: db.TxLexicon{
			Table:         table,
			UpsertSQL:     upsertSQL(table),
			MaxWordLength: maxWordLength,
		},
		database:       database,
		dbName:         conf.Name,
		PreconfQueries: conf.PreconfQueries,
	}, nil
}
