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

package factory

import (
	"context"
	"fmt"

	"github.com/czcorpus/morphfeat/db"
	"github.com/czcorpus/morphfeat/db/mysql"
	"github.com/czcorpus/morphfeat/db/sqlite"
)

// NullLexicon is used when no lexicon is configured. It stores
// nothing and provides no entries.
type NullLexicon struct {
}

func (nl *NullLexicon) DatabaseExists() bool {
	return false
}

func (nl *NullLexicon) Initialize() error {
	return nil
}

func (nl *NullLexicon) LoadEntries(ctx context.Context, fn func(word string, tags []string)) error {
	return nil
}

func (nl *NullLexicon) StoreEntry(word string, tags []string) error {
	return nil
}

func (nl *NullLexicon) Commit() error {
	return nil
}

func (nl *NullLexicon) Rollback() error {
	return nil
}

func (nl *NullLexicon) Close() {}

// NewLexicon creates a lexicon based on the configured database
// type. For a missing configuration, NullLexicon is returned.
func NewLexicon(conf *db.Conf) (db.Lexicon, error) {
	if conf == nil || conf.Type == "" {
		return &NullLexicon{}, nil
	}
	switch conf.Type {
	case db.TypeSQLite:
		return sqlite.NewLexicon(conf)
	case db.TypeMySQL:
		return mysql.NewLexicon(conf)
	default:
		return nil, fmt.Errorf("unsupported lexicon type '%s'", conf.Type)
	}
}
