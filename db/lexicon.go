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

package db

import (
	"context"
	"database/sql"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// TxLexicon implements transaction-bound operations shared
// by all the SQL lexicon implementations. The concrete
// implementations are responsible for opening the database,
// creating the schema and starting the transaction.
type TxLexicon struct {
	Tx        *sql.Tx
	Table     string
	UpsertSQL string

	// MaxWordLength is the longest word (in characters) the word
	// column can hold. Longer words are not stored. Zero means
	// there is no limit.
	MaxWordLength int

	upsert *sql.Stmt
}

// LoadEntries calls fn for each stored word
func (tl *TxLexicon) LoadEntries(ctx context.Context, fn func(word string, tags []string)) error {
	if tl.Tx == nil {
		return fmt.Errorf("cannot load lexicon entries - no transaction active")
	}
	rows, err := tl.Tx.QueryContext(ctx, fmt.Sprintf("SELECT word, tags FROM %s", tl.Table))
	if err != nil {
		return fmt.Errorf("failed to load lexicon entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var word, tags string
		if err := rows.Scan(&word, &tags); err != nil {
			return fmt.Errorf("failed to load lexicon entries: %w", err)
		}
		fn(word, DecodeTags(tags))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load lexicon entries: %w", err)
	}
	return nil
}

// StoreEntry inserts or replaces a word entry. Words exceeding
// MaxWordLength are skipped.
func (tl *TxLexicon) StoreEntry(word string, tags []string) error {
	if tl.Tx == nil {
		return fmt.Errorf("cannot store lexicon entry - no transaction active")
	}
	if tl.MaxWordLength > 0 && utf8.RuneCountInString(word) > tl.MaxWordLength {
		log.Debug().
			Str("word", word).
			Int("maxLength", tl.MaxWordLength).
			Msg("word too long for lexicon, not storing")
		return nil
	}
	if tl.upsert == nil {
		var err error
		tl.upsert, err = tl.Tx.Prepare(tl.UpsertSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare lexicon upsert: %w", err)
		}
	}
	if _, err := tl.upsert.Exec(word, EncodeTags(tags)); err != nil {
		return fmt.Errorf("failed to store lexicon entry %s: %w", word, err)
	}
	return nil
}

func (tl *TxLexicon) Commit() error {
	if tl.Tx == nil {
		return fmt.Errorf("cannot commit - no transaction active")
	}
	return tl.Tx.Commit()
}

func (tl *TxLexicon) Rollback() error {
	if tl.Tx == nil {
		return fmt.Errorf("cannot rollback - no transaction active")
	}
	return tl.Tx.Rollback()
}
