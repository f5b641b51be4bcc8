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
	"fmt"
	"regexp"
	"strings"
)

const (
	DfltTableName = "lexicon"

	TypeSQLite = "sqlite"
	TypeMySQL  = "mysql"

	tagSeparator = "|"
)

var (
	identifierRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

// Conf configures a persistent lexicon storing candidate
// tags of words resolved in previous runs.
type Conf struct {

	// Type is either "sqlite" or "mysql"
	Type string `json:"type"`

	// Name is a database file path for sqlite
	// and a database name for mysql
	Name string `json:"name"`

	Host     string `json:"host,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`

	// Table is a lexicon table name (default is "lexicon")
	Table string `json:"table,omitempty"`

	PreconfQueries []string `json:"preconfSettings,omitempty"`
}

// TableName returns a validated lexicon table name
func (c *Conf) TableName() (string, error) {
	if c.Table == "" {
		return DfltTableName, nil
	}
	if !identifierRegexp.MatchString(c.Table) {
		return "", fmt.Errorf("invalid lexicon table name '%s'", c.Table)
	}
	return c.Table, nil
}

// Lexicon is a persistent word => candidate tags storage.
// All the operations between Initialize and Commit/Rollback
// run within a single transaction.
type Lexicon interface {
	DatabaseExists() bool
	Initialize() error
	LoadEntries(ctx context.Context, fn func(word string, tags []string)) error
	StoreEntry(word string, tags []string) error
	Commit() error
	Rollback() error
	Close()
}

// EncodeTags converts a list of tags into a storable form
func EncodeTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

// DecodeTags is the inverse function to EncodeTags
func DecodeTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, tagSeparator)
}
