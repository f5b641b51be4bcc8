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
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/morphfeat/db"
)

const (
	DfltAnalyzerHost     = "localhost"
	DfltAnalyzerPort     = 9010
	DfltAnalyzerEncoding = "UTF-8"
	DfltBatchSize        = 10000
	DfltSentenceStruct   = "s"
	DfltLogLevel         = "info"

	CRFBackendWapiti = "wapiti"
	CRFBackendCRFPP  = "crf++"
)

var (
	ErrInvalidConf = errors.New("invalid configuration")
)

// AnalyzerConf configures the morphological analysis
// server (fst-infl2-daemon or compatible).
type AnalyzerConf struct {

	// Executable is either a path or a name searched in PATH
	Executable string `json:"executable"`

	// Model is a path to a compact transducer file
	Model string `json:"model"`

	Host string `json:"host"`

	// Port is the first port we try to bind the server to.
	// In case it is busy, the port is incremented until
	// a free one is found.
	Port int `json:"port"`

	// Encoding specifies the encoding the server reads and writes
	// (e.g. Morphisto uses UTF-8, SMOR with the Stuttgart lexicon
	// uses ISO-8859-1). Our input and output is always UTF-8.
	Encoding string `json:"encoding"`
}

// CRFConf configures an external CRF tagger
type CRFConf struct {
	Backend    string `json:"backend"`
	Executable string `json:"executable"`
	Model      string `json:"model"`
}

// TokenizerConf configures an external tokenizer used for raw
// text input. The tokenizer reads text from its stdin and writes one
// token per line (and an empty line after each sentence) to stdout.
type TokenizerConf struct {
	Executable string   `json:"executable"`
	Args       []string `json:"args"`
}

// VerticalConf is used when processing corpus vertical files
// instead of plain "one token per line" data.
type VerticalConf struct {

	// SentenceStruct is a structure whose closing tag produces
	// a sentence boundary
	SentenceStruct string `json:"sentenceStruct"`

	// TagColumn is a positional attribute index (0 = word)
	// containing a truth tag. Zero or a negative value means
	// there is no truth tag.
	TagColumn int `json:"tagColumn"`
}

// Conf is the main configuration of the morphfeat tool
type Conf struct {
	Analyzer  AnalyzerConf  `json:"analyzer"`
	BatchSize int           `json:"batchSize"`
	CRF       CRFConf       `json:"crf"`
	Tokenizer TokenizerConf `json:"tokenizer"`
	Vertical  VerticalConf  `json:"vertical"`

	// Lexicon is an optional persistent storage for resolved
	// candidate tags. If omitted, nothing is preloaded or stored.
	Lexicon *db.Conf `json:"lexicon,omitempty"`

	LogLevel string `json:"logLevel"`
}

func (c *Conf) HasConfiguredLexicon() bool {
	return c.Lexicon != nil && c.Lexicon.Type != ""
}

// ApplyDefaults fills in all the missing values
// which have a reasonable default.
func (c *Conf) ApplyDefaults() {
	if c.Analyzer.Host == "" {
		c.Analyzer.Host = DfltAnalyzerHost
	}
	if c.Analyzer.Port == 0 {
		c.Analyzer.Port = DfltAnalyzerPort
	}
	if c.Analyzer.Encoding == "" {
		c.Analyzer.Encoding = DfltAnalyzerEncoding
	}
	if c.BatchSize == 0 {
		c.BatchSize = DfltBatchSize
	}
	if c.CRF.Backend == "" {
		c.CRF.Backend = CRFBackendWapiti
	}
	if c.Vertical.SentenceStruct == "" {
		c.Vertical.SentenceStruct = DfltSentenceStruct
	}
	if c.LogLevel == "" {
		c.LogLevel = DfltLogLevel
	}
}

// Validate checks the configuration. It does not test
// existence of any files as this is done on their first use.
func (c *Conf) Validate() error {
	if c.Analyzer.Executable == "" {
		return fmt.Errorf("%w: missing analyzer.executable", ErrInvalidConf)
	}
	if c.Analyzer.Model == "" {
		return fmt.Errorf("%w: missing analyzer.model", ErrInvalidConf)
	}
	if c.Analyzer.Port < 1 || c.Analyzer.Port > 65535 {
		return fmt.Errorf("%w: invalid analyzer.port %d", ErrInvalidConf, c.Analyzer.Port)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: invalid batchSize %d", ErrInvalidConf, c.BatchSize)
	}
	switch c.CRF.Backend {
	case CRFBackendWapiti, CRFBackendCRFPP:
	default:
		return fmt.Errorf("%w: invalid value '%s' for crf.backend", ErrInvalidConf, c.CRF.Backend)
	}
	if c.HasConfiguredLexicon() && c.Lexicon.Name == "" {
		return fmt.Errorf("%w: missing lexicon.name", ErrInvalidConf)
	}
	return nil
}

// DefaultConf returns a half empty configuration
// suitable as a template.
func DefaultConf() *Conf {
	conf := &Conf{
		Analyzer: AnalyzerConf{
			Executable: "fst-infl2-daemon",
		},
		CRF: CRFConf{
			Executable: "wapiti",
		},
		Tokenizer: TokenizerConf{
			Executable: "perl",
			Args:       []string{"tokenizer.perl", "-l", "de"},
		},
		Vertical: VerticalConf{
			TagColumn: -1,
		},
	}
	conf.ApplyDefaults()
	return conf
}

// LoadConf loads a JSON configuration, applies defaults
// and validates the result.
func LoadConf(confPath string) (*Conf, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	conf := Conf{Vertical: VerticalConf{TagColumn: -1}}
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	conf.ApplyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// DumpConf serializes a configuration as indented JSON
func DumpConf(conf *Conf) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(conf, "", "  ")
}
