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

// Package tokenize runs an external tokenizer turning raw
// text into one token per line with empty lines between sentences.
package tokenize

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/czcorpus/morphfeat/cnf"
	"github.com/rs/zerolog/log"
)

const maxLineSize = 1024 * 1024

var (
	// ErrTokenizerNotConfigured means tokenization was requested
	// without tokenizer.executable set
	ErrTokenizerNotConfigured = errors.New("tokenizer not configured")

	// ErrTokenizerNotFound means the tokenizer executable cannot be found
	ErrTokenizerNotFound = errors.New("tokenizer executable not found")
)

// Tokenizer is a running tokenizer process. Its output is read
// line by line via Scan and Text.
type Tokenizer struct {
	cmd     *exec.Cmd
	cancel  context.CancelFunc
	scanner *bufio.Scanner
}

func (t *Tokenizer) Scan() bool {
	return t.scanner.Scan()
}

func (t *Tokenizer) Text() string {
	return t.scanner.Text()
}

func (t *Tokenizer) Err() error {
	if err := t.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read tokenizer output: %w", err)
	}
	return nil
}

// Wait waits for the tokenizer to exit. In case the output
// has not been read completely, the process is killed.
func (t *Tokenizer) Wait(outputRead bool) error {
	if !outputRead {
		t.cancel()
	}
	defer t.cancel()
	err := t.cmd.Wait()
	if !outputRead {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tokenizer failed: %w", err)
	}
	return nil
}

// Start runs the configured tokenizer reading input.
func Start(ctx context.Context, conf *cnf.TokenizerConf, input io.Reader) (*Tokenizer, error) {
	if conf.Executable == "" {
		return nil, fmt.Errorf("%w: missing tokenizer.executable", ErrTokenizerNotConfigured)
	}
	path, err := exec.LookPath(conf.Executable)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (please adjust tokenizer.executable)", ErrTokenizerNotFound, conf.Executable)
	}
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, path, conf.Args...)
	cmd.Stdin = input
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start tokenizer: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start tokenizer: %w", err)
	}
	log.Debug().Str("executable", path).Strs("args", conf.Args).Msg("started tokenizer")
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Tokenizer{cmd: cmd, cancel: cancel, scanner: scanner}, nil
}
