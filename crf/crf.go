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

// Package crf runs an external CRF tagger (Wapiti or CRF++)
// on feature lines.
package crf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/czcorpus/morphfeat/cnf"
)

var (
	// ErrInvalidBackend means an unsupported crf.backend value
	ErrInvalidBackend = errors.New("invalid CRF backend")

	// ErrIncompatibleOptions means a combination of n-best options
	// the configured backend cannot provide
	ErrIncompatibleOptions = errors.New("incompatible tagging options")

	// ErrTaggerNotFound means the tagger executable cannot be found
	ErrTaggerNotFound = errors.New("CRF tagger executable not found")
)

// Options specify how many analyses the tagger should produce
type Options struct {

	// NBestSents is the number of best analyses per sentence
	NBestSents int

	// NBestTags is the number of best tags per token
	NBestTags int
}

// Validate tests whether the options are usable with the backend
func (opts Options) Validate(backend string) error {
	if opts.NBestTags > 1 && opts.NBestSents > 1 {
		return fmt.Errorf("%w: n-best tags and n-best sentences are mutually exclusive", ErrIncompatibleOptions)
	}
	switch backend {
	case cnf.CRFBackendWapiti:
		if opts.NBestTags > 1 {
			return fmt.Errorf("%w: n-best tags are only supported by %s", ErrIncompatibleOptions, cnf.CRFBackendCRFPP)
		}
	case cnf.CRFBackendCRFPP:
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidBackend, backend)
	}
	return nil
}

// Args returns command line arguments (without the executable)
// for the configured backend.
func Args(conf *cnf.CRFConf, opts Options) ([]string, error) {
	if err := opts.Validate(conf.Backend); err != nil {
		return nil, err
	}
	var ans []string
	switch conf.Backend {
	case cnf.CRFBackendWapiti:
		ans = []string{"label", "-m", conf.Model}
		if opts.NBestSents > 1 {
			ans = append(ans, "-s", "-p", "-n", strconv.Itoa(opts.NBestSents))
		}
	case cnf.CRFBackendCRFPP:
		ans = []string{"-m", conf.Model}
		if opts.NBestTags > 1 {
			ans = append(ans, "-v", "2")

		} else if opts.NBestSents > 1 {
			ans = append(ans, "-n", strconv.Itoa(opts.NBestSents))
		}
	}
	return ans, nil
}

// Tagger is a running external tagger process reading
// feature lines from its input.
type Tagger struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
}

// Input is where feature lines should be written. Once all
// the data are written, CloseInput must be called.
func (t *Tagger) Input() io.Writer {
	return t.stdin
}

func (t *Tagger) CloseInput() error {
	return t.stdin.Close()
}

// Output provides raw tagger output
func (t *Tagger) Output() io.Reader {
	return t.stdout
}

// Wait waits for the tagger to exit. All the output must
// be read before calling Wait.
func (t *Tagger) Wait() error {
	if err := t.cmd.Wait(); err != nil {
		return fmt.Errorf("CRF tagger failed: %w", err)
	}
	return nil
}

// StartTagger starts the configured tagger. The process is killed
// once ctx is cancelled.
func StartTagger(ctx context.Context, conf *cnf.CRFConf, opts Options) (*Tagger, error) {
	args, err := Args(conf, opts)
	if err != nil {
		return nil, err
	}
	path, err := exec.LookPath(conf.Executable)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (please install %s and/or adjust crf.executable)", ErrTaggerNotFound, conf.Executable, conf.Backend)
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to start CRF tagger: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to start CRF tagger: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start CRF tagger: %w", err)
	}
	return &Tagger{cmd: cmd, stdin: stdin, stdout: stdout}, nil
}
