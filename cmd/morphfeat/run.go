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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/czcorpus/morphfeat/cnf"
	"github.com/czcorpus/morphfeat/crf"
	"github.com/czcorpus/morphfeat/db"
	"github.com/czcorpus/morphfeat/features"
	"github.com/czcorpus/morphfeat/postproc"
	"github.com/czcorpus/morphfeat/proc"
	"github.com/czcorpus/morphfeat/smor"
	"github.com/czcorpus/morphfeat/tokenize"
	"github.com/rs/zerolog/log"
)

// inputOptions describe where input lines come from
type inputOptions struct {
	paths []string

	// vertical means paths are corpus vertical files
	vertical bool

	// tokenize means paths contain raw text which must
	// be passed through the configured tokenizer first
	tokenize bool
}

func (opts inputOptions) validate() error {
	if opts.vertical && slices.Contains(opts.paths, proc.StdinPath) {
		return fmt.Errorf("vertical files cannot be read from stdin")
	}
	if opts.vertical && opts.tokenize {
		return fmt.Errorf("vertical files are already tokenized")
	}
	return nil
}

// runPlainInput feeds one-token-per-line data (either read directly
// or produced by the tokenizer) to the driver.
func runPlainInput(ctx context.Context, conf *cnf.Conf, driver *proc.Driver, opts inputOptions) error {
	if !opts.tokenize {
		scanner, err := proc.NewMultiFileScanner(os.Stdin, opts.paths...)
		if err != nil {
			return err
		}
		defer scanner.Close()
		return driver.Run(ctx, scanner)
	}
	input, files, err := proc.ConcatInputs(os.Stdin, opts.paths...)
	if err != nil {
		return err
	}
	defer files.Close()
	tok, err := tokenize.Start(ctx, &conf.Tokenizer, input)
	if err != nil {
		return err
	}
	if err := driver.Run(ctx, tok); err != nil {
		tok.Wait(false)
		return err
	}
	return tok.Wait(true)
}

// extractFeatures runs the whole feature extraction. The analyzer
// server (started by launcher or, if nil, by the configured executable)
// is stopped on all the return paths. The lexicon is initialized and
// closed here and it is committed only in case the extraction finished
// successfully.
func extractFeatures(
	ctx context.Context,
	conf *cnf.Conf,
	lex db.Lexicon,
	launcher smor.Launcher,
	opts inputOptions,
	out io.Writer,
) error {
	t0 := time.Now()
	if err := opts.validate(); err != nil {
		return err
	}
	if err := lex.Initialize(); err != nil {
		return fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer lex.Close()

	client, err := smor.NewClient(&conf.Analyzer, launcher)
	if err != nil {
		lex.Rollback()
		return err
	}
	defer client.Close()

	numLoaded, err := client.LoadLexicon(ctx, lex)
	if err != nil {
		lex.Rollback()
		return err
	}
	if conf.HasConfiguredLexicon() {
		log.Info().Int("entries", numLoaded).Msg("loaded lexicon")
	}

	driver := proc.NewDriver(client, features.NewBuilder(client.Cache()), out, conf.BatchSize)
	if opts.vertical {
		err = proc.NewVerticalReader(ctx, driver, &conf.Vertical).Run(opts.paths...)

	} else {
		err = runPlainInput(ctx, conf, driver, opts)
	}
	if err != nil {
		lex.Rollback()
		return err
	}

	numStored, err := client.StoreLexicon(lex)
	if err != nil {
		lex.Rollback()
		return err
	}
	if err := lex.Commit(); err != nil {
		return fmt.Errorf("failed to store lexicon: %w", err)
	}
	status := driver.Status()
	log.Info().
		Int("lines", status.ProcessedLines).
		Int("batches", status.ProcessedBatches).
		Int("queriedWords", status.QueriedWords).
		Int("storedLexiconEntries", numStored).
		Dur("elapsed", time.Since(t0)).
		Msg("feature extraction finished")
	return nil
}

// tagInput pipes extracted features through a CRF tagger
// and postprocesses its output.
func tagInput(
	ctx context.Context,
	conf *cnf.Conf,
	lex db.Lexicon,
	crfOpts crf.Options,
	opts inputOptions,
	out io.Writer,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tagger, err := crf.StartTagger(ctx, &conf.CRF, crfOpts)
	if err != nil {
		lex.Close()
		return err
	}
	postprocDone := make(chan error, 1)
	go func() {
		postprocDone <- postproc.Process(tagger.Output(), out, crfOpts.NBestTags)
	}()

	extractErr := extractFeatures(ctx, conf, lex, nil, opts, tagger.Input())
	if extractErr != nil {
		cancel()
	}
	if err := tagger.CloseInput(); err != nil && extractErr == nil {
		extractErr = fmt.Errorf("failed to finish tagger input: %w", err)
	}
	postprocErr := <-postprocDone
	waitErr := tagger.Wait()
	switch {
	case extractErr != nil:
		return extractErr
	case postprocErr != nil:
		return postprocErr
	}
	return waitErr
}
