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
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/czcorpus/morphfeat/cnf"
	"github.com/czcorpus/morphfeat/crf"
	"github.com/czcorpus/morphfeat/db"
	"github.com/czcorpus/morphfeat/db/factory"
	"github.com/czcorpus/morphfeat/fs"
	"github.com/czcorpus/morphfeat/proc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	version   string
	build     string
	gitCommit string
)

func setupLog(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lev, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("invalid log level, using info")
		lev = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lev)
}

// prepareRun loads configuration, determines input files
// and creates (but does not open) the configured lexicon.
func prepareRun(args []string) (*cnf.Conf, []string, db.Lexicon, error) {
	conf, err := cnf.LoadConf(args[0])
	if err != nil {
		return nil, nil, nil, err
	}
	setupLog(conf.LogLevel)
	inputs, err := fs.ExpandInputPaths(args[1:])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to determine input files: %w", err)
	}
	if len(inputs) == 0 {
		inputs = []string{proc.StdinPath}
	}
	lex, err := factory.NewLexicon(conf.Lexicon)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	return conf, inputs, lex, nil
}

func commandUsage(cmd *flag.FlagSet, args, desc string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [options] %s\n\n", os.Args[0], cmd.Name(), args)
		fmt.Fprintf(os.Stderr, "%s\n\n", desc)
		fmt.Fprintf(os.Stderr, "Options:\n")
		cmd.PrintDefaults()
	}
}

func runExtractCmd(args []string) error {
	extractCmd := flag.NewFlagSet("extract", flag.ExitOnError)
	vertical := extractCmd.Bool("vertical", false, "inputs are corpus vertical files")
	tokenize := extractCmd.Bool("tokenize", false, "inputs are raw text to be processed by the configured tokenizer")
	extractCmd.Usage = commandUsage(
		extractCmd,
		"<config-file> [input ...]",
		"Write CRF features for tokenized input (one token per line, empty line between sentences).\n"+
			"With no input (or '-'), stdin is read. Directories are expanded to the files they contain.\n"+
			"With -tokenize, raw text is passed through the configured tokenizer first.",
	)
	extractCmd.Parse(args)
	if extractCmd.NArg() < 1 {
		extractCmd.Usage()
		os.Exit(1)
	}
	conf, inputs, lex, err := prepareRun(extractCmd.Args())
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	opts := inputOptions{paths: inputs, vertical: *vertical, tokenize: *tokenize}
	return extractFeatures(ctx, conf, lex, nil, opts, os.Stdout)
}

func runTagCmd(args []string) error {
	tagCmd := flag.NewFlagSet("tag", flag.ExitOnError)
	vertical := tagCmd.Bool("vertical", false, "inputs are corpus vertical files")
	tokenize := tagCmd.Bool("tokenize", false, "inputs are raw text to be processed by the configured tokenizer")
	model := tagCmd.String("model", "", "path to a CRF model (overrides crf.model)")
	nbestSents := tagCmd.Int("nbestsents", 1, "print N best analyses for each sentence")
	nbestTags := tagCmd.Int("nbesttags", 1, "print N best analyses for each token (crf++ only)")
	tagCmd.Usage = commandUsage(
		tagCmd,
		"<config-file> [input ...]",
		"Tag tokenized input (one token per line, empty line between sentences) using a CRF tagger.",
	)
	tagCmd.Parse(args)
	if tagCmd.NArg() < 1 {
		tagCmd.Usage()
		os.Exit(1)
	}
	crfOpts := crf.Options{NBestSents: *nbestSents, NBestTags: *nbestTags}
	conf, inputs, lex, err := prepareRun(tagCmd.Args())
	if err != nil {
		return err
	}
	if *model != "" {
		conf.CRF.Model = *model
	}
	if err := crfOpts.Validate(conf.CRF.Backend); err != nil {
		lex.Close()
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	opts := inputOptions{paths: inputs, vertical: *vertical, tokenize: *tokenize}
	return tagInput(ctx, conf, lex, crfOpts, opts, os.Stdout)
}

func dumpTemplate() error {
	data, err := cnf.DumpConf(cnf.DefaultConf())
	if err != nil {
		return fmt.Errorf("failed to dump a new config: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "morphfeat - German PoS tagging features based on SMOR morphological analysis\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  extract   Write CRF features for tokenized input\n")
	fmt.Fprintf(os.Stderr, "  tag       Extract features and tag them with a CRF tagger\n")
	fmt.Fprintf(os.Stderr, "  template  Write a half empty sample config to stdout\n")
	fmt.Fprintf(os.Stderr, "  version   Show version information\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s <command> -h' for more information about a command.\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	setupLog(cnf.DfltLogLevel)

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtractCmd(os.Args[2:])
	case "tag":
		err = runTagCmd(os.Args[2:])
	case "template":
		err = dumpTemplate()
	case "version":
		fmt.Printf("morphfeat %s\nbuild date: %s\nlast commit: %s\n", version, build, gitCommit)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run")
	}
}
