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

package proc

import (
	"context"
	"fmt"

	"github.com/czcorpus/morphfeat/cnf"
	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v6"
)

const (
	verticalProgressStep = 500000
)

// VerticalReader feeds a Driver with tokens from a corpus
// vertical file. It implements vertigo.LineProcessor.
// A closing tag of the configured sentence structure produces
// an empty line (a sentence boundary).
type VerticalReader struct {
	ctx            context.Context
	driver         *Driver
	sentenceStruct string
	tagColumn      int
	numErrors      int
}

// ProcToken is a part of vertigo.LineProcessor implementation.
func (vr *VerticalReader) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		log.Warn().Err(err).Int("line", line).Msg("skipping invalid vertical line")
		vr.numErrors++
		return nil
	}
	if tk.Word == "" {
		return nil
	}
	value := tk.Word
	if vr.tagColumn > 0 {
		if tag := tk.PosAttrByIndex(vr.tagColumn); tag != "" {
			value += "\t" + tag
		}
	}
	return vr.driver.Push(vr.ctx, value)
}

// ProcStruct is a part of vertigo.LineProcessor implementation.
func (vr *VerticalReader) ProcStruct(st *vertigo.Structure, line int, err error) error {
	select {
	case <-vr.ctx.Done():
		return fmt.Errorf("received stop signal: %w", vr.ctx.Err())
	default:
	}
	if err != nil {
		log.Warn().Err(err).Int("line", line).Msg("skipping invalid structure")
		vr.numErrors++
	}
	return nil
}

// ProcStructClose is a part of vertigo.LineProcessor implementation.
func (vr *VerticalReader) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		log.Warn().Err(err).Int("line", line).Msg("skipping invalid structure closing")
		vr.numErrors++
		return nil
	}
	if st != nil && st.Name == vr.sentenceStruct {
		return vr.driver.Push(vr.ctx, "")
	}
	return nil
}

// NumErrors returns the number of skipped invalid lines
func (vr *VerticalReader) NumErrors() int {
	return vr.numErrors
}

// Run parses all the vertical files (one by one) and finally flushes
// the driver.
func (vr *VerticalReader) Run(filePaths ...string) error {
	for _, path := range filePaths {
		log.Info().Str("vertical", path).Msg("processing vertical file")
		parserConf := &vertigo.ParserConf{
			InputFilePath:         path,
			StructAttrAccumulator: "nil",
			Encoding:              "utf-8",
			LogProgressEachNth:    verticalProgressStep,
		}
		if err := vertigo.ParseVerticalFile(vr.ctx, parserConf, vr); err != nil {
			return fmt.Errorf("failed to process vertical file %s: %w", path, err)
		}
	}
	return vr.driver.Flush(vr.ctx)
}

// NewVerticalReader creates a vertical reader. A non-positive tag
// column (0 is the word itself) means there is no truth tag.
func NewVerticalReader(ctx context.Context, driver *Driver, conf *cnf.VerticalConf) *VerticalReader {
	sentStruct := conf.SentenceStruct
	if sentStruct == "" {
		sentStruct = cnf.DfltSentenceStruct
	}
	return &VerticalReader{
		ctx:            ctx,
		driver:         driver,
		sentenceStruct: sentStruct,
		tagColumn:      conf.TagColumn,
	}
}
