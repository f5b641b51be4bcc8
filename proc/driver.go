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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Resolver makes sure candidate tags of provided words are known
// before any feature line is built. It returns the number of words
// (including spelling variants) actually sent to the analyzer.
type Resolver interface {
	Resolve(ctx context.Context, words []string) (int, error)
}

// LineBuilder converts an input line into an output (feature) line
type LineBuilder interface {
	Build(line string) string
}

// Status stores some basic information about the processing
type Status struct {
	Datetime         time.Time
	ProcessedLines   int
	ProcessedBatches int
	QueriedWords     int
}

// Driver reads input lines, groups them into batches and for each
// batch it first resolves all the words and then writes feature lines
// in the original order. Batches are processed strictly one by one.
type Driver struct {
	resolver  Resolver
	builder   LineBuilder
	batchSize int
	buffer    []string
	out       *bufio.Writer
	status    Status
}

func (d *Driver) Status() Status {
	return d.status
}

func firstField(line string) string {
	items := strings.Fields(line)
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

// Push adds a line to the current batch. Once the batch is full,
// it is processed immediately.
func (d *Driver) Push(ctx context.Context, line string) error {
	d.buffer = append(d.buffer, line)
	if len(d.buffer) >= d.batchSize {
		return d.Flush(ctx)
	}
	return nil
}

// Flush processes the current (possibly incomplete) batch
func (d *Driver) Flush(ctx context.Context) error {
	if len(d.buffer) == 0 {
		return d.out.Flush()
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("processing stopped: %w", err)
	}
	words := make([]string, 0, len(d.buffer))
	for _, line := range d.buffer {
		if w := firstField(line); w != "" {
			words = append(words, w)
		}
	}
	numQueried, err := d.resolver.Resolve(ctx, words)
	if err != nil {
		return fmt.Errorf("failed to process batch %d: %w", d.status.ProcessedBatches+1, err)
	}
	for _, line := range d.buffer {
		if _, err := d.out.WriteString(d.builder.Build(line) + "\n"); err != nil {
			return fmt.Errorf("failed to write features: %w", err)
		}
	}
	if err := d.out.Flush(); err != nil {
		return fmt.Errorf("failed to write features: %w", err)
	}
	d.status.Datetime = time.Now()
	d.status.ProcessedBatches++
	d.status.ProcessedLines += len(d.buffer)
	d.status.QueriedWords += numQueried
	log.Info().
		Int("batch", d.status.ProcessedBatches).
		Int("lines", len(d.buffer)).
		Int("queriedWords", numQueried).
		Int("totalLines", d.status.ProcessedLines).
		Msg("processed batch")
	d.buffer = d.buffer[:0]
	return nil
}

// Run processes all the lines provided by the scanner and writes
// the result to the driver's output.
func (d *Driver) Run(ctx context.Context, scanner LineScanner) error {
	for scanner.Scan() {
		if err := d.Push(ctx, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return d.Flush(ctx)
}

// NewDriver creates a batch driver. In case batchSize is not
// positive, a single line batches are used.
func NewDriver(resolver Resolver, builder LineBuilder, out io.Writer, batchSize int) *Driver {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Driver{
		resolver:  resolver,
		builder:   builder,
		batchSize: batchSize,
		buffer:    make([]string, 0, batchSize),
		out:       bufio.NewWriter(out),
	}
}
