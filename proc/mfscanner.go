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
	"fmt"
	"io"
	"os"
)

const (
	// StdinPath is a special input path representing the standard input
	StdinPath = "-"

	maxLineSize = 1024 * 1024
)

// LineScanner is a minimal line reading interface
// satisfied by bufio.Scanner and MultiFileScanner
type LineScanner interface {
	Scan() bool
	Text() string
	Err() error
}

// MultiFileScanner wraps multiple files (including stdin) and provides
// a unified scanning interface. Inputs are read one by one in the order
// they were specified.
type MultiFileScanner struct {
	filePaths    []string
	currentIndex int
	currentFile  io.ReadCloser
	scanner      *bufio.Scanner
	stdin        io.Reader
	err          error
}

// CurrentFile returns the path of the input currently being read
func (mfs *MultiFileScanner) CurrentFile() string {
	if mfs.currentIndex >= 0 && mfs.currentIndex < len(mfs.filePaths) {
		return mfs.filePaths[mfs.currentIndex]
	}
	return ""
}

func (mfs *MultiFileScanner) openNextFile() bool {
	if mfs.currentFile != nil {
		mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.scanner = nil
	}
	mfs.currentIndex++
	if mfs.currentIndex >= len(mfs.filePaths) {
		return false
	}
	path := mfs.filePaths[mfs.currentIndex]
	if path == StdinPath {
		mfs.currentFile = io.NopCloser(mfs.stdin)

	} else {
		file, err := os.Open(path)
		if err != nil {
			mfs.err = fmt.Errorf("failed to open input %s: %w", path, err)
			return false
		}
		mfs.currentFile = file
	}
	mfs.scanner = bufio.NewScanner(mfs.currentFile)
	mfs.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return true
}

// Scan advances to the next line, returning false when finished or on error
func (mfs *MultiFileScanner) Scan() bool {
	for mfs.scanner != nil {
		if mfs.scanner.Scan() {
			return true
		}
		if err := mfs.scanner.Err(); err != nil {
			mfs.err = fmt.Errorf("failed to read input %s: %w", mfs.CurrentFile(), err)
			return false
		}
		if !mfs.openNextFile() {
			return false
		}
	}
	return false
}

// Text returns the current line
func (mfs *MultiFileScanner) Text() string {
	if mfs.scanner == nil {
		return ""
	}
	return mfs.scanner.Text()
}

// Err returns the first error encountered during scanning
func (mfs *MultiFileScanner) Err() error {
	return mfs.err
}

// Close closes any open file handles
func (mfs *MultiFileScanner) Close() error {
	if mfs.currentFile != nil {
		err := mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.scanner = nil
		return err
	}
	return nil
}

// NewMultiFileScanner creates a scanner that reads through multiple
// files sequentially. The path "-" stands for the provided stdin reader.
func NewMultiFileScanner(stdin io.Reader, filePaths ...string) (*MultiFileScanner, error) {
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("at least one input path required")
	}
	mfs := &MultiFileScanner{
		filePaths:    filePaths,
		currentIndex: -1,
		stdin:        stdin,
	}
	if !mfs.openNextFile() {
		return nil, mfs.err
	}
	return mfs, nil
}
