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
	"errors"
	"fmt"
	"io"
	"os"
)

type openedFiles []*os.File

func (of openedFiles) Close() error {
	var errs []error
	for _, f := range of {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

// ConcatInputs opens all the inputs and joins them into a single
// raw stream. The path "-" stands for the provided stdin reader.
// The returned closer releases all the opened files.
func ConcatInputs(stdin io.Reader, filePaths ...string) (io.Reader, io.Closer, error) {
	readers := make([]io.Reader, 0, len(filePaths))
	files := make(openedFiles, 0, len(filePaths))
	for _, path := range filePaths {
		if path == StdinPath {
			readers = append(readers, stdin)
			continue
		}
		file, err := os.Open(path)
		if err != nil {
			files.Close()
			return nil, nil, fmt.Errorf("failed to open input %s: %w", path, err)
		}
		files = append(files, file)
		readers = append(readers, file)
	}
	return io.MultiReader(readers...), files, nil
}
