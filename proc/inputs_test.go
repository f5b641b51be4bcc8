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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("Das Haus.\n"), 0644))
	input, files, err := ConcatInputs(strings.NewReader("Ein Baum.\n"), path, StdinPath)
	require.NoError(t, err)
	data, err := io.ReadAll(input)
	require.NoError(t, err)
	assert.NoError(t, files.Close())
	assert.Equal(t, "Das Haus.\nEin Baum.\n", string(data))
}

func TestConcatInputsMissingFile(t *testing.T) {
	_, _, err := ConcatInputs(nil, filepath.Join(t.TempDir(), "nothing.txt"))
	assert.Error(t, err)
}
