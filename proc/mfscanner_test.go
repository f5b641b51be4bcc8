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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiFileScannerScanAndText(t *testing.T) {
	tmpDir := t.TempDir()
	file1Path := filepath.Join(tmpDir, "file1.txt")
	file2Path := filepath.Join(tmpDir, "file2.txt")
	require.NoError(t, os.WriteFile(file1Path, []byte("Das\nHaus\n\n"), 0644))
	require.NoError(t, os.WriteFile(file2Path, []byte("ist\nschön"), 0644))

	scanner, err := NewMultiFileScanner(strings.NewReader("."), file1Path, StdinPath, file2Path)
	require.NoError(t, err)
	defer scanner.Close()

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	assert.NoError(t, scanner.Err())
	assert.Equal(t, []string{"Das", "Haus", "", ".", "ist", "schön"}, lines)
}

func TestMultiFileScannerEmptyFileInTheMiddle(t *testing.T) {
	tmpDir := t.TempDir()
	paths := []string{
		filepath.Join(tmpDir, "a.txt"),
		filepath.Join(tmpDir, "b.txt"),
		filepath.Join(tmpDir, "c.txt"),
	}
	require.NoError(t, os.WriteFile(paths[0], []byte("a\n"), 0644))
	require.NoError(t, os.WriteFile(paths[1], []byte{}, 0644))
	require.NoError(t, os.WriteFile(paths[2], []byte("c\n"), 0644))
	scanner, err := NewMultiFileScanner(nil, paths...)
	require.NoError(t, err)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	assert.Equal(t, []string{"a", "c"}, lines)
}

func TestMultiFileScannerMissingFile(t *testing.T) {
	_, err := NewMultiFileScanner(nil, filepath.Join(t.TempDir(), "nothing.txt"))
	assert.Error(t, err)
}

func TestMultiFileScannerMissingSecondFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))
	scanner, err := NewMultiFileScanner(nil, path, filepath.Join(tmpDir, "nothing.txt"))
	require.NoError(t, err)
	assert.True(t, scanner.Scan())
	assert.False(t, scanner.Scan())
	assert.Error(t, scanner.Err())
}

func TestMultiFileScannerNoPaths(t *testing.T) {
	_, err := NewMultiFileScanner(nil)
	assert.Error(t, err)
}
