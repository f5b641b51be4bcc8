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

package fs

import (
	"os"
	"path/filepath"
	"sort"
)

// IsDir tests whether a provided path represents
// a directory. If not or in case of an IO error,
// false is returned.
func IsDir(path string) bool {
	finfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return finfo.Mode().IsDir()
}

// IsFile tests whether a provided path represents
// a file. If not or in case of an IO error,
// false is returned.
func IsFile(path string) bool {
	finfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return finfo.Mode().IsRegular()
}

// ExpandInputPaths replaces directories with the regular files
// they contain (sorted by name, non-recursive). Other paths,
// including "-" for stdin, are kept as they are.
func ExpandInputPaths(paths []string) ([]string, error) {
	ans := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "-" && IsDir(p) {
			entries, err := os.ReadDir(p)
			if err != nil {
				return []string{}, err
			}
			tmp := make([]string, 0, len(entries))
			for _, e := range entries {
				if e.Type().IsRegular() {
					tmp = append(tmp, filepath.Join(p, e.Name()))
				}
			}
			sort.Strings(tmp)
			ans = append(ans, tmp...)

		} else {
			ans = append(ans, p)
		}
	}
	return ans, nil
}
