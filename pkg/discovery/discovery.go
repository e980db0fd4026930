// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package discovery walks root paths collecting the Python files the
// checker should analyze, dropping anything matched by an exclusion
// pattern. It is pure file-system plumbing: it decides what to check,
// never how.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls a Find walk.
type Options struct {
	// Extension is the file suffix to collect, including the dot.
	// Defaults to ".py" when empty.
	Extension string
	// Exclude holds doublestar glob patterns (supporting *, ?, [...], **)
	// matched against the path relative to each root and against the path
	// as walked. A pattern also excludes every file under it when it names
	// a directory prefix of either path ("vendor" or "vendor/").
	Exclude []string
}

// Find walks every root (a file or a directory) and returns every matching
// file path found, sorted for deterministic output. A root that is itself
// a file is returned as-is, subject to the same exclusion check.
func Find(roots []string, opts Options) ([]string, error) {
	ext := opts.Extension
	if ext == "" {
		ext = ".py"
	}

	var found []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if matches(root, root, ext, opts.Exclude) {
				found = append(found, root)
			}

			continue
		}

		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			if matches(path, root, ext, opts.Exclude) {
				found = append(found, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(found)

	return found, nil
}

func matches(path, root, ext string, exclude []string) bool {
	if filepath.Ext(path) != ext {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	rel = filepath.ToSlash(rel)

	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}

		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(path)); ok {
			return false
		}

		if dir := strings.TrimSuffix(pattern, "/"); dir != "" {
			if strings.HasPrefix(rel, dir+"/") || strings.HasPrefix(filepath.ToSlash(path), dir+"/") {
				return false
			}
		}
	}

	return true
}
