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
package source

import "strings"

// File wraps the original source text of a single analyzed file and
// provides line lookups for error reporting. Unlike the teacher's
// byte-offset sexp.SourceMap, lines here are indexed directly from
// (row, col) positions, since that is the coordinate system the rest of
// the analyzer uses.
type File struct {
	// Path as supplied by the caller; may be empty for in-memory sources.
	Path string
	// lines holds the source split on '\n', with the trailing terminator
	// stripped from every entry except possibly the last.
	lines []string
}

// NewFile constructs a File from its full text.
func NewFile(path, text string) *File {
	return &File{Path: path, lines: strings.Split(text, "\n")}
}

// Line returns the 1-based line's text, or "" if row is out of range.
func (f *File) Line(row int) string {
	idx := row - 1
	if idx < 0 || idx >= len(f.lines) {
		return ""
	}

	return f.lines[idx]
}

// LineCount returns the number of lines in the source.
func (f *File) LineCount() int {
	return len(f.lines)
}

// Snippet extracts the text a region spans. For single-row regions this is
// the exact substring; for multi-row regions only the first line is used,
// which is sufficient for the analyzer's own diagnostics (all of which
// anchor to a single subscript or name).
func (f *File) Snippet(r CodeRegion) string {
	line := f.Line(r.Start.Row)
	if line == "" {
		return ""
	}

	start := r.Start.Col
	end := r.End.Col

	if r.RowSpan() > 0 {
		end = len(line)
	}

	if start < 0 {
		start = 0
	}

	if end > len(line) {
		end = len(line)
	}

	if start > end {
		return ""
	}

	return line[start:end]
}
