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

// Package source provides the position and region model shared by the
// lexer, parser and diagnostic builder: rows are 1-based, columns are
// 0-based, and regions are end-exclusive.
package source

import "fmt"

// CodePosition identifies a single point in source text.
type CodePosition struct {
	// Row is 1-based.
	Row int
	// Col is 0-based.
	Col int
}

// Before returns true iff p sorts strictly before q (row-major).
func (p CodePosition) Before(q CodePosition) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// AsLSP converts to the zero-based (line, character) convention used by the
// Language Server Protocol.
func (p CodePosition) AsLSP() (line, character uint32) {
	return uint32(p.Row - 1), uint32(p.Col)
}

// String renders "row:col".
func (p CodePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// CodeRegion is a contiguous span of source text, bounded by a start
// (inclusive) and end (exclusive) position.
type CodeRegion struct {
	Start CodePosition
	End   CodePosition
}

// NewRegion constructs a region, panicking if end is before start — mirrors
// the invariant check the teacher's sexp.Span performs at construction.
func NewRegion(start, end CodePosition) CodeRegion {
	if end.Before(start) {
		panic("invalid region: end before start")
	}

	return CodeRegion{start, end}
}

// RowSpan is the number of rows this region touches.
func (r CodeRegion) RowSpan() int {
	return r.End.Row - r.Start.Row
}

// ColSpan is the number of columns spanned, meaningful only when the region
// stays on a single row.
func (r CodeRegion) ColSpan() int {
	return r.End.Col - r.Start.Col
}

// IsEmpty holds when start and end coincide.
func (r CodeRegion) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p falls within [Start, End).
func (r CodeRegion) Contains(p CodePosition) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// String renders "start-end".
func (r CodeRegion) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
