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

// Package tracker records the column schema of a single DataFrame-like
// variable as the checker walks a module. A FrameTracker is Strict when the
// columns at its point of creation are fully known and Relaxed when they are
// not: strict trackers reject reads and writes of columns they've never
// seen, relaxed trackers admit anything and grow to accommodate it. The
// checker creates only strict trackers; a constructor call it cannot
// resolve registers no frame at all.
package tracker

// Mode selects how a FrameTracker treats columns it has not seen before.
type Mode uint8

const (
	// Strict rejects reads and dependency writes of unknown columns.
	Strict Mode = iota
	// Relaxed silently creates any column referenced, read or written.
	Relaxed
)

// FrameTracker tracks the columns known to exist on one DataFrame variable,
// plus each column's dependency set (the columns a derived column was
// computed from). The dependency sets are write provenance only; the
// checker does not use them for anything beyond strict-mode validation.
type FrameTracker struct {
	ID      string
	mode    Mode
	columns map[string]map[string]struct{}
}

// NewStrict builds a tracker whose schema is fully known up front — the
// columns a constructor or method handler in pkg/registry resolved.
func NewStrict(id string, columns []string) *FrameTracker {
	t := &FrameTracker{ID: id, mode: Strict, columns: make(map[string]map[string]struct{}, len(columns))}
	for _, c := range columns {
		t.columns[c] = map[string]struct{}{}
	}

	return t
}

// NewRelaxed builds a tracker for a frame whose initial schema could not be
// determined statically. Every column it is asked about is assumed to exist.
func NewRelaxed(id string) *FrameTracker {
	return &FrameTracker{ID: id, mode: Relaxed, columns: map[string]map[string]struct{}{}}
}

// Mode reports whether t is Strict or Relaxed.
func (t *FrameTracker) Mode() Mode { return t.mode }

// Columns returns the set of column names currently known to t, in no
// particular order.
func (t *FrameTracker) Columns() []string {
	cols := make([]string, 0, len(t.columns))
	for c := range t.columns {
		cols = append(cols, c)
	}

	return cols
}

// TryGet accesses a column for read. It returns ok=false in strict mode when
// the column does not exist; relaxed trackers auto-create the column and
// always succeed.
func (t *FrameTracker) TryGet(column string) (ok bool) {
	if _, exists := t.columns[column]; exists {
		return true
	}

	if t.mode == Strict {
		return false
	}

	t.columns[column] = map[string]struct{}{}

	return true
}

// TryAdd writes a column, optionally recording the columns it was derived
// from. In strict mode, if any dependency is missing the write is rejected
// and the missing dependency names are returned; nothing is mutated. In
// relaxed mode missing dependencies are auto-created and the write always
// succeeds.
func (t *FrameTracker) TryAdd(column string, dependsOn []string) (missing []string, ok bool) {
	if len(dependsOn) == 0 {
		if _, exists := t.columns[column]; !exists {
			t.columns[column] = map[string]struct{}{}
		}

		return nil, true
	}

	if t.mode == Strict {
		for _, dep := range dependsOn {
			if _, exists := t.columns[dep]; !exists {
				missing = append(missing, dep)
			}
		}

		if len(missing) > 0 {
			return missing, false
		}
	} else {
		for _, dep := range dependsOn {
			if _, exists := t.columns[dep]; !exists {
				t.columns[dep] = map[string]struct{}{}
			}
		}
	}

	deps, exists := t.columns[column]
	if !exists {
		deps = map[string]struct{}{}
		t.columns[column] = deps
	}

	for _, dep := range dependsOn {
		deps[dep] = struct{}{}
	}

	return nil, true
}

// Independent returns the columns with no recorded dependencies — the
// "core" columns a schema was built from, as opposed to derived ones.
func (t *FrameTracker) Independent() []string {
	var cols []string

	for col, deps := range t.columns {
		if len(deps) == 0 {
			cols = append(cols, col)
		}
	}

	return cols
}
