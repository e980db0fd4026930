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

// Package diagnostic builds the typed error records the checker emits: a
// severity, a source region, a preformatted message, and the optional
// context (a hint, a suggested name, a definition or data-source region)
// richer consumers can render. Message text is built here, once, so the CLI
// reporter and the language server never disagree on wording.
package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucianosrp/frame-check/pkg/similarity"
	"github.com/lucianosrp/frame-check/pkg/source"
)

// Severity ranks how seriously a consumer should treat a Diagnostic.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reported issue. Region is always the offending
// subscript (or the bare name, for an undeclared frame). DefinitionRegion
// and DataSourceRegion are nil when that context is unavailable.
type Diagnostic struct {
	Severity         Severity
	Region           source.CodeRegion
	Message          string
	Hint             []string
	NameSuggestion   string
	DefinitionRegion *source.CodeRegion
	DataSourceRegion *source.CodeRegion
}

const maxDisplayColumns = 8

// formatColumns renders a sorted, quoted column list for diagnostic
// messages, truncating long lists to the first 3 and last 2 entries.
func formatColumns(cols []string) string {
	sorted := append([]string(nil), cols...)
	sort.Strings(sorted)

	if len(sorted) <= maxDisplayColumns {
		return joinQuoted(sorted)
	}

	first := joinQuoted(sorted[:3])
	last := joinQuoted(sorted[len(sorted)-2:])
	remaining := len(sorted) - 5

	return fmt.Sprintf("%s, ...+%d more..., %s", first, remaining, last)
}

func joinQuoted(cols []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = "'" + c + "'"
	}

	return strings.Join(parts, ", ")
}

// suggestFor finds a near-miss suggestion for a missing column among the
// available ones, or "" if none clears the similarity threshold.
func suggestFor(missing string, available []string) string {
	candidates := make(map[string]struct{}, len(available))
	for _, c := range available {
		candidates[c] = struct{}{}
	}

	s, ok := similarity.Suggest(missing, candidates)
	if !ok {
		return ""
	}

	return s
}

// MissingColumnOnRead reports a read of a column that does not exist on the
// named frame.
func MissingColumnOnRead(region source.CodeRegion, frameName, column string, available []string) Diagnostic {
	lines := []string{fmt.Sprintf("Column '%s' does not exist on DataFrame '%s'.", column, frameName)}

	suggestion := suggestFor(column, available)
	if suggestion != "" {
		lines = append(lines, fmt.Sprintf("  Did you mean: '%s'?", suggestion))
	}

	if len(available) > 0 {
		lines = append(lines, fmt.Sprintf("  Available columns: %s", formatColumns(available)))
	}

	return Diagnostic{
		Severity:       Error,
		Region:         region,
		Message:        strings.Join(lines, "\n"),
		NameSuggestion: suggestion,
	}
}

// InvalidAssignment reports a write whose right-hand side depends on one or
// more columns that do not exist.
func InvalidAssignment(region source.CodeRegion, frameName, writeColumn string, missing, available []string) Diagnostic {
	var header string

	if len(missing) == 1 {
		header = fmt.Sprintf("Cannot assign to %s['%s']: column '%s' does not exist.", frameName, writeColumn, missing[0])
	} else {
		header = fmt.Sprintf("Cannot assign to %s['%s']: columns %s do not exist.", frameName, writeColumn, joinQuoted(missing))
	}

	lines := []string{header}

	var suggestions []string

	for _, col := range missing {
		if s := suggestFor(col, available); s != "" {
			suggestions = append(suggestions, fmt.Sprintf("'%s' -> '%s'", col, s))
		}
	}

	if len(suggestions) > 0 {
		lines = append(lines, fmt.Sprintf("  Did you mean: %s?", strings.Join(suggestions, ", ")))
	}

	if len(available) > 0 {
		lines = append(lines, fmt.Sprintf("  Available columns: %s", formatColumns(available)))
	}

	return Diagnostic{
		Severity: Error,
		Region:   region,
		Message:  strings.Join(lines, "\n"),
	}
}

// UndeclaredDataFrame reports a reference to a frame variable the checker
// has never seen bound.
func UndeclaredDataFrame(region source.CodeRegion, frameName string) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Region:   region,
		Message:  fmt.Sprintf("DataFrame '%s' is not declared.", frameName),
	}
}
