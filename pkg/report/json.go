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
package report

import (
	"encoding/json"
	"io"

	"github.com/lucianosrp/frame-check/pkg/diagnostic"
)

// jsonDiagnostic is the wire shape for --format json; it flattens
// diagnostic.Diagnostic's source.CodeRegion into plain row/col fields so
// callers don't need frame-check's internal types to consume the output.
type jsonDiagnostic struct {
	Path           string `json:"path"`
	Severity       string `json:"severity"`
	StartRow       int    `json:"startRow"`
	StartCol       int    `json:"startCol"`
	EndRow         int    `json:"endRow"`
	EndCol         int    `json:"endCol"`
	Message        string `json:"message"`
	NameSuggestion string `json:"nameSuggestion,omitempty"`
}

// PrintJSON writes every diagnostic across all files as one JSON array.
func PrintJSON(out io.Writer, byFile map[string][]diagnostic.Diagnostic, order []string) error {
	var all []jsonDiagnostic

	for _, path := range order {
		for _, d := range byFile[path] {
			all = append(all, jsonDiagnostic{
				Path:           path,
				Severity:       d.Severity.String(),
				StartRow:       d.Region.Start.Row,
				StartCol:       d.Region.Start.Col,
				EndRow:         d.Region.End.Row,
				EndCol:         d.Region.End.Col,
				Message:        d.Message,
				NameSuggestion: d.NameSuggestion,
			})
		}
	}

	if all == nil {
		all = []jsonDiagnostic{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(all)
}
