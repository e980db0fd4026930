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
package refs

import "github.com/lucianosrp/frame-check/pkg/lang"

// extractorFunc is the shape every registered extractor implements: match an
// expression pattern and report the column references found, or report no
// match.
type extractorFunc func(lang.Expr) ([]ColumnRef, bool)

// extractors runs in order; the first to match wins. column_ref is tried
// before binop since a bare subscript is the overwhelmingly common case; the
// two never both match, as binop rejects any expression whose root is not a
// BinOp.
var extractors = []extractorFunc{
	func(e lang.Expr) ([]ColumnRef, bool) {
		ref, ok := ExtractColumnRef(e)
		if !ok {
			return nil, false
		}

		return []ColumnRef{ref}, true
	},
	ExtractColumnRefsFromBinOp,
}

// Extract tries every registered extractor against e and returns the first
// match. It returns ok=false if the expression doesn't match any recognized
// column-reference pattern — a constant, an unbound variable, a method call,
// or a mixed binop with a non-column operand.
func Extract(e lang.Expr) ([]ColumnRef, bool) {
	for _, extract := range extractors {
		if refs, ok := extract(e); ok {
			return refs, true
		}
	}

	return nil, false
}
