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

// Package refs identifies DataFrame column references on the right-hand side
// of an expression: a bare subscript (df['A']), a multi-column subscript
// (df[['a', 'b']]), or a binary operation tree whose every leaf is itself a
// column reference (df['A'] + df['B']). Extraction is pattern matching only;
// whether the referenced columns actually exist is the tracker's job.
package refs

import (
	"github.com/lucianosrp/frame-check/pkg/lang"
	"github.com/lucianosrp/frame-check/pkg/source"
)

// ColumnRef is a single-DataFrame column access extracted from an
// expression: df['A'] or df[['a', 'b']].
type ColumnRef struct {
	Node        *lang.Subscript
	Region      source.CodeRegion
	NameRegion  source.CodeRegion
	DfName      string
	ColumnNames []string
}

func isName(e lang.Expr) (*lang.Name, bool) {
	n, ok := e.(*lang.Name)
	return n, ok
}

func isStr(e lang.Expr) (*lang.Str, bool) {
	s, ok := e.(*lang.Str)
	return s, ok
}
