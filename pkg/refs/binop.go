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

// ExtractColumnRefsFromBinOp walks a BinOp tree (df['A'] + df['B'] - df['C'])
// and collects every leaf column reference. If any leaf is not itself a
// column reference — a constant, a bare variable, a method call — the whole
// expression is rejected: ok is false and refs is nil.
func ExtractColumnRefsFromBinOp(e lang.Expr) ([]ColumnRef, bool) {
	root, ok := e.(*lang.BinOp)
	if !ok {
		return nil, false
	}

	var refs []ColumnRef

	stack := []lang.Expr{root.Left, root.Right}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b, ok := n.(*lang.BinOp); ok {
			stack = append(stack, b.Left, b.Right)
			continue
		}

		ref, ok := ExtractColumnRef(n)
		if !ok {
			return nil, false
		}

		refs = append(refs, ref)
	}

	if len(refs) == 0 {
		return nil, false
	}

	return refs, true
}
