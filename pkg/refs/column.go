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

// ExtractColumnRef matches name['col'] and name[['a', 'b']]. Any other
// subscript shape — an integer index, a bare variable, a nested subscript —
// returns ok=false.
func ExtractColumnRef(e lang.Expr) (ColumnRef, bool) {
	sub, ok := e.(*lang.Subscript)
	if !ok {
		return ColumnRef{}, false
	}

	name, ok := isName(sub.Value)
	if !ok {
		return ColumnRef{}, false
	}

	if lit, ok := isStr(sub.Index); ok {
		return ColumnRef{Node: sub, Region: sub.Region(), NameRegion: name.Region(), DfName: name.Id, ColumnNames: []string{lit.Value}}, true
	}

	list, ok := sub.Index.(*lang.ListLit)
	if !ok {
		return ColumnRef{}, false
	}

	cols := make([]string, 0, len(list.Elts))

	for _, elt := range list.Elts {
		lit, ok := isStr(elt)
		if !ok {
			return ColumnRef{}, false
		}

		cols = append(cols, lit.Value)
	}

	if len(cols) == 0 {
		return ColumnRef{}, false
	}

	return ColumnRef{Node: sub, Region: sub.Region(), NameRegion: name.Region(), DfName: name.Id, ColumnNames: cols}, true
}
