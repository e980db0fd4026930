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
package value

import "github.com/lucianosrp/frame-check/pkg/lang"

// FromExpr shallowly evaluates an expression into a Value, matching
// ast/models.py's get_value: only string constants, lists of constants, and
// dicts of constants are resolved; everything else — arithmetic, attribute
// access, calls, unbound names — collapses to Unknown. Lookups do not
// recurse into bindings; that one-level variable resolution is the
// checker's job (pkg/checker), not this function's.
func FromExpr(e lang.Expr) Value {
	switch n := e.(type) {
	case *lang.Str:
		return Str(n.Value)
	case *lang.ListLit:
		elts := make([]Value, len(n.Elts))
		for i, elt := range n.Elts {
			elts[i] = FromExpr(elt)
		}

		return List(elts)
	case *lang.DictLit:
		m := make(map[string]Value, len(n.Entries))

		for _, entry := range n.Entries {
			key, ok := entry.Key.(*lang.Str)
			if !ok {
				return UnknownValue
			}

			m[key.Value] = FromExpr(entry.Value)
		}

		return Dict(m)
	default:
		return UnknownValue
	}
}
