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

// Package registry holds the two extension points the checker dispatches
// calls through: constructors (module-level functions that produce a new
// frame, like pandas.DataFrame) and methods (frame member calls that mutate
// or return a frame, like .assign). They are kept as two disjoint tables
// because the two have different call shapes — a constructor has no
// receiver schema to consult, a method always does — even though both are
// just name-to-handler maps.
package registry

import "github.com/lucianosrp/frame-check/pkg/value"

// Columns is the column-name set a constructor or method handler produces.
type Columns = map[string]struct{}

// ConstructorFunc builds a new frame's column set from a call's arguments.
// ok is false when the call's shape could not be resolved to a schema — no
// frame is registered for an unresolved constructor call.
type ConstructorFunc func(args []value.Value, keywords map[string]value.Value) (cols Columns, ok bool)

// MethodFunc is called with the receiver's current column set and the
// call's arguments. It returns the receiver's updated columns, the schema
// of the returned frame if the method returns one (returnsFrame reports
// which), and never errors — a handler that can't make sense of an argument
// just leaves the schema unchanged rather than guessing.
type MethodFunc func(receiver Columns, args []value.Value, keywords map[string]value.Value) (updated, returned Columns, returnsFrame bool)

// Constructors maps a module-level function name (pd.<name>) to its
// handler.
var Constructors = map[string]ConstructorFunc{
	"DataFrame": dataFrame,
	"read_csv":  readCSV,
}

// Methods maps a frame method name (frame.<name>) to its handler.
var Methods = map[string]MethodFunc{
	"assign": assign,
	"insert": insert,
}

// idxOrKey fetches a call argument first by positional index (when idx is
// non-nil and in range), falling back to a keyword lookup. Absent either
// way, it returns Unknown.
func idxOrKey(args []value.Value, keywords map[string]value.Value, idx *int, key string) value.Value {
	if idx != nil && *idx < len(args) {
		return args[*idx]
	}

	if v, ok := keywords[key]; ok {
		return v
	}

	return value.UnknownValue
}

func cloneColumns(src Columns) Columns {
	dst := make(Columns, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}

	return dst
}

// dataFrame implements pd.DataFrame(data=...): a dict's string keys become
// the schema; a list of dicts unions their string keys; anything else is
// unresolved.
func dataFrame(args []value.Value, keywords map[string]value.Value) (Columns, bool) {
	idx := 0
	data := idxOrKey(args, keywords, &idx, "data")

	switch data.Kind() {
	case value.KindDict:
		d, _ := data.AsDict()
		cols := make(Columns, len(d))

		for k := range d {
			cols[k] = struct{}{}
		}

		return cols, true

	case value.KindList:
		items, _ := data.AsList()
		cols := Columns{}

		for _, item := range items {
			d, ok := item.AsDict()
			if !ok {
				return nil, false
			}

			for k := range d {
				cols[k] = struct{}{}
			}
		}

		return cols, true

	default:
		return nil, false
	}
}

// readCSV implements pd.read_csv(..., usecols=...): a single string names
// one column, a list of strings names each; any other shape — an integer,
// a mixed or variable-containing list — leaves the call unresolved rather
// than guessing at positional column indices.
func readCSV(args []value.Value, keywords map[string]value.Value) (Columns, bool) {
	usecols := idxOrKey(args, keywords, nil, "usecols")

	switch usecols.Kind() {
	case value.KindStr:
		s, _ := usecols.AsStr()
		return Columns{s: {}}, true

	case value.KindList:
		items, _ := usecols.AsList()
		cols := make(Columns, len(items))

		for _, item := range items {
			s, ok := item.AsStr()
			if !ok {
				return nil, false
			}

			cols[s] = struct{}{}
		}

		return cols, true

	default:
		return nil, false
	}
}

// assign implements frame.assign(**kwargs): the receiver is unchanged; the
// returned frame gains one column per keyword argument name, regardless of
// the keyword's value.
func assign(receiver Columns, _ []value.Value, keywords map[string]value.Value) (Columns, Columns, bool) {
	returned := cloneColumns(receiver)
	for name := range keywords {
		returned[name] = struct{}{}
	}

	return receiver, returned, true
}

// insert implements frame.insert(loc, column, value, ...): the receiver
// gains the named column, taken from positional argument 1 or the
// "column" keyword, when that argument is a string constant. insert never
// returns a frame.
func insert(receiver Columns, args []value.Value, keywords map[string]value.Value) (Columns, Columns, bool) {
	updated := cloneColumns(receiver)

	var name string

	var ok bool

	if len(args) > 1 {
		name, ok = args[1].AsStr()
	}

	if !ok {
		if v, present := keywords["column"]; present {
			name, ok = v.AsStr()
		}
	}

	if ok {
		updated[name] = struct{}{}
	}

	return updated, nil, false
}
