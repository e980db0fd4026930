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
package similarity

import (
	"math"
	"testing"

	"github.com/lucianosrp/frame-check/pkg/util/assert"
)

func approx(t *testing.T, want, got float64) {
	t.Helper()

	if math.Abs(want-got) > 1e-9 {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestJaroWinklerExactMatch(t *testing.T) {
	approx(t, 1.0, JaroWinkler("test", "test"))
	approx(t, 1.0, JaroWinkler("", ""))
	approx(t, 1.0, JaroWinkler("Test", "test"))
	approx(t, 1.0, JaroWinkler("ABC", "abc"))
}

func TestJaroWinklerSimilarStrings(t *testing.T) {
	approx(t, 0.9666666666666667, JaroWinkler("color", "colour"))
	approx(t, 0.98, JaroWinkler("first_name", "firstname"))
	approx(t, 0.9833333333333333, JaroWinkler("phone_number", "phonenumber"))
}

func TestJaroWinklerModerateAndLow(t *testing.T) {
	approx(t, 0.9454545454545455, JaroWinkler("customer", "customer_id"))
	approx(t, 0.9142857142857143, JaroWinkler("address", "addr"))
	approx(t, 0.4761904761904761, JaroWinkler("different", "strings"))
}

func TestJaroWinklerEdgeCases(t *testing.T) {
	approx(t, 1.0, JaroWinkler("a", "a"))
	approx(t, 0.0, JaroWinkler("a", "b"))
	approx(t, 0.0, JaroWinkler("", "abc"))
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}

	return m
}

func TestSuggestExactMatch(t *testing.T) {
	got, ok := Suggest("name", set("name", "age", "address"))
	assert.True(t, ok)
	assert.Equal(t, "name", got)
}

func TestSuggestAboveThreshold(t *testing.T) {
	got, ok := Suggest("first_name", set("firstname", "last_name", "address"))
	assert.True(t, ok)
	assert.Equal(t, "firstname", got)
}

func TestSuggestBelowThreshold(t *testing.T) {
	_, ok := Suggest("age", set("income", "revenue", "amount"))
	assert.False(t, ok)
}

func TestSuggestEmptyCandidates(t *testing.T) {
	_, ok := Suggest("name", set())
	assert.False(t, ok)
}

func TestSuggestCaseInsensitive(t *testing.T) {
	got, ok := Suggest("NAME", set("name", "age", "address"))
	assert.True(t, ok)
	assert.Equal(t, "name", got)
}

func TestSuggestPicksHighestScoring(t *testing.T) {
	got, ok := Suggest("postal_code", set("postcode", "post_code", "zip"))
	assert.True(t, ok)
	assert.Equal(t, "post_code", got)
}
