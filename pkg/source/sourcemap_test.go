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
package source

import (
	"testing"

	"github.com/lucianosrp/frame-check/pkg/util/assert"
)

func TestFileLineReturnsRequestedRow(t *testing.T) {
	f := NewFile("a.py", "df = pd.DataFrame()\ndf['x']\n")
	assert.Equal(t, "df['x']", f.Line(2))
}

func TestFileLineOutOfRangeReturnsEmpty(t *testing.T) {
	f := NewFile("a.py", "df = pd.DataFrame()\n")
	assert.Equal(t, "", f.Line(0))
	assert.Equal(t, "", f.Line(99))
}

func TestFileLineCount(t *testing.T) {
	f := NewFile("a.py", "a\nb\nc")
	assert.Equal(t, 3, f.LineCount())
}

func TestFileSnippetSingleRow(t *testing.T) {
	f := NewFile("a.py", "df['missing']\n")
	region := NewRegion(CodePosition{Row: 1, Col: 3}, CodePosition{Row: 1, Col: 12})
	assert.Equal(t, "'missing'", f.Snippet(region))
}

func TestFileSnippetMultiRowUsesFirstLineOnly(t *testing.T) {
	f := NewFile("a.py", "df = pd.DataFrame(\n    {}\n)\n")
	region := NewRegion(CodePosition{Row: 1, Col: 5}, CodePosition{Row: 3, Col: 1})
	assert.Equal(t, "pd.DataFrame(", f.Snippet(region))
}

func TestFileSnippetOutOfRangeRowReturnsEmpty(t *testing.T) {
	f := NewFile("a.py", "df = pd.DataFrame()\n")
	region := NewRegion(CodePosition{Row: 5, Col: 0}, CodePosition{Row: 5, Col: 2})
	assert.Equal(t, "", f.Snippet(region))
}
