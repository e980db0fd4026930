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
	"bytes"
	"strings"
	"testing"

	"github.com/lucianosrp/frame-check/pkg/diagnostic"
	"github.com/lucianosrp/frame-check/pkg/source"
	"github.com/lucianosrp/frame-check/pkg/util/assert"
)

func region(row, col int) source.CodeRegion {
	start := source.CodePosition{Row: row, Col: col}
	return source.NewRegion(start, source.CodePosition{Row: row, Col: col + 1})
}

func TestPrintTextIncludesPathAndPosition(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, "never")
	d := diagnostic.MissingColumnOnRead(region(3, 5), "df", "X", []string{"A", "B"})
	p.Print(&buf, "a.py", "", []diagnostic.Diagnostic{d})

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "a.py:3:5: error:"))
	assert.True(t, strings.Contains(out, "Available columns"))
}

func TestPrintTextQuotesOffendingSourceLine(t *testing.T) {
	var buf bytes.Buffer

	src := "import pandas as pd\ndf = pd.DataFrame({\"A\": [1]})\nx = df[\"X\"]\n"
	start := source.CodePosition{Row: 3, Col: 6}
	d := diagnostic.MissingColumnOnRead(
		source.NewRegion(start, source.CodePosition{Row: 3, Col: 11}),
		"df", "X", []string{"A"},
	)

	p := NewPrinter(&buf, "never")
	p.Print(&buf, "a.py", src, []diagnostic.Diagnostic{d})

	out := buf.String()
	assert.True(t, strings.Contains(out, `x = df["X"]`))
	assert.True(t, strings.Contains(out, "      "+strings.Repeat("^", 5)))
}

func TestPrintTextWithoutSourceOmitsSnippet(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, "never")
	d := diagnostic.UndeclaredDataFrame(region(1, 0), "df")
	p.Print(&buf, "a.py", "", []diagnostic.Diagnostic{d})

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestPrintNeverDisablesColor(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, "never")
	assert.False(t, p.colorEnabled)

	d := diagnostic.UndeclaredDataFrame(region(1, 0), "df")
	p.Print(&buf, "a.py", "", []diagnostic.Diagnostic{d})

	assert.True(t, !strings.Contains(buf.String(), "\x1b["))
}

func TestPrintAlwaysEnablesColor(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, "always")
	assert.True(t, p.colorEnabled)
}

func TestPrintJSONEmptyIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer

	assert.NoError(t, PrintJSON(&buf, map[string][]diagnostic.Diagnostic{}, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintJSONIncludesFields(t *testing.T) {
	var buf bytes.Buffer

	d := diagnostic.UndeclaredDataFrame(region(2, 1), "df")
	byFile := map[string][]diagnostic.Diagnostic{"a.py": {d}}

	assert.NoError(t, PrintJSON(&buf, byFile, []string{"a.py"}))
	assert.True(t, strings.Contains(buf.String(), `"path": "a.py"`))
	assert.True(t, strings.Contains(buf.String(), `"severity": "error"`))
}
