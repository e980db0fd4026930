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
package checker

import (
	"testing"

	"github.com/lucianosrp/frame-check/pkg/lang"
	"github.com/lucianosrp/frame-check/pkg/util/assert"
)

func columns(t *testing.T, schemas map[string][]string, name string) map[string]bool {
	t.Helper()

	cols, ok := schemas[name]
	assert.True(t, ok)

	set := make(map[string]bool, len(cols))
	for _, c := range cols {
		set[c] = true
	}

	return set
}

func TestSimpleMiss(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1], "B": [2]})` + "\n" +
		`x = df["C"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Diagnostics))
	assert.Equal(t, "", result.Diagnostics[0].NameSuggestion)
}

func TestNearMissSuggestion(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"Name": [1], "Age": [2]})` + "\n" +
		`df["Nmae"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Diagnostics))
	assert.Equal(t, "Name", result.Diagnostics[0].NameSuggestion)
}

func TestWriteCreatingColumn(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1], "B": [2]})` + "\n" +
		`df["C"] = df["A"] + df["B"]` + "\n" +
		`df["C"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Diagnostics))

	cols := columns(t, result.Schemas, "df")
	assert.Equal(t, 3, len(cols))
	assert.True(t, cols["A"])
	assert.True(t, cols["B"])
	assert.True(t, cols["C"])
}

func TestBadDependency(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1]})` + "\n" +
		`df["C"] = df["X"] + df["Y"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Diagnostics))

	cols := columns(t, result.Schemas, "df")
	_, hasC := cols["C"]
	assert.False(t, hasC)
}

func TestBadDependencyDoesNotAlsoFlagEachReadColumn(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1]})` + "\n" +
		`df["C"] = df["X"] + df["Y"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Diagnostics))
}

func TestConstructorViaVariable(t *testing.T) {
	src := "import pandas as pd\n" +
		`data = {"a": [1], "b": [2]}` + "\n" +
		`df = pd.DataFrame(data)` + "\n" +
		`df["c"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Diagnostics))

	cols := columns(t, result.Schemas, "df")
	assert.Equal(t, 2, len(cols))
	assert.True(t, cols["a"])
	assert.True(t, cols["b"])
}

func TestReadCSVWithUsecols(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.read_csv("f.csv", usecols=["a", "b", "c"])` + "\n" +
		`df["d"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Diagnostics))

	cols := columns(t, result.Schemas, "df")
	assert.Equal(t, 3, len(cols))
}

func TestEmptySource(t *testing.T) {
	result, err := Check("")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Diagnostics))
}

func TestSourceWithoutPandas(t *testing.T) {
	src := `x = {"A": [1]}` + "\n" + `print(x)` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Diagnostics))
	assert.Equal(t, 0, len(result.Schemas))
}

func TestDuplicateKeysDedupe(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1], "A": [2]})` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)

	cols := columns(t, result.Schemas, "df")
	assert.Equal(t, 1, len(cols))
}

func TestReadCSVIntegerUsecolsNoFrame(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.read_csv("f.csv", usecols=3)` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	_, ok := result.Schemas["df"]
	assert.False(t, ok)
}

func TestMultiSubscriptWriteAddsBothColumns(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1]})` + "\n" +
		`df[["b", "c"]] = df["A"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Diagnostics))

	cols := columns(t, result.Schemas, "df")
	assert.True(t, cols["b"])
	assert.True(t, cols["c"])
}

func TestNestedBinOpWithUnknownLeafCollapsesDeps(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1]})` + "\n" +
		`df["C"] = df["A"] + 1` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Diagnostics))

	cols := columns(t, result.Schemas, "df")
	assert.True(t, cols["C"])
}

func TestUndeclaredFrameOnWrite(t *testing.T) {
	src := `unknown_df["C"] = 1` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Diagnostics))
}

func TestAssignMethodCreatesReturnedFrame(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"A": [1]})` + "\n" +
		`df2 = df.assign(B=[2])` + "\n" +
		`df2["B"]` + "\n"

	result, err := Check(src)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Diagnostics))

	cols := columns(t, result.Schemas, "df2")
	assert.True(t, cols["A"])
	assert.True(t, cols["B"])
}

func TestNewWithModulesTracksAdditionalAlias(t *testing.T) {
	src := "import modin.pandas as pd\n" +
		`df = pd.DataFrame({"A": [1]})` + "\n" +
		`df["B"]` + "\n"

	mod, err := lang.Parse(src)
	assert.NoError(t, err)

	result := NewWithModules([]string{"pandas", "modin.pandas"}).CheckModule(mod)
	assert.Equal(t, 1, len(result.Diagnostics))
}

func TestNewWithModulesIgnoresUnlistedModule(t *testing.T) {
	src := "import modin as pd\n" +
		`df = pd.DataFrame({"A": [1]})` + "\n" +
		`df["B"]` + "\n"

	mod, err := lang.Parse(src)
	assert.NoError(t, err)

	result := NewWithModules([]string{"pandas"}).CheckModule(mod)
	assert.Equal(t, 0, len(result.Diagnostics))
	_, ok := result.Schemas["df"]
	assert.False(t, ok)
}

func TestDeterministicRepeatedChecks(t *testing.T) {
	src := "import pandas as pd\n" +
		`df = pd.DataFrame({"Name": [1]})` + "\n" +
		`df["Nmae"]` + "\n"

	first, err := Check(src)
	assert.NoError(t, err)

	second, err := Check(src)
	assert.NoError(t, err)

	assert.Equal(t, len(first.Diagnostics), len(second.Diagnostics))
	assert.Equal(t, first.Diagnostics[0].Message, second.Diagnostics[0].Message)
}
