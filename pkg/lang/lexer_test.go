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
package lang

import (
	"testing"

	"github.com/lucianosrp/frame-check/pkg/util/assert"
)

func kinds(tokens []Token) []Kind {
	ks := make([]Kind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}

	return ks
}

func TestTokenizeSimpleAssign(t *testing.T) {
	tokens, err := tokenize(`df = pd.DataFrame({"A": [1]})` + "\n")
	assert.NoError(t, err)

	got := kinds(tokens)
	want := []Kind{
		IDENT, ASSIGN, IDENT, DOT, IDENT, LPAREN, LBRACE, STRING, COLON,
		LBRACKET, NUMBER, RBRACKET, RBRACE, RPAREN, NEWLINE, EOF,
	}
	assert.Equal(t, len(want), len(got))

	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestTokenizeSuppressesNewlineInsideBrackets(t *testing.T) {
	tokens, err := tokenize("df = pd.DataFrame({\n  \"A\": [1],\n})\n")
	assert.NoError(t, err)

	newlineCount := 0

	for _, tok := range tokens {
		if tok.Kind == NEWLINE {
			newlineCount++
		}
	}

	assert.Equal(t, 1, newlineCount)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := tokenize(`x = "abc` + "\n")
	assert.True(t, err != nil)
}

func TestTokenizeComment(t *testing.T) {
	tokens, err := tokenize("x = 1 # a comment\n")
	assert.NoError(t, err)

	got := kinds(tokens)
	want := []Kind{IDENT, ASSIGN, NUMBER, NEWLINE, EOF}
	assert.Equal(t, len(want), len(got))
}
