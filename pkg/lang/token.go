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

import "github.com/lucianosrp/frame-check/pkg/source"

// Kind identifies the lexical class of a Token.
type Kind uint8

// Token kinds recognized by the lexer. This is a deliberately small set: the
// analyzer only needs enough of the host language's grammar to recognize
// imports, assignments and the handful of expression shapes extractors and
// the registries consume (see pkg/value, pkg/refs).
const (
	EOF Kind = iota
	NEWLINE
	IDENT
	STRING
	NUMBER
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COMMA
	COLON
	DOT
	ASSIGN
	PLUS
	MINUS
	STAR
	SLASH
)

// Token is a single lexical unit together with the source region it
// occupies and, for STRING/IDENT/NUMBER, its literal text.
type Token struct {
	Kind   Kind
	Lit    string
	Region source.CodeRegion
}

// keywords that begin statement shapes the analyzer does not model
// directly (control flow, function/class definitions, etc). Lines
// beginning with one of these are parsed as opaque statements: the parser
// skips them without error, per the "downgrade silently" propagation
// policy — they are neither assignments nor recognized expressions.
var opaqueLeaders = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"def": true, "class": true, "return": true, "try": true, "except": true,
	"finally": true, "with": true, "pass": true, "break": true,
	"continue": true, "raise": true, "del": true, "global": true,
	"nonlocal": true, "yield": true, "async": true,
}
