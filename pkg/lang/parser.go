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
	"github.com/lucianosrp/frame-check/pkg/source"
)

// Parse lexes and parses the given source text into a Module.
func Parse(text string) (*Module, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}

	return p.parseModule()
}

// parser is a small hand-rolled recursive-descent parser over the flat
// token stream produced by the lexer, in the same index-and-backup style as
// the teacher's sexp.Parser.
type parser struct {
	tokens []Token
	index  int
}

func (p *parser) cur() Token {
	return p.tokens[p.index]
}

func (p *parser) at(k Kind) bool {
	return p.cur().Kind == k
}

func (p *parser) advance() Token {
	t := p.tokens[p.index]
	if p.index < len(p.tokens)-1 {
		p.index++
	}

	return t
}

func (p *parser) expect(k Kind, msg string) (Token, error) {
	if !p.at(k) {
		return Token{}, p.error(msg)
	}

	return p.advance(), nil
}

func (p *parser) error(msg string) error {
	return &SyntaxError{p.cur().Region, msg}
}

func (p *parser) parseModule() (*Module, error) {
	start := p.cur().Region.Start

	var body []Stmt

	for !p.at(EOF) {
		if p.at(NEWLINE) {
			p.advance()
			continue
		}

		stmts, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		body = append(body, stmts...)

		if p.at(NEWLINE) {
			p.advance()
		}
	}

	end := p.cur().Region.End

	return &Module{base{source.NewRegion(start, end)}, body}, nil
}

// parseStatement parses one logical line, returning every Stmt it produces:
// normally exactly one, but a single-line compound statement such as
// "if x: df['y'] = 1" yields both the opaque header and the inline body as
// separate statements (see parseOpaque). Lines whose first token is not
// recognized as import/assignment/expression are consumed as an Opaque
// statement: control flow, definitions and other shapes the analyzer does
// not model are skipped silently rather than raising a parse error, per the
// core's "downgrade, never raise" policy for unrecognized patterns.
func (p *parser) parseStatement() ([]Stmt, error) {
	if p.at(IDENT) {
		switch p.cur().Lit {
		case "import":
			stmt, err := p.parseImport()
			if err != nil {
				return nil, err
			}

			return []Stmt{stmt}, nil
		case "from":
			stmt, err := p.parseFromImport()
			if err != nil {
				return nil, err
			}

			return []Stmt{stmt}, nil
		default:
			if opaqueLeaders[p.cur().Lit] {
				return p.parseOpaque()
			}
		}
	}

	stmt, err := p.parseAssignOrExpr()
	if err != nil {
		return nil, err
	}

	return []Stmt{stmt}, nil
}

// parseOpaque consumes a statement shape the analyzer does not model
// (control flow, definitions, and the like). A single-line compound
// statement's header and inline body share one logical line — as in
// "if x: df['y'] = 1" — so only a top-level ':' (one outside any bracket
// nesting, to avoid stopping early on a dict literal or slice) ends the
// opaque header; anything left on the line after it is parsed as a real
// following statement instead of being swallowed into the header.
func (p *parser) parseOpaque() ([]Stmt, error) {
	start := p.cur().Region.Start

	end := start
	depth := 0

	for !p.at(NEWLINE) && !p.at(EOF) {
		if depth == 0 && p.at(COLON) {
			break
		}

		switch p.cur().Kind {
		case LPAREN, LBRACKET, LBRACE:
			depth++
		case RPAREN, RBRACKET, RBRACE:
			if depth > 0 {
				depth--
			}
		}

		end = p.cur().Region.End
		p.advance()
	}

	opaque := &Opaque{base{source.NewRegion(start, end)}}

	if !p.at(COLON) {
		return []Stmt{opaque}, nil
	}

	p.advance() // ':'

	if p.at(NEWLINE) || p.at(EOF) {
		return []Stmt{opaque}, nil
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return append([]Stmt{opaque}, body...), nil
}

// skipToEndOfLine consumes the rest of the current logical line unconditionally,
// for statement shapes that never carry an inline ':'-delimited body.
func (p *parser) skipToEndOfLine() *Opaque {
	start := p.cur().Region.Start

	end := start
	for !p.at(NEWLINE) && !p.at(EOF) {
		end = p.cur().Region.End
		p.advance()
	}

	return &Opaque{base{source.NewRegion(start, end)}}
}

func (p *parser) parseImport() (Stmt, error) {
	start := p.cur().Region.Start
	p.advance() // 'import'

	name, err := p.expect(IDENT, "expected module name after 'import'")
	if err != nil {
		return nil, err
	}

	module := name.Lit
	end := name.Region.End

	for p.at(DOT) {
		p.advance()

		part, err := p.expect(IDENT, "expected module name after '.'")
		if err != nil {
			return nil, err
		}

		module += "." + part.Lit
		end = part.Region.End
	}

	alias := module

	if p.at(IDENT) && p.cur().Lit == "as" {
		p.advance()

		aliasTok, err := p.expect(IDENT, "expected alias name after 'as'")
		if err != nil {
			return nil, err
		}

		alias = aliasTok.Lit
		end = aliasTok.Region.End
	}

	// Consume any remaining comma-separated modules on the same import
	// statement by treating the rest of the line as opaque; multi-module
	// imports are rare for the tracked library and are not required by
	// the spec.
	if p.at(COMMA) {
		for !p.at(NEWLINE) && !p.at(EOF) {
			p.advance()
		}
	}

	return &Import{base{source.NewRegion(start, end)}, module, alias}, nil
}

// parseFromImport consumes `from X import Y` without resolving any symbol.
// The original checker tracks but never acts on from-imports; this parser
// mirrors that by treating the whole statement as opaque.
func (p *parser) parseFromImport() (Stmt, error) {
	return p.skipToEndOfLine(), nil
}

func (p *parser) parseAssignOrExpr() (Stmt, error) {
	start := p.cur().Region.Start

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.at(ASSIGN) {
		p.advance()

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return &Assign{base{source.NewRegion(start, value.Region().End)}, expr, value}, nil
	}

	return &ExprStmt{base{expr.Region()}, expr}, nil
}

// parseExpr parses the lowest-precedence level: +/- binary operations.
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.at(PLUS) || p.at(MINUS) {
		op := p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &BinOp{base{source.NewRegion(left.Region().Start, right.Region().End)}, left, op.Lit, right}
	}

	return left, nil
}

// parseTerm handles */÷, binding tighter than +/-.
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.at(STAR) || p.at(SLASH) {
		op := p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &BinOp{base{source.NewRegion(left.Region().Start, right.Region().End)}, left, op.Lit, right}
	}

	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.at(MINUS) {
		start := p.cur().Region.Start
		p.advance()

		operand, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		// Unary minus has no dedicated node: the analyzer's value model
		// has no use for the sign, so we fold it into a synthetic Num when
		// possible and otherwise just drop the operand's own node through.
		if n, ok := operand.(*Num); ok {
			return &Num{base{source.NewRegion(start, n.Region().End)}, "-" + n.Lit}, nil
		}

		return operand, nil
	}

	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of
// subscript/attribute/call suffixes.
func (p *parser) parsePostfix() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.at(LBRACKET):
			p.advance()

			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			end, err := p.expect(RBRACKET, "expected ']'")
			if err != nil {
				return nil, err
			}

			expr = &Subscript{base{source.NewRegion(expr.Region().Start, end.Region.End)}, expr, index}
		case p.at(DOT):
			p.advance()

			attr, err := p.expect(IDENT, "expected attribute name after '.'")
			if err != nil {
				return nil, err
			}

			expr = &Attribute{base{source.NewRegion(expr.Region().Start, attr.Region.End)}, expr, attr.Lit}
		case p.at(LPAREN):
			call, err := p.parseCallSuffix(expr)
			if err != nil {
				return nil, err
			}

			expr = call
		default:
			return expr, nil
		}
	}
}

func (p *parser) parseCallSuffix(fn Expr) (Expr, error) {
	p.advance() // '('

	var args []Expr

	var keywords []Keyword

	for !p.at(RPAREN) {
		if p.at(IDENT) && p.peekIsKeywordAssign() {
			name := p.advance()
			p.advance() // '='

			val, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			keywords = append(keywords, Keyword{name.Lit, val})
		} else {
			val, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			args = append(args, val)
		}

		if p.at(COMMA) {
			p.advance()
			continue
		}

		break
	}

	end, err := p.expect(RPAREN, "expected ')' to close call")
	if err != nil {
		return nil, err
	}

	return &Call{base{source.NewRegion(fn.Region().Start, end.Region.End)}, fn, args, keywords}, nil
}

// peekIsKeywordAssign reports whether the parser is sitting at `IDENT '='`
// (a keyword argument), without consuming anything. The lexer has no '=='
// token, so `IDENT '=='` lexes as IDENT ASSIGN ASSIGN and also matches here;
// comparisons are outside the expression grammar and fail to parse either
// way.
func (p *parser) peekIsKeywordAssign() bool {
	if p.index+1 >= len(p.tokens) {
		return false
	}

	return p.tokens[p.index+1].Kind == ASSIGN
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.cur()

	switch tok.Kind {
	case IDENT:
		p.advance()
		return &Name{base{tok.Region}, tok.Lit}, nil
	case STRING:
		p.advance()
		return &Str{base{tok.Region}, tok.Lit}, nil
	case NUMBER:
		p.advance()
		return &Num{base{tok.Region}, tok.Lit}, nil
	case LPAREN:
		p.advance()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(RPAREN, "expected ')'"); err != nil {
			return nil, err
		}

		return inner, nil
	case LBRACKET:
		return p.parseListLit()
	case LBRACE:
		return p.parseDictLit()
	default:
		return nil, p.error("expected an expression")
	}
}

func (p *parser) parseListLit() (Expr, error) {
	start := p.cur().Region.Start
	p.advance() // '['

	var elts []Expr

	for !p.at(RBRACKET) {
		elt, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		elts = append(elts, elt)

		if p.at(COMMA) {
			p.advance()
			continue
		}

		break
	}

	end, err := p.expect(RBRACKET, "expected ']' to close list")
	if err != nil {
		return nil, err
	}

	return &ListLit{base{source.NewRegion(start, end.Region.End)}, elts}, nil
}

func (p *parser) parseDictLit() (Expr, error) {
	start := p.cur().Region.Start
	p.advance() // '{'

	var entries []DictEntry

	for !p.at(RBRACE) {
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(COLON, "expected ':' in dict literal"); err != nil {
			return nil, err
		}

		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		entries = append(entries, DictEntry{key, val})

		if p.at(COMMA) {
			p.advance()
			continue
		}

		break
	}

	end, err := p.expect(RBRACE, "expected '}' to close dict")
	if err != nil {
		return nil, err
	}

	return &DictLit{base{source.NewRegion(start, end.Region.End)}, entries}, nil
}
