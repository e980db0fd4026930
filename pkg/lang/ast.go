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

// Node is implemented by every AST shape; it exposes the source region the
// node spans so diagnostics can point precisely at it.
type Node interface {
	Region() source.CodeRegion
}

// Stmt is a statement-level node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression-level node.
type Expr interface {
	Node
	exprNode()
}

type base struct {
	region source.CodeRegion
}

// Region implements Node.
func (b base) Region() source.CodeRegion { return b.region }

// Module is the root node produced by parsing one file.
type Module struct {
	base
	Body []Stmt
}

// Import represents `import pandas` or `import pandas as pd`; Module may be
// a dotted name such as "modin.pandas". From-imports are not represented by
// Import: the parser turns them into an Opaque statement, so they bind no
// alias.
type Import struct {
	base
	Module string
	Alias  string // equals Module when there is no "as" clause
}

// Assign is `target = value`, where target is either a Name (simple
// variable binding) or a Subscript (column write).
type Assign struct {
	base
	Target Expr
	Value  Expr
}

// ExprStmt wraps a bare expression used as a statement (e.g. `df['x']` or
// `print(df['x'])`).
type ExprStmt struct {
	base
	X Expr
}

// Opaque is a statement the parser recognized as belonging to a control-flow
// or definition shape the analyzer does not model (if/for/def/...). It
// carries no semantic payload; its presence simply lets Module.Body keep the
// statement's source order, which callers may use for diagnostics about
// coverage but which the checker itself ignores.
type Opaque struct {
	base
}

func (*Import) stmtNode()   {}
func (*Assign) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
func (*Opaque) stmtNode()   {}

// Name is a bare identifier reference.
type Name struct {
	base
	Id string
}

// Str is a string constant.
type Str struct {
	base
	Value string
}

// Num is a numeric constant. The analyzer never needs its value — per the
// value model (pkg/value) any non-string/list/dict/frame literal collapses
// to Unknown — but keeping the node lets BinOp/Call arguments round-trip it
// without losing position information.
type Num struct {
	base
	Lit string
}

// ListLit is `[e1, e2, ...]`.
type ListLit struct {
	base
	Elts []Expr
}

// DictEntry is one `key: value` pair inside a DictLit.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLit is `{k1: v1, k2: v2, ...}`.
type DictLit struct {
	base
	Entries []DictEntry
}

// Subscript is `value[index]`.
type Subscript struct {
	base
	Value Expr
	Index Expr
}

// Attribute is `value.attr`.
type Attribute struct {
	base
	Value Expr
	Attr  string
}

// Keyword is a `name=value` call argument.
type Keyword struct {
	Name  string
	Value Expr
}

// Call is `func(args..., kw=val...)`.
type Call struct {
	base
	Func     Expr
	Args     []Expr
	Keywords []Keyword
}

// BinOp is `left OP right` for the small set of arithmetic operators the
// extractor in pkg/refs recognizes.
type BinOp struct {
	base
	Left  Expr
	Op    string
	Right Expr
}

func (*Name) exprNode()      {}
func (*Str) exprNode()       {}
func (*Num) exprNode()       {}
func (*ListLit) exprNode()   {}
func (*DictLit) exprNode()   {}
func (*Subscript) exprNode() {}
func (*Attribute) exprNode() {}
func (*Call) exprNode()      {}
func (*BinOp) exprNode()     {}

// Walk calls visit for every statement and expression node reachable from
// module, in source order, including module itself. It does not recurse
// into Opaque statements since they carry no children.
func Walk(m *Module, visit func(Node)) {
	visit(m)

	for _, s := range m.Body {
		walkStmt(s, visit)
	}
}

// WalkExpr calls visit for e and every expression reachable from it, in
// source order. Useful for re-scanning a single statement's subtree (e.g.
// an assignment's target and value) without re-walking the whole module.
func WalkExpr(e Expr, visit func(Node)) {
	walkExpr(e, visit)
}

func walkStmt(s Stmt, visit func(Node)) {
	visit(s)

	switch n := s.(type) {
	case *Import:
		// leaf
	case *Assign:
		walkExpr(n.Target, visit)
		walkExpr(n.Value, visit)
	case *ExprStmt:
		walkExpr(n.X, visit)
	case *Opaque:
		// leaf
	}
}

func walkExpr(e Expr, visit func(Node)) {
	if e == nil {
		return
	}

	visit(e)

	switch n := e.(type) {
	case *ListLit:
		for _, elt := range n.Elts {
			walkExpr(elt, visit)
		}
	case *DictLit:
		for _, entry := range n.Entries {
			walkExpr(entry.Key, visit)
			walkExpr(entry.Value, visit)
		}
	case *Subscript:
		walkExpr(n.Value, visit)
		walkExpr(n.Index, visit)
	case *Attribute:
		walkExpr(n.Value, visit)
	case *Call:
		walkExpr(n.Func, visit)
		for _, a := range n.Args {
			walkExpr(a, visit)
		}
		for _, kw := range n.Keywords {
			walkExpr(kw.Value, visit)
		}
	case *BinOp:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)
	}
}
