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

// Package checker walks a parsed module once, in source order, tracking
// the schema of every pandas-aliased DataFrame variable it can resolve and
// reporting a diagnostic everywhere a column reference can't be resolved
// against that schema. It never executes anything; every judgment is a
// static pattern match against the closed set of shapes pkg/value, pkg/refs
// and pkg/registry define. Anything outside that set downgrades to Unknown
// rather than raising.
package checker

import (
	"strings"

	"github.com/lucianosrp/frame-check/pkg/diagnostic"
	"github.com/lucianosrp/frame-check/pkg/lang"
	"github.com/lucianosrp/frame-check/pkg/refs"
	"github.com/lucianosrp/frame-check/pkg/registry"
	"github.com/lucianosrp/frame-check/pkg/tracker"
	"github.com/lucianosrp/frame-check/pkg/value"
)

// CheckerResult is what a check run produces: the diagnostics found, in
// source order, and the final resolved schema of every tracked frame.
type CheckerResult struct {
	Diagnostics []diagnostic.Diagnostic
	Schemas     map[string][]string
}

// Checker holds all per-file state for one traversal. It is not safe for
// concurrent use and not meant to be reused across files; construct one
// with New for each check.
type Checker struct {
	trackedModules    map[string]struct{}
	pandasAliases     map[string]struct{}
	varBindings       map[string]value.Value
	frames            map[string]*tracker.FrameTracker
	diagnostics       []diagnostic.Diagnostic
	handledSubscripts map[*lang.Subscript]struct{}
}

// New returns an empty Checker that recognizes imports of "pandas" as
// frame-constructing. Use NewWithModules to widen that set.
func New() *Checker {
	return NewWithModules([]string{"pandas"})
}

// NewWithModules returns an empty Checker that treats an import of "pandas",
// or of any of the given module names, as binding a frame-constructing
// alias, per pkg/config's "modules" setting.
func NewWithModules(modules []string) *Checker {
	tracked := make(map[string]struct{}, len(modules)+1)
	tracked["pandas"] = struct{}{}

	for _, m := range modules {
		tracked[m] = struct{}{}
	}

	return &Checker{
		trackedModules:    tracked,
		pandasAliases:     map[string]struct{}{},
		varBindings:       map[string]value.Value{},
		frames:            map[string]*tracker.FrameTracker{},
		handledSubscripts: map[*lang.Subscript]struct{}{},
	}
}

// Check parses source and checks it with the default module set, in one
// step.
func Check(src string) (CheckerResult, error) {
	mod, err := lang.Parse(src)
	if err != nil {
		return CheckerResult{}, err
	}

	return CheckAST(mod), nil
}

// CheckAST checks an already-parsed module with the default module set.
func CheckAST(mod *lang.Module) CheckerResult {
	c := New()

	return c.CheckModule(mod)
}

// CheckModule runs c over an already-parsed module and returns its result.
// Exported so callers that configured c via NewWithModules (pkg/config's
// "modules" setting) can drive the traversal themselves.
func (c *Checker) CheckModule(mod *lang.Module) CheckerResult {
	c.run(mod)

	return c.result()
}

func (c *Checker) result() CheckerResult {
	schemas := make(map[string][]string, len(c.frames))
	for name, t := range c.frames {
		schemas[name] = t.Columns()
	}

	return CheckerResult{Diagnostics: c.diagnostics, Schemas: schemas}
}

func (c *Checker) run(mod *lang.Module) {
	for _, stmt := range mod.Body {
		switch s := stmt.(type) {
		case *lang.Import:
			c.visitImport(s)
		case *lang.Assign:
			c.visitAssign(s)
		case *lang.ExprStmt:
			c.scanForReads(s.X)
		}
	}
}

func (c *Checker) visitImport(imp *lang.Import) {
	if _, ok := c.trackedModules[imp.Module]; ok {
		c.pandasAliases[imp.Alias] = struct{}{}
	}
}

func (c *Checker) isPandasAlias(name string) bool {
	_, ok := c.pandasAliases[name]
	return ok
}

// visitAssign mirrors the original checker's visit_Assign: first try a
// constructor call (df = pd.read_csv(...)), then a frame method call
// (df = df.assign(...)), then fall back to plain variable binding and
// column-write handling. Exactly one of these owns the statement.
func (c *Checker) visitAssign(a *lang.Assign) {
	handled := false

	if name, ok := a.Target.(*lang.Name); ok {
		switch {
		case c.tryCreateFrame(name.Id, a.Value):
			handled = true
		case c.tryFrameMethod(name.Id, a.Value):
			handled = true
		default:
			c.varBindings[name.Id] = c.eval(a.Value)
		}
	}

	if !handled {
		c.visitColumnWrite(a)
	}

	lang.WalkExpr(a.Target, c.scanNode)
	lang.WalkExpr(a.Value, c.scanNode)
}

// tryCreateFrame matches `name = <alias>.<constructor>(...)` and, if the
// constructor resolves a schema, registers a fresh strict tracker for name.
func (c *Checker) tryCreateFrame(name string, rhs lang.Expr) bool {
	call, ok := rhs.(*lang.Call)
	if !ok {
		return false
	}

	attr, ok := call.Func.(*lang.Attribute)
	if !ok {
		return false
	}

	module, ok := attr.Value.(*lang.Name)
	if !ok || !c.isPandasAlias(module.Id) {
		return false
	}

	ctor, ok := registry.Constructors[attr.Attr]
	if !ok {
		return false
	}

	args, keywords := c.evalArgs(call)

	cols, ok := ctor(args, keywords)
	if !ok {
		return false
	}

	columnNames := make([]string, 0, len(cols))
	for col := range cols {
		columnNames = append(columnNames, col)
	}

	c.frames[name] = tracker.NewStrict(name, columnNames)

	return true
}

// tryFrameMethod matches `name = <frame>.<method>(...)` where frame is
// already tracked, and applies the method's registered handler.
func (c *Checker) tryFrameMethod(resultName string, rhs lang.Expr) bool {
	call, ok := rhs.(*lang.Call)
	if !ok {
		return false
	}

	attr, ok := call.Func.(*lang.Attribute)
	if !ok {
		return false
	}

	srcName, ok := attr.Value.(*lang.Name)
	if !ok {
		return false
	}

	srcTracker, ok := c.frames[srcName.Id]
	if !ok {
		return false
	}

	method, ok := registry.Methods[attr.Attr]
	if !ok {
		return false
	}

	receiver := make(registry.Columns, len(srcTracker.Columns()))
	for _, col := range srcTracker.Columns() {
		receiver[col] = struct{}{}
	}

	args, keywords := c.evalArgs(call)

	updated, returned, returnsFrame := method(receiver, args, keywords)

	result := updated
	if returnsFrame {
		result = returned
	}

	columnNames := make([]string, 0, len(result))
	for col := range result {
		columnNames = append(columnNames, col)
	}

	c.frames[resultName] = tracker.NewStrict(resultName, columnNames)

	return true
}

// visitColumnWrite handles `frame['col'] = expr` and
// `frame[['a', 'b']] = expr`, validating the right-hand side's column
// dependencies against the target frame's tracker.
func (c *Checker) visitColumnWrite(a *lang.Assign) {
	sub, ok := a.Target.(*lang.Subscript)
	if !ok {
		return
	}

	targetRef, ok := refs.ExtractColumnRef(sub)
	if !ok {
		return
	}

	t, ok := c.frames[targetRef.DfName]
	if !ok {
		c.report(diagnostic.UndeclaredDataFrame(targetRef.NameRegion, targetRef.DfName))
		return
	}

	c.handledSubscripts[sub] = struct{}{}

	readRefs, ok := refs.Extract(a.Value)
	if !ok {
		for _, col := range targetRef.ColumnNames {
			t.TryAdd(col, nil)
		}

		return
	}

	for _, ref := range readRefs {
		c.handledSubscripts[ref.Node] = struct{}{}
	}

	for _, ref := range readRefs {
		if _, exists := c.frames[ref.DfName]; !exists {
			c.report(diagnostic.UndeclaredDataFrame(ref.NameRegion, ref.DfName))
			return
		}
	}

	readCols := make([]string, len(readRefs))
	for i, ref := range readRefs {
		readCols[i] = ref.ColumnNames[0]
	}

	missing, ok := t.TryAdd(targetRef.ColumnNames[0], readCols)
	if !ok {
		c.report(diagnostic.InvalidAssignment(
			sub.Region(), targetRef.DfName, strings.Join(targetRef.ColumnNames, ", "), missing, t.Columns(),
		))
	} else {
		for _, col := range targetRef.ColumnNames[1:] {
			t.TryAdd(col, readCols)
		}
	}
}

// scanForReads walks an expression subtree looking for column reads,
// skipping any subscript already handled as part of a write.
func (c *Checker) scanForReads(e lang.Expr) {
	lang.WalkExpr(e, c.scanNode)
}

func (c *Checker) scanNode(n lang.Node) {
	sub, ok := n.(*lang.Subscript)
	if !ok {
		return
	}

	if _, handled := c.handledSubscripts[sub]; handled {
		return
	}

	c.visitSubscriptRead(sub)
}

// visitSubscriptRead validates a single-column read. Multi-column reads and
// subscripts on untracked names are skipped silently: the analyzer can't
// tell a genuinely undeclared frame from an ordinary dict/list subscript.
func (c *Checker) visitSubscriptRead(sub *lang.Subscript) {
	ref, ok := refs.ExtractColumnRef(sub)
	if !ok || len(ref.ColumnNames) != 1 {
		return
	}

	t, ok := c.frames[ref.DfName]
	if !ok {
		return
	}

	col := ref.ColumnNames[0]
	if !t.TryGet(col) {
		c.report(diagnostic.MissingColumnOnRead(sub.Region(), ref.DfName, col, t.Columns()))
	}
}

func (c *Checker) report(d diagnostic.Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// eval resolves an expression to a Value, substituting any bound variable
// name with the Value stored for it. Bindings store already-evaluated
// Values, so `b = a` copies a's Value and a chain of plain name-to-name
// assignments resolves; a stored Value is never re-evaluated when a name it
// was copied from is later reassigned.
func (c *Checker) eval(e lang.Expr) value.Value {
	switch n := e.(type) {
	case *lang.Name:
		if v, ok := c.varBindings[n.Id]; ok {
			return v
		}

		return value.UnknownValue

	case *lang.Str:
		return value.FromExpr(n)

	case *lang.ListLit:
		elts := make([]value.Value, len(n.Elts))
		for i, elt := range n.Elts {
			elts[i] = c.eval(elt)
		}

		return value.List(elts)

	case *lang.DictLit:
		m := make(map[string]value.Value, len(n.Entries))

		for _, entry := range n.Entries {
			key, ok := entry.Key.(*lang.Str)
			if !ok {
				return value.UnknownValue
			}

			m[key.Value] = c.eval(entry.Value)
		}

		return value.Dict(m)

	default:
		return value.UnknownValue
	}
}

func (c *Checker) evalArgs(call *lang.Call) ([]value.Value, map[string]value.Value) {
	args := make([]value.Value, len(call.Args))
	for i, a := range call.Args {
		args[i] = c.eval(a)
	}

	keywords := make(map[string]value.Value, len(call.Keywords))
	for _, kw := range call.Keywords {
		keywords[kw.Name] = c.eval(kw.Value)
	}

	return args, keywords
}
