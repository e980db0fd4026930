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

// Package report renders a file's diagnostics the way a compiler front-end
// does: "path:row:col: severity: message", followed by any indented hint
// lines. Colour is a presentation decision entirely separate from the
// diagnostics themselves, mirroring the teacher's own printer, which keeps
// "what to print" and "how to colour it" as two concerns.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lucianosrp/frame-check/pkg/diagnostic"
	"github.com/lucianosrp/frame-check/pkg/source"
)

// Printer renders diagnostics for one or more files to an io.Writer.
type Printer struct {
	colorEnabled bool
	severity     map[diagnostic.Severity]*color.Color
}

// NewPrinter constructs a Printer whose colour decision follows mode:
//   - "always" forces colour on
//   - "never" forces colour off
//   - "auto" (or anything else) colours only when out is a terminal
func NewPrinter(out io.Writer, mode string) *Printer {
	enabled := false

	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	default:
		if f, ok := out.(*os.File); ok {
			enabled = term.IsTerminal(int(f.Fd()))
		}
	}

	severity := map[diagnostic.Severity]*color.Color{
		diagnostic.Error:   color.New(color.FgRed, color.Bold),
		diagnostic.Warning: color.New(color.FgYellow, color.Bold),
		diagnostic.Hint:    color.New(color.FgCyan),
	}

	if mode == "always" {
		for _, c := range severity {
			c.EnableColor()
		}
	}

	return &Printer{
		colorEnabled: enabled,
		severity:     severity,
	}
}

// Print writes every diagnostic found in path, one per line plus any hint
// lines, in the order given (source order, per the checker's guarantee). src
// is that file's full text, used to quote the offending source line beneath
// each diagnostic the way a compiler front-end does; pass "" to suppress it.
func (p *Printer) Print(out io.Writer, path, src string, diags []diagnostic.Diagnostic) {
	file := source.NewFile(path, src)

	for _, d := range diags {
		p.printOne(out, file, d)
	}
}

func (p *Printer) printOne(out io.Writer, file *source.File, d diagnostic.Diagnostic) {
	severityText := d.Severity.String()

	if p.colorEnabled {
		if c, ok := p.severity[d.Severity]; ok {
			severityText = c.Sprint(severityText)
		}
	}

	head, hints := splitMessage(d.Message)

	fmt.Fprintf(out, "%s:%s: %s: %s\n", file.Path, d.Region.Start, severityText, head)
	p.printSourceLine(out, file, d.Region)

	for _, hint := range hints {
		fmt.Fprintf(out, "  %s\n", hint)
	}
}

// printSourceLine quotes the line the diagnostic starts on, with a caret
// underline spanning the flagged excerpt, and does nothing if the region
// falls outside the source text (e.g. when src was never supplied).
func (p *Printer) printSourceLine(out io.Writer, file *source.File, region source.CodeRegion) {
	line := file.Line(region.Start.Row)
	if line == "" {
		return
	}

	fmt.Fprintf(out, "  %s\n", line)

	width := len(file.Snippet(region))
	if width == 0 {
		width = 1
	}

	fmt.Fprintf(out, "  %s%s\n", strings.Repeat(" ", region.Start.Col), strings.Repeat("^", width))
}

// splitMessage separates a Diagnostic's first line (the headline) from any
// following indented hint lines; diagnostic.Diagnostic.Message packs both
// into one string since only pkg/report ever needs them separately.
func splitMessage(msg string) (head string, hints []string) {
	lines := strings.Split(msg, "\n")
	if len(lines) == 0 {
		return "", nil
	}

	return lines[0], lines[1:]
}
