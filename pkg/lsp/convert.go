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
package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/lucianosrp/frame-check/pkg/diagnostic"
	"github.com/lucianosrp/frame-check/pkg/lang"
	"github.com/lucianosrp/frame-check/pkg/source"
)

func toProtocolRange(r source.CodeRegion) protocol.Range {
	startLine, startChar := r.Start.AsLSP()
	endLine, endChar := r.End.AsLSP()

	return protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startChar},
		End:   protocol.Position{Line: endLine, Character: endChar},
	}
}

func toProtocolSeverity(s diagnostic.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diagnostic.Error:
		return protocol.DiagnosticSeverityError
	case diagnostic.Warning:
		return protocol.DiagnosticSeverityWarning
	case diagnostic.Hint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

func toProtocolDiagnostic(d diagnostic.Diagnostic) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    toProtocolRange(d.Region),
		Severity: toProtocolSeverity(d.Severity),
		Source:   "frame-check",
		Message:  d.Message,
	}
}

func syntaxErrorDiagnostic(err error) protocol.Diagnostic {
	se, ok := err.(*lang.SyntaxError)
	if !ok {
		return protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Source:   "frame-check",
			Message:  err.Error(),
		}
	}

	return protocol.Diagnostic{
		Range:    toProtocolRange(se.Region),
		Severity: protocol.DiagnosticSeverityError,
		Source:   "frame-check",
		Message:  se.Msg,
	}
}
