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

// Package lsp is a minimal textDocument/didOpen + didChange +
// publishDiagnostics language server. It holds one open document's text per
// URI, re-checks the whole document on every change, and pushes the
// resulting diagnostics back to the client. No other LSP feature
// (completion, hover, code actions, workspace symbols) is implemented.
package lsp

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/lucianosrp/frame-check/pkg/checker"
	"github.com/lucianosrp/frame-check/pkg/lang"
)

// Server holds per-connection state: one source text per open document.
type Server struct {
	conn    jsonrpc2.Conn
	modules []string

	mu   sync.Mutex
	docs map[uri.URI]string
}

// Serve runs a server over rwc until the connection closes, blocking the
// calling goroutine. modules widens the set of import names (beyond
// "pandas") the checker treats as frame-constructing, per pkg/config.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, modules []string) error {
	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)

	s := &Server{conn: conn, modules: modules, docs: map[uri.URI]string{}}
	conn.Go(ctx, s.handle)

	<-conn.Done()

	return conn.Err()
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodInitialize:
		return reply(ctx, protocol.InitializeResult{
			Capabilities: protocol.ServerCapabilities{
				TextDocumentSync: protocol.TextDocumentSyncKindFull,
			},
		}, nil)

	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		s.didOpen(ctx, params)

		return reply(ctx, nil, nil)

	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		s.didChange(ctx, params)

		return reply(ctx, nil, nil)

	case protocol.MethodTextDocumentDidClose:
		var params protocol.DidCloseTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}

		s.mu.Lock()
		delete(s.docs, params.TextDocument.URI)
		s.mu.Unlock()

		return reply(ctx, nil, nil)

	case protocol.MethodShutdown:
		return reply(ctx, nil, nil)

	default:
		return reply(ctx, nil, nil)
	}
}

func (s *Server) didOpen(ctx context.Context, params protocol.DidOpenTextDocumentParams) {
	s.store(params.TextDocument.URI, params.TextDocument.Text)
	s.publish(ctx, params.TextDocument.URI)
}

func (s *Server) didChange(ctx context.Context, params protocol.DidChangeTextDocumentParams) {
	if len(params.ContentChanges) == 0 {
		return
	}

	// Full-sync only (TextDocumentSyncKindFull): the last change event
	// carries the entire new document text.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text

	s.store(params.TextDocument.URI, text)
	s.publish(ctx, params.TextDocument.URI)
}

func (s *Server) store(docURI uri.URI, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[docURI] = text
}

func (s *Server) publish(ctx context.Context, docURI uri.URI) {
	s.mu.Lock()
	text := s.docs[docURI]
	s.mu.Unlock()

	diags := s.check(docURI, text)

	params := &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: diags,
	}

	if err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, params); err != nil {
		log.WithError(err).WithField("uri", docURI).Warn("publishDiagnostics failed")
	}
}

func (s *Server) check(docURI uri.URI, text string) []protocol.Diagnostic {
	mod, err := lang.Parse(text)
	if err != nil {
		return []protocol.Diagnostic{syntaxErrorDiagnostic(err)}
	}

	c := checker.NewWithModules(s.modules)
	result := c.CheckModule(mod)

	out := make([]protocol.Diagnostic, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		out = append(out, toProtocolDiagnostic(d))
	}

	return out
}
