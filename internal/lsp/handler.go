package lsp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"oss/internal/ast"
	"oss/internal/lexer"
)

// Define the set of supported semantic token types advertised in the server capabilities
var SemanticTokenTypes = []string{
	"keyword",
	"property",
	"variable",
	"parameter",
	"type",
	"string",
	"number",
	"macro",
	"comment",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"static",
}

// OSSHandler implements the LSP server handlers for OSS documents
type OSSHandler struct {
	mu             sync.RWMutex
	content        map[string]string
	files          map[string]parsedDocument
	maxDiagnostics int
	version        string
	log            commonlog.Logger
}

// parsedDocument is the last version of a document that parsed cleanly,
// with the text it was parsed from.
type parsedDocument struct {
	file *ast.File
	text string
}

// NewOSSHandler creates a handler reporting at most maxDiagnostics
// diagnostics per document. A bound of zero selects MaxDiagnostics.
func NewOSSHandler(version string, maxDiagnostics int) *OSSHandler {
	if maxDiagnostics <= 0 {
		maxDiagnostics = MaxDiagnostics
	}
	return &OSSHandler{
		content:        make(map[string]string),
		files:          make(map[string]parsedDocument),
		maxDiagnostics: maxDiagnostics,
		version:        version,
		log:            commonlog.GetLogger("oss.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *OSSHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			DocumentSymbolProvider: true,
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "oss",
			Version: ptrString(h.version),
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *OSSHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *OSSHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// SetTrace records the trace level requested by the client
func (h *OSSHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *OSSHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)

	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server asks for full synchronisation, so the last whole-document
// change carries the new text.
func (h *OSSHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := h.source(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text, ok = c.Text, true
			} else {
				h.log.Warningf("ignoring ranged change to %s", params.TextDocument.URI)
			}
		}
	}
	if !ok {
		return fmt.Errorf("no content for %s", params.TextDocument.URI)
	}

	h.update(ctx, params.TextDocument.URI, text)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *OSSHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.files, params.TextDocument.URI)

	return nil
}

// TextDocumentCompletion offers the OSS keywords and literals
func (h *OSSHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	words := make([]string, 0, len(lexer.Keywords)+3)
	for word := range lexer.Keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	words = append(words, "true", "false", "null")

	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(words))
	for _, word := range words {
		items = append(items, protocol.CompletionItem{
			Label: word,
			Kind:  &kind,
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *OSSHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI

	source, err := h.getOrLoad(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(source)),
	}, nil
}

// TextDocumentDocumentSymbol outlines the rules of the last document version
// that parsed cleanly
func (h *OSSHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	uri := params.TextDocument.URI
	if _, err := h.getOrLoad(ctx, uri); err != nil {
		return nil, err
	}

	h.mu.RLock()
	doc := h.files[uri]
	h.mu.RUnlock()

	return documentSymbols(doc.file, doc.text), nil
}

// getOrLoad returns the cached text of uri, reading the file from disk when
// the editor has not opened it.
func (h *OSSHandler) getOrLoad(ctx *glsp.Context, uri protocol.DocumentUri) (string, error) {
	if source, ok := h.source(uri); ok {
		return source, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return "", fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}

	h.update(ctx, uri, string(content))
	return string(content), nil
}

func (h *OSSHandler) source(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	source, ok := h.content[uri]
	return source, ok
}

// update stores the new text, reparses it and publishes the resulting
// diagnostics. The last clean tree is kept while the document has errors.
func (h *OSSHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	filename := uri
	if path, err := uriToPath(uri); err == nil {
		filename = path
	}

	file, diagnostics := CollectDiagnostics(filename, text, h.maxDiagnostics)

	h.mu.Lock()
	h.content[uri] = text
	if file != nil {
		h.files[uri] = parsedDocument{file: file, text: text}
	}
	h.mu.Unlock()

	h.sendDiagnosticNotification(ctx, uri, diagnostics)
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func (h *OSSHandler) sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	if h.log.AllowLevel(commonlog.Debug) {
		diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
		if err == nil {
			h.log.Debugf("sending diagnostics: %s", diagnosticsJSON)
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
