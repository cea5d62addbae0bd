package lsp

import (
	"unicode"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"oss/internal/ast"
	osserrors "oss/internal/errors"
	"oss/internal/parser"
)

// MaxDiagnostics is the default bound on diagnostics reported per document.
const MaxDiagnostics = 20

const diagnosticSource = "oss"

// CollectDiagnostics parses source and reports every failure it can find.
// The parser stops at the first error, so after each failure the statement
// holding the error is blanked out and the document is parsed again. Line
// breaks are kept, which leaves later positions intact. The returned file is
// nil unless the original source parsed cleanly.
func CollectDiagnostics(filename, source string, limit int) (*ast.File, []protocol.Diagnostic) {
	if limit <= 0 {
		limit = MaxDiagnostics
	}

	text := []rune(source)
	idx := newLineIndex(source)
	diagnostics := []protocol.Diagnostic{}

	for len(diagnostics) < limit {
		file, err := parser.ParseSource(filename, string(text))
		if err == nil {
			if len(diagnostics) == 0 {
				return file, diagnostics
			}
			break
		}

		diag, ok := osserrors.FromError(err)
		if !ok {
			break
		}
		// blanking can leave nothing to parse; that is not the user's error
		if diag.Code == osserrors.ErrorEmptyFile && len(diagnostics) > 0 {
			break
		}
		diagnostics = append(diagnostics, convertError(idx, diag))

		if !blankStatement(text, diag.Position.Offset) {
			break
		}
	}

	return nil, diagnostics
}

// blankStatement overwrites the statement around text[at] with spaces. The
// statement runs from the previous ';', '{' or '}' to the next ';' or '}'.
// A closing '}' is kept unless nothing else is left to blank. It reports
// false when no terminator follows.
func blankStatement(text []rune, at int) bool {
	if at < 0 || at >= len(text) {
		return false
	}

	start := at
	for start > 0 && !isDelimiter(text[start-1]) {
		start--
	}

	end := at
	for end < len(text) && text[end] != ';' && text[end] != '}' {
		end++
	}
	if end == len(text) {
		return false
	}
	if text[end] == '}' && !isBlank(text[start:end]) {
		end--
	}

	for i := start; i <= end; i++ {
		if text[i] != '\n' && text[i] != '\r' {
			text[i] = ' '
		}
	}
	return true
}

func isDelimiter(r rune) bool {
	return r == ';' || r == '{' || r == '}'
}

func isBlank(text []rune) bool {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ConvertError transforms a diagnostic into its LSP form for IDE display.
// source is the text the diagnostic was reported against; LSP characters
// count UTF-16 code units rather than runes.
func ConvertError(diag osserrors.CompilerError, source string) protocol.Diagnostic {
	return convertError(newLineIndex(source), diag)
}

func convertError(idx lineIndex, diag osserrors.CompilerError) protocol.Diagnostic {
	start := idx.position(diag.Position)
	end := start
	end.Character += idx.units(diag.Position.Line, diag.Position.Column, max(1, diag.Length))

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: diag.Code},
		Source:   ptrString(diagnosticSource),
		Message:  diag.Message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
