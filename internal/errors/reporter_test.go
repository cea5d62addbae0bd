package errors

import (
	goerrors "errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss/internal/ast"
	"oss/internal/parser"
)

func init() {
	color.NoColor = true
}

func diagnose(t *testing.T, source string) CompilerError {
	t.Helper()
	_, err := parser.ParseSource("test.oss", source)
	require.Error(t, err)

	diag, ok := FromError(err)
	require.True(t, ok, "unconverted error %T: %v", err, err)
	return diag
}

func TestErrorReporter(t *testing.T) {
	source := "class=User {\n  visible: true\n  editable: false;\n}"

	reporter := NewErrorReporter("test.oss", source)
	diag := diagnose(t, source)
	formatted := reporter.FormatError(diag)

	assert.Contains(t, formatted, "error["+ErrorUnexpectedToken+"]")
	assert.Contains(t, formatted, "expected ';' but found 'editable'")
	assert.Contains(t, formatted, "test.oss:3:3")
	assert.Contains(t, formatted, "  2 │   visible: true")
	assert.Contains(t, formatted, "  3 │   editable: false;")
	assert.Contains(t, formatted, "    │   ^^^^^^^^")
	assert.Contains(t, formatted, "help try: insert ';'")
}

func TestContextLines(t *testing.T) {
	source := "a;\nb;\nc=;\nd;\ne;"
	diag := diagnose(t, source)

	reporter := NewErrorReporter("test.oss", source)
	reporter.SetContextLines(0)
	formatted := reporter.FormatError(diag)
	assert.NotContains(t, formatted, "b;")
	assert.NotContains(t, formatted, "d;")

	reporter.SetContextLines(2)
	formatted = reporter.FormatError(diag)
	for _, line := range []string{"a;", "b;", "c=;", "d;", "e;"} {
		assert.Contains(t, formatted, line)
	}
}

func TestMarkerStopsAtLineEnd(t *testing.T) {
	source := "class=User;\n/* open\nstill open"
	diag := diagnose(t, source)
	assert.Equal(t, ErrorUnterminatedComment, diag.Code)

	formatted := NewErrorReporter("test.oss", source).FormatError(diag)
	assert.Contains(t, formatted, "│ ^^\n")
}

func TestLexerErrorConversion(t *testing.T) {
	tests := []struct {
		source string
		code   string
		line   int
		column int
	}{
		{"class=User; ?", ErrorUnexpectedCharacter, 1, 13},
		{"class=User; /* x", ErrorUnterminatedComment, 1, 13},
		{"class=User; // x", ErrorUnterminatedComment, 1, 13},
		{"class { label: 'x; }", ErrorUnterminatedString, 1, 16},
		{"class { valid: ${x; ", ErrorUnterminatedExpression, 1, 16},
		{"class { valid: $$x; }", ErrorMalformedExpression, 1, 16},
		{"class { label: $[k1 'x'; }", ErrorUnterminatedLocalizationKey, 1, 16},
	}

	for _, tt := range tests {
		diag := diagnose(t, tt.source)
		assert.Equal(t, tt.code, diag.Code, tt.source)
		assert.Equal(t, Error, diag.Level)
		assert.Equal(t, tt.line, diag.Position.Line, tt.source)
		assert.Equal(t, tt.column, diag.Position.Column, tt.source)
		assert.GreaterOrEqual(t, diag.Length, 1)
	}
}

func TestParserErrorConversion(t *testing.T) {
	tests := []struct {
		source string
		code   string
	}{
		{"class=User", ErrorUnexpectedToken},
		{"class { 42; }", ErrorNoSelectors},
		{"", ErrorEmptyFile},
		{"class; }", ErrorTrailingInput},
		{"class { a => b; c: d; }", ErrorMisplacedChain},
	}

	for _, tt := range tests {
		diag := diagnose(t, tt.source)
		assert.Equal(t, tt.code, diag.Code, tt.source)
		assert.Equal(t, "test.oss", diag.Position.Filename)
		assert.Equal(t, "Parser", GetErrorCategory(diag.Code))
	}

	trailing := diagnose(t, "class; }")
	require.Len(t, trailing.Suggestions, 1)
	assert.Contains(t, trailing.Suggestions[0].Message, "unmatched '}'")

	empty := diagnose(t, "")
	assert.Contains(t, empty.HelpText, "class=User;")
}

func TestFromErrorIgnoresOtherErrors(t *testing.T) {
	_, ok := FromError(goerrors.New("disk on fire"))
	assert.False(t, ok)
}

func TestCompilerErrorString(t *testing.T) {
	err := NewSyntaxError(ErrorUnexpectedToken, "boom", ast.Position{Filename: "a.oss", Line: 2, Column: 4}).Build()
	assert.Equal(t, "a.oss:2:4: boom", err.Error())

	err.Position.Filename = ""
	assert.Equal(t, "2:4: boom", err.Error())
}

func TestBuilder(t *testing.T) {
	err := NewSyntaxError(ErrorReadFile, "cannot read", ast.Position{Line: 1, Column: 1}).
		WithLength(4).
		WithSuggestion("check the path").
		WithNote("the file may have moved").
		WithHelp("pass a readable .oss file").
		Build()

	assert.Equal(t, 4, err.Length)
	assert.Len(t, err.Suggestions, 1)
	assert.Equal(t, []string{"the file may have moved"}, err.Notes)

	formatted := NewErrorReporter("a.oss", "text").FormatError(err)
	assert.True(t, strings.HasPrefix(formatted, "error[E0900]: cannot read"))
	assert.Contains(t, formatted, "note: the file may have moved")
	assert.Contains(t, formatted, "help: pass a readable .oss file")
}

func TestErrorCodeHelpers(t *testing.T) {
	assert.Equal(t, "Lexer", GetErrorCategory(ErrorUnterminatedString))
	assert.Equal(t, "Tooling", GetErrorCategory(ErrorReadFile))
	assert.Equal(t, "Unknown", GetErrorCategory("E0500"))
	assert.Equal(t, "Document contains no rules", GetErrorDescription(ErrorEmptyFile))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}
