package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"oss/internal/ast"
	"oss/internal/lexer"
	"oss/internal/parser"
)

// SyntaxErrorBuilder provides a fluent interface for creating diagnostics
type SyntaxErrorBuilder struct {
	err CompilerError
}

// NewSyntaxError creates a new error builder
func NewSyntaxError(code, message string, pos ast.Position) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SyntaxErrorBuilder) WithSuggestion(message string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SyntaxErrorBuilder) WithReplacement(message, replacement string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the error
func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SyntaxErrorBuilder) Build() CompilerError {
	return b.err
}

// FromError converts a lexer or parser failure into a diagnostic. It reports
// false for any other error.
func FromError(err error) (CompilerError, bool) {
	var lexErr *lexer.Error
	if goerrors.As(err, &lexErr) {
		return fromLexerError(lexErr), true
	}
	var parseErr *parser.Error
	if goerrors.As(err, &parseErr) {
		return fromParserError(parseErr), true
	}
	return CompilerError{}, false
}

func fromLexerError(e *lexer.Error) CompilerError {
	pos := ast.Position{
		Offset: e.Position.Offset,
		Line:   e.Position.Line,
		Column: e.Position.Column,
	}
	length := max(1, utf8.RuneCountInString(e.Lexeme))

	switch e.Kind {
	case lexer.UnexpectedCharacter:
		return NewSyntaxError(ErrorUnexpectedCharacter, e.Message, pos).
			WithLength(length).
			WithHelp("remove the character, or put it inside a quoted string").
			Build()

	case lexer.UnterminatedComment:
		builder := NewSyntaxError(ErrorUnterminatedComment, e.Message, pos).WithLength(2)
		if strings.HasPrefix(e.Lexeme, "//") {
			return builder.WithSuggestion("add a line break after the comment").Build()
		}
		return builder.WithReplacement("close the comment", "*/").Build()

	case lexer.UnterminatedString:
		quote := "'"
		if strings.HasPrefix(e.Lexeme, `"`) {
			quote = `"`
		}
		return NewSyntaxError(ErrorUnterminatedString, e.Message, pos).
			WithLength(length).
			WithReplacement("close the string with the quote it starts with", quote).
			WithNote("strings have no escapes; use the other quote kind to embed a quote character").
			Build()

	case lexer.UnterminatedExpression:
		return NewSyntaxError(ErrorUnterminatedExpression, e.Message, pos).
			WithLength(length).
			WithNote("expression bodies cannot contain '}'").
			WithHelp("expressions are written as ${...}, $${...} or ${{...}}").
			Build()

	case lexer.MalformedExpression:
		return NewSyntaxError(ErrorMalformedExpression, e.Message, pos).
			WithLength(length).
			WithHelp("static expressions are written as $${...}").
			Build()

	case lexer.UnterminatedLocalizationKey:
		return NewSyntaxError(ErrorUnterminatedLocalizationKey, e.Message, pos).
			WithLength(length).
			WithHelp("localized strings are written as $[key]'default text'; keys are letters and digits").
			Build()
	}

	return NewSyntaxError(ErrorUnexpectedCharacter, e.Message, pos).WithLength(length).Build()
}

func fromParserError(e *parser.Error) CompilerError {
	length := max(1, e.Length)

	switch e.Kind {
	case parser.NoSelectors:
		return NewSyntaxError(ErrorNoSelectors, e.Message, e.Position).
			WithLength(length).
			WithHelp("a rule starts with selectors such as 'class=User' or 'field'").
			Build()

	case parser.EmptyFile:
		return NewSyntaxError(ErrorEmptyFile, e.Message, e.Position).
			WithHelp("a document needs at least one rule, for example 'class=User;'").
			Build()

	case parser.TrailingInput:
		builder := NewSyntaxError(ErrorTrailingInput, e.Message, e.Position).WithLength(length)
		if e.Found == "}" {
			builder = builder.WithSuggestion("remove the unmatched '}'")
		}
		return builder.Build()

	case parser.MisplacedChain:
		return NewSyntaxError(ErrorMisplacedChain, e.Message, e.Position).
			WithLength(length).
			WithSuggestion("move the precedence chain to the end of the rule body").
			Build()
	}

	builder := NewSyntaxError(ErrorUnexpectedToken, e.Message, e.Position).WithLength(length)
	if strings.HasPrefix(e.Expected, "'") {
		builder = builder.WithReplacement(fmt.Sprintf("insert %s", e.Expected), strings.Trim(e.Expected, "'"))
	}
	return builder.Build()
}
