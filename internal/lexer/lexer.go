// Package lexer turns OSS source text into tokens. It is pull based: the
// caller asks for one token at a time with Next, and may look one token ahead
// with Peek. The lexer does not depend on the parser and can be used on its
// own, for example to drive syntax highlighting.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

type Lexer struct {
	source []rune
	state
}

type state struct {
	start       int
	startLine   int
	startColumn int
	current     int
	line        int
	column      int
	err         *Error
}

// State is a snapshot of the scanner taken with Mark and restored with Reset.
type State struct {
	s state
}

func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		state: state{
			line:   1,
			column: 1,
		},
	}
}

// Tokenize scans source to the end. On failure it returns the tokens scanned
// before the error together with the error.
func Tokenize(source string) ([]Token, error) {
	l := New(source)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// Next consumes and returns the next token. Errors are sticky: once scanning
// has failed every later call returns the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	tok, err := l.scanToken()
	if err != nil {
		l.err = err
		return Token{}, err
	}
	return tok, nil
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	saved := l.Mark()
	defer l.Reset(saved)
	return l.Next()
}

func (l *Lexer) Mark() State {
	return State{s: l.state}
}

func (l *Lexer) Reset(s State) {
	l.state = s.s
}

func (l *Lexer) scanToken() (Token, *Error) {
	l.skipWhitespace()

	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column

	if l.isAtEnd() {
		return l.makeToken(EOF), nil
	}

	c := l.peek()
	switch {
	case c == '/' && (l.peekNext() == '/' || l.peekNext() == '*'):
		return l.scanComment()
	case isPunctuation(c):
		return l.scanPunctuation(), nil
	case isAlpha(c):
		return l.scanIdentifier(), nil
	case c == '$':
		return l.scanDollar()
	case c == '\'' || c == '"':
		return l.scanString()
	case isDigit(c):
		return l.scanNumber(), nil
	}

	l.advance()
	return Token{}, l.errorf(UnexpectedCharacter, "unexpected character %q", c)
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) scanComment() (Token, *Error) {
	l.advance() // '/'
	if l.advance() == '/' {
		for !l.isAtEnd() && l.peek() != '\n' && l.peek() != '\r' {
			l.advance()
		}
		if l.isAtEnd() {
			return Token{}, l.errorf(UnterminatedComment, "unterminated line comment: missing line end before end of input")
		}
		return l.makeToken(COMMENT), nil
	}

	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return l.makeToken(BLOCK_COMMENT), nil
		}
		l.advance()
	}
	return Token{}, l.errorf(UnterminatedComment, "unterminated block comment: missing '*/'")
}

func (l *Lexer) scanPunctuation() Token {
	c := l.advance()
	if c == '=' && l.peek() == '>' {
		l.advance()
		return l.makeToken(NEXT)
	}
	return l.makeToken(Punctuation[c])
}

// scanIdentifier scans the whole identifier or key path first and classifies
// it once at the end. Key paths are never keywords, booleans or null.
func (l *Lexer) scanIdentifier() Token {
	keyPath := false
	for !l.isAtEnd() {
		c := l.peek()
		if isAlphaNumeric(c) {
			l.advance()
			continue
		}
		if c == '.' || c == '$' {
			keyPath = true
			l.advance()
			continue
		}
		break
	}

	if keyPath {
		return l.makeToken(KEY_PATH)
	}

	text := string(l.source[l.start:l.current])
	if tt, ok := LookupKeyword(text); ok {
		return l.makeToken(tt)
	}
	switch text {
	case "true", "false":
		return l.makeToken(BOOLEAN)
	case "null":
		return l.makeToken(NULL)
	}
	return l.makeToken(IDENTIFIER)
}

func (l *Lexer) scanDollar() (Token, *Error) {
	l.advance() // '$'
	c := l.peek()
	switch {
	case c == '{' || c == '$':
		return l.scanExpression()
	case isAlpha(c):
		for !l.isAtEnd() && (isAlphaNumeric(l.peek()) || l.peek() == '.') {
			l.advance()
		}
		return l.makeToken(FIELD_PATH), nil
	case c == '[':
		l.advance()
		for !l.isAtEnd() && (unicode.IsLetter(l.peek()) || isDigit(l.peek())) {
			l.advance()
		}
		if l.peek() != ']' {
			return Token{}, l.errorf(UnterminatedLocalizationKey, "unterminated localization key: missing ']'")
		}
		l.advance()
		return l.makeToken(LOCALIZATION_KEY), nil
	}
	return Token{}, l.errorf(UnexpectedCharacter, "unexpected character '$'")
}

// scanExpression handles "${ ... }" and the static forms "$${ ... }" and
// "${{ ... }}". Braces do not nest: the first '}' closes the body.
func (l *Lexer) scanExpression() (Token, *Error) {
	static := false
	if l.peek() == '$' {
		l.advance()
		static = true
	}
	if l.peek() != '{' {
		return Token{}, l.errorf(MalformedExpression, "malformed expression: expected '{' after '$'")
	}
	l.advance()

	double := false
	if !static && l.peek() == '{' {
		l.advance()
		static = true
		double = true
	}

	for !l.isAtEnd() && l.peek() != '}' {
		l.advance()
	}
	if l.isAtEnd() {
		return Token{}, l.errorf(UnterminatedExpression, "unterminated expression: missing '}'")
	}
	l.advance()

	if double {
		if l.peek() != '}' {
			return Token{}, l.errorf(UnterminatedExpression, "unterminated static expression: missing '}}'")
		}
		l.advance()
	}

	if static {
		return l.makeToken(STATIC_EXPRESSION), nil
	}
	return l.makeToken(EXPRESSION), nil
}

// scanString scans a quoted literal. There are no escapes, so the quote
// character cannot occur inside the literal.
func (l *Lexer) scanString() (Token, *Error) {
	quote := l.advance()
	for !l.isAtEnd() && l.peek() != quote {
		l.advance()
	}
	if l.isAtEnd() {
		return Token{}, l.errorf(UnterminatedString, "unterminated string: missing closing %c", quote)
	}
	l.advance()
	return l.makeToken(STRING), nil
}

func (l *Lexer) scanNumber() Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() != '.' {
		return l.makeToken(INT)
	}
	l.advance()
	for isDigit(l.peek()) {
		l.advance()
	}
	return l.makeToken(FLOAT)
}

func (l *Lexer) advance() rune {
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) makeToken(tt TokenType) Token {
	return Token{
		Type:     tt,
		Lexeme:   string(l.source[l.start:l.current]),
		Position: l.startPosition(),
		End: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.current,
		},
	}
}

func (l *Lexer) startPosition() Position {
	return Position{Line: l.startLine, Column: l.startColumn, Offset: l.start}
}

func (l *Lexer) errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Lexeme:   string(l.source[l.start:l.current]),
		Position: l.startPosition(),
	}
}

// Helper functions.

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

func isPunctuation(c rune) bool {
	_, ok := Punctuation[c]
	return ok
}

func trimSpace(r []rune) string {
	return strings.TrimSpace(string(r))
}
