// Package parser builds an OSS syntax tree by recursive descent over the
// lexer. The parser holds one current token and peeks one further where the
// grammar needs it. It does not recover: the first error ends the parse and
// no partial tree is returned.
package parser

import (
	"fmt"
	"os"

	"oss/internal/ast"
	"oss/internal/lexer"
)

type Parser struct {
	filename string
	lex      *lexer.Lexer
	current  lexer.Token
	previous lexer.Token
	rules    []*ast.Rule
}

func New(filename, source string) *Parser {
	return &Parser{
		filename: filename,
		lex:      lexer.New(source),
	}
}

// ParseSource parses one OSS document held in memory.
func ParseSource(filename, source string) (*ast.File, error) {
	return New(filename, source).ParseFile()
}

// ReadFile reads and parses the document at path.
func ReadFile(path string) (*ast.File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source))
}

// ParseFile parses the whole document. Lexical failures are returned as
// *lexer.Error, grammar failures as *Error.
func (p *Parser) ParseFile() (*ast.File, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	file := &ast.File{
		Pos: ast.Position{Filename: p.filename, Offset: 0, Line: 1, Column: 1},
	}

	for p.startsRule() {
		rule, err := p.parseRule(0)
		if err != nil {
			return nil, err
		}
		file.Rules = append(file.Rules, rule)
	}

	if len(file.Rules) == 0 {
		return nil, p.errorAtCurrent(EmptyFile, "rule", "rules expected but none found")
	}
	if !p.check(lexer.EOF) {
		return nil, p.errorAtCurrent(TrailingInput, lexer.EOF.String(),
			fmt.Sprintf("expected end of input but found %s", p.describe(p.current)))
	}

	file.EndPos = p.end(p.current)
	file.All = p.rules
	return file, nil
}

func (p *Parser) startsRule() bool {
	return p.check(lexer.AT) || p.check(lexer.TILDE) || lexer.IsKeyKind(p.current.Type)
}
