package parser

import (
	"fmt"
	"unicode/utf8"

	"oss/internal/ast"
	"oss/internal/lexer"
)

// advance moves to the next significant token. Comments are skipped.
func (p *Parser) advance() error {
	tok, err := p.nextSignificant()
	if err != nil {
		return err
	}
	p.previous = p.current
	p.current = tok
	return nil
}

func (p *Parser) nextSignificant() (lexer.Token, error) {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		if tok.Type != lexer.COMMENT && tok.Type != lexer.BLOCK_COMMENT {
			return tok, nil
		}
	}
}

// peek returns the significant token after the current one without
// consuming it.
func (p *Parser) peek() (lexer.Token, error) {
	saved := p.lex.Mark()
	defer p.lex.Reset(saved)
	return p.nextSignificant()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current.Type == tt
}

func (p *Parser) match(tt lexer.TokenType) (bool, error) {
	if !p.check(tt) {
		return false, nil
	}
	return true, p.advance()
}

// expect consumes the current token if it has type tt and fails otherwise.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if !p.check(tt) {
		return lexer.Token{}, p.unexpected(tt.String())
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func (p *Parser) unexpected(expected string) *Error {
	return p.errorAtCurrent(UnexpectedToken, expected,
		fmt.Sprintf("expected %s but found %s", expected, p.describe(p.current)))
}

func (p *Parser) errorAtCurrent(kind ErrorKind, expected, message string) *Error {
	found := p.current.Lexeme
	if p.check(lexer.EOF) {
		found = lexer.EOF.String()
	}
	return &Error{
		Kind:     kind,
		Expected: expected,
		Found:    found,
		Length:   utf8.RuneCountInString(p.current.Lexeme),
		Position: p.pos(p.current),
		Message:  message,
	}
}

func (p *Parser) describe(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return tok.Type.String()
	}
	return fmt.Sprintf("'%s'", tok.Lexeme)
}

// chainAhead reports whether the current token starts a precedence chain
// node carrying traits, as in "name#bold => next". It scans past the trait
// list with Mark and Reset and looks for "=>".
func (p *Parser) chainAhead() bool {
	saved := p.lex.Mark()
	defer p.lex.Reset(saved)

	tok, err := p.nextSignificant()
	if err != nil || tok.Type != lexer.POUND {
		return false
	}
	for {
		tok, err = p.nextSignificant()
		if err != nil {
			return false
		}
		if tok.Type != lexer.COMMA && !lexer.IsTraitName(tok.Type) {
			return tok.Type == lexer.NEXT
		}
	}
}

func (p *Parser) pos(tok lexer.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) end(tok lexer.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.End.Offset,
		Line:     tok.End.Line,
		Column:   tok.End.Column,
	}
}

// makeKey builds a key node from a key, string or chain-key token.
func (p *Parser) makeKey(tok lexer.Token) *ast.Key {
	key := &ast.Key{
		Pos:    p.pos(tok),
		EndPos: p.end(tok),
		Name:   tok.Lexeme,
	}
	switch {
	case tok.Type == lexer.STRING:
		key.Kind = ast.StringKey
		key.Name = tok.Text()
	case tok.Type == lexer.KEY_PATH:
		key.Kind = ast.KeyPathKey
	case tok.Type == lexer.STAR:
		key.Kind = ast.WildcardKey
	case lexer.IsKeyword(tok.Type):
		key.Kind = ast.KeywordKey
	default:
		key.Kind = ast.IdentifierKey
	}
	return key
}
