package grammar

import (
	"errors"
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"

	osslexer "oss/internal/lexer"
)

// Symbol types handed to participle. Literal matches in the grammar compare
// token values, so punctuation and keywords share one symbol each.
const (
	Comment plexer.TokenType = -(iota + 2)
	Punct
	Keyword
	Ident
	KeyPath
	Int
	Float
	String
	Boolean
	Null
	FieldPath
	LocalizationKey
	Expression
	StaticExpression
)

var symbols = map[string]plexer.TokenType{
	"EOF":              plexer.EOF,
	"Comment":          Comment,
	"Punct":            Punct,
	"Keyword":          Keyword,
	"Ident":            Ident,
	"KeyPath":          KeyPath,
	"Int":              Int,
	"Float":            Float,
	"String":           String,
	"Boolean":          Boolean,
	"Null":             Null,
	"FieldPath":        FieldPath,
	"LocalizationKey":  LocalizationKey,
	"Expression":       Expression,
	"StaticExpression": StaticExpression,
}

var symbolNames = plexer.SymbolsByRune(OSSLexer)

// OSSLexer feeds participle from the hand written scanner so that the
// grammar and the parser agree on every token boundary. Token values keep
// their delimiters: a string arrives with its quotes.
var OSSLexer plexer.Definition = definition{}

type definition struct{}

func (definition) Symbols() map[string]plexer.TokenType {
	return symbols
}

func (d definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(source))
}

func (definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return &tokenStream{filename: filename, scanner: osslexer.New(input)}, nil
}

type tokenStream struct {
	filename string
	scanner  *osslexer.Lexer
}

func (s *tokenStream) Next() (plexer.Token, error) {
	tok, err := s.scanner.Next()
	if err != nil {
		var lexErr *osslexer.Error
		if errors.As(err, &lexErr) {
			return plexer.Token{}, &plexer.Error{Msg: lexErr.Message, Pos: s.position(lexErr.Position)}
		}
		return plexer.Token{}, err
	}

	if tok.Type == osslexer.EOF {
		return plexer.EOFToken(s.position(tok.Position)), nil
	}
	return plexer.Token{
		Type:  symbolType(tok.Type),
		Value: tok.Lexeme,
		Pos:   s.position(tok.Position),
	}, nil
}

func (s *tokenStream) position(pos osslexer.Position) plexer.Position {
	return plexer.Position{
		Filename: s.filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func symbolType(tt osslexer.TokenType) plexer.TokenType {
	switch tt {
	case osslexer.COMMENT, osslexer.BLOCK_COMMENT:
		return Comment
	case osslexer.IDENTIFIER:
		return Ident
	case osslexer.KEY_PATH:
		return KeyPath
	case osslexer.INT:
		return Int
	case osslexer.FLOAT:
		return Float
	case osslexer.STRING:
		return String
	case osslexer.BOOLEAN:
		return Boolean
	case osslexer.NULL:
		return Null
	case osslexer.FIELD_PATH:
		return FieldPath
	case osslexer.LOCALIZATION_KEY:
		return LocalizationKey
	case osslexer.EXPRESSION:
		return Expression
	case osslexer.STATIC_EXPRESSION:
		return StaticExpression
	}
	if osslexer.IsKeyword(tt) {
		return Keyword
	}
	return Punct
}
