// Package grammar is a declarative description of OSS built with participle.
// It shares the scanner of the hand written parser and accepts the same
// language, which makes it useful for cross checking parser changes and for
// quick outlines of a document. The typed AST used by the rest of the module
// comes from internal/parser.
package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Every node records Pos, the position of its first token, and EndPos, the
// position of the token that follows it.

type File struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Rules  []*Rule `@@+`
}

type Rule struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Selectors  []*Selector `@@+`
	Traits     []*Trait    `[ "#" { "," | @@ } ]`
	Body       *Body       `( @@`
	Terminated bool        `| @";" )`
}

type Selector struct {
	Pos         lexer.Position
	EndPos      lexer.Position
	Declaration bool           `@"@"?`
	Null        *string        `(   "~" @(Ident | Keyword)`
	Key         *string        `  | @(Ident | Keyword)`
	Value       *SelectorValue `    [ "=" @@ ] )`
}

type SelectorValue struct {
	Pos    lexer.Position
	EndPos lexer.Position
	List   []*Simple `  "(" @@ { "," @@ } ")"`
	Simple *Simple   `| @@`
}

// Trait is one name of a trait list. Commas between names are optional and
// may repeat, and the list after '#' may be empty.
type Trait struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string `@(Ident | Keyword)`
}

// Body holds the statements of a rule. The last property may drop its ';',
// and a precedence chain can only close the body.
type Body struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `"{" @@*`
	Last       *Property    `[ @@`
	Chain      *Chain       `| @@ ] "}"`
}

type Statement struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Property *Property `  @@ ";"`
	Rule     *Rule     `| @@`
}

type Property struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Key      string `@(Ident | Keyword | String) ":"`
	Value    *Value `@@`
	Override bool   `@"!"?`
}

// Value is a property value: one compound value or a comma separated list
// of simple values.
type Value struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Compound *Compound `  @@`
	Simples  []*Simple `| @@ { "," @@ }`
}

type Compound struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Map        *Map         `  @@`
	List       *WrappedList `| @@`
	Paren      *ParenList   `| @@`
	Localized  *Localized   `| @@`
	Binding    *string      `| @FieldPath`
	Expression *string      `| @Expression`
}

type Map struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Entries []*MapEntry `"{" [ @@ { ";" @@ } [ ";" ] ] "}"`
}

type MapEntry struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Key    string `@(Ident | Keyword | String) ":"`
	Value  *Value `@@`
}

type WrappedList struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Items  []*Item `"[" [ @@ { "," @@ } [ "," ] ] "]"`
}

type ParenList struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Items  []*Simple `"(" @@ { "," @@ } ")"`
}

type Item struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Compound *Compound `  @@`
	Simple   *Simple   `| @@`
}

type Localized struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Key     string `@LocalizationKey`
	Default string `@String`
}

// Simple is a single literal token. Tokens records it so that callers can
// tell an identifier from a quoted string with the same text.
type Simple struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Tokens []lexer.Token
	Value  string `@(Ident | Keyword | KeyPath | Int | Float | String | Boolean | Null | StaticExpression | "*")`
}

type Chain struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Nodes  []*ChainNode `@@ ( "=>" @@ )+ ";"`
}

type ChainNode struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Key    string   `@(Ident | Keyword | KeyPath | "*")`
	Traits []*Trait `[ "#" { "," | @@ } ]`
}

// Symbol names the token kind of the literal, such as "String" or "Ident".
func (s *Simple) Symbol() string {
	if len(s.Tokens) == 0 {
		return ""
	}
	return symbolNames[s.Tokens[0].Type]
}
