package lexer

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Comments
	COMMENT
	BLOCK_COMMENT

	// Punctuation
	SEMICOLON
	COLON
	COMMA
	EQUAL
	AT
	POUND
	DOT
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
	NEXT // =>
	STAR
	TILDE
	BANG

	// Boolean and null literals
	BOOLEAN
	NULL

	// Keywords
	CLASS
	OBJECT
	FIELD
	ACTION
	ACTION_CATEGORY
	LAYOUT
	MODULE
	OPERATION
	COMPONENT
	BINDINGS
	TRAIT
	TRAITS
	VISIBLE
	EDITABLE
	VALID
	REQUIRED
	LABEL
	TYPE
	ELEMENT_TYPE
	EDITING
	AFTER
	ZONE_PATH
	DISPLAY_KEY
	HOME_PAGE
	WRAPPER_COMPONENT
	WRAPPER_BINDINGS
	Z_NONE
	Z_MAIN
	Z_LEFT
	Z_RIGHT
	Z_TOP
	Z_BOTTOM
	Z_DETAIL

	// Identifiers + literals
	IDENTIFIER
	KEY_PATH
	INT
	FLOAT
	STRING
	FIELD_PATH
	LOCALIZATION_KEY
	EXPRESSION
	STATIC_EXPRESSION
)

var tokenNames = map[TokenType]string{
	ILLEGAL:           "illegal token",
	EOF:               "end of input",
	COMMENT:           "comment",
	BLOCK_COMMENT:     "block comment",
	BOOLEAN:           "boolean",
	NULL:              "null",
	IDENTIFIER:        "identifier",
	KEY_PATH:          "key path",
	INT:               "integer",
	FLOAT:             "float",
	STRING:            "string",
	FIELD_PATH:        "field path",
	LOCALIZATION_KEY:  "localization key",
	EXPRESSION:        "expression",
	STATIC_EXPRESSION: "static expression",
}

// String names the token type the way it reads in an error message:
// punctuation and keywords are quoted spellings, everything else is a
// category name.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	if spelling, ok := spellings[t]; ok {
		return "'" + spelling + "'"
	}
	return "unknown token"
}

// Position locates a character in the source. Offset counts characters, not
// bytes.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
	End      Position
}

// Text returns the payload of the token with its delimiters removed: the body
// of a string without quotes, a field path without '$', a localization key
// without "$[" and "]", and the trimmed body of an expression.
func (t Token) Text() string {
	runes := []rune(t.Lexeme)
	switch t.Type {
	case STRING:
		return string(runes[1 : len(runes)-1])
	case FIELD_PATH:
		return string(runes[1:])
	case LOCALIZATION_KEY:
		return string(runes[2 : len(runes)-1])
	case EXPRESSION:
		return trimSpace(runes[2 : len(runes)-1])
	case STATIC_EXPRESSION:
		if runes[1] == '{' {
			return trimSpace(runes[3 : len(runes)-2])
		}
		return trimSpace(runes[3 : len(runes)-1])
	}
	return t.Lexeme
}
