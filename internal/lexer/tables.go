package lexer

// Keywords maps the reserved spellings to their token types.
var Keywords = map[string]TokenType{
	"class":            CLASS,
	"object":           OBJECT,
	"field":            FIELD,
	"action":           ACTION,
	"actionCategory":   ACTION_CATEGORY,
	"layout":           LAYOUT,
	"module":           MODULE,
	"operation":        OPERATION,
	"component":        COMPONENT,
	"bindings":         BINDINGS,
	"trait":            TRAIT,
	"traits":           TRAITS,
	"visible":          VISIBLE,
	"editable":         EDITABLE,
	"valid":            VALID,
	"required":         REQUIRED,
	"label":            LABEL,
	"type":             TYPE,
	"elementType":      ELEMENT_TYPE,
	"editing":          EDITING,
	"after":            AFTER,
	"zonePath":         ZONE_PATH,
	"displayKey":       DISPLAY_KEY,
	"homePage":         HOME_PAGE,
	"wrapperComponent": WRAPPER_COMPONENT,
	"wrapperBindings":  WRAPPER_BINDINGS,
	"zNone":            Z_NONE,
	"zMain":            Z_MAIN,
	"zLeft":            Z_LEFT,
	"zRight":           Z_RIGHT,
	"zTop":             Z_TOP,
	"zBottom":          Z_BOTTOM,
	"zDetail":          Z_DETAIL,
}

// Punctuation maps single characters to their token types. '=' needs one
// character of lookahead to tell EQUAL from NEXT ("=>"), which the scanner
// handles itself.
var Punctuation = map[rune]TokenType{
	';': SEMICOLON,
	':': COLON,
	',': COMMA,
	'=': EQUAL,
	'@': AT,
	'#': POUND,
	'.': DOT,
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
	'[': LEFT_BRACKET,
	']': RIGHT_BRACKET,
	'*': STAR,
	'~': TILDE,
	'!': BANG,
}

// Grammar position sets. They are filled once in init and only read
// afterwards, so concurrent parses may share them without locking.
var (
	// KeywordKinds holds every keyword token type.
	KeywordKinds = map[TokenType]bool{}

	// KeyKinds holds the token types accepted as a selector or property key.
	KeyKinds = map[TokenType]bool{
		IDENTIFIER: true,
	}

	// SimpleValueKinds holds the token types accepted as a simple value.
	SimpleValueKinds = map[TokenType]bool{
		IDENTIFIER:        true,
		KEY_PATH:          true,
		INT:               true,
		FLOAT:             true,
		STRING:            true,
		BOOLEAN:           true,
		NULL:              true,
		STATIC_EXPRESSION: true,
	}

	// ChainKeyKinds holds the token types accepted as a precedence chain node.
	ChainKeyKinds = map[TokenType]bool{
		IDENTIFIER: true,
		KEY_PATH:   true,
		STAR:       true,
	}

	spellings = map[TokenType]string{
		NEXT: "=>",
	}
)

func init() {
	for spelling, tt := range Keywords {
		KeywordKinds[tt] = true
		KeyKinds[tt] = true
		SimpleValueKinds[tt] = true
		ChainKeyKinds[tt] = true
		spellings[tt] = spelling
	}
	for r, tt := range Punctuation {
		spellings[tt] = string(r)
	}
}

// LookupKeyword reports the keyword token type for text, if it is reserved.
func LookupKeyword(text string) (TokenType, bool) {
	tt, ok := Keywords[text]
	return tt, ok
}

func IsKeyword(tt TokenType) bool {
	return KeywordKinds[tt]
}

func IsKeyKind(tt TokenType) bool {
	return KeyKinds[tt]
}

func IsSimpleValueKind(tt TokenType) bool {
	return SimpleValueKinds[tt]
}

func IsChainKeyKind(tt TokenType) bool {
	return ChainKeyKinds[tt]
}

// IsTraitName reports whether tt can name a trait. Traits are bare words, so
// keywords qualify alongside plain identifiers.
func IsTraitName(tt TokenType) bool {
	return tt == IDENTIFIER || KeywordKinds[tt]
}
