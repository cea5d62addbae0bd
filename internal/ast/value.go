package ast

// ValueKind tags the concrete variant behind a Value.
type ValueKind int

const (
	SimpleValue ValueKind = iota
	ListValue
	WrappedListValue
	MapValue
	BindingValue
	LocalizedStringValue
	ExpressionValue
)

func (k ValueKind) String() string {
	switch k {
	case SimpleValue:
		return "simple"
	case ListValue:
		return "list"
	case WrappedListValue:
		return "wrapped list"
	case MapValue:
		return "map"
	case BindingValue:
		return "binding"
	case LocalizedStringValue:
		return "localized string"
	case ExpressionValue:
		return "expression"
	default:
		return "unknown"
	}
}

// Value is the closed set of property and selector values. Only the types in
// this file implement it.
type Value interface {
	Node
	ValueKind() ValueKind
	isValue()
}

// LiteralKind records which token a Simple value was built from.
type LiteralKind int

const (
	IdentifierLiteral LiteralKind = iota
	KeywordLiteral
	KeyPathLiteral
	IntLiteral
	FloatLiteral
	StringLiteral
	BooleanLiteral
	NullLiteral
	WildcardLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case IdentifierLiteral:
		return "identifier"
	case KeywordLiteral:
		return "keyword"
	case KeyPathLiteral:
		return "key path"
	case IntLiteral:
		return "int"
	case FloatLiteral:
		return "float"
	case StringLiteral:
		return "string"
	case BooleanLiteral:
		return "boolean"
	case NullLiteral:
		return "null"
	case WildcardLiteral:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Simple represents a single literal
// Example: "User", "object.name", "42", "1.5", "'Name'", "true", "null", "*"
type Simple struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Text   string // quotes removed for strings
}

// ValueList represents comma separated simple values
// Example: "(view, edit)", "a, b, c"
type ValueList struct {
	Pos    Position
	EndPos Position
	Items  []Value
}

// WrappedList represents a bracketed list of values of any kind
// Example: "[1, 'two', [3, 4], { a: b; }]"
type WrappedList struct {
	Pos    Position
	EndPos Position
	Items  []Value // nil for "[]"
}

// Map represents a braced set of entries
// Example: "{ label: 'Name'; visible: true; }"
type Map struct {
	Pos     Position
	EndPos  Position
	Entries []*MapEntry // nil for "{}"
}

// MapEntry represents one "key: value;" pair of a map
// Example: "label: 'Name';"
type MapEntry struct {
	Pos    Position
	EndPos Position
	Key    *Key
	Value  Value
}

// Binding represents a live reference to a data field
// Example: "$object.firstName"
type Binding struct {
	Pos    Position
	EndPos Position
	Path   string // without the leading '$'
}

// LocalizedString represents a localization key with its default text
// Example: "$[a001]'First Name'"
type LocalizedString struct {
	Pos     Position
	EndPos  Position
	Key     string
	Default string
}

// Expression represents embedded expression text the parser does not
// interpret
// Example: "${object.age > 18}", "$${ currentUser }", "${{ currentUser }}"
type Expression struct {
	Pos    Position
	EndPos Position
	Text   string
	Static bool
}

func (*Simple) ValueKind() ValueKind          { return SimpleValue }
func (*ValueList) ValueKind() ValueKind       { return ListValue }
func (*WrappedList) ValueKind() ValueKind     { return WrappedListValue }
func (*Map) ValueKind() ValueKind             { return MapValue }
func (*Binding) ValueKind() ValueKind         { return BindingValue }
func (*LocalizedString) ValueKind() ValueKind { return LocalizedStringValue }
func (*Expression) ValueKind() ValueKind      { return ExpressionValue }

func (*Simple) isValue()          {}
func (*ValueList) isValue()       {}
func (*WrappedList) isValue()     {}
func (*Map) isValue()             {}
func (*Binding) isValue()         {}
func (*LocalizedString) isValue() {}
func (*Expression) isValue()      {}

// Wildcard returns the "*" value a selector gets when none is written. The
// range is empty and sits at pos.
func Wildcard(pos Position) *Simple {
	return &Simple{Pos: pos, EndPos: pos, Kind: WildcardLiteral, Text: "*"}
}

// IsWildcard reports whether v is the "*" literal.
func IsWildcard(v Value) bool {
	s, ok := v.(*Simple)
	return ok && s.Kind == WildcardLiteral
}
