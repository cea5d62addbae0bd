package ast

// Position tracks location information for error reporting and tooling.
// Offset counts characters from the start of the source.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// RuleID is a handle into File.All. The zero RuleID means "no rule".
type RuleID int

// File represents a whole OSS source unit
// Example: "class=User { field=name { visible: true; } } class=Order;"
type File struct {
	Pos    Position
	EndPos Position
	Rules  []*Rule // top-level rules in source order
	All    []*Rule // every rule, nested ones included, indexed by RuleID-1
}

// Rule represents selectors with optional traits and an optional body
// Example: "class=User field=name #bold { visible: true; }", "class field;"
type Rule struct {
	Pos       Position
	EndPos    Position
	ID        RuleID
	Parent    RuleID // enclosing rule, 0 at top level; not an ownership link
	Selectors []*Selector
	Traits    []*Trait  // nil when the rule has no trait list
	Body      *RuleBody // nil when the rule ends with ';'
}

// Selector represents one key/value condition of a rule
// Example: "class=User", "field", "@field=total", "~editable", "operation=(view, edit)"
type Selector struct {
	Pos           Position
	EndPos        Position
	Key           *Key
	Value         Value // the wildcard literal when no value is written; nil with a null marker
	IsDeclaration bool  // written with a leading '@'
	HasNullMarker bool  // written with a leading '~'
}

// KeyKind records how a key was spelled.
type KeyKind int

const (
	IdentifierKey KeyKind = iota
	KeywordKey
	StringKey
	KeyPathKey
	WildcardKey
)

// Key represents a selector, property, map or precedence chain key
// Example: "class", "myProperty", "'quoted key'", "object.name", "*"
type Key struct {
	Pos    Position
	EndPos Position
	Name   string // quotes removed for string keys
	Kind   KeyKind
}

// Trait represents one tag of a '#' trait list
// Example: "bold" in "field=name #bold,required;"
type Trait struct {
	Pos    Position
	EndPos Position
	Name   string
}

// RuleBody represents the braced block of a rule
// Example: "{ visible: true; field=name { label: 'Name'; } zLeft => name => age; }"
type RuleBody struct {
	Pos        Position
	EndPos     Position
	Statements []Statement       // nil for an empty body
	Chain      *PrecedenceChain // trailing precedence chain, if any
}

// KeyValue represents a property assignment inside a rule body
// Example: "visible: true;", "editable: false!;", "label: $[a001]'Name';"
type KeyValue struct {
	Pos        Position
	EndPos     Position
	Key        *Key
	Value      Value
	IsOverride bool // written with a trailing '!'
}

// PrecedenceChain represents an ordering of placements
// Example: "zLeft => firstName => lastName#bold => *;"
type PrecedenceChain struct {
	Pos    Position
	EndPos Position
	Nodes  []*PrecedenceChainNode // at least two
}

// PrecedenceChainNode represents one placement of a precedence chain
// Example: "firstName", "lastName#bold", "zLeft", "object.name", "*"
type PrecedenceChainNode struct {
	Pos    Position
	EndPos Position
	Key    *Key
	Traits []*Trait
}

// Rule returns the rule with the given handle, or nil.
func (f *File) Rule(id RuleID) *Rule {
	if id <= 0 || int(id) > len(f.All) {
		return nil
	}
	return f.All[id-1]
}

// ParentOf returns the rule lexically enclosing r, or nil for a top-level
// rule.
func (f *File) ParentOf(r *Rule) *Rule {
	if r == nil {
		return nil
	}
	return f.Rule(r.Parent)
}

// Properties returns the key/value statements of the rule body in order.
func (r *Rule) Properties() []*KeyValue {
	if r.Body == nil {
		return nil
	}
	var props []*KeyValue
	for _, stmt := range r.Body.Statements {
		if kv, ok := stmt.(*KeyValue); ok {
			props = append(props, kv)
		}
	}
	return props
}

// Children returns the rules nested directly in the rule body.
func (r *Rule) Children() []*Rule {
	if r.Body == nil {
		return nil
	}
	var rules []*Rule
	for _, stmt := range r.Body.Statements {
		if child, ok := stmt.(*Rule); ok {
			rules = append(rules, child)
		}
	}
	return rules
}
