package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func key(name string, kind KeyKind) *Key {
	return &Key{Name: name, Kind: kind}
}

func ident(text string) *Simple {
	return &Simple{Kind: IdentifierLiteral, Text: text}
}

func TestRuleWithoutBodyString(t *testing.T) {
	rule := &Rule{
		Selectors: []*Selector{
			{Key: key("class", KeywordKey), Value: ident("User")},
		},
	}

	assert.Equal(t, "class=User;", rule.String())
}

func TestWildcardSelectorsPrintAsBareKeys(t *testing.T) {
	rule := &Rule{
		Selectors: []*Selector{
			{Key: key("class", KeywordKey), Value: Wildcard(Position{})},
			{Key: key("field", KeywordKey), Value: Wildcard(Position{})},
		},
	}

	assert.Equal(t, "class field;", rule.String())
}

func TestSelectorMarkers(t *testing.T) {
	decl := &Selector{Key: key("field", KeywordKey), Value: ident("total"), IsDeclaration: true}
	null := &Selector{Key: key("editable", KeywordKey), HasNullMarker: true}
	list := &Selector{
		Key: key("operation", KeywordKey),
		Value: &ValueList{Items: []Value{
			ident("view"),
			ident("edit"),
		}},
	}

	assert.Equal(t, "@field=total", decl.String())
	assert.Equal(t, "~editable", null.String())
	assert.Equal(t, "operation=(view, edit)", list.String())
}

func TestTraitsString(t *testing.T) {
	rule := &Rule{
		Selectors: []*Selector{{Key: key("class", KeywordKey), Value: ident("test")}},
		Traits:    []*Trait{{Name: "required"}, {Name: "bold"}},
	}

	assert.Equal(t, "class=test #required,bold;", rule.String())
}

func TestRuleBodyString(t *testing.T) {
	nested := &Rule{
		Selectors: []*Selector{{Key: key("field", KeywordKey), Value: ident("name")}},
		Body: &RuleBody{Statements: []Statement{
			&KeyValue{Key: key("editable", KeywordKey), Value: &Simple{Kind: BooleanLiteral, Text: "false"}, IsOverride: true},
		}},
	}
	rule := &Rule{
		Selectors: []*Selector{{Key: key("class", KeywordKey), Value: ident("User")}},
		Body: &RuleBody{
			Statements: []Statement{
				&KeyValue{Key: key("label", KeywordKey), Value: &Simple{Kind: StringLiteral, Text: "User"}},
				nested,
			},
			Chain: &PrecedenceChain{Nodes: []*PrecedenceChainNode{
				{Key: key("zLeft", KeywordKey)},
				{Key: key("name", IdentifierKey), Traits: []*Trait{{Name: "bold"}}},
				{Key: key("*", WildcardKey)},
			}},
		},
	}

	expected := "class=User {\n" +
		"  label: 'User';\n" +
		"  field=name {\n" +
		"    editable: false!;\n" +
		"  }\n" +
		"  zLeft => name#bold => *;\n" +
		"}"
	assert.Equal(t, expected, rule.String())
}

func TestEmptyBodyString(t *testing.T) {
	rule := &Rule{
		Selectors: []*Selector{{Key: key("layout", KeywordKey), Value: Wildcard(Position{})}},
		Body:      &RuleBody{},
	}

	assert.Equal(t, "layout {}", rule.String())
}

func TestValueStrings(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"string", &Simple{Kind: StringLiteral, Text: "Name"}, "'Name'"},
		{"string with apostrophe", &Simple{Kind: StringLiteral, Text: "it's"}, `"it's"`},
		{"int", &Simple{Kind: IntLiteral, Text: "42"}, "42"},
		{"key path", &Simple{Kind: KeyPathLiteral, Text: "object.name"}, "object.name"},
		{"binding", &Binding{Path: "object.firstName"}, "$object.firstName"},
		{"localized", &LocalizedString{Key: "a001", Default: "First Name"}, "$[a001]'First Name'"},
		{"expression", &Expression{Text: "object.age > 18"}, "${object.age > 18}"},
		{"static expression", &Expression{Text: "currentUser", Static: true}, "$${currentUser}"},
		{"empty wrapped list", &WrappedList{}, "[]"},
		{"wrapped list", &WrappedList{Items: []Value{
			&Simple{Kind: IntLiteral, Text: "1"},
			&WrappedList{Items: []Value{ident("a")}},
		}}, "[1, [a]]"},
		{"empty map", &Map{}, "{}"},
		{"map", &Map{Entries: []*MapEntry{
			{Key: key("label", KeywordKey), Value: &Simple{Kind: StringLiteral, Text: "Name"}},
			{Key: key("size", StringKey), Value: &Simple{Kind: IntLiteral, Text: "3"}},
		}}, "{ label: 'Name'; 'size': 3; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestFileString(t *testing.T) {
	file := &File{Rules: []*Rule{
		{Selectors: []*Selector{{Key: key("class", KeywordKey), Value: ident("User")}}},
		{Selectors: []*Selector{{Key: key("class", KeywordKey), Value: ident("Order")}}},
	}}

	assert.Equal(t, "class=User;\nclass=Order;", file.String())
}

func TestValueKinds(t *testing.T) {
	assert.Equal(t, SimpleValue, (&Simple{}).ValueKind())
	assert.Equal(t, ListValue, (&ValueList{}).ValueKind())
	assert.Equal(t, WrappedListValue, (&WrappedList{}).ValueKind())
	assert.Equal(t, MapValue, (&Map{}).ValueKind())
	assert.Equal(t, BindingValue, (&Binding{}).ValueKind())
	assert.Equal(t, LocalizedStringValue, (&LocalizedString{}).ValueKind())
	assert.Equal(t, ExpressionValue, (&Expression{}).ValueKind())
	assert.Equal(t, "localized string", LocalizedStringValue.String())
	assert.Equal(t, "key path", KeyPathLiteral.String())
}

func TestIsWildcard(t *testing.T) {
	assert.True(t, IsWildcard(Wildcard(Position{Offset: 5})))
	assert.False(t, IsWildcard(ident("x")))
	assert.False(t, IsWildcard(&ValueList{}))
}
