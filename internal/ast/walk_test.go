package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile() *File {
	child := &Rule{
		ID:        2,
		Parent:    1,
		Selectors: []*Selector{{Key: key("field", KeywordKey), Value: ident("name")}},
		Traits:    []*Trait{{Name: "bold"}},
	}
	parent := &Rule{
		ID:        1,
		Selectors: []*Selector{{Key: key("class", KeywordKey), Value: ident("User")}},
		Body: &RuleBody{
			Statements: []Statement{
				&KeyValue{Key: key("visible", KeywordKey), Value: &Map{Entries: []*MapEntry{
					{Key: key("a", IdentifierKey), Value: &WrappedList{Items: []Value{ident("x")}}},
				}}},
				child,
			},
			Chain: &PrecedenceChain{Nodes: []*PrecedenceChainNode{
				{Key: key("a", IdentifierKey)},
				{Key: key("b", IdentifierKey), Traits: []*Trait{{Name: "t"}}},
			}},
		},
	}
	return &File{Rules: []*Rule{parent}, All: []*Rule{parent, child}}
}

func TestWalkVisitsInSourceOrder(t *testing.T) {
	var types []NodeType
	Walk(sampleFile(), func(n Node) bool {
		types = append(types, n.NodeType())
		return true
	})

	expected := []NodeType{
		FILE, RULE, SELECTOR, KEY, SIMPLE_VALUE, RULE_BODY,
		KEY_VALUE, KEY, MAP_VALUE, MAP_ENTRY, KEY, WRAPPED_LIST, SIMPLE_VALUE,
		RULE, SELECTOR, KEY, SIMPLE_VALUE, TRAIT,
		PRECEDENCE_CHAIN, PRECEDENCE_CHAIN_NODE, KEY, PRECEDENCE_CHAIN_NODE, KEY, TRAIT,
	}
	assert.Equal(t, expected, types)
}

func TestWalkPrunesBranches(t *testing.T) {
	count := 0
	Walk(sampleFile(), func(n Node) bool {
		count++
		_, isBody := n.(*RuleBody)
		return !isBody
	})

	// file, rule, selector, key, value, body
	assert.Equal(t, 6, count)
}

func TestInspect(t *testing.T) {
	traits := Inspect[*Trait](sampleFile())
	require.Len(t, traits, 2)
	assert.Equal(t, "bold", traits[0].Name)
	assert.Equal(t, "t", traits[1].Name)

	assert.Len(t, Inspect[*Rule](sampleFile()), 2)
}

func TestRuleArena(t *testing.T) {
	f := sampleFile()
	child := f.All[1]

	assert.Same(t, f.All[0], f.Rule(1))
	assert.Same(t, f.All[0], f.ParentOf(child))
	assert.Nil(t, f.ParentOf(f.All[0]))
	assert.Nil(t, f.Rule(0))
	assert.Nil(t, f.Rule(3))
	assert.Nil(t, f.ParentOf(nil))
}

func TestRuleAccessors(t *testing.T) {
	f := sampleFile()
	parent := f.Rules[0]

	props := parent.Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "visible", props[0].Key.Name)

	children := parent.Children()
	require.Len(t, children, 1)
	assert.Same(t, f.All[1], children[0])

	assert.Nil(t, children[0].Properties())
	assert.Nil(t, children[0].Children())
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "PRECEDENCE_CHAIN_NODE", PRECEDENCE_CHAIN_NODE.String())
	assert.Equal(t, "FILE", FILE.String())
	assert.Equal(t, "NodeType(?)", NodeType(999).String())
}
