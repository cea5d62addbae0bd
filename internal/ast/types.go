package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Structure
	FILE
	RULE
	SELECTOR
	TRAIT
	KEY

	// Rule bodies
	RULE_BODY
	KEY_VALUE
	PRECEDENCE_CHAIN
	PRECEDENCE_CHAIN_NODE

	// Values
	SIMPLE_VALUE
	VALUE_LIST
	WRAPPED_LIST
	MAP_VALUE
	MAP_ENTRY
	BINDING
	LOCALIZED_STRING
	EXPRESSION
)

var nodeTypeNames = [...]string{
	ILLEGAL:               "ILLEGAL",
	FILE:                  "FILE",
	RULE:                  "RULE",
	SELECTOR:              "SELECTOR",
	TRAIT:                 "TRAIT",
	KEY:                   "KEY",
	RULE_BODY:             "RULE_BODY",
	KEY_VALUE:             "KEY_VALUE",
	PRECEDENCE_CHAIN:      "PRECEDENCE_CHAIN",
	PRECEDENCE_CHAIN_NODE: "PRECEDENCE_CHAIN_NODE",
	SIMPLE_VALUE:          "SIMPLE_VALUE",
	VALUE_LIST:            "VALUE_LIST",
	WRAPPED_LIST:          "WRAPPED_LIST",
	MAP_VALUE:             "MAP_VALUE",
	MAP_ENTRY:             "MAP_ENTRY",
	BINDING:               "BINDING",
	LOCALIZED_STRING:      "LOCALIZED_STRING",
	EXPRESSION:            "EXPRESSION",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "NodeType(?)"
	}
	return nodeTypeNames[t]
}
