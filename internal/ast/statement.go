package ast

// Statement is one entry of a rule body: a *KeyValue or a nested *Rule.
type Statement interface {
	Node
	isStatement()
}

func (*KeyValue) isStatement() {}
func (*Rule) isStatement()     {}
