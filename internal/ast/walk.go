package ast

// Walk traverses the AST starting from node, calling fn for each node in
// source order. If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, rule := range n.Rules {
			Walk(rule, fn)
		}

	case *Rule:
		for _, sel := range n.Selectors {
			Walk(sel, fn)
		}
		for _, trait := range n.Traits {
			Walk(trait, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *Selector:
		if n.Key != nil {
			Walk(n.Key, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *RuleBody:
		for _, stmt := range n.Statements {
			Walk(stmt, fn)
		}
		if n.Chain != nil {
			Walk(n.Chain, fn)
		}

	case *KeyValue:
		if n.Key != nil {
			Walk(n.Key, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *PrecedenceChain:
		for _, cn := range n.Nodes {
			Walk(cn, fn)
		}

	case *PrecedenceChainNode:
		if n.Key != nil {
			Walk(n.Key, fn)
		}
		for _, trait := range n.Traits {
			Walk(trait, fn)
		}

	case *ValueList:
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *WrappedList:
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *Map:
		for _, entry := range n.Entries {
			Walk(entry, fn)
		}

	case *MapEntry:
		if n.Key != nil {
			Walk(n.Key, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	// Leaf nodes: Key, Trait, Simple, Binding, LocalizedString, Expression
	}
}

// Inspect collects every node of type T at or below root, in the order Walk
// visits them.
func Inspect[T Node](root Node) []T {
	var found []T
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			found = append(found, t)
		}
		return true
	})
	return found
}
