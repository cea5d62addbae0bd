package ast

import (
	"fmt"
	"strings"
)

// The printer writes the canonical form of a tree. Parsing the output of
// String again yields the same tree, positions aside.

func (f *File) String() string {
	var b strings.Builder
	for i, rule := range f.Rules {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rule.String())
	}
	return b.String()
}

func (r *Rule) String() string {
	var b strings.Builder

	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sel.String())
	}
	if len(r.Traits) > 0 {
		b.WriteString(" ")
		b.WriteString(traitList(r.Traits))
	}

	if r.Body == nil {
		b.WriteString(";")
		return b.String()
	}

	b.WriteString(" ")
	b.WriteString(r.Body.String())
	return b.String()
}

func (s *Selector) String() string {
	var b strings.Builder
	if s.IsDeclaration {
		b.WriteString("@")
	}
	if s.HasNullMarker {
		b.WriteString("~")
		b.WriteString(s.Key.String())
		return b.String()
	}
	b.WriteString(s.Key.String())
	if s.Value != nil && !IsWildcard(s.Value) {
		b.WriteString("=")
		b.WriteString(s.Value.String())
	}
	return b.String()
}

func (k *Key) String() string {
	switch k.Kind {
	case StringKey:
		return quote(k.Name)
	case WildcardKey:
		return "*"
	default:
		return k.Name
	}
}

func (t *Trait) String() string {
	return t.Name
}

func (rb *RuleBody) String() string {
	if len(rb.Statements) == 0 && rb.Chain == nil {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, stmt := range rb.Statements {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	if rb.Chain != nil {
		b.WriteString("  " + rb.Chain.String() + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (kv *KeyValue) String() string {
	var b strings.Builder
	b.WriteString(kv.Key.String())
	b.WriteString(": ")
	b.WriteString(kv.Value.String())
	if kv.IsOverride {
		b.WriteString("!")
	}
	b.WriteString(";")
	return b.String()
}

func (pc *PrecedenceChain) String() string {
	nodes := make([]string, len(pc.Nodes))
	for i, n := range pc.Nodes {
		nodes[i] = n.String()
	}
	return strings.Join(nodes, " => ") + ";"
}

func (pn *PrecedenceChainNode) String() string {
	if len(pn.Traits) == 0 {
		return pn.Key.String()
	}
	return pn.Key.String() + traitList(pn.Traits)
}

func (s *Simple) String() string {
	if s.Kind == StringLiteral {
		return quote(s.Text)
	}
	return s.Text
}

func (vl *ValueList) String() string {
	return "(" + joinValues(vl.Items) + ")"
}

func (wl *WrappedList) String() string {
	return "[" + joinValues(wl.Items) + "]"
}

func (m *Map) String() string {
	if len(m.Entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for _, entry := range m.Entries {
		b.WriteString(entry.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

func (me *MapEntry) String() string {
	return fmt.Sprintf("%s: %s;", me.Key, me.Value)
}

func (b *Binding) String() string {
	return "$" + b.Path
}

func (ls *LocalizedString) String() string {
	return fmt.Sprintf("$[%s]%s", ls.Key, quote(ls.Default))
}

func (e *Expression) String() string {
	if e.Static {
		return "$${" + e.Text + "}"
	}
	return "${" + e.Text + "}"
}

func traitList(traits []*Trait) string {
	names := make([]string, len(traits))
	for i, t := range traits {
		names[i] = t.Name
	}
	return "#" + strings.Join(names, ",")
}

func joinValues(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// quote picks the quote character the literal does not contain. OSS strings
// have no escapes.
func quote(s string) string {
	if strings.ContainsRune(s, '\'') {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}
