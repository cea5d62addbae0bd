package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (f *File) String() string {
	var b strings.Builder
	for _, r := range f.Rules {
		b.WriteString(r.StringWithIndent(0))
	}
	return b.String()
}

func (r *Rule) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(indent(level))
	for i, s := range r.Selectors {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.String())
	}
	if len(r.Traits) > 0 {
		b.WriteString(" " + traitList(r.Traits))
	}
	if r.Body == nil {
		b.WriteString(";\n")
		return b.String()
	}
	b.WriteString(" " + r.Body.StringWithIndent(level))
	return b.String()
}

func (s *Selector) String() string {
	prefix := ""
	if s.Declaration {
		prefix = "@"
	}
	if s.Null != nil {
		return prefix + "~" + *s.Null
	}
	if s.Value == nil {
		return prefix + *s.Key
	}
	return fmt.Sprintf("%s%s=%s", prefix, *s.Key, s.Value.String())
}

func (v *SelectorValue) String() string {
	if v.Simple != nil {
		return v.Simple.Value
	}
	return "(" + simpleList(v.List) + ")"
}

func traitList(traits []*Trait) string {
	names := make([]string, len(traits))
	for i, t := range traits {
		names[i] = t.Name
	}
	return "#" + strings.Join(names, ",")
}

func (b *Body) StringWithIndent(level int) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		if s.Property != nil {
			sb.WriteString(indent(level+1) + s.Property.String() + ";\n")
			continue
		}
		sb.WriteString(s.Rule.StringWithIndent(level + 1))
	}
	if b.Last != nil {
		sb.WriteString(indent(level+1) + b.Last.String() + ";\n")
	}
	if b.Chain != nil {
		sb.WriteString(indent(level+1) + b.Chain.String() + "\n")
	}
	sb.WriteString(indent(level) + "}\n")
	return sb.String()
}

func (p *Property) String() string {
	s := fmt.Sprintf("%s: %s", p.Key, p.Value.String())
	if p.Override {
		s += "!"
	}
	return s
}

func (v *Value) String() string {
	if v.Compound != nil {
		return v.Compound.String()
	}
	return simpleList(v.Simples)
}

func (c *Compound) String() string {
	switch {
	case c.Map != nil:
		return c.Map.String()
	case c.List != nil:
		return c.List.String()
	case c.Paren != nil:
		return "(" + simpleList(c.Paren.Items) + ")"
	case c.Localized != nil:
		return c.Localized.Key + " " + c.Localized.Default
	case c.Binding != nil:
		return *c.Binding
	case c.Expression != nil:
		return *c.Expression
	}
	return ""
}

func (m *Map) String() string {
	entries := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		entries[i] = fmt.Sprintf("%s: %s;", e.Key, e.Value.String())
	}
	if len(entries) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(entries, " ") + " }"
}

func (l *WrappedList) String() string {
	items := make([]string, len(l.Items))
	for i, item := range l.Items {
		if item.Compound != nil {
			items[i] = item.Compound.String()
		} else {
			items[i] = item.Simple.Value
		}
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func simpleList(values []*Simple) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Value
	}
	return strings.Join(parts, ", ")
}

func (c *Chain) String() string {
	nodes := make([]string, len(c.Nodes))
	for i, n := range c.Nodes {
		nodes[i] = n.Key
		if len(n.Traits) > 0 {
			nodes[i] += traitList(n.Traits)
		}
	}
	return strings.Join(nodes, " => ") + ";"
}
