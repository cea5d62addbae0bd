package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"oss/internal/ast"
)

// documentSymbols outlines file as a tree of rules. Properties and the
// precedence chain of a rule appear as its children. source is the text file
// was parsed from.
func documentSymbols(file *ast.File, source string) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	if file == nil {
		return symbols
	}

	idx := newLineIndex(source)
	for _, rule := range file.Rules {
		symbols = append(symbols, ruleSymbol(idx, rule))
	}
	return symbols
}

func ruleSymbol(idx lineIndex, rule *ast.Rule) protocol.DocumentSymbol {
	names := make([]string, len(rule.Selectors))
	for i, sel := range rule.Selectors {
		names[i] = sel.String()
	}

	symbol := protocol.DocumentSymbol{
		Name:           strings.Join(names, " "),
		Kind:           ruleKind(rule),
		Range:          idx.span(rule.Pos, rule.EndPos),
		SelectionRange: idx.span(rule.Selectors[0].Pos, rule.Selectors[len(rule.Selectors)-1].EndPos),
	}

	if len(rule.Traits) > 0 {
		traits := make([]string, len(rule.Traits))
		for i, trait := range rule.Traits {
			traits[i] = trait.Name
		}
		symbol.Detail = ptrString("#" + strings.Join(traits, ","))
	}

	if rule.Body == nil {
		return symbol
	}

	for _, stmt := range rule.Body.Statements {
		switch s := stmt.(type) {
		case *ast.KeyValue:
			symbol.Children = append(symbol.Children, protocol.DocumentSymbol{
				Name:           s.Key.Name,
				Detail:         ptrString(s.Value.String()),
				Kind:           protocol.SymbolKindProperty,
				Range:          idx.span(s.Pos, s.EndPos),
				SelectionRange: idx.span(s.Key.Pos, s.Key.EndPos),
			})
		case *ast.Rule:
			symbol.Children = append(symbol.Children, ruleSymbol(idx, s))
		}
	}

	if chain := rule.Body.Chain; chain != nil {
		symbol.Children = append(symbol.Children, protocol.DocumentSymbol{
			Name:           "precedence",
			Detail:         ptrString(chain.String()),
			Kind:           protocol.SymbolKindEnum,
			Range:          idx.span(chain.Pos, chain.EndPos),
			SelectionRange: idx.span(chain.Pos, chain.Nodes[0].EndPos),
		})
	}

	return symbol
}

// ruleKind picks an outline icon from the first selector of the rule
func ruleKind(rule *ast.Rule) protocol.SymbolKind {
	switch rule.Selectors[0].Key.Name {
	case "class":
		return protocol.SymbolKindClass
	case "field":
		return protocol.SymbolKindField
	case "object":
		return protocol.SymbolKindObject
	case "module", "layout":
		return protocol.SymbolKindModule
	case "action", "actionCategory", "operation":
		return protocol.SymbolKindEvent
	}
	return protocol.SymbolKindKey
}
