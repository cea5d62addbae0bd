package parser

import (
	"oss/internal/ast"
	"oss/internal/lexer"
)

// parseRule parses selectors, an optional trait list and then either a body
// or ';'. The rule takes its arena slot before its children so that IDs
// follow source order.
func (p *Parser) parseRule(parent ast.RuleID) (*ast.Rule, error) {
	rule := &ast.Rule{
		Pos:    p.pos(p.current),
		Parent: parent,
	}
	p.rules = append(p.rules, rule)
	rule.ID = ast.RuleID(len(p.rules))

	for {
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		if sel == nil {
			break
		}
		rule.Selectors = append(rule.Selectors, sel)
	}
	if len(rule.Selectors) == 0 {
		return nil, p.errorAtCurrent(NoSelectors, "selector", "no selectors found")
	}

	if p.check(lexer.POUND) {
		traits, _, err := p.parseTraits()
		if err != nil {
			return nil, err
		}
		rule.Traits = traits
	}

	if p.check(lexer.LEFT_BRACE) {
		body, err := p.parseBody(rule.ID)
		if err != nil {
			return nil, err
		}
		rule.Body = body
		rule.EndPos = body.EndPos
		return rule, nil
	}

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	rule.EndPos = p.end(semi)
	return rule, nil
}

// parseSelector returns nil without error when the current token cannot
// start a selector; that ends the selector list of a rule.
func (p *Parser) parseSelector() (*ast.Selector, error) {
	if !p.check(lexer.AT) && !p.check(lexer.TILDE) && !lexer.IsKeyKind(p.current.Type) {
		return nil, nil
	}

	sel := &ast.Selector{Pos: p.pos(p.current)}

	if p.check(lexer.AT) {
		sel.IsDeclaration = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if p.check(lexer.TILDE) {
		sel.HasNullMarker = true
		if err := p.advance(); err != nil {
			return nil, err
		}
		key, err := p.parseSelectorKey()
		if err != nil {
			return nil, err
		}
		sel.Key = key
		sel.EndPos = key.EndPos
		return sel, nil
	}

	key, err := p.parseSelectorKey()
	if err != nil {
		return nil, err
	}
	sel.Key = key

	ok, err := p.match(lexer.EQUAL)
	if err != nil {
		return nil, err
	}
	if !ok {
		sel.Value = ast.Wildcard(key.EndPos)
		sel.EndPos = key.EndPos
		return sel, nil
	}

	value, err := p.parseSelectorValue()
	if err != nil {
		return nil, err
	}
	sel.Value = value
	sel.EndPos = value.NodeEndPos()
	return sel, nil
}

func (p *Parser) parseSelectorKey() (*ast.Key, error) {
	if !lexer.IsKeyKind(p.current.Type) {
		return nil, p.unexpected("selector key")
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.makeKey(tok), nil
}

// parseSelectorValue parses a simple value or a parenthesized list of them.
func (p *Parser) parseSelectorValue() (ast.Value, error) {
	if p.check(lexer.LEFT_PAREN) {
		return p.parseParenList()
	}
	if isSimpleStart(p.current.Type) {
		return p.parseSimple()
	}
	return nil, p.unexpected("selector value")
}

// parseTraits parses the trait list after '#'. Commas and trait names are
// consumed in any order until another token appears, so "#a,,b" yields a and
// b, and a bare "#" yields no traits at all. end is the end of the last
// token consumed.
func (p *Parser) parseTraits() (traits []*ast.Trait, end ast.Position, err error) {
	pound, err := p.expect(lexer.POUND)
	if err != nil {
		return nil, end, err
	}
	end = p.end(pound)

	for {
		tok := p.current
		switch {
		case tok.Type == lexer.COMMA:
		case lexer.IsTraitName(tok.Type):
			traits = append(traits, &ast.Trait{
				Pos:    p.pos(tok),
				EndPos: p.end(tok),
				Name:   tok.Lexeme,
			})
		default:
			return traits, end, nil
		}
		if err := p.advance(); err != nil {
			return nil, end, err
		}
		end = p.end(tok)
	}
}
