package parser

import (
	"oss/internal/ast"
	"oss/internal/lexer"
)

// parseValue parses any value. With bareList set, a simple value followed
// by ',' starts an unparenthesized ValueList, as in "visible: a, b;". Inside
// wrapped lists the comma separates items instead.
func (p *Parser) parseValue(bareList bool) (ast.Value, error) {
	switch p.current.Type {
	case lexer.LEFT_BRACE:
		return p.parseMap()
	case lexer.LEFT_BRACKET:
		return p.parseWrappedList()
	case lexer.LEFT_PAREN:
		return p.parseParenList()
	case lexer.LOCALIZATION_KEY:
		return p.parseLocalizedString()
	case lexer.FIELD_PATH:
		tok := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Binding{Pos: p.pos(tok), EndPos: p.end(tok), Path: tok.Text()}, nil
	case lexer.EXPRESSION:
		tok := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Expression{Pos: p.pos(tok), EndPos: p.end(tok), Text: tok.Text()}, nil
	}

	if !isSimpleStart(p.current.Type) {
		return nil, p.unexpected("value")
	}

	first, err := p.parseSimple()
	if err != nil {
		return nil, err
	}
	if !bareList || !p.check(lexer.COMMA) {
		return first, nil
	}

	list := &ast.ValueList{Pos: first.NodePos(), Items: []ast.Value{first}}
	for p.check(lexer.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		item, err := p.parseSimple()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	list.EndPos = list.Items[len(list.Items)-1].NodeEndPos()
	return list, nil
}

// parseParenList parses "( simple {, simple} )".
func (p *Parser) parseParenList() (*ast.ValueList, error) {
	open, err := p.expect(lexer.LEFT_PAREN)
	if err != nil {
		return nil, err
	}
	list := &ast.ValueList{Pos: p.pos(open)}

	for {
		item, err := p.parseSimple()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)

		ok, err := p.match(lexer.COMMA)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	closing, err := p.expect(lexer.RIGHT_PAREN)
	if err != nil {
		return nil, err
	}
	list.EndPos = p.end(closing)
	return list, nil
}

// parseWrappedList parses "[ value {, value} ]" or "[]".
func (p *Parser) parseWrappedList() (*ast.WrappedList, error) {
	open, err := p.expect(lexer.LEFT_BRACKET)
	if err != nil {
		return nil, err
	}
	list := &ast.WrappedList{Pos: p.pos(open)}

	for !p.check(lexer.RIGHT_BRACKET) {
		item, err := p.parseValue(false)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)

		ok, err := p.match(lexer.COMMA)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	closing, err := p.expect(lexer.RIGHT_BRACKET)
	if err != nil {
		return nil, err
	}
	list.EndPos = p.end(closing)
	return list, nil
}

// parseMap parses "{ key: value; ... }". The last ';' may be omitted.
func (p *Parser) parseMap() (*ast.Map, error) {
	open, err := p.expect(lexer.LEFT_BRACE)
	if err != nil {
		return nil, err
	}
	m := &ast.Map{Pos: p.pos(open)}

	for !p.check(lexer.RIGHT_BRACE) {
		key, err := p.parsePropertyKey()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		end, err := p.terminator()
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, &ast.MapEntry{
			Pos:    key.Pos,
			EndPos: end,
			Key:    key,
			Value:  value,
		})
	}

	closing, err := p.expect(lexer.RIGHT_BRACE)
	if err != nil {
		return nil, err
	}
	m.EndPos = p.end(closing)
	return m, nil
}

// parseLocalizedString parses "$[key]" followed by its default string.
func (p *Parser) parseLocalizedString() (*ast.LocalizedString, error) {
	keyTok, err := p.expect(lexer.LOCALIZATION_KEY)
	if err != nil {
		return nil, err
	}
	def, err := p.expect(lexer.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.LocalizedString{
		Pos:     p.pos(keyTok),
		EndPos:  p.end(def),
		Key:     keyTok.Text(),
		Default: def.Text(),
	}, nil
}

// parseSimple parses one literal token. A static expression in simple
// position becomes an Expression node.
func (p *Parser) parseSimple() (ast.Value, error) {
	tok := p.current
	if !isSimpleStart(tok.Type) {
		return nil, p.unexpected("simple value")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if tok.Type == lexer.STATIC_EXPRESSION {
		return &ast.Expression{Pos: p.pos(tok), EndPos: p.end(tok), Text: tok.Text(), Static: true}, nil
	}

	value := &ast.Simple{
		Pos:    p.pos(tok),
		EndPos: p.end(tok),
		Kind:   literalKind(tok.Type),
		Text:   tok.Text(),
	}
	return value, nil
}

func isSimpleStart(tt lexer.TokenType) bool {
	return tt == lexer.STAR || lexer.IsSimpleValueKind(tt)
}

func literalKind(tt lexer.TokenType) ast.LiteralKind {
	switch tt {
	case lexer.IDENTIFIER:
		return ast.IdentifierLiteral
	case lexer.KEY_PATH:
		return ast.KeyPathLiteral
	case lexer.INT:
		return ast.IntLiteral
	case lexer.FLOAT:
		return ast.FloatLiteral
	case lexer.STRING:
		return ast.StringLiteral
	case lexer.BOOLEAN:
		return ast.BooleanLiteral
	case lexer.NULL:
		return ast.NullLiteral
	case lexer.STAR:
		return ast.WildcardLiteral
	default:
		return ast.KeywordLiteral
	}
}
