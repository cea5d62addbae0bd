package parser

import (
	"oss/internal/ast"
	"oss/internal/lexer"
)

type statementKind int

const (
	propertyStatement statementKind = iota
	chainStatement
	ruleStatement
)

// parseBody parses "{ statements }". A precedence chain may only be the
// last construct before '}'.
func (p *Parser) parseBody(owner ast.RuleID) (*ast.RuleBody, error) {
	open, err := p.expect(lexer.LEFT_BRACE)
	if err != nil {
		return nil, err
	}
	body := &ast.RuleBody{Pos: p.pos(open)}

	for !p.check(lexer.RIGHT_BRACE) && !p.check(lexer.EOF) {
		if body.Chain != nil {
			return nil, p.errorAtCurrent(MisplacedChain, lexer.RIGHT_BRACE.String(),
				"precedence chain must be the last statement of a rule body")
		}

		kind, err := p.classifyStatement()
		if err != nil {
			return nil, err
		}

		switch kind {
		case propertyStatement:
			kv, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			body.Statements = append(body.Statements, kv)
		case chainStatement:
			chain, err := p.parseChain()
			if err != nil {
				return nil, err
			}
			body.Chain = chain
		default:
			rule, err := p.parseRule(owner)
			if err != nil {
				return nil, err
			}
			body.Statements = append(body.Statements, rule)
		}
	}

	closing, err := p.expect(lexer.RIGHT_BRACE)
	if err != nil {
		return nil, err
	}
	body.EndPos = p.end(closing)
	return body, nil
}

// classifyStatement looks at the current token and the one after it to
// decide between a property, a precedence chain and a nested rule.
func (p *Parser) classifyStatement() (statementKind, error) {
	cur := p.current.Type
	next, err := p.peek()
	if err != nil {
		return 0, err
	}

	if (lexer.IsKeyKind(cur) || cur == lexer.STRING) && next.Type == lexer.COLON {
		return propertyStatement, nil
	}
	if lexer.IsChainKeyKind(cur) {
		if next.Type == lexer.NEXT {
			return chainStatement, nil
		}
		if next.Type == lexer.POUND && p.chainAhead() {
			return chainStatement, nil
		}
	}
	return ruleStatement, nil
}

// parseProperty parses "key: value[!];". The ';' may be left out before the
// closing '}'.
func (p *Parser) parseProperty() (*ast.KeyValue, error) {
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

	kv := &ast.KeyValue{Pos: key.Pos, Key: key, Value: value}

	kv.IsOverride, err = p.match(lexer.BANG)
	if err != nil {
		return nil, err
	}

	end, err := p.terminator()
	if err != nil {
		return nil, err
	}
	kv.EndPos = end
	return kv, nil
}

func (p *Parser) parsePropertyKey() (*ast.Key, error) {
	if !lexer.IsKeyKind(p.current.Type) && !p.check(lexer.STRING) {
		return nil, p.unexpected("property key")
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.makeKey(tok), nil
}

// terminator consumes ';' and returns the end of the statement. Before '}'
// the ';' is optional and the statement ends with the previous token.
func (p *Parser) terminator() (ast.Position, error) {
	if p.check(lexer.RIGHT_BRACE) {
		return p.end(p.previous), nil
	}
	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return ast.Position{}, err
	}
	return p.end(semi), nil
}

// parseChain parses "node => node {=> node};".
func (p *Parser) parseChain() (*ast.PrecedenceChain, error) {
	first, err := p.parseChainNode()
	if err != nil {
		return nil, err
	}
	chain := &ast.PrecedenceChain{
		Pos:   first.Pos,
		Nodes: []*ast.PrecedenceChainNode{first},
	}

	if _, err := p.expect(lexer.NEXT); err != nil {
		return nil, err
	}
	for {
		node, err := p.parseChainNode()
		if err != nil {
			return nil, err
		}
		chain.Nodes = append(chain.Nodes, node)

		ok, err := p.match(lexer.NEXT)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	semi, err := p.expect(lexer.SEMICOLON)
	if err != nil {
		return nil, err
	}
	chain.EndPos = p.end(semi)
	return chain, nil
}

func (p *Parser) parseChainNode() (*ast.PrecedenceChainNode, error) {
	if !lexer.IsChainKeyKind(p.current.Type) {
		return nil, p.unexpected("precedence chain key")
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	key := p.makeKey(tok)
	node := &ast.PrecedenceChainNode{Pos: key.Pos, EndPos: key.EndPos, Key: key}

	if p.check(lexer.POUND) {
		traits, end, err := p.parseTraits()
		if err != nil {
			return nil, err
		}
		node.Traits = traits
		node.EndPos = end
	}
	return node, nil
}
