package lsp

import (
	"strings"

	"oss/internal/lexer"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the tokens of source. A lexical error ends
// the scan; everything before it is still highlighted.
func collectSemanticTokens(source string) []SemanticToken {
	tokens, _ := lexer.Tokenize(source)
	idx := newLineIndex(source)

	var result []SemanticToken
	inTraits := false
	declaring := false

	for i, tok := range tokens {
		next := lexer.EOF
		if i+1 < len(tokens) {
			next = tokens[i+1].Type
		}

		switch {
		case tok.Type == lexer.EOF:
			return result

		case tok.Type == lexer.COMMENT || tok.Type == lexer.BLOCK_COMMENT:
			result = append(result, commentTokens(idx, tok)...)
			continue

		case tok.Type == lexer.POUND:
			inTraits = true
			result = append(result, makeToken(idx, tok, "operator", 0))
			continue

		case inTraits && (lexer.IsTraitName(tok.Type) || tok.Type == lexer.COMMA):
			if tok.Type != lexer.COMMA {
				result = append(result, makeToken(idx, tok, "type", 0))
			}
			continue
		}
		inTraits = false

		modifiers := 0
		if declaring {
			modifiers = modifierMask("declaration")
			declaring = false
		}

		switch {
		case tok.Type == lexer.AT:
			declaring = true
			result = append(result, makeToken(idx, tok, "operator", 0))
		case tok.Type == lexer.TILDE, tok.Type == lexer.BANG, tok.Type == lexer.NEXT, tok.Type == lexer.STAR:
			result = append(result, makeToken(idx, tok, "operator", 0))
		case next == lexer.COLON && (lexer.IsKeyKind(tok.Type) || tok.Type == lexer.STRING):
			result = append(result, makeToken(idx, tok, "property", modifiers))
		case lexer.IsKeyword(tok.Type), tok.Type == lexer.BOOLEAN, tok.Type == lexer.NULL:
			result = append(result, makeToken(idx, tok, "keyword", modifiers))
		case tok.Type == lexer.IDENTIFIER, tok.Type == lexer.KEY_PATH:
			result = append(result, makeToken(idx, tok, "variable", modifiers))
		case tok.Type == lexer.FIELD_PATH:
			result = append(result, makeToken(idx, tok, "parameter", 0))
		case tok.Type == lexer.INT, tok.Type == lexer.FLOAT:
			result = append(result, makeToken(idx, tok, "number", 0))
		case tok.Type == lexer.STRING:
			result = append(result, splitLines(idx, tok, "string", 0)...)
		case tok.Type == lexer.LOCALIZATION_KEY:
			result = append(result, makeToken(idx, tok, "macro", 0))
		case tok.Type == lexer.EXPRESSION:
			result = append(result, splitLines(idx, tok, "macro", 0)...)
		case tok.Type == lexer.STATIC_EXPRESSION:
			result = append(result, splitLines(idx, tok, "macro", modifierMask("static"))...)
		}
	}

	return result
}

func commentTokens(idx lineIndex, tok lexer.Token) []SemanticToken {
	return splitLines(idx, tok, "comment", 0)
}

// splitLines emits one token per source line the lexeme covers, since
// clients are not required to accept tokens spanning lines.
func splitLines(idx lineIndex, tok lexer.Token, tokenType string, modifiers int) []SemanticToken {
	lines := strings.Split(tok.Lexeme, "\n")
	if len(lines) == 1 {
		return []SemanticToken{makeToken(idx, tok, tokenType, modifiers)}
	}

	result := make([]SemanticToken, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		length := textUnits(line)
		if length == 0 {
			continue
		}
		start := uint32(0)
		if i == 0 {
			start = idx.character(tok.Position.Line, tok.Position.Column)
		}
		result = append(result, SemanticToken{
			Line:           uint32(tok.Position.Line - 1 + i),
			StartChar:      start,
			Length:         length,
			TokenType:      indexOf(tokenType, SemanticTokenTypes),
			TokenModifiers: modifiers,
		})
	}
	return result
}

// makeToken creates a semantic token covering a single-line token
func makeToken(idx lineIndex, tok lexer.Token, tokenType string, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1),                         // LSP uses 0-based line numbers
		StartChar:      idx.character(tok.Position.Line, tok.Position.Column), // in UTF-16 code units
		Length:         textUnits(tok.Lexeme),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

func modifierMask(name string) int {
	return 1 << indexOf(name, SemanticTokenModifiers)
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
