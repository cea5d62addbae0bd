package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"oss/internal/ast"
)

// lineIndex converts the rune columns the parser reports into the UTF-16
// code units LSP positions are counted in.
type lineIndex [][]rune

func newLineIndex(source string) lineIndex {
	lines := strings.Split(source, "\n")
	idx := make(lineIndex, len(lines))
	for i, line := range lines {
		idx[i] = []rune(line)
	}
	return idx
}

// character returns the 0-based UTF-16 offset of a 1-based rune column.
func (idx lineIndex) character(line, column int) uint32 {
	return idx.units(line, 1, column-1)
}

// units counts the UTF-16 code units of n runes starting at a 1-based
// column. Runes past the end of the line count as one unit.
func (idx lineIndex) units(line, column, n int) uint32 {
	var runes []rune
	if line >= 1 && line <= len(idx) {
		runes = idx[line-1]
	}

	start := max(0, column-1)
	total := 0
	for i := start; i < start+n; i++ {
		if i < len(runes) {
			total += runeUnits(runes[i])
		} else {
			total++
		}
	}
	return uint32(total)
}

func (idx lineIndex) position(pos ast.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(0, pos.Line-1)),
		Character: idx.character(pos.Line, pos.Column),
	}
}

func (idx lineIndex) span(pos, end ast.Position) protocol.Range {
	return protocol.Range{
		Start: idx.position(pos),
		End:   idx.position(end),
	}
}

// textUnits is the UTF-16 length of s.
func textUnits(s string) uint32 {
	total := 0
	for _, r := range s {
		total += runeUnits(r)
	}
	return uint32(total)
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
