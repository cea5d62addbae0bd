package grammar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

// Statements and rules share their first tokens, so branches are allowed to
// backtrack as far as they need.
var ossParser = participle.MustBuild[File](
	participle.Lexer(OSSLexer),
	participle.Elide("Comment"),
	participle.UseLookahead(participle.MaxLookahead),
)

// Parse checks source against the grammar. Errors carry a position and
// implement participle.Error.
func Parse(filename, source string) (*File, error) {
	return ossParser.ParseString(filename, source)
}

func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// EBNF returns the grammar in participle's EBNF notation.
func EBNF() string {
	return ossParser.String()
}

// ReportError prints a caret-style description of a parse error to w.
func ReportError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)
	pe, ok := err.(participle.Error)
	if !ok {
		red.Fprintf(w, "Unexpected error: %s\n", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		red.Fprintf(w, "Syntax error at unknown location: %s\n", err)
		return
	}

	line := strings.TrimRight(lines[pos.Line-1], "\r")
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	red.Fprintf(w, "Syntax error in %s at line %d, column %d:\n", pos.Filename, pos.Line, pos.Column)
	fmt.Fprintln(w, line)
	color.New(color.FgHiRed).Fprintln(w, caret)
	fmt.Fprintf(w, "→ %s\n", pe.Message())
}
