package parser

import (
	"fmt"

	"oss/internal/ast"
)

type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	NoSelectors
	EmptyFile
	TrailingInput
	MisplacedChain
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case NoSelectors:
		return "no selectors"
	case EmptyFile:
		return "empty file"
	case TrailingInput:
		return "trailing input"
	case MisplacedChain:
		return "misplaced precedence chain"
	default:
		return "syntax error"
	}
}

// Error is a grammar failure. Found is the text of the offending token, or
// "end of input"; Length is its width in characters.
type Error struct {
	Kind     ErrorKind
	Expected string
	Found    string
	Length   int
	Position ast.Position
	Message  string
}

func (e *Error) Error() string {
	if e.Position.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}
