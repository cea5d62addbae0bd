package lexer

import "fmt"

type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota
	UnterminatedComment
	UnterminatedString
	UnterminatedExpression
	MalformedExpression
	UnterminatedLocalizationKey
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case UnterminatedComment:
		return "unterminated comment"
	case UnterminatedString:
		return "unterminated string"
	case UnterminatedExpression:
		return "unterminated expression"
	case MalformedExpression:
		return "malformed expression"
	case UnterminatedLocalizationKey:
		return "unterminated localization key"
	default:
		return "lexical error"
	}
}

// Error is a fatal scanning failure. Lexeme holds the text scanned for the
// failing token so far.
type Error struct {
	Kind     ErrorKind
	Message  string
	Lexeme   string
	Position Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}
