// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"oss/internal/errors"
	"oss/internal/lexer"
	"oss/internal/parser"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
)

// Start reads OSS rules from in and prints the AST of each complete rule to
// out. A rule may span several lines; input is collected until its braces
// balance and it ends in ';' or '}'.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var pending strings.Builder

	for {
		if pending.Len() == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUATION)
		}
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		pending.WriteString(scanner.Text())
		pending.WriteString("\n")

		input := pending.String()
		if strings.TrimSpace(input) == "" {
			pending.Reset()
			continue
		}
		if !complete(input) {
			continue
		}
		pending.Reset()

		file, err := parser.ParseSource("<repl>", input)
		if err != nil {
			report(out, input, err)
			continue
		}
		fmt.Fprintf(out, "AST:\n%s\n", file.String())
	}
}

// complete reports whether input holds whole rules. Input that does not
// scan is complete so that the error is shown right away, unless it only
// stops inside an unterminated token that a later line may close.
func complete(input string) bool {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			switch lexErr.Kind {
			case lexer.UnterminatedComment, lexer.UnterminatedString, lexer.UnterminatedExpression:
				return false
			}
		}
		return true
	}

	depth := 0
	last := lexer.EOF
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.LEFT_BRACE:
			depth++
		case lexer.RIGHT_BRACE:
			depth--
		case lexer.COMMENT, lexer.BLOCK_COMMENT, lexer.EOF:
			continue
		}
		last = tok.Type
	}
	if last == lexer.EOF {
		// only comments so far
		return true
	}
	return depth <= 0 && (last == lexer.SEMICOLON || last == lexer.RIGHT_BRACE)
}

func report(out io.Writer, input string, err error) {
	diag, ok := errors.FromError(err)
	if !ok {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprint(out, errors.NewErrorReporter("<repl>", input).FormatError(diag))
}
