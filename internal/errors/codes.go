package errors

// Error codes for the OSS toolchain.
// These codes are used in diagnostics and documentation
// to provide consistent error identification across the CLI and editor.
//
// Error code ranges:
// E0100-E0109: Lexical errors
// E0110-E0199: Grammar errors
// E0900-E0999: Tooling errors

const (
	// Lexical errors (reserved range: E0100-E0109)

	// E0100: A character that starts no token
	ErrorUnexpectedCharacter = "E0100"

	// E0101: Block comment without '*/', or line comment at end of input
	ErrorUnterminatedComment = "E0101"

	// E0102: String literal without its closing quote
	ErrorUnterminatedString = "E0102"

	// E0103: Expression without its closing brace
	ErrorUnterminatedExpression = "E0103"

	// E0104: '$$' not followed by '{'
	ErrorMalformedExpression = "E0104"

	// E0105: Localization key without ']'
	ErrorUnterminatedLocalizationKey = "E0105"

	// Grammar errors (reserved range: E0110-E0199)

	// E0110: Token does not fit the grammar at this point
	ErrorUnexpectedToken = "E0110"

	// E0111: Rule without any selector
	ErrorNoSelectors = "E0111"

	// E0112: Document without any rule
	ErrorEmptyFile = "E0112"

	// E0113: Tokens after the last rule
	ErrorTrailingInput = "E0113"

	// E0114: Statement after a precedence chain
	ErrorMisplacedChain = "E0114"

	// Tooling errors (reserved range: E0900-E0999)

	// E0900: Source file could not be read
	ErrorReadFile = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Character cannot start any token"
	case ErrorUnterminatedComment:
		return "Comment is not terminated"
	case ErrorUnterminatedString:
		return "String literal is not terminated by its opening quote"
	case ErrorUnterminatedExpression:
		return "Expression is not terminated by '}'"
	case ErrorMalformedExpression:
		return "Expression marker is not followed by '{'"
	case ErrorUnterminatedLocalizationKey:
		return "Localization key is not terminated by ']'"
	case ErrorUnexpectedToken:
		return "Token is not valid at this position"
	case ErrorNoSelectors:
		return "Rule has no selectors"
	case ErrorEmptyFile:
		return "Document contains no rules"
	case ErrorTrailingInput:
		return "Input continues after the last rule"
	case ErrorMisplacedChain:
		return "Precedence chain is not the last statement of its rule body"
	case ErrorReadFile:
		return "Source file could not be read"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0110":
		return "Lexer"
	case code >= "E0110" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
