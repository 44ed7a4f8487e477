package calc

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal float64
	Col     int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal float64, col int) *Token {
	return &Token{typ, lexeme, literal, col}
}

func (t *Token) String() string {
	if t.Typ == NUMBER {
		return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Typ, t.Lexeme)
}

// TokenType is the kind of a lexeme
type TokenType uint

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET

	// Literals
	NUMBER

	// End of a statement
	EOL
)

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case CARET:
		return "^"
	case NUMBER:
		return "NUMBER"
	case EOL:
		return "EOL"
	}
	return fmt.Sprintf("TokenType(%d)", uint(tt))
}
