package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrLex is matched by every error produced while scanning.
	ErrLex = errors.New("lex error")
	// ErrSyntax is matched by every error produced while parsing.
	ErrSyntax = errors.New("syntax error")
	// ErrDivisionByZero is matched when '/' or '%' has a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// ScanError is returned by the scanner when it meets a character or a number
// literal it can not turn into a token.
type ScanError struct {
	col     int
	lexeme  string
	message string
}

// NewScanError creates a new scanning error
func NewScanError(col int, lexeme string, message string) error {
	return &ScanError{col, lexeme, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[col %d] Lex error at '%s': %s",
		err.col,
		err.lexeme,
		err.message,
	)
}

func (err *ScanError) Is(target error) bool { return target == ErrLex }

func (err *ScanError) Column() int { return err.col }

// SyntaxError wraps the error message returned by the parser with the token
// where the error occurred.
type SyntaxError struct {
	token   *Token
	message string
}

// NewSyntaxError creates a new parsing error
func NewSyntaxError(token *Token, message string) error {
	return &SyntaxError{token, message}
}

func (err *SyntaxError) Error() string {
	if err.token.Typ == EOL {
		return fmt.Sprintf(
			"[col %d] Syntax error at end: %s",
			err.token.Col,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[col %d] Syntax error at '%s': %s",
		err.token.Col,
		err.token.Lexeme,
		err.message,
	)
}

func (err *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func (err *SyntaxError) Column() int { return err.token.Col }

// DivisionByZeroError is returned when the right operand of a division or a
// remainder evaluates to zero.
type DivisionByZeroError struct {
	op *Token
}

// NewDivisionByZeroError creates an error for the given operator
func NewDivisionByZeroError(op *Token) error {
	return &DivisionByZeroError{op}
}

func (err *DivisionByZeroError) Error() string {
	return fmt.Sprintf(
		"[col %d] Error at '%s': Division by zero.",
		err.op.Col,
		err.op.Lexeme,
	)
}

func (err *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

func (err *DivisionByZeroError) Column() int { return err.op.Col }

// StatementError ties an error to the text of the statement it came from, so
// it can be shown to the user with some context.
type StatementError struct {
	Source string
	Err    error
}

func (err *StatementError) Error() string {
	return err.Err.Error()
}

func (err *StatementError) Unwrap() error {
	return err.Err
}
