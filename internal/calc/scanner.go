package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Scanner reads the runes of one statement and hands them out as tokens, one
// at a time. The scanner never reads past the newline that ends a statement,
// so the same scanner can be pointed at a shared stream line after line.
type Scanner struct {
	src     io.RuneReader
	col     int
	peeked  rune
	hasPeek bool
	ended   bool
	text    []rune
	err     error
}

// NewScanner creates a scanner with no source. Reset must be called before
// the first call to Next.
func NewScanner() *Scanner {
	scanner := new(Scanner)
	scanner.ended = true
	return scanner
}

// Reset points the scanner at the start of a new statement. Nothing from the
// previous statement survives.
func (scanner *Scanner) Reset(src io.RuneReader) {
	scanner.src = src
	scanner.col = 0
	scanner.peeked = 0
	scanner.hasPeek = false
	scanner.ended = src == nil
	scanner.text = scanner.text[:0]
	scanner.err = nil
}

// Next returns the next token of the statement. Once the end of the statement
// was reached, Next keeps on returning EOL tokens.
func (scanner *Scanner) Next() (*Token, error) {
	for {
		r, ok := scanner.peek()
		if !ok {
			return scanner.eol()
		}
		switch r {
		case '\n':
			scanner.advance()
			scanner.ended = true
			return scanner.eol()
		case ' ', '\t', '\r', '\v', '\f':
			scanner.advance()
			continue
		}

		col := scanner.col + 1
		scanner.advance()
		switch r {
		case '(':
			return NewToken(LEFT_PAREN, "(", 0, col), nil
		case ')':
			return NewToken(RIGHT_PAREN, ")", 0, col), nil
		case '+':
			return NewToken(PLUS, "+", 0, col), nil
		case '-':
			return NewToken(MINUS, "-", 0, col), nil
		case '*':
			return NewToken(STAR, "*", 0, col), nil
		case '/':
			return NewToken(SLASH, "/", 0, col), nil
		case '%':
			return NewToken(PERCENT, "%", 0, col), nil
		case '^':
			return NewToken(CARET, "^", 0, col), nil
		}
		if isDigit(r) || r == '.' {
			return scanner.scanNumber(r, col)
		}
		return nil, NewScanError(col, string(r), "Unexpected character.")
	}
}

// Drain consumes whatever is left of the statement, newline included.
func (scanner *Scanner) Drain() error {
	for {
		r, ok := scanner.peek()
		if !ok {
			return scanner.err
		}
		scanner.advance()
		if r == '\n' {
			scanner.ended = true
			return nil
		}
	}
}

// Text returns the part of the statement consumed so far, without the
// trailing newline.
func (scanner *Scanner) Text() string {
	return string(scanner.text)
}

// Ended reports whether the newline or the end of the source was reached.
func (scanner *Scanner) Ended() bool {
	return scanner.ended && !scanner.hasPeek
}

func (scanner *Scanner) eol() (*Token, error) {
	if scanner.err != nil {
		return nil, scanner.err
	}
	return NewToken(EOL, "", 0, scanner.col+1), nil
}

// scanNumber consumes the longest run of runes that could be part of a number
// literal and only then checks that the run is a valid literal, so "1.2.3"
// is reported as one bad literal instead of two numbers.
func (scanner *Scanner) scanNumber(first rune, col int) (*Token, error) {
	var lexeme strings.Builder
	lexeme.WriteRune(first)
	prev := first
loop:
	for {
		r, ok := scanner.peek()
		if !ok {
			break
		}
		switch {
		case isDigit(r), r == '.', r == 'e', r == 'E':
		case (r == '+' || r == '-') && (prev == 'e' || prev == 'E'):
		default:
			break loop
		}
		scanner.advance()
		lexeme.WriteRune(r)
		prev = r
	}
	text := lexeme.String()
	literal, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, NewScanError(col, text, "Number literal out of range.")
		}
		return nil, NewScanError(col, text, "Malformed number literal.")
	}
	return NewToken(NUMBER, text, literal, col), nil
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() (rune, bool) {
	if scanner.hasPeek {
		return scanner.peeked, true
	}
	if scanner.ended {
		return 0, false
	}
	r, _, err := scanner.src.ReadRune()
	if err != nil {
		if err != io.EOF {
			scanner.err = err
		}
		scanner.ended = true
		return 0, false
	}
	scanner.peeked = r
	scanner.hasPeek = true
	return r, true
}

// advance consumes the rune returned by the last call to peek. The newline
// does not count as a column, so EOL points right after the last rune.
func (scanner *Scanner) advance() {
	if !scanner.hasPeek {
		return
	}
	scanner.hasPeek = false
	if scanner.peeked != '\n' {
		scanner.col++
		scanner.text = append(scanner.text, scanner.peeked)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
