package calc

import "math"

// Parser evaluates a statement while it reads the tokens, following the
// grammar below. No syntax tree is built; every rule returns the value of the
// part of the statement it matched.
//
// Grammar
//
//	statement  --> expression EOL ;
//	expression --> term ;
//	term       --> factor ( ( "-" | "+" ) factor )* ;
//	factor     --> unary ( ( "/" | "*" | "%" ) unary )* ;
//	unary      --> ( "-" | "+" ) unary
//	             | power ;
//	power      --> primary ( "^" unary )? ;
//	primary    --> NUMBER | "(" expression ")" ;
//
// Exponentiation binds tighter than negation, so "-2^2" is -4, and its right
// operand is a unary so "2^3^2" is 2^(3^2). The unary rule matches '+' only so
// it can produce a better error, unary '+' expressions are not supported.
//
// Every nested group, negation and exponent goes through unary, which keeps
// count of how deep the statement nests and gives up past maxDepth.
type Parser struct {
	scanner *Scanner
	current *Token
	trace   bool
	form    string
	depth   int
}

// maxDepth is how deep a statement may nest before it is rejected.
const maxDepth = 10000

// operand is the value of a sub-expression and, when tracing, its printed
// form.
type operand struct {
	val  float64
	form string
}

// NewParser creates a parser that pulls its tokens from the given scanner.
func NewParser(scanner *Scanner, trace bool) *Parser {
	return &Parser{scanner: scanner, trace: trace}
}

// Parse evaluates one statement. The parser holds nothing from one call to the
// next except the scanner it reads from.
func (parser *Parser) Parse() (float64, error) {
	parser.current = nil
	parser.form = ""
	parser.depth = 0
	if err := parser.advance(); err != nil {
		return 0, err
	}
	x, err := parser.expression()
	if err != nil {
		return 0, err
	}
	if !parser.check(EOL) {
		return 0, NewSyntaxError(parser.current, "Expect end of expression.")
	}
	parser.form = x.form
	return x.val, nil
}

// Form returns the printed form of the last statement that was evaluated
// successfully. It is empty unless tracing is on.
func (parser *Parser) Form() string {
	return parser.form
}

// expression --> term ;
func (parser *Parser) expression() (operand, error) {
	return parser.term()
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (operand, error) {
	x, err := parser.factor()
	if err != nil {
		return operand{}, err
	}
	for parser.check(MINUS, PLUS) {
		op := parser.current
		if err := parser.advance(); err != nil {
			return operand{}, err
		}
		y, err := parser.factor()
		if err != nil {
			return operand{}, err
		}
		if op.Typ == PLUS {
			x = parser.binary(op, x, y, x.val+y.val)
		} else {
			x = parser.binary(op, x, y, x.val-y.val)
		}
	}
	return x, nil
}

// factor --> unary ( ( "/" | "*" | "%" ) unary )* ;
func (parser *Parser) factor() (operand, error) {
	x, err := parser.unary()
	if err != nil {
		return operand{}, err
	}
	for parser.check(SLASH, STAR, PERCENT) {
		op := parser.current
		if err := parser.advance(); err != nil {
			return operand{}, err
		}
		y, err := parser.unary()
		if err != nil {
			return operand{}, err
		}
		switch op.Typ {
		case STAR:
			x = parser.binary(op, x, y, x.val*y.val)
		case SLASH:
			if y.val == 0 {
				return operand{}, NewDivisionByZeroError(op)
			}
			x = parser.binary(op, x, y, x.val/y.val)
		case PERCENT:
			if y.val == 0 {
				return operand{}, NewDivisionByZeroError(op)
			}
			x = parser.binary(op, x, y, math.Mod(x.val, y.val))
		}
	}
	return x, nil
}

// unary --> ( "-" | "+" ) unary
//         | power ;
func (parser *Parser) unary() (operand, error) {
	parser.depth++
	defer func() { parser.depth-- }()
	if parser.depth > maxDepth {
		return operand{}, NewSyntaxError(parser.current, "Expression nested too deeply.")
	}
	if parser.check(PLUS) {
		return operand{}, NewSyntaxError(
			parser.current,
			"Unary '+' expressions are not supported.",
		)
	}
	if parser.check(MINUS) {
		op := parser.current
		if err := parser.advance(); err != nil {
			return operand{}, err
		}
		x, err := parser.unary()
		if err != nil {
			return operand{}, err
		}
		return parser.negate(op, x), nil
	}
	return parser.power()
}

// power --> primary ( "^" unary )? ;
func (parser *Parser) power() (operand, error) {
	x, err := parser.primary()
	if err != nil {
		return operand{}, err
	}
	if parser.check(CARET) {
		op := parser.current
		if err := parser.advance(); err != nil {
			return operand{}, err
		}
		y, err := parser.unary()
		if err != nil {
			return operand{}, err
		}
		x = parser.binary(op, x, y, math.Pow(x.val, y.val))
	}
	return x, nil
}

// primary --> NUMBER | "(" expression ")" ;
func (parser *Parser) primary() (operand, error) {
	if parser.check(NUMBER) {
		tok := parser.current
		if err := parser.advance(); err != nil {
			return operand{}, err
		}
		return parser.literal(tok), nil
	}
	if parser.check(LEFT_PAREN) {
		if err := parser.advance(); err != nil {
			return operand{}, err
		}
		x, err := parser.expression()
		if err != nil {
			return operand{}, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return operand{}, err
		}
		return parser.group(x), nil
	}
	return operand{}, NewSyntaxError(parser.current, "Expect expression.")
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		return parser.advance()
	}
	return NewSyntaxError(parser.current, message)
}

func (parser *Parser) check(types ...TokenType) bool {
	for _, tt := range types {
		if parser.current.Typ == tt {
			return true
		}
	}
	return false
}

// advance pulls the next token from the scanner. Scanning errors surface here
// and stop the parse right away.
func (parser *Parser) advance() error {
	tok, err := parser.scanner.Next()
	if err != nil {
		return err
	}
	parser.current = tok
	return nil
}
