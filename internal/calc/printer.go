package calc

import "fmt"

// The printer methods build the operands returned by the parser. When tracing
// is on, each operand also carries a parenthesized prefix form of what was
// matched, e.g. "(+ 2 (* 3 4))" for "2 + 3 * 4".

func (parser *Parser) literal(tok *Token) operand {
	x := operand{val: tok.Literal}
	if parser.trace {
		x.form = tok.Lexeme
	}
	return x
}

func (parser *Parser) binary(op *Token, left, right operand, val float64) operand {
	x := operand{val: val}
	if parser.trace {
		x.form = fmt.Sprintf("(%s %s %s)", op.Lexeme, left.form, right.form)
	}
	return x
}

func (parser *Parser) negate(op *Token, right operand) operand {
	x := operand{val: -right.val}
	if parser.trace {
		x.form = fmt.Sprintf("(%s %s)", op.Lexeme, right.form)
	}
	return x
}

func (parser *Parser) group(inner operand) operand {
	x := operand{val: inner.val}
	if parser.trace {
		x.form = fmt.Sprintf("(group %s)", inner.form)
	}
	return x
}
