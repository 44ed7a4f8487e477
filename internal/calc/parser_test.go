package calc

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(src string) (float64, error) {
	scanner := NewScanner()
	scanner.Reset(strings.NewReader(src))
	return NewParser(scanner, false).Parse()
}

func TestParseLiteral(t *testing.T) {
	testCases := []struct {
		src  string
		eval float64
	}{
		{"0", 0},
		{"1", 1},
		{"3.14", 3.14},
		{"4294967296", 4294967296},
		{"0.000001", 0.000001},
		{"1e10", 1e10},
		{".25", 0.25},
		{"(7)", 7},
		{"((7.5))", 7.5},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := parse(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.eval, val, tc.src)
	}
}

func TestParsePrecedence(t *testing.T) {
	testCases := []struct {
		src  string
		eval float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 ^ 3 ^ 2", 512},
		{"(2 ^ 3) ^ 2", 64},
		{"10 - 4 - 3", 3},
		{"100 / 10 / 5", 2},
		{"2 * 3 % 4", 2},
		{"7 % 4 % 2", 1},
		{"1 + 2 * 3 - 4 / 2", 5},
		{"2 * 3 ^ 2", 18},
		{"-2 ^ 2", -4},
		{"(-2) ^ 2", 4},
		{"2 ^ -1", 0.5},
		{"2 ^ -1 ^ 2", 0.5},
		{"--3", 3},
		{"-3 * -3", 9},
		{"4 - -2", 6},
		{"-(1 + 2) * 3", -9},
		{"6 / 4", 1.5},
		{"1 / 3 * 3", 1},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := parse(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.eval, val, tc.src)
	}
}

func TestParseRemainder(t *testing.T) {
	testCases := []struct {
		src  string
		eval float64
	}{
		{"7 % 3", 1},
		{"-7 % 3", -1},
		{"7 % -3", 1},
		{"5.5 % 2", 1.5},
		{"3 % 7", 3},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := parse(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.eval, val, tc.src)
	}
}

func TestParseDivision(t *testing.T) {
	pairs := [][2]float64{
		{1, 3}, {-7, 2}, {1e300, 1e-300}, {0, 5}, {2.5, -0.5}, {1, 7},
	}

	assert := assert.New(t)
	for _, p := range pairs {
		val, err := parse(FormatValue(p[0], -1) + " / (" + FormatValue(p[1], -1) + ")")

		assert.NoError(err)
		assert.Equal(p[0]/p[1], val)
	}
}

func TestParseDivisionByZero(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"1 / 0", NewDivisionByZeroError(NewToken(SLASH, "/", 0, 3))},
		{"1 % 0", NewDivisionByZeroError(NewToken(PERCENT, "%", 0, 3))},
		{"0 / 0", NewDivisionByZeroError(NewToken(SLASH, "/", 0, 3))},
		{"5 / (2 - 2)", NewDivisionByZeroError(NewToken(SLASH, "/", 0, 3))},
		{"5 / -0", NewDivisionByZeroError(NewToken(SLASH, "/", 0, 3))},
		{"1 + 8 % 0.0 * 2", NewDivisionByZeroError(NewToken(PERCENT, "%", 0, 7))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		val, err := parse(tc.src)

		assert.Equal(tc.err, err, tc.src)
		assert.True(errors.Is(err, ErrDivisionByZero), tc.src)
		assert.False(errors.Is(err, ErrSyntax), tc.src)
		assert.Zero(val)
	}
}

func TestParseWithErrors(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"1 + )", NewSyntaxError(NewToken(RIGHT_PAREN, ")", 0, 5), "Expect expression.")},
		{"", NewSyntaxError(tokEOL(1), "Expect expression.")},
		{"1 +", NewSyntaxError(tokEOL(4), "Expect expression.")},
		{"(1 + 2", NewSyntaxError(tokEOL(7), "Expect ')' after expression.")},
		{"1 + 2)", NewSyntaxError(NewToken(RIGHT_PAREN, ")", 0, 6), "Expect end of expression.")},
		{"1 2", NewSyntaxError(NewToken(NUMBER, "2", 2, 3), "Expect end of expression.")},
		{"()", NewSyntaxError(NewToken(RIGHT_PAREN, ")", 0, 2), "Expect expression.")},
		{"* 3", NewSyntaxError(NewToken(STAR, "*", 0, 1), "Expect expression.")},
		{"2 ^", NewSyntaxError(tokEOL(4), "Expect expression.")},
		{"+3", NewSyntaxError(NewToken(PLUS, "+", 0, 1), "Unary '+' expressions are not supported.")},
		{"2 * +3", NewSyntaxError(NewToken(PLUS, "+", 0, 5), "Unary '+' expressions are not supported.")},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := parse(tc.src)

		assert.Equal(tc.err, err, tc.src)
		assert.True(errors.Is(err, ErrSyntax), tc.src)
	}
}

func TestParseNestingLimit(t *testing.T) {
	deep := maxDepth + 1
	testCases := []struct {
		src string
		err error
	}{
		{
			strings.Repeat("(", deep) + "1" + strings.Repeat(")", deep),
			NewSyntaxError(NewToken(LEFT_PAREN, "(", 0, deep), "Expression nested too deeply."),
		},
		{
			strings.Repeat("-", deep) + "1",
			NewSyntaxError(NewToken(MINUS, "-", 0, deep), "Expression nested too deeply."),
		},
		{
			strings.Repeat("2^", deep) + "2",
			NewSyntaxError(NewToken(NUMBER, "2", 2, 2*deep-1), "Expression nested too deeply."),
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := parse(tc.src)

		assert.Equal(tc.err, err)
		assert.True(errors.Is(err, ErrSyntax))
	}
}

func TestParseNestingWithinLimit(t *testing.T) {
	assert := assert.New(t)

	n := maxDepth - 1
	val, err := parse(strings.Repeat("(", n) + "1" + strings.Repeat(")", n))
	assert.NoError(err)
	assert.Equal(1.0, val)

	val, err = parse(strings.Repeat("-", n) + "2")
	assert.NoError(err)
	assert.Equal(-2.0, val)

	// Depth is per nesting level, not per operand.
	val, err = parse(strings.Repeat("1 + ", 2*maxDepth) + "1")
	assert.NoError(err)
	assert.Equal(float64(2*maxDepth+1), val)
}

func TestParseScanErrorStopsParsing(t *testing.T) {
	_, err := parse("1 + $ / 0")

	assert := assert.New(t)
	assert.Equal(NewScanError(5, "$", "Unexpected character."), err)
	assert.True(errors.Is(err, ErrLex))
}

func TestParseNonFinite(t *testing.T) {
	assert := assert.New(t)

	val, err := parse("10 ^ 400")
	assert.NoError(err)
	assert.True(math.IsInf(val, 1))

	val, err = parse("(-8) ^ 0.5")
	assert.NoError(err)
	assert.True(math.IsNaN(val))
}

func TestParseTrace(t *testing.T) {
	testCases := []struct {
		src  string
		form string
	}{
		{"1", "1"},
		{"2 + 3 * 4", "(+ 2 (* 3 4))"},
		{"(2 + 3) * 4", "(* (group (+ 2 3)) 4)"},
		{"-2 ^ 2", "(- (^ 2 2))"},
		{"2 ^ 3 ^ 2", "(^ 2 (^ 3 2))"},
		{"7 % 4 % 2", "(% (% 7 4) 2)"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		scanner := NewScanner()
		scanner.Reset(strings.NewReader(tc.src))
		parser := NewParser(scanner, true)
		_, err := parser.Parse()

		assert.NoError(err, tc.src)
		assert.Equal(tc.form, parser.Form(), tc.src)
	}
}
