package calc

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(ioutil.Discard)

	assert.False(r.HadError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out, WithColor(false))
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterSendStatementErrors(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{
			&StatementError{"2 /  0", NewDivisionByZeroError(NewToken(SLASH, "/", 0, 3))},
			"[col 3] Error at '/': Division by zero.\n" +
				"    2 /  0\n" +
				"      ^\n",
		},
		{
			&StatementError{"(1 + 2", NewSyntaxError(tokEOL(7), "Expect ')' after expression.")},
			"[col 7] Syntax error at end: Expect ')' after expression.\n" +
				"    (1 + 2\n" +
				"          ^\n",
		},
		{
			&StatementError{"\t1 ? 2", NewScanError(4, "?", "Unexpected character.")},
			"[col 4] Lex error at '?': Unexpected character.\n" +
				"    \t1 ? 2\n" +
				"    \t  ^\n",
		},
		{
			&StatementError{"", errors.New("no column")},
			"no column\n",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		var out strings.Builder
		r := NewSimpleReporter(&out, WithColor(false))
		r.Report(tc.err)

		assert.Equal(tc.want, out.String())
	}
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := errors.New("Another error")

	var out strings.Builder
	r := NewSimpleReporter(&out, WithColor(false))
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out, WithColor(false))
	r.Report(errors.New("Test error"))

	r.Reset()
	assert.False(r.HadError())
}

func TestSimpleReporterColor(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out, WithColor(true))
	r.Report(errors.New("Test error"))

	assert.Contains(out.String(), "\x1b[")
	assert.Contains(out.String(), "Test error")
}
