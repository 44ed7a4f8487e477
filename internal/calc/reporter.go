package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes each error on its own line. Errors tied to a
// statement are followed by the statement and a marker under the column the
// error points at.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
	paint  *color.Color
}

// ReporterOption configures a SimpleReporter.
type ReporterOption func(*SimpleReporter)

// WithColor forces colored output on or off. Without it the color package
// decides based on the terminal.
func WithColor(enabled bool) ReporterOption {
	return func(reporter *SimpleReporter) {
		if enabled {
			reporter.paint.EnableColor()
		} else {
			reporter.paint.DisableColor()
		}
	}
}

func NewSimpleReporter(writer io.Writer, opts ...ReporterOption) *SimpleReporter {
	reporter := &SimpleReporter{
		writer: writer,
		paint:  color.New(color.FgRed, color.Bold),
	}
	for _, opt := range opts {
		opt(reporter)
	}
	return reporter
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	reporter.paint.Fprintln(reporter.writer, err.Error())

	var stmtErr *StatementError
	if !errors.As(err, &stmtErr) {
		return
	}
	var located interface{ Column() int }
	if !errors.As(stmtErr.Err, &located) {
		return
	}
	fmt.Fprintf(reporter.writer, "    %s\n", stmtErr.Source)
	fmt.Fprintf(reporter.writer, "    %s^\n", marginFor(stmtErr.Source, located.Column()))
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// marginFor returns the blanks that go before a marker under the given
// 1-based column. Tabs are kept so the marker lines up with the source.
func marginFor(source string, col int) string {
	var margin strings.Builder
	for i, r := range []rune(source) {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			margin.WriteRune('\t')
		} else {
			margin.WriteRune(' ')
		}
	}
	for i := len([]rune(source)); i < col-1; i++ {
		margin.WriteRune(' ')
	}
	return margin.String()
}
