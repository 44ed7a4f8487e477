package calc

import (
	"io"
	"strings"
)

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

// mockEditor replays a fixed list of lines, then reports the end of input.
type mockEditor struct {
	lines   []string
	errs    []error
	prompts []string
	history []string
	cleared bool
}

func newMockEditor(lines ...string) *mockEditor {
	return &mockEditor{lines: lines}
}

func (editor *mockEditor) Prompt(prompt string) (string, error) {
	editor.prompts = append(editor.prompts, prompt)
	if len(editor.errs) > 0 {
		err := editor.errs[0]
		editor.errs = editor.errs[1:]
		return "", err
	}
	if len(editor.lines) == 0 {
		return "", io.EOF
	}
	line := editor.lines[0]
	editor.lines = editor.lines[1:]
	return line, nil
}

func (editor *mockEditor) AppendHistory(line string) {
	editor.history = append(editor.history, line)
}

func (editor *mockEditor) ClearHistory() {
	editor.cleared = true
	editor.history = nil
}

func tokEOL(col int) *Token {
	return NewToken(EOL, "", 0, col)
}

func scanAll(src string) ([]*Token, error) {
	scanner := NewScanner()
	scanner.Reset(strings.NewReader(src))
	toks := make([]*Token, 0)
	for {
		tok, err := scanner.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Typ == EOL {
			return toks, nil
		}
	}
}
