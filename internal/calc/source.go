package calc

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrLineAborted is returned by a LineEditor when the user gave up on the
// line being edited, e.g. by pressing Ctrl-C.
var ErrLineAborted = errors.New("line aborted")

// SourceKind tells the different kinds of input sources apart.
type SourceKind uint

const (
	KindNone SourceKind = iota
	KindRedirect
	KindInteractive
	KindRawStream
)

func (kind SourceKind) String() string {
	switch kind {
	case KindRedirect:
		return "redirect"
	case KindInteractive:
		return "interactive"
	case KindRawStream:
		return "raw"
	}
	return "none"
}

// Source supplies statements to the engine, one at a time. Next returns a
// reader over exactly one statement, ending with a newline or with the end of
// the reader, or io.EOF once there is nothing left to read. The prompt is
// shown to the user by sources that have one, an empty prompt shows nothing.
type Source interface {
	Kind() SourceKind
	Next(prompt string) (io.RuneReader, error)
	Close() error
}

// LineEditor is the line-editing front end used by the interactive source.
// Prompt returns a line without its trailing newline, io.EOF when the user
// ends the input, or ErrLineAborted when the current line was abandoned.
type LineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	ClearHistory()
}

// RedirectSource hands out a statement that is already fully available, once.
type RedirectSource struct {
	text string
	done bool
}

// NewRedirectSource creates a source whose only statement is text. Line
// breaks inside text are read as spaces, so all of it is one statement.
func NewRedirectSource(text string) *RedirectSource {
	return &RedirectSource{text: lineBreaks.Replace(text)}
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func (src *RedirectSource) Kind() SourceKind { return KindRedirect }

// Text returns the statement held by the source.
func (src *RedirectSource) Text() string { return src.text }

func (src *RedirectSource) Next(string) (io.RuneReader, error) {
	if src.done {
		return nil, io.EOF
	}
	src.done = true
	return strings.NewReader(src.text + "\n"), nil
}

func (src *RedirectSource) Close() error {
	src.done = true
	src.text = ""
	return nil
}

// InteractiveSource reads statements from a line editor.
type InteractiveSource struct {
	editor LineEditor
}

// NewInteractiveSource creates a source over the given line editor.
func NewInteractiveSource(editor LineEditor) *InteractiveSource {
	return &InteractiveSource{editor}
}

func (src *InteractiveSource) Kind() SourceKind { return KindInteractive }

func (src *InteractiveSource) Next(prompt string) (io.RuneReader, error) {
	for {
		line, err := src.editor.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, ErrLineAborted):
			continue
		case errors.Is(err, io.EOF):
			src.editor.ClearHistory()
			return nil, io.EOF
		default:
			return nil, err
		}
		if strings.TrimSpace(line) != "" {
			src.editor.AppendHistory(line)
		}
		// the editor strips the newline, put it back so every statement ends
		// the same way
		return strings.NewReader(line + "\n"), nil
	}
}

func (src *InteractiveSource) Close() error { return nil }

// RawStreamSource lets the scanner read straight from a stream, rune by rune,
// without reading a whole line first.
type RawStreamSource struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewRawStreamSource creates a source reading from r. Prompts are written to
// out.
func NewRawStreamSource(r io.Reader, out io.Writer) *RawStreamSource {
	return &RawStreamSource{bufio.NewReader(r), out}
}

func (src *RawStreamSource) Kind() SourceKind { return KindRawStream }

func (src *RawStreamSource) Next(prompt string) (io.RuneReader, error) {
	if prompt != "" {
		if _, err := io.WriteString(src.out, prompt); err != nil {
			return nil, err
		}
	}
	if _, err := src.reader.Peek(1); err != nil {
		return nil, err
	}
	return &streamLine{reader: src.reader}, nil
}

func (src *RawStreamSource) Close() error { return nil }

// streamLine is a view over a stream that ends after the first newline.
type streamLine struct {
	reader *bufio.Reader
	ended  bool
}

func (line *streamLine) ReadRune() (rune, int, error) {
	if line.ended {
		return 0, 0, io.EOF
	}
	r, size, err := line.reader.ReadRune()
	if err != nil {
		line.ended = true
		return 0, 0, err
	}
	if r == '\n' {
		line.ended = true
	}
	return r, size, nil
}
