package calc

import (
	"io"
	"strings"
)

// Engine owns the single scanner and parser pair used for every statement of
// a session.
type Engine struct {
	scanner *Scanner
	parser  *Parser
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	trace bool
}

// WithTrace makes the engine record the printed form of each statement.
func WithTrace(trace bool) EngineOption {
	return func(o *engineOptions) {
		o.trace = trace
	}
}

// Result is the outcome of evaluating one statement. Exactly one of Value and
// Err is meaningful.
type Result struct {
	Value float64
	Err   error
	// Form is the printed form of the statement, set only when tracing.
	Form string
	// Source is the text of the statement without its newline.
	Source string
	// Completed is false only when reading the statement failed. Eval drains
	// every statement it starts, so a statement that fails to parse is still
	// complete.
	Completed bool
}

func NewEngine(opts ...EngineOption) *Engine {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}
	scanner := NewScanner()
	return &Engine{scanner, NewParser(scanner, o.trace)}
}

// Eval evaluates the statement read from src. Whatever happens, the rest of
// the statement is consumed before returning so the next call starts on a
// fresh line. Errors about the statement are wrapped in a *StatementError;
// errors from src itself are returned as they are.
func (engine *Engine) Eval(src io.RuneReader) Result {
	engine.scanner.Reset(src)
	val, err := engine.parser.Parse()
	drainErr := engine.scanner.Drain()
	if drainErr != nil && err == nil {
		err = drainErr
	}
	res := Result{
		Source:    engine.scanner.Text(),
		Completed: drainErr == nil,
	}
	switch err.(type) {
	case nil:
		res.Value = val
		res.Form = engine.parser.Form()
	case *ScanError, *SyntaxError, *DivisionByZeroError:
		res.Err = &StatementError{res.Source, err}
	default:
		res.Err = err
	}
	engine.scanner.Reset(nil)
	return res
}

// EvalString evaluates a single statement given as a string.
func (engine *Engine) EvalString(s string) (float64, error) {
	res := engine.Eval(strings.NewReader(s))
	return res.Value, res.Err
}
