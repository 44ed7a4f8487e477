package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DriverState is a state of the driver loop.
type DriverState uint

const (
	AwaitingPrompt DriverState = iota
	Parsing
	Done
)

func (state DriverState) String() string {
	switch state {
	case AwaitingPrompt:
		return "awaiting-prompt"
	case Parsing:
		return "parsing"
	case Done:
		return "done"
	}
	return "unknown"
}

// Driver reads statements from the controller, evaluates them with the engine
// and shows the results, until the controller runs out of input.
//
// A blank line is skipped without output. The engine still rejects it with
// "Expect expression.", but the driver does not report that error, so an
// empty line at the prompt simply prompts again.
type Driver struct {
	engine     *Engine
	controller *Controller
	reporter   Reporter
	output     io.Writer
	logger     zerolog.Logger
	precision  int
	state      DriverState
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithPrecision sets the number of decimals used to print results.
func WithPrecision(precision int) DriverOption {
	return func(driver *Driver) {
		driver.precision = precision
	}
}

func NewDriver(
	engine *Engine,
	controller *Controller,
	reporter Reporter,
	output io.Writer,
	logger zerolog.Logger,
	opts ...DriverOption,
) *Driver {
	driver := &Driver{
		engine:     engine,
		controller: controller,
		reporter:   reporter,
		output:     output,
		logger:     logger,
		precision:  -1,
		state:      AwaitingPrompt,
	}
	for _, opt := range opts {
		opt(driver)
	}
	return driver
}

// State returns the state the loop is in.
func (driver *Driver) State() DriverState {
	return driver.state
}

// Run loops until the active source is exhausted. Bad statements are reported
// and do not stop the loop, only a failure to read the input does.
func (driver *Driver) Run() error {
	if redirect, ok := driver.controller.Active().(*RedirectSource); ok {
		fmt.Fprintf(driver.output, "%s%s\n", Prompt, redirect.Text())
	}
	for driver.state != Done {
		if err := driver.step(); err != nil {
			driver.state = Done
			return err
		}
	}
	return nil
}

// step runs the loop once, from AwaitingPrompt back to AwaitingPrompt or to
// Done.
func (driver *Driver) step() error {
	line, err := driver.controller.NextLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			driver.state = Done
			return nil
		}
		return err
	}

	driver.state = Parsing
	res := driver.engine.Eval(line)
	driver.controller.Finish(res.Completed)
	driver.reporter.Reset()

	var stmtErr *StatementError
	switch {
	case res.Err == nil:
		fmt.Fprintln(driver.output, FormatValue(res.Value, driver.precision))
		driver.logger.Debug().
			Str("statement", res.Source).
			Str("form", res.Form).
			Float64("value", res.Value).
			Msg("statement evaluated")
	case errors.As(res.Err, &stmtErr) && strings.TrimSpace(stmtErr.Source) == "":
		// nothing was typed, there is nothing to report
	case errors.As(res.Err, &stmtErr):
		driver.reporter.Report(res.Err)
		driver.logger.Debug().
			Str("statement", res.Source).
			Err(res.Err).
			Msg("statement failed")
	default:
		return res.Err
	}

	if driver.controller.State().MoreInput {
		driver.state = AwaitingPrompt
	} else {
		driver.state = Done
	}
	return nil
}
