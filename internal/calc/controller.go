package calc

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
)

// Prompt is shown before each statement read from the interactive and raw
// stream sources.
const Prompt = "> "

// EngineState is the state shared between the controller and the driver
// loop.
type EngineState struct {
	// MoreInput is true until the active source runs out of statements.
	MoreInput bool
	// AwaitingStatement is true when the last statement was read to its end,
	// and a prompt should be shown before the next one.
	AwaitingStatement bool
	// Active is the kind of the active source.
	Active SourceKind
}

// Controller owns the active source and hands its statements out one at a
// time. Only one source is active at any time.
type Controller struct {
	active Source
	state  EngineState
	logger zerolog.Logger
}

func NewController(logger zerolog.Logger) *Controller {
	return &Controller{logger: logger}
}

// Activate makes src the active source. The previous source, if any, is closed
// once the switch is done.
func (controller *Controller) Activate(src Source) error {
	prev := controller.active
	controller.active = src
	controller.state = EngineState{
		MoreInput:         src != nil,
		AwaitingStatement: true,
		Active:            KindNone,
	}
	if src != nil {
		controller.state.Active = src.Kind()
	}
	controller.logger.Debug().
		Stringer("source", controller.state.Active).
		Msg("source activated")
	if prev != nil && prev != src {
		return prev.Close()
	}
	return nil
}

// NextLine returns a reader over the next statement of the active source, or
// io.EOF once the source has nothing left.
func (controller *Controller) NextLine() (io.RuneReader, error) {
	if controller.active == nil || !controller.state.MoreInput {
		return nil, io.EOF
	}
	prompt := ""
	if controller.state.AwaitingStatement && controller.state.Active != KindRedirect {
		prompt = Prompt
	}
	line, err := controller.active.Next(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			controller.state.MoreInput = false
			controller.logger.Debug().
				Stringer("source", controller.state.Active).
				Msg("end of input")
			return nil, io.EOF
		}
		return nil, err
	}
	controller.state.AwaitingStatement = false
	return line, nil
}

// Finish records whether the statement returned by the last call to NextLine
// was read up to its end. The engine drains every statement, so completed is
// false only when the source failed while the statement was being read; the
// next prompt is then withheld.
func (controller *Controller) Finish(completed bool) {
	controller.state.AwaitingStatement = completed
}

// Active returns the active source, nil if there is none.
func (controller *Controller) Active() Source {
	return controller.active
}

func (controller *Controller) State() EngineState {
	return controller.state
}

// Close closes the active source.
func (controller *Controller) Close() error {
	if controller.active == nil {
		return nil
	}
	err := controller.active.Close()
	controller.active = nil
	controller.state.MoreInput = false
	return err
}
