// Package lineedit is the line-editing front end of the interactive mode. It
// wraps liner and keeps the input history in a file between sessions.
package lineedit

import (
	"errors"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/ltungv/calc/internal/calc"
)

// lineState is the part of *liner.State used by the editor.
type lineState interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ClearHistory()
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
	Close() error
}

// Editor implements calc.LineEditor on top of a terminal.
type Editor struct {
	state       lineState
	historyFile string
	logger      zerolog.Logger
}

// New takes over the terminal and loads the history kept in historyFile. An
// empty historyFile keeps the history in memory only.
func New(historyFile string, logger zerolog.Logger) *Editor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return newEditor(state, historyFile, logger)
}

func newEditor(state lineState, historyFile string, logger zerolog.Logger) *Editor {
	editor := &Editor{state, historyFile, logger}
	editor.loadHistory()
	return editor
}

func (editor *Editor) Prompt(prompt string) (string, error) {
	line, err := editor.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", calc.ErrLineAborted
	}
	return line, err
}

func (editor *Editor) AppendHistory(line string) {
	editor.state.AppendHistory(line)
}

// ClearHistory writes the pending history to the history file, then drops it
// from memory.
func (editor *Editor) ClearHistory() {
	editor.saveHistory()
	editor.state.ClearHistory()
}

// Close gives the terminal back.
func (editor *Editor) Close() error {
	return editor.state.Close()
}

// loadHistory is best-effort, a missing or unreadable file starts an empty
// history.
func (editor *Editor) loadHistory() {
	if editor.historyFile == "" {
		return
	}
	f, err := os.Open(editor.historyFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			editor.logger.Warn().Err(err).Str("file", editor.historyFile).Msg("could not open history")
		}
		return
	}
	defer f.Close()
	n, err := editor.state.ReadHistory(f)
	if err != nil {
		editor.logger.Warn().Err(err).Str("file", editor.historyFile).Msg("could not read history")
		return
	}
	editor.logger.Debug().Int("entries", n).Str("file", editor.historyFile).Msg("history loaded")
}

func (editor *Editor) saveHistory() {
	if editor.historyFile == "" {
		return
	}
	f, err := os.Create(editor.historyFile)
	if err != nil {
		editor.logger.Warn().Err(err).Str("file", editor.historyFile).Msg("could not create history")
		return
	}
	defer f.Close()
	n, err := editor.state.WriteHistory(f)
	if err != nil {
		editor.logger.Warn().Err(err).Str("file", editor.historyFile).Msg("could not write history")
		return
	}
	editor.logger.Debug().Int("entries", n).Str("file", editor.historyFile).Msg("history saved")
}
