package main

// calc is a lightweight command-line calculator.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/ltungv/calc/internal/calc"
	"github.com/ltungv/calc/internal/config"
	"github.com/ltungv/calc/internal/lineedit"
)

var version = "1.0.0"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func help(w io.Writer) {
	fmt.Fprintln(w, "Usage: calc [OPTION]... [EQUATION]")
	fmt.Fprintln(w, "Lightweight command-line calculator.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    -h               show this help message and exit")
	fmt.Fprintln(w, "    -v               print the program version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "If no equation is given, then the program will be opened")
	fmt.Fprintln(w, "in interactive mode.")
}

// run is the whole program, main only hands it the process streams. It returns
// the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, optind, err := getopt.Getopts(args, "hv")
	if err != nil {
		fmt.Fprintf(stderr, "calc: %v\n", err)
		return 1
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			help(stdout)
			return 0
		case 'v':
			fmt.Fprintf(stdout, "calc-%s\n", version)
			return 0
		}
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		With().Timestamp().Str("service", "calc").Logger().
		Level(cfg.Level())
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("invalid configuration, using defaults")
	}
	logger.Debug().Str("version", version).Msg("starting")

	controller := calc.NewController(logger)
	defer controller.Close()

	src, release := chooseSource(args[optind:], stdin, stdout, cfg, logger)
	defer release()
	if err := controller.Activate(src); err != nil {
		logger.Error().Err(err).Msg("failed to activate source")
		return 1
	}

	engine := calc.NewEngine(calc.WithTrace(cfg.Trace))
	reporter := calc.NewSimpleReporter(stderr, calc.WithColor(useColor(cfg, stderr)))
	driver := calc.NewDriver(
		engine,
		controller,
		reporter,
		stdout,
		logger,
		calc.WithPrecision(cfg.Precision),
	)
	if err := driver.Run(); err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return 1
	}
	return 0
}

// chooseSource picks the redirect source when there are arguments left, the
// interactive source when stdin is a terminal and the raw stream source
// otherwise. The returned function releases what the source holds.
func chooseSource(
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	cfg config.Config,
	logger zerolog.Logger,
) (calc.Source, func()) {
	if len(args) > 0 {
		return calc.NewRedirectSource(strings.Join(args, " ")), func() {}
	}
	if isTerminal(stdin) {
		editor := lineedit.New(cfg.HistoryFile, logger)
		return calc.NewInteractiveSource(editor), func() {
			if err := editor.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to restore terminal")
			}
		}
	}
	return calc.NewRawStreamSource(stdin, stdout), func() {}
}

func useColor(cfg config.Config, w io.Writer) bool {
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor && isTerminal(w)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
