package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// newLogger creates the command logger. With --log-file the output goes to
// the file. Fullscreen commands drop log output on a terminal stderr so it
// cannot draw over the game screen. The returned closer must be called when
// the command finishes.
func newLogger(fullscreen bool) (*log.Logger, func(), error) {
	quiet := fullscreen && term.IsTerminal(int(os.Stderr.Fd()))
	out, closer, err := logOutput(quiet)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// logOutput picks the log destination. The log file always wins.
func logOutput(quiet bool) (io.Writer, func(), error) {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if quiet {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
